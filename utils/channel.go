package utils

import (
	"sync/atomic"
)

// AutoCloseChanErr collects one error from each of a known number of
// senders and closes itself after the last send, so receivers never block
// on a channel nobody writes to anymore.
type AutoCloseChanErr struct {
	actual  chan error
	pending int32
}

// NewAutoCloseChanErr .
func NewAutoCloseChanErr(senders int) *AutoCloseChanErr {
	return &AutoCloseChanErr{
		actual:  make(chan error, senders),
		pending: int32(senders),
	}
}

// Send .
func (ch *AutoCloseChanErr) Send(err error) {
	ch.actual <- err
	if atomic.AddInt32(&ch.pending, -1) == 0 {
		close(ch.actual)
	}
}

// Receive .
func (ch *AutoCloseChanErr) Receive() <-chan error {
	return ch.actual
}

package service

import (
	"context"
)

// Service is a long-running unit of the daemon. Serve blocks until the
// context is canceled or the service fails, then hands back a Disposable
// for cleanup.
type Service interface {
	Serve(context.Context) (Disposable, error)
}

// Disposable .
type Disposable interface {
	Dispose(context.Context) error
}

// NoopDisposable .
type NoopDisposable struct{}

// Dispose .
func (NoopDisposable) Dispose(context.Context) error {
	return nil
}

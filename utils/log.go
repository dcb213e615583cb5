package utils

import (
	"fmt"
	"testing"

	log "github.com/sirupsen/logrus"
)

// Logger .
type Logger interface {
	Info(...interface{})
	Warn(...interface{})
	Error(...interface{})

	Infof(string, ...interface{})
	Warnf(string, ...interface{})
	Errorf(string, ...interface{})
}

type standardLogger struct{}

// NewStandardLogger .
func NewStandardLogger() Logger {
	return standardLogger{}
}

func (logger standardLogger) Info(args ...interface{}) {
	log.Info(args...)
}

func (logger standardLogger) Warn(args ...interface{}) {
	log.Warn(args...)
}

func (logger standardLogger) Error(args ...interface{}) {
	log.Error(args...)
}

func (logger standardLogger) Infof(format string, args ...interface{}) {
	log.Infof(format, args...)
}

func (logger standardLogger) Warnf(format string, args ...interface{}) {
	log.Warnf(format, args...)
}

func (logger standardLogger) Errorf(format string, args ...interface{}) {
	log.Errorf(format, args...)
}

type testLogger struct {
	test *testing.T
}

// NewTestLogger routes log output through the test, so it shows up only for
// failing runs.
func NewTestLogger(test *testing.T) Logger {
	return testLogger{
		test: test,
	}
}

func (logger testLogger) Info(args ...interface{}) {
	logger.test.Log(args...)
}

func (logger testLogger) Warn(args ...interface{}) {
	logger.test.Log(args...)
}

func (logger testLogger) Error(args ...interface{}) {
	logger.test.Log(args...)
}

func (logger testLogger) Infof(format string, args ...interface{}) {
	logger.test.Log(fmt.Sprintf(format, args...))
}

func (logger testLogger) Warnf(format string, args ...interface{}) {
	logger.test.Log(fmt.Sprintf(format, args...))
}

func (logger testLogger) Errorf(format string, args ...interface{}) {
	logger.test.Log(fmt.Sprintf(format, args...))
}

// Package klog provides the stream runtime's debug logging. A Logger is
// set per Stream through kstream.Config rather than through a package-level
// sink, and no logging framework is pulled in: the runtime has one
// log line shape (lifecycle events) and no caller has ever asked for more.
package klog

import (
	"fmt"
	"io"
	"log"
)

// Logger is the interface kstream.Config.Logger accepts. The zero value of
// kstream.Config leaves this nil, and nothing is logged.
type Logger interface {
	Debugf(format string, args ...interface{})
}

// Default returns a Logger that writes to w via the standard log package,
// prefixed with "kstream: ". It is not installed automatically; callers
// opt in by setting it on a Config.
func Default(w io.Writer) Logger {
	return &stdLogger{l: log.New(w, "kstream: ", log.LstdFlags)}
}

type stdLogger struct {
	l *log.Logger
}

func (s *stdLogger) Debugf(format string, args ...interface{}) {
	s.l.Output(2, fmt.Sprintf(format, args...))
}

// nopLogger discards everything; used when a Stream is constructed
// without a Logger so call sites never need a nil check.
type nopLogger struct{}

func (nopLogger) Debugf(string, ...interface{}) {}

// Nop is the logger used when no Logger is configured.
var Nop Logger = nopLogger{}

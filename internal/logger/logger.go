// Package logger provides configured zerolog loggers for binaries built on
// the SDK.
package logger

import (
	"io"
	"sync"

	pkgerrors "github.com/pkg/errors"
	"github.com/rs/zerolog"
	zpkgerrors "github.com/rs/zerolog/pkgerrors"
)

var stacksOnce sync.Once

// configureStacks makes .Stack() on error events render a stack trace, adding
// one to plain errors that lack it.
func configureStacks() {
	stacksOnce.Do(func() {
		type stackTracer interface{ StackTrace() pkgerrors.StackTrace }
		zerolog.ErrorStackMarshaler = func(err error) interface{} {
			if _, ok := err.(stackTracer); !ok {
				err = pkgerrors.WithStack(err)
			}
			return zpkgerrors.MarshalStack(err)
		}
	})
}

// New returns a JSON logger writing to w and tagged with service.
// Call sites should use .Stack() on error events to include stacks.
func New(w io.Writer, service string) zerolog.Logger {
	configureStacks()
	return zerolog.New(w).With().
		Str("service", service).
		Timestamp().
		Logger()
}

// NewConsole returns a human-readable logger for interactive tools.
func NewConsole(w io.Writer, service string) zerolog.Logger {
	configureStacks()
	return zerolog.New(zerolog.ConsoleWriter{
		Out:        w,
		TimeFormat: "2006-01-02 15:04:05",
		NoColor:    true,
	}).With().
		Str("service", service).
		Timestamp().
		Logger()
}

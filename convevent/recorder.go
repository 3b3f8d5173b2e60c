package convevent

import (
	"errors"
	"fmt"
	"log/slog"
	"runtime"
	"time"
)

// Recorder collects information about events that happen during a
// conversion and passes them to an event handler.
//
// If the recorder's handler is nil, it silently discards all events.
type Recorder struct {
	Handler Handler
}

// Record records the given event and passes it to the recorder's handler.
func (rec Recorder) Record(event Interface) error {
	// If no handler has been provided, drop the event.
	if rec.Handler == nil {
		return nil
	}

	// Record the current time.
	at := time.Now()

	// Collect the current program counter of the caller. This allows
	// for source code information to be collected by the handler.
	var pc uintptr
	{
		var pcs [1]uintptr
		// Skip [runtime.Callers, this function]
		runtime.Callers(2, pcs[:])
		pc = pcs[0]
	}

	// Send the event record to the event handler, wrapping any error it
	// returns.
	record := NewRecord(at, pc, event)
	return WrapHandlerError(rec.Handler, record, rec.Handler.Handle(record))
}

// HandlerError is an error returned by a recorder when an event handler
// is unable to process an event.
type HandlerError struct {
	HandlerName string
	Record      Record
	Err         error
}

// Component identifies the component that generated the event.
func (e HandlerError) Component() string {
	return "event-handler"
}

// Level returns the level of the event.
func (e HandlerError) Level() slog.Level {
	return slog.LevelError
}

// Message returns a description of the event.
func (e HandlerError) Message() string {
	return e.Error()
}

// Attrs returns a set of structured logging attributes for the event.
func (e HandlerError) Attrs() []slog.Attr {
	return []slog.Attr{
		slog.String("handler", e.HandlerName),
		slog.String("error", e.Error()),
	}
}

// Error returns a string describing the error.
func (e HandlerError) Error() string {
	return fmt.Sprintf("the \"%s\" event handler failed to record a \"%s\" event: %s", e.HandlerName, e.Record.Component(), e.Err)
}

// Unwrap returns the error wrapped by e.
func (e HandlerError) Unwrap() error {
	return e.Err
}

// WrapHandlerError returns an error for the given handler, record, and
// underlying errors. Errors that are already handler errors pass through
// unchanged; multiple errors are joined.
func WrapHandlerError(handler Handler, r Record, errs ...error) error {
	var remaining []error
	for _, err := range errs {
		if err != nil {
			remaining = append(remaining, err)
		}
	}

	switch len(remaining) {
	case 0:
		return nil
	case 1:
		if _, ok := remaining[0].(HandlerError); ok {
			return remaining[0]
		}
		return HandlerError{
			HandlerName: handler.Name(),
			Record:      r,
			Err:         remaining[0],
		}
	default:
		return HandlerError{
			HandlerName: handler.Name(),
			Record:      r,
			Err:         errors.Join(remaining...),
		}
	}
}

package convevent

import (
	"context"
	"fmt"
	"io"
	"log/slog"
)

const timestampFormat = "2006-01-02 15:04:05"

// Handler is an event handler that is capable of processing conversion
// events.
type Handler interface {
	// Name returns a name for the handler.
	Name() string

	// Handle processes the given event record.
	Handle(Record) error
}

// BasicHandler is an event handler that prints timestamped event messages
// to an io.Writer.
type BasicHandler struct {
	w   io.Writer
	min slog.Level
}

// NewBasicHandler returns a BasicHandler that will write to w.
// Events below the provided minimum level will be ignored.
func NewBasicHandler(w io.Writer, min slog.Level) BasicHandler {
	return BasicHandler{
		w:   w,
		min: min,
	}
}

// Name returns a name for the handler.
func (h BasicHandler) Name() string {
	return "basic"
}

// Handle processes the given event record.
func (h BasicHandler) Handle(r Record) error {
	if r.Level() < h.min {
		return nil
	}
	_, err := fmt.Fprintf(h.w, "%s: %-6s %s\n", r.Time().Local().Format(timestampFormat), r.Level().String()+":", r.Message())
	return err
}

// LoggedHandler is an event handler that sends events to a structured log
// handler.
type LoggedHandler struct {
	Handler slog.Handler
}

// Name returns a name for the handler.
func (h LoggedHandler) Name() string {
	return "structured-log"
}

// Handle processes the given event record.
func (lh LoggedHandler) Handle(r Record) error {
	h := lh.Handler
	if h == nil {
		h = slog.Default().Handler()
	}
	return h.Handle(context.Background(), r.ToLog())
}

// MultiHandler is an event handler that sends events to multiple
// underlying handlers.
type MultiHandler []Handler

// Name returns a name for the handler.
func (h MultiHandler) Name() string {
	return "multi-handler"
}

// Handle processes the given event record.
func (h MultiHandler) Handle(r Record) error {
	var errs []error
	for _, handler := range h {
		if err := handler.Handle(r); err != nil {
			errs = append(errs, WrapHandlerError(handler, r, err))
		}
	}

	return WrapHandlerError(h, r, errs...)
}

// Package convevent records events that occur while converting text, and
// passes them to configurable event handlers built on structured logging.
package convevent

import (
	"log/slog"
	"time"
)

// Interface is a common interface implemented by all conversion events.
type Interface interface {
	// Component identifies the component that generated the event.
	Component() string

	// Level returns the level of the event.
	Level() slog.Level

	// Message returns a description of the event.
	Message() string

	// Attrs returns a set of structured logging attributes for the event.
	Attrs() []slog.Attr
}

// Record is a timestamped record of an event.
type Record struct {
	time  time.Time
	pc    uintptr
	Event Interface
}

// NewRecord returns a record for the given event and program counter.
//
// The program counter is used to build source line information for slog
// records.
func NewRecord(at time.Time, pc uintptr, event Interface) Record {
	return Record{
		time:  at,
		pc:    pc,
		Event: event,
	}
}

// Time returns the time of the event.
func (r Record) Time() time.Time {
	return r.time
}

// Component identifies the component that generated the event.
func (r Record) Component() string {
	return r.Event.Component()
}

// Level returns the level of the event.
func (r Record) Level() slog.Level {
	return r.Event.Level()
}

// Message returns a description of the event.
func (r Record) Message() string {
	return r.Event.Message()
}

// Attrs returns a set of structured logging attributes for the event.
func (r Record) Attrs() []slog.Attr {
	return r.Event.Attrs()
}

// ToLog returns the event record as a structured logging record.
func (r Record) ToLog() slog.Record {
	out := slog.NewRecord(r.time, r.Event.Level(), r.Event.Message(), r.pc)
	out.AddAttrs(r.Event.Attrs()...)
	return out
}

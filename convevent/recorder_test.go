package convevent_test

import (
	"bytes"
	"errors"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/unicodeconv/unicodeconv/convevent"
	"github.com/unicodeconv/unicodeconv/utfconv"
)

// testEvent is a minimal event used to exercise recorders and handlers.
type testEvent struct {
	level   slog.Level
	message string
}

func (e testEvent) Component() string {
	return "test"
}

func (e testEvent) Level() slog.Level {
	return e.level
}

func (e testEvent) Message() string {
	return e.message
}

func (e testEvent) Attrs() []slog.Attr {
	return nil
}

// failingHandler always fails to process events.
type failingHandler struct{}

func (failingHandler) Name() string {
	return "failing"
}

func (failingHandler) Handle(convevent.Record) error {
	return errors.New("handler exploded")
}

func TestRecorderWithoutHandler(t *testing.T) {
	var recorder convevent.Recorder
	if err := recorder.Record(testEvent{message: "dropped"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestRecorderWithBasicHandler(t *testing.T) {
	var buf bytes.Buffer
	recorder := convevent.Recorder{Handler: convevent.NewBasicHandler(&buf, slog.LevelInfo)}

	if err := recorder.Record(testEvent{level: slog.LevelInfo, message: "something happened"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out := buf.String(); !strings.Contains(out, "something happened") {
		t.Fatalf("event message missing from output: %q", out)
	}
	if out := buf.String(); !strings.Contains(out, "INFO") {
		t.Fatalf("event level missing from output: %q", out)
	}
}

func TestBasicHandlerLevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	recorder := convevent.Recorder{Handler: convevent.NewBasicHandler(&buf, slog.LevelInfo)}

	if err := recorder.Record(testEvent{level: slog.LevelDebug, message: "too quiet"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out := buf.String(); out != "" {
		t.Fatalf("expected no output for a debug event, got %q", out)
	}
}

func TestRecorderWrapsHandlerErrors(t *testing.T) {
	recorder := convevent.Recorder{Handler: failingHandler{}}

	err := recorder.Record(testEvent{level: slog.LevelInfo, message: "doomed"})
	var handlerErr convevent.HandlerError
	if !errors.As(err, &handlerErr) {
		t.Fatalf("expected a HandlerError, got %v", err)
	}
	if handlerErr.HandlerName != "failing" {
		t.Fatalf("unexpected handler name: %q", handlerErr.HandlerName)
	}
}

func TestMultiHandler(t *testing.T) {
	var first, second bytes.Buffer
	recorder := convevent.Recorder{Handler: convevent.MultiHandler{
		convevent.NewBasicHandler(&first, slog.LevelInfo),
		convevent.NewBasicHandler(&second, slog.LevelInfo),
	}}

	if err := recorder.Record(testEvent{level: slog.LevelInfo, message: "fan out"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for name, buf := range map[string]*bytes.Buffer{"first": &first, "second": &second} {
		if !strings.Contains(buf.String(), "fan out") {
			t.Fatalf("event message missing from %s handler output: %q", name, buf.String())
		}
	}
}

func TestLoggedHandler(t *testing.T) {
	var buf bytes.Buffer
	handler := convevent.LoggedHandler{Handler: slog.NewTextHandler(&buf, nil)}
	recorder := convevent.Recorder{Handler: handler}

	if err := recorder.Record(testEvent{level: slog.LevelInfo, message: "structured"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out := buf.String(); !strings.Contains(out, "structured") {
		t.Fatalf("event message missing from output: %q", out)
	}
}

func TestConversionEventLevels(t *testing.T) {
	start := time.Now()
	succeeded := convevent.Conversion{
		Direction:   utfconv.UTF16ToUTF8,
		InputUnits:  9,
		OutputUnits: 9,
		Started:     start,
		Stopped:     start.Add(time.Millisecond),
	}
	if succeeded.Level() != slog.LevelInfo {
		t.Fatalf("unexpected level for successful conversion: %v", succeeded.Level())
	}
	if msg := succeeded.Message(); !strings.Contains(msg, "Converted 9") {
		t.Fatalf("unexpected message: %q", msg)
	}

	failed := convevent.Conversion{
		Direction: utfconv.UTF8ToUTF16,
		Started:   start,
		Stopped:   start,
		Err:       errors.New("invalid input"),
	}
	if failed.Level() != slog.LevelError {
		t.Fatalf("unexpected level for failed conversion: %v", failed.Level())
	}
	if msg := failed.Message(); !strings.Contains(msg, "invalid input") {
		t.Fatalf("unexpected message: %q", msg)
	}
}

package convevent

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/gentlemanautomaton/structformat"
	"github.com/unicodeconv/unicodeconv/bytesconv"
	"github.com/unicodeconv/unicodeconv/utfconv"
)

// SourceLoaded is an event that occurs when source text has been read and
// its encoding determined.
type SourceLoaded struct {
	Path     string
	Size     int64
	Encoding bytesconv.Encoding
}

// Component identifies the component that generated the event.
func (e SourceLoaded) Component() string {
	return "input"
}

// Level returns the level of the event.
func (e SourceLoaded) Level() slog.Level {
	if e.Encoding == bytesconv.Unknown {
		return slog.LevelWarn
	}
	return slog.LevelDebug
}

// Message returns a description of the event.
func (e SourceLoaded) Message() string {
	var builder structformat.Builder

	builder.WritePrimary(e.Path)
	if e.Encoding == bytesconv.Unknown {
		builder.WriteStandard(fmt.Sprintf("Loaded %d bytes of text with an unrecognized encoding.", e.Size))
	} else {
		builder.WriteStandard(fmt.Sprintf("Loaded %d bytes of %s text.", e.Size, e.Encoding))
	}

	return builder.String()
}

// Attrs returns a set of structured logging attributes for the event.
func (e SourceLoaded) Attrs() []slog.Attr {
	return []slog.Attr{
		slog.String("path", e.Path),
		slog.Int64("size", e.Size),
		slog.String("encoding", e.Encoding.String()),
	}
}

// Conversion is an event that occurs when a conversion attempt has
// finished, successfully or not.
type Conversion struct {
	Direction   utfconv.Direction
	InputUnits  int
	OutputUnits int
	Started     time.Time
	Stopped     time.Time
	Err         error
}

// Component identifies the component that generated the event.
func (e Conversion) Component() string {
	return "conversion"
}

// Level returns the level of the event.
func (e Conversion) Level() slog.Level {
	if e.Err != nil {
		return slog.LevelError
	}
	return slog.LevelInfo
}

// Message returns a description of the event.
func (e Conversion) Message() string {
	var builder structformat.Builder

	builder.WritePrimary(e.Direction.String())

	if e.Err != nil {
		builder.WriteStandard(fmt.Sprintf("The conversion failed: %s.", e.Err))
	} else {
		in, out := directionUnits(e.Direction)
		builder.WriteStandard(fmt.Sprintf("Converted %d %s into %d %s.", e.InputUnits, in, e.OutputUnits, out))
		builder.WriteNote(fmt.Sprintf("took %s", e.Duration().Round(time.Microsecond)))
	}

	return builder.String()
}

// Attrs returns a set of structured logging attributes for the event.
func (e Conversion) Attrs() []slog.Attr {
	attrs := []slog.Attr{
		slog.String("direction", e.Direction.String()),
		slog.Int("input_units", e.InputUnits),
		slog.Duration("duration", e.Duration()),
	}
	if e.Err != nil {
		attrs = append(attrs, slog.String("error", e.Err.Error()))
	} else {
		attrs = append(attrs, slog.Int("output_units", e.OutputUnits))
	}
	return attrs
}

// Duration returns the duration of the conversion.
func (e Conversion) Duration() time.Duration {
	return e.Stopped.Sub(e.Started)
}

// OutputWritten is an event that occurs when converted text has been
// written out.
type OutputWritten struct {
	Path string
	Size int64
}

// Component identifies the component that generated the event.
func (e OutputWritten) Component() string {
	return "output"
}

// Level returns the level of the event.
func (e OutputWritten) Level() slog.Level {
	return slog.LevelInfo
}

// Message returns a description of the event.
func (e OutputWritten) Message() string {
	var builder structformat.Builder

	builder.WritePrimary(e.Path)
	builder.WriteStandard(fmt.Sprintf("Wrote %d bytes.", e.Size))

	return builder.String()
}

// Attrs returns a set of structured logging attributes for the event.
func (e OutputWritten) Attrs() []slog.Attr {
	return []slog.Attr{
		slog.String("path", e.Path),
		slog.Int64("size", e.Size),
	}
}

// directionUnits describes the input and output code units for the given
// conversion direction.
func directionUnits(d utfconv.Direction) (in, out string) {
	if d == utfconv.UTF16ToUTF8 {
		return "UTF-16 code units", "UTF-8 bytes"
	}
	return "UTF-8 bytes", "UTF-16 code units"
}

package utfconv

import (
	"fmt"

	"github.com/unicodeconv/unicodeconv/utfcodec"
)

// Direction identifies the direction of a conversion.
type Direction int

// Conversion directions.
const (
	UTF16ToUTF8 Direction = iota
	UTF8ToUTF16
)

// String returns a string representation of the conversion direction.
func (d Direction) String() string {
	switch d {
	case UTF16ToUTF8:
		return "UTF-16 to UTF-8"
	case UTF8ToUTF16:
		return "UTF-8 to UTF-16"
	default:
		return fmt.Sprintf("unknown conversion direction %d", int(d))
	}
}

// ConversionError is returned when a codec rejects the text being
// converted, or when a measurement or transcoding step otherwise fails.
type ConversionError struct {
	// Direction is the direction of the conversion that failed.
	Direction Direction

	// Code is the diagnostic code reported by the codec, if any.
	Code utfcodec.Status

	// Message describes which step of the conversion failed.
	Message string
}

// Error returns a string describing the error.
func (e ConversionError) Error() string {
	if e.Code == utfcodec.StatusNone {
		return fmt.Sprintf("%s conversion failed: %s", e.Direction, e.Message)
	}
	return fmt.Sprintf("%s conversion failed: %s (status %d)", e.Direction, e.Message, uint32(e.Code))
}

// Package safecast provides checked integer narrowing for sequence lengths.
//
// The conversion arithmetic in this module operates on signed 32-bit
// lengths, matching the domain of the underlying text codecs. Every length
// taken from a Go slice must pass through this package before it is used
// for measurement or buffer sizing, so that truncation hazards are handled
// in exactly one place.
package safecast

import (
	"fmt"
	"math"
)

// OverflowError is returned when a value cannot be represented in the
// destination integer domain.
type OverflowError struct {
	Value int
}

// Error returns a string describing the error.
func (e OverflowError) Error() string {
	return fmt.Sprintf("the length %d cannot be represented as a signed 32-bit integer", e.Value)
}

// Int32FromInt converts the given value to an int32. If the value is
// negative or too large to be represented as an int32, it returns an
// OverflowError.
func Int32FromInt(value int) (int32, error) {
	if value < 0 || int64(value) > math.MaxInt32 {
		return 0, OverflowError{Value: value}
	}
	return int32(value), nil
}

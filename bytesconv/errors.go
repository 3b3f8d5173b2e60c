package bytesconv

import "errors"

var (
	// ErrUnevenUTF16 is returned when the provided bytes are not an even
	// length. The UTF-16 encoding requires an even number of bytes.
	ErrUnevenUTF16 = errors.New("the UTF-16 data is not an even length")
)

package bytesconv

import (
	"bytes"
	"encoding/binary"
	"unicode/utf8"
)

// Encoding identifies a detected text encoding.
type Encoding int

// Encodings that can be detected.
const (
	Unknown Encoding = iota
	UTF8
	UTF16LE
	UTF16BE
)

// String returns a string representation of the encoding.
func (e Encoding) String() string {
	switch e {
	case UTF8:
		return "UTF-8"
	case UTF16LE:
		return "UTF-16LE"
	case UTF16BE:
		return "UTF-16BE"
	default:
		return "unknown"
	}
}

// Detect attempts to determine the encoding of the given bytes.
//
// If the data has an obvious unicode byte order mark at the start of it,
// the mark is obeyed. Otherwise, data that is valid UTF-8 without embedded
// null characters is reported as UTF-8. Anything else is reported as
// Unknown; no lenient guessing is performed.
func Detect(p []byte) Encoding {
	switch {
	case HasBOM(p, binary.LittleEndian):
		return UTF16LE
	case HasBOM(p, binary.BigEndian):
		return UTF16BE
	}

	if utf8.Valid(p) && !bytes.ContainsRune(p, 0) {
		return UTF8
	}

	return Unknown
}

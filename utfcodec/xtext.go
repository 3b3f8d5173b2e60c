package utfcodec

import (
	"bytes"
	"encoding/binary"
	"math"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// XText is a Codec that delegates to the golang.org/x/text UTF-16
// transformers.
//
// The x/text decoder substitutes U+FFFD for ill-formed UTF-16 instead of
// reporting an error, so strict validation of UTF-16 input is implemented
// by comparing the number of replacement code units already present in the
// source against the number of replacement runes in the decoded output.
// Strict validation of UTF-8 input chains encoding.UTF8Validator ahead of
// the encoder.
var XText Codec = xtextCodec{}

type xtextCodec struct{}

// The transformers operate on byte streams, so code units cross the
// boundary serialized in little-endian order without a byte order mark.
var utf16LE = unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM)

// UTF16ToUTF8 measures or transcodes a UTF-16 code unit sequence into
// UTF-8 bytes.
func (xtextCodec) UTF16ToUTF8(src []uint16, srcLen int32, dst []byte, strict bool) (int32, Status) {
	if srcLen <= 0 || int64(srcLen) > int64(len(src)) {
		return 0, StatusInvalidParameter
	}
	src = src[:srcLen]

	// Serialize the code units for the transformer.
	raw := make([]byte, len(src)*2)
	for i, u := range src {
		binary.LittleEndian.PutUint16(raw[i*2:], u)
	}

	out, _, err := transform.Bytes(utf16LE.NewDecoder(), raw)
	if err != nil {
		return 0, StatusInvalidSequence
	}

	// Every ill-formed sequence in the source becomes a replacement rune
	// in the output. A replacement rune that has no matching U+FFFD code
	// unit in the source therefore marks invalid input.
	if strict && bytes.Count(out, []byte(string(replacementChar))) != countReplacementUnits(src) {
		return 0, StatusInvalidSequence
	}

	if int64(len(out)) > math.MaxInt32 {
		return 0, StatusInsufficientBuffer
	}
	if dst == nil {
		return int32(len(out)), StatusNone
	}
	if len(dst) < len(out) {
		return 0, StatusInsufficientBuffer
	}
	copy(dst, out)
	return int32(len(out)), StatusNone
}

// UTF8ToUTF16 measures or transcodes a UTF-8 byte sequence into UTF-16
// code units.
func (xtextCodec) UTF8ToUTF16(src []byte, srcLen int32, dst []uint16, strict bool) (int32, Status) {
	if srcLen <= 0 || int64(srcLen) > int64(len(src)) {
		return 0, StatusInvalidParameter
	}
	src = src[:srcLen]

	var t transform.Transformer = utf16LE.NewEncoder()
	if strict {
		t = transform.Chain(encoding.UTF8Validator, t)
	}

	raw, _, err := transform.Bytes(t, src)
	if err != nil {
		return 0, StatusInvalidSequence
	}

	// Unpack the serialized code units.
	units := len(raw) / 2
	if dst == nil {
		return int32(units), StatusNone
	}
	if len(dst) < units {
		return 0, StatusInsufficientBuffer
	}
	for i := 0; i < units; i++ {
		dst[i] = binary.LittleEndian.Uint16(raw[i*2:])
	}
	return int32(units), StatusNone
}

// countReplacementUnits returns the number of U+FFFD code units in the
// given UTF-16 sequence.
func countReplacementUnits(src []uint16) int {
	var count int
	for _, u := range src {
		if u == uint16(replacementChar) {
			count++
		}
	}
	return count
}

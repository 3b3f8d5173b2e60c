// Package utfconv converts text between UTF-16 and UTF-8 with strict
// validation.
//
// Both conversions are all-or-nothing: a call either returns a complete,
// exactly sized result or an error. Ill-formed input is never passed
// through with lossy substitution. Each call is a pure function of its
// input, so independent calls may run concurrently without coordination.
//
// A conversion runs in two phases against a codec: a measurement phase
// that computes the exact output size for the full, validated input
// length, and a transcode phase that fills a buffer allocated to exactly
// that size. Growable-buffer reallocation is deliberately avoided.
package utfconv

import (
	"github.com/unicodeconv/unicodeconv/safecast"
	"github.com/unicodeconv/unicodeconv/utfcodec"
)

// A Converter converts text between UTF-16 and UTF-8 using a particular
// codec. The zero value is not usable; use NewConverter.
type Converter struct {
	codec utfcodec.Codec
}

// NewConverter returns a Converter that uses the given codec.
func NewConverter(codec utfcodec.Codec) Converter {
	return Converter{codec: codec}
}

// UTF8FromUTF16 converts the given UTF-16 code unit sequence to UTF-8
// using the native codec. See Converter.UTF8FromUTF16.
func UTF8FromUTF16(utf16Text []uint16) ([]byte, error) {
	return NewConverter(utfcodec.Native).UTF8FromUTF16(utf16Text)
}

// UTF16FromUTF8 converts the given UTF-8 byte sequence to UTF-16 using
// the native codec. See Converter.UTF16FromUTF8.
func UTF16FromUTF8(utf8Text []byte) ([]uint16, error) {
	return NewConverter(utfcodec.Native).UTF16FromUTF8(utf8Text)
}

// UTF8FromUTF16 converts the given UTF-16 code unit sequence, which may
// contain surrogate pairs, to UTF-8.
//
// The input is borrowed for the duration of the call and is not modified.
// If the input contains an ill-formed surrogate sequence, a
// ConversionError is returned. If the input length cannot be represented
// in the signed 32-bit domain used by the conversion arithmetic, an
// overflow error is returned before any codec call is made.
func (c Converter) UTF8FromUTF16(utf16Text []uint16) ([]byte, error) {
	// Special case of an empty input sequence. This path must not
	// delegate to the codec, which treats zero-length sources as errors.
	if len(utf16Text) == 0 {
		return nil, nil
	}

	// Validate the input length once. The same validated length is used
	// by both the measurement and transcode phases.
	srcLen, err := safecast.Int32FromInt(len(utf16Text))
	if err != nil {
		return nil, err
	}

	// Measure the length, in bytes, of the resulting UTF-8 sequence.
	utf8Len, status := c.codec.UTF16ToUTF8(utf16Text, srcLen, nil, true)
	if utf8Len == 0 || status != utfcodec.StatusNone {
		return nil, ConversionError{
			Direction: UTF16ToUTF8,
			Code:      status,
			Message:   "the length of the resulting UTF-8 sequence could not be measured",
		}
	}

	// Make room for the converted text, then perform the actual
	// conversion with the same source, length and validation mode used
	// for measurement.
	utf8Text := make([]byte, utf8Len)
	written, status := c.codec.UTF16ToUTF8(utf16Text, srcLen, utf8Text, true)
	if written == 0 || status != utfcodec.StatusNone {
		return nil, ConversionError{
			Direction: UTF16ToUTF8,
			Code:      status,
			Message:   "the UTF-16 sequence could not be transcoded to UTF-8",
		}
	}

	return utf8Text, nil
}

// UTF16FromUTF8 converts the given UTF-8 byte sequence to UTF-16.
//
// The input is borrowed for the duration of the call and is not modified.
// If the input contains an ill-formed byte sequence, a ConversionError is
// returned. If the input length cannot be represented in the signed
// 32-bit domain used by the conversion arithmetic, an overflow error is
// returned before any codec call is made.
func (c Converter) UTF16FromUTF8(utf8Text []byte) ([]uint16, error) {
	// Special case of an empty input sequence. This path must not
	// delegate to the codec, which treats zero-length sources as errors.
	if len(utf8Text) == 0 {
		return nil, nil
	}

	// Validate the input length once. The same validated length is used
	// by both the measurement and transcode phases.
	srcLen, err := safecast.Int32FromInt(len(utf8Text))
	if err != nil {
		return nil, err
	}

	// Measure the length, in 16-bit code units, of the resulting UTF-16
	// sequence.
	utf16Len, status := c.codec.UTF8ToUTF16(utf8Text, srcLen, nil, true)
	if utf16Len == 0 || status != utfcodec.StatusNone {
		return nil, ConversionError{
			Direction: UTF8ToUTF16,
			Code:      status,
			Message:   "the length of the resulting UTF-16 sequence could not be measured",
		}
	}

	// Make room for the converted text, then perform the actual
	// conversion with the same source, length and validation mode used
	// for measurement.
	utf16Text := make([]uint16, utf16Len)
	written, status := c.codec.UTF8ToUTF16(utf8Text, srcLen, utf16Text, true)
	if written == 0 || status != utfcodec.StatusNone {
		return nil, ConversionError{
			Direction: UTF8ToUTF16,
			Code:      status,
			Message:   "the UTF-8 sequence could not be transcoded to UTF-16",
		}
	}

	return utf16Text, nil
}

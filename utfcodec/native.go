package utfcodec

import (
	"math"
	"unicode/utf16"
	"unicode/utf8"
)

// Native is a Codec that performs the UTF-16 and UTF-8 encoding arithmetic
// directly, without delegating to a platform facility. It is the default
// codec used by the utfconv package on all platforms.
var Native Codec = nativeCodec{}

type nativeCodec struct{}

// These constants are taken from the standard library's utf16 package.
const (
	// 0xd800-0xdc00 encodes the high 10 bits of a pair.
	// 0xdc00-0xe000 encodes the low 10 bits of a pair.
	// the value is those 20 bits plus 0x10000.
	surr1 = 0xd800
	surr2 = 0xdc00
	surr3 = 0xe000

	replacementChar = '\uFFFD' // Unicode replacement character
)

// UTF16ToUTF8 measures or transcodes a UTF-16 code unit sequence into
// UTF-8 bytes.
func (nativeCodec) UTF16ToUTF8(src []uint16, srcLen int32, dst []byte, strict bool) (int32, Status) {
	if srcLen <= 0 || int64(srcLen) > int64(len(src)) {
		return 0, StatusInvalidParameter
	}
	src = src[:srcLen]

	var scratch [utf8.UTFMax]byte
	var written int64
	for i := 0; i < len(src); i++ {
		// Decode the next code point, consuming a surrogate pair when a
		// valid one is present.
		var r rune
		switch c := src[i]; {
		case c < surr1, surr3 <= c:
			r = rune(c)
		case surr1 <= c && c < surr2 && i+1 < len(src) &&
			surr2 <= src[i+1] && src[i+1] < surr3:
			r = utf16.DecodeRune(rune(c), rune(src[i+1]))
			i++
		default:
			// An unpaired high surrogate, a low surrogate without a
			// preceding high surrogate, or a truncated pair.
			if strict {
				return 0, StatusInvalidSequence
			}
			r = replacementChar
		}

		// Encode the code point as UTF-8.
		n := utf8.EncodeRune(scratch[:], r)
		if dst != nil {
			if written+int64(n) > int64(len(dst)) {
				return 0, StatusInsufficientBuffer
			}
			copy(dst[written:], scratch[:n])
		}
		written += int64(n)
	}

	// The output can be up to three times the size of the input, which
	// may exceed the signed 32-bit result domain even when the input
	// length does not.
	if written > math.MaxInt32 {
		return 0, StatusInsufficientBuffer
	}

	return int32(written), StatusNone
}

// UTF8ToUTF16 measures or transcodes a UTF-8 byte sequence into UTF-16
// code units.
func (nativeCodec) UTF8ToUTF16(src []byte, srcLen int32, dst []uint16, strict bool) (int32, Status) {
	if srcLen <= 0 || int64(srcLen) > int64(len(src)) {
		return 0, StatusInvalidParameter
	}
	src = src[:srcLen]

	var written int32
	for len(src) > 0 {
		// Decode the next code point. DecodeRune reports overlong
		// encodings, truncated sequences, encoded surrogates and
		// out-of-range code points as (RuneError, 1).
		r, size := utf8.DecodeRune(src)
		if r == utf8.RuneError && size == 1 {
			if strict {
				return 0, StatusInvalidSequence
			}
			r = replacementChar
		}
		src = src[size:]

		// Encode the code point as one UTF-16 code unit or a surrogate
		// pair. The output never exceeds the number of input bytes, so
		// the running total cannot overflow.
		units := int32(utf16.RuneLen(r))
		if dst != nil {
			if int64(written)+int64(units) > int64(len(dst)) {
				return 0, StatusInsufficientBuffer
			}
			if units == 1 {
				dst[written] = uint16(r)
			} else {
				hi, lo := utf16.EncodeRune(r)
				dst[written] = uint16(hi)
				dst[written+1] = uint16(lo)
			}
		}
		written += units
	}

	return written, StatusNone
}

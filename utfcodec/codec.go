// Package utfcodec provides the text transcoding capability used by the
// utfconv package: measurement and transcoding of text between UTF-16 and
// UTF-8 with optional strict validation.
//
// Three implementations are provided. The Native codec performs the
// encoding arithmetic directly and is the default on all platforms. The
// XText codec delegates to the golang.org/x/text transformers. On Windows,
// an additional codec delegates to the kernel32 conversion primitives.
package utfcodec

// Status is an opaque numeric diagnostic code reported by a codec when a
// measurement or transcoding call fails.
//
// The portable codecs report the constants defined in this package, which
// reuse the kernel32 error numbers for the same conditions. The Windows
// codec reports raw GetLastError values, so codes outside this set are
// possible there.
type Status uint32

const (
	// StatusNone indicates that no diagnostic code is applicable.
	StatusNone Status = 0

	// StatusInvalidParameter indicates that a codec was called with an
	// unusable argument, such as a zero-length source.
	StatusInvalidParameter Status = 87

	// StatusInsufficientBuffer indicates that the provided destination
	// buffer is too small to hold the transcoded output.
	StatusInsufficientBuffer Status = 122

	// StatusInvalidSequence indicates that the source contains an
	// ill-formed code unit sequence and strict validation was requested.
	StatusInvalidSequence Status = 1113
)

// Codec is the capability to measure and transcode text between UTF-16 and
// UTF-8.
//
// Both methods operate on the first srcLen code units of src. When dst is
// nil, the call measures: it returns the exact number of destination code
// units the transcoded output will occupy. When dst is non-nil, the call
// transcodes into dst and returns the number of destination code units
// written; dst must be at least the measured size.
//
// A failed call returns zero and a Status other than StatusNone. In strict
// mode, ill-formed source sequences cause failure; otherwise each
// ill-formed sequence is replaced by U+FFFD. A zero-length source is
// rejected with StatusInvalidParameter, so callers must handle empty input
// before delegating.
//
// Implementations must be safe for concurrent use.
type Codec interface {
	// UTF16ToUTF8 measures or transcodes a UTF-16 code unit sequence into
	// UTF-8 bytes.
	UTF16ToUTF8(src []uint16, srcLen int32, dst []byte, strict bool) (int32, Status)

	// UTF8ToUTF16 measures or transcodes a UTF-8 byte sequence into UTF-16
	// code units.
	UTF8ToUTF16(src []byte, srcLen int32, dst []uint16, strict bool) (int32, Status)
}

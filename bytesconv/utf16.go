// Package bytesconv handles the byte-level framing of UTF-16 text: byte
// order, byte order marks, and the packing of bytes into 16-bit code
// units. It does not interpret or validate the code units themselves;
// that is the responsibility of the utfconv package.
package bytesconv

import "encoding/binary"

// HasBOM returns true if the given bytes start with a unicode byte order
// mark in the specified byte order.
func HasBOM(p []byte, order binary.ByteOrder) bool {
	if len(p) < 2 {
		return false
	}

	return order.Uint16(p) == 0xFEFF
}

// TrimBOM returns the given bytes with a leading byte order mark in the
// specified byte order removed, if one is present.
func TrimBOM(p []byte, order binary.ByteOrder) []byte {
	if HasBOM(p, order) {
		return p[2:]
	}
	return p
}

// CodeUnits packs the given bytes into 16-bit code units using the
// specified byte order. It returns ErrUnevenUTF16 if the number of bytes
// is odd; UTF-16 data always occupies an even number of bytes.
func CodeUnits(p []byte, order binary.ByteOrder) ([]uint16, error) {
	if len(p)%2 != 0 {
		return nil, ErrUnevenUTF16
	}

	units := make([]uint16, 0, len(p)/2)
	for i := 0; i+1 < len(p); i += 2 {
		units = append(units, order.Uint16(p[i:]))
	}

	return units, nil
}

// Bytes serializes the given 16-bit code units using the specified byte
// order.
func Bytes(units []uint16, order binary.ByteOrder) []byte {
	p := make([]byte, len(units)*2)
	for i, u := range units {
		order.PutUint16(p[i*2:], u)
	}

	return p
}

// AppendBOM appends a unicode byte order mark in the specified byte order
// to p and returns the result.
func AppendBOM(p []byte, order binary.ByteOrder) []byte {
	var bom [2]byte
	order.PutUint16(bom[:], 0xFEFF)

	return append(p, bom[:]...)
}

package main

import (
	"bytes"
	"context"
	"encoding/binary"
	"os"
	"path/filepath"
	"testing"
	"unicode/utf16"

	"github.com/unicodeconv/unicodeconv/bytesconv"
)

func TestConvertCommandsRoundTrip(t *testing.T) {
	dir := t.TempDir()

	// Prepare a little-endian UTF-16 file with a byte order mark.
	units := utf16.Encode([]rune("Ciao ciao"))
	source := bytesconv.AppendBOM(nil, binary.LittleEndian)
	source = append(source, bytesconv.Bytes(units, binary.LittleEndian)...)

	in16 := filepath.Join(dir, "in.utf16.txt")
	if err := os.WriteFile(in16, source, 0o644); err != nil {
		t.Fatal(err)
	}

	// Convert it to UTF-8, relying on byte order detection.
	out8 := filepath.Join(dir, "out.utf8.txt")
	to8 := ToUTF8Cmd{In: in16, Out: out8, ByteOrder: "auto"}
	if err := to8.Run(context.Background()); err != nil {
		t.Fatalf("to-utf8 failed: %v", err)
	}
	utf8Data, err := os.ReadFile(out8)
	if err != nil {
		t.Fatal(err)
	}
	if string(utf8Data) != "Ciao ciao" {
		t.Fatalf("unexpected UTF-8 output: %q", utf8Data)
	}

	// Convert it back to UTF-16 and compare with the original file.
	back16 := filepath.Join(dir, "back.utf16.txt")
	to16 := ToUTF16Cmd{In: out8, Out: back16, ByteOrder: "le", BOM: true}
	if err := to16.Run(context.Background()); err != nil {
		t.Fatalf("to-utf16 failed: %v", err)
	}
	utf16Data, err := os.ReadFile(back16)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(utf16Data, source) {
		t.Fatalf("file not equal after round trip: % X → % X", source, utf16Data)
	}
}

func TestConvertCommandRejectsInvalidInput(t *testing.T) {
	dir := t.TempDir()

	in := filepath.Join(dir, "bad.txt")
	if err := os.WriteFile(in, []byte{0x80}, 0o644); err != nil {
		t.Fatal(err)
	}

	cmd := ToUTF16Cmd{In: in, Out: filepath.Join(dir, "out.txt"), ByteOrder: "le"}
	if err := cmd.Run(context.Background()); err == nil {
		t.Fatal("expected an error for invalid UTF-8 input")
	}
}

func TestResolveInputOrder(t *testing.T) {
	le := bytesconv.AppendBOM(nil, binary.LittleEndian)
	be := bytesconv.AppendBOM(nil, binary.BigEndian)

	if order, data := resolveInputOrder(le, "auto"); order != binary.LittleEndian || len(data) != 0 {
		t.Fatalf("unexpected result for little-endian mark: %v, % X", order, data)
	}
	if order, data := resolveInputOrder(be, "auto"); order != binary.BigEndian || len(data) != 0 {
		t.Fatalf("unexpected result for big-endian mark: %v, % X", order, data)
	}
	if order, _ := resolveInputOrder([]byte{'a', 0}, "auto"); order != binary.LittleEndian {
		t.Fatalf("unexpected default order: %v", order)
	}
	if order, _ := resolveInputOrder(le, "be"); order != binary.BigEndian {
		t.Fatalf("the byte order flag was not honored: %v", order)
	}
}

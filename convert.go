package main

import (
	"context"
	"encoding/binary"
	"time"

	"github.com/unicodeconv/unicodeconv/bytesconv"
	"github.com/unicodeconv/unicodeconv/convevent"
	"github.com/unicodeconv/unicodeconv/utfconv"
)

// ToUTF8Cmd converts a UTF-16 text file to UTF-8.
type ToUTF8Cmd struct {
	In        string `kong:"required,name='in',help='Path to the UTF-16 text file to convert.'"`
	Out       string `kong:"required,name='out',help='Path of the UTF-8 text file to create.'"`
	ByteOrder string `kong:"optional,name='byte-order',enum='auto,le,be',default='auto',help='Byte order of the input: auto, le or be.'"`
	Verbose   bool   `kong:"optional,name='verbose',short='v',help='Show debug messages on the command line.'"`
}

// Run executes the to-utf8 command.
func (cmd ToUTF8Cmd) Run(ctx context.Context) error {
	recorder := newRecorder(cmd.Verbose)

	// Read the source file.
	data, err := loadSource(cmd.In)
	if err != nil {
		return err
	}
	recorder.Record(convevent.SourceLoaded{
		Path:     cmd.In,
		Size:     int64(len(data)),
		Encoding: bytesconv.Detect(data),
	})

	// Determine the byte order of the input and strip its byte order
	// mark, if present.
	order, data := resolveInputOrder(data, cmd.ByteOrder)

	// Pack the bytes into 16-bit code units.
	units, err := bytesconv.CodeUnits(data, order)
	if err != nil {
		return err
	}

	// Convert the text.
	started := time.Now()
	out, err := utfconv.UTF8FromUTF16(units)
	recorder.Record(convevent.Conversion{
		Direction:   utfconv.UTF16ToUTF8,
		InputUnits:  len(units),
		OutputUnits: len(out),
		Started:     started,
		Stopped:     time.Now(),
		Err:         err,
	})
	if err != nil {
		return err
	}

	// Write the converted text.
	if err := writeOutput(cmd.Out, out); err != nil {
		return err
	}
	recorder.Record(convevent.OutputWritten{
		Path: cmd.Out,
		Size: int64(len(out)),
	})

	return nil
}

// ToUTF16Cmd converts a UTF-8 text file to UTF-16.
type ToUTF16Cmd struct {
	In        string `kong:"required,name='in',help='Path to the UTF-8 text file to convert.'"`
	Out       string `kong:"required,name='out',help='Path of the UTF-16 text file to create.'"`
	ByteOrder string `kong:"optional,name='byte-order',enum='le,be',default='le',help='Byte order of the output: le or be.'"`
	BOM       bool   `kong:"optional,name='bom',help='Write a byte order mark at the start of the output.'"`
	Verbose   bool   `kong:"optional,name='verbose',short='v',help='Show debug messages on the command line.'"`
}

// Run executes the to-utf16 command.
func (cmd ToUTF16Cmd) Run(ctx context.Context) error {
	recorder := newRecorder(cmd.Verbose)

	// Read the source file.
	data, err := loadSource(cmd.In)
	if err != nil {
		return err
	}
	recorder.Record(convevent.SourceLoaded{
		Path:     cmd.In,
		Size:     int64(len(data)),
		Encoding: bytesconv.Detect(data),
	})

	// Convert the text.
	started := time.Now()
	units, err := utfconv.UTF16FromUTF8(data)
	recorder.Record(convevent.Conversion{
		Direction:   utfconv.UTF8ToUTF16,
		InputUnits:  len(data),
		OutputUnits: len(units),
		Started:     started,
		Stopped:     time.Now(),
		Err:         err,
	})
	if err != nil {
		return err
	}

	// Serialize the code units in the requested byte order.
	order := parseByteOrder(cmd.ByteOrder)
	var out []byte
	if cmd.BOM {
		out = bytesconv.AppendBOM(out, order)
	}
	out = append(out, bytesconv.Bytes(units, order)...)

	// Write the converted text.
	if err := writeOutput(cmd.Out, out); err != nil {
		return err
	}
	recorder.Record(convevent.OutputWritten{
		Path: cmd.Out,
		Size: int64(len(out)),
	})

	return nil
}

// parseByteOrder maps a byte order flag value to a binary byte order.
// Kong restricts the flag to known values.
func parseByteOrder(name string) binary.ByteOrder {
	if name == "be" {
		return binary.BigEndian
	}
	return binary.LittleEndian
}

// resolveInputOrder determines the byte order of UTF-16 input data and
// strips its byte order mark, if present. When the flag requests
// automatic detection, the byte order mark is obeyed; unmarked input is
// assumed to be little-endian.
func resolveInputOrder(data []byte, flag string) (binary.ByteOrder, []byte) {
	switch flag {
	case "le":
		return binary.LittleEndian, bytesconv.TrimBOM(data, binary.LittleEndian)
	case "be":
		return binary.BigEndian, bytesconv.TrimBOM(data, binary.BigEndian)
	}

	if bytesconv.Detect(data) == bytesconv.UTF16BE {
		return binary.BigEndian, bytesconv.TrimBOM(data, binary.BigEndian)
	}
	return binary.LittleEndian, bytesconv.TrimBOM(data, binary.LittleEndian)
}

package main

import (
	"context"
	"fmt"

	"github.com/unicodeconv/unicodeconv/bytesconv"
)

// DetectCmd detects the encoding of a text file.
type DetectCmd struct {
	In string `kong:"required,name='in',help='Path to the text file to examine.'"`
}

// Run executes the detect command.
func (cmd DetectCmd) Run(ctx context.Context) error {
	data, err := loadSource(cmd.In)
	if err != nil {
		return err
	}

	fmt.Println(bytesconv.Detect(data))

	return nil
}

package main

import (
	"errors"
	"log/slog"
	"os"

	"github.com/unicodeconv/unicodeconv/convevent"
)

func loadSource(path string) ([]byte, error) {
	if path == "" {
		return nil, errors.New("missing input file path")
	}
	return os.ReadFile(path)
}

func writeOutput(path string, data []byte) error {
	if path == "" {
		return errors.New("missing output file path")
	}
	return os.WriteFile(path, data, 0o644)
}

func newRecorder(verbose bool) convevent.Recorder {
	min := slog.LevelInfo
	if verbose {
		min = slog.LevelDebug
	}
	return convevent.Recorder{Handler: convevent.NewBasicHandler(os.Stdout, min)}
}

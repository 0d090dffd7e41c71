// Package ingest acquires the raw byte stream to be split. The stream comes
// from a named file, standard input, or a single SRT publish connection, and
// is always materialized fully in memory before scanning starts.
package ingest

import (
	"fmt"
	"io"
	"os"
)

// ReadFile reads the entire file at path into memory.
func ReadFile(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read input %s: %w", path, err)
	}
	return data, nil
}

// ReadAll drains r to EOF, typically standard input.
func ReadAll(r io.Reader) ([]byte, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read input stream: %w", err)
	}
	return data, nil
}

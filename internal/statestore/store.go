// Copyright (c) 2024 Michael D Henderson. All rights reserved.

package statestore

import (
	"bufio"
	"errors"
	"log"
	"os"
	"path/filepath"
)

// LineCodec is satisfied by any persisted struct: it knows how to flatten
// itself to one field per line, and how to read itself back.
type LineCodec interface {
	EncodeLines() []string
	DecodeLines(lines []string) error
}

// LoadOrInit loads the struct at path, or constructs it via def, writes it,
// and returns it if the file doesn't exist yet or cannot be decoded (as
// after a save cut short by a crash). Otherwise the on-disk value is
// authoritative per spec.md's position/progress lifecycle.
func LoadOrInit[T LineCodec](path string, def func() T) (T, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		v := def()
		if err := Save(path, v); err != nil {
			return v, err
		}
		log.Printf("[statestore] %s: initialized\n", path)
		return v, nil
	} else if err != nil {
		var zero T
		return zero, err
	}

	v := def()
	if err := v.DecodeLines(splitLines(data)); err != nil {
		log.Printf("[statestore] %s: %v, reinitializing\n", path, err)
		v = def()
		if err := Save(path, v); err != nil {
			return v, err
		}
		return v, nil
	}
	return v, nil
}

// Save truncates and rewrites path with v's encoded lines. Single-writer
// per turtle id, so no locking is required here.
func Save[T LineCodec](path string, v T) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, 0644)
	if err != nil {
		return err
	}
	defer func() { _ = f.Close() }()

	w := bufio.NewWriter(f)
	for _, line := range v.EncodeLines() {
		if _, err := w.WriteString(line); err != nil {
			return err
		}
		if err := w.WriteByte('\n'); err != nil {
			return err
		}
	}
	return w.Flush()
}

func splitLines(data []byte) []string {
	var lines []string
	start := 0
	for i, b := range data {
		if b == '\n' {
			lines = append(lines, string(data[start:i]))
			start = i + 1
		}
	}
	if start < len(data) {
		lines = append(lines, string(data[start:]))
	}
	return lines
}

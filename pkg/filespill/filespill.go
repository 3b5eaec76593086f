// Package filespill provides an append-only, gob-encoded journal on disk.
package filespill

import (
	"encoding/gob"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
)

const defaultDirName = "snare-journal"

// FileSpill is an append-only sequence of T persisted to a file, so results
// survive a crash mid-batch. It is safe for concurrent use.
type FileSpill[T any] interface {
	Len() uint64
	Path() string
	Append(item T) error
	AppendBatch(items []T) error
	Range(f func(index uint64, item T) error) error
	Close() error
}

type fileSpillImpl[T any] struct {
	path    string
	file    *os.File
	encoder *gob.Encoder
	mu      sync.Mutex
	length  uint64
	closed  bool
}

// NewFileSpill creates a new journal file for items of type T inside dir
// (a snare-journal directory under os.TempDir when dir is empty).
func NewFileSpill[T any](dir string) (FileSpill[T], error) {
	if dir == "" {
		dir = filepath.Join(os.TempDir(), defaultDirName)
	}

	if err := os.MkdirAll(dir, 0o750); err != nil {
		slog.Error("failed to create journal directory", "path", dir, "error", err)
		return nil, fmt.Errorf("failed to create journal directory: %w", err)
	}

	file, err := os.CreateTemp(dir, "journal-*.gob")
	if err != nil {
		slog.Error("failed to create journal file", "path", dir, "error", err)
		return nil, fmt.Errorf("failed to create journal file: %w", err)
	}

	slog.Debug("created journal", "path", file.Name())

	return &fileSpillImpl[T]{
		path:    file.Name(),
		file:    file,
		encoder: gob.NewEncoder(file),
	}, nil
}

// Append implements FileSpill.
func (f *fileSpillImpl[T]) Append(item T) error {
	return f.AppendBatch([]T{item})
}

// AppendBatch implements FileSpill. The items land contiguously even with
// concurrent writers.
func (f *fileSpillImpl[T]) AppendBatch(items []T) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.closed {
		return fmt.Errorf("journal %s is closed", f.path)
	}

	for _, item := range items {
		if err := f.encoder.Encode(item); err != nil {
			slog.Error("failed to encode item", "path", f.path, "index", f.length, "error", err)
			return fmt.Errorf("failed to encode item: %w", err)
		}

		f.length++
	}

	return nil
}

// Path implements FileSpill.
func (f *fileSpillImpl[T]) Path() string {
	return f.path
}

// Len implements FileSpill.
func (f *fileSpillImpl[T]) Len() uint64 {
	f.mu.Lock()
	defer f.mu.Unlock()

	return f.length
}

// Range implements FileSpill. Items are decoded in append order.
func (f *fileSpillImpl[T]) Range(fn func(index uint64, item T) error) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	file, err := os.Open(f.path)
	if err != nil {
		slog.Error("failed to open journal for range", "path", f.path, "error", err)
		return fmt.Errorf("failed to open file: %w", err)
	}

	defer func() {
		if err := file.Close(); err != nil {
			slog.Error("failed to close file", "path", f.path, "error", err)
		}
	}()

	decoder := gob.NewDecoder(file)

	for i := range f.length {
		var item T
		if err := decoder.Decode(&item); err != nil {
			slog.Error("failed to decode item during range", "path", f.path, "index", i, "error", err)
			return fmt.Errorf("failed to decode item at index %d: %w", i, err)
		}

		if err := fn(i, item); err != nil {
			return err
		}
	}

	return nil
}

// Close implements FileSpill. The journal stays readable after Close.
func (f *fileSpillImpl[T]) Close() error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.closed {
		return nil
	}

	f.closed = true

	if err := f.file.Close(); err != nil {
		slog.Error("failed to close journal", "path", f.path, "error", err)
		return err
	}

	slog.Debug("closed journal", "path", f.path, "length", f.length)

	return nil
}

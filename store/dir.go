package store

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// DirBackend stores each key in its own "<key>.json" file in a directory.
//
// Values are written to a temporary file in the same directory and then
// renamed over the previous one, so a reader sees either the old or the new
// value, never a partial one.
type DirBackend struct {
	dir string
}

// NewDirBackend returns a backend storing files in dir. The directory is
// created on the first write.
func NewDirBackend(dir string) *DirBackend { return &DirBackend{dir: dir} }

// Dir returns the storage directory.
func (b *DirBackend) Dir() string { return b.dir }

func (b *DirBackend) path(key string) string { return filepath.Join(b.dir, key+".json") }

func (b *DirBackend) Get(ctx context.Context, key string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	data, err := os.ReadFile(b.path(key))
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("key %q: %w", key, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("could not read %q: %w", key, err)
	}
	return data, nil
}

func (b *DirBackend) Set(ctx context.Context, key string, value []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := os.MkdirAll(b.dir, 0755); err != nil {
		return fmt.Errorf("could not create directory %q: %w", b.dir, err)
	}

	tmp, err := os.CreateTemp(b.dir, "."+key+"-*.tmp")
	if err != nil {
		return fmt.Errorf("could not create temp file for %q: %w", key, err)
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName) // no-op once renamed

	if _, err := tmp.Write(value); err != nil {
		tmp.Close()
		return fmt.Errorf("could not write %q: %w", key, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("could not close temp file for %q: %w", key, err)
	}
	if err := os.Rename(tmpName, b.path(key)); err != nil {
		return fmt.Errorf("could not replace %q: %w", key, err)
	}
	return nil
}

func (b *DirBackend) Delete(ctx context.Context, keys ...string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	var errs []error
	for _, k := range keys {
		if err := os.Remove(b.path(k)); err != nil && !errors.Is(err, fs.ErrNotExist) {
			errs = append(errs, fmt.Errorf("could not delete %q: %w", k, err))
		}
	}
	return errors.Join(errs...)
}

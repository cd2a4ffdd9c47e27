// Package file implements the local filesystem data source: opening a
// single card export for reading and discovering export files in a
// directory.
package file

import (
	"context"
	"fmt"
	"io"
	"os"
)

// Open opens one card export for reading. A context that is already
// canceled returns its error without touching the filesystem. Filesystem
// errors are wrapped with the path while preserving
// errors.Is(err, os.ErrNotExist) checks for callers.
func Open(ctx context.Context, path string) (io.ReadCloser, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	return f, nil
}

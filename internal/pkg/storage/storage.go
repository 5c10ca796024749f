package storage

import (
	"context"
	"io"
)

// Storage abstracts where facility photos live. The platform ships with
// local-disk storage; uploads to a third-party CDN are out of scope.
type Storage interface {
	// Save writes content at the given relative path.
	Save(ctx context.Context, path string, content io.Reader) error

	// Get opens the file at the given relative path.
	Get(ctx context.Context, path string) (io.ReadCloser, error)

	// Delete removes the file at the given relative path. Deleting a
	// missing file is not an error.
	Delete(ctx context.Context, path string) error
}

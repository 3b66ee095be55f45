package storage

import (
	"context"
	"io"
)

type FileStorage interface {
	// Upload stores a file under path and returns its public URL
	Upload(ctx context.Context, file io.Reader, path string, contentType string) (string, error)

	// Delete removes a file
	Delete(ctx context.Context, path string) error

	// Exists checks if file exists
	Exists(ctx context.Context, path string) (bool, error)
}

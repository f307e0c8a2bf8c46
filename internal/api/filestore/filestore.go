// Package filestore holds uploaded documents outside the database, either on
// local disk or in an S3 compatible bucket.
package filestore

import (
	"context"
	"errors"
	"io"
)

var ErrNotFound = errors.New("filestore: not found")

// Backend stores objects by flat name. Names are validated by the caller and
// never contain path separators.
type Backend interface {
	Put(ctx context.Context, name string, body io.Reader, size int64, contentType string) error

	// Open returns the object body. Callers must close it. Missing objects
	// yield ErrNotFound.
	Open(ctx context.Context, name string) (io.ReadCloser, error)
}

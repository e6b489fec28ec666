// Package blobstore abstracts where fitted vectorizer snapshots live:
// in memory (tests), on the local filesystem, or in S3-compatible object
// storage. Snapshots are small immutable blobs written and read whole,
// so the interface is Get/Put rather than streaming.
package blobstore

import (
	"context"
	"errors"
)

// ErrNotFound is returned when a blob does not exist.
//
// Implementations must return an error satisfying
// errors.Is(err, ErrNotFound).
var ErrNotFound = errors.New("blob not found")

// BlobStore stores named immutable blobs.
// Implementations must be safe for concurrent use.
type BlobStore interface {
	// Get reads the named blob in full.
	Get(ctx context.Context, name string) ([]byte, error)

	// Put writes the named blob atomically, replacing any previous
	// content.
	Put(ctx context.Context, name string, data []byte) error

	// Delete removes the named blob. Deleting a missing blob is not an
	// error.
	Delete(ctx context.Context, name string) error

	// List returns the blob names with the given prefix, sorted.
	List(ctx context.Context, prefix string) ([]string, error)
}

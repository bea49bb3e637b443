package blobstore

import (
	"bytes"
	"context"
	"io"
	"os"
)

// ErrNotFound is returned when a blob does not exist.
//
// Implementations should return an error that satisfies `errors.Is(err, ErrNotFound)`.
// The default maps to `os.ErrNotExist`.
var ErrNotFound = os.ErrNotExist

// BlobStore is an abstraction for reading and writing immutable data blobs.
type BlobStore interface {
	// Open opens a blob for reading.
	Open(ctx context.Context, name string) (Blob, error)

	// Put writes a blob atomically, replacing any previous content.
	Put(ctx context.Context, name string, data []byte) error
}

// Blob is a read-only handle to a data blob.
type Blob interface {
	io.ReaderAt
	io.Closer
	// Size returns the size of the blob in bytes.
	Size() int64
}

// Mappable is an optional interface for Blobs that support memory mapping.
type Mappable interface {
	// Bytes returns the underlying byte slice.
	// The slice is valid until the Blob is closed.
	// This is a zero-copy operation if supported.
	Bytes() ([]byte, error)
}

// Ranger is an optional interface for Blobs that can stream a byte range.
type Ranger interface {
	// ReadRange returns a reader for up to length bytes starting at off.
	ReadRange(off, length int64) (io.ReadCloser, error)
}

// NewReader returns a sequential reader over the whole blob.
//
// Mapped blobs are read without copying, blobs implementing Ranger are
// streamed in one request, and everything else falls back to ReadAt.
// The returned reader does not close the blob.
func NewReader(b Blob) (io.ReadCloser, error) {
	size := b.Size()
	if size == 0 {
		return io.NopCloser(bytes.NewReader(nil)), nil
	}
	if m, ok := b.(Mappable); ok {
		data, err := m.Bytes()
		if err != nil {
			return nil, err
		}
		return io.NopCloser(bytes.NewReader(data)), nil
	}
	if r, ok := b.(Ranger); ok {
		return r.ReadRange(0, size)
	}
	return io.NopCloser(io.NewSectionReader(b, 0, size)), nil
}

// ReadAll opens name in store and returns its full content.
func ReadAll(ctx context.Context, store BlobStore, name string) ([]byte, error) {
	b, err := store.Open(ctx, name)
	if err != nil {
		return nil, err
	}
	defer func() { _ = b.Close() }()

	r, err := NewReader(b)
	if err != nil {
		return nil, err
	}
	defer func() { _ = r.Close() }()

	return io.ReadAll(r)
}

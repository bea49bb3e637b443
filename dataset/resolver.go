package dataset

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/hupe1980/kmeanspp/blobstore"
)

// Stdio is the URI that addresses standard input or output.
const Stdio = "-"

var (
	// ErrUnknownScheme is returned for URIs whose scheme has no registered factory.
	ErrUnknownScheme = errors.New("dataset: unknown scheme")

	// ErrInvalidURI is returned for remote URIs without a bucket or key.
	ErrInvalidURI = errors.New("dataset: invalid uri")
)

// Factory creates the store serving one bucket of a remote scheme.
type Factory func(ctx context.Context, bucket string) (blobstore.BlobStore, error)

// Location is a resolved URI.
type Location struct {
	// Store is nil for Stdio.
	Store blobstore.BlobStore
	// Key is the blob name inside Store.
	Key string
}

// IsStdio reports whether the location addresses standard input or output.
func (l Location) IsStdio() bool {
	return l.Store == nil
}

// Resolver maps URIs onto blob stores.
// Stores are created on first use and reused per scheme and bucket.
// A Resolver is safe for concurrent use.
type Resolver struct {
	stdin  io.Reader
	stdout io.Writer

	mu        sync.Mutex
	factories map[string]Factory
	stores    map[string]blobstore.BlobStore
}

// ResolverOption configures a Resolver.
type ResolverOption func(*Resolver)

// WithStdio replaces os.Stdin and os.Stdout.
func WithStdio(in io.Reader, out io.Writer) ResolverOption {
	return func(r *Resolver) {
		r.stdin = in
		r.stdout = out
	}
}

// WithFactory registers a store factory for scheme.
func WithFactory(scheme string, f Factory) ResolverOption {
	return func(r *Resolver) {
		r.factories[strings.ToLower(scheme)] = f
	}
}

// NewResolver creates a Resolver that serves stdio and local paths.
// Remote schemes must be registered with WithFactory.
func NewResolver(opts ...ResolverOption) *Resolver {
	r := &Resolver{
		stdin:     os.Stdin,
		stdout:    os.Stdout,
		factories: make(map[string]Factory),
		stores:    make(map[string]blobstore.BlobStore),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Resolve maps uri onto a store and key.
func (r *Resolver) Resolve(ctx context.Context, uri string) (Location, error) {
	if uri == "" || uri == Stdio {
		return Location{}, nil
	}

	scheme, rest, ok := strings.Cut(uri, "://")
	if !ok || strings.EqualFold(scheme, "file") {
		p := uri
		if ok {
			u, err := url.Parse(uri)
			if err != nil {
				return Location{}, fmt.Errorf("%w: %s: %w", ErrInvalidURI, uri, err)
			}
			p = u.Path
		}
		p = filepath.Clean(p)
		return Location{Store: blobstore.NewLocalStore(filepath.Dir(p)), Key: filepath.Base(p)}, nil
	}

	scheme = strings.ToLower(scheme)
	bucket, key, _ := strings.Cut(rest, "/")
	if bucket == "" || key == "" {
		return Location{}, fmt.Errorf("%w: %s", ErrInvalidURI, uri)
	}

	store, err := r.store(ctx, scheme, bucket)
	if err != nil {
		return Location{}, err
	}
	return Location{Store: store, Key: key}, nil
}

func (r *Resolver) store(ctx context.Context, scheme, bucket string) (blobstore.BlobStore, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	id := scheme + "://" + bucket
	if s, ok := r.stores[id]; ok {
		return s, nil
	}

	f, ok := r.factories[scheme]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownScheme, scheme)
	}
	s, err := f(ctx, bucket)
	if err != nil {
		return nil, fmt.Errorf("dataset: open %s: %w", id, err)
	}
	r.stores[id] = s
	return s, nil
}

// Open returns a decompressed reader over uri.
func (r *Resolver) Open(ctx context.Context, uri string) (io.ReadCloser, error) {
	loc, err := r.Resolve(ctx, uri)
	if err != nil {
		return nil, err
	}
	if loc.IsStdio() {
		return io.NopCloser(r.stdin), nil
	}

	blob, err := loc.Store.Open(ctx, loc.Key)
	if err != nil {
		return nil, fmt.Errorf("dataset: open %s: %w", uri, err)
	}
	raw, err := blobstore.NewReader(blob)
	if err != nil {
		_ = blob.Close()
		return nil, err
	}
	dec, err := decompress(CompressionFor(loc.Key), raw)
	if err != nil {
		_ = raw.Close()
		_ = blob.Close()
		return nil, fmt.Errorf("dataset: open %s: %w", uri, err)
	}

	return &stackedReader{ReadCloser: dec, closers: []io.Closer{raw, blob}}, nil
}

// Put writes data to uri, compressing it according to the key's extension.
func (r *Resolver) Put(ctx context.Context, uri string, data []byte) error {
	loc, err := r.Resolve(ctx, uri)
	if err != nil {
		return err
	}
	if loc.IsStdio() {
		_, err := r.stdout.Write(data)
		return err
	}

	enc, err := compress(CompressionFor(loc.Key), data)
	if err != nil {
		return err
	}
	if err := loc.Store.Put(ctx, loc.Key, enc); err != nil {
		return fmt.Errorf("dataset: write %s: %w", uri, err)
	}
	return nil
}

// stackedReader closes a chain of readers outermost first.
type stackedReader struct {
	io.ReadCloser
	closers []io.Closer
}

func (s *stackedReader) Close() error {
	err := s.ReadCloser.Close()
	for _, c := range s.closers {
		if cerr := c.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}
	return err
}

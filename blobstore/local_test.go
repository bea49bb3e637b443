package blobstore

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLocalBlobStore_Lifecycle(t *testing.T) {
	tmpDir := t.TempDir()
	store := NewLocalStore(tmpDir)

	ctx := context.Background()

	// 1. Put a blob
	blobName := "out/centroids.txt"
	data := []byte("1.0000,2.0000\n3.0000,4.0000\n")

	require.NoError(t, store.Put(ctx, blobName, data))

	// Verify file exists on disk, with no temp files left behind
	expectedPath := filepath.Join(tmpDir, blobName)
	_, err := os.Stat(expectedPath)
	require.NoError(t, err)
	entries, err := os.ReadDir(filepath.Dir(expectedPath))
	require.NoError(t, err)
	require.Len(t, entries, 1)

	// 2. Open and ReadAt
	blob, err := store.Open(ctx, blobName)
	require.NoError(t, err)
	defer blob.Close()

	require.Equal(t, int64(len(data)), blob.Size())

	buf := make([]byte, 6)
	n, err := blob.ReadAt(buf, 7)
	require.NoError(t, err)
	require.Equal(t, 6, n)
	require.Equal(t, "2.0000", string(buf))

	// 3. Mappable
	m, ok := blob.(Mappable)
	require.True(t, ok)
	mapped, err := m.Bytes()
	require.NoError(t, err)
	require.Equal(t, data, mapped)

	// 4. Overwrite
	require.NoError(t, store.Put(ctx, blobName, []byte("5,6\n")))
	got, err := ReadAll(ctx, store, blobName)
	require.NoError(t, err)
	require.Equal(t, "5,6\n", string(got))
}

func TestLocalBlobStore_ReadRange_Boundaries(t *testing.T) {
	store := NewLocalStore(t.TempDir())
	ctx := context.Background()

	blobName := "boundary.bin"
	data := []byte("0123456789")
	require.NoError(t, store.Put(ctx, blobName, data))

	blob, err := store.Open(ctx, blobName)
	require.NoError(t, err)
	defer blob.Close()

	ranger := blob.(Ranger)

	// Case 1: Read full range
	r, err := ranger.ReadRange(0, 10)
	require.NoError(t, err)
	content, _ := io.ReadAll(r)
	r.Close()
	require.Equal(t, data, content)

	// Case 2: Read past end
	r, err = ranger.ReadRange(8, 5)
	require.NoError(t, err)
	content, err = io.ReadAll(r)
	require.NoError(t, err)
	require.Equal(t, "89", string(content))
	r.Close()

	// Case 3: Offset past EOF
	_, err = ranger.ReadRange(20, 5)
	require.ErrorIs(t, err, io.EOF)
}

func TestLocalBlobStore_NotFound(t *testing.T) {
	store := NewLocalStore(t.TempDir())
	_, err := store.Open(context.Background(), "missing.txt")
	require.ErrorIs(t, err, ErrNotFound)
}

func TestLocalBlobStore_CanceledContext(t *testing.T) {
	store := NewLocalStore(t.TempDir())
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	require.ErrorIs(t, store.Put(ctx, "x", []byte("1")), context.Canceled)
	_, err := store.Open(ctx, "x")
	require.ErrorIs(t, err, context.Canceled)
}

package filesystem

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/bnema/zerowrap"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/conanhost/internal/domain"
)

const helloRef = domain.BlobRef("sha256:b94d27b9934d3e08a52e52d7da7dabfac484efe37a5380ee9088f7ace2efcde9")

func newTestStore(t *testing.T) (*BlobStore, string) {
	t.Helper()
	tmpDir := t.TempDir()
	store, err := NewBlobStore(tmpDir, zerowrap.Default())
	require.NoError(t, err)
	return store, tmpDir
}

func TestNewBlobStore(t *testing.T) {
	tmpDir := t.TempDir()

	store, err := NewBlobStore(tmpDir, zerowrap.Default())

	require.NoError(t, err)
	assert.NotNil(t, store)

	// Verify directories were created
	assert.DirExists(t, filepath.Join(tmpDir, "blobs"))
	assert.DirExists(t, filepath.Join(tmpDir, "uploads"))
}

func TestNewBlobStore_InvalidPath(t *testing.T) {
	tmpDir := t.TempDir()
	file := filepath.Join(tmpDir, "file")
	require.NoError(t, os.WriteFile(file, []byte("x"), 0600))

	_, err := NewBlobStore(filepath.Join(file, "nested"), zerowrap.Default())

	assert.Error(t, err)
}

func TestBlobStore_PutAndGet(t *testing.T) {
	store, tmpDir := newTestStore(t)
	ctx := context.Background()

	info, err := store.Put(ctx, strings.NewReader("hello world"), domain.HashAlgorithms)
	require.NoError(t, err)

	assert.Equal(t, helloRef, info.Ref)
	assert.Equal(t, int64(11), info.Size)
	assert.Equal(t, "2aae6c35c94fcfb415dbe95f408b9ce91ee846ed", info.Hashes[domain.HashSHA1])
	assert.Equal(t, "5eb63bbbe01eeed093cb22bb8f5acdc3", info.Hashes[domain.HashMD5])
	assert.FileExists(t, filepath.Join(tmpDir, "blobs", "sha256", "b9", "b94d27b9934d3e08a52e52d7da7dabfac484efe37a5380ee9088f7ace2efcde9"))

	blob, err := store.Get(ctx, info.Ref)
	require.NoError(t, err)
	assert.Equal(t, int64(11), blob.Size())

	reader, err := blob.Open()
	require.NoError(t, err)
	defer reader.Close()

	data, err := io.ReadAll(reader)
	require.NoError(t, err)
	assert.Equal(t, "hello world", string(data))
}

func TestBlobStore_PutLeavesNoTemporaryFiles(t *testing.T) {
	store, tmpDir := newTestStore(t)

	_, err := store.Put(context.Background(), strings.NewReader("hello world"), domain.HashAlgorithms)
	require.NoError(t, err)

	entries, err := os.ReadDir(filepath.Join(tmpDir, "uploads"))
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestBlobStore_PutSameContentTwice(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()

	first, err := store.Put(ctx, strings.NewReader("hello world"), domain.HashAlgorithms)
	require.NoError(t, err)
	second, err := store.Put(ctx, strings.NewReader("hello world"), domain.HashAlgorithms)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

type brokenReader struct{}

func (brokenReader) Read([]byte) (int, error) {
	return 0, io.ErrUnexpectedEOF
}

func TestBlobStore_PutReadFailure(t *testing.T) {
	store, tmpDir := newTestStore(t)

	_, err := store.Put(context.Background(), brokenReader{}, domain.HashAlgorithms)

	assert.ErrorIs(t, err, domain.ErrStorageIO)
	entries, readErr := os.ReadDir(filepath.Join(tmpDir, "uploads"))
	require.NoError(t, readErr)
	assert.Empty(t, entries)
}

func TestBlobStore_PutCancelledContext(t *testing.T) {
	store, _ := newTestStore(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := store.Put(ctx, strings.NewReader("hello world"), domain.HashAlgorithms)

	assert.ErrorIs(t, err, domain.ErrStorageIO)
	assert.Contains(t, err.Error(), context.Canceled.Error())
}

func TestBlobStore_Get_NotFound(t *testing.T) {
	store, _ := newTestStore(t)

	blob, err := store.Get(context.Background(), helloRef)

	assert.ErrorIs(t, err, domain.ErrBlobNotFound)
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.Nil(t, blob)
}

func TestBlobStore_Get_InvalidRef(t *testing.T) {
	store, _ := newTestStore(t)

	_, err := store.Get(context.Background(), "sha256:../../../etc/passwd")

	assert.ErrorIs(t, err, domain.ErrBlobNotFound)
}

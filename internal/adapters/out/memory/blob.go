// Package memory implements volatile storage adapters for tests and
// single-process deployments.
package memory

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"sync"

	"github.com/bnema/conanhost/internal/adapters/out/blobdigest"
	"github.com/bnema/conanhost/internal/boundaries/out"
	"github.com/bnema/conanhost/internal/domain"
)

// BlobStore keeps blob content in a map keyed by content address.
type BlobStore struct {
	mu    sync.RWMutex
	blobs map[domain.BlobRef][]byte
}

var _ out.BlobStore = (*BlobStore)(nil)

// NewBlobStore creates an empty in-memory blob store.
func NewBlobStore() *BlobStore {
	return &BlobStore{blobs: make(map[domain.BlobRef][]byte)}
}

// Put reads r fully and stores it under its sha256 address.
func (s *BlobStore) Put(ctx context.Context, r io.Reader, algorithms []domain.HashAlgorithm) (domain.BlobInfo, error) {
	hasher, err := blobdigest.New(algorithms)
	if err != nil {
		return domain.BlobInfo{}, err
	}

	var buf bytes.Buffer
	if _, err := io.Copy(io.MultiWriter(&buf, hasher), r); err != nil {
		return domain.BlobInfo{}, fmt.Errorf("%w: failed to read blob data: %v", domain.ErrStorageIO, err)
	}
	if err := ctx.Err(); err != nil {
		return domain.BlobInfo{}, err
	}

	info := hasher.Info()

	s.mu.Lock()
	s.blobs[info.Ref] = buf.Bytes()
	s.mu.Unlock()

	return info, nil
}

// Get returns the blob stored at ref.
func (s *BlobStore) Get(_ context.Context, ref domain.BlobRef) (out.Blob, error) {
	s.mu.RLock()
	data, ok := s.blobs[ref]
	s.mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrBlobNotFound, ref)
	}
	return memBlob(data), nil
}

// Len returns the number of stored blobs.
func (s *BlobStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.blobs)
}

type memBlob []byte

func (b memBlob) Open() (io.ReadCloser, error) {
	return io.NopCloser(bytes.NewReader(b)), nil
}

func (b memBlob) Size() int64 {
	return int64(len(b))
}

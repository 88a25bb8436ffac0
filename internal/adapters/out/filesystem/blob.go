// Package filesystem implements storage adapters using the local filesystem.
package filesystem

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/bnema/zerowrap"
	"github.com/google/uuid"

	"github.com/bnema/conanhost/internal/adapters/out/blobdigest"
	"github.com/bnema/conanhost/internal/boundaries/out"
	"github.com/bnema/conanhost/internal/domain"
	"github.com/bnema/conanhost/pkg/validation"
)

// BlobStore implements out.BlobStore as a content-addressed tree:
// <root>/blobs/sha256/<2 hex>/<64 hex>.
type BlobStore struct {
	rootDir string
	log     zerowrap.Logger
}

var _ out.BlobStore = (*BlobStore)(nil)

// NewBlobStore creates a new filesystem blob store instance.
func NewBlobStore(rootDir string, log zerowrap.Logger) (*BlobStore, error) {
	// Create directory structure if it doesn't exist
	dirs := []string{
		filepath.Join(rootDir, "blobs"),
		filepath.Join(rootDir, "uploads"),
	}

	for _, dir := range dirs {
		if err := os.MkdirAll(dir, 0750); err != nil {
			return nil, fmt.Errorf("failed to create directory %s: %w", dir, err)
		}
	}

	log.Info().
		Str(zerowrap.FieldLayer, "adapter").
		Str(zerowrap.FieldAdapter, "filesystem").
		Str("root_dir", rootDir).
		Msg("blob store initialized")

	return &BlobStore{
		rootDir: rootDir,
		log:     log,
	}, nil
}

// Put streams r into a temporary upload file while hashing it, then moves
// the file to its content address.
func (s *BlobStore) Put(ctx context.Context, r io.Reader, algorithms []domain.HashAlgorithm) (domain.BlobInfo, error) {
	hasher, err := blobdigest.New(algorithms)
	if err != nil {
		return domain.BlobInfo{}, err
	}

	// Create temporary file first
	tmpPath := filepath.Join(s.rootDir, "uploads", uuid.NewString()+".tmp")
	file, err := os.OpenFile(tmpPath, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0600)
	if err != nil {
		return domain.BlobInfo{}, fmt.Errorf("%w: failed to create temporary blob file: %v", domain.ErrStorageIO, err)
	}

	_, err = io.Copy(io.MultiWriter(file, hasher), contextReader{ctx: ctx, r: r})
	if closeErr := file.Close(); err == nil {
		err = closeErr
	}
	if err != nil {
		os.Remove(tmpPath)
		return domain.BlobInfo{}, fmt.Errorf("%w: failed to write blob data: %v", domain.ErrStorageIO, err)
	}

	info := hasher.Info()
	blobPath, err := s.blobPath(info.Ref)
	if err != nil {
		os.Remove(tmpPath)
		return domain.BlobInfo{}, err
	}

	// Create directory if it doesn't exist
	if err := os.MkdirAll(filepath.Dir(blobPath), 0750); err != nil {
		os.Remove(tmpPath)
		return domain.BlobInfo{}, fmt.Errorf("%w: failed to create blob directory: %v", domain.ErrStorageIO, err)
	}

	// Move to final location
	if err := os.Rename(tmpPath, blobPath); err != nil {
		os.Remove(tmpPath)
		return domain.BlobInfo{}, fmt.Errorf("%w: failed to move blob to final location: %v", domain.ErrStorageIO, err)
	}

	s.log.Debug().
		Str(zerowrap.FieldLayer, "adapter").
		Str(zerowrap.FieldAdapter, "filesystem").
		Str("digest", string(info.Ref)).
		Int64(zerowrap.FieldSize, info.Size).
		Msg("blob stored")

	return info, nil
}

// Get returns the blob stored at ref.
func (s *BlobStore) Get(_ context.Context, ref domain.BlobRef) (out.Blob, error) {
	blobPath, err := s.blobPath(ref)
	if err != nil {
		return nil, err
	}

	fi, err := os.Stat(blobPath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", domain.ErrBlobNotFound, ref)
		}
		return nil, fmt.Errorf("%w: failed to stat blob: %v", domain.ErrStorageIO, err)
	}

	return fileBlob{path: blobPath, size: fi.Size()}, nil
}

func (s *BlobStore) blobPath(ref domain.BlobRef) (string, error) {
	d, err := blobdigest.ParseRef(ref)
	if err != nil {
		return "", err
	}

	// Two-level directory structure keeps directories small
	hex := d.Encoded()
	blobPath := filepath.Join(s.rootDir, "blobs", d.Algorithm().String(), hex[:2], hex)
	if err := validation.ValidatePathWithinRoot(s.rootDir, blobPath); err != nil {
		return "", fmt.Errorf("%w: %v", domain.ErrBlobNotFound, err)
	}
	return blobPath, nil
}

type fileBlob struct {
	path string
	size int64
}

func (b fileBlob) Open() (io.ReadCloser, error) {
	f, err := os.Open(b.path)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to open blob: %v", domain.ErrStorageIO, err)
	}
	return f, nil
}

func (b fileBlob) Size() int64 {
	return b.size
}

// contextReader stops a copy once ctx is done.
type contextReader struct {
	ctx context.Context
	r   io.Reader
}

func (c contextReader) Read(p []byte) (int, error) {
	if err := c.ctx.Err(); err != nil {
		return 0, err
	}
	return c.r.Read(p)
}

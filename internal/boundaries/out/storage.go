package out

import (
	"context"
	"io"

	"github.com/bnema/conanhost/internal/domain"
)

// MetadataStore opens transactions over the component and asset records.
// Every call to fn is one all-or-nothing unit: when fn returns an error
// nothing it did is visible to other transactions.
type MetadataStore interface {
	// Update runs fn inside a read-write transaction.
	Update(ctx context.Context, fn func(tx StorageTx) error) error

	// View runs fn inside a read-only transaction.
	View(ctx context.Context, fn func(tx StorageTx) error) error

	// Close releases the underlying resources.
	Close() error
}

// ComponentQuery selects components by name, version and group.
// Fields may contain "*" wildcards; empty fields are not constrained.
type ComponentQuery struct {
	Name    string
	Version string
	Group   string
}

// StorageTx is the explicit transaction handle passed to storage operations.
type StorageTx interface {
	// FindComponent returns the component stored for coord,
	// or domain.ErrComponentNotFound.
	FindComponent(ctx context.Context, coord domain.Coordinate) (*domain.Component, error)

	// CreateComponent persists a new component and assigns its ID.
	CreateComponent(ctx context.Context, component *domain.Component) error

	// FindComponents returns the components matching q in storage order.
	FindComponents(ctx context.Context, q ComponentQuery) ([]*domain.Component, error)

	// FindAsset returns the asset stored at path, or domain.ErrAssetNotFound.
	FindAsset(ctx context.Context, path string) (*domain.Asset, error)

	// CreateAsset persists a new asset and assigns its ID.
	CreateAsset(ctx context.Context, asset *domain.Asset) error

	// SaveAsset persists changes to an existing asset.
	SaveAsset(ctx context.Context, asset *domain.Asset) error

	// BrowseAssets returns every asset of a component.
	BrowseAssets(ctx context.Context, componentID string) ([]*domain.Asset, error)

	// AttachBlob points the asset at a blob already written to the BlobStore
	// and updates its size, hashes and content type. It fails with
	// domain.ErrBlobNotFound when info.Ref is not stored. The asset still has
	// to be saved.
	AttachBlob(ctx context.Context, asset *domain.Asset, info domain.BlobInfo, contentType string) error

	// RequireBlob returns the blob behind ref, or domain.ErrBlobNotFound.
	RequireBlob(ctx context.Context, ref domain.BlobRef) (Blob, error)
}

// Blob gives access to stored bytes.
type Blob interface {
	// Open returns a reader over the blob content.
	Open() (io.ReadCloser, error)

	// Size returns the content length in bytes.
	Size() int64
}

// BlobStore defines the contract for content-addressed blob storage.
// Identical content shares one address, so blobs are never removed on
// re-upload.
type BlobStore interface {
	// Put stores the content of r and returns its address, size and hashes.
	Put(ctx context.Context, r io.Reader, algorithms []domain.HashAlgorithm) (domain.BlobInfo, error)

	// Get returns the blob stored at ref.
	Get(ctx context.Context, ref domain.BlobRef) (Blob, error)
}

package in

import (
	"context"
	"io"

	"github.com/bnema/conanhost/internal/domain"
)

// ConanService defines the contract for the hosted Conan repository.
type ConanService interface {
	// Upload stores payload at assetPath, creating the component and asset
	// when they do not exist yet. Existing content is replaced.
	Upload(ctx context.Context, coord domain.Coordinate, assetPath string, payload io.Reader, kind domain.AssetKind) error

	// UploadDownloadURLs stores the client's upload url manifest rewritten
	// relative to assetPath and returns it with absolute URLs.
	UploadDownloadURLs(ctx context.Context, coord domain.Coordinate, assetPath string, manifest io.Reader) (string, error)

	// GetDownloadURLs returns the download url manifest stored at path with absolute URLs.
	GetDownloadURLs(ctx context.Context, path string) (string, error)

	// GetContent resolves the asset stored at path.
	GetContent(ctx context.Context, path string) (*domain.Content, error)

	// Search returns the canonical references of components matching query.
	Search(ctx context.Context, query string) ([]string, error)

	// ListPackageInfos returns the parsed conaninfo documents of a recipe keyed by package id.
	ListPackageInfos(ctx context.Context, coord domain.Coordinate) (map[string]domain.ConanInfo, error)
}

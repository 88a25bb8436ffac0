package domain

import (
	"fmt"
	"io"
	"path"
	"strings"
	"time"

	"github.com/bnema/conanhost/pkg/validation"
)

// Well-known asset file names.
const (
	FileDownloadURLs = "download_urls"
	FileConanInfo    = "conaninfo.txt"
	FileConanFile    = "conanfile.py"
	FileManifest     = "conanmanifest.txt"
	FileExport       = "conan_export.tgz"
	FileSources      = "conan_sources.tgz"
	FilePackage      = "conan_package.tgz"
)

// PackagesDir is the folder holding binary packages below a recipe path.
const PackagesDir = validation.PackagesDir

// Package id extraction offsets for ".../<40 hex id>/conaninfo.txt" paths.
const (
	packageIDLength    = 40
	packageIDEndOffset = len("/" + FileConanInfo)
	packageIDOffset    = packageIDLength + packageIDEndOffset
)

// AssetKind classifies the role of a stored file.
type AssetKind string

const (
	AssetKindConanFile     AssetKind = "CONAN_FILE"
	AssetKindConanManifest AssetKind = "CONAN_MANIFEST"
	AssetKindConanInfo     AssetKind = "CONAN_INFO"
	AssetKindConanExport   AssetKind = "CONAN_EXPORT"
	AssetKindConanSources  AssetKind = "CONAN_SOURCES"
	AssetKindConanPackage  AssetKind = "CONAN_PACKAGE"
	AssetKindDownloadURL   AssetKind = "DOWNLOAD_URL"
)

var assetKindsByFile = map[string]AssetKind{
	FileConanFile:    AssetKindConanFile,
	FileManifest:     AssetKindConanManifest,
	FileConanInfo:    AssetKindConanInfo,
	FileExport:       AssetKindConanExport,
	FileSources:      AssetKindConanSources,
	FilePackage:      AssetKindConanPackage,
	FileDownloadURLs: AssetKindDownloadURL,
}

// AssetKindForFile returns the kind of the asset named by the last path segment.
func AssetKindForFile(assetPath string) (AssetKind, error) {
	kind, ok := assetKindsByFile[path.Base(assetPath)]
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrUnknownAssetKind, path.Base(assetPath))
	}
	return kind, nil
}

// ContentType returns the media type served for assets of this kind.
func (k AssetKind) ContentType() string {
	switch k {
	case AssetKindDownloadURL:
		return "application/json"
	case AssetKindConanFile:
		return "text/x-python"
	case AssetKindConanManifest, AssetKindConanInfo:
		return "text/plain"
	case AssetKindConanExport, AssetKindConanSources, AssetKindConanPackage:
		return "application/gzip"
	default:
		return "application/octet-stream"
	}
}

// HashAlgorithm names a digest computed for every stored blob.
type HashAlgorithm string

const (
	HashSHA1   HashAlgorithm = "sha1"
	HashSHA256 HashAlgorithm = "sha256"
	HashMD5    HashAlgorithm = "md5"
)

// HashAlgorithms is the fixed set recomputed on every blob write.
var HashAlgorithms = []HashAlgorithm{HashSHA1, HashSHA256, HashMD5}

// BlobRef is the content address of a stored blob ("sha256:<hex>").
type BlobRef string

// BlobInfo describes a blob after it has been written.
type BlobInfo struct {
	Ref    BlobRef
	Size   int64
	Hashes map[HashAlgorithm]string
}

// Component groups every asset sharing one coordinate.
type Component struct {
	ID         string
	Group      string
	Name       string
	Version    string
	Attributes map[string]string
	CreatedAt  time.Time
}

// NewComponent creates a component stamped with the coordinate's attributes.
func NewComponent(coord Coordinate) *Component {
	return &Component{
		Group:      coord.Group,
		Name:       coord.Project,
		Version:    coord.Version,
		Attributes: coord.Attributes(),
	}
}

// Channel returns the stored channel ("state") attribute.
func (c *Component) Channel() string {
	return c.Attributes[AttrState]
}

// Coordinate rebuilds the coordinate a component was stored under.
func (c *Component) Coordinate() Coordinate {
	return Coordinate{
		Group:   c.Group,
		Project: c.Name,
		Version: c.Version,
		Channel: c.Channel(),
	}
}

// Asset is one stored file belonging to a component.
type Asset struct {
	ID             string
	ComponentID    string
	Path           string
	Kind           AssetKind
	BlobRef        BlobRef
	Size           int64
	ContentType    string
	Hashes         map[HashAlgorithm]string
	CreatedAt      time.Time
	UpdatedAt      time.Time
	LastDownloaded *time.Time
}

// HasContent reports whether a blob has been attached to the asset.
func (a *Asset) HasContent() bool {
	return a.BlobRef != ""
}

// MarkAsDownloaded records the first read of the asset.
// Returns false when it was already marked.
func (a *Asset) MarkAsDownloaded(now time.Time) bool {
	if a.LastDownloaded != nil {
		return false
	}
	a.LastDownloaded = &now
	return true
}

// ApplyBlob attaches a freshly written blob to the asset.
func (a *Asset) ApplyBlob(info BlobInfo, contentType string, now time.Time) {
	a.BlobRef = info.Ref
	a.Size = info.Size
	a.Hashes = info.Hashes
	a.ContentType = contentType
	a.UpdatedAt = now
}

// IsConanInfo reports whether the asset path names a package-info document.
func IsConanInfo(assetPath string) bool {
	return strings.HasSuffix(assetPath, FileConanInfo)
}

// PackageIDFromInfoPath extracts the 40 character package id of a
// ".../<id>/conaninfo.txt" path, at offset [len-54, len-14).
func PackageIDFromInfoPath(assetPath string) (string, error) {
	if !IsConanInfo(assetPath) {
		return "", fmt.Errorf("%w: %q is not a %s path", ErrInvalidAssetPath, assetPath, FileConanInfo)
	}
	if len(assetPath) < packageIDOffset {
		return "", fmt.Errorf("%w: %q is shorter than %d characters", ErrInvalidAssetPath, assetPath, packageIDOffset)
	}
	return assetPath[len(assetPath)-packageIDOffset : len(assetPath)-packageIDEndOffset], nil
}

// Content is a stream-capable descriptor of a stored asset.
type Content struct {
	Path         string
	Kind         AssetKind
	Size         int64
	ContentType  string
	Hashes       map[HashAlgorithm]string
	LastModified time.Time
	Open         func() (io.ReadCloser, error)
}

// ReadAll opens the content and reads it fully.
func (c *Content) ReadAll() ([]byte, error) {
	r, err := c.Open()
	if err != nil {
		return nil, err
	}
	defer r.Close()
	return io.ReadAll(r)
}

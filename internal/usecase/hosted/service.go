// Package hosted implements the hosted Conan repository use case: storing
// recipe and package files under their coordinates and serving them back.
package hosted

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/bnema/zerowrap"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/bnema/conanhost/internal/boundaries/in"
	"github.com/bnema/conanhost/internal/boundaries/out"
	"github.com/bnema/conanhost/internal/domain"
	"github.com/bnema/conanhost/pkg/validation"
)

// Service implements the ConanService interface.
type Service struct {
	store    out.MetadataStore
	blobs    out.BlobStore
	rewriter out.URLManifestRewriter
	baseURL  string
	tracer   trace.Tracer
	now      func() time.Time
}

var _ in.ConanService = (*Service)(nil)

// NewService creates a new hosted repository service. blobs must be the
// store backing store's transactions. baseURL is the public root under
// which stored files are served.
func NewService(store out.MetadataStore, blobs out.BlobStore, rewriter out.URLManifestRewriter, baseURL string) *Service {
	return &Service{
		store:    store,
		blobs:    blobs,
		rewriter: rewriter,
		baseURL:  strings.TrimSuffix(baseURL, "/"),
		tracer:   otel.Tracer("github.com/bnema/conanhost/internal/usecase/hosted"),
		now:      time.Now,
	}
}

// Upload stores payload at assetPath, creating the component and asset when
// needed. The content always replaces what was stored before. The payload
// is written to the blob store before the metadata transaction opens.
func (s *Service) Upload(ctx context.Context, coord domain.Coordinate, assetPath string, payload io.Reader, kind domain.AssetKind) (err error) {
	ctx, span := s.tracer.Start(ctx, "hosted.Upload", trace.WithAttributes(
		attribute.String("conan.reference", coord.Spec()),
		attribute.String("conan.path", assetPath),
	))
	defer func() { endSpan(span, err) }()

	ctx = zerowrap.CtxWithFields(ctx, map[string]any{
		zerowrap.FieldLayer:   "usecase",
		zerowrap.FieldUseCase: "Upload",
		zerowrap.FieldPath:    assetPath,
		"reference":          coord.Spec(),
		"kind":               string(kind),
	})
	log := zerowrap.FromCtx(ctx)

	if err := validation.ValidateAssetPath(assetPath); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrInvalidAssetPath, err)
	}

	info, err := s.blobs.Put(ctx, payload, domain.HashAlgorithms)
	if err != nil {
		return log.WrapErr(err, "failed to write blob")
	}

	err = s.store.Update(ctx, func(tx out.StorageTx) error {
		component, err := s.findOrCreateComponent(ctx, tx, coord)
		if err != nil {
			return err
		}

		asset, created, err := s.findOrCreateAsset(ctx, tx, component, assetPath, kind)
		if err != nil {
			return err
		}

		if err := tx.AttachBlob(ctx, asset, info, kind.ContentType()); err != nil {
			return fmt.Errorf("failed to attach blob: %w", err)
		}

		asset.MarkAsDownloaded(s.now())
		if err := tx.SaveAsset(ctx, asset); err != nil {
			return fmt.Errorf("failed to save asset: %w", err)
		}

		log.Debug().Bool("created", created).Msg("asset stored")
		return nil
	})
	if err != nil {
		return log.WrapErr(err, "failed to store asset")
	}

	log.Info().Int64(zerowrap.FieldSize, info.Size).Str("digest", string(info.Ref)).Msg("asset uploaded")
	return nil
}

func (s *Service) findOrCreateComponent(ctx context.Context, tx out.StorageTx, coord domain.Coordinate) (*domain.Component, error) {
	component, err := tx.FindComponent(ctx, coord)
	if err == nil {
		return component, nil
	}
	if !errors.Is(err, domain.ErrComponentNotFound) {
		return nil, fmt.Errorf("failed to find component: %w", err)
	}

	component = domain.NewComponent(coord)
	if err := tx.CreateComponent(ctx, component); err != nil {
		return nil, fmt.Errorf("failed to create component: %w", err)
	}
	return component, nil
}

func (s *Service) findOrCreateAsset(ctx context.Context, tx out.StorageTx, component *domain.Component, assetPath string, kind domain.AssetKind) (*domain.Asset, bool, error) {
	asset, err := tx.FindAsset(ctx, assetPath)
	if err == nil {
		return asset, false, nil
	}
	if !errors.Is(err, domain.ErrAssetNotFound) {
		return nil, false, fmt.Errorf("failed to find asset: %w", err)
	}

	asset = &domain.Asset{
		ComponentID: component.ID,
		Path:        assetPath,
		Kind:        kind,
	}
	if err := tx.CreateAsset(ctx, asset); err != nil {
		return nil, false, fmt.Errorf("failed to create asset: %w", err)
	}
	return asset, true, nil
}

// UploadDownloadURLs stores the client's upload manifest with keys rewritten
// relative to assetPath and returns it rooted at the repository base URL.
func (s *Service) UploadDownloadURLs(ctx context.Context, coord domain.Coordinate, assetPath string, manifest io.Reader) (string, error) {
	ctx = zerowrap.CtxWithFields(ctx, map[string]any{
		zerowrap.FieldLayer:   "usecase",
		zerowrap.FieldUseCase: "UploadDownloadURLs",
		zerowrap.FieldPath:    assetPath,
	})
	log := zerowrap.FromCtx(ctx)

	saved, err := s.rewriter.RelativeKeys(assetPath+"/", manifest)
	if err != nil {
		return "", log.WrapErr(err, "failed to rewrite upload manifest")
	}

	if err := s.Upload(ctx, coord, assetPath+"/"+domain.FileDownloadURLs, strings.NewReader(saved), domain.AssetKindDownloadURL); err != nil {
		return "", err
	}

	response, err := s.rewriter.AbsoluteValues(s.baseURL, strings.NewReader(saved))
	if err != nil {
		return "", log.WrapErr(err, "failed to render upload urls")
	}
	return response, nil
}

// GetDownloadURLs returns the manifest stored at path with absolute URLs.
func (s *Service) GetDownloadURLs(ctx context.Context, path string) (string, error) {
	content, err := s.GetContent(ctx, path)
	if err != nil {
		return "", err
	}

	ctx = zerowrap.CtxWithFields(ctx, map[string]any{
		zerowrap.FieldLayer:   "usecase",
		zerowrap.FieldUseCase: "GetDownloadURLs",
		zerowrap.FieldPath:    path,
	})
	log := zerowrap.FromCtx(ctx)

	r, err := content.Open()
	if err != nil {
		return "", log.WrapErr(err, "failed to open download manifest")
	}
	defer r.Close()

	response, err := s.rewriter.AbsoluteValues(s.baseURL, r)
	if err != nil {
		return "", log.WrapErr(err, "failed to render download urls")
	}
	return response, nil
}

// GetContent resolves the asset stored at path and records its first download.
func (s *Service) GetContent(ctx context.Context, path string) (content *domain.Content, err error) {
	ctx, span := s.tracer.Start(ctx, "hosted.GetContent", trace.WithAttributes(
		attribute.String("conan.path", path),
	))
	defer func() { endSpan(span, err) }()

	ctx = zerowrap.CtxWithFields(ctx, map[string]any{
		zerowrap.FieldLayer:   "usecase",
		zerowrap.FieldUseCase: "GetContent",
		zerowrap.FieldPath:    path,
	})
	log := zerowrap.FromCtx(ctx)

	var firstDownload bool
	err = s.store.View(ctx, func(tx out.StorageTx) error {
		asset, err := tx.FindAsset(ctx, path)
		if err != nil {
			return err
		}
		if !asset.HasContent() {
			return fmt.Errorf("%w: %s has no content", domain.ErrAssetNotFound, path)
		}

		blob, err := tx.RequireBlob(ctx, asset.BlobRef)
		if err != nil {
			return err
		}

		firstDownload = asset.LastDownloaded == nil
		content = &domain.Content{
			Path:         asset.Path,
			Kind:         asset.Kind,
			Size:         blob.Size(),
			ContentType:  asset.ContentType,
			Hashes:       asset.Hashes,
			LastModified: asset.UpdatedAt,
			Open:         blob.Open,
		}
		return nil
	})
	if errors.Is(err, domain.ErrNotFound) {
		log.Debug().Err(err).Msg("asset not found")
		return nil, err
	}
	if err != nil {
		return nil, log.WrapErr(err, "failed to get content")
	}

	if firstDownload {
		if err := s.recordDownload(ctx, path); err != nil {
			log.Warn().Err(err).Msg("failed to record download")
		}
	}
	return content, nil
}

// recordDownload stamps the asset's first download in its own short
// transaction.
func (s *Service) recordDownload(ctx context.Context, path string) error {
	return s.store.Update(ctx, func(tx out.StorageTx) error {
		asset, err := tx.FindAsset(ctx, path)
		if err != nil {
			return err
		}
		if !asset.MarkAsDownloaded(s.now()) {
			return nil
		}
		return tx.SaveAsset(ctx, asset)
	})
}

func endSpan(span trace.Span, err error) {
	if err != nil && !errors.Is(err, domain.ErrNotFound) {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	span.End()
}

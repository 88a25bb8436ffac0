package hosted

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/bnema/zerowrap"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/bnema/conanhost/internal/boundaries/out"
	"github.com/bnema/conanhost/internal/domain"
)

// Search returns the canonical references of stored components matching
// query, in storage order. An empty query matches everything.
func (s *Service) Search(ctx context.Context, query string) (results []string, err error) {
	ctx, span := s.tracer.Start(ctx, "hosted.Search", trace.WithAttributes(
		attribute.String("conan.query", query),
	))
	defer func() { endSpan(span, err) }()

	ctx = zerowrap.CtxWithFields(ctx, map[string]any{
		zerowrap.FieldLayer:   "usecase",
		zerowrap.FieldUseCase: "Search",
		"query":              query,
	})
	log := zerowrap.FromCtx(ctx)

	if strings.TrimSpace(query) == "" {
		query = domain.Wildcard
	}

	coord, err := domain.ParseQuery(query)
	if err != nil {
		log.Debug().Err(err).Msg("rejected search query")
		return nil, err
	}

	results = []string{}
	err = s.store.View(ctx, func(tx out.StorageTx) error {
		components, err := tx.FindComponents(ctx, out.ComponentQuery{
			Name:    coord.Project,
			Version: coord.Version,
			Group:   coord.Group,
		})
		if err != nil {
			return err
		}

		for _, c := range components {
			if coord.Channel != "" && c.Channel() != coord.Channel {
				continue
			}
			results = append(results, c.Coordinate().Spec())
		}
		return nil
	})
	if err != nil {
		return nil, log.WrapErr(err, "failed to search components")
	}

	log.Debug().Int("results", len(results)).Msg("search completed")
	return results, nil
}

// ListPackageInfos returns the parsed conaninfo documents stored below a
// recipe, keyed by package id. Unreadable documents yield an empty tree.
func (s *Service) ListPackageInfos(ctx context.Context, coord domain.Coordinate) (infos map[string]domain.ConanInfo, err error) {
	ctx, span := s.tracer.Start(ctx, "hosted.ListPackageInfos", trace.WithAttributes(
		attribute.String("conan.reference", coord.Spec()),
	))
	defer func() { endSpan(span, err) }()

	ctx = zerowrap.CtxWithFields(ctx, map[string]any{
		zerowrap.FieldLayer:   "usecase",
		zerowrap.FieldUseCase: "ListPackageInfos",
		"reference":          coord.Spec(),
	})
	log := zerowrap.FromCtx(ctx)

	infos = make(map[string]domain.ConanInfo)
	err = s.store.View(ctx, func(tx out.StorageTx) error {
		component, err := tx.FindComponent(ctx, coord)
		if err != nil {
			return err
		}

		assets, err := tx.BrowseAssets(ctx, component.ID)
		if err != nil {
			return fmt.Errorf("failed to browse assets: %w", err)
		}

		for _, asset := range assets {
			if !domain.IsConanInfo(asset.Path) {
				continue
			}
			id, err := domain.PackageIDFromInfoPath(asset.Path)
			if err != nil {
				return err
			}
			infos[id] = s.loadInfo(ctx, tx, asset)
		}
		return nil
	})
	if errors.Is(err, domain.ErrNotFound) {
		log.Debug().Err(err).Msg("recipe not found")
		return nil, err
	}
	if err != nil {
		return nil, log.WrapErr(err, "failed to list package infos")
	}
	return infos, nil
}

// loadInfo parses one stored conaninfo document. Any read failure degrades
// to an empty tree.
func (s *Service) loadInfo(ctx context.Context, tx out.StorageTx, asset *domain.Asset) domain.ConanInfo {
	log := zerowrap.FromCtx(zerowrap.CtxWithField(ctx, zerowrap.FieldPath, asset.Path))

	blob, err := tx.RequireBlob(ctx, asset.BlobRef)
	if err != nil {
		log.Warn().Err(err).Msg("package info unavailable")
		return domain.ConanInfo{}
	}

	r, err := blob.Open()
	if err != nil {
		log.Warn().Err(err).Msg("failed to open package info")
		return domain.ConanInfo{}
	}
	defer r.Close()

	info, err := domain.ParseInfo(r)
	if err != nil {
		log.Warn().Err(err).Msg("failed to read package info")
		return domain.ConanInfo{}
	}
	return info
}

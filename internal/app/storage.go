package app

import (
	"context"
	"fmt"

	"github.com/bnema/zerowrap"

	"github.com/bnema/conanhost/internal/adapters/out/filesystem"
	"github.com/bnema/conanhost/internal/adapters/out/memory"
	"github.com/bnema/conanhost/internal/adapters/out/sqlite"
	"github.com/bnema/conanhost/internal/boundaries/out"
)

// createStorage opens the metadata store for the configured backend along
// with the blob store its transactions attach content from.
func createStorage(ctx context.Context, cfg Config, log zerowrap.Logger) (out.MetadataStore, out.BlobStore, error) {
	switch cfg.Storage.Backend {
	case BackendMemory:
		log.Warn().Msg("using in-memory storage, uploads are lost on restart")
		blobs := memory.NewBlobStore()
		return memory.NewMetadataStore(blobs), blobs, nil
	case BackendSQLite:
		blobs, err := filesystem.NewBlobStore(cfg.Storage.DataDir, log)
		if err != nil {
			return nil, nil, log.WrapErr(err, "failed to create blob store")
		}
		store, err := sqlite.Open(ctx, cfg.Storage.DataDir, blobs, log)
		if err != nil {
			return nil, nil, log.WrapErr(err, "failed to open metadata store")
		}
		return store, blobs, nil
	default:
		return nil, nil, fmt.Errorf("unknown storage backend: %s", cfg.Storage.Backend)
	}
}

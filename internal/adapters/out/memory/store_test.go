package memory

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/bnema/conanhost/internal/boundaries/out"
	"github.com/bnema/conanhost/internal/boundaries/out/mocks"
	"github.com/bnema/conanhost/internal/domain"
)

var zlib = domain.Coordinate{Group: "conan", Project: "zlib", Version: "1.2.11", Channel: "stable"}

func newTestStore() *MetadataStore {
	store := NewMetadataStore(NewBlobStore())
	fixed := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	store.now = func() time.Time { return fixed }
	return store
}

func seed(t *testing.T, store *MetadataStore, coords ...domain.Coordinate) {
	t.Helper()
	err := store.Update(context.Background(), func(tx out.StorageTx) error {
		for _, c := range coords {
			if err := tx.CreateComponent(context.Background(), domain.NewComponent(c)); err != nil {
				return err
			}
		}
		return nil
	})
	require.NoError(t, err)
}

func TestMetadataStore_CreateAndFindComponent(t *testing.T) {
	store := newTestStore()
	ctx := context.Background()

	component := domain.NewComponent(zlib)
	err := store.Update(ctx, func(tx out.StorageTx) error {
		return tx.CreateComponent(ctx, component)
	})
	require.NoError(t, err)
	assert.NotEmpty(t, component.ID)

	err = store.View(ctx, func(tx out.StorageTx) error {
		found, err := tx.FindComponent(ctx, zlib)
		require.NoError(t, err)
		assert.Equal(t, component.ID, found.ID)
		assert.Equal(t, "stable", found.Channel())
		assert.Equal(t, store.now(), found.CreatedAt)
		return nil
	})
	require.NoError(t, err)
}

func TestMetadataStore_FindComponent_ChannelIsPartOfIdentity(t *testing.T) {
	store := newTestStore()
	seed(t, store, zlib)

	other := zlib
	other.Channel = "testing"

	err := store.View(context.Background(), func(tx out.StorageTx) error {
		_, err := tx.FindComponent(context.Background(), other)
		return err
	})

	assert.ErrorIs(t, err, domain.ErrComponentNotFound)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestMetadataStore_CreateComponent_Duplicate(t *testing.T) {
	store := newTestStore()
	seed(t, store, zlib)

	err := store.Update(context.Background(), func(tx out.StorageTx) error {
		return tx.CreateComponent(context.Background(), domain.NewComponent(zlib))
	})

	assert.ErrorIs(t, err, domain.ErrAlreadyExists)
}

func TestMetadataStore_UpdateRollsBackOnError(t *testing.T) {
	store := newTestStore()
	ctx := context.Background()
	boom := errors.New("boom")

	err := store.Update(ctx, func(tx out.StorageTx) error {
		if err := tx.CreateComponent(ctx, domain.NewComponent(zlib)); err != nil {
			return err
		}
		return boom
	})
	assert.ErrorIs(t, err, boom)

	err = store.View(ctx, func(tx out.StorageTx) error {
		_, err := tx.FindComponent(ctx, zlib)
		return err
	})
	assert.ErrorIs(t, err, domain.ErrComponentNotFound)
}

func TestMetadataStore_UpdateCancelledContext(t *testing.T) {
	store := newTestStore()
	ctx, cancel := context.WithCancel(context.Background())

	err := store.Update(ctx, func(tx out.StorageTx) error {
		cancel()
		return tx.CreateComponent(ctx, domain.NewComponent(zlib))
	})
	assert.ErrorIs(t, err, context.Canceled)

	err = store.View(context.Background(), func(tx out.StorageTx) error {
		_, err := tx.FindComponent(context.Background(), zlib)
		return err
	})
	assert.ErrorIs(t, err, domain.ErrComponentNotFound)
}

func TestMetadataStore_ViewRejectsWrites(t *testing.T) {
	store := newTestStore()
	ctx := context.Background()

	err := store.View(ctx, func(tx out.StorageTx) error {
		return tx.CreateComponent(ctx, domain.NewComponent(zlib))
	})

	assert.ErrorIs(t, err, domain.ErrReadOnlyTx)
}

func TestMetadataStore_FindComponents(t *testing.T) {
	store := newTestStore()
	seed(t, store,
		zlib,
		domain.Coordinate{Group: "conan", Project: "zlib", Version: "1.2.12", Channel: "testing"},
		domain.Coordinate{Group: "bincrafters", Project: "zlib-ng", Version: "2.0.0", Channel: "stable"},
		domain.Coordinate{Project: "openssl", Version: "3.0.0"},
	)

	tests := []struct {
		name  string
		query out.ComponentQuery
		want  []string
	}{
		{"everything", out.ComponentQuery{Name: "*"}, []string{"zlib", "zlib", "zlib-ng", "openssl"}},
		{"exact name", out.ComponentQuery{Name: "zlib"}, []string{"zlib", "zlib"}},
		{"prefix", out.ComponentQuery{Name: "zlib*"}, []string{"zlib", "zlib", "zlib-ng"}},
		{"version wildcard", out.ComponentQuery{Name: "*", Version: "1.*"}, []string{"zlib", "zlib"}},
		{"group", out.ComponentQuery{Name: "*", Group: "bincrafters"}, []string{"zlib-ng"}},
		{"group wildcard matches absent group", out.ComponentQuery{Name: "open*", Group: "*"}, []string{"openssl"}},
		{"no match", out.ComponentQuery{Name: "boost"}, nil},
		{"glob metacharacters are literal", out.ComponentQuery{Name: "zli?"}, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := store.View(context.Background(), func(tx out.StorageTx) error {
				found, err := tx.FindComponents(context.Background(), tt.query)
				require.NoError(t, err)

				var names []string
				for _, c := range found {
					names = append(names, c.Name)
				}
				assert.Equal(t, tt.want, names)
				return nil
			})
			require.NoError(t, err)
		})
	}
}

func TestMetadataStore_AssetLifecycle(t *testing.T) {
	blobs := NewBlobStore()
	store := NewMetadataStore(blobs)
	ctx := context.Background()
	path := zlib.StoragePath(domain.FileConanFile)

	info, err := blobs.Put(ctx, strings.NewReader("from conans import ConanFile"), domain.HashAlgorithms)
	require.NoError(t, err)

	err = store.Update(ctx, func(tx out.StorageTx) error {
		component := domain.NewComponent(zlib)
		require.NoError(t, tx.CreateComponent(ctx, component))

		asset := &domain.Asset{ComponentID: component.ID, Path: path, Kind: domain.AssetKindConanFile}
		require.NoError(t, tx.CreateAsset(ctx, asset))

		require.NoError(t, tx.AttachBlob(ctx, asset, info, "text/x-python"))
		assert.Equal(t, info.Ref, asset.BlobRef)
		return tx.SaveAsset(ctx, asset)
	})
	require.NoError(t, err)

	err = store.View(ctx, func(tx out.StorageTx) error {
		asset, err := tx.FindAsset(ctx, path)
		require.NoError(t, err)
		assert.Equal(t, "text/x-python", asset.ContentType)
		assert.Len(t, asset.Hashes, 3)

		blob, err := tx.RequireBlob(ctx, asset.BlobRef)
		require.NoError(t, err)
		assert.Equal(t, asset.Size, blob.Size())

		assets, err := tx.BrowseAssets(ctx, asset.ComponentID)
		require.NoError(t, err)
		assert.Len(t, assets, 1)
		return nil
	})
	require.NoError(t, err)
}

func TestMetadataStore_FindAsset_NotFound(t *testing.T) {
	store := newTestStore()

	err := store.View(context.Background(), func(tx out.StorageTx) error {
		_, err := tx.FindAsset(context.Background(), "conan/zlib/1.2.11/stable/conanfile.py")
		return err
	})

	assert.ErrorIs(t, err, domain.ErrAssetNotFound)
}

func TestMetadataStore_CreateAsset_UnknownComponent(t *testing.T) {
	store := newTestStore()

	err := store.Update(context.Background(), func(tx out.StorageTx) error {
		return tx.CreateAsset(context.Background(), &domain.Asset{ComponentID: "missing", Path: "a/b"})
	})

	assert.ErrorIs(t, err, domain.ErrComponentNotFound)
}

func TestMetadataStore_SaveAsset_Unknown(t *testing.T) {
	store := newTestStore()

	err := store.Update(context.Background(), func(tx out.StorageTx) error {
		return tx.SaveAsset(context.Background(), &domain.Asset{ID: "x", Path: "a/b"})
	})

	assert.ErrorIs(t, err, domain.ErrAssetNotFound)
}

func TestMetadataStore_ReturnedRecordsAreCopies(t *testing.T) {
	store := newTestStore()
	seed(t, store, zlib)
	ctx := context.Background()

	err := store.Update(ctx, func(tx out.StorageTx) error {
		found, err := tx.FindComponent(ctx, zlib)
		require.NoError(t, err)
		found.Attributes[domain.AttrState] = "testing"
		return nil
	})
	require.NoError(t, err)

	err = store.View(ctx, func(tx out.StorageTx) error {
		_, err := tx.FindComponent(ctx, zlib)
		return err
	})
	assert.NoError(t, err)
}

func TestMetadataStore_AttachBlob_MissingBlob(t *testing.T) {
	blobs := mocks.NewMockBlobStore(t)
	store := NewMetadataStore(blobs)
	ctx := context.Background()
	asset := &domain.Asset{}

	blobs.EXPECT().Get(mock.Anything, domain.BlobRef("sha256:gone")).Return(nil, domain.ErrBlobNotFound)

	err := store.Update(ctx, func(tx out.StorageTx) error {
		return tx.AttachBlob(ctx, asset, domain.BlobInfo{Ref: "sha256:gone", Size: 1}, "text/plain")
	})

	assert.ErrorIs(t, err, domain.ErrBlobNotFound)
	assert.False(t, asset.HasContent())
}

func TestMetadataStore_AttachBlob_ReadOnly(t *testing.T) {
	store := newTestStore()
	ctx := context.Background()

	err := store.View(ctx, func(tx out.StorageTx) error {
		return tx.AttachBlob(ctx, &domain.Asset{}, domain.BlobInfo{Ref: "sha256:abc"}, "text/plain")
	})

	assert.ErrorIs(t, err, domain.ErrReadOnlyTx)
}

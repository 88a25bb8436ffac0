package hosted

import (
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

const (
	linuxPackageID   = "5ab84d6acfe1f23c4fae0ab88f26e3a396351ac9"
	windowsPackageID = "3fb49604f9c2f729b85ba3115852006824e72cab"
)

const linuxInfo = `[settings]
    arch=x86_64
    os=Linux

[options]
    shared=False

[recipe_hash]
    3d7e81eae7738a9357d85e31372bce01
`

func seedRecipes(t *testing.T, f fixture, coords ...domain.Coordinate) {
	t.Helper()
	for _, c := range coords {
		require.NoError(t, f.svc.Upload(testContext(), c, c.StoragePath(domain.FileConanFile), strings.NewReader("recipe"), domain.AssetKindConanFile))
	}
}

func TestService_Search(t *testing.T) {
	f := newFixture(t)
	seedRecipes(t, f,
		zlib,
		domain.Coordinate{Group: "conan", Project: "zlib", Version: "1.2.12", Channel: "testing"},
		domain.Coordinate{Group: "bincrafters", Project: "zlib-ng", Version: "2.0.0", Channel: "stable"},
		domain.Coordinate{Project: "openssl", Version: "3.0.0"},
	)

	tests := []struct {
		query string
		want  []string
	}{
		{"zlib", []string{"zlib/1.2.11@conan/stable", "zlib/1.2.12@conan/testing"}},
		{"zlib/1.2.11@conan/stable", []string{"zlib/1.2.11@conan/stable"}},
		{"*", []string{"zlib/1.2.11@conan/stable", "zlib/1.2.12@conan/testing", "zlib-ng/2.0.0@bincrafters/stable", "openssl/3.0.0"}},
		{"", []string{"zlib/1.2.11@conan/stable", "zlib/1.2.12@conan/testing", "zlib-ng/2.0.0@bincrafters/stable", "openssl/3.0.0"}},
		{"zlib*@*/stable", []string{"zlib/1.2.11@conan/stable", "zlib-ng/2.0.0@bincrafters/stable"}},
		{"zlib/1.*", []string{"zlib/1.2.11@conan/stable", "zlib/1.2.12@conan/testing"}},
		{"*@bincrafters", []string{"zlib-ng/2.0.0@bincrafters/stable"}},
		{"boost", []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			got, err := f.svc.Search(testContext(), tt.query)

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestService_Search_ChannelFilterIsExact(t *testing.T) {
	f := newFixture(t)
	seedRecipes(t, f, zlib)

	got, err := f.svc.Search(testContext(), "zlib@conan/stab*")

	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestService_Search_InvalidQuery(t *testing.T) {
	f := newFixture(t)

	for _, q := range []string{"zlib@conan@other", "zlib/1/2/3", "@conan"} {
		_, err := f.svc.Search(testContext(), q)
		assert.ErrorIs(t, err, domain.ErrInvalidQuery, "query %q", q)
	}
}

func TestService_Search_StoreFailure(t *testing.T) {
	store := mocks.NewMockMetadataStore(t)
	svc := NewService(store, mocks.NewMockBlobStore(t), mocks.NewMockURLManifestRewriter(t), baseURL)

	store.EXPECT().View(mock.Anything, mock.Anything).Return(domain.ErrStorageIO)

	_, err := svc.Search(testContext(), "zlib")

	assert.ErrorIs(t, err, domain.ErrStorageIO)
	assert.Contains(t, err.Error(), "failed to search components")
}

func TestService_ListPackageInfos(t *testing.T) {
	f := newFixture(t)
	ctx := testContext()
	seedRecipes(t, f, zlib)

	uploads := map[string]string{
		zlib.StoragePath(domain.PackagesDir, linuxPackageID, domain.FileConanInfo):   linuxInfo,
		zlib.StoragePath(domain.PackagesDir, linuxPackageID, domain.FilePackage):     "binary",
		zlib.StoragePath(domain.PackagesDir, windowsPackageID, domain.FileConanInfo): "[settings]\nos=Windows\n",
	}
	for path, body := range uploads {
		kind, err := domain.AssetKindForFile(path)
		require.NoError(t, err)
		require.NoError(t, f.svc.Upload(ctx, zlib, path, strings.NewReader(body), kind))
	}

	infos, err := f.svc.ListPackageInfos(ctx, zlib)

	require.NoError(t, err)
	require.Len(t, infos, 2)
	assert.Equal(t, map[string]string{"arch": "x86_64", "os": "Linux"}, infos[linuxPackageID].Attribute("settings"))
	assert.Equal(t, "3d7e81eae7738a9357d85e31372bce01", infos[linuxPackageID].Attribute("recipe_hash"))
	assert.Equal(t, map[string]string{"os": "Windows"}, infos[windowsPackageID].Attribute("settings"))
}

func TestService_ListPackageInfos_NoPackages(t *testing.T) {
	f := newFixture(t)
	seedRecipes(t, f, zlib)

	infos, err := f.svc.ListPackageInfos(testContext(), zlib)

	require.NoError(t, err)
	assert.NotNil(t, infos)
	assert.Empty(t, infos)
}

func TestService_ListPackageInfos_RecipeNotFound(t *testing.T) {
	f := newFixture(t)

	_, err := f.svc.ListPackageInfos(testContext(), zlib)

	assert.ErrorIs(t, err, domain.ErrComponentNotFound)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestService_ListPackageInfos_UnreadableInfoIsEmpty(t *testing.T) {
	f := newFixture(t)
	ctx := testContext()
	path := zlib.StoragePath(domain.PackagesDir, linuxPackageID, domain.FileConanInfo)
	missing := domain.BlobInfo{Ref: "sha256:0000000000000000000000000000000000000000000000000000000000000000", Size: 12}
	err := f.store.Update(ctx, func(tx out.StorageTx) error {
		component := domain.NewComponent(zlib)
		require.NoError(t, tx.CreateComponent(ctx, component))
		asset := &domain.Asset{ComponentID: component.ID, Path: path, Kind: domain.AssetKindConanInfo}
		require.NoError(t, tx.CreateAsset(ctx, asset))
		asset.ApplyBlob(missing, domain.AssetKindConanInfo.ContentType(), time.Now())
		return tx.SaveAsset(ctx, asset)
	})
	require.NoError(t, err)

	infos, err := f.svc.ListPackageInfos(ctx, zlib)

	require.NoError(t, err)
	require.Contains(t, infos, linuxPackageID)
	assert.Empty(t, infos[linuxPackageID])
}

func TestService_ListPackageInfos_ShortInfoPath(t *testing.T) {
	f := newFixture(t)
	ctx := testContext()
	require.NoError(t, f.svc.Upload(ctx, zlib, "conan/zlib/conaninfo.txt", strings.NewReader("[a]\nb"), domain.AssetKindConanInfo))

	_, err := f.svc.ListPackageInfos(ctx, zlib)

	assert.ErrorIs(t, err, domain.ErrInvalidAssetPath)
}

package memory

import (
	"context"
	"fmt"
	"maps"
	"strings"
	"sync"
	"time"

	"github.com/gobwas/glob"
	"github.com/google/uuid"

	"github.com/bnema/conanhost/internal/boundaries/out"
	"github.com/bnema/conanhost/internal/domain"
)

// MetadataStore implements out.MetadataStore over in-memory records.
// Update works on a staged copy that replaces the live state only when fn
// succeeds, so a failed transaction leaves no trace.
type MetadataStore struct {
	mu    sync.RWMutex
	state *state
	blobs out.BlobStore
	now   func() time.Time
}

var _ out.MetadataStore = (*MetadataStore)(nil)

// NewMetadataStore creates an empty store writing content to blobs.
func NewMetadataStore(blobs out.BlobStore) *MetadataStore {
	return &MetadataStore{
		state: newState(),
		blobs: blobs,
		now:   time.Now,
	}
}

// Update runs fn inside a read-write transaction.
func (s *MetadataStore) Update(ctx context.Context, fn func(tx out.StorageTx) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	staged := s.state.clone()
	if err := fn(&tx{state: staged, blobs: s.blobs, now: s.now}); err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	s.state = staged
	return nil
}

// View runs fn inside a read-only transaction.
func (s *MetadataStore) View(_ context.Context, fn func(tx out.StorageTx) error) error {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return fn(&tx{state: s.state, blobs: s.blobs, now: s.now, readOnly: true})
}

// Close implements out.MetadataStore.
func (s *MetadataStore) Close() error {
	return nil
}

type state struct {
	components []*domain.Component
	assets     map[string]*domain.Asset
	assetOrder []string
}

func newState() *state {
	return &state{assets: make(map[string]*domain.Asset)}
}

func (s *state) clone() *state {
	c := &state{
		components: make([]*domain.Component, len(s.components)),
		assets:     make(map[string]*domain.Asset, len(s.assets)),
		assetOrder: append([]string(nil), s.assetOrder...),
	}
	for i, comp := range s.components {
		c.components[i] = cloneComponent(comp)
	}
	for p, a := range s.assets {
		c.assets[p] = cloneAsset(a)
	}
	return c
}

type tx struct {
	state    *state
	blobs    out.BlobStore
	now      func() time.Time
	readOnly bool
}

func (t *tx) writable(op string) error {
	if t.readOnly {
		return fmt.Errorf("%s: %w", op, domain.ErrReadOnlyTx)
	}
	return nil
}

func (t *tx) FindComponent(_ context.Context, coord domain.Coordinate) (*domain.Component, error) {
	for _, c := range t.state.components {
		if c.Coordinate() == coord {
			return cloneComponent(c), nil
		}
	}
	return nil, fmt.Errorf("%w: %s", domain.ErrComponentNotFound, coord)
}

func (t *tx) CreateComponent(_ context.Context, component *domain.Component) error {
	if err := t.writable("create component"); err != nil {
		return err
	}

	coord := component.Coordinate()
	for _, c := range t.state.components {
		if c.Coordinate() == coord {
			return fmt.Errorf("component %s: %w", coord, domain.ErrAlreadyExists)
		}
	}

	component.ID = uuid.NewString()
	component.CreatedAt = t.now()
	t.state.components = append(t.state.components, cloneComponent(component))
	return nil
}

func (t *tx) FindComponents(_ context.Context, q out.ComponentQuery) ([]*domain.Component, error) {
	name, err := compileField(q.Name)
	if err != nil {
		return nil, err
	}
	version, err := compileField(q.Version)
	if err != nil {
		return nil, err
	}
	group, err := compileField(q.Group)
	if err != nil {
		return nil, err
	}

	var result []*domain.Component
	for _, c := range t.state.components {
		if matches(name, c.Name) && matches(version, c.Version) && matches(group, c.Group) {
			result = append(result, cloneComponent(c))
		}
	}
	return result, nil
}

func (t *tx) FindAsset(_ context.Context, path string) (*domain.Asset, error) {
	a, ok := t.state.assets[path]
	if !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrAssetNotFound, path)
	}
	return cloneAsset(a), nil
}

func (t *tx) CreateAsset(_ context.Context, asset *domain.Asset) error {
	if err := t.writable("create asset"); err != nil {
		return err
	}
	if _, ok := t.state.assets[asset.Path]; ok {
		return fmt.Errorf("asset %s: %w", asset.Path, domain.ErrAlreadyExists)
	}
	if !t.hasComponent(asset.ComponentID) {
		return fmt.Errorf("%w: %s", domain.ErrComponentNotFound, asset.ComponentID)
	}

	now := t.now()
	asset.ID = uuid.NewString()
	asset.CreatedAt = now
	asset.UpdatedAt = now
	t.state.assets[asset.Path] = cloneAsset(asset)
	t.state.assetOrder = append(t.state.assetOrder, asset.Path)
	return nil
}

func (t *tx) SaveAsset(_ context.Context, asset *domain.Asset) error {
	if err := t.writable("save asset"); err != nil {
		return err
	}

	stored, ok := t.state.assets[asset.Path]
	if !ok || stored.ID != asset.ID {
		return fmt.Errorf("%w: %s", domain.ErrAssetNotFound, asset.Path)
	}
	t.state.assets[asset.Path] = cloneAsset(asset)
	return nil
}

func (t *tx) BrowseAssets(_ context.Context, componentID string) ([]*domain.Asset, error) {
	var result []*domain.Asset
	for _, p := range t.state.assetOrder {
		if a := t.state.assets[p]; a.ComponentID == componentID {
			result = append(result, cloneAsset(a))
		}
	}
	return result, nil
}

func (t *tx) AttachBlob(ctx context.Context, asset *domain.Asset, info domain.BlobInfo, contentType string) error {
	if err := t.writable("attach blob"); err != nil {
		return err
	}
	if _, err := t.blobs.Get(ctx, info.Ref); err != nil {
		return err
	}
	asset.ApplyBlob(info, contentType, t.now())
	return nil
}

func (t *tx) RequireBlob(ctx context.Context, ref domain.BlobRef) (out.Blob, error) {
	return t.blobs.Get(ctx, ref)
}

func (t *tx) hasComponent(id string) bool {
	for _, c := range t.state.components {
		if c.ID == id {
			return true
		}
	}
	return false
}

// compileField turns a query field into a matcher where only "*" is special.
// An empty field matches everything.
func compileField(pattern string) (glob.Glob, error) {
	if pattern == "" {
		return nil, nil
	}
	g, err := glob.Compile(strings.ReplaceAll(glob.QuoteMeta(pattern), `\*`, "*"))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidQuery, err)
	}
	return g, nil
}

func matches(g glob.Glob, value string) bool {
	return g == nil || g.Match(value)
}

func cloneComponent(c *domain.Component) *domain.Component {
	cp := *c
	cp.Attributes = maps.Clone(c.Attributes)
	return &cp
}

func cloneAsset(a *domain.Asset) *domain.Asset {
	cp := *a
	cp.Hashes = maps.Clone(a.Hashes)
	if a.LastDownloaded != nil {
		t := *a.LastDownloaded
		cp.LastDownloaded = &t
	}
	return &cp
}

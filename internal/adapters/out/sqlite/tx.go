package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/bnema/conanhost/internal/boundaries/out"
	"github.com/bnema/conanhost/internal/domain"
)

const componentColumns = `id, grp, name, version, attributes, created_at`

const assetColumns = `id, component_id, path, kind, blob_ref, size, content_type, hashes, created_at, updated_at, last_downloaded`

type tx struct {
	tx       *sql.Tx
	blobs    out.BlobStore
	now      func() time.Time
	readOnly bool
}

type scanner interface {
	Scan(dest ...any) error
}

func (t *tx) writable(op string) error {
	if t.readOnly {
		return fmt.Errorf("%s: %w", op, domain.ErrReadOnlyTx)
	}
	return nil
}

func (t *tx) FindComponent(ctx context.Context, coord domain.Coordinate) (*domain.Component, error) {
	row := t.tx.QueryRowContext(ctx,
		`SELECT `+componentColumns+` FROM components WHERE grp = ? AND name = ? AND version = ? AND channel = ?`,
		coord.Group, coord.Project, coord.Version, coord.Channel)

	c, err := scanComponent(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: %s", domain.ErrComponentNotFound, coord)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: find component: %v", domain.ErrStorageIO, err)
	}
	return c, nil
}

func (t *tx) CreateComponent(ctx context.Context, component *domain.Component) error {
	if err := t.writable("create component"); err != nil {
		return err
	}

	attrs, err := json.Marshal(component.Attributes)
	if err != nil {
		return fmt.Errorf("failed to encode component attributes: %w", err)
	}

	id := uuid.NewString()
	createdAt := t.now()
	_, err = t.tx.ExecContext(ctx,
		`INSERT INTO components (id, grp, name, version, channel, attributes, created_at) VALUES (?, ?, ?, ?, ?, ?, ?)`,
		id, component.Group, component.Name, component.Version, component.Channel(), string(attrs), formatTime(createdAt))
	if isUniqueViolation(err) {
		return fmt.Errorf("component %s: %w", component.Coordinate(), domain.ErrAlreadyExists)
	}
	if err != nil {
		return fmt.Errorf("%w: insert component: %v", domain.ErrStorageIO, err)
	}

	component.ID = id
	component.CreatedAt = createdAt
	return nil
}

func (t *tx) FindComponents(ctx context.Context, q out.ComponentQuery) ([]*domain.Component, error) {
	var (
		where []string
		args  []any
	)
	for _, f := range []struct{ column, pattern string }{
		{"name", q.Name},
		{"version", q.Version},
		{"grp", q.Group},
	} {
		if f.pattern == "" {
			continue
		}
		where = append(where, f.column+" GLOB ?")
		args = append(args, globPattern(f.pattern))
	}

	query := `SELECT ` + componentColumns + ` FROM components`
	if len(where) > 0 {
		query += ` WHERE ` + strings.Join(where, " AND ")
	}
	query += ` ORDER BY rowid`

	rows, err := t.tx.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: find components: %v", domain.ErrStorageIO, err)
	}
	defer func() { _ = rows.Close() }()

	var result []*domain.Component
	for rows.Next() {
		c, err := scanComponent(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: scan component: %v", domain.ErrStorageIO, err)
		}
		result = append(result, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: find components: %v", domain.ErrStorageIO, err)
	}
	return result, nil
}

func (t *tx) FindAsset(ctx context.Context, path string) (*domain.Asset, error) {
	row := t.tx.QueryRowContext(ctx, `SELECT `+assetColumns+` FROM assets WHERE path = ?`, path)

	a, err := scanAsset(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: %s", domain.ErrAssetNotFound, path)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: find asset: %v", domain.ErrStorageIO, err)
	}
	return a, nil
}

func (t *tx) CreateAsset(ctx context.Context, asset *domain.Asset) error {
	if err := t.writable("create asset"); err != nil {
		return err
	}

	hashes, err := json.Marshal(hashesOrEmpty(asset.Hashes))
	if err != nil {
		return fmt.Errorf("failed to encode asset hashes: %w", err)
	}

	id := uuid.NewString()
	now := t.now()
	_, err = t.tx.ExecContext(ctx,
		`INSERT INTO assets (`+assetColumns+`) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		id, asset.ComponentID, asset.Path, string(asset.Kind), string(asset.BlobRef), asset.Size,
		asset.ContentType, string(hashes), formatTime(now), formatTime(now), nullTime(asset.LastDownloaded))
	if isUniqueViolation(err) {
		return fmt.Errorf("asset %s: %w", asset.Path, domain.ErrAlreadyExists)
	}
	if err != nil {
		return fmt.Errorf("%w: insert asset: %v", domain.ErrStorageIO, err)
	}

	asset.ID = id
	asset.CreatedAt = now
	asset.UpdatedAt = now
	return nil
}

func (t *tx) SaveAsset(ctx context.Context, asset *domain.Asset) error {
	if err := t.writable("save asset"); err != nil {
		return err
	}

	hashes, err := json.Marshal(hashesOrEmpty(asset.Hashes))
	if err != nil {
		return fmt.Errorf("failed to encode asset hashes: %w", err)
	}

	res, err := t.tx.ExecContext(ctx,
		`UPDATE assets SET kind = ?, blob_ref = ?, size = ?, content_type = ?, hashes = ?, updated_at = ?, last_downloaded = ? WHERE id = ?`,
		string(asset.Kind), string(asset.BlobRef), asset.Size, asset.ContentType, string(hashes),
		formatTime(asset.UpdatedAt), nullTime(asset.LastDownloaded), asset.ID)
	if err != nil {
		return fmt.Errorf("%w: update asset: %v", domain.ErrStorageIO, err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: update asset: %v", domain.ErrStorageIO, err)
	}
	if n == 0 {
		return fmt.Errorf("%w: %s", domain.ErrAssetNotFound, asset.Path)
	}
	return nil
}

func (t *tx) BrowseAssets(ctx context.Context, componentID string) ([]*domain.Asset, error) {
	rows, err := t.tx.QueryContext(ctx,
		`SELECT `+assetColumns+` FROM assets WHERE component_id = ? ORDER BY rowid`, componentID)
	if err != nil {
		return nil, fmt.Errorf("%w: browse assets: %v", domain.ErrStorageIO, err)
	}
	defer func() { _ = rows.Close() }()

	var result []*domain.Asset
	for rows.Next() {
		a, err := scanAsset(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: scan asset: %v", domain.ErrStorageIO, err)
		}
		result = append(result, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: browse assets: %v", domain.ErrStorageIO, err)
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

func scanComponent(s scanner) (*domain.Component, error) {
	var (
		c         domain.Component
		attrs     string
		createdAt string
	)
	if err := s.Scan(&c.ID, &c.Group, &c.Name, &c.Version, &attrs, &createdAt); err != nil {
		return nil, err
	}
	if err := json.Unmarshal([]byte(attrs), &c.Attributes); err != nil {
		return nil, fmt.Errorf("decode attributes of component %s: %w", c.ID, err)
	}

	var err error
	if c.CreatedAt, err = parseTime(createdAt); err != nil {
		return nil, err
	}
	return &c, nil
}

func scanAsset(s scanner) (*domain.Asset, error) {
	var (
		a              domain.Asset
		kind, blobRef  string
		hashes         string
		created, upd   string
		lastDownloaded sql.NullString
	)
	if err := s.Scan(&a.ID, &a.ComponentID, &a.Path, &kind, &blobRef, &a.Size, &a.ContentType,
		&hashes, &created, &upd, &lastDownloaded); err != nil {
		return nil, err
	}
	a.Kind = domain.AssetKind(kind)
	a.BlobRef = domain.BlobRef(blobRef)

	if err := json.Unmarshal([]byte(hashes), &a.Hashes); err != nil {
		return nil, fmt.Errorf("decode hashes of asset %s: %w", a.ID, err)
	}

	var err error
	if a.CreatedAt, err = parseTime(created); err != nil {
		return nil, err
	}
	if a.UpdatedAt, err = parseTime(upd); err != nil {
		return nil, err
	}
	if lastDownloaded.Valid {
		t, err := parseTime(lastDownloaded.String)
		if err != nil {
			return nil, err
		}
		a.LastDownloaded = &t
	}
	return &a, nil
}

// globPattern turns a query field into a GLOB pattern where only "*" is special.
func globPattern(pattern string) string {
	return strings.NewReplacer("[", "[[]", "?", "[?]").Replace(pattern)
}

func hashesOrEmpty(h map[domain.HashAlgorithm]string) map[domain.HashAlgorithm]string {
	if h == nil {
		return map[domain.HashAlgorithm]string{}
	}
	return h
}

func formatTime(t time.Time) string {
	return t.UTC().Format(time.RFC3339Nano)
}

func parseTime(s string) (time.Time, error) {
	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid timestamp %q: %w", s, err)
	}
	return t, nil
}

func nullTime(t *time.Time) any {
	if t == nil {
		return nil
	}
	return formatTime(*t)
}

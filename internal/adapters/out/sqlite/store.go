// Package sqlite implements the metadata store on SQLite (modernc.org/sqlite).
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/bnema/zerowrap"
	"modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"

	"github.com/bnema/conanhost/internal/boundaries/out"
	"github.com/bnema/conanhost/internal/domain"
)

// DatabaseFile is the name of the database below the data directory.
const DatabaseFile = "conanhost.db"

// maxReadConns bounds the read-only connection pool.
const maxReadConns = 4

// MetadataStore implements out.MetadataStore on a SQLite database.
// Writers share one connection; readers use their own pool so a View
// never waits for the writer.
type MetadataStore struct {
	db     *sql.DB
	readDB *sql.DB
	blobs  out.BlobStore
	now    func() time.Time
	log    zerowrap.Logger
}

var _ out.MetadataStore = (*MetadataStore)(nil)

// Open opens (or creates) the database in dataDir and migrates it.
// In WAL mode readers on the query-only pool see the last committed state
// while a write transaction is open on the writer connection.
func Open(ctx context.Context, dataDir string, blobs out.BlobStore, log zerowrap.Logger) (*MetadataStore, error) {
	dbPath := filepath.Join(dataDir, DatabaseFile)

	db, err := sql.Open("sqlite", dsn(dbPath, ""))
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	db.SetMaxOpenConns(1)

	store, err := New(ctx, db, blobs, log)
	if err != nil {
		_ = db.Close()
		return nil, err
	}

	readDB, err := sql.Open("sqlite", dsn(dbPath, "&_pragma=query_only(1)"))
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to open read pool: %w", err)
	}
	readDB.SetMaxOpenConns(maxReadConns)
	store.readDB = readDB

	log.Info().
		Str(zerowrap.FieldLayer, "adapter").
		Str(zerowrap.FieldAdapter, "sqlite").
		Str(zerowrap.FieldPath, dbPath).
		Int("read_conns", maxReadConns).
		Msg("metadata store opened")
	return store, nil
}

func dsn(path, extra string) string {
	return fmt.Sprintf("file:%s?_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)&_pragma=foreign_keys(1)%s", path, extra)
}

// New wraps an open database and creates the schema if needed. The same
// handle serves reads and writes.
func New(ctx context.Context, db *sql.DB, blobs out.BlobStore, log zerowrap.Logger) (*MetadataStore, error) {
	s := &MetadataStore{
		db:     db,
		readDB: db,
		blobs:  blobs,
		now:    time.Now,
		log:    log,
	}
	if err := s.migrate(ctx); err != nil {
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}
	return s, nil
}

var schema = []string{
	`CREATE TABLE IF NOT EXISTS components (
		id TEXT PRIMARY KEY,
		grp TEXT NOT NULL DEFAULT '',
		name TEXT NOT NULL,
		version TEXT NOT NULL DEFAULT '',
		channel TEXT NOT NULL DEFAULT '',
		attributes JSON NOT NULL DEFAULT '{}',
		created_at TEXT NOT NULL,
		UNIQUE (grp, name, version, channel)
	)`,
	`CREATE TABLE IF NOT EXISTS assets (
		id TEXT PRIMARY KEY,
		component_id TEXT NOT NULL REFERENCES components(id),
		path TEXT NOT NULL UNIQUE,
		kind TEXT NOT NULL,
		blob_ref TEXT NOT NULL DEFAULT '',
		size INTEGER NOT NULL DEFAULT 0,
		content_type TEXT NOT NULL DEFAULT '',
		hashes JSON NOT NULL DEFAULT '{}',
		created_at TEXT NOT NULL,
		updated_at TEXT NOT NULL,
		last_downloaded TEXT
	)`,
	`CREATE INDEX IF NOT EXISTS idx_assets_component ON assets (component_id)`,
}

func (s *MetadataStore) migrate(ctx context.Context) error {
	for _, stmt := range schema {
		if _, err := s.db.ExecContext(ctx, stmt); err != nil {
			return err
		}
	}
	return nil
}

// Update runs fn inside a read-write transaction, committing only when fn succeeds.
func (s *MetadataStore) Update(ctx context.Context, fn func(tx out.StorageTx) error) error {
	return s.inTx(ctx, false, fn)
}

// View runs fn inside a transaction that is always rolled back.
func (s *MetadataStore) View(ctx context.Context, fn func(tx out.StorageTx) error) error {
	return s.inTx(ctx, true, fn)
}

// Close closes the database and its read pool.
func (s *MetadataStore) Close() error {
	var readErr error
	if s.readDB != s.db {
		readErr = s.readDB.Close()
	}
	return errors.Join(s.db.Close(), readErr)
}

func (s *MetadataStore) inTx(ctx context.Context, readOnly bool, fn func(tx out.StorageTx) error) (err error) {
	db := s.db
	if readOnly {
		db = s.readDB
	}

	sqlTx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("%w: begin transaction: %v", domain.ErrStorageIO, err)
	}

	defer func() {
		if p := recover(); p != nil {
			_ = sqlTx.Rollback()
			panic(p)
		}
	}()

	if err := fn(&tx{tx: sqlTx, blobs: s.blobs, now: s.now, readOnly: readOnly}); err != nil {
		if rbErr := sqlTx.Rollback(); rbErr != nil && !errors.Is(rbErr, sql.ErrTxDone) {
			s.log.Warn().
				Str(zerowrap.FieldLayer, "adapter").
				Str(zerowrap.FieldAdapter, "sqlite").
				Err(rbErr).
				Msg("failed to roll back transaction")
		}
		return err
	}

	if readOnly {
		if err := sqlTx.Rollback(); err != nil && !errors.Is(err, sql.ErrTxDone) {
			return fmt.Errorf("%w: end read transaction: %v", domain.ErrStorageIO, err)
		}
		return nil
	}

	if err := sqlTx.Commit(); err != nil {
		return fmt.Errorf("%w: commit: %v", domain.ErrStorageIO, err)
	}
	return nil
}

func isUniqueViolation(err error) bool {
	var se *sqlite.Error
	if !errors.As(err, &se) {
		return false
	}
	switch se.Code() {
	case sqlite3.SQLITE_CONSTRAINT_UNIQUE, sqlite3.SQLITE_CONSTRAINT_PRIMARYKEY:
		return true
	case sqlite3.SQLITE_CONSTRAINT:
		return strings.Contains(se.Error(), "UNIQUE")
	default:
		return false
	}
}

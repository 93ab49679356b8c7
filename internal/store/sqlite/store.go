// Package sqlite stores catalog documents as JSON blobs in SQLite, one table
// per collection.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite" // pure go sqlite driver

	"github.com/MrSnakeDoc/catalog/internal/store"
)

// DB owns the SQLite handle shared by every collection.
type DB struct {
	db   *sql.DB
	path string
}

// Open opens (creating if needed) the database at path and ensures the
// collection tables exist.
func Open(ctx context.Context, path string) (*DB, error) {
	if path == "" {
		path = "catalog.db"
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil && !errors.Is(err, os.ErrExist) {
		return nil, fmt.Errorf("create dirs: %w", err)
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	// A single writer avoids SQLITE_BUSY between pooled connections.
	db.SetMaxOpenConns(1)

	for _, name := range []string{store.CollectionGenres, store.CollectionBookInstances, store.CollectionBooks} {
		stmt := fmt.Sprintf(`CREATE TABLE IF NOT EXISTS %s (
			id TEXT PRIMARY KEY,
			seq INTEGER NOT NULL,
			doc BLOB NOT NULL
		)`, name)
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("create %s table: %w", name, err)
		}
	}
	return &DB{db: db, path: path}, nil
}

// Repositories returns repositories for every catalog collection.
func (d *DB) Repositories() store.Repositories {
	return store.Repositories{
		Genres:        NewCollection(d, store.CollectionGenres, store.GenreCodec()),
		BookInstances: NewCollection(d, store.CollectionBookInstances, store.BookInstanceCodec()),
		Books:         NewCollection(d, store.CollectionBooks, store.BookCodec()),
	}
}

// Ping checks the database is reachable.
func (d *DB) Ping(ctx context.Context) error { return d.db.PingContext(ctx) }

// Close releases the database handle.
func (d *DB) Close() error { return d.db.Close() }

// Path returns the configured database path.
func (d *DB) Path() string { return d.path }

// Collection is a table of JSON documents.
type Collection[T store.Document] struct {
	db    *sql.DB
	table string
	codec store.Codec[T]
}

// NewCollection binds a collection to its table. The table must exist.
func NewCollection[T store.Document](d *DB, table string, codec store.Codec[T]) *Collection[T] {
	return &Collection[T]{db: d.db, table: table, codec: codec}
}

func (c *Collection[T]) GetByID(ctx context.Context, id string) (T, error) {
	var zero T
	var data []byte
	err := c.db.QueryRowContext(ctx, `SELECT doc FROM `+c.table+` WHERE id = ?`, id).Scan(&data)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return zero, fmt.Errorf("%s %s: %w", c.table, id, store.ErrNotFound)
		}
		return zero, fmt.Errorf("select %s: %w", c.table, err)
	}
	return c.codec.Decode(data)
}

func (c *Collection[T]) List(ctx context.Context, q store.Query) ([]T, error) {
	rows, err := c.db.QueryContext(ctx, `SELECT doc FROM `+c.table+` ORDER BY seq`)
	if err != nil {
		return nil, fmt.Errorf("select %s: %w", c.table, err)
	}
	defer func() { _ = rows.Close() }()

	var docs []T
	for rows.Next() {
		var data []byte
		if err := rows.Scan(&data); err != nil {
			return nil, fmt.Errorf("scan: %w", err)
		}
		doc, err := c.codec.Decode(data)
		if err != nil {
			return nil, err
		}
		docs = append(docs, doc)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate %s: %w", c.table, err)
	}
	return store.Apply(q, docs), nil
}

func (c *Collection[T]) Create(ctx context.Context, candidate T) (T, error) {
	var zero T
	candidate.SetDocID(store.NewID())
	data, err := c.codec.Encode(candidate)
	if err != nil {
		return zero, err
	}
	_, err = c.db.ExecContext(ctx,
		`INSERT INTO `+c.table+`(id, seq, doc) VALUES(?, (SELECT COALESCE(MAX(seq), 0) + 1 FROM `+c.table+`), ?)`,
		candidate.DocID(), data)
	if err != nil {
		return zero, fmt.Errorf("insert %s: %w", c.table, err)
	}
	return c.codec.Decode(data)
}

func (c *Collection[T]) UpdateByID(ctx context.Context, id string, candidate T) (T, error) {
	var zero T
	candidate.SetDocID(id)
	data, err := c.codec.Encode(candidate)
	if err != nil {
		return zero, err
	}
	res, err := c.db.ExecContext(ctx, `UPDATE `+c.table+` SET doc = ? WHERE id = ?`, data, id)
	if err != nil {
		return zero, fmt.Errorf("update %s: %w", c.table, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return zero, fmt.Errorf("update %s: %w", c.table, err)
	}
	if n == 0 {
		return zero, fmt.Errorf("%s %s: %w", c.table, id, store.ErrNotFound)
	}
	return c.codec.Decode(data)
}

func (c *Collection[T]) DeleteByID(ctx context.Context, id string) error {
	if _, err := c.db.ExecContext(ctx, `DELETE FROM `+c.table+` WHERE id = ?`, id); err != nil {
		return fmt.Errorf("delete %s: %w", c.table, err)
	}
	return nil
}

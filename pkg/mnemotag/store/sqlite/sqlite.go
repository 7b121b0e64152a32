// Package sqlite implements the record store on SQLite.
package sqlite

import (
	"context"
	"crypto/rand"
	"database/sql"
	"fmt"

	"github.com/oklog/ulid/v2"
	_ "modernc.org/sqlite"

	"github.com/mnemolab/mnemotag/pkg/mnemotag/store"
)

// sqliteStore implements the Store interface using SQLite
type sqliteStore struct {
	db      *sql.DB
	entropy *ulid.MonotonicEntropy
}

// Open opens a SQLite database with WAL mode enabled and the schema
// initialized.
func Open(ctx context.Context, path string) (store.Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}

	// Enable WAL mode for better concurrency
	if _, err := db.ExecContext(ctx, "PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, err
	}

	// Enable foreign keys
	if _, err := db.ExecContext(ctx, "PRAGMA foreign_keys=ON"); err != nil {
		db.Close()
		return nil, err
	}

	if err := initSchema(ctx, db); err != nil {
		db.Close()
		return nil, err
	}

	return &sqliteStore{
		db:      db,
		entropy: ulid.Monotonic(rand.Reader, 0),
	}, nil
}

// Close closes the database connection
func (s *sqliteStore) Close() error {
	return s.db.Close()
}

// initSchema creates tables if they don't exist
func initSchema(ctx context.Context, db *sql.DB) error {
	schema := `
CREATE TABLE IF NOT EXISTS records (
	id TEXT PRIMARY KEY,
	entry_key TEXT UNIQUE NOT NULL,
	title TEXT,
	author TEXT,
	year TEXT,
	journal TEXT,
	abstract TEXT
);

CREATE TABLE IF NOT EXISTS record_tags (
	record_id TEXT NOT NULL,
	category TEXT NOT NULL,
	tag TEXT NOT NULL,
	position INTEGER NOT NULL,
	UNIQUE(record_id, category, tag),
	FOREIGN KEY(record_id) REFERENCES records(id) ON DELETE CASCADE
);

CREATE INDEX IF NOT EXISTS idx_record_tags_category ON record_tags(category, tag);
`

	_, err := db.ExecContext(ctx, schema)
	return err
}

// UpsertRecord inserts or updates a record by entry key. Tags, when present
// on the record, replace any stored assignment in the same transaction.
func (s *sqliteStore) UpsertRecord(ctx context.Context, r store.Record) (string, error) {
	if r.EntryKey == "" {
		return "", fmt.Errorf("record has no entry key")
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return "", err
	}
	defer tx.Rollback()

	id := r.ID
	if id == "" {
		id = ulid.MustNew(ulid.Now(), s.entropy).String()
	}

	const stmt = `
INSERT INTO records (id, entry_key, title, author, year, journal, abstract)
VALUES (?, ?, ?, ?, ?, ?, ?)
ON CONFLICT(entry_key) DO UPDATE SET
	title=excluded.title,
	author=excluded.author,
	year=excluded.year,
	journal=excluded.journal,
	abstract=excluded.abstract
RETURNING id;
`

	var storedID string
	err = tx.QueryRowContext(
		ctx,
		stmt,
		id,
		r.EntryKey,
		r.Title,
		r.Author,
		r.Year,
		r.Journal,
		r.Abstract,
	).Scan(&storedID)
	if err != nil {
		return "", err
	}

	if r.Tags != nil {
		if err := replaceTags(ctx, tx, storedID, r.Tags); err != nil {
			return "", err
		}
	}

	return storedID, tx.Commit()
}

// GetRecordByKey fetches one record by its entry key
func (s *sqliteStore) GetRecordByKey(ctx context.Context, entryKey string) (store.Record, bool, error) {
	const stmt = `
SELECT id, entry_key, title, author, year, journal, abstract
FROM records WHERE entry_key=?`

	var r store.Record
	err := s.db.QueryRowContext(ctx, stmt, entryKey).Scan(
		&r.ID, &r.EntryKey, &r.Title, &r.Author, &r.Year, &r.Journal, &r.Abstract)
	if err == sql.ErrNoRows {
		return store.Record{}, false, nil
	}
	if err != nil {
		return store.Record{}, false, err
	}

	tags, err := s.tagsFor(ctx, r.ID)
	if err != nil {
		return store.Record{}, false, err
	}
	r.Tags = tags
	return r, true, nil
}

// ListRecords returns all records ordered by entry key
func (s *sqliteStore) ListRecords(ctx context.Context) ([]store.Record, error) {
	return s.listWhere(ctx, "")
}

// ListUntagged returns the records with no tag assignments
func (s *sqliteStore) ListUntagged(ctx context.Context) ([]store.Record, error) {
	return s.listWhere(ctx,
		`WHERE NOT EXISTS (SELECT 1 FROM record_tags rt WHERE rt.record_id = records.id)`)
}

func (s *sqliteStore) listWhere(ctx context.Context, where string) ([]store.Record, error) {
	stmt := `
SELECT id, entry_key, title, author, year, journal, abstract
FROM records ` + where + ` ORDER BY entry_key`

	rows, err := s.db.QueryContext(ctx, stmt)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []store.Record
	for rows.Next() {
		var r store.Record
		if err := rows.Scan(&r.ID, &r.EntryKey, &r.Title, &r.Author, &r.Year, &r.Journal, &r.Abstract); err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for i := range out {
		tags, err := s.tagsFor(ctx, out[i].ID)
		if err != nil {
			return nil, err
		}
		out[i].Tags = tags
	}
	return out, nil
}

// ReplaceTags overwrites a record's tag assignments
func (s *sqliteStore) ReplaceTags(ctx context.Context, id string, tags map[string][]string) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if err := replaceTags(ctx, tx, id, tags); err != nil {
		return err
	}
	return tx.Commit()
}

func replaceTags(ctx context.Context, tx *sql.Tx, id string, tags map[string][]string) error {
	if _, err := tx.ExecContext(ctx, `DELETE FROM record_tags WHERE record_id=?`, id); err != nil {
		return err
	}

	stmt, err := tx.PrepareContext(ctx,
		`INSERT INTO record_tags (record_id, category, tag, position) VALUES (?, ?, ?, ?)`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for category, list := range tags {
		for pos, tag := range list {
			if tag == "" {
				continue
			}
			if _, err := stmt.ExecContext(ctx, id, category, tag, pos); err != nil {
				return err
			}
		}
	}
	return nil
}

func (s *sqliteStore) tagsFor(ctx context.Context, id string) (map[string][]string, error) {
	const stmt = `
SELECT category, tag FROM record_tags WHERE record_id=? ORDER BY category, position`

	rows, err := s.db.QueryContext(ctx, stmt, id)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var tags map[string][]string
	for rows.Next() {
		var category, tag string
		if err := rows.Scan(&category, &tag); err != nil {
			return nil, err
		}
		if tags == nil {
			tags = make(map[string][]string)
		}
		tags[category] = append(tags[category], tag)
	}
	return tags, rows.Err()
}

// TagCounts returns usage counts for one category's tags, most used first
func (s *sqliteStore) TagCounts(ctx context.Context, category string) ([]store.TagCount, error) {
	const stmt = `
SELECT tag, COUNT(*) AS n FROM record_tags
WHERE category=? GROUP BY tag ORDER BY n DESC, tag`

	rows, err := s.db.QueryContext(ctx, stmt, category)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []store.TagCount
	for rows.Next() {
		var tc store.TagCount
		if err := rows.Scan(&tc.Tag, &tc.Count); err != nil {
			return nil, err
		}
		out = append(out, tc)
	}
	return out, rows.Err()
}

// Stats summarizes the stored corpus
func (s *sqliteStore) Stats(ctx context.Context) (store.Stats, error) {
	var st store.Stats
	err := s.db.QueryRowContext(ctx, `
SELECT
	(SELECT COUNT(*) FROM records),
	(SELECT COUNT(DISTINCT record_id) FROM record_tags),
	(SELECT COUNT(*) FROM record_tags)`).Scan(&st.Records, &st.Tagged, &st.Assignments)
	if err != nil {
		return store.Stats{}, err
	}
	st.Untagged = st.Records - st.Tagged
	return st, nil
}

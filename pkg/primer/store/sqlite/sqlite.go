// Package sqlite implements store.Store on a SQLite database.
package sqlite

import (
	"context"
	"database/sql"
	"time"

	_ "modernc.org/sqlite"

	"github.com/cognicore/primer/pkg/primer/store"
)

// sqliteStore implements the Store interface using SQLite
type sqliteStore struct {
	db *sql.DB
}

// Open opens a SQLite database with WAL mode enabled and initializes the
// schema.
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

	return &sqliteStore{db: db}, nil
}

// Close closes the database connection
func (s *sqliteStore) Close() error {
	return s.db.Close()
}

// initSchema creates tables if they don't exist
func initSchema(ctx context.Context, db *sql.DB) error {
	schema := `
CREATE TABLE IF NOT EXISTS runs (
	id TEXT PRIMARY KEY,
	doc_ref TEXT UNIQUE NOT NULL,
	title TEXT,
	extracted_at TEXT,
	token_count INTEGER DEFAULT 0
);

CREATE TABLE IF NOT EXISTS run_terms (
	run_id TEXT NOT NULL,
	term TEXT NOT NULL,
	score REAL NOT NULL,
	position INTEGER NOT NULL,
	UNIQUE(run_id, term),
	FOREIGN KEY(run_id) REFERENCES runs(id) ON DELETE CASCADE
);

CREATE INDEX IF NOT EXISTS idx_run_terms_term ON run_terms(term);
`
	_, err := db.ExecContext(ctx, schema)
	return err
}

// UpsertRun stores a run, replacing any previous run for the same doc_ref.
func (s *sqliteStore) UpsertRun(ctx context.Context, r store.Run) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	// A re-extraction carries a fresh ULID, so the conflict to resolve is on
	// doc_ref, not id. Cascade removes the old run's terms.
	if _, err := tx.ExecContext(ctx, `DELETE FROM runs WHERE doc_ref=?`, r.DocRef); err != nil {
		return err
	}

	_, err = tx.ExecContext(
		ctx,
		`INSERT INTO runs (id, doc_ref, title, extracted_at, token_count) VALUES (?, ?, ?, ?, ?)`,
		r.ID,
		r.DocRef,
		r.Title,
		r.ExtractedAt.UTC().Format(time.RFC3339),
		r.TokenCount,
	)
	if err != nil {
		return err
	}

	if len(r.Terms) > 0 {
		stmt, err := tx.PrepareContext(ctx, `INSERT INTO run_terms (run_id, term, score, position) VALUES (?, ?, ?, ?)`)
		if err != nil {
			return err
		}
		defer stmt.Close()
		for _, t := range r.Terms {
			if t.Term == "" {
				continue
			}
			if _, err := stmt.ExecContext(ctx, r.ID, t.Term, t.Score, t.Rank); err != nil {
				return err
			}
		}
	}

	return tx.Commit()
}

// GetRun retrieves a run by ID
func (s *sqliteStore) GetRun(ctx context.Context, id string) (store.Run, bool, error) {
	return s.loadRun(ctx, `SELECT id, doc_ref, title, extracted_at, token_count FROM runs WHERE id=?`, id)
}

// GetRunByDocRef retrieves a run by its document reference
func (s *sqliteStore) GetRunByDocRef(ctx context.Context, ref string) (store.Run, bool, error) {
	return s.loadRun(ctx, `SELECT id, doc_ref, title, extracted_at, token_count FROM runs WHERE doc_ref=?`, ref)
}

func (s *sqliteStore) loadRun(ctx context.Context, query string, arg any) (store.Run, bool, error) {
	var (
		r  store.Run
		at string
	)
	err := s.db.QueryRowContext(ctx, query, arg).Scan(&r.ID, &r.DocRef, &r.Title, &at, &r.TokenCount)
	if err == sql.ErrNoRows {
		return store.Run{}, false, nil
	}
	if err != nil {
		return store.Run{}, false, err
	}
	if ts, perr := time.Parse(time.RFC3339, at); perr == nil {
		r.ExtractedAt = ts
	}

	terms, err := s.loadTerms(ctx, r.ID)
	if err != nil {
		return store.Run{}, false, err
	}
	r.Terms = terms
	return r, true, nil
}

func (s *sqliteStore) loadTerms(ctx context.Context, runID string) ([]store.Term, error) {
	rows, err := s.db.QueryContext(
		ctx,
		`SELECT term, score, position FROM run_terms WHERE run_id=? ORDER BY position ASC`,
		runID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var terms []store.Term
	for rows.Next() {
		var t store.Term
		if err := rows.Scan(&t.Term, &t.Score, &t.Rank); err != nil {
			return nil, err
		}
		terms = append(terms, t)
	}
	return terms, rows.Err()
}

// ListRuns returns the most recent runs, newest first.
func (s *sqliteStore) ListRuns(ctx context.Context, limit int) ([]store.Run, error) {
	if limit <= 0 {
		limit = 100
	}
	rows, err := s.db.QueryContext(
		ctx,
		`SELECT id FROM runs ORDER BY extracted_at DESC, id DESC LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	runs := make([]store.Run, 0, len(ids))
	for _, id := range ids {
		r, ok, err := s.GetRun(ctx, id)
		if err != nil {
			return nil, err
		}
		if ok {
			runs = append(runs, r)
		}
	}
	return runs, nil
}

// TopTerms aggregates terms across all runs, ordered by summed score mass.
// Term name breaks ties so results are stable.
func (s *sqliteStore) TopTerms(ctx context.Context, limit int) ([]store.AggregateTerm, error) {
	if limit <= 0 {
		limit = 25
	}
	rows, err := s.db.QueryContext(
		ctx,
		`SELECT term, COUNT(DISTINCT run_id) AS docs, SUM(score) AS mass
		 FROM run_terms
		 GROUP BY term
		 ORDER BY mass DESC, term ASC
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []store.AggregateTerm
	for rows.Next() {
		var a store.AggregateTerm
		if err := rows.Scan(&a.Term, &a.Docs, &a.ScoreMass); err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, rows.Err()
}

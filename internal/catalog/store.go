package catalog

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"

	"pgnsplit/internal/splitter"
)

// Store manages the fixture catalog backed by SQLite.
type Store struct {
	db   *sql.DB
	path string
}

// Entry is one catalog row.
type Entry struct {
	Dataset   string
	Index     int
	Path      string
	Bytes     int
	Segments  int
	SHA256    string
	RunID     string
	WrittenAt time.Time
}

var _ splitter.Recorder = (*Store)(nil)

// Open initializes or connects to the catalog database at path and applies
// migrations.
func Open(path string) (*Store, error) {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create catalog directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}

	pragmas := []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA busy_timeout = 5000",
	}
	for _, pragma := range pragmas {
		if _, execErr := db.Exec(pragma); execErr != nil {
			_ = db.Close()
			return nil, fmt.Errorf("apply pragma %q: %w", pragma, execErr)
		}
	}

	store := &Store{db: db, path: path}
	if err := store.applyMigrations(context.Background()); err != nil {
		_ = db.Close()
		return nil, err
	}
	return store, nil
}

// Close closes the underlying database connection.
func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

// Path returns the database file location.
func (s *Store) Path() string {
	return s.path
}

// RecordGames upserts one row per record in a single transaction.
func (s *Store) RecordGames(ctx context.Context, records []splitter.GameRecord) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin catalog tx: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	stmt, err := tx.PrepareContext(ctx, `INSERT INTO fixtures (
            dataset, game_index, path, bytes, segments, sha256, run_id, written_at
        ) VALUES (?, ?, ?, ?, ?, ?, ?, ?)
        ON CONFLICT (dataset, game_index) DO UPDATE SET
            path = excluded.path,
            bytes = excluded.bytes,
            segments = excluded.segments,
            sha256 = excluded.sha256,
            run_id = excluded.run_id,
            written_at = excluded.written_at`)
	if err != nil {
		return fmt.Errorf("prepare catalog upsert: %w", err)
	}
	defer stmt.Close()

	for _, rec := range records {
		if _, err := stmt.ExecContext(ctx,
			rec.Dataset,
			rec.Index,
			rec.Path,
			rec.Bytes,
			rec.Segments,
			rec.SHA256,
			rec.RunID,
			rec.WrittenAt.UTC().Format(time.RFC3339Nano),
		); err != nil {
			return fmt.Errorf("upsert %s #%d: %w", rec.Dataset, rec.Index, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit catalog tx: %w", err)
	}
	return nil
}

// List returns catalog rows ordered by dataset and game index. An empty
// dataset lists every dataset.
func (s *Store) List(ctx context.Context, dataset string) ([]Entry, error) {
	query := `SELECT dataset, game_index, path, bytes, segments, sha256, run_id, written_at
        FROM fixtures`
	var args []any
	if dataset != "" {
		query += " WHERE dataset = ?"
		args = append(args, dataset)
	}
	query += " ORDER BY dataset, game_index"

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query fixtures: %w", err)
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var (
			entry     Entry
			writtenAt string
		)
		if err := rows.Scan(&entry.Dataset, &entry.Index, &entry.Path, &entry.Bytes, &entry.Segments, &entry.SHA256, &entry.RunID, &writtenAt); err != nil {
			return nil, fmt.Errorf("scan fixture: %w", err)
		}
		if ts, err := time.Parse(time.RFC3339Nano, writtenAt); err == nil {
			entry.WrittenAt = ts
		}
		entries = append(entries, entry)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate fixtures: %w", err)
	}
	return entries, nil
}

// Prune removes rows for dataset whose game index is at or beyond keep. A
// rerun that yields fewer games uses it so stale rows do not linger.
func (s *Store) Prune(ctx context.Context, dataset string, keep int) (int64, error) {
	res, err := s.db.ExecContext(ctx, "DELETE FROM fixtures WHERE dataset = ? AND game_index >= ?", dataset, keep)
	if err != nil {
		return 0, fmt.Errorf("prune fixtures: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("prune fixtures: %w", err)
	}
	return n, nil
}

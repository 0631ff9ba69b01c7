// Package sqlite provides the embedded entry store used when no Postgres URL
// is configured. The database lives in a single local file, like the
// original diary.db this application replaces.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/kokorolog/kokorolog/internal/apperrors"
	"github.com/kokorolog/kokorolog/internal/core/domain"
	portsrepo "github.com/kokorolog/kokorolog/internal/core/ports/repositories"
	_ "modernc.org/sqlite"
)

const schema = `
CREATE TABLE IF NOT EXISTS entries (
    entry_id        TEXT PRIMARY KEY,
    entry_date      TEXT NOT NULL UNIQUE,
    emotion         TEXT NOT NULL DEFAULT '',
    title           TEXT NOT NULL DEFAULT '',
    content         TEXT NOT NULL,
    ai_comment      TEXT NOT NULL DEFAULT '',
    created_at      TEXT NOT NULL,
    last_updated_at TEXT NOT NULL
);`

type SQLiteEntryRepository struct {
	db *sql.DB
}

// Ensure SQLiteEntryRepository implements the repository facade
var _ portsrepo.EntryRepositoryFacade = (*SQLiteEntryRepository)(nil)

// Open opens (and creates if needed) the sqlite database at path and applies
// the schema.
func Open(path string) (*SQLiteEntryRepository, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o700); err != nil {
			return nil, fmt.Errorf("failed to create database directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to apply schema: %w", err)
	}

	return &SQLiteEntryRepository{db: db}, nil
}

// Close closes the underlying database handle.
func (r *SQLiteEntryRepository) Close() error {
	return r.db.Close()
}

const entryColumns = `entry_id, entry_date, emotion, title, content, ai_comment, created_at, last_updated_at`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanEntry(row rowScanner) (*domain.Entry, error) {
	var (
		e                     domain.Entry
		day, created, updated string
	)
	err := row.Scan(&e.EntryID, &day, &e.Emotion, &e.Title, &e.Content, &e.AIComment, &created, &updated)
	if err != nil {
		return nil, err
	}
	if e.EntryDate, err = time.Parse(time.DateOnly, day); err != nil {
		return nil, fmt.Errorf("bad entry_date %q: %w", day, err)
	}
	if e.CreatedAt, err = time.Parse(time.RFC3339, created); err != nil {
		return nil, fmt.Errorf("bad created_at %q: %w", created, err)
	}
	if e.LastUpdatedAt, err = time.Parse(time.RFC3339, updated); err != nil {
		return nil, fmt.Errorf("bad last_updated_at %q: %w", updated, err)
	}
	return &e, nil
}

func (r *SQLiteEntryRepository) FindEntryByDate(ctx context.Context, day time.Time) (*domain.Entry, error) {
	query := `SELECT ` + entryColumns + ` FROM entries WHERE entry_date = ?`
	entry, err := scanEntry(r.db.QueryRowContext(ctx, query, day.Format(time.DateOnly)))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find entry for date %s: %w", day.Format(time.DateOnly), err)
	}
	return entry, nil
}

func (r *SQLiteEntryRepository) FindEntryByID(ctx context.Context, entryID string) (*domain.Entry, error) {
	query := `SELECT ` + entryColumns + ` FROM entries WHERE entry_id = ?`
	entry, err := scanEntry(r.db.QueryRowContext(ctx, query, entryID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find entry by ID %s: %w", entryID, err)
	}
	return entry, nil
}

func (r *SQLiteEntryRepository) ListEntries(ctx context.Context, limit int) ([]domain.Entry, error) {
	query := `SELECT ` + entryColumns + ` FROM entries ORDER BY entry_date DESC`
	var (
		rows *sql.Rows
		err  error
	)
	if limit > 0 {
		rows, err = r.db.QueryContext(ctx, query+` LIMIT ?`, limit)
	} else {
		rows, err = r.db.QueryContext(ctx, query)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query entries: %w", err)
	}
	defer rows.Close()

	entries := []domain.Entry{}
	for rows.Next() {
		entry, err := scanEntry(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan entry row: %w", err)
		}
		entries = append(entries, *entry)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating entry rows: %w", rows.Err())
	}

	return entries, nil
}

// UpsertEntryByDate wraps the same-day lookup and the insert-or-update in one
// transaction, so two concurrent savers for the same day converge on one row.
func (r *SQLiteEntryRepository) UpsertEntryByDate(ctx context.Context, entry domain.Entry) (*domain.Entry, bool, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, false, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	day := entry.EntryDate.Format(time.DateOnly)

	var existingID, existingCreatedAt string
	err = tx.QueryRowContext(ctx,
		`SELECT entry_id, created_at FROM entries WHERE entry_date = ?`, day,
	).Scan(&existingID, &existingCreatedAt)

	created := false
	switch {
	case errors.Is(err, sql.ErrNoRows):
		created = true
		_, err = tx.ExecContext(ctx,
			`INSERT INTO entries (`+entryColumns+`) VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
			entry.EntryID,
			day,
			entry.Emotion,
			entry.Title,
			entry.Content,
			entry.AIComment,
			entry.CreatedAt.UTC().Format(time.RFC3339),
			entry.LastUpdatedAt.UTC().Format(time.RFC3339),
		)
		if err != nil {
			return nil, false, fmt.Errorf("failed to insert entry for date %s: %w", day, err)
		}
	case err != nil:
		return nil, false, fmt.Errorf("failed to look up entry for date %s: %w", day, err)
	default:
		// Keep the stored identity and created_at regardless of what the
		// caller passed in.
		entry.EntryID = existingID
		_, err = tx.ExecContext(ctx,
			`UPDATE entries
			 SET emotion = ?, title = ?, content = ?, ai_comment = ?, last_updated_at = ?
			 WHERE entry_id = ?`,
			entry.Emotion,
			entry.Title,
			entry.Content,
			entry.AIComment,
			entry.LastUpdatedAt.UTC().Format(time.RFC3339),
			existingID,
		)
		if err != nil {
			return nil, false, fmt.Errorf("failed to update entry for date %s: %w", day, err)
		}
		if entry.CreatedAt, err = time.Parse(time.RFC3339, existingCreatedAt); err != nil {
			return nil, false, fmt.Errorf("bad created_at %q: %w", existingCreatedAt, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return nil, false, fmt.Errorf("failed to commit upsert for date %s: %w", day, err)
	}

	saved := entry
	return &saved, created, nil
}

func (r *SQLiteEntryRepository) UpdateEntry(ctx context.Context, entry domain.Entry) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE entries
		 SET emotion = ?, title = ?, content = ?, ai_comment = ?, last_updated_at = ?
		 WHERE entry_id = ?`,
		entry.Emotion,
		entry.Title,
		entry.Content,
		entry.AIComment,
		entry.LastUpdatedAt.UTC().Format(time.RFC3339),
		entry.EntryID,
	)
	if err != nil {
		return fmt.Errorf("failed to execute update entry query: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read rows affected: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("entry not found: %w", apperrors.ErrNotFound)
	}
	return nil
}

func (r *SQLiteEntryRepository) DeleteEntry(ctx context.Context, entryID string) (bool, error) {
	res, err := r.db.ExecContext(ctx, `DELETE FROM entries WHERE entry_id = ?`, entryID)
	if err != nil {
		return false, fmt.Errorf("failed to delete entry %s: %w", entryID, err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to read rows affected: %w", err)
	}
	return affected > 0, nil
}

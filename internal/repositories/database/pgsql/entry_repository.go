package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/kokorolog/kokorolog/internal/apperrors"
	"github.com/kokorolog/kokorolog/internal/core/domain"
	portsrepo "github.com/kokorolog/kokorolog/internal/core/ports/repositories"
	"github.com/kokorolog/kokorolog/internal/models"
)

type PgxEntryRepository struct {
	db *pgxpool.Pool
}

// NewEntryRepository creates the Postgres-backed entry repository.
func NewEntryRepository(db *pgxpool.Pool) portsrepo.EntryRepositoryFacade {
	return &PgxEntryRepository{db: db}
}

// Ensure PgxEntryRepository implements the repository facade
var _ portsrepo.EntryRepositoryFacade = (*PgxEntryRepository)(nil)

// Helper to convert domain.Entry to models.Entry
func toModelEntry(d domain.Entry) models.Entry {
	return models.Entry{
		EntryID:   d.EntryID,
		EntryDate: d.EntryDate,
		Emotion:   d.Emotion,
		Title:     d.Title,
		Content:   d.Content,
		AIComment: d.AIComment,
		AuditFields: models.AuditFields{
			CreatedAt:     d.CreatedAt,
			LastUpdatedAt: d.LastUpdatedAt,
		},
	}
}

// Helper to convert models.Entry to domain.Entry
func toDomainEntry(m models.Entry) domain.Entry {
	return domain.Entry{
		EntryID:   m.EntryID,
		EntryDate: m.EntryDate,
		Emotion:   m.Emotion,
		Title:     m.Title,
		Content:   m.Content,
		AIComment: m.AIComment,
		AuditFields: domain.AuditFields{
			CreatedAt:     m.CreatedAt,
			LastUpdatedAt: m.LastUpdatedAt,
		},
	}
}

const entryColumns = `entry_id, entry_date, emotion, title, content, ai_comment, created_at, last_updated_at`

func scanEntry(row pgx.Row) (*models.Entry, error) {
	var m models.Entry
	err := row.Scan(
		&m.EntryID,
		&m.EntryDate,
		&m.Emotion,
		&m.Title,
		&m.Content,
		&m.AIComment,
		&m.CreatedAt,
		&m.LastUpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *PgxEntryRepository) FindEntryByDate(ctx context.Context, day time.Time) (*domain.Entry, error) {
	query := `
		SELECT ` + entryColumns + `
		FROM entries
		WHERE entry_date = $1;
	`
	m, err := scanEntry(r.db.QueryRow(ctx, query, day))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find entry for date %s: %w", day.Format(time.DateOnly), err)
	}

	entry := toDomainEntry(*m)
	return &entry, nil
}

func (r *PgxEntryRepository) FindEntryByID(ctx context.Context, entryID string) (*domain.Entry, error) {
	query := `
		SELECT ` + entryColumns + `
		FROM entries
		WHERE entry_id = $1;
	`
	m, err := scanEntry(r.db.QueryRow(ctx, query, entryID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find entry by ID %s: %w", entryID, err)
	}

	entry := toDomainEntry(*m)
	return &entry, nil
}

func (r *PgxEntryRepository) ListEntries(ctx context.Context, limit int) ([]domain.Entry, error) {
	query := `
		SELECT ` + entryColumns + `
		FROM entries
		ORDER BY entry_date DESC
	`
	var (
		rows pgx.Rows
		err  error
	)
	if limit > 0 {
		rows, err = r.db.Query(ctx, query+` LIMIT $1;`, limit)
	} else {
		rows, err = r.db.Query(ctx, query+`;`)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query entries: %w", err)
	}
	defer rows.Close()

	entries := []domain.Entry{}
	for rows.Next() {
		m, err := scanEntry(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan entry row: %w", err)
		}
		entries = append(entries, toDomainEntry(*m))
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating entry rows: %w", rows.Err())
	}

	return entries, nil
}

// UpsertEntryByDate persists the entry atomically: the UNIQUE constraint on
// entry_date turns concurrent same-day saves into one insert plus updates.
// The stored identity and created_at survive the update branch.
func (r *PgxEntryRepository) UpsertEntryByDate(ctx context.Context, entry domain.Entry) (*domain.Entry, bool, error) {
	m := toModelEntry(entry)
	query := `
		INSERT INTO entries (` + entryColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		ON CONFLICT (entry_date) DO UPDATE SET
			emotion = EXCLUDED.emotion,
			title = EXCLUDED.title,
			content = EXCLUDED.content,
			ai_comment = EXCLUDED.ai_comment,
			last_updated_at = EXCLUDED.last_updated_at
		RETURNING ` + entryColumns + `, (xmax = 0) AS inserted;
	`
	var (
		saved    models.Entry
		inserted bool
	)
	err := r.db.QueryRow(ctx, query,
		m.EntryID,
		m.EntryDate,
		m.Emotion,
		m.Title,
		m.Content,
		m.AIComment,
		m.CreatedAt,
		m.LastUpdatedAt,
	).Scan(
		&saved.EntryID,
		&saved.EntryDate,
		&saved.Emotion,
		&saved.Title,
		&saved.Content,
		&saved.AIComment,
		&saved.CreatedAt,
		&saved.LastUpdatedAt,
		&inserted,
	)
	if err != nil {
		return nil, false, fmt.Errorf("failed to upsert entry for date %s: %w", entry.Day(), err)
	}

	result := toDomainEntry(saved)
	return &result, inserted, nil
}

func (r *PgxEntryRepository) UpdateEntry(ctx context.Context, entry domain.Entry) error {
	m := toModelEntry(entry)
	query := `
		UPDATE entries
		SET emotion = $1, title = $2, content = $3, ai_comment = $4, last_updated_at = $5
		WHERE entry_id = $6;
	`
	cmdTag, err := r.db.Exec(ctx, query,
		m.Emotion,
		m.Title,
		m.Content,
		m.AIComment,
		m.LastUpdatedAt,
		m.EntryID,
	)
	if err != nil {
		return fmt.Errorf("failed to execute update entry query: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("entry not found: %w", apperrors.ErrNotFound)
	}
	return nil
}

func (r *PgxEntryRepository) DeleteEntry(ctx context.Context, entryID string) (bool, error) {
	query := `DELETE FROM entries WHERE entry_id = $1;`
	cmdTag, err := r.db.Exec(ctx, query, entryID)
	if err != nil {
		return false, fmt.Errorf("failed to delete entry %s: %w", entryID, err)
	}
	return cmdTag.RowsAffected() > 0, nil
}

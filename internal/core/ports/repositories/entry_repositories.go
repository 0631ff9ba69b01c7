package repositories

import (
	"context"
	"time"

	"github.com/kokorolog/kokorolog/internal/core/domain"
)

// EntryReader defines read operations for diary entries.
type EntryReader interface {
	// FindEntryByDate retrieves the entry for the given calendar day.
	// Returns apperrors.ErrNotFound when no entry exists for that day.
	FindEntryByDate(ctx context.Context, day time.Time) (*domain.Entry, error)

	// FindEntryByID retrieves a specific entry by its unique identifier.
	FindEntryByID(ctx context.Context, entryID string) (*domain.Entry, error)

	// ListEntries retrieves entries ordered by date descending.
	// A limit <= 0 returns all entries.
	ListEntries(ctx context.Context, limit int) ([]domain.Entry, error)
}

// EntryWriter defines write operations for diary entries.
type EntryWriter interface {
	// UpsertEntryByDate atomically inserts the entry, or updates the existing
	// row for the same calendar day in place. The stored row's identity and
	// date are preserved on update. Returns the persisted entry and whether a
	// new row was created.
	UpsertEntryByDate(ctx context.Context, entry domain.Entry) (*domain.Entry, bool, error)

	// UpdateEntry replaces the mutable fields of the entry identified by
	// entry.EntryID. Returns apperrors.ErrNotFound when no such row exists.
	UpdateEntry(ctx context.Context, entry domain.Entry) error

	// DeleteEntry removes the entry with the given identifier. The boolean
	// reports whether a row was actually deleted; a missing row is not an error.
	DeleteEntry(ctx context.Context, entryID string) (bool, error)
}

// EntryRepositoryFacade combines all entry repository interfaces.
type EntryRepositoryFacade interface {
	EntryReader
	EntryWriter
}

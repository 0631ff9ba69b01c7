package services

import (
	"context"
	"time"

	"github.com/kokorolog/kokorolog/internal/core/domain"
	"github.com/kokorolog/kokorolog/internal/dto"
)

// DiaryReaderSvc defines read operations over diary entries.
type DiaryReaderSvc interface {
	// GetEntryByID retrieves one entry; apperrors.ErrNotFound when absent.
	GetEntryByID(ctx context.Context, entryID string) (*domain.Entry, error)

	// GetEntryByDate retrieves the entry for a calendar day;
	// apperrors.ErrNotFound when that day has no entry.
	GetEntryByDate(ctx context.Context, day time.Time) (*domain.Entry, error)

	// ListEntries returns all entries, newest first.
	ListEntries(ctx context.Context) ([]domain.Entry, error)
}

// DiaryWriterSvc defines the reconciliation (create-or-update) operations.
// Every write round-trips through the commentary generator before touching
// the store; a generation failure leaves the store untouched.
type DiaryWriterSvc interface {
	// SaveForDate creates the entry for req.Date, or updates the existing one
	// in place, after generating a fresh AI comment from the new field values.
	SaveForDate(ctx context.Context, req dto.SaveDiaryRequest) (*dto.SaveDiaryResponse, error)

	// CreateToday saves an entry dated today. Title may be empty.
	CreateToday(ctx context.Context, req dto.CreateDiaryRequest) (*dto.SaveDiaryResponse, error)

	// UpdateByID rewrites the entry's mutable fields and regenerates its
	// AI comment. apperrors.ErrNotFound when the id is unknown.
	UpdateByID(ctx context.Context, entryID string, req dto.UpdateDiaryRequest) (*dto.SaveDiaryResponse, error)

	// DeleteEntry removes an entry; the boolean reports whether a row matched.
	DeleteEntry(ctx context.Context, entryID string) (bool, error)
}

// DiarySvcFacade combines all diary service interfaces.
type DiarySvcFacade interface {
	DiaryReaderSvc
	DiaryWriterSvc
}

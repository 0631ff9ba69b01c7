package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/kokorolog/kokorolog/internal/apperrors"
	"github.com/kokorolog/kokorolog/internal/core/domain"
	"github.com/kokorolog/kokorolog/internal/core/ports/ai"
	portsrepo "github.com/kokorolog/kokorolog/internal/core/ports/repositories"
	portssvc "github.com/kokorolog/kokorolog/internal/core/ports/services"
	"github.com/kokorolog/kokorolog/internal/dto"
	"github.com/kokorolog/kokorolog/internal/metrics"
)

const (
	messageCreated = "created"
	messageUpdated = "updated"
)

type diaryService struct {
	entryRepo portsrepo.EntryRepositoryFacade
	generator ai.CommentaryGenerator
	recorder  metrics.Recorder
	now       func() time.Time
}

// NewDiaryService creates the diary reconciliation service.
func NewDiaryService(entryRepo portsrepo.EntryRepositoryFacade, generator ai.CommentaryGenerator, recorder metrics.Recorder) portssvc.DiarySvcFacade {
	return &diaryService{
		entryRepo: entryRepo,
		generator: generator,
		recorder:  recorder,
		now:       time.Now,
	}
}

var _ portssvc.DiarySvcFacade = (*diaryService)(nil)

// SaveForDate implements the create-or-update reconciliation flow:
// look up the day, generate the comment from the new values, then persist
// with a single atomic upsert. A generation failure never mutates the store.
func (s *diaryService) SaveForDate(ctx context.Context, req dto.SaveDiaryRequest) (*dto.SaveDiaryResponse, error) {
	day, err := time.Parse(time.DateOnly, req.Date)
	if err != nil {
		return nil, fmt.Errorf("invalid date %q: %w", req.Date, apperrors.ErrValidation)
	}

	// Advisory lookup: preserves the existing identity and audit fields in
	// the in-flight copy. The upsert below decides created-vs-updated.
	existing, err := s.entryRepo.FindEntryByDate(ctx, day)
	if err != nil && !errors.Is(err, apperrors.ErrNotFound) {
		return nil, fmt.Errorf("failed to look up entry for %s: %w", req.Date, err)
	}

	comment, err := s.generateComment(ctx, req.Emotion, req.Title, req.Content)
	if err != nil {
		return nil, err
	}

	entry := domain.Entry{
		EntryDate: day,
		Emotion:   req.Emotion,
		Title:     req.Title,
		Content:   req.Content,
		AIComment: comment,
	}
	now := s.now()
	if existing != nil {
		entry.EntryID = existing.EntryID
		entry.CreatedAt = existing.CreatedAt
	} else {
		entry.EntryID = uuid.NewString()
		entry.CreatedAt = now
	}
	entry.LastUpdatedAt = now

	saved, created, err := s.entryRepo.UpsertEntryByDate(ctx, entry)
	if err != nil {
		return nil, fmt.Errorf("failed to save entry for %s: %w", req.Date, err)
	}
	s.recorder.RecordEntrySaved(created)

	resp := &dto.SaveDiaryResponse{AIComment: comment, Message: messageUpdated}
	if created {
		resp.ID = saved.EntryID
		resp.Message = messageCreated
	}
	return resp, nil
}

// CreateToday saves an entry dated today, title optional.
func (s *diaryService) CreateToday(ctx context.Context, req dto.CreateDiaryRequest) (*dto.SaveDiaryResponse, error) {
	return s.SaveForDate(ctx, dto.SaveDiaryRequest{
		Date:    s.now().Format(time.DateOnly),
		Emotion: req.Emotion,
		Title:   req.Title,
		Content: req.Content,
	})
}

// UpdateByID rewrites an entry's mutable fields and regenerates its comment.
// Identity and date are preserved.
func (s *diaryService) UpdateByID(ctx context.Context, entryID string, req dto.UpdateDiaryRequest) (*dto.SaveDiaryResponse, error) {
	existing, err := s.entryRepo.FindEntryByID(ctx, entryID)
	if err != nil {
		return nil, fmt.Errorf("failed to load entry %s: %w", entryID, err)
	}

	comment, err := s.generateComment(ctx, req.Emotion, req.Title, req.Content)
	if err != nil {
		return nil, err
	}

	entry := *existing
	entry.Emotion = req.Emotion
	entry.Title = req.Title
	entry.Content = req.Content
	entry.AIComment = comment
	entry.LastUpdatedAt = s.now()

	if err := s.entryRepo.UpdateEntry(ctx, entry); err != nil {
		return nil, fmt.Errorf("failed to update entry %s: %w", entryID, err)
	}
	s.recorder.RecordEntrySaved(false)

	return &dto.SaveDiaryResponse{AIComment: comment, Message: messageUpdated}, nil
}

func (s *diaryService) GetEntryByID(ctx context.Context, entryID string) (*domain.Entry, error) {
	entry, err := s.entryRepo.FindEntryByID(ctx, entryID)
	if err != nil {
		return nil, fmt.Errorf("failed to get entry %s: %w", entryID, err)
	}
	return entry, nil
}

func (s *diaryService) GetEntryByDate(ctx context.Context, day time.Time) (*domain.Entry, error) {
	entry, err := s.entryRepo.FindEntryByDate(ctx, day)
	if err != nil {
		return nil, fmt.Errorf("failed to get entry for %s: %w", day.Format(time.DateOnly), err)
	}
	return entry, nil
}

func (s *diaryService) ListEntries(ctx context.Context) ([]domain.Entry, error) {
	entries, err := s.entryRepo.ListEntries(ctx, 0)
	if err != nil {
		return nil, fmt.Errorf("failed to list entries: %w", err)
	}
	return entries, nil
}

func (s *diaryService) DeleteEntry(ctx context.Context, entryID string) (bool, error) {
	deleted, err := s.entryRepo.DeleteEntry(ctx, entryID)
	if err != nil {
		return false, fmt.Errorf("failed to delete entry %s: %w", entryID, err)
	}
	return deleted, nil
}

// generateComment invokes the external generator and records the outcome.
func (s *diaryService) generateComment(ctx context.Context, emotion, title, content string) (string, error) {
	start := time.Now()
	comment, err := s.generator.GenerateText(ctx, buildCommentPrompt(emotion, title, content))
	s.recorder.RecordGenerationLatency(time.Since(start))
	if err != nil {
		s.recorder.RecordGenerationFailure("comment")
		return "", fmt.Errorf("comment generation: %w", err)
	}
	s.recorder.RecordGenerationSuccess("comment")
	return comment, nil
}

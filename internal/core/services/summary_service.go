package services

import (
	"context"
	"fmt"
	"time"

	"github.com/kokorolog/kokorolog/internal/core/ports/ai"
	portsrepo "github.com/kokorolog/kokorolog/internal/core/ports/repositories"
	portssvc "github.com/kokorolog/kokorolog/internal/core/ports/services"
	"github.com/kokorolog/kokorolog/internal/metrics"
)

// defaultSummaryLimit bounds how many recent entries feed the summary prompt.
const defaultSummaryLimit = 30

type summaryService struct {
	entryRepo portsrepo.EntryReader
	generator ai.CommentaryGenerator
	recorder  metrics.Recorder
	limit     int
}

// NewSummaryService creates the rolling summary service. A limit <= 0 falls
// back to the default of 30 entries.
func NewSummaryService(entryRepo portsrepo.EntryReader, generator ai.CommentaryGenerator, recorder metrics.Recorder, limit int) portssvc.SummarySvcFacade {
	if limit <= 0 {
		limit = defaultSummaryLimit
	}
	return &summaryService{
		entryRepo: entryRepo,
		generator: generator,
		recorder:  recorder,
		limit:     limit,
	}
}

var _ portssvc.SummarySvcFacade = (*summaryService)(nil)

func (s *summaryService) Summarize(ctx context.Context) (string, error) {
	entries, err := s.entryRepo.ListEntries(ctx, s.limit)
	if err != nil {
		return "", fmt.Errorf("failed to fetch entries for summary: %w", err)
	}
	if len(entries) == 0 {
		return NoEntriesSummary, nil
	}

	start := time.Now()
	summary, err := s.generator.GenerateText(ctx, buildSummaryPrompt(entries))
	s.recorder.RecordGenerationLatency(time.Since(start))
	if err != nil {
		s.recorder.RecordGenerationFailure("summary")
		return "", fmt.Errorf("summary generation: %w", err)
	}
	s.recorder.RecordGenerationSuccess("summary")
	return summary, nil
}

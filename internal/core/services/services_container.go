package services

import (
	"github.com/kokorolog/kokorolog/internal/core/ports/ai"
	portsrepo "github.com/kokorolog/kokorolog/internal/core/ports/repositories"
	portssvc "github.com/kokorolog/kokorolog/internal/core/ports/services"
	"github.com/kokorolog/kokorolog/internal/metrics"
	"github.com/kokorolog/kokorolog/internal/platform/config"
)

// NewServiceContainer creates a new service container with properly
// initialized dependencies.
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider, generator ai.CommentaryGenerator, recorder metrics.Recorder) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	container.Diary = NewDiaryService(repos.EntryRepo, generator, recorder)
	container.Summary = NewSummaryService(repos.EntryRepo, generator, recorder, cfg.SummaryEntryLimit)

	return container
}

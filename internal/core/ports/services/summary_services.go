package services

import "context"

// SummarySvcFacade produces the rolling commentary across recent entries.
type SummarySvcFacade interface {
	// Summarize builds an aggregate prompt over the most recent entries and
	// returns the generator's output verbatim. With zero entries it returns a
	// canned text without invoking the generator.
	Summarize(ctx context.Context) (string, error)
}

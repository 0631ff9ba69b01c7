// Package ai defines the outbound port for the external text generation
// collaborator. Services depend on this interface only, never on a concrete
// model client, so the reconciliation and summary flows stay testable with a
// deterministic stub.
package ai

import "context"

// CommentaryGenerator produces free text from a prompt. Implementations are
// potentially slow and potentially failing; errors wrap
// apperrors.ErrGeneration. No retries are performed at this boundary.
type CommentaryGenerator interface {
	GenerateText(ctx context.Context, prompt string) (string, error)
}

// Package gemini adapts the Google Gemini API to the CommentaryGenerator port.
package gemini

import (
	"context"
	"fmt"

	"github.com/kokorolog/kokorolog/internal/apperrors"
	"github.com/kokorolog/kokorolog/internal/core/ports/ai"
	"google.golang.org/genai"
)

type Client struct {
	client *genai.Client
	model  string
}

// Ensure Client implements the generator port
var _ ai.CommentaryGenerator = (*Client)(nil)

// NewClient creates a Gemini-backed commentary generator.
func NewClient(ctx context.Context, apiKey, model string) (*Client, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}
	return &Client{client: client, model: model}, nil
}

// GenerateText sends the prompt to the configured model and returns its text
// output. No retries and no adapter-imposed deadline; a cancelled ctx aborts
// the call.
func (c *Client) GenerateText(ctx context.Context, prompt string) (string, error) {
	resp, err := c.client.Models.GenerateContent(ctx, c.model, genai.Text(prompt), nil)
	if err != nil {
		return "", fmt.Errorf("gemini generate (%s): %v: %w", c.model, err, apperrors.ErrGeneration)
	}

	text := resp.Text()
	if text == "" {
		return "", fmt.Errorf("gemini returned no text: %w", apperrors.ErrGeneration)
	}
	return text, nil
}

package openai

import (
	"context"
	"fmt"

	"github.com/serapeum-ai/serapeum/internal/usecase/orchestrator"
)

// Synthesize writes the short localized summary over the structured results.
// Callers treat this as best-effort and substitute a fallback on error.
func (c *Client) Synthesize(ctx context.Context, in orchestrator.SynthesisInput) (string, error) {
	text, err := c.complete(ctx, "synthesizer",
		fmt.Sprintf(synthesizerSystemPrompt, in.Language),
		fmt.Sprintf(synthesizerUserPrompt, in.OriginalQuery, in.WebContext, in.APIDetails),
		false,
	)
	if err != nil {
		return "", fmt.Errorf("synthesize answer: %w", err)
	}
	return text, nil
}

package openai

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/serapeum-ai/serapeum/internal/domain"
)

const defaultMaxTitles = 3

type extractionWire struct {
	Titles []string `json:"titles"`
}

// ExtractTitles pulls candidate titles out of web-search context. An empty
// titles list is a valid outcome; a malformed response is not.
func (c *Client) ExtractTitles(ctx context.Context, webContext string) (*domain.TitleExtraction, error) {
	content, err := c.complete(ctx, "extractor",
		fmt.Sprintf(extractorSystemPrompt, c.maxTitles),
		fmt.Sprintf(extractorUserPrompt, webContext),
		true,
	)
	if err != nil {
		return nil, fmt.Errorf("extract titles: %w", err)
	}

	return parseTitleExtraction(content, c.maxTitles)
}

func parseTitleExtraction(raw string, maxTitles int) (*domain.TitleExtraction, error) {
	var w extractionWire
	if err := json.Unmarshal([]byte(raw), &w); err != nil {
		return nil, fmt.Errorf("parse extractor output: %w", err)
	}

	titles := w.Titles
	if titles == nil {
		titles = []string{}
	}
	// The model is told the cap, but it is not trusted to honor it.
	if len(titles) > maxTitles {
		titles = titles[:maxTitles]
	}

	return &domain.TitleExtraction{Titles: titles}, nil
}

package orchestrator

import (
	"context"

	"github.com/serapeum-ai/serapeum/internal/domain"
)

// Router classifies a query into an intent, category, and cleaned query.
// A nil decision (with or without an error) is a hard routing failure.
type Router interface {
	Route(ctx context.Context, query, language string) (*domain.RouteDecision, error)
}

// WebSearcher provides best-effort web context for discovery queries.
type WebSearcher interface {
	Search(ctx context.Context, query, language string, maxResults int) ([]domain.WebResult, error)
}

// TitleExtractor pulls candidate titles out of web-search context text.
type TitleExtractor interface {
	ExtractTitles(ctx context.Context, webContext string) (*domain.TitleExtraction, error)
}

// SynthesisInput is everything the synthesizer needs to write the final
// localized summary. APIDetails is the serialized aggregated result.
type SynthesisInput struct {
	OriginalQuery string
	WebContext    string
	APIDetails    string
	Language      string
}

// Synthesizer turns structured results into a short localized summary.
type Synthesizer interface {
	Synthesize(ctx context.Context, in SynthesisInput) (string, error)
}

// CatalogDispatcher executes the category-appropriate catalog search.
type CatalogDispatcher interface {
	Dispatch(ctx context.Context, category domain.Category, query, language string) (domain.AggregatedResult, error)
}

package orchestrator

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/serapeum-ai/serapeum/internal/domain"
	"github.com/serapeum-ai/serapeum/internal/fanout"
	"github.com/serapeum-ai/serapeum/internal/logger"
)

// enrich runs the discovery pipeline: best-effort web search, hard-fail
// title extraction, then a settle-all catalog fan-out per extracted title.
// It returns the raw web context alongside the merged result so the
// synthesizer can use both.
func (s *Service) enrich(
	ctx context.Context, decision *domain.RouteDecision, language string,
) (string, domain.AggregatedResult, error) {
	log := logger.FromContext(ctx)

	// Web search is best-effort: an empty context is a valid input for the
	// extractor, a missing one is not worth failing the request over.
	var webContext string
	hits, err := s.web.Search(ctx, decision.ExtractedQuery, language, s.maxWebResults)
	if err != nil {
		log.Warn("web search failed, continuing with empty context",
			zap.String("query", decision.ExtractedQuery),
			zap.Error(err),
		)
	} else {
		contents := make([]string, 0, len(hits))
		for _, h := range hits {
			contents = append(contents, h.Content)
		}
		webContext = strings.Join(contents, "\n")
	}

	// Without titles there is nothing to enrich, so extraction is fatal for
	// the discovery path.
	extraction, err := s.extractor.ExtractTitles(ctx, webContext)
	if err != nil {
		log.Error("title extraction failed",
			zap.Int("context_length", len(webContext)),
			zap.Error(err),
		)
		return "", domain.AggregatedResult{}, fmt.Errorf("%w: %w", domain.ErrExtractionFailed, err)
	}
	if extraction == nil {
		log.Error("title extraction returned no output")
		return "", domain.AggregatedResult{}, domain.ErrExtractionEmpty
	}

	titles := extraction.Titles
	if len(titles) > s.maxTitles {
		titles = titles[:s.maxTitles]
	}

	tasks := make([]fanout.Task[domain.AggregatedResult], len(titles))
	for i, title := range titles {
		title := title
		tasks[i] = func(ctx context.Context) (domain.AggregatedResult, error) {
			return s.catalog.Dispatch(ctx, decision.Category, title, language)
		}
	}

	// Merge in title order. A rejected per-title dispatch contributes
	// nothing and never aborts its siblings.
	merged := domain.NewAggregatedResult()
	for i, out := range fanout.All(ctx, tasks) {
		if out.Err != nil {
			log.Error("per-title enrichment failed",
				zap.String("title", titles[i]),
				zap.Error(out.Err),
			)
			continue
		}
		merged.Append(out.Value)
	}
	merged.Normalize()

	return webContext, merged, nil
}

// Package orchestrator sequences the router, catalog searches, web-search
// enrichment, and answer synthesis into a single response per query.
package orchestrator

import (
	"context"
	"encoding/json"
	"errors"
	"strings"

	"go.uber.org/zap"

	"github.com/serapeum-ai/serapeum/internal/domain"
	"github.com/serapeum-ai/serapeum/internal/i18n"
	"github.com/serapeum-ai/serapeum/internal/logger"
	"github.com/serapeum-ai/serapeum/internal/metrics"
)

const (
	defaultMaxTitles     = 3
	defaultMaxWebResults = 5
)

// Service is the orchestrator entry point. It holds no per-request state:
// every invocation is independent and all intermediate values are local.
type Service struct {
	router        Router
	catalog       CatalogDispatcher
	web           WebSearcher
	extractor     TitleExtractor
	synth         Synthesizer
	translations  *i18n.Catalog
	maxTitles     int
	maxWebResults int
}

// New creates the orchestrator service.
func New(
	router Router,
	catalog CatalogDispatcher,
	web WebSearcher,
	extractor TitleExtractor,
	synth Synthesizer,
	translations *i18n.Catalog,
) *Service {
	return &Service{
		router:        router,
		catalog:       catalog,
		web:           web,
		extractor:     extractor,
		synth:         synth,
		translations:  translations,
		maxTitles:     defaultMaxTitles,
		maxWebResults: defaultMaxWebResults,
	}
}

// WithMaxTitles caps how many extracted titles are enriched per discovery
// query. Values outside [3, 9] are clamped.
func (s *Service) WithMaxTitles(n int) *Service {
	if n < 3 {
		n = 3
	}
	if n > 9 {
		n = 9
	}
	s.maxTitles = n
	return s
}

// WithMaxWebResults sets how many web hits are requested when enriching a
// discovery query. Values outside [1, 10] are clamped.
func (s *Service) WithMaxWebResults(n int) *Service {
	if n < 1 {
		n = 1
	}
	if n > 10 {
		n = 10
	}
	s.maxWebResults = n
	return s
}

// Orchestrate routes a free-form query to the matching pipeline and returns
// exactly one tagged response variant. It never returns a Go error: every
// failure mode folds into the refusal or error variants.
func (s *Service) Orchestrate(ctx context.Context, query, language string) domain.AgentResponse {
	log := logger.FromContext(ctx)
	language = i18n.Resolve(language)

	decision, err := s.router.Route(ctx, query, language)
	if err != nil || decision == nil {
		log.Error("router produced no decision", zap.String("query", query), zap.Error(err))
		resp := domain.NewError("Router failure", s.translations.Lookup(language, i18n.KeyRouterFailure))
		metrics.OrchestrationsTotal.WithLabelValues("none", string(resp.Kind)).Inc()
		return resp
	}

	var resp domain.AgentResponse
	switch decision.Intent {
	case domain.IntentOutOfScope:
		message := decision.RefusalReason
		if message == "" {
			message = s.translations.Lookup(language, i18n.KeyGenericRefusal)
		}
		resp = domain.NewRefusal(message)

	case domain.IntentSpecificEntity:
		resp = s.specificEntity(ctx, decision, language)

	case domain.IntentGeneralDiscovery:
		resp = s.discovery(ctx, decision, query, language)

	default:
		log.Warn("unrecognized intent", zap.String("intent", string(decision.Intent)))
		resp = domain.NewRefusal(s.translations.Lookup(language, i18n.KeyUnrecognizedIntent))
	}

	metrics.OrchestrationsTotal.WithLabelValues(string(decision.Intent), string(resp.Kind)).Inc()
	return resp
}

// specificEntity searches the routed category for the extracted title and
// synthesizes a summary over the structured result. A dispatch failure is
// terminal; a synthesis failure degrades to a localized fallback message.
func (s *Service) specificEntity(
	ctx context.Context, decision *domain.RouteDecision, language string,
) domain.AgentResponse {
	log := logger.FromContext(ctx)

	result, err := s.catalog.Dispatch(ctx, decision.Category, decision.ExtractedQuery, language)
	if err != nil {
		log.Error("specific entity search failed",
			zap.String("query", decision.ExtractedQuery),
			zap.Error(err),
		)
		return domain.NewError(s.translations.Lookup(language, i18n.KeySpecificError), err.Error())
	}

	message := s.translations.Lookup(language, i18n.KeySpecificFallback)
	text, err := s.synth.Synthesize(ctx, SynthesisInput{
		OriginalQuery: decision.ExtractedQuery,
		WebContext:    "",
		APIDetails:    marshalDetails(result),
		Language:      language,
	})
	if err != nil {
		log.Error("synthesizer failed for specific entity",
			zap.String("query", decision.ExtractedQuery),
			zap.Error(err),
		)
	} else if strings.TrimSpace(text) != "" {
		message = text
	}

	return domain.NewSearchResults(message, result)
}

// discovery enriches a vague query via web search and per-title catalog
// fan-out, then synthesizes the final summary. Only the extraction step is
// fatal; everything else degrades.
func (s *Service) discovery(
	ctx context.Context, decision *domain.RouteDecision, originalQuery, language string,
) domain.AgentResponse {
	log := logger.FromContext(ctx)

	webContext, merged, err := s.enrich(ctx, decision, language)
	if err != nil {
		key := i18n.KeyFailedProcessResults
		if errors.Is(err, domain.ErrExtractionEmpty) {
			key = i18n.KeyFailedExtractResults
		}
		return domain.NewError(s.translations.Lookup(language, key), err.Error())
	}

	message := s.translations.Lookup(language, i18n.KeySynthesisFailure)
	text, err := s.synth.Synthesize(ctx, SynthesisInput{
		OriginalQuery: originalQuery,
		WebContext:    webContext,
		APIDetails:    marshalDetails(merged),
		Language:      language,
	})
	if err != nil {
		// Structured data is still returned; only the summary degrades.
		log.Error("synthesizer failed for discovery",
			zap.String("query", originalQuery),
			zap.Error(err),
		)
	} else if strings.TrimSpace(text) != "" {
		message = text
	}

	return domain.NewDiscovery(message, merged)
}

// marshalDetails serializes the aggregated result for the synthesizer
// prompt. Marshal cannot fail for these value types.
func marshalDetails(r domain.AggregatedResult) string {
	b, err := json.Marshal(r)
	if err != nil {
		return "{}"
	}
	return string(b)
}

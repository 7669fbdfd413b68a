// Package catalog dispatches content searches to the three catalog backends
// and aggregates multi-source results with settle-all semantics.
package catalog

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/serapeum-ai/serapeum/internal/domain"
	"github.com/serapeum-ai/serapeum/internal/fanout"
	"github.com/serapeum-ai/serapeum/internal/logger"
)

// Service routes a (category, query) pair to the right catalog backend.
type Service struct {
	media    MediaSearcher
	books    BookSearcher
	games    GameSearcher
	featured bool
}

// New creates a catalog search service.
func New(media MediaSearcher, books BookSearcher, games GameSearcher) *Service {
	return &Service{media: media, books: books, games: games}
}

// WithFeatured enables promotion of an exact title match into the featured
// slot of all-category results.
func (s *Service) WithFeatured(enabled bool) *Service {
	s.featured = enabled
	return s
}

// Dispatch executes the category-appropriate search and normalizes the
// outcome into an AggregatedResult. Single-category failures propagate to
// the caller; the ALL path never fails (degradation lands in Errors).
func (s *Service) Dispatch(
	ctx context.Context, category domain.Category, query, language string,
) (domain.AggregatedResult, error) {
	switch category {
	case domain.CategoryMovieTV:
		items, err := s.media.SearchMedia(ctx, query, language)
		if err != nil {
			return domain.AggregatedResult{}, fmt.Errorf("search media: %w", err)
		}
		res := domain.AggregatedResult{Media: items}
		res.Normalize()
		return res, nil

	case domain.CategoryGame:
		items, err := s.games.SearchGames(ctx, query, language)
		if err != nil {
			return domain.AggregatedResult{}, fmt.Errorf("search games: %w", err)
		}
		res := domain.AggregatedResult{Games: items}
		res.Normalize()
		return res, nil

	case domain.CategoryBook:
		items, err := s.books.SearchBooks(ctx, query, language)
		if err != nil {
			return domain.AggregatedResult{}, fmt.Errorf("search books: %w", err)
		}
		res := domain.AggregatedResult{Books: items}
		res.Normalize()
		return res, nil

	default:
		// ALL and anything unrecognized
		return s.SearchAll(ctx, query, language), nil
	}
}

// SearchAll runs all three catalog searches concurrently and waits for every
// one to settle. A failing source contributes a SearchError and an empty
// sequence; Errors stays nil when nothing failed. SearchAll itself never
// fails: total degradation still yields a structurally valid result.
func (s *Service) SearchAll(ctx context.Context, query, language string) domain.AggregatedResult {
	log := logger.FromContext(ctx)

	tasks := []fanout.Task[domain.AggregatedResult]{
		func(ctx context.Context) (domain.AggregatedResult, error) {
			items, err := s.media.SearchMedia(ctx, query, language)
			return domain.AggregatedResult{Media: items}, err
		},
		func(ctx context.Context) (domain.AggregatedResult, error) {
			items, err := s.books.SearchBooks(ctx, query, language)
			return domain.AggregatedResult{Books: items}, err
		},
		func(ctx context.Context) (domain.AggregatedResult, error) {
			items, err := s.games.SearchGames(ctx, query, language)
			return domain.AggregatedResult{Games: items}, err
		},
	}

	// Error order follows dispatch order, not completion order.
	sources := []domain.Source{domain.SourceMedia, domain.SourceBooks, domain.SourceGames}

	result := domain.NewAggregatedResult()
	for i, out := range fanout.All(ctx, tasks) {
		if out.Err != nil {
			log.Error("catalog source failed",
				zap.String("source", string(sources[i])),
				zap.Error(out.Err),
			)
			result.Errors = append(result.Errors, domain.SearchError{
				Source:  sources[i],
				Message: out.Err.Error(),
			})
			continue
		}
		result.Append(out.Value)
	}
	result.Normalize()

	if s.featured {
		result.Featured = pickFeatured(result, query)
	}

	return result
}

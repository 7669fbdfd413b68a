package catalog

import (
	"strings"

	"github.com/serapeum-ai/serapeum/internal/domain"
)

// pickFeatured promotes the first exact case-insensitive title match into
// the featured slot. Precedence when several sources match: media, then
// game, then book. Returns nil when no exact match exists.
func pickFeatured(r domain.AggregatedResult, query string) *domain.FeaturedItem {
	want := strings.ToLower(strings.TrimSpace(query))
	if want == "" {
		return nil
	}

	for i := range r.Media {
		if strings.ToLower(r.Media[i].DisplayTitle()) == want {
			return &domain.FeaturedItem{Type: domain.FeaturedMedia, Media: &r.Media[i]}
		}
	}
	for i := range r.Games {
		if strings.ToLower(r.Games[i].Name) == want {
			return &domain.FeaturedItem{Type: domain.FeaturedGame, Game: &r.Games[i]}
		}
	}
	for i := range r.Books {
		if strings.ToLower(r.Books[i].Title) == want {
			return &domain.FeaturedItem{Type: domain.FeaturedBook, Book: &r.Books[i]}
		}
	}

	return nil
}

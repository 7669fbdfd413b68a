package catalog

import (
	"context"
	"testing"

	"github.com/serapeum-ai/serapeum/internal/domain"
)

func TestPickFeatured_ExactMatchPrecedence(t *testing.T) {
	res := domain.AggregatedResult{
		Media: []domain.MediaItem{{ID: 1, Name: "The Witcher", MediaType: "tv"}},
		Games: []domain.GameItem{{ID: 2, Name: "The Witcher"}},
		Books: []domain.BookItem{{ID: "b", Title: "The Witcher"}},
	}

	f := pickFeatured(res, "the witcher")
	if f == nil {
		t.Fatal("expected a featured item")
	}
	if f.Type != domain.FeaturedMedia || f.Media == nil {
		t.Errorf("media must win the tie-break, got %+v", f)
	}
}

func TestPickFeatured_FallsThroughToGameThenBook(t *testing.T) {
	res := domain.AggregatedResult{
		Media: []domain.MediaItem{{ID: 1, Title: "Something Else", MediaType: "movie"}},
		Games: []domain.GameItem{{ID: 2, Name: "Hades"}},
		Books: []domain.BookItem{{ID: "b", Title: "Hades"}},
	}

	f := pickFeatured(res, "Hades")
	if f == nil || f.Type != domain.FeaturedGame {
		t.Fatalf("game must precede book, got %+v", f)
	}
}

func TestPickFeatured_NoMatch(t *testing.T) {
	res := domain.AggregatedResult{
		Media: []domain.MediaItem{{ID: 1, Title: "Inception II", MediaType: "movie"}},
	}
	if f := pickFeatured(res, "Inception"); f != nil {
		t.Errorf("partial match must not be featured: %+v", f)
	}
	if f := pickFeatured(res, ""); f != nil {
		t.Errorf("empty query must not be featured: %+v", f)
	}
}

func TestSearchAll_FeaturedOnlyWhenEnabled(t *testing.T) {
	media := &mockMedia{items: []domain.MediaItem{{ID: 1, Title: "Dune", MediaType: "movie"}}}
	svcOff := New(media, &mockBooks{}, &mockGames{})
	if res := svcOff.SearchAll(context.Background(), "Dune", "en"); res.Featured != nil {
		t.Error("featured must stay nil when disabled")
	}

	svcOn := New(media, &mockBooks{}, &mockGames{}).WithFeatured(true)
	res := svcOn.SearchAll(context.Background(), "Dune", "en")
	if res.Featured == nil || res.Featured.Type != domain.FeaturedMedia {
		t.Errorf("featured not promoted: %+v", res.Featured)
	}
}

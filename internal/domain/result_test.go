package domain

import (
	"encoding/json"
	"strings"
	"testing"
)

func TestAppend_PreservesOrder(t *testing.T) {
	merged := NewAggregatedResult()
	merged.Append(AggregatedResult{
		Media: []MediaItem{{ID: 1, Title: "A"}},
		Games: []GameItem{{ID: 10, Name: "A"}},
	})
	merged.Append(AggregatedResult{
		Media:  []MediaItem{{ID: 2, Title: "B"}},
		Books:  []BookItem{{ID: "b1", Title: "B"}},
		Errors: []SearchError{{Source: SourceGames, Message: "boom"}},
	})

	if len(merged.Media) != 2 || merged.Media[0].ID != 1 || merged.Media[1].ID != 2 {
		t.Fatalf("media not concatenated in order: %+v", merged.Media)
	}
	if len(merged.Books) != 1 || len(merged.Games) != 1 {
		t.Fatalf("expected 1 book and 1 game, got %d/%d", len(merged.Books), len(merged.Games))
	}
	if len(merged.Errors) != 1 || merged.Errors[0].Source != SourceGames {
		t.Fatalf("errors not carried over: %+v", merged.Errors)
	}
}

func TestNormalize_EmptyErrorsDropped(t *testing.T) {
	r := AggregatedResult{Errors: []SearchError{}}
	r.Normalize()

	if r.Errors != nil {
		t.Error("empty errors slice should normalize to nil")
	}
	if r.Media == nil || r.Books == nil || r.Games == nil {
		t.Error("nil item slices should normalize to empty slices")
	}
}

func TestAggregatedResult_JSONShape(t *testing.T) {
	r := NewAggregatedResult()
	b, err := json.Marshal(r)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	s := string(b)
	if strings.Contains(s, "null") {
		t.Errorf("empty result must not contain null arrays: %s", s)
	}
	if strings.Contains(s, "errors") {
		t.Errorf("absent errors must be omitted entirely: %s", s)
	}
	if strings.Contains(s, "featured") {
		t.Errorf("absent featured must be omitted: %s", s)
	}
}

func TestMediaItem_DisplayTitle(t *testing.T) {
	if got := (MediaItem{Title: "Inception"}).DisplayTitle(); got != "Inception" {
		t.Errorf("DisplayTitle = %q, want Inception", got)
	}
	if got := (MediaItem{Name: "Breaking Bad"}).DisplayTitle(); got != "Breaking Bad" {
		t.Errorf("DisplayTitle = %q, want Breaking Bad", got)
	}
}

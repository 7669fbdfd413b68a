package domain

// Source identifies one catalog backend.
type Source string

// Catalog sources, in fixed dispatch order.
const (
	SourceMedia Source = "media"
	SourceBooks Source = "books"
	SourceGames Source = "games"
)

// SearchError records a single failed catalog source. One entry per failing
// source, never retried within the same request.
type SearchError struct {
	Source  Source `json:"source"`
	Message string `json:"message"`
}

// FeaturedType discriminates the promoted item kind.
type FeaturedType string

// Featured item kinds.
const (
	FeaturedMedia FeaturedType = "media"
	FeaturedBook  FeaturedType = "book"
	FeaturedGame  FeaturedType = "game"
)

// FeaturedItem promotes one best match into a distinguished slot.
// Exactly one of Media/Book/Game is set, matching Type.
type FeaturedItem struct {
	Type  FeaturedType `json:"type"`
	Media *MediaItem   `json:"media,omitempty"`
	Book  *BookItem    `json:"book,omitempty"`
	Game  *GameItem    `json:"game,omitempty"`
}

// AggregatedResult is the unified output of catalog search across all three
// sources. Empty slices mean "searched, nothing found"; a nil Errors field
// means no source failed. The two must never be conflated.
type AggregatedResult struct {
	Featured *FeaturedItem `json:"featured,omitempty"`
	Media    []MediaItem   `json:"media"`
	Books    []BookItem    `json:"books"`
	Games    []GameItem    `json:"games"`
	Errors   []SearchError `json:"errors,omitempty"`
}

// NewAggregatedResult returns a result with empty (non-nil) item slices so
// the JSON encoding is always [] rather than null.
func NewAggregatedResult() AggregatedResult {
	return AggregatedResult{
		Media: []MediaItem{},
		Books: []BookItem{},
		Games: []GameItem{},
	}
}

// Append concatenates another result's items and errors onto r, preserving
// order. Featured is not merged; it only applies to a single search.
func (r *AggregatedResult) Append(other AggregatedResult) {
	r.Media = append(r.Media, other.Media...)
	r.Books = append(r.Books, other.Books...)
	r.Games = append(r.Games, other.Games...)
	r.Errors = append(r.Errors, other.Errors...)
}

// Normalize replaces nil item slices with empty ones and drops an empty
// Errors slice so absence keeps meaning "no degradation occurred".
func (r *AggregatedResult) Normalize() {
	if r.Media == nil {
		r.Media = []MediaItem{}
	}
	if r.Books == nil {
		r.Books = []BookItem{}
	}
	if r.Games == nil {
		r.Games = []GameItem{}
	}
	if len(r.Errors) == 0 {
		r.Errors = nil
	}
}

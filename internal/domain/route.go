package domain

// Intent classifies what the user is asking for.
type Intent string

// Router intents.
const (
	IntentSpecificEntity   Intent = "SPECIFIC_ENTITY"
	IntentGeneralDiscovery Intent = "GENERAL_DISCOVERY"
	IntentOutOfScope       Intent = "OUT_OF_SCOPE"
)

// Category is the content-type scope of a search.
type Category string

// Search categories.
const (
	CategoryMovieTV Category = "MOVIE_TV"
	CategoryGame    Category = "GAME"
	CategoryBook    Category = "BOOK"
	CategoryAll     Category = "ALL"
)

// ParseCategory maps a raw category string to a Category, defaulting to ALL
// for anything unrecognized.
func ParseCategory(s string) Category {
	switch Category(s) {
	case CategoryMovieTV, CategoryGame, CategoryBook, CategoryAll:
		return Category(s)
	default:
		return CategoryAll
	}
}

// RouteDecision is the router's classification of a query. Produced once per
// request and immutable afterward.
type RouteDecision struct {
	Intent         Intent   `json:"intent"`
	Category       Category `json:"category"`
	ExtractedQuery string   `json:"extractedQuery"`
	RefusalReason  string   `json:"refusalReason,omitempty"`
}

// TitleExtraction holds candidate titles pulled from web-search context.
type TitleExtraction struct {
	Titles []string `json:"titles"`
}

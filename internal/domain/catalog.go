package domain

// MediaItem is one movie or TV series entry from the media catalog.
type MediaItem struct {
	ID          int     `json:"id"`
	Title       string  `json:"title,omitempty"`
	Name        string  `json:"name,omitempty"`
	MediaType   string  `json:"media_type"` // "movie" or "tv"
	ReleaseDate string  `json:"release_date,omitempty"`
	PosterPath  string  `json:"poster_path,omitempty"`
	Overview    string  `json:"overview,omitempty"`
	VoteAverage float64 `json:"vote_average,omitempty"`
	Popularity  float64 `json:"popularity,omitempty"`
}

// DisplayTitle returns the movie title or series name, whichever is set.
func (m MediaItem) DisplayTitle() string {
	if m.Title != "" {
		return m.Title
	}
	return m.Name
}

// BookItem is one volume entry from the book catalog.
type BookItem struct {
	ID            string   `json:"id"`
	Title         string   `json:"title"`
	Authors       []string `json:"authors,omitempty"`
	Publisher     string   `json:"publisher,omitempty"`
	PublishedDate string   `json:"published_date,omitempty"`
	Description   string   `json:"description,omitempty"`
	ISBN          string   `json:"isbn,omitempty"`
	PageCount     int      `json:"page_count,omitempty"`
	Categories    []string `json:"categories,omitempty"`
	Thumbnail     string   `json:"thumbnail,omitempty"`
	Language      string   `json:"language,omitempty"`
	PreviewLink   string   `json:"preview_link,omitempty"`
}

// GameItem is one game entry from the game catalog.
type GameItem struct {
	ID               int      `json:"id"`
	Name             string   `json:"name"`
	Summary          string   `json:"summary,omitempty"`
	Rating           float64  `json:"rating,omitempty"`
	AggregatedRating float64  `json:"aggregated_rating,omitempty"`
	Released         string   `json:"released,omitempty"`
	CoverURL         string   `json:"cover_url,omitempty"`
	Platforms        []string `json:"platforms,omitempty"`
	Genres           []string `json:"genres,omitempty"`
	Developers       []string `json:"developers,omitempty"`
	Publishers       []string `json:"publishers,omitempty"`
}

// WebResult is one hit returned by the web search collaborator.
type WebResult struct {
	Title         string  `json:"title"`
	URL           string  `json:"url"`
	Content       string  `json:"content"`
	Score         float64 `json:"score"`
	PublishedDate string  `json:"published_date,omitempty"`
}

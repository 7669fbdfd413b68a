// Package tmdb implements the movie/TV catalog searcher against The Movie
// Database API.
package tmdb

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"go.uber.org/zap"

	"github.com/serapeum-ai/serapeum/internal/domain"
	"github.com/serapeum-ai/serapeum/internal/metrics"
)

const defaultBaseURL = "https://api.themoviedb.org/3"

// Client queries the TMDB /search/multi endpoint.
type Client struct {
	apiKey  string
	baseURL string
	http    *http.Client
	logger  *zap.Logger
}

// Config holds TMDB client settings.
type Config struct {
	APIKey  string
	BaseURL string
	Timeout time.Duration
	Logger  *zap.Logger
}

// New creates a TMDB client.
func New(cfg *Config) *Client {
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Client{
		apiKey:  cfg.APIKey,
		baseURL: baseURL,
		http:    &http.Client{Timeout: timeout},
		logger:  logger,
	}
}

type searchResponse struct {
	Results []struct {
		ID           int     `json:"id"`
		Title        string  `json:"title"`
		Name         string  `json:"name"`
		MediaType    string  `json:"media_type"`
		ReleaseDate  string  `json:"release_date"`
		FirstAirDate string  `json:"first_air_date"`
		PosterPath   string  `json:"poster_path"`
		Overview     string  `json:"overview"`
		VoteAverage  float64 `json:"vote_average"`
		Popularity   float64 `json:"popularity"`
	} `json:"results"`
}

// SearchMedia searches movies and TV shows. Person results are filtered out.
func (c *Client) SearchMedia(ctx context.Context, query, language string) ([]domain.MediaItem, error) {
	params := url.Values{}
	params.Set("api_key", c.apiKey)
	params.Set("query", query)
	if language != "" {
		params.Set("language", language)
	}

	req, err := http.NewRequestWithContext(
		ctx, http.MethodGet, c.baseURL+"/search/multi?"+params.Encode(), nil,
	)
	if err != nil {
		return nil, fmt.Errorf("build tmdb request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		metrics.CatalogRequestsTotal.WithLabelValues(string(domain.SourceMedia), "error").Inc()
		return nil, fmt.Errorf("tmdb unreachable: %w", domain.ErrUnavailable)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		metrics.CatalogRequestsTotal.WithLabelValues(string(domain.SourceMedia), "error").Inc()
		switch resp.StatusCode {
		case http.StatusUnauthorized:
			return nil, fmt.Errorf("tmdb authentication failed, check the API key: %w", domain.ErrAuthFailed)
		case http.StatusTooManyRequests:
			return nil, fmt.Errorf("tmdb rate limit exceeded: %w", domain.ErrRateLimited)
		default:
			return nil, fmt.Errorf("tmdb error %d: %s", resp.StatusCode, resp.Status)
		}
	}

	var body searchResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		metrics.CatalogRequestsTotal.WithLabelValues(string(domain.SourceMedia), "error").Inc()
		return nil, fmt.Errorf("decode tmdb response: %w", err)
	}

	metrics.CatalogRequestsTotal.WithLabelValues(string(domain.SourceMedia), "success").Inc()
	metrics.CatalogRequestDuration.WithLabelValues(string(domain.SourceMedia)).Observe(time.Since(start).Seconds())

	items := make([]domain.MediaItem, 0, len(body.Results))
	for _, r := range body.Results {
		if r.MediaType != "movie" && r.MediaType != "tv" {
			continue
		}
		release := r.ReleaseDate
		if release == "" {
			release = r.FirstAirDate
		}
		items = append(items, domain.MediaItem{
			ID:          r.ID,
			Title:       r.Title,
			Name:        r.Name,
			MediaType:   r.MediaType,
			ReleaseDate: release,
			PosterPath:  r.PosterPath,
			Overview:    r.Overview,
			VoteAverage: r.VoteAverage,
			Popularity:  r.Popularity,
		})
	}

	return items, nil
}

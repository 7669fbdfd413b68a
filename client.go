// Package serapeum provides a typed HTTP client for the serapeum
// orchestration API.
package serapeum

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

const defaultTimeout = 90 * time.Second

// ResponseKind tags the variant of a Response.
type ResponseKind string

// Response variants. Exactly one is produced per request.
const (
	KindRefusal       ResponseKind = "refusal"
	KindSearchResults ResponseKind = "search_results"
	KindDiscovery     ResponseKind = "discovery"
	KindError         ResponseKind = "error"
)

// Response is the tagged union returned by the orchestration endpoint.
type Response struct {
	Kind    ResponseKind `json:"kind"`
	Message string       `json:"message,omitempty"`
	Data    *Results     `json:"data,omitempty"`
	Error   string       `json:"error,omitempty"`
	Details string       `json:"details,omitempty"`
}

// Results carries the aggregated catalog output.
type Results struct {
	Featured *FeaturedItem `json:"featured,omitempty"`
	Media    []MediaItem   `json:"media"`
	Books    []BookItem    `json:"books"`
	Games    []GameItem    `json:"games"`
	Errors   []SearchError `json:"errors,omitempty"`
}

// SearchError records one failed catalog source.
type SearchError struct {
	Source  string `json:"source"`
	Message string `json:"message"`
}

// FeaturedItem promotes one best match into a distinguished slot.
type FeaturedItem struct {
	Type  string     `json:"type"` // "media", "book" or "game"
	Media *MediaItem `json:"media,omitempty"`
	Book  *BookItem  `json:"book,omitempty"`
	Game  *GameItem  `json:"game,omitempty"`
}

// MediaItem is one movie or TV series entry.
type MediaItem struct {
	ID          int     `json:"id"`
	Title       string  `json:"title,omitempty"`
	Name        string  `json:"name,omitempty"`
	MediaType   string  `json:"media_type"`
	ReleaseDate string  `json:"release_date,omitempty"`
	PosterPath  string  `json:"poster_path,omitempty"`
	Overview    string  `json:"overview,omitempty"`
	VoteAverage float64 `json:"vote_average,omitempty"`
	Popularity  float64 `json:"popularity,omitempty"`
}

// BookItem is one volume entry.
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

// GameItem is one game entry.
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

// Client is the serapeum SDK entry point.
type Client struct {
	baseURL string
	apiKey  string
	http    *http.Client
}

// Option configures the Client.
type Option func(*Client)

// WithAPIKey sets the Bearer token sent with each request.
func WithAPIKey(key string) Option {
	return func(c *Client) { c.apiKey = key }
}

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) { c.http = h }
}

// WithTimeout sets the request timeout on the default HTTP client.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) { c.http.Timeout = d }
}

// New creates a serapeum Client for the given server URL.
func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: defaultTimeout},
	}
	for _, o := range opts {
		o(c)
	}
	return c
}

type orchestrateRequest struct {
	Query    string `json:"query"`
	Language string `json:"language,omitempty"`
}

type apiError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// Orchestrate resolves a free-form query into one tagged response variant.
// An error is returned only for transport or HTTP-level failures; routing
// and upstream failures arrive as the "error" variant of the Response.
func (c *Client) Orchestrate(ctx context.Context, query, language string) (*Response, error) {
	payload, err := json.Marshal(orchestrateRequest{Query: query, Language: language})
	if err != nil {
		return nil, fmt.Errorf("serapeum: encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(
		ctx, http.MethodPost, c.baseURL+"/api/orchestrate", bytes.NewReader(payload),
	)
	if err != nil {
		return nil, fmt.Errorf("serapeum: build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("serapeum: request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		var apiErr apiError
		if decodeErr := json.NewDecoder(resp.Body).Decode(&apiErr); decodeErr == nil && apiErr.Message != "" {
			return nil, fmt.Errorf("serapeum: %s (%s)", apiErr.Message, apiErr.Code)
		}
		return nil, fmt.Errorf("serapeum: unexpected status %d", resp.StatusCode)
	}

	var out Response
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("serapeum: decode response: %w", err)
	}

	return &out, nil
}

// Health reports whether the server answers its health endpoint.
func (c *Client) Health(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/health", http.NoBody)
	if err != nil {
		return fmt.Errorf("serapeum: build request: %w", err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("serapeum: health request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("serapeum: unhealthy, status %d", resp.StatusCode)
	}
	return nil
}

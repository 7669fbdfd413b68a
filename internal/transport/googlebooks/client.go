// Package googlebooks implements the book catalog searcher against the
// Google Books volumes API.
package googlebooks

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"go.uber.org/zap"

	"github.com/serapeum-ai/serapeum/internal/domain"
	"github.com/serapeum-ai/serapeum/internal/metrics"
)

const (
	defaultBaseURL = "https://www.googleapis.com/books/v1"
	maxResults     = 10
)

// Client queries the Google Books volumes endpoint.
type Client struct {
	apiKey  string
	baseURL string
	http    *http.Client
	logger  *zap.Logger
}

// Config holds Google Books client settings.
type Config struct {
	APIKey  string
	BaseURL string
	Timeout time.Duration
	Logger  *zap.Logger
}

// New creates a Google Books client.
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

type volumesResponse struct {
	Items []struct {
		ID         string `json:"id"`
		VolumeInfo struct {
			Title               string   `json:"title"`
			Authors             []string `json:"authors"`
			Publisher           string   `json:"publisher"`
			PublishedDate       string   `json:"publishedDate"`
			Description         string   `json:"description"`
			PageCount           int      `json:"pageCount"`
			Categories          []string `json:"categories"`
			Language            string   `json:"language"`
			PreviewLink         string   `json:"previewLink"`
			IndustryIdentifiers []struct {
				Type       string `json:"type"`
				Identifier string `json:"identifier"`
			} `json:"industryIdentifiers"`
			ImageLinks struct {
				Thumbnail      string `json:"thumbnail"`
				SmallThumbnail string `json:"smallThumbnail"`
			} `json:"imageLinks"`
		} `json:"volumeInfo"`
	} `json:"items"`
}

// SearchBooks searches book volumes. The language parameter is part of the
// searcher contract but Google Books relevance works best unrestricted, so
// it is not forwarded.
func (c *Client) SearchBooks(ctx context.Context, query, _ string) ([]domain.BookItem, error) {
	params := url.Values{}
	params.Set("q", query)
	params.Set("key", c.apiKey)
	params.Set("maxResults", strconv.Itoa(maxResults))
	params.Set("printType", "books") // exclude magazines

	req, err := http.NewRequestWithContext(
		ctx, http.MethodGet, c.baseURL+"/volumes?"+params.Encode(), nil,
	)
	if err != nil {
		return nil, fmt.Errorf("build books request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		metrics.CatalogRequestsTotal.WithLabelValues(string(domain.SourceBooks), "error").Inc()
		return nil, fmt.Errorf("google books unreachable: %w", domain.ErrUnavailable)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		metrics.CatalogRequestsTotal.WithLabelValues(string(domain.SourceBooks), "error").Inc()
		switch resp.StatusCode {
		case http.StatusUnauthorized, http.StatusForbidden:
			return nil, fmt.Errorf("google books authentication failed, check the API key: %w", domain.ErrAuthFailed)
		case http.StatusTooManyRequests:
			return nil, fmt.Errorf("google books rate limit exceeded: %w", domain.ErrRateLimited)
		default:
			return nil, fmt.Errorf("google books error %d: %s", resp.StatusCode, resp.Status)
		}
	}

	var body volumesResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		metrics.CatalogRequestsTotal.WithLabelValues(string(domain.SourceBooks), "error").Inc()
		return nil, fmt.Errorf("decode google books response: %w", err)
	}

	metrics.CatalogRequestsTotal.WithLabelValues(string(domain.SourceBooks), "success").Inc()
	metrics.CatalogRequestDuration.WithLabelValues(string(domain.SourceBooks)).Observe(time.Since(start).Seconds())

	items := make([]domain.BookItem, 0, len(body.Items))
	for _, it := range body.Items {
		info := it.VolumeInfo

		var isbn10, isbn13 string
		for _, id := range info.IndustryIdentifiers {
			switch id.Type {
			case "ISBN_13":
				isbn13 = id.Identifier
			case "ISBN_10":
				isbn10 = id.Identifier
			}
		}
		// ISBN-13 preferred over ISBN-10
		isbn := isbn13
		if isbn == "" {
			isbn = isbn10
		}

		items = append(items, domain.BookItem{
			ID:            it.ID,
			Title:         info.Title,
			Authors:       info.Authors,
			Publisher:     info.Publisher,
			PublishedDate: info.PublishedDate,
			Description:   info.Description,
			ISBN:          isbn,
			PageCount:     info.PageCount,
			Categories:    info.Categories,
			Thumbnail:     info.ImageLinks.Thumbnail,
			Language:      info.Language,
			PreviewLink:   info.PreviewLink,
		})
	}

	return items, nil
}

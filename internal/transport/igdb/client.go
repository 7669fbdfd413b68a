// Package igdb implements the game catalog searcher against the IGDB API,
// which speaks the Apicalypse query language and authenticates through
// Twitch OAuth client credentials.
package igdb

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/serapeum-ai/serapeum/internal/domain"
	"github.com/serapeum-ai/serapeum/internal/metrics"
)

const (
	defaultBaseURL = "https://api.igdb.com/v4"
	defaultAuthURL = "https://id.twitch.tv/oauth2/token"
	coverURLFormat = "https://images.igdb.com/igdb/image/upload/t_cover_big/%s.jpg"
)

// Client queries the IGDB games endpoint.
type Client struct {
	clientID string
	baseURL  string
	tokens   *tokenSource
	http     *http.Client
	logger   *zap.Logger
}

// Config holds IGDB client settings.
type Config struct {
	ClientID     string
	ClientSecret string
	BaseURL      string
	AuthURL      string
	Timeout      time.Duration
	Logger       *zap.Logger
}

// New creates an IGDB client.
func New(cfg *Config) *Client {
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	authURL := cfg.AuthURL
	if authURL == "" {
		authURL = defaultAuthURL
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	httpClient := &http.Client{Timeout: timeout}

	return &Client{
		clientID: cfg.ClientID,
		baseURL:  baseURL,
		tokens: &tokenSource{
			clientID:     cfg.ClientID,
			clientSecret: cfg.ClientSecret,
			authURL:      authURL,
			http:         httpClient,
		},
		http:   httpClient,
		logger: logger,
	}
}

type igdbGame struct {
	ID                 int     `json:"id"`
	Name               string  `json:"name"`
	Summary            string  `json:"summary"`
	Rating             float64 `json:"rating"`
	AggregatedRating   float64 `json:"aggregated_rating"`
	FirstReleaseDate   int64   `json:"first_release_date"`
	Cover              struct {
		ImageID string `json:"image_id"`
	} `json:"cover"`
	Platforms []struct {
		Name string `json:"name"`
	} `json:"platforms"`
	Genres []struct {
		Name string `json:"name"`
	} `json:"genres"`
	InvolvedCompanies []struct {
		Company struct {
			Name string `json:"name"`
		} `json:"company"`
		Developer bool `json:"developer"`
		Publisher bool `json:"publisher"`
	} `json:"involved_companies"`
}

// SearchGames searches the game catalog. The language parameter is part of
// the searcher contract; IGDB has no language filter.
func (c *Client) SearchGames(ctx context.Context, query, _ string) ([]domain.GameItem, error) {
	token, err := c.tokens.Token(ctx)
	if err != nil {
		metrics.CatalogRequestsTotal.WithLabelValues(string(domain.SourceGames), "error").Inc()
		return nil, fmt.Errorf("igdb token: %w", err)
	}

	// Escape quotes so user input cannot break out of the search clause.
	sanitized := strings.ReplaceAll(query, `"`, `\"`)
	apicalypse := fmt.Sprintf(`search "%s"; fields name,game_type,summary,rating,aggregated_rating,first_release_date,cover.image_id,platforms.name,genres.name,involved_companies.company.name,involved_companies.developer,involved_companies.publisher; where game_type = (0, 1, 2, 8, 9, 10); limit 10;`, sanitized)

	req, err := http.NewRequestWithContext(
		ctx, http.MethodPost, c.baseURL+"/games", strings.NewReader(apicalypse),
	)
	if err != nil {
		return nil, fmt.Errorf("build igdb request: %w", err)
	}
	req.Header.Set("Client-ID", c.clientID)
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Content-Type", "text/plain")

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		metrics.CatalogRequestsTotal.WithLabelValues(string(domain.SourceGames), "error").Inc()
		return nil, fmt.Errorf("igdb unreachable: %w", domain.ErrUnavailable)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		metrics.CatalogRequestsTotal.WithLabelValues(string(domain.SourceGames), "error").Inc()
		switch resp.StatusCode {
		case http.StatusUnauthorized:
			// Token may have been revoked before its nominal expiry.
			c.tokens.Invalidate()
			return nil, fmt.Errorf("igdb authentication failed, token may have expired: %w", domain.ErrAuthFailed)
		case http.StatusTooManyRequests:
			return nil, fmt.Errorf("igdb rate limit exceeded: %w", domain.ErrRateLimited)
		default:
			detail, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
			return nil, fmt.Errorf("igdb error %d: %s", resp.StatusCode, string(detail))
		}
	}

	var games []igdbGame
	if err := json.NewDecoder(resp.Body).Decode(&games); err != nil {
		metrics.CatalogRequestsTotal.WithLabelValues(string(domain.SourceGames), "error").Inc()
		return nil, fmt.Errorf("decode igdb response: %w", err)
	}

	metrics.CatalogRequestsTotal.WithLabelValues(string(domain.SourceGames), "success").Inc()
	metrics.CatalogRequestDuration.WithLabelValues(string(domain.SourceGames)).Observe(time.Since(start).Seconds())

	items := make([]domain.GameItem, 0, len(games))
	for _, g := range games {
		items = append(items, transformGame(g))
	}

	return items, nil
}

func transformGame(g igdbGame) domain.GameItem {
	item := domain.GameItem{
		ID:               g.ID,
		Name:             g.Name,
		Summary:          g.Summary,
		Rating:           g.Rating,
		AggregatedRating: g.AggregatedRating,
	}

	if g.FirstReleaseDate > 0 {
		item.Released = time.Unix(g.FirstReleaseDate, 0).UTC().Format("2006-01-02")
	}
	if g.Cover.ImageID != "" {
		item.CoverURL = fmt.Sprintf(coverURLFormat, g.Cover.ImageID)
	}
	for _, p := range g.Platforms {
		item.Platforms = append(item.Platforms, p.Name)
	}
	for _, gn := range g.Genres {
		item.Genres = append(item.Genres, gn.Name)
	}
	for _, ic := range g.InvolvedCompanies {
		if ic.Developer {
			item.Developers = append(item.Developers, ic.Company.Name)
		}
		if ic.Publisher {
			item.Publishers = append(item.Publishers, ic.Company.Name)
		}
	}

	return item
}

package tmdb

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/serapeum-ai/serapeum/internal/domain"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return New(&Config{APIKey: "test-key", BaseURL: srv.URL})
}

func TestSearchMedia_MapsAndFiltersResults(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/search/multi", r.URL.Path)
		assert.Equal(t, "test-key", r.URL.Query().Get("api_key"))
		assert.Equal(t, "inception", r.URL.Query().Get("query"))
		assert.Equal(t, "en", r.URL.Query().Get("language"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"results":[
			{"id":27205,"title":"Inception","media_type":"movie","release_date":"2010-07-16","vote_average":8.4},
			{"id":525,"name":"Christopher Nolan","media_type":"person"},
			{"id":93405,"name":"Squid Game","media_type":"tv","first_air_date":"2021-09-17"}
		]}`))
	})

	items, err := c.SearchMedia(context.Background(), "inception", "en")
	require.NoError(t, err)
	require.Len(t, items, 2, "person results must be filtered out")

	assert.Equal(t, 27205, items[0].ID)
	assert.Equal(t, "movie", items[0].MediaType)
	assert.Equal(t, "2010-07-16", items[0].ReleaseDate)

	assert.Equal(t, "tv", items[1].MediaType)
	assert.Equal(t, "2021-09-17", items[1].ReleaseDate, "tv release date comes from first_air_date")
}

func TestSearchMedia_EmptyResults(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"results":[]}`))
	})

	items, err := c.SearchMedia(context.Background(), "zzzz", "en")
	require.NoError(t, err)
	assert.NotNil(t, items)
	assert.Empty(t, items)
}

func TestSearchMedia_ErrorStatuses(t *testing.T) {
	tests := []struct {
		status   int
		sentinel error
	}{
		{http.StatusUnauthorized, domain.ErrAuthFailed},
		{http.StatusTooManyRequests, domain.ErrRateLimited},
	}

	for _, tt := range tests {
		c := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(tt.status)
		})

		_, err := c.SearchMedia(context.Background(), "q", "en")
		require.Error(t, err)
		assert.True(t, errors.Is(err, tt.sentinel), "status %d should map to %v, got %v", tt.status, tt.sentinel, err)
	}
}

func TestSearchMedia_ServerError(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})

	_, err := c.SearchMedia(context.Background(), "q", "en")
	assert.Error(t, err)
}

package igdb

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/serapeum-ai/serapeum/internal/domain"
)

const tokenExpirySlack = 60 * time.Second

// tokenSource caches the Twitch client-credentials token IGDB requires.
// This is the only cross-request state in the service besides caches of
// static data.
type tokenSource struct {
	clientID     string
	clientSecret string
	authURL      string
	http         *http.Client

	mu     sync.Mutex
	token  string
	expiry time.Time
}

type tokenResponse struct {
	AccessToken string `json:"access_token"`
	ExpiresIn   int    `json:"expires_in"`
}

// Token returns a valid access token, fetching a fresh one when the cached
// token is missing or about to expire.
func (t *tokenSource) Token(ctx context.Context) (string, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.token != "" && time.Now().Before(t.expiry) {
		return t.token, nil
	}

	form := url.Values{}
	form.Set("client_id", t.clientID)
	form.Set("client_secret", t.clientSecret)
	form.Set("grant_type", "client_credentials")

	req, err := http.NewRequestWithContext(
		ctx, http.MethodPost, t.authURL, strings.NewReader(form.Encode()),
	)
	if err != nil {
		return "", fmt.Errorf("build token request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := t.http.Do(req)
	if err != nil {
		return "", fmt.Errorf("twitch auth unreachable: %w", domain.ErrUnavailable)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("twitch auth error %d: %w", resp.StatusCode, domain.ErrAuthFailed)
	}

	var body tokenResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return "", fmt.Errorf("decode token response: %w", err)
	}
	if body.AccessToken == "" {
		return "", fmt.Errorf("twitch auth returned empty token: %w", domain.ErrAuthFailed)
	}

	t.token = body.AccessToken
	t.expiry = time.Now().Add(time.Duration(body.ExpiresIn)*time.Second - tokenExpirySlack)

	return t.token, nil
}

// Invalidate drops the cached token so the next call fetches a fresh one.
// Called after IGDB rejects a token that has not nominally expired.
func (t *tokenSource) Invalidate() {
	t.mu.Lock()
	t.token = ""
	t.expiry = time.Time{}
	t.mu.Unlock()
}

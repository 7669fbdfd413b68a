package serapeum

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestOrchestrate_DecodesVariants(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/orchestrate" {
			t.Errorf("path: got %s", r.URL.Path)
		}
		if got := r.Header.Get("Authorization"); got != "Bearer secret" {
			t.Errorf("authorization: got %q", got)
		}

		var req orchestrateRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Fatalf("decode request: %v", err)
		}
		if req.Query != "movies like inception" {
			t.Errorf("query: got %q", req.Query)
		}

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"kind": "discovery",
			"message": "Here are some mind-bending films.",
			"data": {
				"media": [{"id": 27205, "title": "Inception", "media_type": "movie"}],
				"books": [],
				"games": [],
				"errors": [{"source": "games", "message": "igdb rate limit exceeded"}]
			}
		}`))
	}))
	defer srv.Close()

	client := New(srv.URL, WithAPIKey("secret"))

	resp, err := client.Orchestrate(context.Background(), "movies like inception", "en")
	if err != nil {
		t.Fatalf("orchestrate: %v", err)
	}

	if resp.Kind != KindDiscovery {
		t.Errorf("kind: got %s, want %s", resp.Kind, KindDiscovery)
	}
	if resp.Data == nil {
		t.Fatal("data should be present for discovery")
	}
	if len(resp.Data.Media) != 1 || resp.Data.Media[0].Title != "Inception" {
		t.Errorf("media: got %+v", resp.Data.Media)
	}
	if len(resp.Data.Errors) != 1 || resp.Data.Errors[0].Source != "games" {
		t.Errorf("errors: got %+v", resp.Data.Errors)
	}
}

func TestOrchestrate_ErrorVariantIsNotAGoError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"kind":"error","error":"Router failure","details":"model unreachable"}`))
	}))
	defer srv.Close()

	resp, err := New(srv.URL).Orchestrate(context.Background(), "inception", "en")
	if err != nil {
		t.Fatalf("orchestrate: %v", err)
	}
	if resp.Kind != KindError {
		t.Errorf("kind: got %s, want %s", resp.Kind, KindError)
	}
	if resp.Error != "Router failure" {
		t.Errorf("error label: got %q", resp.Error)
	}
}

func TestOrchestrate_HTTPErrorSurfacesAPIMessage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"code":"bad_request","message":"Query is required"}`))
	}))
	defer srv.Close()

	_, err := New(srv.URL).Orchestrate(context.Background(), "", "en")
	if err == nil {
		t.Fatal("expected error for HTTP 400")
	}
	if got := err.Error(); got != "serapeum: Query is required (bad_request)" {
		t.Errorf("error message: got %q", got)
	}
}

func TestHealth(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/health" {
			t.Errorf("path: got %s", r.URL.Path)
		}
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	}))
	defer srv.Close()

	if err := New(srv.URL).Health(context.Background()); err != nil {
		t.Errorf("health: %v", err)
	}
}

func TestHealth_Unhealthy(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	if err := New(srv.URL).Health(context.Background()); err == nil {
		t.Error("expected error for unhealthy server")
	}
}

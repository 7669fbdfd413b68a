package domain

import "errors"

var (
	// ErrRouterFailure signals that the router produced no usable decision.
	ErrRouterFailure = errors.New("router produced no decision")
	// ErrExtractionFailed signals that title extraction rejected.
	ErrExtractionFailed = errors.New("title extraction failed")
	// ErrExtractionEmpty signals that title extraction returned no output.
	ErrExtractionEmpty = errors.New("title extraction returned no output")
	// ErrProviderError signals an LLM provider failure.
	ErrProviderError = errors.New("llm provider error")
	// ErrAuthFailed signals rejected credentials at an upstream API.
	ErrAuthFailed = errors.New("authentication failed")
	// ErrRateLimited signals a rate limit hit at an upstream API.
	ErrRateLimited = errors.New("rate limited")
	// ErrUnavailable signals an unreachable upstream API.
	ErrUnavailable = errors.New("upstream unavailable")
)

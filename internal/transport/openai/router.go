package openai

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/serapeum-ai/serapeum/internal/domain"
)

// routeWire is the router's raw JSON output before validation.
type routeWire struct {
	Intent         string `json:"intent"`
	Category       string `json:"category"`
	ExtractedQuery string `json:"extractedQuery"`
	RefusalReason  string `json:"refusalReason"`
}

// Route classifies a query. Validation happens here at the collaborator
// boundary; downstream stages receive an already-typed decision.
func (c *Client) Route(ctx context.Context, query, language string) (*domain.RouteDecision, error) {
	content, err := c.complete(ctx, "router",
		routerSystemPrompt,
		fmt.Sprintf(routerUserPrompt, query, language),
		true,
	)
	if err != nil {
		return nil, fmt.Errorf("route query: %w", err)
	}

	return parseRouteDecision(content)
}

func parseRouteDecision(raw string) (*domain.RouteDecision, error) {
	var w routeWire
	if err := json.Unmarshal([]byte(raw), &w); err != nil {
		return nil, fmt.Errorf("%w: parse router output: %w", domain.ErrRouterFailure, err)
	}

	intent := domain.Intent(w.Intent)
	switch intent {
	case domain.IntentSpecificEntity, domain.IntentGeneralDiscovery, domain.IntentOutOfScope:
	default:
		return nil, fmt.Errorf("%w: unknown intent %q", domain.ErrRouterFailure, w.Intent)
	}

	return &domain.RouteDecision{
		Intent:         intent,
		Category:       domain.ParseCategory(w.Category),
		ExtractedQuery: w.ExtractedQuery,
		RefusalReason:  w.RefusalReason,
	}, nil
}

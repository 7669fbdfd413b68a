package domain

// ResponseKind tags the variant of an AgentResponse.
type ResponseKind string

// Response variants. Exactly one is produced per request.
const (
	KindRefusal       ResponseKind = "refusal"
	KindSearchResults ResponseKind = "search_results"
	KindDiscovery     ResponseKind = "discovery"
	KindError         ResponseKind = "error"
)

// AgentResponse is the tagged union returned to callers. The Kind tag
// determines which fields are present: refusal carries Message only,
// search_results and discovery carry Message and Data, error carries Error
// and optionally Details.
type AgentResponse struct {
	Kind    ResponseKind      `json:"kind"`
	Message string            `json:"message,omitempty"`
	Data    *AggregatedResult `json:"data,omitempty"`
	Error   string            `json:"error,omitempty"`
	Details string            `json:"details,omitempty"`
}

// NewRefusal builds the refusal variant.
func NewRefusal(message string) AgentResponse {
	return AgentResponse{Kind: KindRefusal, Message: message}
}

// NewSearchResults builds the search_results variant.
func NewSearchResults(message string, data AggregatedResult) AgentResponse {
	data.Normalize()
	return AgentResponse{Kind: KindSearchResults, Message: message, Data: &data}
}

// NewDiscovery builds the discovery variant.
func NewDiscovery(message string, data AggregatedResult) AgentResponse {
	data.Normalize()
	return AgentResponse{Kind: KindDiscovery, Message: message, Data: &data}
}

// NewError builds the error variant.
func NewError(label, details string) AgentResponse {
	return AgentResponse{Kind: KindError, Error: label, Details: details}
}

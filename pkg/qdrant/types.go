package qdrant

// CreateCollectionRequest defines the schema for creating a collection.
type CreateCollectionRequest struct {
	Name    string       `json:"-"` // Collection name (in URL)
	Vectors VectorConfig `json:"vectors"`
}

// VectorConfig defines vector dimension and distance metric.
type VectorConfig struct {
	Size     int    `json:"size"`
	Distance string `json:"distance"` // "Cosine", "Euclid", "Dot"
}

// Point represents a vector with payload (metadata).
// Qdrant requires ID to be a UUID string or uint64.
type Point struct {
	ID      interface{}            `json:"id"`
	Vector  []float32              `json:"vector"`
	Payload map[string]interface{} `json:"payload"`
}

// UpsertPointsRequest is the request to insert/update points.
type UpsertPointsRequest struct {
	Points []Point `json:"points"`
}

// Filter is the subset of Qdrant's filter language used here: all Must conditions hold.
type Filter struct {
	Must []Condition `json:"must,omitempty"`
}

// Condition matches a payload key against a keyword or full-text value.
type Condition struct {
	Key   string `json:"key"`
	Match Match  `json:"match"`
}

// Match sets exactly one of Value (exact keyword) or Text (full-text match).
type Match struct {
	Value interface{} `json:"value,omitempty"`
	Text  string      `json:"text,omitempty"`
}

// SearchRequest is the request for semantic search.
type SearchRequest struct {
	Vector      []float32 `json:"vector"`
	Limit       int       `json:"limit"`
	WithPayload bool      `json:"with_payload"`
	Filter      *Filter   `json:"filter,omitempty"`
}

// SearchResponse contains search results.
type SearchResponse struct {
	Result []ScoredPoint `json:"result"`
}

// ScoredPoint is a search result with similarity score.
type ScoredPoint struct {
	ID      string                 `json:"id"`
	Score   float64                `json:"score"`
	Payload map[string]interface{} `json:"payload"`
}

// CountRequest counts points, optionally filtered.
type CountRequest struct {
	Exact  bool    `json:"exact"`
	Filter *Filter `json:"filter,omitempty"`
}

// CountResponse is the body of /points/count.
type CountResponse struct {
	Result struct {
		Count int `json:"count"`
	} `json:"result"`
}

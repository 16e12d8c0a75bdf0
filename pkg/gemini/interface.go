package gemini

import (
	"context"
	"errors"
	"strings"
)

var (
	// ErrRateLimited is returned for HTTP 429.
	ErrRateLimited = errors.New("gemini: rate limited")
	// ErrPromptBlocked is returned when safety filters reject the prompt and no candidate is produced.
	ErrPromptBlocked = errors.New("gemini: prompt blocked")
)

// IGemini is a Gemini generateContent client. Implementations are safe for concurrent use.
type IGemini interface {
	GenerateContent(ctx context.Context, req GenerateRequest) (*GenerateResponse, error)
	Model() string
}

// New validates cfg and returns a client.
func New(cfg Config) (IGemini, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &geminiImpl{
		apiKey:     cfg.APIKey,
		model:      cfg.Model,
		apiURL:     strings.TrimRight(cfg.APIURL, "/"),
		httpClient: cfg.HTTPClient,
	}, nil
}

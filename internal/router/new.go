package router

import (
	"context"

	"github.com/samber/lo"

	"internship-assistant/internal/model"
	"internship-assistant/pkg/llmprovider"
	"internship-assistant/pkg/log"
)

// Router maps a question to one of the closed intents.
type Router interface {
	Classify(ctx context.Context, text string, history []model.Turn) (model.Intent, error)
}

// SemanticRouter classifies user intent using LLM
type SemanticRouter struct {
	llm  llmprovider.Completer
	opts llmprovider.CompletionOptions
	l    log.Logger
}

// Ensure SemanticRouter implements Router interface
var _ Router = (*SemanticRouter)(nil)

// New creates a new SemanticRouter. A nil Temperature or zero MaxTokens takes the router default.
func New(llm llmprovider.Completer, opts llmprovider.CompletionOptions, l log.Logger) *SemanticRouter {
	if opts.Temperature == nil {
		opts.Temperature = lo.ToPtr(RouterDefaultTemperature)
	}
	if opts.MaxTokens == 0 {
		opts.MaxTokens = RouterDefaultMaxTokens
	}
	return &SemanticRouter{
		llm:  llm,
		opts: opts,
		l:    l,
	}
}

package orchestrator

import (
	"github.com/samber/lo"

	"internship-assistant/internal/agent"
	"internship-assistant/internal/chat"
	"internship-assistant/pkg/llmprovider"
	pkgLog "internship-assistant/pkg/log"
)

// Orchestrator answers questions with a tool-calling ReAct loop.
type Orchestrator struct {
	llm      llmprovider.Generator
	registry *agent.ToolRegistry
	opts     llmprovider.CompletionOptions
	l        pkgLog.Logger
}

var _ chat.UseCase = (*Orchestrator)(nil)

// New creates an Orchestrator. opts.Timeout, when set, bounds the whole loop.
// A nil Temperature takes DefaultTemperature.
func New(llm llmprovider.Generator, registry *agent.ToolRegistry, opts llmprovider.CompletionOptions, l pkgLog.Logger) *Orchestrator {
	if opts.Temperature == nil {
		opts.Temperature = lo.ToPtr(DefaultTemperature)
	}
	return &Orchestrator{
		llm:      llm,
		registry: registry,
		opts:     opts,
		l:        l,
	}
}

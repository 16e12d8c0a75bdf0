package composer

import (
	"context"

	"github.com/samber/lo"

	"internship-assistant/internal/formatter"
	"internship-assistant/internal/model"
	"internship-assistant/pkg/llmprovider"
	"internship-assistant/pkg/log"
)

// Input is what the grounded path needs to phrase one answer.
type Input struct {
	Sheet       formatter.FactSheet
	Query       string
	Role        model.Role
	RoleContext string
}

// Composer turns formatter output into the final natural-language answer.
type Composer interface {
	Grounded(ctx context.Context, in Input) (string, error)
	Open(ctx context.Context, instruction, query string) (string, error)
}

type implComposer struct {
	llm  llmprovider.Completer
	opts llmprovider.CompletionOptions
	l    log.Logger
}

var _ Composer = (*implComposer)(nil)

// New creates a Composer. A nil Temperature or zero MaxTokens takes the composer default.
func New(llm llmprovider.Completer, opts llmprovider.CompletionOptions, l log.Logger) Composer {
	if opts.Temperature == nil {
		opts.Temperature = lo.ToPtr(DefaultTemperature)
	}
	if opts.MaxTokens == 0 {
		opts.MaxTokens = DefaultMaxTokens
	}
	return &implComposer{
		llm:  llm,
		opts: opts,
		l:    l,
	}
}

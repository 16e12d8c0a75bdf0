package formatter

import (
	"context"
	"time"

	"internship-assistant/internal/model"
	"internship-assistant/internal/talent/repository"
	"internship-assistant/pkg/log"
)

// Formatter turns an intent and question into verified facts or an open instruction.
type Formatter interface {
	Format(ctx context.Context, intent model.Intent, text string, role model.Role) (Outcome, error)
}

// Options bounds the data stage.
type Options struct {
	// FetchTimeout bounds every capability call made for one question.
	// Zero or negative means DefaultFetchTimeout.
	FetchTimeout time.Duration
}

type implFormatter struct {
	data   repository.DataAccess
	search repository.SemanticSearch
	opt    Options
	l      log.Logger
}

var _ Formatter = (*implFormatter)(nil)

// New creates a Formatter over the relational store and the semantic index.
func New(data repository.DataAccess, search repository.SemanticSearch, opt Options, l log.Logger) Formatter {
	if opt.FetchTimeout <= 0 {
		opt.FetchTimeout = DefaultFetchTimeout
	}
	return &implFormatter{
		data:   data,
		search: search,
		opt:    opt,
		l:      l,
	}
}

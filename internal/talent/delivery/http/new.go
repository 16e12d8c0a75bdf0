package http

import (
	"internship-assistant/internal/talent"
	"internship-assistant/pkg/log"
)

type handler struct {
	l  log.Logger
	uc talent.UseCase
}

// New creates a new HTTP handler for platform statistics.
func New(l log.Logger, uc talent.UseCase) *handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}

package http

import (
	"time"

	"github.com/go-playground/validator/v10"

	"internship-assistant/internal/chat"
	"internship-assistant/internal/router"
	"internship-assistant/pkg/log"
)

type handler struct {
	l        log.Logger
	uc       chat.UseCase
	router   router.Router
	validate *validator.Validate
	now      func() time.Time
}

// New creates a new HTTP handler for the chat domain. A nil uc makes /chat
// answer 503; a nil router does the same for /chat/classify.
func New(l log.Logger, uc chat.UseCase, r router.Router) *handler {
	return &handler{
		l:        l,
		uc:       uc,
		router:   r,
		validate: validator.New(),
		now:      time.Now,
	}
}

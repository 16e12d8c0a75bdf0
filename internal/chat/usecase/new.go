package usecase

import (
	"internship-assistant/internal/chat"
	"internship-assistant/internal/composer"
	"internship-assistant/internal/formatter"
	"internship-assistant/internal/router"
	pkgLog "internship-assistant/pkg/log"
)

// Log prefixes
const (
	LogPrefixGetResponse = "internal.chat.usecase.GetResponse"
)

type implUseCase struct {
	l         pkgLog.Logger
	router    router.Router
	formatter formatter.Formatter
	composer  composer.Composer
}

var _ chat.UseCase = (*implUseCase)(nil)

// New creates the classify, format, compose pipeline.
func New(l pkgLog.Logger, r router.Router, f formatter.Formatter, c composer.Composer) chat.UseCase {
	return &implUseCase{
		l:         l,
		router:    r,
		formatter: f,
		composer:  c,
	}
}

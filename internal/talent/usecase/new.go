package usecase

import (
	"internship-assistant/internal/talent"
	"internship-assistant/internal/talent/repository"
	pkgLog "internship-assistant/pkg/log"
)

type implUseCase struct {
	l     pkgLog.Logger
	data  repository.DataAccess
	index repository.Index
}

var _ talent.UseCase = (*implUseCase)(nil)

// New creates a new talent UseCase instance.
func New(l pkgLog.Logger, data repository.DataAccess, index repository.Index) *implUseCase {
	return &implUseCase{
		l:     l,
		data:  data,
		index: index,
	}
}

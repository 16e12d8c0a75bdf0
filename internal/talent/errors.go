package talent

import "errors"

var (
	ErrInvalidTarget = errors.New("reindex target must be seekers, posts or all")
	ErrInvalidLimit  = errors.New("limit must be between 1 and 100")
)

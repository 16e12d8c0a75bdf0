package repository

import "errors"

var (
	ErrInvalidLimit   = errors.New("limit must be positive")
	ErrEmptyTerm      = errors.New("search term is empty")
	ErrFailedToList   = errors.New("failed to list records")
	ErrFailedToCount  = errors.New("failed to count records")
	ErrFailedToSearch = errors.New("failed to search index")
	ErrFailedToIndex  = errors.New("failed to index documents")
)

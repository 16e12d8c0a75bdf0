package chat

import "context"

// UseCase answers one user question. Domain failures are reported inside
// Output with IntentError. The error return is reserved for caller mistakes:
// a cancelled ctx or a blank question (ErrEmptyQuestion).
type UseCase interface {
	GetResponse(ctx context.Context, input Input) (Output, error)
}

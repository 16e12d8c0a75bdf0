package chat

import (
	"errors"
	"fmt"

	"internship-assistant/internal/model"
)

// ErrEmptyQuestion is returned by the use case when the question is blank.
var ErrEmptyQuestion = errors.New("question is empty")

// ClassificationError means the intent could not be determined.
type ClassificationError struct {
	Err error
}

func (e *ClassificationError) Error() string {
	return fmt.Sprintf("classify intent: %v", e.Err)
}

func (e *ClassificationError) Unwrap() error { return e.Err }

// DataFetchError means a data or search capability failed while serving Intent.
type DataFetchError struct {
	Intent    model.Intent
	Operation string
	Err       error
}

func (e *DataFetchError) Error() string {
	return fmt.Sprintf("fetch %s for %s: %v", e.Operation, e.Intent, e.Err)
}

func (e *DataFetchError) Unwrap() error { return e.Err }

// ParameterMissingError means the question lacks a required technology or skill.
// Message is the clarification shown to the user.
type ParameterMissingError struct {
	Intent    model.Intent
	Parameter string
	Message   string
}

func (e *ParameterMissingError) Error() string {
	return fmt.Sprintf("%s requires a %s", e.Intent, e.Parameter)
}

// CompositionError means the final answer could not be generated.
type CompositionError struct {
	Err error
}

func (e *CompositionError) Error() string {
	return fmt.Sprintf("compose response: %v", e.Err)
}

func (e *CompositionError) Unwrap() error { return e.Err }

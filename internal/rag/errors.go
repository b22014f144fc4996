package rag

import "errors"

var (
	// ErrInvalidRequest is returned when the question is missing or blank.
	ErrInvalidRequest = errors.New("question is required")

	// ErrNoAnswer is reported by an LLMClient whose response has no answer text.
	ErrNoAnswer = errors.New("no answer generated")
)

// GenerationError wraps any failure of the retrieval or generation chain.
// Its message is the cause's message, unchanged.
type GenerationError struct {
	Err error
}

func (e *GenerationError) Error() string {
	if e.Err == nil {
		return "generation failed"
	}
	return e.Err.Error()
}

func (e *GenerationError) Unwrap() error { return e.Err }

// IsGenerationError reports whether err is, or wraps, a *GenerationError.
func IsGenerationError(err error) bool {
	var ge *GenerationError
	return errors.As(err, &ge)
}

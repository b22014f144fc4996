package rag

import "context"

type EmbeddingsClient interface {
	Embed(ctx context.Context, text string) ([]float32, error)
}

// LLMClient returns ErrNoAnswer when the model response carries no answer.
type LLMClient interface {
	GenerateAnswer(ctx context.Context, prompt Prompt) (string, error)
}

type VectorIndex interface {
	Query(ctx context.Context, embedding []float32, k int) ([]DocChunk, error)
}

package rag

import (
	"cmp"
	"context"
	"slices"
)

// Retriever binds an embeddings client to a vector index.
type Retriever struct {
	embeddings EmbeddingsClient
	index      VectorIndex
}

func NewRetriever(embeddings EmbeddingsClient, index VectorIndex) *Retriever {
	return &Retriever{
		embeddings: embeddings,
		index:      index,
	}
}

// Fetch returns at most RetrievalDepth chunks, most similar first. Errors
// from the embeddings client or the index are returned as is.
func (r *Retriever) Fetch(ctx context.Context, question string) ([]DocChunk, error) {
	vec, err := r.embeddings.Embed(ctx, question)
	if err != nil {
		return nil, err
	}

	chunks, err := r.index.Query(ctx, vec, RetrievalDepth)
	if err != nil {
		return nil, err
	}

	slices.SortStableFunc(chunks, func(a, b DocChunk) int {
		return cmp.Compare(b.Score, a.Score)
	})
	if len(chunks) > RetrievalDepth {
		chunks = chunks[:RetrievalDepth]
	}

	return chunks, nil
}

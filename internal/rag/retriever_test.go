package rag

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestRetriever_Fetch(t *testing.T) {
	ctx := context.Background()
	vec := []float32{0.1, 0.2, 0.3}

	t.Run("orders by score and caps depth", func(t *testing.T) {
		emb := new(mockEmbeddings)
		idx := new(mockIndex)
		emb.On("Embed", mock.Anything, "fever").Return(vec, nil)
		idx.On("Query", mock.Anything, vec, RetrievalDepth).Return([]DocChunk{
			{ID: 1, Score: 0.2},
			{ID: 2, Score: 0.9},
			{ID: 3, Score: 0.5},
			{ID: 4, Score: 0.7},
		}, nil)

		chunks, err := NewRetriever(emb, idx).Fetch(ctx, "fever")
		require.NoError(t, err)
		require.Len(t, chunks, RetrievalDepth)
		assert.Equal(t, []int64{2, 4, 3}, []int64{chunks[0].ID, chunks[1].ID, chunks[2].ID})

		emb.AssertExpectations(t)
		idx.AssertExpectations(t)
	})

	t.Run("empty index", func(t *testing.T) {
		emb := new(mockEmbeddings)
		idx := new(mockIndex)
		emb.On("Embed", mock.Anything, "q").Return(vec, nil)
		idx.On("Query", mock.Anything, vec, RetrievalDepth).Return(nil, nil)

		chunks, err := NewRetriever(emb, idx).Fetch(ctx, "q")
		require.NoError(t, err)
		assert.Empty(t, chunks)
	})

	t.Run("embedding error is returned as is", func(t *testing.T) {
		embErr := errors.New("quota exceeded")
		emb := new(mockEmbeddings)
		idx := new(mockIndex)
		emb.On("Embed", mock.Anything, "q").Return(nil, embErr)

		_, err := NewRetriever(emb, idx).Fetch(ctx, "q")
		assert.Same(t, embErr, err)
		idx.AssertNotCalled(t, "Query", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("index error is returned as is", func(t *testing.T) {
		idxErr := errors.New("connection refused")
		emb := new(mockEmbeddings)
		idx := new(mockIndex)
		emb.On("Embed", mock.Anything, "q").Return(vec, nil)
		idx.On("Query", mock.Anything, vec, RetrievalDepth).Return(nil, idxErr)

		_, err := NewRetriever(emb, idx).Fetch(ctx, "q")
		assert.Same(t, idxErr, err)
	})
}

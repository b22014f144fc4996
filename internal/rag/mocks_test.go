package rag

import (
	"context"

	"github.com/stretchr/testify/mock"
)

type mockEmbeddings struct {
	mock.Mock
}

func (m *mockEmbeddings) Embed(ctx context.Context, text string) ([]float32, error) {
	args := m.Called(ctx, text)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]float32), args.Error(1)
}

type mockIndex struct {
	mock.Mock
}

func (m *mockIndex) Query(ctx context.Context, embedding []float32, k int) ([]DocChunk, error) {
	args := m.Called(ctx, embedding, k)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]DocChunk), args.Error(1)
}

type mockLLM struct {
	mock.Mock
}

func (m *mockLLM) GenerateAnswer(ctx context.Context, prompt Prompt) (string, error) {
	args := m.Called(ctx, prompt)
	return args.String(0), args.Error(1)
}

package rag

import (
	"context"
	"errors"
	"strings"

	wl "github.com/abadojack/whatlanggo"
	"go.uber.org/zap"
)

type Service struct {
	retriever *Retriever
	llm       LLMClient
	logger    *zap.Logger
}

func NewService(retriever *Retriever, llm LLMClient, logger *zap.Logger) *Service {
	return &Service{
		retriever: retriever,
		llm:       llm,
		logger:    logger,
	}
}

// Answer runs retrieval, prompt assembly and generation, in that order.
// A blank question yields ErrInvalidRequest; any failure along the chain
// yields a *GenerationError. A model response without answer text is not
// an error: the returned Answer has Generated set to false.
func (s *Service) Answer(ctx context.Context, question string) (*Answer, error) {
	q := strings.TrimSpace(question)
	if q == "" {
		return nil, ErrInvalidRequest
	}

	s.logger.Info("question received",
		zap.String("question", q),
		zap.String("lang", detectLang(q)),
	)

	chunks, err := s.retriever.Fetch(ctx, q)
	if err != nil {
		s.logger.Error("retrieval failed", zap.Error(err))
		return nil, &GenerationError{Err: err}
	}

	sources := make([]string, 0, len(chunks))
	for _, c := range chunks {
		sources = append(sources, c.Source)
	}
	s.logger.Debug("context retrieved",
		zap.Int("chunks", len(chunks)),
		zap.Strings("sources", sources),
	)

	prompt := BuildPrompt(q, chunks)

	text, err := s.llm.GenerateAnswer(ctx, prompt)
	if errors.Is(err, ErrNoAnswer) {
		s.logger.Warn("model returned no answer", zap.String("question", q))
		return &Answer{Question: q, Sources: chunks}, nil
	}
	if err != nil {
		s.logger.Error("generation failed", zap.Error(err))
		return nil, &GenerationError{Err: err}
	}

	return &Answer{
		Question:  q,
		Text:      text,
		Generated: true,
		Sources:   chunks,
	}, nil
}

// detectLang returns the lowercased whatlanggo code of the question
// ("eng", "por", ...), or "und" when nothing was detected.
func detectLang(s string) string {
	info := wl.Detect(s)
	code := strings.ToLower(wl.LangToString(info.Lang))
	if code == "" {
		return "und"
	}
	return code
}

package llm

import (
	"context"
	"fmt"
	"strings"

	"github.com/josinaldojr/medicinebot-rag/internal/config"
	"github.com/josinaldojr/medicinebot-rag/internal/rag"
	"google.golang.org/genai"
)

// GeminiClient serves both as the embedding provider and the answer
// generator. The underlying genai client is safe for concurrent use.
type GeminiClient struct {
	client         *genai.Client
	embeddingModel string
	embedDim       int
	chatModel      string
	temperature    float32
	maxTokens      int32
	thinkingBudget int32
}

func NewGeminiClient(ctx context.Context, cfg *config.Config) (*GeminiClient, error) {
	if cfg.GoogleAPIKey == "" {
		return nil, fmt.Errorf("missing GOOGLE_API_KEY or GEMINI_API_KEY")
	}

	cc := &genai.ClientConfig{
		APIKey:  cfg.GoogleAPIKey,
		Backend: genai.BackendGeminiAPI,
	}
	if cfg.GeminiBaseURL != "" {
		cc.HTTPOptions.BaseURL = cfg.GeminiBaseURL
	}

	c, err := genai.NewClient(ctx, cc)
	if err != nil {
		return nil, fmt.Errorf("create genai client: %w", err)
	}

	return &GeminiClient{
		client:         c,
		embeddingModel: cfg.EmbeddingModel,
		embedDim:       cfg.EmbeddingDim,
		chatModel:      cfg.ChatModel,
		temperature:    cfg.Temperature,
		maxTokens:      cfg.MaxTokens,
		thinkingBudget: cfg.ThinkingBudget,
	}, nil
}

func (g *GeminiClient) Embed(ctx context.Context, text string) ([]float32, error) {
	clean := normalizeWhitespace(text)
	if clean == "" {
		return nil, fmt.Errorf("empty text for embedding")
	}

	resp, err := g.client.Models.EmbedContent(
		ctx,
		g.embeddingModel,
		genai.Text(clean),
		&genai.EmbedContentConfig{
			OutputDimensionality: genai.Ptr(int32(g.embedDim)),
		},
	)
	if err != nil {
		return nil, fmt.Errorf("gemini embed error: %w", err)
	}

	if len(resp.Embeddings) == 0 {
		return nil, fmt.Errorf("no embeddings returned")
	}

	values := resp.Embeddings[0].Values
	if len(values) != g.embedDim {
		return nil, fmt.Errorf("unexpected embedding size %d (expected %d)", len(values), g.embedDim)
	}

	out := make([]float32, len(values))
	for i, v := range values {
		out[i] = float32(v)
	}
	return out, nil
}

// GenerateAnswer sends the stuffed system prompt as the system instruction
// and the question as the user turn. A response with no candidate text
// maps to rag.ErrNoAnswer.
func (g *GeminiClient) GenerateAnswer(ctx context.Context, prompt rag.Prompt) (string, error) {
	resp, err := g.client.Models.GenerateContent(
		ctx,
		g.chatModel,
		genai.Text(prompt.Question),
		g.generateConfig(prompt),
	)
	if err != nil {
		return "", fmt.Errorf("gemini generateContent error: %w", err)
	}

	return answerText(resp)
}

// generateConfig pins the thinking budget because thinking tokens are
// charged against MaxOutputTokens on 2.5 models.
func (g *GeminiClient) generateConfig(prompt rag.Prompt) *genai.GenerateContentConfig {
	cfg := &genai.GenerateContentConfig{
		SystemInstruction: genai.NewContentFromText(prompt.System, genai.RoleUser),
		Temperature:       genai.Ptr(g.temperature),
		MaxOutputTokens:   g.maxTokens,
	}
	if g.thinkingBudget >= 0 {
		cfg.ThinkingConfig = &genai.ThinkingConfig{
			ThinkingBudget: genai.Ptr(g.thinkingBudget),
		}
	}
	return cfg
}

// -------- helpers --------

// answerText concatenates the text parts of the first candidate that has any.
func answerText(resp *genai.GenerateContentResponse) (string, error) {
	if resp == nil {
		return "", rag.ErrNoAnswer
	}

	var b strings.Builder
	for _, cand := range resp.Candidates {
		if cand == nil || cand.Content == nil {
			continue
		}
		for _, part := range cand.Content.Parts {
			if part != nil && part.Text != "" && !part.Thought {
				b.WriteString(part.Text)
			}
		}
		if b.Len() > 0 {
			break
		}
	}

	txt := strings.TrimSpace(b.String())
	if txt == "" {
		return "", rag.ErrNoAnswer
	}
	return txt, nil
}

func normalizeWhitespace(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return s
	}
	var b strings.Builder
	b.Grow(len(s))
	space := false
	for _, r := range s {
		if r == ' ' || r == '\n' || r == '\r' || r == '\t' {
			if !space {
				b.WriteRune(' ')
				space = true
			}
		} else {
			b.WriteRune(r)
			space = false
		}
	}
	return b.String()
}

var _ rag.EmbeddingsClient = (*GeminiClient)(nil)
var _ rag.LLMClient = (*GeminiClient)(nil)

package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/josinaldojr/medicinebot-rag/internal/rag"
	"go.uber.org/zap"
)

const (
	msgNoQuestion = "No question provided"
	msgNoAnswer   = "No answer generated"
)

// QAService is the question-answering dependency of the handler.
type QAService interface {
	Answer(ctx context.Context, question string) (*rag.Answer, error)
}

type Handler struct {
	qa     QAService
	logger *zap.Logger
}

func NewHandler(qa QAService, logger *zap.Logger) *Handler {
	return &Handler{qa: qa, logger: logger}
}

func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}

func (h *Handler) Ask(w http.ResponseWriter, r *http.Request) {
	var req rag.AskRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeJSON(w, http.StatusBadRequest, rag.ErrorResponse{Error: msgNoQuestion})
		return
	}

	ans, err := h.qa.Answer(r.Context(), req.Question)
	switch {
	case errors.Is(err, rag.ErrInvalidRequest):
		h.writeJSON(w, http.StatusBadRequest, rag.ErrorResponse{Error: msgNoQuestion})
	case rag.IsGenerationError(err):
		h.logger.Error("ask failed", zap.Error(err))
		h.writeJSON(w, http.StatusInternalServerError, rag.ErrorResponse{Error: err.Error()})
	case err != nil:
		h.logger.Error("ask failed with unclassified error", zap.Error(err))
		h.writeJSON(w, http.StatusInternalServerError, rag.ErrorResponse{Error: err.Error()})
	case ans == nil || !ans.Generated:
		// 200 with an error body is what clients of /ask already expect.
		h.writeJSON(w, http.StatusOK, rag.ErrorResponse{Error: msgNoAnswer})
	default:
		h.writeJSON(w, http.StatusOK, rag.AskResponse{Answer: ans.Text})
	}
}

func (h *Handler) writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		h.logger.Warn("failed to write response", zap.Error(err))
	}
}

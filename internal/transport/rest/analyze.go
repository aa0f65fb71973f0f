package rest

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/heartmarshall/dutchhelper-backend/internal/domain"
)

// analyzerService defines the minimal interface needed by AnalyzeHandler.
type analyzerService interface {
	AnalyzeText(ctx context.Context, text string) (*domain.TextAnalysis, error)
	AnalyzeSentence(ctx context.Context, sentence string) (*domain.SentenceAnalysis, error)
}

// AnalyzeHandler serves the analysis REST endpoints.
type AnalyzeHandler struct {
	svc analyzerService
	log *slog.Logger
}

// NewAnalyzeHandler creates an AnalyzeHandler.
func NewAnalyzeHandler(svc analyzerService, logger *slog.Logger) *AnalyzeHandler {
	return &AnalyzeHandler{svc: svc, log: logger.With("handler", "analyze")}
}

type messageRequest struct {
	Text string `json:"text"`
}

type messageResponse struct {
	Text   string `json:"text"`
	Status string `json:"status"`
}

type analyzeTextRequest struct {
	Text string `json:"text"`
}

type analyzeSentenceRequest struct {
	Sentence string `json:"sentence"`
}

// Message handles POST /api/message. It echoes the text back and exists for
// frontend connectivity checks.
func (h *AnalyzeHandler) Message(w http.ResponseWriter, r *http.Request) {
	var req messageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	h.log.InfoContext(r.Context(), "message received", slog.String("text", req.Text))

	writeJSON(w, http.StatusOK, messageResponse{
		Text:   "You said: " + req.Text,
		Status: "received",
	})
}

// AnalyzeText handles POST /api/analyze.
func (h *AnalyzeHandler) AnalyzeText(w http.ResponseWriter, r *http.Request) {
	var req analyzeTextRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if strings.TrimSpace(req.Text) == "" {
		writeError(w, http.StatusBadRequest, "text cannot be empty")
		return
	}

	result, err := h.svc.AnalyzeText(r.Context(), req.Text)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrValidation):
			writeError(w, http.StatusBadRequest, err.Error())
		default:
			h.log.ErrorContext(r.Context(), "text analysis failed", slog.String("error", err.Error()))
			writeError(w, http.StatusInternalServerError, "failed to analyze text")
		}
		return
	}

	h.log.InfoContext(r.Context(), "analysis complete", slog.Int("sentences", len(result.Sentences)))

	writeJSON(w, http.StatusOK, result)
}

// AnalyzeSentence handles POST /api/analyze-sentence. Processing failures map
// to 400 here: the endpoint exists so callers can fan out per sentence and
// treat each failed sentence as a bad unit of work rather than a server
// outage.
func (h *AnalyzeHandler) AnalyzeSentence(w http.ResponseWriter, r *http.Request) {
	var req analyzeSentenceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	result, err := h.svc.AnalyzeSentence(r.Context(), req.Sentence)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrValidation):
			writeError(w, http.StatusBadRequest, err.Error())
		case errors.Is(err, domain.ErrProcessing), errors.Is(err, domain.ErrConfiguration):
			h.log.ErrorContext(r.Context(), "sentence analysis failed", slog.String("error", err.Error()))
			writeError(w, http.StatusBadRequest, "failed to analyze sentence")
		default:
			h.log.ErrorContext(r.Context(), "internal error", slog.String("error", err.Error()))
			writeError(w, http.StatusInternalServerError, "internal server error")
		}
		return
	}

	writeJSON(w, http.StatusOK, result)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v) //nolint:errcheck
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}

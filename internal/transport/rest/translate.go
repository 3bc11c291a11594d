package rest

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/wordpeek/wordpeek-backend/internal/domain"
	"github.com/wordpeek/wordpeek-backend/internal/service/translate"
)

// translateService defines the minimal interface needed by TranslateHandler.
type translateService interface {
	Translate(ctx context.Context, sentence, lang string) (string, error)
}

// TranslateHandler serves POST /api/v1/translate.
type TranslateHandler struct {
	svc translateService
	log *slog.Logger
}

// NewTranslateHandler creates a TranslateHandler.
func NewTranslateHandler(svc translateService, logger *slog.Logger) *TranslateHandler {
	return &TranslateHandler{svc: svc, log: logger.With("handler", "translate")}
}

type translateRequest struct {
	Sentence string `json:"sentence"`
	Lang     string `json:"lang"`
}

type translationData struct {
	Translation string `json:"translation"`
}

// Translate handles POST /api/v1/translate. A request without a usable
// target language gets the dedicated noLanguage tag so clients can prompt
// the user instead of showing an error.
func (h *TranslateHandler) Translate(w http.ResponseWriter, r *http.Request) {
	var req translateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	translation, err := h.svc.Translate(r.Context(), req.Sentence, req.Lang)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, successResponse{
		Status: statusSuccess,
		Data:   translationData{Translation: translation},
	})
}

func (h *TranslateHandler) handleError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, translate.ErrNoLanguage):
		writeJSON(w, http.StatusOK, errorResponse{
			Status:  statusNoLanguage,
			Message: "no target language is configured",
		})
	case errors.Is(err, translate.ErrNotConfigured):
		writeError(w, http.StatusServiceUnavailable, err.Error())
	case errors.Is(err, domain.ErrValidation):
		writeError(w, http.StatusBadRequest, err.Error())
	default:
		h.log.ErrorContext(r.Context(), "translate failed", slog.String("error", err.Error()))
		writeError(w, http.StatusInternalServerError, "internal server error")
	}
}

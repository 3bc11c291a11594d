package rest

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/wordpeek/wordpeek-backend/internal/domain"
	"github.com/wordpeek/wordpeek-backend/internal/service/lookup"
)

// lookupService defines the minimal interface needed by LookupHandler.
type lookupService interface {
	Lookup(ctx context.Context, term string, opts lookup.Options) (*lookup.Result, error)
}

// LookupHandler serves GET /api/v1/lookup.
type LookupHandler struct {
	svc lookupService
	log *slog.Logger
}

// NewLookupHandler creates a LookupHandler.
func NewLookupHandler(svc lookupService, logger *slog.Logger) *LookupHandler {
	return &LookupHandler{svc: svc, log: logger.With("handler", "lookup")}
}

// Lookup handles GET /api/v1/lookup?term=…&source=…&scope=…&examples=…&lang=….
// Every parameter except term is an optional override of the configured
// defaults.
func (h *LookupHandler) Lookup(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	term := q.Get("term")
	if term == "" {
		writeError(w, http.StatusBadRequest, "term is required")
		return
	}

	opts := lookup.Options{
		Source:         q.Get("source"),
		Scope:          q.Get("scope"),
		TargetLanguage: q.Get("lang"),
	}
	if raw := q.Get("examples"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			writeError(w, http.StatusBadRequest, "examples must be a non-negative integer")
			return
		}
		opts.ExampleCount = &n
	}

	result, err := h.svc.Lookup(r.Context(), term, opts)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	tts := result.TTSEnabled
	writeJSON(w, http.StatusOK, successResponse{
		Status:     statusSuccess,
		Data:       result.Entry,
		TTSEnabled: &tts,
	})
}

func (h *LookupHandler) handleError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, domain.ErrValidation):
		writeError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, lookup.ErrUnknownSource):
		writeError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, lookup.ErrMissingAPIKey):
		writeError(w, http.StatusServiceUnavailable, err.Error())
	case errors.Is(err, lookup.ErrNotFound):
		writeError(w, http.StatusNotFound, "definition not found or invalid format")
	default:
		h.log.ErrorContext(r.Context(), "lookup failed", slog.String("error", err.Error()))
		writeError(w, http.StatusInternalServerError, "internal server error")
	}
}

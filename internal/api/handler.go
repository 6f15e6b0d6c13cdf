// internal/api/handler.go
package api

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/certquiz/backend/internal/domain/bank"
	"github.com/certquiz/backend/internal/store"
	"github.com/certquiz/backend/internal/transfer"
)

// Handler holds all dependencies needed by HTTP handlers. Instead of
// relying on package-level globals, every handler method receives its
// dependencies through this struct.
type Handler struct {
	banks         *store.BankStore
	sessions      *SessionRegistry
	feedbackDelay time.Duration
	logger        *slog.Logger
}

// NewHandler creates a Handler with the given dependencies.
func NewHandler(banks *store.BankStore, sessions *SessionRegistry, feedbackDelay time.Duration, logger *slog.Logger) *Handler {
	return &Handler{
		banks:         banks,
		sessions:      sessions,
		feedbackDelay: feedbackDelay,
		logger:        logger,
	}
}

// respondJSON writes a JSON response with the given status code.
func respondJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// respondError writes a JSON error body with the given status code.
func respondError(w http.ResponseWriter, status int, msg string) {
	respondJSON(w, status, map[string]string{"error": msg})
}

type validator interface {
	Validate() error
}

// decodeJSON decodes the request body into v. Returns false after writing
// a 400 when the body is not valid JSON.
func decodeJSON(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		respondError(w, http.StatusBadRequest, "invalid json")
		return false
	}
	return true
}

// decodeAndValidate decodes the request body and runs the request type's
// Validate method. Returns false if a response has already been written.
func decodeAndValidate(w http.ResponseWriter, r *http.Request, v validator) bool {
	if !decodeJSON(w, r, v) {
		return false
	}
	if err := v.Validate(); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return false
	}
	return true
}

// handleDomainError maps core errors to HTTP responses. Returns true if an
// error was handled (caller should return).
func (h *Handler) handleDomainError(w http.ResponseWriter, err error) bool {
	if err == nil {
		return false
	}

	var malformed *transfer.MalformedPayloadError
	var storageErr *store.StorageError

	switch {
	case errors.Is(err, bank.ErrDuplicateGroup):
		respondError(w, http.StatusConflict, "a group with that name already exists")
	case errors.Is(err, bank.ErrGroupNotFound):
		respondError(w, http.StatusNotFound, "group not found, create it first")
	case errors.Is(err, bank.ErrEmptyGroup):
		respondError(w, http.StatusNotFound, "no questions found in this group")
	case errors.Is(err, bank.ErrEmptyGroupName):
		respondError(w, http.StatusBadRequest, "group name is required")
	case errors.As(err, &malformed):
		respondError(w, http.StatusBadRequest, malformed.Error())
	case errors.As(err, &storageErr):
		h.logger.Error("storage error", "error", err)
		respondError(w, http.StatusInternalServerError, storageErr.Error())
	case errors.Is(err, store.ErrNotFound):
		respondError(w, http.StatusNotFound, "not found")
	default:
		h.logger.Error("unexpected error", "error", err)
		respondError(w, http.StatusInternalServerError, "internal error")
	}
	return true
}

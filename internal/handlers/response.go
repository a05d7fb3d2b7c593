package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"worldforge/internal/contextutil"
	"worldforge/internal/entity"
	"worldforge/internal/service"
)

// ErrorResponse represents an error response.
//
// swagger:model ErrorResponse
type ErrorResponse struct {
	Error string `json:"error"`
	// Allowed lists the permitted values when a vocabulary-bound field was rejected.
	Allowed []string `json:"allowed,omitempty"`
}

// writeJSON writes v as a JSON response with the given status.
func writeJSON(ctx context.Context, w http.ResponseWriter, statusCode int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		contextutil.LoggerFromContext(ctx).ErrorContext(ctx, "failed to encode response", "error", err)
	}
}

// writeError writes an error response.
func writeError(w http.ResponseWriter, statusCode int, message string) {
	writeErrorResponse(w, statusCode, ErrorResponse{Error: message})
}

func writeErrorResponse(w http.ResponseWriter, statusCode int, resp ErrorResponse) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(resp)
}

// handleServiceError maps service errors to HTTP status codes.
func handleServiceError(w http.ResponseWriter, ctx context.Context, err error, defaultMsg string) {
	logger := contextutil.LoggerFromContext(ctx)

	var validationErr *service.ValidationError
	if errors.As(err, &validationErr) {
		logger.WarnContext(ctx, "validation failed", "error", err)
		writeErrorResponse(w, http.StatusBadRequest, ErrorResponse{
			Error:   validationErr.Error(),
			Allowed: validationErr.Allowed,
		})
		return
	}

	// Check for wrapped errors
	if errors.Is(err, service.ErrInvalidInput) {
		logger.WarnContext(ctx, "invalid input", "error", err)
		writeError(w, http.StatusBadRequest, "Invalid input")
		return
	}

	if errors.Is(err, service.ErrNotFound) {
		logger.InfoContext(ctx, "resource not found", "error", err)
		var nf *service.NotFoundError
		if errors.As(err, &nf) {
			writeError(w, http.StatusNotFound, nf.Error())
			return
		}
		writeError(w, http.StatusNotFound, "Resource not found")
		return
	}

	// Default to internal server error
	logger.ErrorContext(ctx, "service error", "error", err)
	writeError(w, http.StatusInternalServerError, defaultMsg)
}

// intParam parses a positive integer URL parameter.
func intParam(r *http.Request, name string) (int, error) {
	raw := chi.URLParam(r, name)
	id, err := strconv.Atoi(raw)
	if err != nil || id <= 0 {
		return 0, &service.ValidationError{Field: name, Message: "must be a positive integer"}
	}
	return id, nil
}

// refQuery parses an entity reference from two query parameters.
func refQuery(r *http.Request, typeParam, idParam string) (entity.Ref, error) {
	q := r.URL.Query()
	kind, err := entity.ParseKind(q.Get(typeParam))
	if err != nil {
		return entity.Ref{}, &service.ValidationError{
			Field:   typeParam,
			Message: "must be an entity type",
			Allowed: kindNames(),
		}
	}
	id, err := strconv.Atoi(strings.TrimSpace(q.Get(idParam)))
	if err != nil || id <= 0 {
		return entity.Ref{}, &service.ValidationError{Field: idParam, Message: "must be a positive integer"}
	}
	return entity.Ref{Kind: kind, ID: id}, nil
}

func kindNames() []string {
	names := make([]string, len(entity.Kinds))
	for i, k := range entity.Kinds {
		names[i] = string(k)
	}
	return names
}

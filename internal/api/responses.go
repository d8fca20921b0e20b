package api

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/everforgeworks/umami-lab/internal/game"
)

// User-facing error messages
const (
	ErrMsgInvalidRequest  = "Invalid request. Please check your inputs."
	ErrMsgInvalidIndex    = "Invalid ingredient position"
	ErrMsgRunNotFound     = "Run not found"
	ErrMsgGenericServer   = "Something went wrong"
	ErrMsgValidationError = "Request failed validation"
)

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error string `json:"error"`
}

// ValidationErrorResponse lists the offending fields.
type ValidationErrorResponse struct {
	Error  string            `json:"error"`
	Fields map[string]string `json:"fields"`
}

// respondJSON sends a JSON response with the given status code and payload
func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		slog.Error("Failed to encode JSON response", "error", err)
	}
}

// respondError sends a JSON error response
func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, ErrorResponse{Error: message})
}

// statusForGameError maps a rejected transition to an HTTP status.
func statusForGameError(err error) int {
	switch {
	case errors.Is(err, game.ErrUnknownIngredient),
		errors.Is(err, game.ErrUnknownUpgrade):
		return http.StatusNotFound
	case errors.Is(err, game.ErrInvalidIndex):
		return http.StatusUnprocessableEntity
	case errors.Is(err, game.ErrWrongPhase),
		errors.Is(err, game.ErrInsufficientFunds),
		errors.Is(err, game.ErrInsufficientReputation),
		errors.Is(err, game.ErrUpgradeOwned),
		errors.Is(err, game.ErrOutOfStock),
		errors.Is(err, game.ErrDishFull),
		errors.Is(err, game.ErrNoCustomer),
		errors.Is(err, game.ErrEmptyDish):
		return http.StatusConflict
	}
	return http.StatusInternalServerError
}

// respondGameError writes the mapped status with the sentinel's message.
func respondGameError(w http.ResponseWriter, err error) {
	status := statusForGameError(err)
	if status == http.StatusInternalServerError {
		slog.Error("Unexpected game error", "error", err)
		respondError(w, status, ErrMsgGenericServer)
		return
	}
	respondError(w, status, err.Error())
}

// formatValidationError turns validator errors into a field -> message map.
func formatValidationError(err error) map[string]string {
	errs := make(map[string]string)

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		errs["error"] = ErrMsgInvalidRequest
		return errs
	}

	for _, e := range validationErrors {
		field := e.Field()
		switch e.Tag() {
		case "required":
			errs[field] = "This field is required"
		case "max":
			errs[field] = "Must be at most " + e.Param() + " characters"
		default:
			errs[field] = "Invalid value"
		}
	}
	return errs
}

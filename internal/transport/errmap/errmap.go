// Package errmap classifies domain errors into transport outcomes shared by
// the HTTP handlers and the function handlers.
package errmap

import (
	"errors"
	"net/http"

	"github.com/TGiulio/nightlog/internal/domain"
)

// Error codes returned in the "code" field of an error body.
const (
	CodeBadRequest = "bad_request"
	CodeValidation = "validation_error"
	CodeInvalidID  = "invalid_id"
	CodeNotFound   = "not_found"
	CodeStore      = "store_error"
	CodeInternal   = "internal"
)

// Body is the JSON error payload.
type Body struct {
	Error  string              `json:"error"`
	Code   string              `json:"code"`
	Fields []domain.FieldError `json:"fields,omitempty"`
}

// Classify returns the status and body for err. Internal failures get a
// generic message so that driver details do not leak to callers.
func Classify(err error) (int, Body) {
	var ve *domain.ValidationError

	switch {
	case errors.As(err, &ve):
		return http.StatusUnprocessableEntity, Body{Error: ve.Error(), Code: CodeValidation, Fields: ve.Errors}
	case errors.Is(err, domain.ErrValidation):
		return http.StatusUnprocessableEntity, Body{Error: err.Error(), Code: CodeValidation}
	case errors.Is(err, domain.ErrBadRequest):
		return http.StatusBadRequest, Body{Error: err.Error(), Code: CodeBadRequest}
	case errors.Is(err, domain.ErrInvalidID):
		return http.StatusBadRequest, Body{Error: "invalid log id", Code: CodeInvalidID}
	case errors.Is(err, domain.ErrNotFound):
		return http.StatusNotFound, Body{Error: "log not found", Code: CodeNotFound}
	case errors.Is(err, domain.ErrStore):
		return http.StatusServiceUnavailable, Body{Error: "store unavailable", Code: CodeStore}
	default:
		return http.StatusInternalServerError, Body{Error: "internal server error", Code: CodeInternal}
	}
}

// IsServerError reports whether status should be logged at error level.
func IsServerError(status int) bool {
	return status >= http.StatusInternalServerError
}

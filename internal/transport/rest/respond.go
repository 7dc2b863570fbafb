package rest

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/TGiulio/nightlog/internal/domain"
	"github.com/TGiulio/nightlog/internal/transport/errmap"
)

const maxBodyBytes = 1 << 20

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v) //nolint:errcheck
}

// writeError classifies err, logs server-side failures and writes the body.
// It returns the error code written.
func writeError(w http.ResponseWriter, r *http.Request, log *slog.Logger, err error) string {
	status, body := errmap.Classify(err)
	if errmap.IsServerError(status) {
		log.ErrorContext(r.Context(), "request failed",
			slog.String("code", body.Code),
			slog.String("error", err.Error()),
		)
	} else {
		log.DebugContext(r.Context(), "request rejected",
			slog.String("code", body.Code),
			slog.String("error", err.Error()),
		)
	}
	writeJSON(w, status, body)
	return body.Code
}

// decodeJSON strictly decodes a single JSON object from the request body.
// Malformed input, unknown fields and trailing data are domain.ErrBadRequest.
func decodeJSON(w http.ResponseWriter, r *http.Request, v any) error {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()

	if err := dec.Decode(v); err != nil {
		var maxErr *http.MaxBytesError
		switch {
		case errors.Is(err, io.EOF):
			return domain.BadRequest("request body is empty")
		case errors.As(err, &maxErr):
			return domain.BadRequest("request body exceeds %d bytes", maxErr.Limit)
		default:
			return domain.BadRequest("invalid request body: %s", err.Error())
		}
	}

	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return domain.BadRequest("request body must contain a single JSON object")
	}
	return nil
}

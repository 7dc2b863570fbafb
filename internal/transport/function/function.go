// Package function exposes the log operations as independent per-invocation
// handlers. Each takes a raw JSON payload and returns a {statusCode, body}
// envelope, so a single operation can run without the HTTP server.
package function

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"sort"

	"github.com/TGiulio/nightlog/internal/domain"
	"github.com/TGiulio/nightlog/internal/service/observationlog"
	"github.com/TGiulio/nightlog/internal/transport/errmap"
	"github.com/TGiulio/nightlog/pkg/ctxutil"
)

type logService interface {
	CreateLog(ctx context.Context, input observationlog.CreateLogInput) (*domain.Log, error)
	GetLog(ctx context.Context, input observationlog.GetLogInput) (*domain.Log, error)
	UpdateLog(ctx context.Context, input observationlog.UpdateLogInput) (*domain.Log, error)
	DeleteLog(ctx context.Context, input observationlog.DeleteLogInput) error
	ListLogs(ctx context.Context, input observationlog.ListLogsInput) ([]*domain.Log, error)
}

type operationObserver interface {
	ObserveOperation(operation, outcome string)
}

// Response is the envelope returned by every handler.
type Response struct {
	StatusCode int    `json:"statusCode"`
	Body       string `json:"body"`
}

// Handler is the signature shared by the five operations.
type Handler func(ctx context.Context, payload []byte) Response

// Handlers holds the per-operation entry points.
type Handlers struct {
	svc     logService
	metrics operationObserver
	log     *slog.Logger
}

// New creates Handlers. A nil metrics observer disables operation counting.
func New(svc logService, metrics operationObserver, logger *slog.Logger) *Handlers {
	if metrics == nil {
		metrics = noopObserver{}
	}
	return &Handlers{svc: svc, metrics: metrics, log: logger.With("handler", "function")}
}

type noopObserver struct{}

func (noopObserver) ObserveOperation(string, string) {}

// Operations returns the handlers keyed by operation name.
func (h *Handlers) Operations() map[string]Handler {
	return map[string]Handler{
		"create": h.Create,
		"get":    h.Get,
		"update": h.Update,
		"delete": h.Delete,
		"list":   h.List,
	}
}

// OperationNames returns the sorted operation names.
func (h *Handlers) OperationNames() []string {
	ops := h.Operations()
	names := make([]string, 0, len(ops))
	for name := range ops {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Invoke dispatches payload to the named operation.
func (h *Handlers) Invoke(ctx context.Context, operation string, payload []byte) (Response, error) {
	handler, ok := h.Operations()[operation]
	if !ok {
		return Response{}, fmt.Errorf("unknown operation %q", operation)
	}
	return handler(ctx, payload), nil
}

type createPayload struct {
	UserID      string             `json:"user_id"`
	Date        string             `json:"date"`
	Observation domain.Observation `json:"observation"`
}

type logRefPayload struct {
	LogID  string `json:"log_id"`
	UserID string `json:"user_id"`
}

type updatePayload struct {
	LogID       string             `json:"log_id"`
	UserID      string             `json:"user_id"`
	Date        string             `json:"date"`
	Observation domain.Observation `json:"observation"`
}

type listPayload struct {
	UserID string `json:"user_id"`
}

type listBody struct {
	Logs  []*domain.Log `json:"logs"`
	Count int           `json:"count"`
}

// Create handles {user_id, date, observation} and returns the stored log.
func (h *Handlers) Create(ctx context.Context, payload []byte) Response {
	var p createPayload
	if err := decodePayload(payload, &p); err != nil {
		return h.fail(ctx, "create", err)
	}

	date, err := domain.ParseDate(p.Date)
	if err != nil {
		return h.fail(ctx, "create", err)
	}

	l, err := h.svc.CreateLog(ctx, observationlog.CreateLogInput{
		RequesterID: requester(ctx),
		UserID:      p.UserID,
		Date:        date,
		Observation: p.Observation,
	})
	if err != nil {
		return h.fail(ctx, "create", err)
	}

	return h.ok(ctx, "create", http.StatusCreated, l)
}

// Get handles {log_id, user_id?}.
func (h *Handlers) Get(ctx context.Context, payload []byte) Response {
	var p logRefPayload
	if err := decodePayload(payload, &p); err != nil {
		return h.fail(ctx, "get", err)
	}

	l, err := h.svc.GetLog(ctx, observationlog.GetLogInput{
		RequesterID: requester(ctx),
		UserID:      p.UserID,
		LogID:       p.LogID,
	})
	if err != nil {
		return h.fail(ctx, "get", err)
	}

	return h.ok(ctx, "get", http.StatusOK, l)
}

// Update handles {log_id, user_id?, date, observation}.
func (h *Handlers) Update(ctx context.Context, payload []byte) Response {
	var p updatePayload
	if err := decodePayload(payload, &p); err != nil {
		return h.fail(ctx, "update", err)
	}

	date, err := domain.ParseDate(p.Date)
	if err != nil {
		return h.fail(ctx, "update", err)
	}

	l, err := h.svc.UpdateLog(ctx, observationlog.UpdateLogInput{
		RequesterID: requester(ctx),
		UserID:      p.UserID,
		LogID:       p.LogID,
		Date:        date,
		Observation: p.Observation,
	})
	if err != nil {
		return h.fail(ctx, "update", err)
	}

	return h.ok(ctx, "update", http.StatusOK, l)
}

// Delete handles {log_id, user_id?}. Success has an empty body.
func (h *Handlers) Delete(ctx context.Context, payload []byte) Response {
	var p logRefPayload
	if err := decodePayload(payload, &p); err != nil {
		return h.fail(ctx, "delete", err)
	}

	err := h.svc.DeleteLog(ctx, observationlog.DeleteLogInput{
		RequesterID: requester(ctx),
		UserID:      p.UserID,
		LogID:       p.LogID,
	})
	if err != nil {
		return h.fail(ctx, "delete", err)
	}

	h.metrics.ObserveOperation("delete", "ok")
	return Response{StatusCode: http.StatusNoContent}
}

// List handles {user_id} and returns {"logs": [...], "count": n}.
func (h *Handlers) List(ctx context.Context, payload []byte) Response {
	var p listPayload
	if err := decodePayload(payload, &p); err != nil {
		return h.fail(ctx, "list", err)
	}

	logs, err := h.svc.ListLogs(ctx, observationlog.ListLogsInput{
		RequesterID: requester(ctx),
		UserID:      p.UserID,
	})
	if err != nil {
		return h.fail(ctx, "list", err)
	}
	if logs == nil {
		logs = []*domain.Log{}
	}

	return h.ok(ctx, "list", http.StatusOK, listBody{Logs: logs, Count: len(logs)})
}

func (h *Handlers) ok(ctx context.Context, operation string, status int, v any) Response {
	body, err := json.Marshal(v)
	if err != nil {
		return h.fail(ctx, operation, fmt.Errorf("encode response: %w", err))
	}
	h.metrics.ObserveOperation(operation, "ok")
	return Response{StatusCode: status, Body: string(body)}
}

func (h *Handlers) fail(ctx context.Context, operation string, err error) Response {
	status, body := errmap.Classify(err)
	if errmap.IsServerError(status) {
		h.log.ErrorContext(ctx, "invocation failed",
			slog.String("operation", operation),
			slog.String("code", body.Code),
			slog.String("error", err.Error()),
		)
	}
	h.metrics.ObserveOperation(operation, body.Code)

	raw, _ := json.Marshal(body)
	return Response{StatusCode: status, Body: string(raw)}
}

// decodePayload strictly decodes a single JSON object.
func decodePayload(payload []byte, v any) error {
	if len(bytes.TrimSpace(payload)) == 0 {
		return domain.BadRequest("payload is empty")
	}

	dec := json.NewDecoder(bytes.NewReader(payload))
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		return domain.BadRequest("invalid payload: %s", err.Error())
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return domain.BadRequest("payload must contain a single JSON object")
	}
	return nil
}

func requester(ctx context.Context) string {
	id, _ := ctxutil.UserIDFromCtx(ctx)
	return id
}

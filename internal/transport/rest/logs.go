package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/TGiulio/nightlog/internal/domain"
	"github.com/TGiulio/nightlog/internal/service/observationlog"
	"github.com/TGiulio/nightlog/pkg/ctxutil"
)

// logService defines the operations LogHandler needs.
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

// LogHandler serves the observation log REST endpoints.
type LogHandler struct {
	svc     logService
	metrics operationObserver
	log     *slog.Logger
}

// NewLogHandler creates a LogHandler.
// A nil metrics observer disables operation counting.
func NewLogHandler(svc logService, metrics operationObserver, logger *slog.Logger) *LogHandler {
	if metrics == nil {
		metrics = noopObserver{}
	}
	return &LogHandler{svc: svc, metrics: metrics, log: logger.With("handler", "logs")}
}

type noopObserver struct{}

func (noopObserver) ObserveOperation(string, string) {}

// logRequest is the body of create and update. On update user_id only
// scopes the lookup; the owner of a log never changes.
type logRequest struct {
	UserID      string             `json:"user_id"`
	Date        string             `json:"date"`
	Observation domain.Observation `json:"observation"`
}

type listLogsResponse struct {
	Logs  []*domain.Log `json:"logs"`
	Count int           `json:"count"`
}

// Create handles POST /v1/logs.
func (h *LogHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req logRequest
	if err := decodeJSON(w, r, &req); err != nil {
		h.fail(w, r, "create", err)
		return
	}

	date, err := domain.ParseDate(req.Date)
	if err != nil {
		h.fail(w, r, "create", err)
		return
	}

	l, err := h.svc.CreateLog(r.Context(), observationlog.CreateLogInput{
		RequesterID: requester(r),
		UserID:      req.UserID,
		Date:        date,
		Observation: req.Observation,
	})
	if err != nil {
		h.fail(w, r, "create", err)
		return
	}

	h.metrics.ObserveOperation("create", "ok")
	w.Header().Set("Location", "/v1/logs/"+l.ID)
	writeJSON(w, http.StatusCreated, l)
}

// Get handles GET /v1/logs/{id}.
func (h *LogHandler) Get(w http.ResponseWriter, r *http.Request) {
	l, err := h.svc.GetLog(r.Context(), observationlog.GetLogInput{
		RequesterID: requester(r),
		LogID:       chi.URLParam(r, "id"),
	})
	if err != nil {
		h.fail(w, r, "get", err)
		return
	}

	h.metrics.ObserveOperation("get", "ok")
	writeJSON(w, http.StatusOK, l)
}

// Update handles PUT /v1/logs/{id}.
func (h *LogHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req logRequest
	if err := decodeJSON(w, r, &req); err != nil {
		h.fail(w, r, "update", err)
		return
	}

	date, err := domain.ParseDate(req.Date)
	if err != nil {
		h.fail(w, r, "update", err)
		return
	}

	l, err := h.svc.UpdateLog(r.Context(), observationlog.UpdateLogInput{
		RequesterID: requester(r),
		UserID:      req.UserID,
		LogID:       chi.URLParam(r, "id"),
		Date:        date,
		Observation: req.Observation,
	})
	if err != nil {
		h.fail(w, r, "update", err)
		return
	}

	h.metrics.ObserveOperation("update", "ok")
	writeJSON(w, http.StatusOK, l)
}

// Delete handles DELETE /v1/logs/{id}.
func (h *LogHandler) Delete(w http.ResponseWriter, r *http.Request) {
	err := h.svc.DeleteLog(r.Context(), observationlog.DeleteLogInput{
		RequesterID: requester(r),
		LogID:       chi.URLParam(r, "id"),
	})
	if err != nil {
		h.fail(w, r, "delete", err)
		return
	}

	h.metrics.ObserveOperation("delete", "ok")
	w.WriteHeader(http.StatusNoContent)
}

// List handles GET /v1/users/{userID}/logs.
func (h *LogHandler) List(w http.ResponseWriter, r *http.Request) {
	logs, err := h.svc.ListLogs(r.Context(), observationlog.ListLogsInput{
		RequesterID: requester(r),
		UserID:      chi.URLParam(r, "userID"),
	})
	if err != nil {
		h.fail(w, r, "list", err)
		return
	}
	if logs == nil {
		logs = []*domain.Log{}
	}

	h.metrics.ObserveOperation("list", "ok")
	writeJSON(w, http.StatusOK, listLogsResponse{Logs: logs, Count: len(logs)})
}

func (h *LogHandler) fail(w http.ResponseWriter, r *http.Request, operation string, err error) {
	code := writeError(w, r, h.log, err)
	h.metrics.ObserveOperation(operation, code)
}

func requester(r *http.Request) string {
	id, _ := ctxutil.UserIDFromCtx(r.Context())
	return id
}

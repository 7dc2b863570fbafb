package rest

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"

	"github.com/TGiulio/nightlog/internal/config"
	"github.com/TGiulio/nightlog/internal/observability/metrics"
	"github.com/TGiulio/nightlog/internal/transport/errmap"
	"github.com/TGiulio/nightlog/internal/transport/middleware"
)

// RouterDeps holds everything NewRouter wires into the HTTP surface.
// Metrics may be nil, in which case /metrics is not mounted.
type RouterDeps struct {
	Logs    *LogHandler
	Health  *HealthHandler
	Metrics *metrics.Metrics
	CORS    config.CORSConfig
	Logger  *slog.Logger
}

// NewRouter builds the chi router with the middleware chain
// RequestID -> Recovery -> Identity -> Logger -> Metrics -> CORS.
func NewRouter(deps RouterDeps) http.Handler {
	r := chi.NewRouter()

	var observe middleware.Middleware
	if deps.Metrics != nil {
		observe = middleware.Metrics(deps.Metrics)
	}
	r.Use(middleware.Chain(
		middleware.RequestID(),
		middleware.Recovery(deps.Logger),
		middleware.Identity(),
		middleware.Logger(deps.Logger),
		observe,
	))

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   deps.CORS.Origins(),
		AllowedMethods:   deps.CORS.Methods(),
		AllowedHeaders:   deps.CORS.Headers(),
		ExposedHeaders:   []string{middleware.RequestIDHeader, "Location"},
		AllowCredentials: deps.CORS.AllowCredentials,
		MaxAge:           deps.CORS.MaxAge,
	}))

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusNotFound, errmap.Body{Error: "route not found", Code: errmap.CodeNotFound})
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusMethodNotAllowed, errmap.Body{Error: "method not allowed", Code: errmap.CodeBadRequest})
	})

	r.Get("/live", deps.Health.Live)
	r.Get("/ready", deps.Health.Ready)
	r.Get("/health", deps.Health.Health)
	if deps.Metrics != nil {
		r.Method(http.MethodGet, "/metrics", deps.Metrics.Handler())
	}

	r.Route("/v1", func(r chi.Router) {
		r.Post("/logs", deps.Logs.Create)
		r.Get("/logs/{id}", deps.Logs.Get)
		r.Put("/logs/{id}", deps.Logs.Update)
		r.Delete("/logs/{id}", deps.Logs.Delete)
		r.Get("/users/{userID}/logs", deps.Logs.List)
	})

	return r
}

package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"

	"github.com/TGiulio/nightlog/internal/adapter/mongodb"
	logrepo "github.com/TGiulio/nightlog/internal/adapter/mongodb/observationlog"
	"github.com/TGiulio/nightlog/internal/config"
	"github.com/TGiulio/nightlog/internal/observability/metrics"
	logsvc "github.com/TGiulio/nightlog/internal/service/observationlog"
	"github.com/TGiulio/nightlog/internal/transport/function"
	"github.com/TGiulio/nightlog/internal/transport/rest"
)

// App holds the long-lived components shared by the HTTP server and the
// function handlers. It owns the MongoDB client.
type App struct {
	cfg     *config.Config
	log     *slog.Logger
	db      *mongodb.DB
	logs    *logsvc.Service
	metrics *metrics.Metrics
}

// New connects to MongoDB, ensures indexes and wires the service.
// The caller must Close the App.
func New(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*App, error) {
	db, err := mongodb.Connect(ctx, cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("connect to database: %w", err)
	}

	repo := logrepo.New(db.Collection())
	if err := repo.EnsureIndexes(ctx); err != nil {
		_ = db.Close(context.Background())
		return nil, fmt.Errorf("ensure indexes: %w", err)
	}

	var m *metrics.Metrics
	if cfg.Metrics.Enabled {
		m = metrics.New(cfg.Metrics.Namespace)
	}

	logger.Info("connected to database",
		slog.String("database", cfg.Database.Name),
		slog.String("collection", cfg.Database.Collection),
	)

	return &App{
		cfg:     cfg,
		log:     logger,
		db:      db,
		logs:    logsvc.NewService(logger, repo),
		metrics: m,
	}, nil
}

// Handler returns the HTTP router.
func (a *App) Handler() http.Handler {
	return rest.NewRouter(rest.RouterDeps{
		Logs:    rest.NewLogHandler(a.logs, a.metrics, a.log),
		Health:  rest.NewHealthHandler(a.db, Version),
		Metrics: a.metrics,
		CORS:    a.cfg.CORS,
		Logger:  a.log,
	})
}

// Functions returns the per-invocation handlers.
func (a *App) Functions() *function.Handlers {
	return function.New(a.logs, a.metrics, a.log)
}

// Close disconnects from MongoDB.
func (a *App) Close(ctx context.Context) error {
	return a.db.Close(ctx)
}

// Run is the server entry point. It loads configuration, initializes the
// logger, wires the application and serves HTTP until ctx is cancelled.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)

	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
	)

	a, err := New(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer func() {
		closeCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
		defer cancel()
		if err := a.Close(closeCtx); err != nil {
			logger.Error("close database", slog.String("error", err.Error()))
		}
	}()

	ln, err := net.Listen("tcp", cfg.Server.Addr())
	if err != nil {
		return fmt.Errorf("listen on %s: %w", cfg.Server.Addr(), err)
	}

	return Serve(ctx, ln, a.Handler(), cfg.Server, logger)
}

// Serve runs an http.Server on ln until ctx is cancelled, then shuts it down
// within ShutdownTimeout.
func Serve(ctx context.Context, ln net.Listener, handler http.Handler, cfg config.ServerConfig, logger *slog.Logger) error {
	srv := &http.Server{
		Handler:      handler,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		IdleTimeout:  cfg.IdleTimeout,
		ErrorLog:     slog.NewLogLogger(logger.Handler(), slog.LevelError),
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("http server listening", slog.String("addr", ln.Addr().String()))
		errCh <- srv.Serve(ln)
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("http server: %w", err)
	case <-ctx.Done():
	}

	logger.Info("shutting down http server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown http server: %w", err)
	}

	return nil
}

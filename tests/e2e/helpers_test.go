//go:build e2e

package e2e_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/TGiulio/nightlog/internal/adapter/mongodb/testhelper"
	"github.com/TGiulio/nightlog/internal/app"
	"github.com/TGiulio/nightlog/internal/config"
	"github.com/TGiulio/nightlog/internal/transport/middleware"
)

// testServer wraps the full-stack HTTP server for E2E tests.
type testServer struct {
	URL    string
	Client *http.Client
}

// testLogWriter adapts testing.T to io.Writer for slog.
type testLogWriter struct{ t *testing.T }

func (w testLogWriter) Write(p []byte) (int, error) {
	w.t.Helper()
	w.t.Log(string(p))
	return len(p), nil
}

// setupTestServer bootstraps the application against a fresh collection in
// the shared MongoDB container.
func setupTestServer(t *testing.T) *testServer {
	t.Helper()

	cfg := &config.Config{
		Database: testhelper.DatabaseConfig(t),
		Log:      config.LogConfig{Level: "debug", Format: "text"},
		CORS: config.CORSConfig{
			AllowedOrigins: "*",
			AllowedMethods: "GET,POST,PUT,DELETE,OPTIONS",
			AllowedHeaders: "Content-Type,X-User-Id,X-Request-Id",
			MaxAge:         300,
		},
		Metrics: config.MetricsConfig{Enabled: true, Namespace: "nightlog_e2e"},
	}

	logger := slog.New(slog.NewTextHandler(testLogWriter{t}, &slog.HandlerOptions{Level: slog.LevelDebug}))

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	a, err := app.New(ctx, cfg, logger)
	require.NoError(t, err)

	srv := httptest.NewServer(a.Handler())
	t.Cleanup(func() {
		srv.Close()
		closeCtx, closeCancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer closeCancel()
		_ = a.Close(closeCtx)
	})

	return &testServer{URL: srv.URL, Client: srv.Client()}
}

// do sends a request with an optional JSON body and requester header.
func (ts *testServer) do(t *testing.T, method, path, userID string, body any) *http.Response {
	t.Helper()

	var r io.Reader
	switch b := body.(type) {
	case nil:
	case string:
		r = bytes.NewBufferString(b)
	default:
		raw, err := json.Marshal(b)
		require.NoError(t, err)
		r = bytes.NewReader(raw)
	}

	req, err := http.NewRequest(method, ts.URL+path, r)
	require.NoError(t, err)
	if r != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if userID != "" {
		req.Header.Set(middleware.UserIDHeader, userID)
	}

	resp, err := ts.Client.Do(req)
	require.NoError(t, err)
	t.Cleanup(func() { resp.Body.Close() })
	return resp
}

// decodeBody decodes the response JSON into a generic map.
func decodeBody(t *testing.T, resp *http.Response) map[string]any {
	t.Helper()
	var out map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return out
}

// logBody builds a create/update request body.
func logBody(userID, date, object string) map[string]any {
	return map[string]any{
		"user_id": userID,
		"date":    date,
		"observation": map[string]any{
			"object_name":     object,
			"object_location": "Hercules",
			"equipment":       "8 inch dobsonian",
			"eyepiece":        "10mm",
			"notes":           "steady seeing",
		},
	}
}

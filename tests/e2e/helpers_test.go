//go:build e2e

package e2e_test

import (
	"context"
	"log/slog"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/heartmarshall/retroboard-backend/internal/adapter/postgres/testhelper"
	"github.com/heartmarshall/retroboard-backend/internal/app"
	"github.com/heartmarshall/retroboard-backend/internal/config"
	"github.com/heartmarshall/retroboard-backend/pkg/retroclient"
)

// testServer is a fully wired server on a throwaway database.
type testServer struct {
	URL string
	app *app.Server
}

// client returns an API client with no session.
func (ts *testServer) client() *retroclient.Client {
	return retroclient.New(ts.URL)
}

// login returns a client holding a session for name.
func (ts *testServer) login(t *testing.T, name string) *retroclient.Client {
	t.Helper()
	c := ts.client()
	_, err := c.Login(context.Background(), name)
	require.NoError(t, err)
	return c
}

func testConfig() *config.Config {
	return &config.Config{
		Session: config.SessionConfig{
			Secret:   "test-secret-at-least-32-chars-long!!",
			Issuer:   "retroboard-test",
			TokenTTL: time.Hour,
		},
		Realtime: config.RealtimeConfig{
			Broker:       config.BrokerLocal,
			BrokerBuffer: 256,
			ClientBuffer: 64,
			PingInterval: 5 * time.Second,
			WriteTimeout: 2 * time.Second,
			RestartDelay: 100 * time.Millisecond,
		},
		Cache: config.CacheConfig{
			RetroTTL:        time.Minute,
			CleanupInterval: time.Minute,
		},
		CORS: config.CORSConfig{
			AllowedOrigins: "*",
			AllowedMethods: "GET,POST,PATCH,DELETE,OPTIONS",
			AllowedHeaders: "Authorization,Content-Type",
		},
		Log: config.LogConfig{Level: "debug", Format: "text"},
	}
}

func setupTestServer(t *testing.T) *testServer {
	t.Helper()

	pool := testhelper.SetupTestDB(t)
	logger := slog.New(slog.NewTextHandler(testLogWriter{t}, &slog.HandlerOptions{Level: slog.LevelDebug}))

	ctx, cancel := context.WithCancel(context.Background())
	srv, err := app.NewServer(ctx, testConfig(), pool, logger)
	require.NoError(t, err)

	done := make(chan struct{})
	go func() {
		defer close(done)
		_ = srv.Background(ctx)
	}()

	hs := httptest.NewServer(srv.Handler)
	t.Cleanup(func() {
		srv.Close()
		hs.Close()
		cancel()
		<-done
	})

	return &testServer{URL: hs.URL, app: srv}
}

// testLogWriter adapts testing.T to io.Writer for slog.
type testLogWriter struct{ t *testing.T }

func (w testLogWriter) Write(p []byte) (int, error) {
	w.t.Helper()
	w.t.Log(string(p))
	return len(p), nil
}

func ptr[T any](v T) *T { return &v }

func discardLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

package httpserver

import (
	"context"
	"io"
	"net/http"
	"testing"
	"time"

	"github.com/atlanticdynamic/prepop/internal/config"
	"github.com/atlanticdynamic/prepop/internal/testutil"
	"github.com/robbyt/go-supervisor/runnables/httpserver"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createTestRoute(t *testing.T, path string) httpserver.Route {
	t.Helper()
	r, err := httpserver.NewRouteFromHandlerFunc("test-route", path,
		func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusOK)
			_, err := w.Write([]byte("ok"))
			assert.NoError(t, err)
		})
	require.NoError(t, err)
	return *r
}

func TestNewHTTPServer(t *testing.T) {
	t.Parallel()

	routes := []httpserver.Route{createTestRoute(t, "/test")}
	listener := config.Default().Listener
	listener.Address = "localhost:8080"

	server, err := NewHTTPServer("test-server", listener, routes, nil)
	require.NoError(t, err)
	assert.Equal(t, "test-server", server.GetID())
	assert.Equal(t, "localhost:8080", server.GetAddress())
	assert.Equal(t, "HTTPServer[test-server]", server.String())

	// New server should be in "New" state
	assert.Equal(t, "New", server.GetState())
	assert.False(t, server.IsRunning())

	cfg, err := server.buildConfig()
	require.NoError(t, err)
	assert.Equal(t, "localhost:8080", cfg.ListenAddr)
	assert.Equal(t, 10*time.Second, cfg.ReadTimeout)
	assert.Equal(t, 60*time.Second, cfg.IdleTimeout)
}

func TestHTTPServer_NilRunner(t *testing.T) {
	t.Parallel()

	server := &HTTPServer{id: "test-server"}
	assert.Equal(t, "unknown", server.GetState())
	assert.False(t, server.IsRunning())

	ctx, cancel := context.WithCancel(t.Context())
	ch := server.GetStateChan(ctx)
	require.NotNil(t, ch)
	cancel()

	_, open := <-ch
	assert.False(t, open, "Channel should be closed after context cancellation")
}

func TestHTTPServer_RunAndStop(t *testing.T) {
	t.Parallel()

	listener := config.Default().Listener
	listener.Address = testutil.GetRandomListeningPort(t)

	server, err := NewHTTPServer("run-test", listener, []httpserver.Route{createTestRoute(t, "/ping")}, nil)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(t.Context())
	defer cancel()

	errCh := make(chan error, 1)
	go func() { errCh <- server.Run(ctx) }()

	require.Eventually(t, server.IsRunning, 5*time.Second, 10*time.Millisecond)

	var resp *http.Response
	require.Eventually(t, func() bool {
		resp, err = http.Get("http://" + listener.Address + "/ping")
		return err == nil
	}, 5*time.Second, 20*time.Millisecond)
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.NoError(t, resp.Body.Close())
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "ok", string(body))

	server.Stop()
	select {
	case <-errCh:
	case <-time.After(10 * time.Second):
		t.Fatal("server did not stop")
	}
}

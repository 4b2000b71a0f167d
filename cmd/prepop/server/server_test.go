package server

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/atlanticdynamic/prepop/internal/config"
	"github.com/atlanticdynamic/prepop/internal/logging"
	"github.com/atlanticdynamic/prepop/internal/testutil"
	"github.com/robbyt/go-loglater"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func get(t *testing.T, client *http.Client, url string) (*http.Response, string) {
	t.Helper()
	resp, err := client.Get(url)
	require.NoError(t, err)
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.NoError(t, resp.Body.Close())
	return resp, string(body)
}

func TestRun(t *testing.T) {
	cfg := config.Default()
	cfg.Listener.Address = testutil.GetRandomListeningPort(t)
	baseURL := "http://" + cfg.Listener.Address

	var logs testutil.ThreadSafeBuffer
	logger := slog.New(logging.SetupHandlerJSON("debug", &logs))

	ctx, cancel := context.WithCancel(t.Context())
	defer cancel()

	errCh := make(chan error, 1)
	go func() {
		errCh <- Run(ctx, logger, cfg)
	}()

	client := &http.Client{Timeout: 2 * time.Second}
	require.Eventually(t, func() bool {
		resp, err := client.Get(baseURL + "/api/state")
		if err != nil {
			return false
		}
		_ = resp.Body.Close()
		return resp.StatusCode == http.StatusOK
	}, 5*time.Second, 50*time.Millisecond, "server did not come up")

	resp, body := get(t, client, baseURL+"/surname?pre-populate")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "no-store", resp.Header.Get("Cache-Control"))
	assert.Equal(t, "nosniff", resp.Header.Get("X-Content-Type-Options"))
	assert.Contains(t, body, "Burford")

	resp, body = get(t, client, baseURL+"/api/state")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var state map[string]any
	require.NoError(t, json.Unmarshal([]byte(body), &state))
	assert.Equal(t, "Martin", state["firstName"])
	assert.Equal(t, "James", state["middleName"])
	assert.Equal(t, "Burford", state["surname"])

	// a button press redirects back to the page without re-running the sequence
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, baseURL+"/actions/SET_FIRSTNAME", strings.NewReader(""))
	require.NoError(t, err)
	req.Header.Set("Referer", baseURL+"/firstName?pre-populate")
	noFollow := &http.Client{
		Timeout: 2 * time.Second,
		CheckRedirect: func(*http.Request, []*http.Request) error {
			return http.ErrUseLastResponse
		},
	}
	resp, err = noFollow.Do(req)
	require.NoError(t, err)
	require.NoError(t, resp.Body.Close())
	assert.Equal(t, http.StatusSeeOther, resp.StatusCode)
	assert.Equal(t, "/firstName", resp.Header.Get("Location"))

	cancel()
	select {
	case err := <-errCh:
		assert.NoError(t, err)
	case <-time.After(10 * time.Second):
		t.Fatal("server did not shut down")
	}

	output := logs.String()
	assert.Contains(t, output, `"msg":"Starting prepop"`)
	assert.Contains(t, output, `"msg":"Pre-populated from URL"`)
	assert.Contains(t, output, `"msg":"Batch applied"`)
	assert.Contains(t, output, `"msg":"HTTP request"`)
}

func TestRun_InvalidTable(t *testing.T) {
	t.Parallel()

	cfg := config.Default()
	cfg.Routes["broken"] = []string{"SET_MISSING"}

	err := Run(t.Context(), slog.New(loglater.NewLogCollector(nil)), cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to create resolver")
}

func TestRun_NilConfig(t *testing.T) {
	t.Parallel()

	err := Run(t.Context(), slog.Default(), nil)
	require.ErrorIs(t, err, config.ErrFailedToValidateConfig)
}

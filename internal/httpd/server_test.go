package httpd

import (
	"io"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/cnelsonsic/blueblazer/internal/config"
)

func TestServerStartAndStop(t *testing.T) {
	logger := zaptest.NewLogger(t)
	cfg := config.HTTPConfig{
		Host:            "127.0.0.1",
		Port:            0, // random port
		ReadTimeout:     5 * time.Second,
		WriteTimeout:    5 * time.Second,
		ShutdownTimeout: 5 * time.Second,
	}

	srv := NewServer(cfg, newTestRouter(t), logger)

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()

	// Wait for the server to start listening
	deadline := time.After(2 * time.Second)
	for {
		if srv.IsRunning() && srv.Addr() != "" {
			break
		}
		select {
		case <-deadline:
			t.Fatal("server did not start in time")
		default:
			time.Sleep(10 * time.Millisecond)
		}
	}

	addr := srv.Addr()
	require.NotEmpty(t, addr)

	client := &http.Client{Timeout: 2 * time.Second}

	resp, err := client.Get("http://" + addr + "/health")
	require.NoError(t, err)
	body, err := io.ReadAll(resp.Body)
	resp.Body.Close()
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, string(body), "ok")

	resp, err = client.Get("http://" + addr + "/?seed=7")
	require.NoError(t, err)
	body, err = io.ReadAll(resp.Body)
	resp.Body.Close()
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, string(body), "Grab a")

	// Stop server
	srv.Stop()

	select {
	case err := <-errCh:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not stop in time")
	}

	assert.False(t, srv.IsRunning())
}

func TestServerStopBeforeStart(t *testing.T) {
	logger := zaptest.NewLogger(t)
	cfg := config.HTTPConfig{Host: "127.0.0.1", Port: 0, ShutdownTimeout: time.Second}

	srv := NewServer(cfg, newTestRouter(t), logger)

	// Stop on a server that never started must be a no-op.
	srv.Stop()
	assert.False(t, srv.IsRunning())
}

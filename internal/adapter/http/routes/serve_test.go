package routes

import (
	"context"
	"gestao_comercial/pkg/config"
	"gestao_comercial/pkg/logger"
	"net/http"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func quietLogger() *logger.Logger {
	return logger.New(logger.Config{Env: "test", Level: "error"})
}

func waitRun(t *testing.T, done <-chan error) error {
	t.Helper()
	select {
	case err := <-done:
		return err
	case <-time.After(3 * time.Second):
		t.Fatal("server still running 3s after the context was cancelled")
		return nil
	}
}

func TestRun_StopsWhenContextIsCancelled(t *testing.T) {
	gin.SetMode(gin.TestMode)
	cfg := &config.Config{
		Store: config.StoreConfig{Driver: "memory"},
		JWT:   config.JWTConfig{Secret: testSecret},
		HTTP:  config.HTTPConfig{Host: "127.0.0.1", Port: 0},
	}

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- Run(ctx, cfg, quietLogger()) }()

	time.Sleep(200 * time.Millisecond)
	cancel()

	assert.NoError(t, waitRun(t, done))
}

func TestRunRelay_StopsWhenContextIsCancelled(t *testing.T) {
	gin.SetMode(gin.TestMode)
	cfg := &config.Config{HTTP: config.HTTPConfig{Host: "127.0.0.1", RelayPort: 0}}

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- RunRelay(ctx, cfg, quietLogger()) }()

	time.Sleep(200 * time.Millisecond)
	cancel()

	assert.NoError(t, waitRun(t, done))
}

func TestServe_ReportsListenFailure(t *testing.T) {
	err := serve(context.Background(), "127.0.0.1:-1", http.NotFoundHandler())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to startup the application")
}

func TestServe_ServesUntilCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- serve(ctx, "127.0.0.1:18097", http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusNoContent)
		}))
	}()

	require.Eventually(t, func() bool {
		resp, err := http.Get("http://127.0.0.1:18097/")
		if err != nil {
			return false
		}
		resp.Body.Close()
		return resp.StatusCode == http.StatusNoContent
	}, 2*time.Second, 20*time.Millisecond)

	cancel()
	assert.NoError(t, waitRun(t, done))
}

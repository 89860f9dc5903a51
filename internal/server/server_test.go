package server

import (
	"context"
	"net"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func freePort(t *testing.T) string {
	t.Helper()
	l, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer l.Close()
	_, port, err := net.SplitHostPort(l.Addr().String())
	require.NoError(t, err)
	return port
}

func TestNewServer_Memory(t *testing.T) {
	t.Setenv("STORAGE_DRIVER", "memory")
	t.Setenv("SERVER_MODE", "test")

	srv, err := NewServer(context.Background(), "")
	require.NoError(t, err)

	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/courses/", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, rec.Body.String())
}

func TestNewServer_Seed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	yml := "storage:\n  driver: memory\n  seed: [Math, Physics]\nserver:\n  mode: test\n"
	require.NoError(t, os.WriteFile(path, []byte(yml), 0o600))

	srv, err := NewServer(context.Background(), path)
	require.NoError(t, err)

	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/courses/", nil))
	assert.JSONEq(t, `[{"id":1,"name":"Math"},{"id":2,"name":"Physics"}]`, rec.Body.String())
}

func TestServer_RunAndShutdown(t *testing.T) {
	port := freePort(t)
	t.Setenv("STORAGE_DRIVER", "memory")
	t.Setenv("SERVER_MODE", "test")
	t.Setenv("SERVER_PORT", port)

	srv, err := NewServer(context.Background(), "")
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- srv.Run(ctx) }()

	require.Eventually(t, func() bool {
		resp, err := http.Get("http://127.0.0.1:" + port + "/ping")
		if err != nil {
			return false
		}
		resp.Body.Close()
		return resp.StatusCode == http.StatusOK
	}, 5*time.Second, 50*time.Millisecond)

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not stop")
	}
}

package tui

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSSHServer(t *testing.T) {
	dir := t.TempDir()
	cfg := SSHServerConfig{
		Address:        "127.0.0.1:0",
		HostKeyPath:    filepath.Join(dir, "keys", "host_ed25519"),
		DBPath:         filepath.Join(dir, "slide.db"),
		IdleTimeout:    time.Minute,
		MetricsAddress: "127.0.0.1:0",
		LogLevel:       log.ErrorLevel,
	}

	srv, err := NewSSHServer(cfg)
	require.NoError(t, err)

	assert.Equal(t, "127.0.0.1:0", srv.Addr())
	require.NotNil(t, srv.Metrics())
	require.NotNil(t, srv.metricsServer)
	assert.NotNil(t, srv.store, "database opened")

	_, err = os.Stat(cfg.HostKeyPath)
	assert.NoError(t, err, "host key generated")

	// The metrics mux serves the registry
	rec := httptest.NewRecorder()
	srv.metricsServer.Handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "slide_ssh_active_sessions")

	assert.NoError(t, srv.Shutdown())
}

func TestNewSSHServerWithoutMetrics(t *testing.T) {
	dir := t.TempDir()
	srv, err := NewSSHServer(SSHServerConfig{
		Address:     "127.0.0.1:0",
		HostKeyPath: filepath.Join(dir, "host_ed25519"),
		DBPath:      filepath.Join(dir, "slide.db"),
		LogLevel:    log.ErrorLevel,
	})
	require.NoError(t, err)
	assert.Nil(t, srv.metricsServer)
	assert.NoError(t, srv.Shutdown())
}

package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/slide/internal/platform/tui"
)

var (
	flagSSHAddr     string
	flagHostKey     string
	flagIdleTimeout int
	flagMetrics     string
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the slide SSH server",
	Long: `Start an SSH server that allows users to connect and play.

Each SSH connection gets its own session with a campaign menu.
Best moves are stored per-server (all users share the same board).

Host key handling:
  - If --host-key is provided, uses that key file
  - Otherwise, uses ssh.host_key_path from the config, generating it if missing

Examples:
  slide serve                           # Listen on the configured address
  slide serve --ssh :2223               # Listen on port 2223
  slide serve --host-key ./my_host_key  # Use specific host key
  slide serve --metrics :9090           # Expose Prometheus metrics

Users can connect with:
  ssh localhost -p 2222`,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", "", "SSH server address (host:port, default from config)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file (default from config)")
	serveCmd.Flags().IntVar(&flagIdleTimeout, "idle-timeout", 0, "Idle timeout in minutes before disconnecting (default from config)")
	serveCmd.Flags().StringVar(&flagMetrics, "metrics", "", "Address for the Prometheus /metrics endpoint (default from config)")
}

func runServe(_ *cobra.Command, _ []string) error {
	level, err := appConfig.LogLevel()
	if err != nil {
		return err
	}

	cfg := tui.SSHServerConfig{
		Address:        firstNonEmpty(flagSSHAddr, appConfig.SSH.Address),
		HostKeyPath:    firstNonEmpty(flagHostKey, appConfig.SSH.HostKeyPath),
		DBPath:         appConfig.Storage.Path,
		IdleTimeout:    appConfig.SSH.IdleTimeout(),
		MetricsAddress: firstNonEmpty(flagMetrics, appConfig.Metrics.Address),
		LogLevel:       level,
		Theme:          theme(),
	}
	if flagIdleTimeout > 0 {
		cfg.IdleTimeout = time.Duration(flagIdleTimeout) * time.Minute
	}

	server, err := tui.NewSSHServer(cfg)
	if err != nil {
		return fmt.Errorf("creating server: %w", err)
	}

	fmt.Printf("Starting slide SSH server on %s\n", server.Addr())
	if cfg.MetricsAddress != "" {
		fmt.Printf("Metrics on http://%s/metrics\n", cfg.MetricsAddress)
	}
	fmt.Println("Press Ctrl+C to stop")

	return server.ListenAndServe()
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

// Package tui provides the terminal front end: the play model, menus, the
// best-moves board and SSH server support via Wish.
package tui

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/charmbracelet/ssh"
	"github.com/charmbracelet/wish"
	"github.com/charmbracelet/wish/bubbletea"
	"github.com/google/uuid"

	"github.com/vovakirdan/slide/internal/core"
	"github.com/vovakirdan/slide/internal/games/slide/levels"
	"github.com/vovakirdan/slide/internal/metrics"
	"github.com/vovakirdan/slide/internal/registry"
	"github.com/vovakirdan/slide/internal/storage"
)

// SSHServerConfig holds configuration for the SSH server.
type SSHServerConfig struct {
	// Address is the host:port to listen on (e.g., ":2222").
	Address string

	// HostKeyPath is the path to the host key file.
	// If empty, a key will be auto-generated at ~/.slide/host_key.
	HostKeyPath string

	// DBPath is the path to the best moves database.
	DBPath string

	// IdleTimeout is how long to wait before closing idle connections.
	IdleTimeout time.Duration

	// MetricsAddress serves /metrics when set (e.g., ":9090").
	MetricsAddress string

	LogLevel log.Level
	Theme    *Theme
}

// DefaultSSHServerConfig returns a config with sensible defaults.
func DefaultSSHServerConfig() SSHServerConfig {
	return SSHServerConfig{
		Address:     ":2222",
		DBPath:      "~/.slide/slide.db",
		IdleTimeout: 30 * time.Minute,
		LogLevel:    log.InfoLevel,
	}
}

type contextKey string

const sessionIDKey contextKey = "slide-session-id"

// SSHServer wraps a Wish SSH server for slide.
type SSHServer struct {
	config        SSHServerConfig
	server        *ssh.Server
	metricsServer *http.Server
	store         *storage.Store
	metrics       *metrics.Metrics
	logger        *log.Logger
}

// NewSSHServer creates a new SSH server with the given configuration.
func NewSSHServer(cfg SSHServerConfig) (*SSHServer, error) {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "slide-ssh",
		Level:           cfg.LogLevel,
	})

	// Continue without storage if the database cannot be opened
	store, err := storage.Open(cfg.DBPath)
	if err != nil {
		logger.Warn("could not open best moves database", "error", err)
		store = nil
	}

	srv := &SSHServer{
		config:  cfg,
		store:   store,
		metrics: metrics.New(),
		logger:  logger,
	}

	hostKeyPath := cfg.HostKeyPath
	if hostKeyPath == "" {
		home, homeErr := os.UserHomeDir()
		if homeErr != nil {
			return nil, fmt.Errorf("cannot get home directory: %w", homeErr)
		}
		hostKeyPath = filepath.Join(home, ".slide", "host_key")
	}

	hostKeyDir := filepath.Dir(hostKeyPath)
	if mkdirErr := os.MkdirAll(hostKeyDir, 0o700); mkdirErr != nil {
		return nil, fmt.Errorf("cannot create host key directory: %w", mkdirErr)
	}

	opts := []ssh.Option{
		wish.WithAddress(cfg.Address),
		wish.WithHostKeyPath(hostKeyPath),
		wish.WithIdleTimeout(cfg.IdleTimeout),
		wish.WithMiddleware(
			bubbletea.Middleware(srv.teaHandler),
			srv.loggingMiddleware,
		),
	}

	server, err := wish.NewServer(opts...)
	if err != nil {
		if store != nil {
			store.Close()
		}
		return nil, fmt.Errorf("cannot create SSH server: %w", err)
	}
	srv.server = server

	if cfg.MetricsAddress != "" {
		mux := http.NewServeMux()
		mux.Handle("/metrics", srv.metrics.Handler())
		srv.metricsServer = &http.Server{
			Addr:              cfg.MetricsAddress,
			Handler:           mux,
			ReadHeaderTimeout: 5 * time.Second,
		}
	}

	return srv, nil
}

// teaHandler creates a Bubble Tea program for each SSH session.
func (s *SSHServer) teaHandler(sshSession ssh.Session) (tea.Model, []tea.ProgramOption) {
	pty, _, ok := sshSession.Pty()
	if !ok {
		s.logger.Warn("no PTY requested", "user", sshSession.User())
		return nil, nil
	}

	sessionID, _ := sshSession.Context().Value(sessionIDKey).(string)
	cfg := core.RuntimeConfig{
		ScreenW: pty.Window.Width,
		ScreenH: pty.Window.Height,
	}

	deps := sessionDeps{
		store:   s.store,
		metrics: s.metrics,
		logger:  s.logger.With("session", sessionID),
		theme:   s.config.Theme,
	}

	return NewSessionModel(deps, cfg, sshSession.User()), []tea.ProgramOption{
		tea.WithAltScreen(),
	}
}

// loggingMiddleware logs SSH session events and tracks active sessions.
func (s *SSHServer) loggingMiddleware(next ssh.Handler) ssh.Handler {
	return func(sshSession ssh.Session) {
		sessionID := uuid.NewString()
		sshSession.Context().SetValue(sessionIDKey, sessionID)

		s.metrics.SessionStarted()
		s.logger.Info("session started",
			"session", sessionID,
			"user", sshSession.User(),
			"remote", sshSession.RemoteAddr().String(),
		)

		next(sshSession)

		s.metrics.SessionEnded()
		s.logger.Info("session ended",
			"session", sessionID,
			"user", sshSession.User(),
			"remote", sshSession.RemoteAddr().String(),
		)
	}
}

// ListenAndServe starts the SSH server and blocks until shutdown.
func (s *SSHServer) ListenAndServe() error {
	s.logger.Info("starting SSH server", "address", s.config.Address)

	// Setup signal handling for graceful shutdown
	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)

	go func() {
		if err := s.server.ListenAndServe(); err != nil && !errors.Is(err, ssh.ErrServerClosed) {
			s.logger.Error("server error", "error", err)
		}
	}()

	if s.metricsServer != nil {
		s.logger.Info("serving metrics", "address", s.config.MetricsAddress)
		go func() {
			if err := s.metricsServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				s.logger.Error("metrics server error", "error", err)
			}
		}()
	}

	<-done
	s.logger.Info("shutting down...")
	return s.Shutdown()
}

// Shutdown gracefully stops the server.
func (s *SSHServer) Shutdown() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	var errs []error
	if s.metricsServer != nil {
		errs = append(errs, s.metricsServer.Shutdown(ctx))
	}
	errs = append(errs, s.server.Shutdown(ctx))

	if s.store != nil {
		s.store.Close()
	}

	return errors.Join(errs...)
}

// Addr returns the server's listen address string.
func (s *SSHServer) Addr() string {
	return s.config.Address
}

// Metrics returns the server metrics.
func (s *SSHServer) Metrics() *metrics.Metrics {
	return s.metrics
}

// sessionDeps are the collaborators shared by all sessions.
type sessionDeps struct {
	store   *storage.Store
	metrics *metrics.Metrics
	logger  *log.Logger
	theme   *Theme
}

type sessionState int

const (
	stateMenu sessionState = iota
	stateLevels
	stateGame
	stateBests
)

// SessionModel manages the full session flow: menu -> levels -> game -> menu.
// This is the top-level model used for SSH sessions.
type SessionModel struct {
	deps     sessionDeps
	config   core.RuntimeConfig
	username string
	state    sessionState
	menu     MenuModel
	levels   LevelSelectModel
	bests    BestsModel
	play     Model
	game     registry.Game
	quitting bool
}

// NewSessionModel creates a new session model.
func NewSessionModel(deps sessionDeps, cfg core.RuntimeConfig, username string) SessionModel {
	if deps.logger == nil {
		deps.logger = log.NewWithOptions(os.Stderr, log.Options{Level: log.WarnLevel})
	}
	return SessionModel{
		deps:     deps,
		config:   cfg,
		username: username,
		menu:     NewMenuModel(cfg),
	}
}

// Init initializes the session.
func (m SessionModel) Init() tea.Cmd {
	return m.menu.Init()
}

// Update handles messages for the session.
func (m SessionModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	// Handle window resize globally
	if wsm, ok := msg.(tea.WindowSizeMsg); ok {
		m.config.ScreenW = wsm.Width
		m.config.ScreenH = wsm.Height
	}

	switch m.state {
	case stateLevels:
		return m.updateLevels(msg)
	case stateGame:
		return m.updateGame(msg)
	case stateBests:
		return m.updateBests(msg)
	default:
		return m.updateMenu(msg)
	}
}

// toMenu returns to a fresh game picker.
func (m SessionModel) toMenu() (tea.Model, tea.Cmd) {
	m.state = stateMenu
	m.game = nil
	m.menu = NewMenuModel(m.config)
	return m, m.menu.Init()
}

// bestsFor returns the best-move collaborator of a game, nil without a store.
func (m SessionModel) bestsFor(gameID string) core.BestScores {
	if m.deps.store == nil {
		return nil
	}
	return m.deps.store.Bests(gameID)
}

// updateMenu handles updates when in menu mode.
func (m SessionModel) updateMenu(msg tea.Msg) (tea.Model, tea.Cmd) {
	newMenu, cmd := m.menu.Update(msg)
	if menuModel, ok := newMenu.(MenuModel); ok {
		m.menu = menuModel
	}

	if m.menu.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}

	if m.menu.WantsBests() {
		m.state = stateBests
		m.bests = NewBestsModel(m.deps.store, m.config.ScreenW, m.config.ScreenH)
		return m, m.bests.Init()
	}

	if selected := m.menu.Selected(); selected != nil {
		game, err := registry.Create(selected.GameID)
		if err != nil {
			// Shouldn't happen since menu only shows registered games
			m.deps.logger.Error("cannot create game", "game", selected.GameID, "error", err)
			return m.toMenu()
		}
		m.game = game
		m.config = m.menu.Config()
		m.deps.logger.Info("game selected", "user", m.username, "game", game.ID())

		if cg, ok := game.(interface{ Campaign() *levels.Campaign }); ok {
			m.state = stateLevels
			m.levels = NewLevelSelectModel(cg.Campaign(), m.bestsFor(game.ID()), m.config.ScreenW, m.config.ScreenH)
			return m, m.levels.Init()
		}
		return m.startGame(0)
	}

	return m, cmd
}

// updateLevels handles updates when choosing a level.
func (m SessionModel) updateLevels(msg tea.Msg) (tea.Model, tea.Cmd) {
	newLevels, cmd := m.levels.Update(msg)
	if levelsModel, ok := newLevels.(LevelSelectModel); ok {
		m.levels = levelsModel
	}

	switch {
	case m.levels.IsQuitting():
		m.quitting = true
		return m, tea.Quit
	case m.levels.WantsBack():
		return m.toMenu()
	case m.levels.Selected() > 0:
		return m.startGame(m.levels.Selected())
	}

	return m, cmd
}

// startGame switches to the play model at a 1-based level.
func (m SessionModel) startGame(level int) (tea.Model, tea.Cmd) {
	cfg := m.config
	cfg.Level = level

	m.play = NewModel(m.game, cfg, Options{
		Store:    m.deps.store,
		Logger:   m.deps.logger,
		Metrics:  m.deps.metrics,
		Theme:    m.deps.theme,
		Embedded: true,
	})
	m.state = stateGame
	return m, m.play.Init()
}

// updateGame handles updates when in game mode.
func (m SessionModel) updateGame(msg tea.Msg) (tea.Model, tea.Cmd) {
	newModel, cmd := m.play.Update(msg)
	if playModel, ok := newModel.(Model); ok {
		m.play = playModel
	}

	if m.play.BackToMenu() {
		return m.toMenu()
	}

	if m.play.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}

	return m, cmd
}

// updateBests handles updates on the best moves board.
func (m SessionModel) updateBests(msg tea.Msg) (tea.Model, tea.Cmd) {
	newBests, cmd := m.bests.Update(msg)
	if bestsModel, ok := newBests.(BestsModel); ok {
		m.bests = bestsModel
	}

	switch {
	case m.bests.IsQuitting():
		m.quitting = true
		return m, tea.Quit
	case m.bests.IsGoingBack():
		return m.toMenu()
	}

	return m, cmd
}

// View renders the current view.
func (m SessionModel) View() string {
	if m.quitting {
		return ""
	}

	switch m.state {
	case stateLevels:
		return m.levels.View()
	case stateGame:
		return m.play.View()
	case stateBests:
		return m.bests.View()
	default:
		return m.menu.View()
	}
}

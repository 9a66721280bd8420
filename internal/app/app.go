package app

import (
	"errors"
	"io"
	"log/slog"

	"github.com/google/uuid"

	"github.com/katalvlaran/stationreach/config"
)

// ErrNoInput indicates Run was called without an extract path.
var ErrNoInput = errors.New("app: no input extract")

// App owns one run: its resolved configuration, its logger and its id.
type App struct {
	stdout io.Writer
	logger *slog.Logger
	runID  string
	opts   Config
	cfg    config.Config
}

// New resolves opts into a validated configuration. Data goes to stdout
// (unless opts.Output names a file); diagnostics go to logW.
func New(stdout, logW io.Writer, opts Config) (*App, error) {
	cfg, err := opts.resolve()
	if err != nil {
		return nil, err
	}

	runID := uuid.New().String()
	logger := newLogger(opts.LogLevel, opts.LogFormat, logW).With("run_id", runID)
	logger.Debug("configuration resolved",
		"config", opts.ConfigPath, "gap_policy", cfg.Routing.Gap.String(),
		"queue", cfg.Routing.Queue.String(), "unreachable", cfg.Routing.Unreachable,
		"capture_radius", cfg.Routing.CaptureRadius, "allow_proposed", cfg.Routing.AllowProposed)

	return &App{stdout: stdout, logger: logger, runID: runID, opts: opts, cfg: cfg}, nil
}

// Settings returns the resolved configuration.
func (a *App) Settings() config.Config { return a.cfg }

// RunID returns the id attached to every log line and export row.
func (a *App) RunID() string { return a.runID }

package app

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/rs/zerolog"

	"github.com/kmoran/logoticker/internal/config"
	"github.com/kmoran/logoticker/internal/diag"
	"github.com/kmoran/logoticker/internal/prefs"
	"github.com/kmoran/logoticker/internal/state"
	"github.com/kmoran/logoticker/internal/ticker"
	"github.com/kmoran/logoticker/internal/ui"
)

// Options configure the logoticker application.
type Options struct {
	ConfigPath string
	PrefsPath  string // empty uses default ~/.config/logoticker/prefs.toml
	PollEvery  int    // seconds; zero uses the configured default
}

// Run boots the TUI until the context is cancelled.
func Run(ctx context.Context, opts Options) error {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	userPrefs := prefs.Load(opts.PrefsPath)

	diagBuf := diag.NewBuffer(0)
	logger := newLogger(diagBuf)

	// The component is registered explicitly at startup; a duplicate
	// registration means Run was invoked twice in one process, which is
	// harmless here.
	if err := ticker.Register(); err != nil {
		logger.Debug().Err(err).Msg("component registration skipped")
	}

	attrs := cfg.Attributes()
	if cfg.LogoPath != "" {
		data, err := os.ReadFile(cfg.LogoPath)
		if err != nil {
			logger.Warn().Err(err).Str("path", cfg.LogoPath).Msg("logo data file unreadable, using fallback set")
		} else {
			attrs[ticker.AttrData] = string(data)
		}
	}

	interval := time.Duration(cfg.PollSeconds) * time.Second
	if opts.PollEvery > 0 {
		interval = time.Duration(opts.PollEvery) * time.Second
	}

	store := &state.Store{}
	if cfg.LogoPath != "" {
		StartPoller(ctx, store, cfg.LogoPath, interval, attrs[ticker.AttrData], logger)
	}

	uiOpts := ui.Options{
		Context:           ctx,
		Store:             store,
		Diagnostics:       diagBuf,
		InitialAttributes: attrs,
		ReducedMotion:     cfg.ReducedMotion,
		PollTick:          interval,
		ThemeName:         userPrefs.Theme,
		PrefsPath:         opts.PrefsPath,
		Logger:            logger,
	}
	return ui.Run(uiOpts)
}

// newLogger routes diagnostics to the in-memory buffer shown in the UI and,
// when possible, to a log file. Stderr is off limits while the TUI owns the
// terminal.
func newLogger(buf *diag.Buffer) zerolog.Logger {
	writers := []io.Writer{zerolog.ConsoleWriter{Out: buf, NoColor: true}}
	if file, err := openLogFile(); err == nil {
		writers = append(writers, file)
	}
	return zerolog.New(zerolog.MultiLevelWriter(writers...)).With().Timestamp().Logger()
}

func openLogFile() (*os.File, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return nil, err
	}
	dir := filepath.Join(home, ".local", "state", "logoticker")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return os.OpenFile(filepath.Join(dir, "logoticker.log"), os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
}

package app

import (
	"context"
	"fmt"
	"io"
	"slices"
	"time"

	"github.com/five82/cinematch/internal/config"
	"github.com/five82/cinematch/internal/logging"
	"github.com/five82/cinematch/internal/prefs"
	"github.com/five82/cinematch/internal/recommend"
	"github.com/five82/cinematch/internal/state"
	"github.com/five82/cinematch/internal/ui"
)

// Options configure the cinematch application.
type Options struct {
	ConfigPath string
	PrefsPath  string // empty uses default ~/.config/cinematch/prefs.toml
	APIURL     string // overrides api_url from the config file
	PollEvery  int    // seconds; zero uses the configured interval
}

// Run boots the cinematch TUI until the context is cancelled.
func Run(ctx context.Context, opts Options) error {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if opts.APIURL != "" {
		cfg.APIURL = opts.APIURL
	}
	if opts.PollEvery > 0 {
		cfg.PollInterval = time.Duration(opts.PollEvery) * time.Second
	}

	logPath, closeLog := setupLogging(cfg)
	defer closeLog()

	userPrefs, err := prefs.Load(opts.PrefsPath)
	if err != nil {
		logging.Warn().Err(err).Msg("using default preferences")
	}
	if !slices.Contains(ui.ThemeNames(), userPrefs.Theme) {
		logging.Warn().Str("theme", userPrefs.Theme).Msg("unknown theme, using default")
		userPrefs.Theme = prefs.DefaultTheme
	}

	var clientOpts []recommend.Option
	if cfg.RequestTimeout > 0 {
		clientOpts = append(clientOpts, recommend.WithTimeout(cfg.RequestTimeout))
	}
	client, err := recommend.NewClient(cfg.APIURL, clientOpts...)
	if err != nil {
		return fmt.Errorf("init recommendation client: %w", err)
	}

	logging.Info().
		Str("api_url", client.BaseURL()).
		Dur("poll_interval", cfg.PollInterval).
		Str("theme", userPrefs.Theme).
		Msg("cinematch starting")

	// A zero interval turns health checks off and hides the indicator.
	var store *state.Store
	if cfg.PollInterval > 0 {
		store = &state.Store{}
		StartPoller(ctx, store, client, cfg.PollInterval)
	}

	uiOpts := ui.Options{
		Context:   ctx,
		API:       client,
		BaseURL:   client.BaseURL(),
		Store:     store,
		ThemeName: userPrefs.Theme,
		PrefsPath: opts.PrefsPath,
		LogPath:   logPath,
	}
	err = ui.Run(uiOpts)
	logging.Info().Err(err).Msg("cinematch stopped")
	return err
}

// setupLogging points the package logger at the configured file. When the
// file cannot be opened logging is discarded and the returned path is empty.
func setupLogging(cfg config.Config) (string, func()) {
	file, err := logging.OpenFile(cfg.LogFile)
	if err != nil {
		logging.Init(logging.Config{Level: cfg.LogLevel, Output: io.Discard})
		return "", func() {}
	}
	logging.Init(logging.Config{Level: cfg.LogLevel, Output: file})
	return cfg.LogFile, func() { _ = file.Close() }
}

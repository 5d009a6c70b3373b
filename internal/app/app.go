package app

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/five82/kiosk/internal/catalog"
	"github.com/five82/kiosk/internal/config"
	"github.com/five82/kiosk/internal/nav"
	"github.com/five82/kiosk/internal/prefs"
	"github.com/five82/kiosk/internal/state"
	"github.com/five82/kiosk/internal/ui"
)

// Options configure the kiosk application. Non-empty fields override the
// values loaded from the config file and environment.
type Options struct {
	ConfigPath string
	PrefsPath  string // empty uses default ~/.config/kiosk/prefs.toml
	BaseURL    string
	StartPath  string
}

// Run boots the kiosk TUI until the user quits or the context is cancelled.
func Run(ctx context.Context, opts Options) error {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	applyOverrides(&cfg, opts)

	closeLog, err := setupLogging(cfg)
	if err != nil {
		return err
	}
	defer closeLog()

	userPrefs := prefs.Load(opts.PrefsPath)

	client, err := catalog.NewClient(catalog.Options{
		BaseURL:   cfg.BaseURL,
		UserAgent: cfg.UserAgent,
		Timeout:   cfg.RequestTimeout,
	})
	if err != nil {
		return fmt.Errorf("init catalog client: %w", err)
	}

	router, err := nav.NewRouter(cfg.StartPath)
	if err != nil {
		return fmt.Errorf("start path: %w", err)
	}

	log.Printf("kiosk starting: api=%s path=%s", client.BaseURL(), router.Current().Path())

	return ui.Run(ui.Options{
		Context:   ctx,
		Fetcher:   client,
		Navigator: router,
		Store:     &state.Store{},
		BaseURL:   client.BaseURL(),
		ThemeName: userPrefs.Theme,
		PrefsPath: opts.PrefsPath,
		LogPath:   cfg.LogFile,
	})
}

func applyOverrides(cfg *config.Config, opts Options) {
	if v := strings.TrimSpace(opts.BaseURL); v != "" {
		cfg.BaseURL = v
	}
	if v := strings.TrimSpace(opts.StartPath); v != "" {
		cfg.StartPath = v
	}
}

// setupLogging sends the standard logger to the configured file, since the
// terminal belongs to the UI. Without a log file, output is discarded.
func setupLogging(cfg config.Config) (func(), error) {
	if !cfg.LoggingEnabled() {
		log.SetOutput(io.Discard)
		return func() {}, nil
	}
	if err := os.MkdirAll(filepath.Dir(cfg.LogFile), 0o755); err != nil {
		return nil, fmt.Errorf("create log dir: %w", err)
	}
	f, err := tea.LogToFile(cfg.LogFile, "kiosk")
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}
	return func() { _ = f.Close() }, nil
}

package app

import (
	"context"
	"fmt"
	"time"

	"github.com/jetsetgo/kiosk/internal/config"
	"github.com/jetsetgo/kiosk/internal/files"
	"github.com/jetsetgo/kiosk/internal/prefs"
	"github.com/jetsetgo/kiosk/internal/printer"
	"github.com/jetsetgo/kiosk/internal/session"
	"github.com/jetsetgo/kiosk/internal/state"
	"github.com/jetsetgo/kiosk/internal/ui"
)

// Options configure the kiosk application.
type Options struct {
	ConfigPath string
	PrefsPath  string // empty uses default ~/.config/kiosk/prefs.toml
	PollEvery  int    // seconds; zero uses the config value
}

// Run boots the kiosk TUI until the context is cancelled.
func Run(ctx context.Context, opts Options) error {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return fmt.Errorf("load kiosk config: %w", err)
	}

	userPrefs, _ := prefs.Load(opts.PrefsPath)

	client, err := printer.NewClient(cfg.APIBind)
	if err != nil {
		return fmt.Errorf("init printer client: %w", err)
	}

	store := &state.Store{}
	sel := &session.Selection{}

	interval := time.Duration(cfg.PollSeconds) * time.Second
	if opts.PollEvery > 0 {
		interval = time.Duration(opts.PollEvery) * time.Second
	}

	poller := NewPoller(store, client, interval)
	poller.Start(ctx)
	defer poller.Stop()

	queue, err := files.List(cfg.PrintFilesDir)
	if err != nil {
		return fmt.Errorf("list print files: %w", err)
	}

	uiOpts := ui.Options{
		Context:   ctx,
		Client:    client,
		Store:     store,
		Session:   sel,
		Config:    &cfg,
		Files:     queue,
		PollTick:  interval,
		ThemeName: userPrefs.Theme,
		PrefsPath: opts.PrefsPath,
	}
	return ui.Run(uiOpts)
}

package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"golang.org/x/term"

	"github.com/vovakirdan/pou-arcade/internal/audio/device"
	"github.com/vovakirdan/pou-arcade/internal/config"
	"github.com/vovakirdan/pou-arcade/internal/core"
	"github.com/vovakirdan/pou-arcade/internal/platform/tui"
	"github.com/vovakirdan/pou-arcade/internal/platform/window"
	"github.com/vovakirdan/pou-arcade/internal/registry"
	"github.com/vovakirdan/pou-arcade/internal/session"
	"github.com/vovakirdan/pou-arcade/internal/storage"
)

// expandHome replaces a leading ~ with the user's home directory.
func expandHome(path string) (string, error) {
	if !strings.HasPrefix(path, "~") {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("cannot expand home directory: %w", err)
	}
	return filepath.Join(home, path[1:]), nil
}

// newLogger opens the log file. The terminal host owns stdout, so logs
// never go there; if the file cannot be opened logging is discarded.
func newLogger(path, level string) (*log.Logger, func()) {
	lvl, err := log.ParseLevel(level)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: unknown log level %q, using info\n", level)
		lvl = log.InfoLevel
	}

	var w io.Writer = io.Discard
	closeFn := func() {}
	if p, err := expandHome(path); err == nil && p != "" {
		if err := os.MkdirAll(filepath.Dir(p), 0o755); err == nil {
			if f, err := os.OpenFile(p, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644); err == nil {
				w = f
				closeFn = func() { f.Close() }
			}
		}
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "pou",
		Level:           lvl,
	})
	return logger, closeFn
}

// runArcade builds a session and runs it on the selected host. With a
// non-empty gameID it starts in that minigame and leaving it quits.
func runArcade(gameID string) error {
	logger, closeLog := newLogger(flagLogFile, flagLogLevel)
	defer closeLog()

	cfg, err := config.Load(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v (using defaults)\n", err)
		logger.Warn("config not loaded", "error", err)
	}

	rt := core.RuntimeConfig{
		TickRate: flagFPS,
		Seed:     flagSeed,
	}
	if rt.Seed == 0 {
		rt.Seed = time.Now().UnixNano()
	}

	opts := session.Options{
		Settings: core.DefaultSettings(),
		Logger:   logger,
		Single:   gameID != "",
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open settings database", "error", err)
	} else {
		defer store.Close()
		opts.Store = store
		if s, err := store.LoadSettings(); err == nil {
			opts.Settings = s
		} else {
			logger.Warn("could not load settings", "error", err)
		}
	}

	snd, closeAudio := device.Start(logger)
	defer closeAudio()
	opts.Audio = snd

	ctrl := session.New(registry.CreateAll(rt, cfg), opts)
	if gameID != "" {
		if err := ctrl.Start(gameID); err != nil {
			return err
		}
	}

	logger.Info("session started", "seed", rt.Seed, "fps", rt.TickRate, "window", flagWindow, "game", gameID)

	if flagWindow {
		return window.Run(ctrl, window.Options{
			FPS:    rt.TickRate,
			WorldW: cfg.World.Width,
			WorldH: cfg.World.Height,
			Title:  "Pou",
		})
	}

	width, height := 80, 24
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width, height = w, h
	}
	return tui.Run(ctrl, tui.Options{
		FPS:    rt.TickRate,
		Width:  width,
		Height: height,
		WorldW: cfg.World.Width,
		WorldH: cfg.World.Height,
	})
}

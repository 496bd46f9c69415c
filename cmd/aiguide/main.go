package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/alexanderramin/aiguide/internal/cli"
	"github.com/alexanderramin/aiguide/internal/config"
	"github.com/alexanderramin/aiguide/internal/platform"
	"github.com/alexanderramin/aiguide/internal/session"
	"github.com/mattn/go-isatty"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg := config.Load()

	clip, err := platform.NewClipboard(cfg.Clipboard)
	if err != nil {
		return fmt.Errorf("AIGUIDE_CLIPBOARD: %w", err)
	}

	// Session events go to stderr, or to AIGUIDE_LOG_FILE so they don't
	// scribble over the alt-screen TUI.
	var observer session.Observer = session.NoopObserver{}
	if cfg.LogEvents {
		w, closeLog, err := openEventLog(cfg.LogFile)
		if err != nil {
			return err
		}
		defer closeLog()
		observer = session.NewLogObserver(w)
	}

	app := &cli.App{
		Config:    cfg,
		Clipboard: clip,
		Sharer:    platform.NoShare{},
		Observer:  observer,
	}

	// Detect interactive terminal for the TUI entrypoint.
	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	// Execute root command
	rootCmd := cli.NewRootCmd(app)
	return rootCmd.Execute()
}

func openEventLog(path string) (io.Writer, func(), error) {
	if path == "" {
		return os.Stderr, func() {}, nil
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, nil, fmt.Errorf("creating log directory: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("opening event log: %w", err)
	}
	return f, func() { _ = f.Close() }, nil
}

package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/dgilligan/folio/internal/cli"
	"github.com/dgilligan/folio/internal/config"
	"github.com/dgilligan/folio/internal/contact"
	"github.com/dgilligan/folio/internal/content"
	"github.com/dgilligan/folio/internal/db"
	"github.com/dgilligan/folio/internal/preference"
	"github.com/dgilligan/folio/internal/repository"
	"github.com/dgilligan/folio/internal/theme"
	"github.com/mattn/go-isatty"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	if err := config.LoadDotenv(); err != nil {
		return err
	}
	cfg := config.Load()

	// Observer output goes to a file beside the database so it never
	// draws over the TUI. A log that cannot be opened is skipped.
	var logw io.Writer
	if cfg.Log {
		if f, err := openLog(cfg); err == nil {
			defer f.Close()
			logw = f
		}
	}

	app, closeStore, err := buildApp(cfg, logw)
	if err != nil {
		return err
	}
	defer closeStore()

	// Detect interactive terminal for the TUI entrypoint.
	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	rootCmd := cli.NewRootCmd(app)
	return rootCmd.Execute()
}

// buildApp wires the App from cfg. Only an unreadable content file is an
// error; storage problems degrade to a store that keeps nothing.
func buildApp(cfg config.Config, logw io.Writer) (*cli.App, func(), error) {
	var prefObs preference.Observer = preference.NoopObserver{}
	if logw != nil {
		prefObs = preference.NewLogObserver(logw)
	}

	feed, err := content.Load(cfg.ContentPath)
	if err != nil {
		return nil, nil, fmt.Errorf("loading content: %w", err)
	}

	store, closeStore := openStore(cfg, prefObs)

	return &cli.App{
		Feed:    feed,
		Store:   store,
		Signal:  theme.OverrideSignal{Value: cfg.PrefersDark, Fallback: theme.TerminalSignal{Out: os.Stdout}},
		Contact: contact.NewAdapter(contact.DefaultNavigator(), contact.NewLogObserver(logw)),
		Mouse:   cfg.Mouse,
	}, closeStore, nil
}

// openStore returns the preference store for cfg and a func releasing it.
// A missing home directory or an unopenable database is reported to obs
// and leaves the theme working for this run only.
func openStore(cfg config.Config, obs preference.Observer) (preference.Store, func()) {
	if cfg.Ephemeral {
		return preference.NewMemoryStore(), func() {}
	}
	path, err := cfg.ResolveDBPath()
	if err != nil {
		return preference.UnavailableBecause(err, obs), func() {}
	}
	database, err := db.OpenDB(path)
	if err != nil {
		return preference.UnavailableBecause(fmt.Errorf("opening %s: %w", path, err), obs), func() {}
	}
	return preference.NewSQLiteStore(repository.NewSQLitePreferenceRepo(database), obs),
		func() { database.Close() }
}

func openLog(cfg config.Config) (*os.File, error) {
	dbPath, err := cfg.ResolveDBPath()
	if err != nil {
		return nil, err
	}
	path := filepath.Join(filepath.Dir(dbPath), "folio.log")
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("creating log directory: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("opening log: %w", err)
	}
	return f, nil
}

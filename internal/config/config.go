// Package config reads runtime settings from the environment.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds everything the binary needs to wire itself.
type Config struct {
	// DBPath is the SQLite file holding preferences. Empty means the
	// default under the user's home directory.
	DBPath string
	// ContentPath overrides the embedded content feed when set.
	ContentPath string
	// Log enables observer output to folio.log beside the database.
	Log bool
	// PrefersDark overrides the terminal background probe when non-nil.
	PrefersDark *bool
	// Mouse enables mouse capture in the TUI.
	Mouse bool
	// Ephemeral keeps preferences in memory only.
	Ephemeral bool
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{Mouse: true}
}

// Load reads configuration from environment variables, falling back to
// defaults for any unset or malformed values.
func Load() Config {
	cfg := DefaultConfig()

	if v := os.Getenv("FOLIO_DB"); v != "" {
		cfg.DBPath = v
	}
	if v := os.Getenv("FOLIO_CONTENT"); v != "" {
		cfg.ContentPath = v
	}
	if v := os.Getenv("FOLIO_LOG"); v != "" {
		cfg.Log, _ = strconv.ParseBool(v)
	}
	if v := os.Getenv("FOLIO_PREFERS_DARK"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			cfg.PrefersDark = &b
		}
	}
	if v := os.Getenv("FOLIO_NO_MOUSE"); v != "" {
		if off, err := strconv.ParseBool(v); err == nil {
			cfg.Mouse = !off
		}
	}
	if v := os.Getenv("FOLIO_EPHEMERAL"); v != "" {
		cfg.Ephemeral, _ = strconv.ParseBool(v)
	}

	return cfg
}

// LoadDotenv loads the given .env files (default ".env") into the process
// environment without overriding variables that are already set. Missing
// files are skipped.
func LoadDotenv(paths ...string) error {
	if len(paths) == 0 {
		paths = []string{".env"}
	}
	for _, p := range paths {
		if err := godotenv.Load(p); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return fmt.Errorf("loading %s: %w", p, err)
		}
	}
	return nil
}

// ResolveDBPath returns DBPath, or ~/.folio/folio.db when it is empty.
func (c Config) ResolveDBPath() (string, error) {
	if c.DBPath != "" {
		return c.DBPath, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("finding home directory: %w", err)
	}
	return filepath.Join(home, ".folio", "folio.db"), nil
}

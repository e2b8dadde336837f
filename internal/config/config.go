// Package config collects runtime settings from the environment.
package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/abhisek/trivia/internal/store"
)

const (
	EnvDB       = "TRIVIA_DB"
	EnvDebugLog = "TRIVIA_DEBUG_LOG"
)

// Config holds the settings the CLI hands to the app.
type Config struct {
	// DBPath is the SQLite file backing the persistence store.
	DBPath string

	// DebugLogPath receives warnings while the TUI owns the terminal.
	// Empty discards them.
	DebugLogPath string
}

// DefaultConfig returns settings with no environment applied.
func DefaultConfig() Config {
	return Config{}
}

// Load reads TRIVIA_DEBUG_LOG and resolves the DB path. A non-empty dbPath
// (the --db flag) wins over TRIVIA_DB and the XDG data directory. Only the
// directory of the chosen path is created.
func Load(dbPath string) (Config, error) {
	cfg := DefaultConfig()
	cfg.DebugLogPath = strings.TrimSpace(os.Getenv(EnvDebugLog))

	if dbPath != "" {
		if err := store.EnsureDir(dbPath); err != nil {
			return cfg, fmt.Errorf("create DB dir: %w", err)
		}
		cfg.DBPath = dbPath
		return cfg, nil
	}

	p, err := store.DefaultDBPath()
	if err != nil {
		return cfg, fmt.Errorf("resolve DB path: %w", err)
	}
	cfg.DBPath = p
	return cfg, nil
}

package cmd

import (
	"fmt"
	"io"
	"log"

	tea "charm.land/bubbletea/v2"
	"github.com/spf13/cobra"

	"github.com/abhisek/trivia/internal/app"
	"github.com/abhisek/trivia/internal/config"
	"github.com/abhisek/trivia/internal/questions"
	"github.com/abhisek/trivia/internal/store"
)

// runApp opens the store, builds dependencies, and launches the TUI.
func runApp(cmd *cobra.Command) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return fmt.Errorf("resolve config: %w", err)
	}

	logger, closeLog, err := openLogger(cfg)
	if err != nil {
		return fmt.Errorf("open debug log: %w", err)
	}
	defer closeLog()

	bank, err := questions.Default()
	if err != nil {
		return fmt.Errorf("load questions: %w", err)
	}

	st, err := store.Open(cfg.DBPath)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer st.Close()

	return app.Run(app.Options{
		KV:       st.KV(),
		Attempts: st.AttemptRepo(),
		Bank:     bank,
		Logger:   logger,
	})
}

// openLogger routes warnings to the debug log file while the TUI owns the
// terminal. Without a path they are discarded.
func openLogger(cfg config.Config) (*log.Logger, func(), error) {
	if cfg.DebugLogPath == "" {
		return log.New(io.Discard, "", 0), func() {}, nil
	}
	f, err := tea.LogToFile(cfg.DebugLogPath, "trivia")
	if err != nil {
		return nil, nil, err
	}
	return log.Default(), func() { f.Close() }, nil
}

// Package prefs owns the persisted light/dark preference.
package prefs

import (
	"context"
	"log"

	"github.com/abhisek/trivia/internal/store"
	"github.com/abhisek/trivia/internal/ui/theme"
)

// Service reads and writes the theme preference. It never touches quiz data.
type Service struct {
	kv    store.KV
	log   *log.Logger
	mode  theme.Mode
	saved bool
}

// NewService creates a Service. A nil logger uses log.Default().
func NewService(kv store.KV, logger *log.Logger) *Service {
	if logger == nil {
		logger = log.Default()
	}
	return &Service{kv: kv, log: logger, mode: theme.Dark}
}

// Hydrate loads the saved preference. saved is false when nothing usable is
// stored, in which case the caller should supply the system default.
func (s *Service) Hydrate(ctx context.Context) (theme.Mode, bool) {
	raw, found, err := s.kv.Get(ctx, store.KeyTheme)
	if err != nil {
		s.log.Printf("warning: failed to load theme: %v", err)
		return s.mode, false
	}
	if !found {
		return s.mode, false
	}
	m, ok := theme.ParseMode(raw)
	if !ok {
		s.log.Printf("warning: ignoring unknown theme %q", raw)
		return s.mode, false
	}
	s.mode = m
	s.saved = true
	return m, true
}

// SetSystemDefault adopts the terminal's appearance unless a preference was
// saved. Nothing is written.
func (s *Service) SetSystemDefault(dark bool) theme.Mode {
	if s.saved {
		return s.mode
	}
	if dark {
		s.mode = theme.Dark
	} else {
		s.mode = theme.Light
	}
	return s.mode
}

// Mode returns the current mode.
func (s *Service) Mode() theme.Mode {
	return s.mode
}

// Saved reports whether the mode came from (or was written to) the store.
func (s *Service) Saved() bool {
	return s.saved
}

// Toggle flips the mode and persists it. A failed write is logged and the
// in-memory mode still flips.
func (s *Service) Toggle(ctx context.Context) theme.Mode {
	s.mode = s.mode.Toggle()
	s.saved = true
	if err := s.kv.Set(ctx, store.KeyTheme, string(s.mode)); err != nil {
		s.log.Printf("warning: failed to save theme: %v", err)
	}
	return s.mode
}

// Reset removes the saved preference.
func (s *Service) Reset(ctx context.Context) error {
	s.saved = false
	return s.kv.Delete(ctx, store.KeyTheme)
}

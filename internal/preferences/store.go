package preferences

import (
	"fmt"
	"sync"

	apperrors "oldenfyre/internal/errors"
)

const (
	ThemeLight = "light"
	ThemeDark  = "dark"

	// DefaultTheme matches the storefront's initial render.
	DefaultTheme = ThemeDark
)

// ThemeStore holds per-visitor theme preferences. It is the server-side
// stand-in for the original browser storage: scoped to one visitor, never
// shared, and safe to lose.
type ThemeStore struct {
	mu     sync.RWMutex
	themes map[string]string
}

func NewThemeStore() *ThemeStore {
	return &ThemeStore{
		themes: make(map[string]string),
	}
}

func (s *ThemeStore) Get(visitorID string) string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if theme, ok := s.themes[visitorID]; ok {
		return theme
	}
	return DefaultTheme
}

func (s *ThemeStore) Set(visitorID, theme string) error {
	if theme != ThemeLight && theme != ThemeDark {
		return apperrors.NewValidationError("validation failed", apperrors.ValidationDetail{
			Field:   "theme",
			Message: fmt.Sprintf("theme must be %q or %q", ThemeLight, ThemeDark),
		})
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.themes[visitorID] = theme
	return nil
}

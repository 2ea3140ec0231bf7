package core

import (
	"errors"
	"fmt"
)

// Size describes the dimensions of a simulation grid.
type Size struct {
	W int
	H int
}

// Theme selects the presentation palette.
type Theme uint8

const (
	// ThemeLight is the default light presentation.
	ThemeLight Theme = iota
	// ThemeDark renders on a dark background.
	ThemeDark
)

// ErrUnknownTheme is returned when a theme name is not recognised.
var ErrUnknownTheme = errors.New("unknown theme")

// String returns the theme name used by the theme selector.
func (t Theme) String() string {
	switch t {
	case ThemeDark:
		return "dark"
	default:
		return "light"
	}
}

// ParseTheme maps a theme name to its Theme value.
func ParseTheme(name string) (Theme, error) {
	switch name {
	case "light":
		return ThemeLight, nil
	case "dark":
		return ThemeDark, nil
	}
	return ThemeLight, fmt.Errorf("%w %q", ErrUnknownTheme, name)
}

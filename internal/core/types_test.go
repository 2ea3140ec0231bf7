package core

import (
	"errors"
	"testing"
)

func TestParseTheme(t *testing.T) {
	for _, want := range []Theme{ThemeLight, ThemeDark} {
		got, err := ParseTheme(want.String())
		if err != nil || got != want {
			t.Fatalf("ParseTheme(%q) = %v, %v", want.String(), got, err)
		}
	}
	if _, err := ParseTheme("sepia"); !errors.Is(err, ErrUnknownTheme) {
		t.Fatalf("expected ErrUnknownTheme, got %v", err)
	}
}

package tui

import "testing"

func TestDetectTheme_FlagWins(t *testing.T) {
	t.Setenv("TYPESET_THEME", "light")

	if got := DetectTheme("dark"); got.Name != "dark" {
		t.Errorf("theme: got %q, want dark", got.Name)
	}
}

func TestDetectTheme_EnvFallback(t *testing.T) {
	t.Setenv("TYPESET_THEME", "light")

	if got := DetectTheme(""); got.Name != "light" {
		t.Errorf("theme: got %q, want light", got.Name)
	}
}

func TestDetectTheme_ColorFGBG(t *testing.T) {
	t.Setenv("TYPESET_THEME", "")
	t.Setenv("COLORFGBG", "0;15")

	if got := DetectTheme(""); got.Name != "light" {
		t.Errorf("theme: got %q, want light", got.Name)
	}
}

func TestDetectTheme_DefaultDark(t *testing.T) {
	t.Setenv("TYPESET_THEME", "")
	t.Setenv("COLORFGBG", "")

	if got := DetectTheme(""); got.Name != "dark" {
		t.Errorf("theme: got %q, want dark", got.Name)
	}
}

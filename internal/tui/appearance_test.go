package tui

import (
	"testing"

	"milxos/internal/prefs"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

func TestApplyAccent_ChangesRenderedOutput(t *testing.T) {
	oldProfile := lipgloss.ColorProfile()
	oldBG := lipgloss.HasDarkBackground()
	lipgloss.SetColorProfile(termenv.TrueColor)
	lipgloss.SetHasDarkBackground(true)
	t.Cleanup(func() {
		lipgloss.SetColorProfile(oldProfile)
		lipgloss.SetHasDarkBackground(oldBG)
		applyAccent(prefs.DefaultAccent)
	})

	applyAccent(prefs.AccentBlue)
	a := styleAccent().Render("x")

	applyAccent(prefs.AccentRed)
	b := styleAccent().Render("x")
	if a == b {
		t.Fatalf("expected red accent to change rendered output")
	}
	if activeAccent() != prefs.AccentRed {
		t.Fatalf("expected active accent red, got %q", activeAccent())
	}

	applyAccent(prefs.AccentBlue)
	if c := styleAccent().Render("x"); a != c {
		t.Fatalf("expected blue accent to be stable across toggles")
	}
}

func TestApplyAccent_UnknownFallsBackToDefault(t *testing.T) {
	t.Cleanup(func() { applyAccent(prefs.DefaultAccent) })

	applyAccent(prefs.AccentGreen)
	applyAccent(prefs.Accent("teal"))
	if activeAccent() != prefs.DefaultAccent {
		t.Fatalf("expected default accent, got %q", activeAccent())
	}
	if accentColor() != swatchColor(prefs.DefaultAccent.Swatch()) {
		t.Fatalf("expected default swatch")
	}
}

func TestColorFGBGIsDark(t *testing.T) {
	t.Parallel()

	cases := []struct {
		in         string
		dark, isOK bool
	}{
		{"15;0", true, true},
		{"0;15", false, true},
		{"7;default;0", true, true},
		{"", false, false},
		{"15;x", false, false},
	}
	for _, tc := range cases {
		dark, ok := colorFGBGIsDark(tc.in)
		if dark != tc.dark || ok != tc.isOK {
			t.Fatalf("colorFGBGIsDark(%q) = %v, %v; want %v, %v", tc.in, dark, ok, tc.dark, tc.isOK)
		}
	}
}

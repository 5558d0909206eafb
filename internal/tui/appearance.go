package tui

import (
	"sync"

	"milxos/internal/prefs"

	"github.com/charmbracelet/lipgloss"
)

// The accent is the one user-controlled part of the palette. It is swapped at runtime
// from the settings popover and from Preferences.OnChange, so reads go through
// accentColor().
var (
	appearanceMu  sync.RWMutex
	currentAccent = prefs.DefaultAccent
	colorAccent   = swatchColor(prefs.DefaultAccent.Swatch())
)

func swatchColor(s prefs.Swatch) lipgloss.AdaptiveColor {
	return ac(s.Light, s.Dark)
}

func applyAccent(a prefs.Accent) {
	appearanceMu.Lock()
	defer appearanceMu.Unlock()
	if !a.Valid() {
		a = prefs.DefaultAccent
	}
	currentAccent = a
	colorAccent = swatchColor(a.Swatch())
}

func accentColor() lipgloss.AdaptiveColor {
	appearanceMu.RLock()
	defer appearanceMu.RUnlock()
	return colorAccent
}

func activeAccent() prefs.Accent {
	appearanceMu.RLock()
	defer appearanceMu.RUnlock()
	return currentAccent
}

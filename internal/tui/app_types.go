package tui

import (
	"time"

	"milxos/internal/prefs"

	tea "github.com/charmbracelet/bubbletea"
)

type view int

const (
	viewProfiles view = iota
	viewLibrary
	viewProject
)

func (v view) String() string {
	switch v {
	case viewLibrary:
		return "library"
	case viewProject:
		return "project"
	default:
		return "profiles"
	}
}

type clockTickMsg struct{ t time.Time }

type flashDoneMsg struct{ seq int }

// accentChangedMsg arrives from Preferences.OnChange (possibly another goroutine).
type accentChangedMsg struct{ accent prefs.Accent }

type accentSavedMsg struct {
	accent prefs.Accent
	err    error
}

func tickClock(now func() time.Time) tea.Cmd {
	// Align to the next whole minute so the header clock flips on time.
	d := time.Until(now().Truncate(time.Minute).Add(time.Minute))
	if d <= 0 || d > time.Minute {
		d = time.Minute
	}
	return tea.Tick(d, func(t time.Time) tea.Msg { return clockTickMsg{t: t} })
}

const flashDuration = 2 * time.Second

func flashDone(seq int) tea.Cmd {
	return tea.Tick(flashDuration, func(time.Time) tea.Msg { return flashDoneMsg{seq: seq} })
}

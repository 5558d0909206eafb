package tui

import (
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// The TUI must stay readable on light and dark terminals, so every color is an
// AdaptiveColor and "faint" is only used on dark backgrounds.

func ac(light, dark string) lipgloss.AdaptiveColor {
	return lipgloss.AdaptiveColor{Light: light, Dark: dark}
}

func faintIfDark(st lipgloss.Style) lipgloss.Style {
	if lipgloss.HasDarkBackground() {
		return st.Faint(true)
	}
	return st
}

var (
	colorMuted      = ac("240", "243")
	colorSurfaceFg  = ac("235", "252")
	colorControlBg  = ac("252", "236")
	colorInputBg    = ac("254", "234")
	colorCardBorder = ac("250", "240")
	colorAccentFg   = ac("255", "235")
	colorTrophy     = ac("#a16207", "#facc15")
	colorError      = ac("160", "203")
)

func styleMuted() lipgloss.Style {
	return faintIfDark(lipgloss.NewStyle().Foreground(colorMuted))
}

func styleTitle() lipgloss.Style {
	return lipgloss.NewStyle().Bold(true).Foreground(colorSurfaceFg)
}

func styleAccent() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(accentColor())
}

func stylePill() lipgloss.Style {
	return lipgloss.NewStyle().Padding(0, 1).Background(colorControlBg).Foreground(colorSurfaceFg)
}

func styleAccentPill() lipgloss.Style {
	return lipgloss.NewStyle().Padding(0, 1).Bold(true).Background(accentColor()).Foreground(colorAccentFg)
}

// applyColorProfilePreference sets Lip Gloss's color profile for the interactive TUI.
//
// termenv.EnvColorProfile also honors CLICOLOR, which tends to disable colors inside
// a TUI; here only NO_COLOR is honored and otherwise the terminal's capability wins.
func applyColorProfilePreference() {
	if strings.TrimSpace(os.Getenv("NO_COLOR")) != "" {
		lipgloss.SetColorProfile(termenv.Ascii)
		return
	}

	profile := termenv.ColorProfile()

	// Trust TERM/COLORTERM when they claim more than the detector reports
	// (common behind the web terminal's PTY).
	term := strings.ToLower(strings.TrimSpace(os.Getenv("TERM")))
	colorterm := strings.ToLower(strings.TrimSpace(os.Getenv("COLORTERM")))
	if strings.Contains(colorterm, "truecolor") || strings.Contains(colorterm, "24bit") {
		if profile != termenv.Ascii {
			profile = termenv.TrueColor
		}
	} else if strings.Contains(term, "256color") {
		if profile == termenv.Ascii || profile == termenv.ANSI {
			profile = termenv.ANSI256
		}
	}

	lipgloss.SetColorProfile(profile)
}

// applyThemePreference configures Lip Gloss's background detection.
//
// Priority:
// 1) MILXOS_TUI_THEME=light|dark|auto
// 2) COLORFGBG heuristic ("fg;bg")
func applyThemePreference() {
	switch strings.ToLower(strings.TrimSpace(os.Getenv("MILXOS_TUI_THEME"))) {
	case "light":
		lipgloss.SetHasDarkBackground(false)
		return
	case "dark":
		lipgloss.SetHasDarkBackground(true)
		return
	}

	if dark, ok := colorFGBGIsDark(os.Getenv("COLORFGBG")); ok {
		lipgloss.SetHasDarkBackground(dark)
	}
}

// colorFGBGIsDark reads the last segment of COLORFGBG as the background palette index.
func colorFGBGIsDark(v string) (dark bool, ok bool) {
	v = strings.TrimSpace(v)
	if v == "" {
		return false, false
	}
	parts := strings.Split(v, ";")
	bg, err := strconv.Atoi(strings.TrimSpace(parts[len(parts)-1]))
	if err != nil || bg < 0 {
		return false, false
	}
	// xterm palette: 0-6 dark, 7-15 light.
	return bg < 7, true
}

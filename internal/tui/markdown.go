package tui

import (
	"os"
	"strconv"
	"strings"
	"sync"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/glamour/ansi"
	"github.com/charmbracelet/glamour/styles"
	"github.com/charmbracelet/lipgloss"
)

var (
	mdRendererMu sync.Mutex
	// Keyed by style, accent and wrap width. WithAutoStyle is avoided: it queries the
	// terminal and can block behind some PTYs.
	mdRenderers = map[string]*glamour.TermRenderer{}
)

// renderMarkdown renders md for a pane of the given width. On any renderer error the
// raw markdown is returned so the page never goes blank.
func renderMarkdown(md string, width int) string {
	md = strings.TrimSpace(md)
	if md == "" {
		return ""
	}
	if width < 10 {
		width = 10
	}

	style := markdownStyle()
	key := style + ":" + string(activeAccent()) + ":" + strconv.Itoa(width)

	mdRendererMu.Lock()
	r := mdRenderers[key]
	if r == nil {
		rr, err := glamour.NewTermRenderer(
			glamour.WithStyles(markdownStyleConfig(style)),
			glamour.WithWordWrap(width),
		)
		if err != nil {
			mdRendererMu.Unlock()
			return md
		}
		mdRenderers[key] = rr
		r = rr
	}
	mdRendererMu.Unlock()

	out, err := r.Render(md)
	if err != nil {
		return md
	}
	return strings.TrimRight(out, "\n")
}

func markdownStyleConfig(styleName string) ansi.StyleConfig {
	cfg := styles.DarkStyleConfig
	if styleName == "light" {
		cfg = styles.LightStyleConfig
	}
	applyMarkdownPalette(&cfg, styleName)
	return cfg
}

func markdownStyle() string {
	switch strings.ToLower(strings.TrimSpace(os.Getenv("MILXOS_TUI_MD_STYLE"))) {
	case "light":
		return "light"
	case "dark":
		return "dark"
	}
	// Keep markdown aligned with the TUI theme so descriptions stay readable on light terminals.
	switch strings.ToLower(strings.TrimSpace(os.Getenv("MILXOS_TUI_THEME"))) {
	case "light":
		return "light"
	case "dark":
		return "dark"
	}
	if dark, ok := colorFGBGIsDark(os.Getenv("COLORFGBG")); ok {
		if dark {
			return "dark"
		}
		return "light"
	}
	if lipgloss.HasDarkBackground() {
		return "dark"
	}
	return "light"
}

func applyMarkdownPalette(cfg *ansi.StyleConfig, styleName string) {
	headingColor := mdColor(colorSurfaceFg, styleName)
	cfg.Heading.Color = headingColor
	cfg.H1.Color = headingColor
	cfg.H2.Color = headingColor
	cfg.H3.Color = headingColor

	// Headings and strong text pick up the accent so the page matches the library tiles.
	cfg.H1.BackgroundColor = mdColor(accentColor(), styleName)
	cfg.H1.Color = mdColor(colorAccentFg, styleName)
	cfg.Strong.Color = mdColor(accentColor(), styleName)

	cfg.Text.Color = mdColor(colorSurfaceFg, styleName)
	cfg.Code.Color = mdColor(colorSurfaceFg, styleName)
	cfg.BlockQuote.Faint = mdBoolPtr(false)
}

func mdColor(c lipgloss.AdaptiveColor, styleName string) *string {
	if styleName == "light" {
		return mdStrPtr(c.Light)
	}
	return mdStrPtr(c.Dark)
}

func mdStrPtr(s string) *string { return &s }
func mdBoolPtr(b bool) *bool    { return &b }

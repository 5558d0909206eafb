package tui

import (
	"os"
	"strings"
	"sync"
)

// Some fonts (and the web terminal's default font) render emoji and box glyphs badly,
// so every icon has an ASCII fallback.

type glyphSet int

const (
	glyphSetUnicode glyphSet = iota
	glyphSetASCII
)

var (
	glyphsMu      sync.RWMutex
	currentGlyphs = glyphSetUnicode
)

func applyGlyphPreference() {
	v := strings.ToLower(strings.TrimSpace(os.Getenv("MILXOS_TUI_GLYPHS")))
	switch v {
	case "", "unicode", "utf8":
		setGlyphs(glyphSetUnicode)
	case "ascii":
		setGlyphs(glyphSetASCII)
	default:
		// Unknown value: ignore.
	}
}

func setGlyphs(gs glyphSet) {
	glyphsMu.Lock()
	currentGlyphs = gs
	glyphsMu.Unlock()
}

func glyphs() glyphSet {
	glyphsMu.RLock()
	gs := currentGlyphs
	glyphsMu.RUnlock()
	return gs
}

func pick(unicode, ascii string) string {
	if glyphs() == glyphSetASCII {
		return ascii
	}
	return unicode
}

func glyphBack() string     { return pick("‹", "<") }
func glyphSearch() string   { return pick("⌕", "/") }
func glyphSettings() string { return pick("⚙", "*") }
func glyphTrophy() string   { return pick("🏆", "#") }
func glyphSwatch() string   { return pick("●", "o") }
func glyphCursor() string   { return pick("›", ">") }
func glyphCheck() string    { return pick("✓", "x") }
func glyphLock() string     { return pick("🔒", "(private)") }
func glyphBarFull() string  { return pick("█", "#") }
func glyphBarEmpty() string { return pick("░", ".") }
func glyphEllipsis() string { return pick("…", "...") }

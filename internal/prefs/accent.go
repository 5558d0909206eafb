package prefs

import (
	"errors"
	"fmt"
	"strings"
)

var ErrUnknownAccent = errors.New("unknown accent")

// Accent is the user-selectable highlight color token.
type Accent string

const (
	AccentBlue   Accent = "blue"
	AccentPurple Accent = "purple"
	AccentGreen  Accent = "green"
	AccentOrange Accent = "orange"
	AccentPink   Accent = "pink"
	AccentRed    Accent = "red"

	DefaultAccent = AccentBlue
)

// Swatch is the color pair an accent renders as on light and dark terminals.
type Swatch struct {
	Light string `json:"light"`
	Dark  string `json:"dark"`
}

var swatches = map[Accent]Swatch{
	AccentBlue:   {Light: "#1d4ed8", Dark: "#3b82f6"},
	AccentPurple: {Light: "#6d28d9", Dark: "#a855f7"},
	AccentGreen:  {Light: "#15803d", Dark: "#22c55e"},
	AccentOrange: {Light: "#c2410c", Dark: "#f97316"},
	AccentPink:   {Light: "#be185d", Dark: "#ec4899"},
	AccentRed:    {Light: "#b91c1c", Dark: "#ef4444"},
}

// Accents returns the palette in display order.
func Accents() []Accent {
	return []Accent{AccentBlue, AccentPurple, AccentGreen, AccentOrange, AccentPink, AccentRed}
}

func (a Accent) Valid() bool {
	_, ok := swatches[a]
	return ok
}

// Swatch returns the colors for a, or the default accent's colors if a is unknown.
func (a Accent) Swatch() Swatch {
	if s, ok := swatches[a]; ok {
		return s
	}
	return swatches[DefaultAccent]
}

func ParseAccent(s string) (Accent, error) {
	a := Accent(strings.ToLower(strings.TrimSpace(s)))
	if !a.Valid() {
		return "", fmt.Errorf("%w: %q", ErrUnknownAccent, s)
	}
	return a, nil
}

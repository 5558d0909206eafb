package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	xansi "github.com/charmbracelet/x/ansi"
)

// renderInputLine draws the search box as a single full-width line on the input background.
func renderInputLine(bodyW int, prompt, inputView string) string {
	if bodyW < 10 {
		bodyW = 10
	}

	// A newline inside the input view would wrap and look like inserted lines while typing.
	inputView = strings.ReplaceAll(inputView, "\n", " ")
	inputView = strings.ReplaceAll(inputView, "\r", " ")

	line := lipgloss.PlaceHorizontal(
		bodyW,
		lipgloss.Left,
		" "+prompt+" "+inputView+" ",
		lipgloss.WithWhitespaceChars(" "),
		lipgloss.WithWhitespaceBackground(colorInputBg),
	)
	if xansi.StringWidth(line) > bodyW {
		// Terminate styling so the cut line doesn't bleed into the next one.
		line = xansi.Cut(line, 0, bodyW) + "\x1b[0m"
	}
	return line
}

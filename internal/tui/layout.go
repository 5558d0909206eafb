package tui

import (
	"strings"

	xansi "github.com/charmbracelet/x/ansi"
)

// normalizePane forces s to be exactly width columns wide (ANSI-aware) and height
// lines tall, so JoinHorizontal/Place never see ragged blocks.
func normalizePane(s string, width, height int) string {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}

	lines := strings.Split(s, "\n")
	if height > 0 {
		if len(lines) > height {
			lines = lines[:height]
		}
		for len(lines) < height {
			lines = append(lines, "")
		}
	}

	for i, ln := range lines {
		lines[i] = fitLine(ln, width)
	}
	return strings.Join(lines, "\n")
}

// fitLine truncates (with an ellipsis) or pads ln to exactly width cells.
func fitLine(ln string, width int) string {
	if width <= 0 {
		return ""
	}
	w := xansi.StringWidth(ln)
	if w > width {
		ln = xansi.Truncate(ln, width, glyphEllipsis())
		w = xansi.StringWidth(ln)
	}
	if w < width {
		ln += strings.Repeat(" ", width-w)
	}
	return ln
}

// scrollWindow returns the first visible index of a horizontal strip of total items
// where fit items are visible at once, moving start as little as possible so that
// sel stays on screen.
func scrollWindow(start, sel, total, fit int) int {
	if fit <= 0 || total <= fit {
		return 0
	}
	if sel < start {
		start = sel
	}
	if sel >= start+fit {
		start = sel - fit + 1
	}
	if start > total-fit {
		start = total - fit
	}
	if start < 0 {
		start = 0
	}
	return start
}

// wrapText soft-wraps plain text to width without splitting words where possible.
func wrapText(s string, width int) string {
	if width <= 0 {
		return s
	}
	return xansi.Wordwrap(s, width, "")
}

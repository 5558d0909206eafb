package tui

import (
	"fmt"
	"strings"

	"milxos/internal/library"
	"milxos/internal/model"

	"github.com/charmbracelet/lipgloss"
	xansi "github.com/charmbracelet/x/ansi"
)

func (m appModel) View() string {
	var out string
	switch m.view {
	case viewLibrary:
		out = m.viewLibrary()
	case viewProject:
		out = m.viewProject()
	default:
		out = m.viewProfiles()
	}
	return normalizePane(out, m.w(), m.h())
}

// spread places left and right on one line of width w, truncating left if needed.
func spread(left, right string, w int) string {
	rw := lipgloss.Width(right)
	lw := w - rw - 1
	if lw < 0 {
		lw = 0
	}
	if lipgloss.Width(left) > lw {
		left = xansi.Truncate(left, lw, glyphEllipsis())
	}
	gap := w - lipgloss.Width(left) - rw
	if gap < 1 {
		gap = 1
	}
	return left + strings.Repeat(" ", gap) + right
}

func (m appModel) minibuffer() string {
	if m.minibufferText == "" {
		return ""
	}
	st := styleAccent()
	if m.minibufferErr {
		st = lipgloss.NewStyle().Foreground(colorError)
	}
	return st.Render(m.minibufferText)
}

func (m appModel) viewProfiles() string {
	w, h := m.w(), m.h()

	var cards []string
	for i, p := range model.Profiles() {
		border := colorCardBorder
		name := styleMuted().Render(p.Label())
		if i == m.profileIdx {
			border = accentColor()
			name = lipgloss.NewStyle().Bold(true).Render(p.Label())
		}
		avatar := styleAccentPill().Render(" " + p.Initial() + " ")
		card := lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(border).
			Width(20).
			Align(lipgloss.Center).
			Padding(1, 0).
			Render(avatar + "\n\n" + name + "\n" + styleMuted().Render(fmt.Sprintf("%d", i+1)))
		cards = append(cards, card)
	}
	row := joinWithGap(cards, 2)

	body := lipgloss.JoinVertical(lipgloss.Center,
		styleTitle().Render("Who's watching?"),
		"",
		row,
	)

	footer := m.minibuffer()
	if footer == "" {
		footer = m.help.View(profilesHelp{m.keys})
	}
	bodyH := h - 1
	if bodyH < 1 {
		bodyH = 1
	}
	return lipgloss.Place(w, bodyH, lipgloss.Center, lipgloss.Center, body) + "\n" + footer
}

func joinWithGap(blocks []string, gap int) string {
	if len(blocks) == 0 {
		return ""
	}
	spacer := strings.Repeat(" ", gap)
	parts := make([]string, 0, len(blocks)*2)
	for i, b := range blocks {
		if i > 0 {
			parts = append(parts, spacer)
		}
		parts = append(parts, b)
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, parts...)
}

func (m appModel) libraryHeader() string {
	w := m.w()
	tabs := styleMuted().Render(glyphBack()) + "  " +
		lipgloss.NewStyle().Bold(true).Underline(true).Foreground(accentColor()).Render("Projects") + "  " +
		styleMuted().Render("Media")

	icons := []string{styleMuted().Render(glyphSearch()), styleMuted().Render(glyphSettings())}
	if m.lib.SearchOpen() {
		icons[0] = styleAccent().Render(glyphSearch())
	}
	if m.lib.ActivePopover() == library.PopoverSettings {
		icons[1] = styleAccent().Render(glyphSettings())
	}
	right := strings.Join(icons, "  ") + "  " +
		styleAccentPill().Render(m.lib.Profile().Initial()) + "  " +
		styleTitle().Render(m.clock.Format("15:04"))
	return spread(" "+tabs, right+" ", w)
}

func (m appModel) viewLibrary() string {
	w, h := m.w(), m.h()

	top := []string{m.libraryHeader()}
	if m.lib.SearchOpen() {
		count := styleMuted().Render(fmt.Sprintf("%d match", len(m.lib.Visible())))
		if len(m.lib.Visible()) != 1 {
			count = styleMuted().Render(fmt.Sprintf("%d matches", len(m.lib.Visible())))
		}
		inputW := w - lipgloss.Width(count) - 1
		top = append(top, renderInputLine(inputW, glyphSearch(), m.search.View())+" "+count)
	} else {
		top = append(top, "")
	}

	footer := []string{m.hintLine()}
	if mb := m.minibuffer(); mb != "" {
		footer = append(footer, " "+mb)
	} else {
		footer = append(footer, " "+m.help.View(libraryHelp{m.keys}))
	}

	bodyH := h - len(top) - len(footer)
	if bodyH < 1 {
		bodyH = 1
	}

	var body string
	switch {
	case m.lib.ComingSoonOpen():
		body = lipgloss.Place(w, bodyH, lipgloss.Center, lipgloss.Center, m.renderComingSoon())
	case m.lib.ActivePopover() != library.PopoverNone:
		pop := lipgloss.PlaceHorizontal(w-1, lipgloss.Right, m.renderPopover())
		body = normalizePane(pop, w, bodyH)
	default:
		body = normalizePane(m.tileRow()+"\n\n"+m.details(w), w, bodyH)
	}

	return strings.Join(top, "\n") + "\n" + body + "\n" + strings.Join(footer, "\n")
}

func (m appModel) hintLine() string {
	btn := func(glyph, label string) string {
		return styleAccentPill().Render(glyph) + " " + styleMuted().Render(label)
	}
	return " " + btn("O", "Back") + "   " + btn("X", "Select")
}

func (m appModel) tileRow() string {
	visible := m.lib.Visible()
	fit := m.tilesThatFit()
	start := scrollWindow(m.tileStart, m.lib.SelectedIndex(), len(visible), fit)

	back := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(colorCardBorder).
		Width(tileW-2).
		Height(tileH-2).
		Align(lipgloss.Center, lipgloss.Center).
		Render(styleMuted().Render(glyphBack() + " Back"))

	tiles := []string{back}
	end := start + fit
	if end > len(visible) {
		end = len(visible)
	}
	for i := start; i < end; i++ {
		tiles = append(tiles, m.tile(visible[i], i == m.lib.SelectedIndex()))
	}
	row := joinWithGap(tiles, tileGap)
	if end < len(visible) {
		row = lipgloss.JoinHorizontal(lipgloss.Center, row, " "+styleMuted().Render(fmt.Sprintf("+%d", len(visible)-end)))
	}
	return " " + strings.ReplaceAll(row, "\n", "\n ")
}

func (m appModel) tile(p model.Project, selected bool) string {
	inner := tileW - 4
	tag := styleMuted().Render(fitLine(p.Tag, inner))
	title := wrapText(p.Title, inner)
	border := colorCardBorder
	st := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		Width(tileW - 2).
		Height(tileH - 2).
		Padding(0, 1)
	if selected {
		border = accentColor()
		st = st.Border(lipgloss.ThickBorder())
		title = lipgloss.NewStyle().Bold(true).Render(title)
	}
	return st.BorderForeground(border).Render(tag + "\n" + title)
}

func (m appModel) details(w int) string {
	p, ok := m.lib.Current()
	if !ok {
		msg := styleTitle().Render("No matches")
		if q := strings.TrimSpace(m.lib.Query()); q != "" {
			msg += "\n" + styleMuted().Render(fmt.Sprintf("Nothing matches %q.", q))
		}
		return lipgloss.PlaceHorizontal(w, lipgloss.Center, msg)
	}

	textW := w - 4
	if textW > 72 {
		textW = 72
	}
	if textW < 10 {
		textW = 10
	}

	lines := []string{
		lipgloss.NewStyle().Bold(true).Foreground(accentColor()).Render(p.Title),
	}
	if p.Subtitle != "" {
		lines = append(lines, styleMuted().Render(p.Subtitle))
	}
	lines = append(lines, "")
	lines = append(lines, strings.Split(wrapText(p.Description, textW), "\n")...)
	lines = append(lines, "", stylePill().Render(p.Tag)+"  "+progressLine(p, 16), "")

	shown, hidden := m.lib.VisibleTech()
	var pills []string
	for _, t := range shown {
		pills = append(pills, stylePill().Render(t))
	}
	if hidden > 0 {
		pills = append(pills, styleAccentPill().Render(fmt.Sprintf("+%d more", hidden)))
	}
	if len(pills) > 0 {
		lines = append(lines, strings.Split(wrapText(strings.Join(pills, " "), textW), "\n")...)
	}

	return "  " + strings.Join(lines, "\n  ")
}

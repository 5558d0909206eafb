package tui

import (
	"fmt"
	"strings"

	"milxos/internal/model"

	"github.com/charmbracelet/lipgloss"
)

const (
	pageHeaderH = 2
	pageFooterH = 2
	maxPageW    = 96
)

// layoutProjectPage sizes the viewport to the window and re-renders the page body.
func (m *appModel) layoutProjectPage() {
	w := m.w()
	h := m.h() - pageHeaderH - pageFooterH
	if h < 1 {
		h = 1
	}
	m.viewport.Width = w
	m.viewport.Height = h

	m.pageW = w - 4
	if m.pageW > maxPageW {
		m.pageW = maxPageW
	}
	if m.pageW < 20 {
		m.pageW = 20
	}
	m.viewport.SetContent(projectPageContent(m.project, m.pageW))
}

func projectPageContent(p model.Project, width int) string {
	var b strings.Builder
	pad := "  "

	line := func(s string) {
		b.WriteString(pad)
		b.WriteString(s)
		b.WriteString("\n")
	}

	line(lipgloss.NewStyle().Bold(true).Foreground(accentColor()).Render(p.Title))
	if p.Subtitle != "" {
		line(styleMuted().Render(p.Subtitle))
	}
	line("")
	line(stylePill().Render(p.Tag) + "  " + progressLine(p, 20))
	line("")

	if len(p.TechStack) > 0 {
		line(styleTitle().Render("Tech"))
		var pills []string
		for _, t := range p.TechStack {
			pills = append(pills, stylePill().Render(t))
		}
		for _, ln := range strings.Split(wrapText(strings.Join(pills, " "), width), "\n") {
			line(ln)
		}
		line("")
	}

	links := p.Links()
	_, private := p.SourceNotice()
	if len(links) > 0 || private {
		line(styleTitle().Render("Links"))
		for _, l := range links {
			line(fmt.Sprintf("%s %s  %s", styleAccent().Render(glyphCursor()), l.Label, styleMuted().Render(l.URL)))
		}
		if private {
			line(styleMuted().Render(glyphLock() + " Source is private"))
		}
		line("")
	}

	if n := len(p.Screenshots); n > 0 {
		word := "screenshots"
		if n == 1 {
			word = "screenshot"
		}
		line(styleMuted().Render(fmt.Sprintf("%d %s on the web version", n, word)))
		line("")
	}

	body := p.FullDescription
	if strings.TrimSpace(body) == "" {
		body = p.Description
	}
	b.WriteString(renderMarkdown(body, width))
	return b.String()
}

// progressLine renders "████░░ 80%  🏆 8/10".
func progressLine(p model.Project, cells int) string {
	pct := p.Progress
	if pct < 0 {
		pct = 0
	}
	if pct > 100 {
		pct = 100
	}
	full := pct * cells / 100
	bar := styleAccent().Render(strings.Repeat(glyphBarFull(), full)) +
		styleMuted().Render(strings.Repeat(glyphBarEmpty(), cells-full))
	trophy := lipgloss.NewStyle().Foreground(colorTrophy).Render(glyphTrophy())
	return fmt.Sprintf("%s %3d%%  %s %d/%d", bar, pct, trophy, p.Achievements, p.TotalAchievements)
}

func (m appModel) viewProject() string {
	w := m.w()
	p := m.project

	left := styleMuted().Render(glyphBack()) + " " + styleTitle().Render(p.Title)
	right := stylePill().Render(p.Tag)
	header := spread(left, right, w)

	pct := 100
	if m.viewport.TotalLineCount() > m.viewport.Height {
		pct = int(m.viewport.ScrollPercent() * 100)
	}
	rule := styleMuted().Render(strings.Repeat("─", max(0, w-6)) + fmt.Sprintf(" %3d%%", pct))

	footer := m.minibuffer()
	if footer == "" {
		footer = m.help.View(projectHelp{m.keys})
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		header,
		rule,
		m.viewport.View(),
		"",
		footer,
	)
}

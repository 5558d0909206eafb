package tui

import (
	"fmt"
	"io"
	"strings"

	"milxos/internal/library"
	"milxos/internal/model"
	"milxos/internal/prefs"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// popItem is one row of a popover menu.
type popItem struct {
	label    string
	pill     string
	detail   string
	swatch   *lipgloss.AdaptiveColor
	active   bool
	disabled bool
	copyText string
	run      func(m *appModel) tea.Cmd
}

func (i popItem) FilterValue() string { return "" }
func (i popItem) Title() string       { return i.label }
func (i popItem) Description() string { return i.detail }

// newPopoverList builds a chrome-free list for a popover menu. Rows get a
// second line for their detail when withDetail is set.
func newPopoverList(withDetail bool) list.Model {
	l := list.New(nil, popoverDelegate{withDetail: withDetail}, 0, 0)
	l.SetShowTitle(false)
	l.SetShowHelp(false)
	l.SetShowStatusBar(false)
	l.SetShowPagination(false)
	l.SetFilteringEnabled(false)
	l.SetShowFilter(false)
	// esc closes through the controller; q does nothing inside a popover.
	l.DisableQuitKeybindings()
	return l
}

type popoverDelegate struct {
	withDetail bool
}

func (d popoverDelegate) Height() int {
	if d.withDetail {
		return 2
	}
	return 1
}

func (d popoverDelegate) Spacing() int { return 0 }

func (d popoverDelegate) Update(_ tea.Msg, _ *list.Model) tea.Cmd { return nil }

func (d popoverDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	it, ok := item.(popItem)
	if !ok {
		return
	}
	width := m.Width()
	selected := index == m.Index() && !it.disabled

	cursor := "  "
	if selected {
		cursor = styleAccent().Render(glyphCursor()) + " "
	}
	label := it.label
	if it.swatch != nil {
		label = lipgloss.NewStyle().Foreground(*it.swatch).Render(glyphSwatch()) + " " + label
	}
	if it.pill != "" {
		label = stylePill().Render(it.pill) + " " + label
	}
	switch {
	case it.disabled:
		label = styleMuted().Render(label)
	case selected:
		label = lipgloss.NewStyle().Bold(true).Render(label)
	}
	if it.active {
		label += " " + styleAccent().Render(glyphCheck())
	}

	line := fitLine(cursor+label, width)
	if d.withDetail {
		detail := ""
		if it.detail != "" {
			detail = "  " + styleMuted().Render(it.detail)
		}
		line += "\n" + fitLine(detail, width)
	}
	fmt.Fprint(w, line)
}

// popoverList is the menu of whichever popover the controller has open, or nil.
func (m *appModel) popoverList() *list.Model {
	switch m.lib.ActivePopover() {
	case library.PopoverSettings:
		return &m.accentList
	case library.PopoverProfileSwitch:
		return &m.profileList
	case library.PopoverLinks:
		return &m.linksList
	}
	return nil
}

// refreshPopover reloads the open menu's rows and puts the cursor on the
// active row, or the first selectable one.
func (m *appModel) refreshPopover() {
	l := m.popoverList()
	if l == nil {
		return
	}
	items := m.popoverItems()
	rows := make([]list.Item, len(items))
	sel := 0
	for i, it := range items {
		rows[i] = it
		if it.active {
			sel = i
		}
	}
	l.SetItems(rows)
	m.sizePopoverList()
	l.Select(sel)
	settleCursor(l, sel, +1)
}

func (m *appModel) sizePopoverList() {
	l := m.popoverList()
	if l == nil {
		return
	}
	rows := 1
	if m.lib.ActivePopover() == library.PopoverLinks {
		rows = 2
	}
	l.SetSize(m.popoverInnerW(), len(l.Items())*rows)
}

// settleCursor moves the cursor off disabled rows in direction dir. If every
// row that way is disabled it returns to prev.
func settleCursor(l *list.Model, prev, dir int) {
	for range l.Items() {
		it, ok := l.SelectedItem().(popItem)
		if !ok || !it.disabled {
			return
		}
		before := l.Index()
		if dir < 0 {
			l.CursorUp()
		} else {
			l.CursorDown()
		}
		if l.Index() == before {
			break
		}
	}
	l.Select(prev)
}

// selectedPopItem is the row under the cursor, if it can be chosen.
func (m appModel) selectedPopItem() (popItem, bool) {
	l := (&m).popoverList()
	if l == nil {
		return popItem{}, false
	}
	it, ok := l.SelectedItem().(popItem)
	if !ok || it.disabled {
		return popItem{}, false
	}
	return it, true
}

func (m appModel) popoverItems() []popItem {
	switch m.lib.ActivePopover() {
	case library.PopoverSettings:
		return m.accentItems()
	case library.PopoverProfileSwitch:
		return m.profileItems()
	case library.PopoverLinks:
		return m.linkItems()
	}
	return nil
}

func (m appModel) accentItems() []popItem {
	cur := activeAccent()
	var items []popItem
	for _, a := range prefs.Accents() {
		c := swatchColor(a.Swatch())
		items = append(items, popItem{
			label:  titleCase(string(a)),
			swatch: &c,
			active: a == cur,
			run:    func(m *appModel) tea.Cmd { return m.setAccentCmd(a) },
		})
	}
	return items
}

func (m appModel) profileItems() []popItem {
	var items []popItem
	for _, p := range model.Profiles() {
		items = append(items, popItem{
			label:  p.Label(),
			pill:   p.Initial(),
			active: p == m.lib.Profile(),
			run: func(m *appModel) tea.Cmd {
				m.lib.SetProfile(p)
				m.resetSearchInput()
				m.tileStart = 0
				for i, pr := range model.Profiles() {
					if pr == p {
						m.profileIdx = i
					}
				}
				return m.flash("Viewing as "+p.Label(), false)
			},
		})
	}
	return items
}

func (m appModel) linkItems() []popItem {
	p, ok := m.lib.Current()
	if !ok {
		return []popItem{{label: "No project selected", disabled: true}}
	}
	var items []popItem
	for _, l := range p.Links() {
		items = append(items, popItem{
			label:    l.Label,
			detail:   l.URL,
			copyText: l.URL,
			run: func(m *appModel) tea.Cmd {
				m.lib.ClosePopover()
				return openURLCmd(l.URL)
			},
		})
	}
	if _, private := p.SourceNotice(); private {
		items = append(items, popItem{label: glyphLock() + " Source is private", disabled: true})
	}
	if len(items) == 0 {
		items = append(items, popItem{label: "No links", disabled: true})
	}
	return items
}

// setAccentCmd applies the accent right away and persists it off the update loop.
func (m *appModel) setAccentCmd(a prefs.Accent) tea.Cmd {
	m.lib.ClosePopover()
	applyAccent(a)
	if m.prefs == nil {
		return m.flash("Accent: "+string(a), false)
	}
	ctx, p := m.ctx, m.prefs
	return func() tea.Msg {
		return accentSavedMsg{accent: a, err: p.SetAccent(ctx, a)}
	}
}

func popoverTitle(p library.Popover) string {
	switch p {
	case library.PopoverSettings:
		return glyphSettings() + " Accent"
	case library.PopoverProfileSwitch:
		return "Switch profile"
	case library.PopoverLinks:
		return "Links"
	}
	return ""
}

func (m appModel) popoverInnerW() int {
	innerW := 28
	if m.lib.ActivePopover() == library.PopoverLinks {
		innerW = 44
	}
	if limit := m.w() - 6; innerW > limit {
		innerW = limit
	}
	if innerW < 12 {
		innerW = 12
	}
	return innerW
}

func (m appModel) renderPopover() string {
	which := m.lib.ActivePopover()
	l := (&m).popoverList()
	if l == nil {
		return ""
	}

	hint := "enter select  esc close"
	if which == library.PopoverLinks {
		hint = "enter open  c copy  esc close"
	}
	body := strings.Join([]string{
		styleTitle().Render(popoverTitle(which)),
		"",
		l.View(),
		"",
		styleMuted().Render(hint),
	}, "\n")

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(accentColor()).
		Padding(0, 1).
		Width(m.popoverInnerW() + 2).
		Render(body)
}

func (m appModel) renderComingSoon() string {
	body := strings.Join([]string{
		styleTitle().Render("Media"),
		"",
		"Coming soon.",
		"",
		styleMuted().Render("enter or esc to close"),
	}, "\n")
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(accentColor()).
		Padding(1, 4).
		Align(lipgloss.Center).
		Render(body)
}

func titleCase(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

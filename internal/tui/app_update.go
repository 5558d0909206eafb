package tui

import (
	"milxos/internal/library"
	"milxos/internal/model"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

func (m appModel) Init() tea.Cmd {
	return tickClock(m.now)
}

func (m appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.syncTileWindow()
		m.sizePopoverList()
		if m.view == viewProject {
			m.layoutProjectPage()
		}
		return m, nil

	case clockTickMsg:
		m.clock = msg.t
		return m, tickClock(m.now)

	case flashDoneMsg:
		if msg.seq == m.flashSeq {
			m.minibufferText = ""
			m.minibufferErr = false
		}
		return m, nil

	case accentChangedMsg:
		applyAccent(msg.accent)
		if m.lib.ActivePopover() == library.PopoverSettings {
			m.refreshPopover()
		}
		if m.view == viewProject {
			m.layoutProjectPage()
		}
		return m, nil

	case accentSavedMsg:
		if msg.err != nil {
			m.log.Error("save accent", "accent", msg.accent, "err", msg.err)
			if m.prefs != nil {
				applyAccent(m.prefs.Accent())
			}
			cmd := m.flash("Could not save accent: "+msg.err.Error(), true)
			return m, cmd
		}
		applyAccent(msg.accent)
		if m.view == viewProject {
			m.layoutProjectPage()
		}
		cmd := m.flash("Accent: "+string(msg.accent), false)
		return m, cmd

	case clipboardDoneMsg:
		if msg.err != nil {
			cmd := m.flash("Copy failed: "+msg.err.Error(), true)
			return m, cmd
		}
		cmd := m.flash("Copied "+msg.what, false)
		return m, cmd

	case urlOpenDoneMsg:
		if msg.err != nil {
			m.log.Warn("open url", "url", msg.url, "err", msg.err)
			cmd := m.flash("Could not open link: "+msg.err.Error(), true)
			return m, cmd
		}
		return m, nil

	case tea.KeyMsg:
		m.log.Debug("key", "view", m.view.String(), "key", msg.String(),
			"search", m.lib.SearchOpen(), "popover", m.lib.ActivePopover().String())
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		switch m.view {
		case viewProfiles:
			return m.updateProfiles(msg)
		case viewLibrary:
			return m.updateLibrary(msg)
		case viewProject:
			return m.updateProject(msg)
		}
	}
	return m, nil
}

func (m appModel) updateProfiles(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	profiles := model.Profiles()
	switch msg.String() {
	case "left":
		if m.profileIdx > 0 {
			m.profileIdx--
		}
	case "right":
		if m.profileIdx < len(profiles)-1 {
			m.profileIdx++
		}
	case "1", "2", "3":
		m.profileIdx = int(msg.Runes[0] - '1')
		return m.pickProfile(profiles[m.profileIdx])
	case "enter", " ":
		return m.pickProfile(profiles[m.profileIdx])
	case "q":
		return m, tea.Quit
	}
	return m, nil
}

func (m appModel) pickProfile(p model.Profile) (tea.Model, tea.Cmd) {
	m.lib.SetProfile(p)
	m.resetSearchInput()
	m.tileStart = 0
	m.view = viewLibrary
	return m, nil
}

func (m appModel) updateLibrary(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Shortcuts that open surfaces only apply while nothing owns the keyboard.
	if !m.lib.SearchOpen() && !m.lib.ComingSoonOpen() {
		switch {
		case key.Matches(msg, m.keys.Search):
			m.lib.OpenSearch()
			m.resetSearchInput()
			cmd := m.search.Focus()
			return m, cmd
		case key.Matches(msg, m.keys.Settings):
			m.togglePopover(library.PopoverSettings)
			return m, nil
		case key.Matches(msg, m.keys.Profile):
			m.togglePopover(library.PopoverProfileSwitch)
			return m, nil
		case key.Matches(msg, m.keys.Links):
			m.togglePopover(library.PopoverLinks)
			return m, nil
		}
		if m.lib.ActivePopover() == library.PopoverNone {
			switch {
			case key.Matches(msg, m.keys.Quit):
				return m, tea.Quit
			case key.Matches(msg, m.keys.Media):
				m.lib.ShowComingSoon()
				return m, nil
			case key.Matches(msg, m.keys.Tech):
				m.lib.ExpandTech()
				return m, nil
			}
		}
	}

	wasSearching := m.lib.SearchOpen()
	r := m.lib.HandleKey(msg.String())
	switch r.Outcome {
	case library.OutcomeForwardToInput:
		return m.updateSearchInput(msg)
	case library.OutcomeForwardToPopover:
		return m.updatePopover(msg)
	case library.OutcomeSelected:
		m.openProject(r.Project)
		return m, nil
	case library.OutcomeBack:
		m.view = viewProfiles
		return m, nil
	}
	if wasSearching && !m.lib.SearchOpen() {
		m.resetSearchInput()
	}
	m.syncTileWindow()
	return m, nil
}

// updateSearchInput feeds a key to the focused search box. Navigation waits
// until the box is closed, so enter only reaches the input.
func (m appModel) updateSearchInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)
	if v := m.search.Value(); v != m.lib.Query() {
		m.lib.SetSearchQuery(v)
		m.tileStart = 0
	}
	return m, cmd
}

func (m *appModel) resetSearchInput() {
	m.search.Reset()
	if !m.lib.SearchOpen() {
		m.search.Blur()
	}
}

func (m *appModel) togglePopover(which library.Popover) {
	m.lib.TogglePopover(which)
	m.refreshPopover()
}

// updatePopover runs enter and copy on the open menu and hands every other
// key to its list.
func (m appModel) updatePopover(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	l := m.popoverList()
	if l == nil {
		return m, nil
	}
	switch {
	case key.Matches(msg, m.keys.Select):
		if it, ok := m.selectedPopItem(); ok {
			cmd := it.run(&m)
			return m, cmd
		}
		return m, nil
	case key.Matches(msg, m.keys.Copy):
		if it, ok := m.selectedPopItem(); ok && it.copyText != "" {
			return m, copyCmd(it.label, it.copyText)
		}
		return m, nil
	}

	prev := l.Index()
	var cmd tea.Cmd
	*l, cmd = l.Update(msg)
	if l.Index() != prev {
		settleCursor(l, prev, l.Index()-prev)
	}
	return m, cmd
}

func (m *appModel) openProject(p model.Project) {
	m.project = p
	m.view = viewProject
	m.viewport.GotoTop()
	m.layoutProjectPage()
}

func (m appModel) updateProject(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	p := m.project
	switch {
	case key.Matches(msg, m.keys.Back):
		m.view = viewLibrary
		m.syncTileWindow()
		return m, nil
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.OpenLive):
		if p.LiveURL == "" {
			cmd := m.flash("No live site for this project", true)
			return m, cmd
		}
		return m, openURLCmd(p.LiveURL)
	case key.Matches(msg, m.keys.OpenGitHub):
		url, private := p.SourceNotice()
		switch {
		case url != "":
			return m, openURLCmd(url)
		case private:
			cmd := m.flash("Source is private", true)
			return m, cmd
		default:
			cmd := m.flash("No source link for this project", true)
			return m, cmd
		}
	case key.Matches(msg, m.keys.Copy):
		links := p.Links()
		if len(links) == 0 {
			cmd := m.flash("No links to copy", true)
			return m, cmd
		}
		return m, copyCmd(links[0].Label+" link", links[0].URL)
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

func (m *appModel) flash(text string, isErr bool) tea.Cmd {
	m.minibufferText = text
	m.minibufferErr = isErr
	m.flashSeq++
	return flashDone(m.flashSeq)
}

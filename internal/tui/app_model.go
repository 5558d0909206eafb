package tui

import (
	"context"
	"log/slog"
	"time"

	"milxos/internal/library"
	"milxos/internal/model"
	"milxos/internal/prefs"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
)

type appModel struct {
	ctx   context.Context
	prefs *prefs.Preferences
	log   *slog.Logger
	now   func() time.Time

	width  int
	height int

	view view

	// Profile picker.
	profileIdx int

	// Library.
	lib       *library.Controller
	tileStart int
	search    textinput.Model

	// Popover menus; the controller decides which one is open.
	accentList  list.Model
	profileList list.Model
	linksList   list.Model

	// Project page.
	project  model.Project
	viewport viewport.Model
	pageW    int

	keys keyMap
	help help.Model

	clock time.Time

	minibufferText string
	minibufferErr  bool
	flashSeq       int
}

const (
	defaultW = 80
	defaultH = 24

	tileW   = 16
	tileH   = 6
	tileGap = 1
)

func newAppModel(ctx context.Context, cat library.Source, p *prefs.Preferences, start model.Profile) appModel {
	if ctx == nil {
		ctx = context.Background()
	}
	m := appModel{
		ctx:   ctx,
		prefs: p,
		log:   slog.New(slog.DiscardHandler),
		now:   time.Now,
		view:  viewProfiles,
		keys:  defaultKeyMap(),
		help:  help.New(),
	}
	m.clock = m.now()

	m.search = textinput.New()
	m.search.Placeholder = "Search title, tag or tech"
	m.search.Prompt = ""
	m.search.CharLimit = 64

	m.viewport = viewport.New(defaultW, defaultH)

	m.accentList = newPopoverList(false)
	m.profileList = newPopoverList(false)
	m.linksList = newPopoverList(true)

	profile := start
	if !profile.Valid() {
		profile = model.ProfileStranger
	}
	m.lib = library.New(cat, profile)
	for i, pr := range model.Profiles() {
		if pr == profile {
			m.profileIdx = i
		}
	}
	if start.Valid() {
		m.view = viewLibrary
	}

	if p != nil {
		applyAccent(p.Accent())
	}
	return m
}

func (m appModel) w() int {
	if m.width <= 0 {
		return defaultW
	}
	return m.width
}

func (m appModel) h() int {
	if m.height <= 0 {
		return defaultH
	}
	return m.height
}

// tilesThatFit is how many project tiles fit next to the back tile.
func (m appModel) tilesThatFit() int {
	n := (m.w() - 2 - (tileW + tileGap)) / (tileW + tileGap)
	if n < 1 {
		n = 1
	}
	return n
}

func (m *appModel) syncTileWindow() {
	m.tileStart = scrollWindow(m.tileStart, m.lib.SelectedIndex(), len(m.lib.Visible()), m.tilesThatFit())
}

package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Left   key.Binding
	Right  key.Binding
	Up     key.Binding
	Down   key.Binding
	Select key.Binding
	Back   key.Binding

	Search   key.Binding
	Settings key.Binding
	Profile  key.Binding
	Links    key.Binding
	Media    key.Binding
	Tech     key.Binding

	OpenLive   key.Binding
	OpenGitHub key.Binding
	Copy       key.Binding

	Quit key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Left:   key.NewBinding(key.WithKeys("left"), key.WithHelp("←", "prev")),
		Right:  key.NewBinding(key.WithKeys("right"), key.WithHelp("→", "next")),
		Up:     key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑", "up")),
		Down:   key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓", "down")),
		Select: key.NewBinding(key.WithKeys("enter", " "), key.WithHelp("X", "select")),
		Back:   key.NewBinding(key.WithKeys("esc", "backspace"), key.WithHelp("O", "back")),

		Search:   key.NewBinding(key.WithKeys("/"), key.WithHelp("/", "search")),
		Settings: key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "accent")),
		Profile:  key.NewBinding(key.WithKeys("p"), key.WithHelp("p", "profile")),
		Links:    key.NewBinding(key.WithKeys("l"), key.WithHelp("l", "links")),
		Media:    key.NewBinding(key.WithKeys("m"), key.WithHelp("m", "media")),
		Tech:     key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "all tech")),

		OpenLive:   key.NewBinding(key.WithKeys("o"), key.WithHelp("o", "open live")),
		OpenGitHub: key.NewBinding(key.WithKeys("g"), key.WithHelp("g", "github")),
		Copy:       key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "copy link")),

		Quit: key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// libraryHelp, projectHelp and profilesHelp adapt keyMap to help.KeyMap per view.
type libraryHelp struct{ k keyMap }

func (h libraryHelp) ShortHelp() []key.Binding {
	return []key.Binding{h.k.Back, h.k.Select, h.k.Search, h.k.Settings, h.k.Profile, h.k.Links, h.k.Quit}
}

func (h libraryHelp) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{h.k.Left, h.k.Right, h.k.Select, h.k.Back},
		{h.k.Search, h.k.Settings, h.k.Profile, h.k.Links},
		{h.k.Media, h.k.Tech, h.k.Quit},
	}
}

type projectHelp struct{ k keyMap }

func (h projectHelp) ShortHelp() []key.Binding {
	return []key.Binding{h.k.Back, h.k.Up, h.k.Down, h.k.OpenLive, h.k.OpenGitHub, h.k.Copy, h.k.Quit}
}

func (h projectHelp) FullHelp() [][]key.Binding { return [][]key.Binding{h.ShortHelp()} }

type profilesHelp struct{ k keyMap }

func (h profilesHelp) ShortHelp() []key.Binding {
	return []key.Binding{h.k.Left, h.k.Right, h.k.Select, h.k.Quit}
}

func (h profilesHelp) FullHelp() [][]key.Binding { return [][]key.Binding{h.ShortHelp()} }

package library

import (
	"slices"
	"strings"

	"milxos/internal/model"
)

// Popover identifies the single transient popover that may be open.
type Popover int

const (
	PopoverNone Popover = iota
	PopoverSettings
	PopoverProfileSwitch
	PopoverLinks
)

func (p Popover) String() string {
	switch p {
	case PopoverSettings:
		return "settings"
	case PopoverProfileSwitch:
		return "profile"
	case PopoverLinks:
		return "links"
	}
	return "none"
}

// techPreview is how many tech badges show before the "+N more" affordance.
const techPreview = 4

// Source is what the controller needs from the catalog.
type Source interface {
	ProjectsForProfile(model.Profile) []model.Project
}

// Controller holds the library screen state: which profile is active, which projects are
// visible after search, which one is selected, and which transient surfaces are open.
//
// All operations are synchronous and defined for every state. It is not safe for concurrent use.
type Controller struct {
	src Source

	profile  model.Profile
	all      []model.Project
	visible  []model.Project
	query    string
	selected int

	searchOpen     bool
	popover        Popover
	comingSoonOpen bool
	techExpanded   bool
}

func New(src Source, profile model.Profile) *Controller {
	c := &Controller{src: src}
	c.SetProfile(profile)
	return c
}

// SetProfile reloads the project list for profile and resets search, selection and
// every transient surface.
func (c *Controller) SetProfile(profile model.Profile) {
	c.profile = profile
	c.all = c.src.ProjectsForProfile(profile)
	c.visible = c.all
	c.query = ""
	c.selected = 0
	c.searchOpen = false
	c.popover = PopoverNone
	c.comingSoonOpen = false
	c.techExpanded = false
}

// SetSearchQuery filters the profile's projects by q and resets the selection.
// A blank query shows everything.
func (c *Controller) SetSearchQuery(q string) {
	c.query = q
	c.visible = Filter(c.all, q)
	c.setSelected(0)
}

// Filter returns the projects whose title, tag, or any tech-stack entry contains q,
// ignoring case. Order is preserved. A blank q returns projects unchanged.
func Filter(projects []model.Project, q string) []model.Project {
	needle := strings.ToLower(strings.TrimSpace(q))
	if needle == "" {
		return projects
	}
	out := make([]model.Project, 0, len(projects))
	for _, p := range projects {
		if matches(p, needle) {
			out = append(out, p)
		}
	}
	return out
}

func matches(p model.Project, needle string) bool {
	if strings.Contains(strings.ToLower(p.Title), needle) {
		return true
	}
	if strings.Contains(strings.ToLower(p.Tag), needle) {
		return true
	}
	for _, t := range p.TechStack {
		if strings.Contains(strings.ToLower(t), needle) {
			return true
		}
	}
	return false
}

// MoveSelection shifts the selection by delta, clamped to the visible range.
func (c *Controller) MoveSelection(delta int) {
	c.Select(c.selected + delta)
}

// Select moves the selection to i, clamped to the visible range.
func (c *Controller) Select(i int) {
	if len(c.visible) == 0 {
		c.setSelected(0)
		return
	}
	if i < 0 {
		i = 0
	}
	if last := len(c.visible) - 1; i > last {
		i = last
	}
	c.setSelected(i)
}

func (c *Controller) setSelected(i int) {
	if i != c.selected {
		c.techExpanded = false
	}
	c.selected = i
}

// Current returns the selected project. ok is false when nothing is visible.
func (c *Controller) Current() (p model.Project, ok bool) {
	if c.selected < 0 || c.selected >= len(c.visible) {
		return model.Project{}, false
	}
	return c.visible[c.selected], true
}

// SelectCurrent returns the project to open, or false when nothing is visible.
func (c *Controller) SelectCurrent() (model.Project, bool) {
	return c.Current()
}

// TogglePopover opens which (closing any other popover), or closes it if already open.
func (c *Controller) TogglePopover(which Popover) {
	if which == PopoverNone || c.popover == which {
		c.popover = PopoverNone
		return
	}
	c.popover = which
}

func (c *Controller) ClosePopover() { c.popover = PopoverNone }

func (c *Controller) OpenSearch() {
	c.popover = PopoverNone
	c.searchOpen = true
}

// CloseSearch hides the search box and clears the query.
func (c *Controller) CloseSearch() {
	c.searchOpen = false
	if c.query != "" {
		c.SetSearchQuery("")
	}
}

func (c *Controller) ShowComingSoon() {
	c.popover = PopoverNone
	c.comingSoonOpen = true
}

func (c *Controller) DismissComingSoon() { c.comingSoonOpen = false }

// ExpandTech reveals the full tech stack for the current project until the selection changes.
func (c *Controller) ExpandTech() { c.techExpanded = true }

// VisibleTech returns the tech badges to render for the current project and how many
// more are hidden behind the "+N more" badge.
func (c *Controller) VisibleTech() (shown []string, hidden int) {
	p, ok := c.Current()
	if !ok {
		return nil, 0
	}
	if c.techExpanded || len(p.TechStack) <= techPreview {
		return p.TechStack, 0
	}
	return p.TechStack[:techPreview], len(p.TechStack) - techPreview
}

func (c *Controller) Profile() model.Profile { return c.profile }
func (c *Controller) Query() string          { return c.query }
func (c *Controller) SelectedIndex() int     { return c.selected }
func (c *Controller) SearchOpen() bool       { return c.searchOpen }
func (c *Controller) ActivePopover() Popover { return c.popover }
func (c *Controller) ComingSoonOpen() bool   { return c.comingSoonOpen }
func (c *Controller) TechExpanded() bool     { return c.techExpanded }

// Visible returns a copy of the profile-sorted, search-filtered projects.
func (c *Controller) Visible() []model.Project { return slices.Clone(c.visible) }

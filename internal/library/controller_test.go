package library

import (
	"slices"
	"testing"

	"milxos/internal/catalog"
	"milxos/internal/model"
)

func testCatalog(t *testing.T) *catalog.Catalog {
	t.Helper()

	mk := func(id, title, tag string, tech []string, rec, eng, str int) model.Project {
		return model.Project{
			ID:        id,
			Title:     title,
			Tag:       tag,
			TechStack: tech,
			Priority: model.Priority{
				model.ProfileRecruiter: rec,
				model.ProfileEngineer:  eng,
				model.ProfileStranger:  str,
			},
		}
	}
	c, err := catalog.New([]model.Project{
		mk("tui", "Dotfile Picker", "CLI Tool", []string{"Go", "Bubble Tea", "Lipgloss", "Shell", "Git"}, 3, 1, 2),
		mk("web", "Fit One", "Client Site", []string{"HTML", "CSS"}, 1, 3, 3),
		mk("api", "MelodyMatch", "Full Stack App", []string{"React", "MongoDB"}, 2, 2, 1),
	})
	if err != nil {
		t.Fatalf("catalog.New: %v", err)
	}
	return c
}

func visibleIDs(c *Controller) []string {
	var out []string
	for _, p := range c.Visible() {
		out = append(out, p.ID)
	}
	return out
}

func TestSetProfile_SortsAndResets(t *testing.T) {
	t.Parallel()

	c := New(testCatalog(t), model.ProfileEngineer)
	if got := visibleIDs(c); !slices.Equal(got, []string{"tui", "api", "web"}) {
		t.Fatalf("engineer order: %v", got)
	}

	c.OpenSearch()
	c.SetSearchQuery("html")
	c.TogglePopover(PopoverLinks)
	c.ShowComingSoon()
	c.ExpandTech()

	c.SetProfile(model.ProfileRecruiter)
	if got := visibleIDs(c); !slices.Equal(got, []string{"web", "api", "tui"}) {
		t.Fatalf("recruiter order: %v", got)
	}
	if c.Query() != "" || c.SelectedIndex() != 0 {
		t.Fatalf("expected query and selection reset; got q=%q idx=%d", c.Query(), c.SelectedIndex())
	}
	if c.SearchOpen() || c.ActivePopover() != PopoverNone || c.ComingSoonOpen() || c.TechExpanded() {
		t.Fatalf("expected all transient surfaces closed")
	}
}

func TestSetSearchQuery_CaseInsensitiveTechMatch(t *testing.T) {
	t.Parallel()

	c := New(testCatalog(t), model.ProfileStranger)
	for _, q := range []string{"go", "GO", "Go", "  go  "} {
		c.SetSearchQuery(q)
		if got := visibleIDs(c); !slices.Equal(got, []string{"tui"}) {
			t.Fatalf("query %q: got %v", q, got)
		}
	}
}

func TestSetSearchQuery_MatchesTitleAndTagPreservingOrder(t *testing.T) {
	t.Parallel()

	c := New(testCatalog(t), model.ProfileStranger)
	// "t" hits every title; order must stay the stranger order.
	c.SetSearchQuery("t")
	if got := visibleIDs(c); !slices.Equal(got, []string{"api", "tui", "web"}) {
		t.Fatalf("got %v", got)
	}
	c.SetSearchQuery("client")
	if got := visibleIDs(c); !slices.Equal(got, []string{"web"}) {
		t.Fatalf("tag match: got %v", got)
	}
}

func TestSetSearchQuery_EmptyRestoresAll(t *testing.T) {
	t.Parallel()

	c := New(testCatalog(t), model.ProfileEngineer)
	c.SetSearchQuery("react")
	c.MoveSelection(5)
	for _, q := range []string{"", "   ", "\t"} {
		c.SetSearchQuery("react")
		c.SetSearchQuery(q)
		if !slices.Equal(visibleIDs(c), []string{"tui", "api", "web"}) {
			t.Fatalf("query %q: expected all projects, got %v", q, visibleIDs(c))
		}
		if c.SelectedIndex() != 0 {
			t.Fatalf("query %q: expected index 0, got %d", q, c.SelectedIndex())
		}
	}
}

func TestMoveSelection_Clamps(t *testing.T) {
	t.Parallel()

	c := New(testCatalog(t), model.ProfileEngineer)
	c.MoveSelection(-1)
	if c.SelectedIndex() != 0 {
		t.Fatalf("expected 0 at lower bound, got %d", c.SelectedIndex())
	}
	c.MoveSelection(+1)
	c.MoveSelection(+1)
	if c.SelectedIndex() != 2 {
		t.Fatalf("expected 2, got %d", c.SelectedIndex())
	}
	c.MoveSelection(+1)
	if c.SelectedIndex() != 2 {
		t.Fatalf("expected to stay at last index, got %d", c.SelectedIndex())
	}
	c.MoveSelection(-10)
	if c.SelectedIndex() != 0 {
		t.Fatalf("expected large negative delta to clamp to 0, got %d", c.SelectedIndex())
	}
}

func TestEmptyVisible_NoCurrentAndSelectIsNoop(t *testing.T) {
	t.Parallel()

	c := New(testCatalog(t), model.ProfileEngineer)
	c.SetSearchQuery("cobol")
	if len(c.Visible()) != 0 {
		t.Fatalf("expected no matches")
	}
	if _, ok := c.Current(); ok {
		t.Fatalf("expected no current project")
	}
	if _, ok := c.SelectCurrent(); ok {
		t.Fatalf("expected SelectCurrent to be a no-op")
	}
	c.MoveSelection(1)
	c.MoveSelection(-1)
	if _, ok := c.Current(); ok || c.SelectedIndex() != 0 {
		t.Fatalf("expected selection to stay absent")
	}
	if shown, hidden := c.VisibleTech(); shown != nil || hidden != 0 {
		t.Fatalf("expected no tech for empty selection")
	}
}

func TestTogglePopover_MutualExclusion(t *testing.T) {
	t.Parallel()

	c := New(testCatalog(t), model.ProfileEngineer)
	c.TogglePopover(PopoverSettings)
	c.TogglePopover(PopoverLinks)
	if c.ActivePopover() != PopoverLinks {
		t.Fatalf("expected links open, got %v", c.ActivePopover())
	}
	if c.ActivePopover() == PopoverSettings {
		t.Fatalf("settings must be closed")
	}

	c.TogglePopover(PopoverLinks)
	if c.ActivePopover() != PopoverNone {
		t.Fatalf("expected toggle to close links, got %v", c.ActivePopover())
	}

	c.ClosePopover()
	c.ClosePopover()
	if c.ActivePopover() != PopoverNone {
		t.Fatalf("close should be idempotent")
	}
}

func TestVisibleTech_ExpandResetsOnSelectionChange(t *testing.T) {
	t.Parallel()

	c := New(testCatalog(t), model.ProfileEngineer)
	shown, hidden := c.VisibleTech()
	if len(shown) != 4 || hidden != 1 {
		t.Fatalf("expected 4 shown + 1 hidden, got %v +%d", shown, hidden)
	}
	c.ExpandTech()
	if shown, hidden = c.VisibleTech(); len(shown) != 5 || hidden != 0 {
		t.Fatalf("expected full stack after expand, got %v +%d", shown, hidden)
	}
	c.MoveSelection(1)
	c.MoveSelection(-1)
	if c.TechExpanded() {
		t.Fatalf("expected expansion to reset after moving")
	}

	// Clamped moves that do not change the index keep the expansion.
	c.ExpandTech()
	c.MoveSelection(-1)
	if !c.TechExpanded() {
		t.Fatalf("expected expansion kept when index unchanged")
	}
}

func TestCloseSearch_ClearsQuery(t *testing.T) {
	t.Parallel()

	c := New(testCatalog(t), model.ProfileEngineer)
	c.TogglePopover(PopoverSettings)
	c.OpenSearch()
	if c.ActivePopover() != PopoverNone {
		t.Fatalf("opening search should close popovers")
	}
	c.SetSearchQuery("css")
	c.CloseSearch()
	if c.SearchOpen() || c.Query() != "" || len(c.Visible()) != 3 {
		t.Fatalf("expected search closed and cleared; open=%v q=%q n=%d", c.SearchOpen(), c.Query(), len(c.Visible()))
	}
}

func TestVisible_ReturnsCopy(t *testing.T) {
	t.Parallel()

	c := New(testCatalog(t), model.ProfileEngineer)
	v := c.Visible()
	v[0].ID = "mutated"
	_ = append(v[:1], model.Project{ID: "extra"})

	if got := visibleIDs(c); !slices.Equal(got, []string{"tui", "api", "web"}) {
		t.Fatalf("caller writes leaked into controller state: %v", got)
	}
	if p, ok := c.Current(); !ok || p.ID != "tui" {
		t.Fatalf("expected current tui, got %q ok=%v", p.ID, ok)
	}
}

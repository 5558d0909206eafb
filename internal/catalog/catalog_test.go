package catalog

import (
	"errors"
	"math"
	"slices"
	"strings"
	"testing"

	"milxos/internal/model"
)

func proj(id string, recruiter, engineer, stranger int) model.Project {
	return model.Project{
		ID:    id,
		Title: strings.ToUpper(id),
		Tag:   "Tag",
		Priority: model.Priority{
			model.ProfileRecruiter: recruiter,
			model.ProfileEngineer:  engineer,
			model.ProfileStranger:  stranger,
		},
	}
}

func ids(ps []model.Project) []string {
	out := make([]string, len(ps))
	for i, p := range ps {
		out[i] = p.ID
	}
	return out
}

func TestProjectsForProfile_EngineerScenario(t *testing.T) {
	t.Parallel()

	c, err := New([]model.Project{
		proj("A", 1, 1, 1),
		proj("B", 1, 3, 1),
		proj("C", 1, 2, 1),
	})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	got := ids(c.ProjectsForProfile(model.ProfileEngineer))
	want := []string{"A", "C", "B"}
	if !slices.Equal(got, want) {
		t.Fatalf("got %v; want %v", got, want)
	}
}

func TestProjectsForProfile_StableTies(t *testing.T) {
	t.Parallel()

	c, err := New([]model.Project{
		proj("a", 2, 0, 0),
		proj("b", 1, 0, 0),
		proj("c", 2, 0, 0),
		proj("d", 1, 0, 0),
	})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	got := ids(c.ProjectsForProfile(model.ProfileRecruiter))
	want := []string{"b", "d", "a", "c"}
	if !slices.Equal(got, want) {
		t.Fatalf("got %v; want %v", got, want)
	}

	// All-equal ranks keep catalog order exactly.
	if got := ids(c.ProjectsForProfile(model.ProfileEngineer)); !slices.Equal(got, []string{"a", "b", "c", "d"}) {
		t.Fatalf("expected catalog order for ties; got %v", got)
	}
}

func TestProjectsForProfile_ExtremeRanks(t *testing.T) {
	t.Parallel()

	c, err := New([]model.Project{
		proj("big", 0, math.MaxInt, 0),
		proj("small", 0, math.MinInt+5, 0),
		proj("mid", 0, 0, 0),
	})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	got := ids(c.ProjectsForProfile(model.ProfileEngineer))
	want := []string{"small", "mid", "big"}
	if !slices.Equal(got, want) {
		t.Fatalf("got %v; want %v", got, want)
	}
}

func TestProjectsForProfile_PermutationSortedAndPure(t *testing.T) {
	t.Parallel()

	c, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	before := ids(c.All())

	for _, p := range model.Profiles() {
		got := c.ProjectsForProfile(p)
		if len(got) != c.Len() {
			t.Fatalf("%s: expected %d projects, got %d", p, c.Len(), len(got))
		}
		gotIDs := ids(got)
		sortedA := slices.Clone(gotIDs)
		sortedB := slices.Clone(before)
		slices.Sort(sortedA)
		slices.Sort(sortedB)
		if !slices.Equal(sortedA, sortedB) {
			t.Fatalf("%s: not a permutation of the catalog: %v", p, gotIDs)
		}
		for i := 1; i < len(got); i++ {
			prev, cur := got[i-1].Priority[p], got[i].Priority[p]
			if prev > cur {
				t.Fatalf("%s: not sorted at %d (%d > %d)", p, i, prev, cur)
			}
			if prev == cur && slices.Index(before, got[i-1].ID) > slices.Index(before, got[i].ID) {
				t.Fatalf("%s: tie at %d not in catalog order", p, i)
			}
		}

		// Mutating the result must not leak into the catalog.
		got[0].TechStack = append(got[0].TechStack, "mutated")
		got[0].Priority[p] = -100
		again := c.ProjectsForProfile(p)
		if !slices.Equal(ids(again), gotIDs) {
			t.Fatalf("%s: repeated call changed order", p)
		}
	}

	if after := ids(c.All()); !slices.Equal(after, before) {
		t.Fatalf("catalog order mutated: %v -> %v", before, after)
	}
}

func TestLoad_EmbeddedCatalog(t *testing.T) {
	t.Parallel()

	c, err := Load()
	if err != nil {
		t.Fatalf("embedded catalog must validate: %v", err)
	}
	if c.Len() != 9 {
		t.Fatalf("expected 9 projects, got %d", c.Len())
	}

	first := c.ProjectsForProfile(model.ProfileEngineer)[0]
	if first.ID != "dotfile-picker" {
		t.Fatalf("expected dotfile-picker first for engineers, got %s", first.ID)
	}

	// bottlecap-site and fit-one-site tie at recruiter rank 4; catalog order wins.
	rec := ids(c.ProjectsForProfile(model.ProfileRecruiter))
	if slices.Index(rec, "bottlecap-site") > slices.Index(rec, "fit-one-site") {
		t.Fatalf("expected bottlecap-site before fit-one-site; got %v", rec)
	}

	p, err := c.Find("themed-image-gen")
	if err != nil {
		t.Fatalf("Find: %v", err)
	}
	if !p.SourcePrivate || p.GithubURL != "" {
		t.Fatalf("expected private source without github url, got %+v", p)
	}
}

func TestFind_NotFound(t *testing.T) {
	t.Parallel()

	c, err := New([]model.Project{proj("a", 1, 1, 1)})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if _, err := c.Find("nope"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestParse_RejectsMissingPriority(t *testing.T) {
	t.Parallel()

	data := []byte(`
- id: a
  title: A
  tag: T
  progress: 50
  priority: {recruiter: 1, engineer: 2}
`)
	_, err := Parse(data)
	if err == nil {
		t.Fatalf("expected validation error")
	}
	var ve ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("expected ValidationError, got %T: %v", err, err)
	}
	if ve.Field != "priority" || !strings.Contains(ve.Msg, "stranger") {
		t.Fatalf("unexpected validation error: %+v", ve)
	}
}

func TestValidate_ReportsEveryProblem(t *testing.T) {
	t.Parallel()

	bad := proj("dup", 1, 1, 1)
	bad.Progress = 101
	bad.LiveURL = "ftp://example.com"
	bad.Achievements = 5
	bad.TotalAchievements = 2

	err := Validate([]model.Project{proj("dup", 1, 1, 1), bad})
	if err == nil {
		t.Fatalf("expected errors")
	}
	msg := err.Error()
	for _, want := range []string{"duplicates", "progress", "liveUrl", "achievements"} {
		if !strings.Contains(msg, want) {
			t.Fatalf("expected %q in %q", want, msg)
		}
	}
}

func TestParse_MalformedYAML(t *testing.T) {
	t.Parallel()

	if _, err := Parse([]byte("- id: [unclosed")); err == nil {
		t.Fatalf("expected parse error")
	}
}

package catalog

import (
	"errors"
	"fmt"
	"net/url"
	"strings"

	"milxos/internal/model"
)

// ValidationError describes one problem with one catalog entry.
type ValidationError struct {
	Index int
	ID    string
	Field string
	Msg   string
}

func (e ValidationError) Error() string {
	id := e.ID
	if id == "" {
		id = fmt.Sprintf("#%d", e.Index)
	}
	return fmt.Sprintf("catalog: project %s: %s: %s", id, e.Field, e.Msg)
}

type urlField struct {
	field    string
	v        string
	required bool
}

// Validate checks every project and returns all problems joined, or nil.
func Validate(projects []model.Project) error {
	var errs []error
	seen := map[string]int{}

	for i, p := range projects {
		bad := func(field, format string, args ...any) {
			errs = append(errs, ValidationError{Index: i, ID: p.ID, Field: field, Msg: fmt.Sprintf(format, args...)})
		}

		id := strings.TrimSpace(p.ID)
		switch {
		case id == "":
			bad("id", "is required")
		case id != p.ID:
			bad("id", "has surrounding whitespace")
		default:
			if j, dup := seen[id]; dup {
				bad("id", "duplicates project #%d", j)
			} else {
				seen[id] = i
			}
		}
		if strings.TrimSpace(p.Title) == "" {
			bad("title", "is required")
		}
		if strings.TrimSpace(p.Tag) == "" {
			bad("tag", "is required")
		}
		if p.Progress < 0 || p.Progress > 100 {
			bad("progress", "%d is outside 0..100", p.Progress)
		}
		if p.TotalAchievements < 0 {
			bad("totalAchievements", "%d is negative", p.TotalAchievements)
		}
		if p.Achievements < 0 || p.Achievements > p.TotalAchievements {
			bad("achievements", "%d is outside 0..%d", p.Achievements, p.TotalAchievements)
		}
		for _, prof := range model.Profiles() {
			if _, ok := p.Priority[prof]; !ok {
				bad("priority", "missing rank for %s", prof)
			}
		}
		for k := range p.Priority {
			if !k.Valid() {
				bad("priority", "unknown profile %q", string(k))
			}
		}
		for _, tech := range p.TechStack {
			if strings.TrimSpace(tech) == "" {
				bad("techStack", "contains an empty entry")
				break
			}
		}

		urls := []urlField{
			{"coverImage", p.CoverImage, false},
			{"backgroundImage", p.BackgroundImage, false},
			{"liveUrl", p.LiveURL, false},
			{"githubUrl", p.GithubURL, false},
			{"demoVideo", p.DemoVideo, false},
		}
		for _, s := range p.Screenshots {
			urls = append(urls, urlField{"screenshots", s, true})
		}
		for _, u := range urls {
			if strings.TrimSpace(u.v) == "" {
				if u.required {
					bad(u.field, "contains an empty URL")
				}
				continue
			}
			if err := checkURL(u.v); err != nil {
				bad(u.field, "%v", err)
			}
		}
	}

	return errors.Join(errs...)
}

func checkURL(raw string) error {
	u, err := url.Parse(raw)
	if err != nil {
		return err
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("%q is not an http(s) URL", raw)
	}
	if u.Host == "" {
		return fmt.Errorf("%q has no host", raw)
	}
	return nil
}

package catalog

import (
	"cmp"
	_ "embed"
	"errors"
	"fmt"
	"slices"
	"strings"

	"milxos/internal/model"

	"gopkg.in/yaml.v3"
)

//go:embed projects.yaml
var embeddedProjects []byte

var ErrNotFound = errors.New("project not found")

// Catalog is the immutable set of projects. It is safe for concurrent reads.
type Catalog struct {
	projects []model.Project
	byID     map[string]int
}

// Load parses and validates the catalog compiled into the binary.
func Load() (*Catalog, error) {
	return Parse(embeddedProjects)
}

// Parse decodes a YAML project list and validates it.
func Parse(data []byte) (*Catalog, error) {
	var projects []model.Project
	if err := yaml.Unmarshal(data, &projects); err != nil {
		return nil, fmt.Errorf("parse catalog: %w", err)
	}
	return New(projects)
}

// New validates projects and wraps them in a Catalog. The input slice is copied.
func New(projects []model.Project) (*Catalog, error) {
	if err := Validate(projects); err != nil {
		return nil, err
	}
	c := &Catalog{
		projects: make([]model.Project, len(projects)),
		byID:     make(map[string]int, len(projects)),
	}
	for i, p := range projects {
		c.projects[i] = cloneProject(p)
		c.byID[p.ID] = i
	}
	return c, nil
}

func (c *Catalog) Len() int { return len(c.projects) }

// All returns the projects in catalog order.
func (c *Catalog) All() []model.Project {
	out := make([]model.Project, len(c.projects))
	for i, p := range c.projects {
		out[i] = cloneProject(p)
	}
	return out
}

// ProjectsForProfile returns every project sorted ascending by its rank for profile.
// Equal ranks keep catalog order.
func (c *Catalog) ProjectsForProfile(profile model.Profile) []model.Project {
	out := c.All()
	slices.SortStableFunc(out, func(a, b model.Project) int {
		return cmp.Compare(a.Priority[profile], b.Priority[profile])
	})
	return out
}

func (c *Catalog) Find(id string) (model.Project, error) {
	i, ok := c.byID[strings.TrimSpace(id)]
	if !ok {
		return model.Project{}, fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	return cloneProject(c.projects[i]), nil
}

func cloneProject(p model.Project) model.Project {
	p.TechStack = slices.Clone(p.TechStack)
	p.Screenshots = slices.Clone(p.Screenshots)
	if p.Priority != nil {
		pr := make(model.Priority, len(p.Priority))
		for k, v := range p.Priority {
			pr[k] = v
		}
		p.Priority = pr
	}
	return p
}

// Package roadmap holds the static catalog of learning stages.
package roadmap

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// Difficulty levels used by the default catalog
const (
	DifficultyBeginner     = "beginner"
	DifficultyIntermediate = "intermediate"
	DifficultyAdvanced     = "advanced"
)

// Resource is a learning link attached to a stage
type Resource struct {
	Type  string `json:"type" yaml:"type"` // "video", "article", "course"
	Title string `json:"title" yaml:"title"`
	URL   string `json:"url" yaml:"url"`
}

// Stage is one step of the roadmap
type Stage struct {
	ID          int        `json:"id" yaml:"id"`
	Title       string     `json:"title" yaml:"title"`
	Difficulty  string     `json:"difficulty" yaml:"difficulty"`
	Description string     `json:"description" yaml:"description"`
	Resources   []Resource `json:"resources,omitempty" yaml:"resources,omitempty"`
	Project     string     `json:"project" yaml:"project"`
	Hint        string     `json:"hint,omitempty" yaml:"hint,omitempty"`
}

// Catalog is an ordered, read-only list of stages
type Catalog struct {
	source string
	stages []Stage
	byID   map[int]int
}

// NewCatalog validates stages and returns them ordered by ID
func NewCatalog(source string, stages []Stage) (*Catalog, error) {
	if len(stages) == 0 {
		return nil, fmt.Errorf("catalog has no stages")
	}
	sorted := make([]Stage, len(stages))
	copy(sorted, stages)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].ID < sorted[j].ID })

	byID := make(map[int]int, len(sorted))
	for i, s := range sorted {
		if s.ID <= 0 {
			return nil, fmt.Errorf("stage %q has invalid id %d", s.Title, s.ID)
		}
		if strings.TrimSpace(s.Title) == "" {
			return nil, fmt.Errorf("stage %d has no title", s.ID)
		}
		if _, dup := byID[s.ID]; dup {
			return nil, fmt.Errorf("duplicate stage id %d", s.ID)
		}
		byID[s.ID] = i
	}
	return &Catalog{source: source, stages: sorted, byID: byID}, nil
}

// Source describes where the catalog was loaded from
func (c *Catalog) Source() string {
	return c.source
}

// Len returns the number of stages
func (c *Catalog) Len() int {
	return len(c.stages)
}

// Stages returns a copy of all stages in ID order
func (c *Catalog) Stages() []Stage {
	out := make([]Stage, len(c.stages))
	copy(out, c.stages)
	return out
}

// At returns the stage at list position i
func (c *Catalog) At(i int) (Stage, bool) {
	if i < 0 || i >= len(c.stages) {
		return Stage{}, false
	}
	return c.stages[i], true
}

// Get returns the stage with the given ID
func (c *Catalog) Get(id int) (Stage, bool) {
	i, ok := c.byID[id]
	if !ok {
		return Stage{}, false
	}
	return c.stages[i], true
}

// Index returns the list position of the stage with the given ID
func (c *Catalog) Index(id int) (int, bool) {
	i, ok := c.byID[id]
	return i, ok
}

// Resolve finds a stage by numeric ID or by case-insensitive title prefix
func (c *Catalog) Resolve(ref string) (Stage, error) {
	ref = strings.TrimSpace(ref)
	if id, err := strconv.Atoi(ref); err == nil {
		if s, ok := c.Get(id); ok {
			return s, nil
		}
		return Stage{}, fmt.Errorf("stage not found: %d", id)
	}
	if ref == "" {
		return Stage{}, fmt.Errorf("empty stage reference")
	}
	lower := strings.ToLower(ref)
	var matches []Stage
	for _, s := range c.stages {
		if strings.HasPrefix(strings.ToLower(s.Title), lower) {
			matches = append(matches, s)
		}
	}
	switch len(matches) {
	case 0:
		return Stage{}, fmt.Errorf("stage not found: %s", ref)
	case 1:
		return matches[0], nil
	default:
		return Stage{}, fmt.Errorf("stage reference %q is ambiguous (%d matches)", ref, len(matches))
	}
}

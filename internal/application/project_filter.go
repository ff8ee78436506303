package application

import (
	"fmt"
	"strings"

	"github.com/bnema/punch/internal/domain"
	"github.com/gobwas/glob"
)

// ProjectFilter narrows the client's projects by case-insensitive name globs.
type ProjectFilter struct {
	patterns []glob.Glob
}

func NewProjectFilter(patterns []string) (ProjectFilter, error) {
	filter := ProjectFilter{}
	for _, raw := range patterns {
		pattern := strings.ToLower(strings.TrimSpace(raw))
		if pattern == "" {
			continue
		}

		compiled, err := glob.Compile(pattern)
		if err != nil {
			return ProjectFilter{}, fmt.Errorf("%w: project pattern %q: %v", domain.ErrInvalidSettings, raw, err)
		}
		filter.patterns = append(filter.patterns, compiled)
	}

	return filter, nil
}

// Match reports whether the project passes. A filter without patterns
// accepts everything.
func (f ProjectFilter) Match(project domain.Project) bool {
	if len(f.patterns) == 0 {
		return true
	}

	name := strings.ToLower(project.Name)
	for _, pattern := range f.patterns {
		if pattern.Match(name) {
			return true
		}
	}
	return false
}

func (f ProjectFilter) Apply(projects []domain.Project) (kept []domain.Project, dropped []domain.Project) {
	for _, project := range projects {
		if f.Match(project) {
			kept = append(kept, project)
		} else {
			dropped = append(dropped, project)
		}
	}
	return kept, dropped
}

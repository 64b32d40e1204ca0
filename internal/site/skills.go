package site

import (
	"sort"

	"github.com/alexisbeaulieu97/cosmicui/internal/config"
)

// AllCategories is the filter value that selects every skill.
const AllCategories = "All"

// Skills is the skills grid in configuration order.
type Skills []config.Skill

// Filter returns the skills in category, or all of them for AllCategories.
func (s Skills) Filter(category string) Skills {
	if category == AllCategories || category == "" {
		return s
	}

	var out Skills
	for _, skill := range s {
		if skill.Category == category {
			out = append(out, skill)
		}
	}
	return out
}

// Categories returns AllCategories followed by each category in first-seen order.
func (s Skills) Categories() []string {
	categories := []string{AllCategories}
	seen := make(map[string]struct{}, len(s))
	for _, skill := range s {
		if _, ok := seen[skill.Category]; ok {
			continue
		}
		seen[skill.Category] = struct{}{}
		categories = append(categories, skill.Category)
	}
	return categories
}

// NextCategory returns the category after current, wrapping around.
func (s Skills) NextCategory(current string) string {
	categories := s.Categories()
	for i, c := range categories {
		if c == current {
			return categories[(i+1)%len(categories)]
		}
	}
	return AllCategories
}

// SortProjects returns a copy of projects with featured projects first.
// Relative order is otherwise preserved.
func SortProjects(projects []config.Project) []config.Project {
	out := append([]config.Project(nil), projects...)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Featured && !out[j].Featured
	})
	return out
}

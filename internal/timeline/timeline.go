// Package timeline builds the experience section from configured milestones
// and, optionally, from the tags of a local git repository.
package timeline

import (
	"fmt"
	"sort"
	"time"

	"github.com/alexisbeaulieu97/cosmicui/internal/config"
)

// Entry is one dated milestone.
type Entry struct {
	Date        time.Time
	Title       string
	Description string
	// Source is "config" or "git".
	Source string
}

// Label formats the date the way the page shows it.
func (e Entry) Label() string {
	if e.Date.IsZero() {
		return "—"
	}
	return e.Date.Format("Jan 2006")
}

// FromConfig converts configured entries. Dates use the formats accepted by
// config.ParseTimelineDate.
func FromConfig(entries []config.TimelineEntry) ([]Entry, error) {
	out := make([]Entry, 0, len(entries))
	for i, raw := range entries {
		date, err := config.ParseTimelineDate(raw.Date)
		if err != nil {
			return nil, fmt.Errorf("timeline entry %d: %w", i, err)
		}
		out = append(out, Entry{
			Date:        date,
			Title:       raw.Title,
			Description: raw.Description,
			Source:      "config",
		})
	}
	return out, nil
}

// Merge combines entry lists newest first and keeps at most limit entries.
// A limit of zero or less keeps everything. Entries with the same date keep
// their input order.
func Merge(limit int, lists ...[]Entry) []Entry {
	var merged []Entry
	for _, list := range lists {
		merged = append(merged, list...)
	}

	sort.SliceStable(merged, func(i, j int) bool {
		return merged[i].Date.After(merged[j].Date)
	})

	if limit > 0 && len(merged) > limit {
		merged = merged[:limit]
	}
	return merged
}

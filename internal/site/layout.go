package site

// ScrollProbe is how far below the top of the viewport the active section is
// sampled, in lines.
const ScrollProbe = 3

// Section is the position of one rendered section.
type Section struct {
	ID     string
	Offset int
	Height int
}

// Layout records where each section landed in the rendered page.
type Layout struct {
	Sections []Section
	// Height is the total number of lines in the page.
	Height int
}

// Offset returns the first line of the section with id.
func (l Layout) Offset(id string) (int, bool) {
	for _, s := range l.Sections {
		if s.ID == id {
			return s.Offset, true
		}
	}
	return 0, false
}

// ActiveSection returns the id of the section under scroll+ScrollProbe.
// Lines before the first section map to the first id; lines after the last
// section, or in a gap between sections, map to the closest section above.
func ActiveSection(layout Layout, scroll int) string {
	if len(layout.Sections) == 0 {
		return ""
	}

	pos := scroll + ScrollProbe
	active := layout.Sections[0].ID
	for _, s := range layout.Sections {
		if pos >= s.Offset && pos < s.Offset+s.Height {
			return s.ID
		}
		if s.Offset <= pos {
			active = s.ID
		}
	}
	return active
}

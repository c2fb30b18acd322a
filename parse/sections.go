package parse

import "strings"

// Section is a named comment-delimited region:
// <!-- Name section --> body <!-- EndName section -->.
// The name is freeform text up to the literal word "section" and is mirrored
// name-for-name, with an "End" prefix, on the closing marker.
type Section struct {
	Span
	Name string
	Body Span
}

// Sections returns the sections of text in order of appearance,
// non-overlapping. A section wrapping a nested, differently named section
// subsumes it; callers that strip the outer markers and rescan pick the
// inner one up on the next pass.
func Sections(text string) []Section {
	var sections []Section
	var pos int
	for {
		var c, ok = nextComment(text, pos)
		if !ok {
			return sections
		}
		var name, isSection = sectionName(c.inner)
		if !isSection {
			pos = c.End
			continue
		}
		var close, closed = findSectionClose(text, c.End, name)
		if !closed {
			pos = c.End
			continue
		}
		sections = append(sections, Section{Span{c.Start, close.End}, name, Span{c.End, close.Start}})
		pos = close.End
	}
}

// sectionName extracts the freeform name from a section comment's inner
// text: everything before the final word "section". The word must be
// preceded by whitespace, so comments like "BLOCK:section" do not qualify.
func sectionName(inner string) (string, bool) {
	var trimmed = strings.TrimSpace(inner)
	var rest = strings.TrimSuffix(trimmed, "section")
	if rest == trimmed || rest == "" || !isSpace(rest[len(rest)-1]) {
		return "", false
	}
	var name = strings.TrimSpace(rest)
	if name == "" {
		return "", false
	}
	return name, true
}

func findSectionClose(text string, from int, name string) (Span, bool) {
	var pos = from
	for {
		var c, ok = nextComment(text, pos)
		if !ok {
			return Span{}, false
		}
		if n, isSection := sectionName(c.inner); isSection && n == "End"+name {
			return c.Span, true
		}
		pos = c.End
	}
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r'
}

package pagehtml

import (
	"strings"

	"golang.org/x/text/cases"

	"github.com/pagemark/pagemark/data"
	"github.com/pagemark/pagemark/parse"
)

// sectionRule decides whether a section with a matching name is removed.
// match is compared case-insensitively as a substring of the section name.
type sectionRule struct {
	match  string
	remove func(e *Engine, body string, s scope) bool
}

// sectionRules is consulted in order and the first name match wins. A name
// matching no rule falls back to the empty-reference rule.
var sectionRules = []sectionRule{
	{"about me", func(e *Engine, body string, s scope) bool {
		return s.lookup("aboutMeText").Blank()
	}},
	{"logo", func(e *Engine, body string, s scope) bool {
		return !s.lookup("logoUrl").Truthy()
	}},
	{"services", func(e *Engine, body string, s scope) bool {
		return s.lookup("servicesText").Blank()
	}},
	{"reviews", func(e *Engine, body string, s scope) bool {
		return emptyList(s.lookup("reviews"))
	}},
	{"buttons", func(e *Engine, body string, s scope) bool {
		return emptyList(s.lookup("buttons"))
	}},
	{"contact info", func(e *Engine, body string, s scope) bool {
		return false
	}},
	{"social", func(e *Engine, body string, s scope) bool {
		for _, link := range socialLinks {
			if !socialValue(s, link.field).Blank() {
				return false
			}
		}
		return true
	}},
}

// pruneSections removes sections whose backing data is empty. Because
// removing an outer section's markers can expose sections that were nested
// inside a kept body, scanning restarts from the top until a pass finds
// nothing to do.
func pruneSections(e *Engine, text string, s scope) string {
	for {
		var sections = parse.Sections(text)
		if len(sections) == 0 {
			return text
		}
		var b strings.Builder
		var last = 0
		for _, sec := range sections {
			b.WriteString(text[last:sec.Start])
			if !removeSection(e, sec.Name, sec.Body.Of(text), s) {
				b.WriteString(sec.Body.Of(text))
			}
			last = sec.End
		}
		b.WriteString(text[last:])
		text = b.String()
	}
}

func removeSection(e *Engine, name, body string, s scope) bool {
	var folded = cases.Fold().String(name)
	for _, rule := range sectionRules {
		if strings.Contains(folded, rule.match) {
			return rule.remove(e, body, s)
		}
	}
	return emptyReference(e, body, s)
}

// emptyReference reports whether any placeholder token in body names a key
// that exists in scope with a null, empty-string, or empty-sequence value.
// Keys absent from the data never trigger removal.
func emptyReference(e *Engine, body string, s scope) bool {
	for _, tok := range parse.Placeholders(body, e.opts.OpenDelim, e.opts.CloseDelim) {
		switch v := s.lookup(tok.Key).(type) {
		case data.Null:
			return true
		case data.String:
			if v == "" {
				return true
			}
		case data.List:
			if len(v) == 0 {
				return true
			}
		}
	}
	return false
}

// emptyList is true unless v is a sequence with at least one entry.
func emptyList(v data.Value) bool {
	var list, ok = v.(data.List)
	return !ok || len(list) == 0
}

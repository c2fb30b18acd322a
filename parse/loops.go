package parse

import "strings"

// Loop marker spellings. These are fixed: placeholder delimiter
// configuration does not affect them.
const (
	loopStartPrefix = "{LOOP_START:"
	loopEndPrefix   = "{LOOP_END:"
)

// Loop is a matched pair of loop markers and the template between them.
type Loop struct {
	Span
	Name string
	Body Span
}

// LoopRegions returns the outermost loop regions of text in order of
// appearance. Start and end markers pair per name with depth counting, so a
// loop nested inside a same-named loop binds innermost-first. A start marker
// with no matching end yields no region.
func LoopRegions(text string) []Loop {
	var loops []Loop
	var pos int
	for {
		var start, name, ok = scanLoopMarker(text, pos, loopStartPrefix)
		if !ok {
			return loops
		}
		var end, matched = matchLoopEnd(text, start.End, name)
		if !matched {
			pos = start.End
			continue
		}
		loops = append(loops, Loop{Span{start.Start, end.End}, name, Span{start.End, end.Start}})
		pos = end.End
	}
}

// scanLoopMarker finds the first marker with the given prefix at or after
// from, returning its span and name.
func scanLoopMarker(text string, from int, prefix string) (Span, string, bool) {
	var pos = from
	for {
		var rel = strings.Index(text[pos:], prefix)
		if rel < 0 {
			return Span{}, "", false
		}
		var start = pos + rel
		var nameStart = start + len(prefix)
		var nameEnd = nameStart
		for nameEnd < len(text) && isKeyChar(text[nameEnd]) {
			nameEnd++
		}
		if nameEnd > nameStart && nameEnd < len(text) && text[nameEnd] == '}' {
			return Span{start, nameEnd + 1}, text[nameStart:nameEnd], true
		}
		pos = start + 1
	}
}

// matchLoopEnd locates the end marker paired with an already-consumed start
// marker of the given name, counting same-name nesting.
func matchLoopEnd(text string, from int, name string) (Span, bool) {
	var depth = 1
	var pos = from
	for {
		var end, endOK = findNamedMarker(text, pos, loopEndPrefix, name)
		if !endOK {
			return Span{}, false
		}
		var start, startOK = findNamedMarker(text, pos, loopStartPrefix, name)
		if startOK && start.Start < end.Start {
			depth++
			pos = start.End
			continue
		}
		depth--
		if depth == 0 {
			return end, true
		}
		pos = end.End
	}
}

func findNamedMarker(text string, from int, prefix, name string) (Span, bool) {
	var needle = prefix + name + "}"
	var rel = strings.Index(text[from:], needle)
	if rel < 0 {
		return Span{}, false
	}
	return Span{from + rel, from + rel + len(needle)}, true
}

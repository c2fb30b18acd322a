package parse

import (
	"regexp"
	"strings"
)

// Tag is a single open or self-closing markup tag.
type Tag struct {
	Span
	Name        string
	Attrs       string // raw attribute text, trimmed
	SelfClosing bool
}

var attrRe = regexp.MustCompile(`([A-Za-z_][A-Za-z0-9_:.-]*)\s*=\s*(?:"([^"]*)"|'([^']*)')`)

// Attributes parses a raw attribute string into a name→value map by
// matching name="value" and name='value' pairs. Malformed pairs are simply
// absent from the map, never an error.
func Attributes(attrs string) map[string]string {
	var m = make(map[string]string)
	for _, match := range attrRe.FindAllStringSubmatch(attrs, -1) {
		var value = match[2]
		if value == "" {
			value = match[3]
		}
		m[match[1]] = value
	}
	return m
}

// NextTag returns the first open or self-closing tag at or after from.
// Close tags and comment spans are passed over.
func NextTag(text string, from int) (Tag, bool) {
	var pos = from
	for {
		var tok, ok = nextTagToken(text, pos)
		if !ok {
			return Tag{}, false
		}
		if tok.closing {
			pos = tok.End
			continue
		}
		var attrs = strings.TrimSpace(text[tok.Start+1+len(tok.name) : tok.End-1])
		if tok.selfClosing {
			attrs = strings.TrimSpace(strings.TrimSuffix(attrs, "/"))
		}
		return Tag{tok.Span, tok.name, attrs, tok.selfClosing}, true
	}
}

// ElementSpan returns the full span of the element opened by tag, locating
// the matching close tag with same-name depth counting. Self-closing tags
// span only themselves. ok is false when no matching close tag exists.
func ElementSpan(text string, tag Tag) (Span, bool) {
	var outer, _, ok = ElementParts(text, tag)
	return outer, ok
}

// ElementParts returns the outer span and inner content span of the element
// opened by tag. A self-closing tag has an empty inner span at its end.
func ElementParts(text string, tag Tag) (outer, inner Span, ok bool) {
	if tag.SelfClosing {
		return tag.Span, Span{tag.End, tag.End}, true
	}
	var depth = 1
	var pos = tag.End
	for {
		var tok, found = nextTagToken(text, pos)
		if !found {
			return Span{}, Span{}, false
		}
		if strings.EqualFold(tok.name, tag.Name) {
			switch {
			case tok.closing:
				depth--
				if depth == 0 {
					return Span{tag.Start, tok.End}, Span{tag.End, tok.Start}, true
				}
			case !tok.selfClosing:
				depth++
			}
		}
		pos = tok.End
	}
}

// ElementsByID returns the spans of every element whose opening tag carries
// the given id attribute, in order, non-overlapping.
func ElementsByID(text, id string) []Span {
	return matchingElements(text, func(attrs map[string]string) bool {
		return attrs["id"] == id
	})
}

// ElementsByClass returns the spans of every element whose class attribute
// contains the given class name as a whitespace-separated word.
func ElementsByClass(text, class string) []Span {
	return matchingElements(text, func(attrs map[string]string) bool {
		for _, c := range strings.Fields(attrs["class"]) {
			if c == class {
				return true
			}
		}
		return false
	})
}

func matchingElements(text string, match func(map[string]string) bool) []Span {
	var spans []Span
	var pos int
	for {
		var tag, ok = NextTag(text, pos)
		if !ok {
			return spans
		}
		if match(Attributes(tag.Attrs)) {
			if span, closed := ElementSpan(text, tag); closed {
				spans = append(spans, span)
				pos = span.End
				continue
			}
		}
		pos = tag.End
	}
}

// tagToken is a raw open or close tag occurrence.
type tagToken struct {
	Span
	name        string
	closing     bool
	selfClosing bool
}

func nextTagToken(text string, from int) (tagToken, bool) {
	var pos = from
	for {
		var rel = strings.IndexByte(text[pos:], '<')
		if rel < 0 {
			return tagToken{}, false
		}
		var start = pos + rel
		if strings.HasPrefix(text[start:], "<!--") {
			var end = strings.Index(text[start+4:], "-->")
			if end < 0 {
				return tagToken{}, false
			}
			pos = start + 4 + end + 3
			continue
		}
		var p = start + 1
		var closing bool
		if p < len(text) && text[p] == '/' {
			closing = true
			p++
		}
		var nameStart = p
		for p < len(text) && isTagNameChar(text[p], p == nameStart) {
			p++
		}
		if p == nameStart {
			pos = start + 1
			continue
		}
		var name = text[nameStart:p]
		var gt = scanTagEnd(text, p)
		if gt < 0 {
			pos = start + 1
			continue
		}
		var selfClosing = !closing && strings.HasSuffix(strings.TrimRight(text[p:gt], " \t\r\n"), "/")
		return tagToken{Span{start, gt + 1}, name, closing, selfClosing}, true
	}
}

func isTagNameChar(c byte, first bool) bool {
	if 'a' <= c && c <= 'z' || 'A' <= c && c <= 'Z' {
		return true
	}
	return !first && ('0' <= c && c <= '9' || c == '-')
}

// scanTagEnd finds the closing '>' of a tag, honoring quoted attribute
// values. Returns -1 when the tag is unterminated or a stray '<' intervenes.
func scanTagEnd(text string, from int) int {
	var quote byte
	for i := from; i < len(text); i++ {
		var c = text[i]
		switch {
		case quote != 0:
			if c == quote {
				quote = 0
			}
		case c == '"' || c == '\'':
			quote = c
		case c == '>':
			return i
		case c == '<':
			return -1
		}
	}
	return -1
}

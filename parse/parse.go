// Package parse locates the marker language inside page templates:
// placeholder tokens, loop regions, named sections, layout blocks, and the
// markup elements the pruning passes rewrite.
//
// Scanners return byte-offset spans into the input; callers rewrite by
// splicing replacements between spans. Paired markers are matched with
// per-name depth counting, so same-name nesting resolves innermost-first and
// an unmatched marker yields no region, leaving it for the caller to pass
// through as literal text.
package parse

import "strings"

// A Span marks the half-open byte range [Start, End) in the scanned text.
type Span struct {
	Start, End int
}

// Len returns the number of bytes spanned.
func (s Span) Len() int { return s.End - s.Start }

// Of returns the spanned substring of text.
func (s Span) Of(text string) string { return text[s.Start:s.End] }

// Token is a single placeholder occurrence.
type Token struct {
	Span
	Key string
}

// Placeholders returns every well-formed placeholder token in text, in order
// of appearance. A token is the open delimiter, a key of letters, digits,
// underscores, or hyphens, and the close delimiter. Loop, swap, and layout
// markers contain a colon and therefore never scan as placeholders.
func Placeholders(text, open, close string) []Token {
	if open == "" || close == "" {
		return nil
	}
	var tokens []Token
	var pos int
	for {
		var rel = strings.Index(text[pos:], open)
		if rel < 0 {
			return tokens
		}
		var start = pos + rel
		var keyStart = start + len(open)
		var keyEnd = keyStart
		for keyEnd < len(text) && isKeyChar(text[keyEnd]) {
			keyEnd++
		}
		if keyEnd > keyStart && strings.HasPrefix(text[keyEnd:], close) {
			tokens = append(tokens, Token{Span{start, keyEnd + len(close)}, text[keyStart:keyEnd]})
			pos = keyEnd + len(close)
		} else {
			pos = start + 1
		}
	}
}

func isKeyChar(c byte) bool {
	return 'a' <= c && c <= 'z' || 'A' <= c && c <= 'Z' || '0' <= c && c <= '9' || c == '_' || c == '-'
}

// Position converts a byte offset into 1-based line and column numbers.
func Position(text string, off int) (line, col int) {
	if off > len(text) {
		off = len(text)
	}
	line = 1 + strings.Count(text[:off], "\n")
	col = off - strings.LastIndex(text[:off], "\n")
	return line, col
}

// comment is a <!-- --> span and its inner text.
type comment struct {
	Span
	inner string
}

func nextComment(text string, from int) (comment, bool) {
	var rel = strings.Index(text[from:], "<!--")
	if rel < 0 {
		return comment{}, false
	}
	var start = from + rel
	var endRel = strings.Index(text[start+4:], "-->")
	if endRel < 0 {
		return comment{}, false
	}
	var innerEnd = start + 4 + endRel
	return comment{Span{start, innerEnd + 3}, text[start+4 : innerEnd]}, true
}

// Package pagetree converts finished page markup into an ordered tree of
// element and text nodes, the structured form behind the "tree" export.
//
// The converter is deliberately literal: it keeps the markup's own nesting
// and never normalizes tags the way a browser-grade parser would, so a
// template that round-trips through the pipeline untouched also converts
// without surprises. Comments are dropped, unmatched tags fall back to
// text, and surrounding whitespace is trimmed from text nodes.
package pagetree

import (
	"encoding/json"
	"strings"

	"github.com/pagemark/pagemark/parse"
)

// Node is one node of the converted tree: an element carrying a tag,
// attributes, and children, or a text node carrying a string.
type Node struct {
	Type       string            `json:"type"`
	Tag        string            `json:"tag,omitempty"`
	Text       string            `json:"text,omitempty"`
	Attributes map[string]string `json:"attributes,omitempty"`
	Children   []*Node           `json:"children,omitempty"`
}

// Node types.
const (
	TypeElement = "element"
	TypeText    = "text"
)

// Parse converts markup into a sequence of sibling nodes.
func Parse(markup string) []*Node {
	return parseNodes(stripComments(markup))
}

// Marshal renders a node sequence as indented JSON, the wire form of the
// tree export.
func Marshal(nodes []*Node) (string, error) {
	var out, err = json.MarshalIndent(nodes, "", "  ")
	if err != nil {
		return "", err
	}
	return string(out), nil
}

func parseNodes(text string) []*Node {
	var nodes []*Node
	var pos = 0
	for {
		var tag, span, inner, ok = nextElement(text, pos)
		if !ok {
			break
		}
		appendText(&nodes, text[pos:tag.Start])
		nodes = append(nodes, elementNode(text, tag, inner))
		pos = span.End
	}
	appendText(&nodes, text[pos:])
	return nodes
}

// nextElement finds the first tag at or after pos that self-closes or has a
// matching close tag. Tags that never close are left to the surrounding
// text run.
func nextElement(text string, pos int) (parse.Tag, parse.Span, parse.Span, bool) {
	for {
		var tag, ok = parse.NextTag(text, pos)
		if !ok {
			return parse.Tag{}, parse.Span{}, parse.Span{}, false
		}
		if outer, inner, matched := parse.ElementParts(text, tag); matched {
			return tag, outer, inner, true
		}
		pos = tag.End
	}
}

func elementNode(text string, tag parse.Tag, inner parse.Span) *Node {
	var attrs = parse.Attributes(tag.Attrs)
	if len(attrs) == 0 {
		attrs = nil
	}
	var node = &Node{
		Type:       TypeElement,
		Tag:        tag.Name,
		Attributes: attrs,
	}
	if tag.SelfClosing {
		return node
	}
	var content = inner.Of(text)
	if strings.Contains(content, "<") {
		node.Children = parseNodes(content)
	} else if trimmed := strings.TrimSpace(content); trimmed != "" {
		node.Children = []*Node{{Type: TypeText, Text: trimmed}}
	}
	return node
}

func appendText(nodes *[]*Node, s string) {
	if trimmed := strings.TrimSpace(s); trimmed != "" {
		*nodes = append(*nodes, &Node{Type: TypeText, Text: trimmed})
	}
}

func stripComments(markup string) string {
	if !strings.Contains(markup, "<!--") {
		return markup
	}
	var b strings.Builder
	var pos = 0
	for {
		var i = strings.Index(markup[pos:], "<!--")
		if i < 0 {
			break
		}
		var start = pos + i
		var close = strings.Index(markup[start+4:], "-->")
		if close < 0 {
			break
		}
		b.WriteString(markup[pos:start])
		pos = start + 4 + close + 3
	}
	b.WriteString(markup[pos:])
	return b.String()
}

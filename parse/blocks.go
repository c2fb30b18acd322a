package parse

import "strings"

// Layout marker spellings inside comments, and the inline swap prefix.
const (
	blockPrefix    = "BLOCK:"
	endBlockPrefix = "ENDBLOCK:"
	reorderWord    = "REORDER"
	endReorderWord = "ENDREORDER"
	swapPrefix     = "{SWAP:"
)

// Block is a named layout region: <!-- BLOCK:id --> body <!-- ENDBLOCK:id -->.
type Block struct {
	Span
	ID   string
	Body Span
}

// Blocks returns the blocks of text in first-appearance order. An opener
// with no matching closer yields no block.
func Blocks(text string) []Block {
	var blocks []Block
	var pos int
	for {
		var c, ok = nextComment(text, pos)
		if !ok {
			return blocks
		}
		var id, isBlock = blockID(c.inner, blockPrefix)
		if !isBlock {
			pos = c.End
			continue
		}
		var close, closed = findBlockClose(text, c.End, id)
		if !closed {
			pos = c.End
			continue
		}
		blocks = append(blocks, Block{Span{c.Start, close.End}, id, Span{c.End, close.Start}})
		pos = close.End
	}
}

func blockID(inner, prefix string) (string, bool) {
	var trimmed = strings.TrimSpace(inner)
	if !strings.HasPrefix(trimmed, prefix) {
		return "", false
	}
	var id = strings.TrimSpace(strings.TrimPrefix(trimmed, prefix))
	if !validID(id) {
		return "", false
	}
	return id, true
}

func findBlockClose(text string, from int, id string) (Span, bool) {
	var pos = from
	for {
		var c, ok = nextComment(text, pos)
		if !ok {
			return Span{}, false
		}
		if n, isEnd := blockID(c.inner, endBlockPrefix); isEnd && n == id {
			return c.Span, true
		}
		pos = c.End
	}
}

func validID(id string) bool {
	if id == "" {
		return false
	}
	for i := 0; i < len(id); i++ {
		if !isKeyChar(id[i]) {
			return false
		}
	}
	return true
}

// Reorder is the container region replaced wholesale by an ordered
// concatenation of block contents.
type Reorder struct {
	Span
	Body Span
}

// ReorderSpan returns the first terminated reorder container in text.
func ReorderSpan(text string) (Reorder, bool) {
	var pos int
	for {
		var c, ok = nextComment(text, pos)
		if !ok {
			return Reorder{}, false
		}
		if strings.TrimSpace(c.inner) == reorderWord {
			if end, closed := findReorderEnd(text, c.End); closed {
				return Reorder{Span{c.Start, end.End}, Span{c.End, end.Start}}, true
			}
		}
		pos = c.End
	}
}

func findReorderEnd(text string, from int) (Span, bool) {
	var pos = from
	for {
		var c, ok = nextComment(text, pos)
		if !ok {
			return Span{}, false
		}
		if strings.TrimSpace(c.inner) == endReorderWord {
			return c.Span, true
		}
		pos = c.End
	}
}

// Swap is an inline directive exchanging two blocks' content: {SWAP:a:b}.
type Swap struct {
	Span
	From, To string
}

// InlineSwaps returns the inline swap directives of text in order of
// appearance.
func InlineSwaps(text string) []Swap {
	var swaps []Swap
	var pos int
	for {
		var rel = strings.Index(text[pos:], swapPrefix)
		if rel < 0 {
			return swaps
		}
		var start = pos + rel
		var from, p = scanID(text, start+len(swapPrefix))
		if from == "" || p >= len(text) || text[p] != ':' {
			pos = start + 1
			continue
		}
		var to, q = scanID(text, p+1)
		if to == "" || q >= len(text) || text[q] != '}' {
			pos = start + 1
			continue
		}
		swaps = append(swaps, Swap{Span{start, q + 1}, from, to})
		pos = q + 1
	}
}

func scanID(text string, from int) (string, int) {
	var end = from
	for end < len(text) && isKeyChar(text[end]) {
		end++
	}
	return text[from:end], end
}

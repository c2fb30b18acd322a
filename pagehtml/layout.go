package pagehtml

import (
	"sort"
	"strings"

	"github.com/pagemark/pagemark/data"
	"github.com/pagemark/pagemark/parse"
)

// applyLayout rearranges marked blocks. Block content is captured first,
// then inline and data-driven swaps exchange content between ids, then a
// reorder container (when the data supplies a layoutOrder) is replaced by
// the listed blocks in order, and finally every remaining block region is
// replaced by its content, swapped or not. Marker comments and swap
// directives never survive into the output.
func applyLayout(e *Engine, text string, s scope) string {
	var blocks = parse.Blocks(text)
	var swaps = parse.InlineSwaps(text)
	if len(blocks) == 0 && len(swaps) == 0 {
		return text
	}

	var content = make(map[string]string, len(blocks))
	for _, b := range blocks {
		content[b.ID] = stripInlineSwaps(b.Body.Of(text))
	}
	for _, sw := range swaps {
		swapContent(content, sw.From, sw.To)
	}
	for _, sw := range dataSwaps(s) {
		swapContent(content, sw.from, sw.to)
	}

	type splice struct {
		span parse.Span
		text string
	}
	var splices []splice

	var reorder, hasReorder = parse.ReorderSpan(text)
	var order = layoutOrder(s)
	var useReorder = hasReorder && len(order) > 0
	if useReorder {
		var b strings.Builder
		for _, id := range order {
			if c, ok := content[id]; ok {
				b.WriteString(c)
			}
		}
		splices = append(splices, splice{reorder.Span, b.String()})
	}
	for _, blk := range blocks {
		if useReorder && reorder.Start <= blk.Start && blk.End <= reorder.End {
			continue
		}
		splices = append(splices, splice{blk.Span, content[blk.ID]})
	}
	for _, sw := range swaps {
		var covered = false
		for _, sp := range splices {
			if sp.span.Start <= sw.Start && sw.End <= sp.span.End {
				covered = true
				break
			}
		}
		if !covered {
			splices = append(splices, splice{sw.Span, ""})
		}
	}

	sort.Slice(splices, func(i, j int) bool { return splices[i].span.Start < splices[j].span.Start })
	var b strings.Builder
	var last = 0
	for _, sp := range splices {
		if sp.span.Start < last {
			// regions interleave only in malformed markup; first wins
			continue
		}
		b.WriteString(text[last:sp.span.Start])
		b.WriteString(sp.text)
		last = sp.span.End
	}
	b.WriteString(text[last:])
	return b.String()
}

// layoutOrder reads the layoutOrder list from the data; non-string entries
// are skipped.
func layoutOrder(s scope) []string {
	var list, ok = s.lookup("layoutOrder").(data.List)
	if !ok {
		return nil
	}
	var order = make([]string, 0, len(list))
	for _, v := range list {
		if id, ok := v.(data.String); ok {
			order = append(order, string(id))
		}
	}
	return order
}

type swapPair struct {
	from, to string
}

// dataSwaps reads the swaps list from the data: mappings with string from
// and to fields, applied in list order.
func dataSwaps(s scope) []swapPair {
	var list, ok = s.lookup("swaps").(data.List)
	if !ok {
		return nil
	}
	var pairs = make([]swapPair, 0, len(list))
	for _, v := range list {
		var m, okMap = v.(data.Map)
		if !okMap {
			continue
		}
		var from, okFrom = m.Key("from").(data.String)
		var to, okTo = m.Key("to").(data.String)
		if okFrom && okTo {
			pairs = append(pairs, swapPair{string(from), string(to)})
		}
	}
	return pairs
}

// swapContent exchanges the content of two block ids. If either id is
// unknown the pair is skipped.
func swapContent(content map[string]string, from, to string) {
	var cf, okFrom = content[from]
	var ct, okTo = content[to]
	if !okFrom || !okTo {
		return
	}
	content[from], content[to] = ct, cf
}

func stripInlineSwaps(body string) string {
	var swaps = parse.InlineSwaps(body)
	if len(swaps) == 0 {
		return body
	}
	var spans = make([]parse.Span, len(swaps))
	for i, sw := range swaps {
		spans[i] = sw.Span
	}
	return removeSpans(body, spans)
}

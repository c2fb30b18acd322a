package pagehtml

import (
	"strconv"
	"strings"

	"github.com/pagemark/pagemark/data"
	"github.com/pagemark/pagemark/parse"
)

// indexToken is the reserved loop-local token. It always uses braces, no
// matter which delimiters the engine was configured with.
const indexToken = "{index}"

// expandLoops replaces every outermost loop region with its per-entry
// expansion. A name whose value is missing, not a sequence, or an empty
// sequence erases the region entirely, markers included.
func expandLoops(e *Engine, text string, s scope) string {
	var regions = parse.LoopRegions(text)
	if len(regions) == 0 {
		return text
	}
	var b strings.Builder
	var last = 0
	for _, region := range regions {
		b.WriteString(text[last:region.Start])
		b.WriteString(expandLoop(e, region.Body.Of(text), region.Name, s))
		last = region.End
	}
	b.WriteString(text[last:])
	return b.String()
}

// expandLoop renders body once per entry, joining the renditions with
// single newlines. Each entry substitutes the index token, expands any
// nested loops against the entry's scope, and then resolves placeholders
// item-first.
func expandLoop(e *Engine, body, name string, s scope) string {
	var list, ok = s.lookup(name).(data.List)
	if !ok || len(list) == 0 {
		return ""
	}
	var entries = make([]string, len(list))
	for i, entry := range list {
		var item, ok = entry.(data.Map)
		if !ok {
			item = data.Map{}
		}
		var itemScope = s.push(item)
		var rendered = strings.ReplaceAll(body, indexToken, strconv.Itoa(i))
		rendered = expandLoops(e, rendered, itemScope)
		if e.opts.ProcessPlaceholders {
			rendered = resolvePlaceholders(e, rendered, itemScope)
		}
		entries[i] = rendered
	}
	return strings.Join(entries, "\n")
}

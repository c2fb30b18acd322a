package pagehtml

import (
	"strings"

	"github.com/pagemark/pagemark/parse"
)

// resolvePlaceholders substitutes every placeholder token whose key is
// defined in scope. A key that is absent from every map leaves its token in
// the text verbatim; a key defined as null renders as the empty string.
func resolvePlaceholders(e *Engine, text string, s scope) string {
	var tokens = parse.Placeholders(text, e.opts.OpenDelim, e.opts.CloseDelim)
	if len(tokens) == 0 {
		return text
	}
	var b strings.Builder
	var last = 0
	for _, tok := range tokens {
		var value = s.lookup(tok.Key)
		if isUndefined(value) {
			continue
		}
		b.WriteString(text[last:tok.Start])
		b.WriteString(renderValue(tok.Key, value))
		last = tok.End
	}
	b.WriteString(text[last:])
	return b.String()
}

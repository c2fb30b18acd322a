package pagehtml

import "github.com/pagemark/pagemark/data"

// scope is a stack of data maps. Lookups try the most recently pushed map
// first, so a loop item shadows the page data, which in turn shadows any
// bundle globals beneath it.
type scope []data.Map

// push returns a new scope with m stacked on top. The receiver is copied,
// never mutated, so sibling loop entries cannot see each other's scope.
func (s scope) push(m data.Map) scope {
	var out = make(scope, len(s), len(s)+1)
	copy(out, s)
	return append(out, m)
}

// lookup returns the value for key from the innermost map that defines it,
// or Undefined when no map does.
func (s scope) lookup(key string) data.Value {
	for i := len(s) - 1; i >= 0; i-- {
		if v, ok := s[i][key]; ok {
			return v
		}
	}
	return data.Undefined{}
}

func isUndefined(v data.Value) bool {
	var _, ok = v.(data.Undefined)
	return ok
}

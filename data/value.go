package data

import (
	"math"
	"sort"
	"strconv"
	"strings"
)

// Value represents a page data value, which may be one of the enumerated
// types. The zero value represents an Undefined value.
type Value interface {
	// Truthy returns true according to the Javascript definition of truthy
	// and falsy values.
	Truthy() bool

	// String formats this value for insertion into a page.
	String() string

	// Blank returns true if the value has no usable content: undefined,
	// null, false, zero, a whitespace-only string, or an empty list.
	Blank() bool
}

// Value types
type (
	Undefined struct{}
	Null      struct{}
	Bool      bool
	Int       int64
	Float     float64
	String    string
	List      []Value
	Map       map[string]Value
)

// Index retrieves a value from this list, or Undefined if out of bounds.
func (v List) Index(i int) Value {
	if !(0 <= i && i < len(v)) {
		return Undefined{}
	}
	return v[i]
}

// Key retrieves a value under the named key, or Undefined if it doesn't exist.
func (v Map) Key(k string) Value {
	var result, ok = v[k]
	if !ok {
		return Undefined{}
	}
	return result
}

// Truthy ----------

func (v Undefined) Truthy() bool { return false }
func (v Null) Truthy() bool      { return false }
func (v Bool) Truthy() bool      { return bool(v) }
func (v Int) Truthy() bool       { return v != 0 }
func (v Float) Truthy() bool     { return v != 0.0 && !math.IsNaN(float64(v)) }
func (v String) Truthy() bool    { return v != "" }
func (v List) Truthy() bool      { return true }
func (v Map) Truthy() bool       { return true }

// String ----------

func (v Undefined) String() string { return "" }
func (v Null) String() string      { return "" }
func (v Bool) String() string      { return strconv.FormatBool(bool(v)) }
func (v Int) String() string       { return strconv.FormatInt(int64(v), 10) }
func (v Float) String() string     { return strconv.FormatFloat(float64(v), 'g', -1, 64) }
func (v String) String() string    { return string(v) }

func (v List) String() string {
	var items = make([]string, len(v))
	for i, item := range v {
		items[i] = item.String()
	}
	return strings.Join(items, ", ")
}

// Map formats with sorted keys so that output is deterministic.
func (v Map) String() string {
	var keys = make([]string, 0, len(v))
	for k := range v {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	var items = make([]string, len(keys))
	for i, k := range keys {
		items[i] = k + ": " + v[k].String()
	}
	return "{" + strings.Join(items, ", ") + "}"
}

// Blank ----------

func (v Undefined) Blank() bool { return true }
func (v Null) Blank() bool      { return true }
func (v Bool) Blank() bool      { return !bool(v) }
func (v Int) Blank() bool       { return v == 0 }
func (v Float) Blank() bool     { return v == 0.0 || math.IsNaN(float64(v)) }
func (v String) Blank() bool    { return strings.TrimSpace(string(v)) == "" }
func (v List) Blank() bool      { return len(v) == 0 }
func (v Map) Blank() bool       { return false }

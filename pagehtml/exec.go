// Package pagehtml implements the marker-processing pipeline that turns a
// page template plus a data map into finished HTML.
//
// The pipeline is a fixed sequence of pure text transforms: loop regions
// expand first so their bodies resolve against per-item scopes, placeholder
// tokens resolve next, then data-driven element pruning, block layout, and
// section removal operate on the substituted text, and a whitespace cleanup
// closes out. Each stage can be disabled through Options; the relative
// order of the enabled stages never changes.
package pagehtml

import (
	"regexp"
	"strings"

	"github.com/pagemark/pagemark/data"
)

// Engine applies the processing pipeline to page templates. An Engine is
// immutable after construction and safe for concurrent use.
type Engine struct {
	opts Options
}

// Options configure an Engine. Empty delimiters fall back to "{" and "}".
// The delimiters affect placeholder tokens only; the spellings of loop,
// section, block, and swap markers are fixed.
type Options struct {
	RemoveEmptySections bool
	ProcessLoops        bool
	ProcessPlaceholders bool
	OpenDelim           string
	CloseDelim          string
}

// DefaultOptions enables every stage and uses brace delimiters.
var DefaultOptions = Options{
	RemoveEmptySections: true,
	ProcessLoops:        true,
	ProcessPlaceholders: true,
	OpenDelim:           "{",
	CloseDelim:          "}",
}

// New returns an Engine with DefaultOptions.
func New() *Engine {
	return NewWithOptions(DefaultOptions)
}

// NewWithOptions returns an Engine with the given options.
func NewWithOptions(opts Options) *Engine {
	if opts.OpenDelim == "" {
		opts.OpenDelim = DefaultOptions.OpenDelim
	}
	if opts.CloseDelim == "" {
		opts.CloseDelim = DefaultOptions.CloseDelim
	}
	return &Engine{opts}
}

// Options returns the engine's configuration.
func (e *Engine) Options() Options {
	return e.opts
}

// stage is one named transform of the pipeline.
type stage struct {
	name    string
	enabled func(Options) bool
	apply   func(*Engine, string, scope) string
}

func always(Options) bool { return true }

// pipeline is the fixed stage order.
var pipeline = []stage{
	{"loops", func(o Options) bool { return o.ProcessLoops }, expandLoops},
	{"placeholders", func(o Options) bool { return o.ProcessPlaceholders }, resolvePlaceholders},
	{"elements", always, pruneElements},
	{"layout", always, applyLayout},
	{"sections", func(o Options) bool { return o.RemoveEmptySections }, pruneSections},
	{"cleanup", always, cleanupWhitespace},
}

// Stages returns the pipeline stage names in execution order.
func Stages() []string {
	var names = make([]string, len(pipeline))
	for i, st := range pipeline {
		names[i] = st.name
	}
	return names
}

// Process runs the enabled pipeline stages over text. Contexts stack in
// argument order with later maps shadowing earlier ones, so passing
// (globals, pageData) lets page data win; loop item scopes shadow them all.
// Process never fails: template problems degrade to unprocessed text.
func (e *Engine) Process(text string, contexts ...data.Map) string {
	var s = make(scope, 0, len(contexts))
	for _, c := range contexts {
		if c != nil {
			s = append(s, c)
		}
	}
	for _, st := range pipeline {
		if st.enabled(e.opts) {
			text = st.apply(e, text, s)
		}
	}
	return text
}

var blankRuns = regexp.MustCompile(`\n{3,}`)

// cleanupWhitespace collapses runs of three or more newlines, left behind
// by erased regions, to a single blank line and trims the ends.
func cleanupWhitespace(e *Engine, text string, s scope) string {
	return strings.TrimSpace(blankRuns.ReplaceAllString(text, "\n\n"))
}

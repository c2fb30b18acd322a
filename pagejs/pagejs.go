// Package pagejs generates browser-side Javascript renderers for page
// templates. A generated renderer is a single function taking a data object
// and returning the finished page, running the same pipeline as the Go
// engine. The generated javascript requires lib/pagemark.js to already have
// been loaded; WriteFile emits a self-contained script that includes it.
package pagejs

import (
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"regexp"
	"strconv"

	"github.com/pagemark/pagemark/data"
	"github.com/pagemark/pagemark/pagehtml"
	"github.com/pagemark/pagemark/template"
)

//go:embed lib/pagemark.js
var runtime string

// Runtime returns the source of the browser runtime the generated
// renderers call into.
func Runtime() string {
	return runtime
}

// Options for js source generation. A zero Engine configuration means
// pagehtml.DefaultOptions. Globals are baked into each renderer as the
// outermost scope, below the data passed at render time.
type Options struct {
	Engine  pagehtml.Options
	Globals data.Map
}

// Generator provides an interface to a template registry capable of
// generating javascript renderers for the embodied templates.
type Generator struct {
	registry *template.Registry
}

// NewGenerator returns a new javascript generator capable of producing
// renderers for the templates contained in the given registry.
func NewGenerator(registry *template.Registry) *Generator {
	return &Generator{registry}
}

var ErrNotFound = errors.New("template not found")

// WriteRenderer generates the renderer function for the named template.
func (gen *Generator) WriteRenderer(out io.Writer, name string, opts Options) error {
	var t = gen.registry.Template(name)
	if t == nil {
		return ErrNotFound
	}
	return writeRenderer(out, t, opts)
}

// WriteFile generates a self-contained script: the runtime followed by a
// renderer for every registered template.
func (gen *Generator) WriteFile(out io.Writer, opts Options) error {
	if _, err := io.WriteString(out, runtime); err != nil {
		return err
	}
	for i := range gen.registry.Templates {
		if err := writeRenderer(out, &gen.registry.Templates[i], opts); err != nil {
			return err
		}
	}
	return nil
}

func writeRenderer(out io.Writer, t *template.Template, opts Options) error {
	var engineJSON, err = json.Marshal(runtimeOptions(opts.Engine))
	if err != nil {
		return err
	}
	var globalsJSON = []byte("null")
	if opts.Globals != nil {
		if globalsJSON, err = json.Marshal(opts.Globals); err != nil {
			return err
		}
	}
	_, err = fmt.Fprintf(out, "\npagemark.%s = function(data) {\n  return pagemark.$$process(%s, data, %s, %s);\n};\n",
		FuncName(t.Name), strconv.Quote(t.Content), engineJSON, globalsJSON)
	return err
}

// engineOptions is the runtime's option object. Field names match the keys
// pagemark.$$options reads.
type engineOptions struct {
	RemoveEmptySections bool   `json:"removeEmptySections"`
	ProcessLoops        bool   `json:"processLoops"`
	ProcessPlaceholders bool   `json:"processPlaceholders"`
	OpenDelim           string `json:"openDelim"`
	CloseDelim          string `json:"closeDelim"`
}

func runtimeOptions(opts pagehtml.Options) engineOptions {
	if opts == (pagehtml.Options{}) {
		opts = pagehtml.DefaultOptions
	}
	opts = pagehtml.NewWithOptions(opts).Options()
	return engineOptions{
		RemoveEmptySections: opts.RemoveEmptySections,
		ProcessLoops:        opts.ProcessLoops,
		ProcessPlaceholders: opts.ProcessPlaceholders,
		OpenDelim:           opts.OpenDelim,
		CloseDelim:          opts.CloseDelim,
	}
}

var funcNameSanitizer = regexp.MustCompile(`[^A-Za-z0-9_]`)

// FuncName returns the property of the pagemark namespace under which the
// renderer for the named template is defined: "render_" plus the template
// name with every character outside [A-Za-z0-9_] replaced by an underscore.
func FuncName(name string) string {
	return "render_" + funcNameSanitizer.ReplaceAllString(name, "_")
}

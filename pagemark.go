package pagemark

import (
	"errors"
	"fmt"
	"io"

	"github.com/pagemark/pagemark/data"
	"github.com/pagemark/pagemark/pagehtml"
	"github.com/pagemark/pagemark/template"
)

// ErrTemplateNotFound is returned when rendering is requested under a name
// no template was registered with.
var ErrTemplateNotFound = errors.New("template not found")

// Engine is a compiled bundle, ready to render its templates.
type Engine struct {
	registry *template.Registry
	globals  data.Map
	html     *pagehtml.Engine
}

// Registry returns the engine's template registry.
func (e *Engine) Registry() *template.Registry {
	return e.registry
}

// Globals returns the values every page's data can fall back to.
func (e *Engine) Globals() data.Map {
	return e.globals
}

// Options returns the engine's pipeline configuration.
func (e *Engine) Options() pagehtml.Options {
	return e.html.Options()
}

// Process renders the named template with the given data, which may be nil,
// a map, or a struct. Struct fields convert to lowerCamel keys per
// data.DefaultStructOptions.
func (e *Engine) Process(name string, obj interface{}) (string, error) {
	var t = e.registry.Template(name)
	if t == nil {
		return "", fmt.Errorf("%w: %q", ErrTemplateNotFound, name)
	}
	var m, err = dataMap(obj)
	if err != nil {
		return "", err
	}
	return e.html.Process(t.Content, e.globals, m), nil
}

// Render renders the named template with the given data and writes the
// finished page to w.
func (e *Engine) Render(w io.Writer, name string, obj interface{}) error {
	var page, err = e.Process(name, obj)
	if err != nil {
		return err
	}
	_, err = io.WriteString(w, page)
	return err
}

// Export renders the named template and converts the result to the
// requested format.
func (e *Engine) Export(name string, obj interface{}, format string) (pagehtml.Artifact, error) {
	var t = e.registry.Template(name)
	if t == nil {
		return pagehtml.Artifact{}, fmt.Errorf("%w: %q", ErrTemplateNotFound, name)
	}
	var m, err = dataMap(obj)
	if err != nil {
		return pagehtml.Artifact{}, err
	}
	return e.html.Export(t.Content, format, e.globals, m)
}

func dataMap(obj interface{}) (data.Map, error) {
	if obj == nil {
		return nil, nil
	}
	var m, ok = data.New(obj).(data.Map)
	if !ok {
		return nil, fmt.Errorf("invalid data type. expected map or struct, got %T", obj)
	}
	return m, nil
}

// Process compiles the given template text as a single anonymous template
// and renders it with the given data.
func Process(text string, obj interface{}) (string, error) {
	var engine, err = NewBundle().AddTemplateString("inline", text).Compile()
	if err != nil {
		return "", err
	}
	return engine.Process("inline", obj)
}

// Export compiles the given template text as a single anonymous template,
// renders it, and converts the result to the requested format.
func Export(text, format string, obj interface{}) (pagehtml.Artifact, error) {
	var engine, err = NewBundle().AddTemplateString("inline", text).Compile()
	if err != nil {
		return pagehtml.Artifact{}, err
	}
	return engine.Export("inline", obj, format)
}

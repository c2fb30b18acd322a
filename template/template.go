// Package template stores the named page templates of a compiled bundle.
package template

// Template is a single named page template: raw markup interleaved with the
// marker language understood by the processing pipeline.
type Template struct {
	Name    string
	Content string
}

// Registry holds the templates of one compiled bundle.
type Registry struct {
	Templates []Template
}

// Add registers the given template, replacing any previous registration
// under the same name.
func (r *Registry) Add(t Template) {
	for i := range r.Templates {
		if r.Templates[i].Name == t.Name {
			r.Templates[i] = t
			return
		}
	}
	r.Templates = append(r.Templates, t)
}

// Template returns the named template, or nil if none is registered.
func (r *Registry) Template(name string) *Template {
	for i := range r.Templates {
		if r.Templates[i].Name == name {
			return &r.Templates[i]
		}
	}
	return nil
}

// Names returns the registered template names in registration order.
func (r *Registry) Names() []string {
	var names []string
	for _, t := range r.Templates {
		names = append(names, t.Name)
	}
	return names
}

package pagemark

import (
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/pagemark/pagemark/data"
	"github.com/pagemark/pagemark/pagehtml"
	"github.com/pagemark/pagemark/parse"
	"github.com/pagemark/pagemark/template"
)

// Logger is used to print notifications and compile errors when using the
// "WatchFiles" feature.
var Logger = log.New(os.Stderr, "[pagemark] ", 0)

// source is one template registration. Templates read from a file keep
// their path so the watcher can re-read them.
type source struct {
	name    string
	content string
	path    string
}

// Bundle is a collection of page content (templates and globals). It acts
// as input for compilation into an Engine.
type Bundle struct {
	sources               []source
	globals               data.Map
	opts                  pagehtml.Options
	err                   error
	watcher               *fsnotify.Watcher
	recompilationCallback func(*Engine)
}

// NewBundle returns an empty bundle with default engine options.
func NewBundle() *Bundle {
	return &Bundle{globals: make(data.Map), opts: pagehtml.DefaultOptions}
}

// WatchFiles tells the bundle to watch any template files added to it,
// re-compile as necessary, and propagate the updates to the compiled
// engine. It should be called once, before adding any files.
func (b *Bundle) WatchFiles(watch bool) *Bundle {
	if watch && b.err == nil && b.watcher == nil {
		b.watcher, b.err = fsnotify.NewWatcher()
	}
	return b
}

// AddTemplateDir adds all .html and .tmpl files found within the given
// directory (including sub-directories) to the bundle.
func (b *Bundle) AddTemplateDir(root string) *Bundle {
	var err = filepath.Walk(root, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() {
			return nil
		}
		switch filepath.Ext(path) {
		case ".html", ".tmpl":
			b.AddTemplateFile(path)
		}
		return nil
	})
	if err != nil {
		b.err = err
	}
	return b
}

// AddTemplateFile adds the given template file to this bundle, registered
// under its base name without the extension. If WatchFiles is on, it will
// be subsequently watched for updates.
func (b *Bundle) AddTemplateFile(path string) *Bundle {
	var content, err = os.ReadFile(path)
	if err != nil {
		b.err = err
		return b
	}
	if b.watcher != nil {
		if err := b.watcher.Add(path); err != nil {
			b.err = err
		}
	}
	b.sources = append(b.sources, source{templateName(path), string(content), path})
	return b
}

func templateName(path string) string {
	var base = filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// AddTemplateString adds the given template to the bundle under the given
// name. The name is used for lookup and lint messages; it does not need to
// be a filename.
func (b *Bundle) AddTemplateString(name, content string) *Bundle {
	b.sources = append(b.sources, source{name, content, ""})
	return b
}

// AddGlobalsFile parses the given YAML or JSON file and merges the
// resulting map into the bundle's globals.
func (b *Bundle) AddGlobalsFile(path string) *Bundle {
	var globals, err = data.ParseFile(path)
	if err != nil {
		b.err = err
		return b
	}
	return b.AddGlobalsMap(globals)
}

// AddGlobalsMap merges the given map into the bundle's globals. A key
// added earlier is overwritten.
func (b *Bundle) AddGlobalsMap(globals data.Map) *Bundle {
	for k, v := range globals {
		b.globals[k] = v
	}
	return b
}

// SetOptions configures the pipeline of the compiled engine.
func (b *Bundle) SetOptions(opts pagehtml.Options) *Bundle {
	b.opts = opts
	return b
}

// SetRecompilationCallback assigns the bundle a function to call after a
// successful watch-triggered recompilation. This is called before updating
// the in-use engine.
func (b *Bundle) SetRecompilationCallback(c func(*Engine)) *Bundle {
	b.recompilationCallback = c
	return b
}

// Compile lints and registers every template in this bundle and returns an
// Engine ready to render them.
func (b *Bundle) Compile() (*Engine, error) {
	if b.err != nil {
		return nil, b.err
	}
	var registry = &template.Registry{}
	for _, src := range b.sources {
		if err := parse.Check(src.name, src.content); err != nil {
			return nil, err
		}
		registry.Add(template.Template{Name: src.name, Content: src.content})
	}
	var engine = &Engine{
		registry: registry,
		globals:  b.globals,
		html:     pagehtml.NewWithOptions(b.opts),
	}
	if b.watcher != nil {
		go b.recompiler(engine)
	}
	return engine, nil
}

func (b *Bundle) recompiler(e *Engine) {
	for {
		select {
		case ev, ok := <-b.watcher.Events:
			if !ok {
				return
			}
			// A rename or remove drops the file from the watch list.
			// Re-add it after a delay, once the editor has finished writing.
			if ev.Has(fsnotify.Rename) || ev.Has(fsnotify.Remove) {
				time.Sleep(10 * time.Millisecond)
				if err := b.watcher.Add(ev.Name); err != nil {
					Logger.Println(err)
				}
			}

			var fresh, err = b.reload().Compile()
			if err != nil {
				Logger.Println(err)
				continue
			}
			if b.recompilationCallback != nil {
				b.recompilationCallback(fresh)
			}

			// Update the registry in use. (This is not goroutine-safe, but
			// that seems ok for a development aid, as long as it works in
			// practice.)
			*e.registry = *fresh.registry
			Logger.Printf("update successful (%v)", ev)

		case err, ok := <-b.watcher.Errors:
			if !ok {
				return
			}
			Logger.Println(err)
		}
	}
}

// reload returns a fresh bundle with file-backed templates re-read from
// disk and inline templates, globals, and options carried over.
func (b *Bundle) reload() *Bundle {
	var fresh = NewBundle().SetOptions(b.opts).AddGlobalsMap(b.globals)
	for _, src := range b.sources {
		if src.path != "" {
			fresh.AddTemplateFile(src.path)
		} else {
			fresh.AddTemplateString(src.name, src.content)
		}
	}
	return fresh
}

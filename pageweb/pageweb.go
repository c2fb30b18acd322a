/*
Command pageweb is a simple development server for page templates.

Invoke it like so:

	go run github.com/pagemark/pagemark/pageweb -dir ./pages

It serves GET /<template> by rendering the template of that name found in
the directory. Data comes from a YAML or JSON file named by the "data"
query parameter; any other query parameters are added as string values.
The "format" parameter selects an export format (html, markdown, text, or
tree). GET /pagemark.js serves the browser runtime plus a renderer for
every template. Templates are re-read on every request, so edits show up
on reload.
*/
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"net/http"
	"strings"

	"github.com/pagemark/pagemark"
	"github.com/pagemark/pagemark/data"
	"github.com/pagemark/pagemark/pagehtml"
	"github.com/pagemark/pagemark/pagejs"
)

var (
	port    = flag.Int("port", 8930, "port on which to listen")
	dir     = flag.String("dir", ".", "directory of page templates")
	globals = flag.String("globals", "", "optional YAML or JSON globals file")
)

func main() {
	flag.Parse()
	fmt.Printf("Listening on :%d...\n", *port)
	log.Fatal(http.ListenAndServe(
		fmt.Sprintf(":%d", *port),
		http.HandlerFunc(handler)))
}

func handler(res http.ResponseWriter, req *http.Request) {
	var engine, err = compile()
	if err != nil {
		http.Error(res, err.Error(), 500)
		return
	}

	var name = strings.Trim(req.URL.Path, "/")
	switch name {
	case "":
		res.Header().Set("Content-Type", "text/plain; charset=utf-8")
		for _, n := range engine.Registry().Names() {
			fmt.Fprintln(res, n)
		}
		return
	case "pagemark.js":
		res.Header().Set("Content-Type", "application/javascript")
		var gen = pagejs.NewGenerator(engine.Registry())
		if err := gen.WriteFile(res, pagejs.Options{Engine: engine.Options(), Globals: engine.Globals()}); err != nil {
			http.Error(res, err.Error(), 500)
		}
		return
	}

	m, format, err := query(req)
	if err != nil {
		http.Error(res, err.Error(), 500)
		return
	}
	artifact, err := engine.Export(name, m, format)
	if err != nil {
		http.Error(res, err.Error(), 500)
		return
	}
	out, err := artifact.Output()
	if err != nil {
		http.Error(res, err.Error(), 500)
		return
	}
	res.Header().Set("Content-Type", contentType(format))
	io.WriteString(res, out)
}

// compile builds a fresh engine from the template directory. Recompiling
// per request keeps editing live without a watcher.
func compile() (*pagemark.Engine, error) {
	var bundle = pagemark.NewBundle()
	if *globals != "" {
		bundle.AddGlobalsFile(*globals)
	}
	return bundle.AddTemplateDir(*dir).Compile()
}

// query assembles the render data: the "data" parameter names a YAML or
// JSON file, and every other parameter overrides a key as a string value.
func query(req *http.Request) (data.Map, string, error) {
	var m = data.Map{}
	var q = req.URL.Query()
	if path := q.Get("data"); path != "" {
		var file, err = data.ParseFile(path)
		if err != nil {
			return nil, "", err
		}
		m = file
	}
	for k, v := range q {
		if k == "data" || k == "format" {
			continue
		}
		m[k] = data.String(v[0])
	}
	var format = q.Get("format")
	if format == "" {
		format = pagehtml.FormatHTML
	}
	return m, format, nil
}

func contentType(format string) string {
	switch format {
	case pagehtml.FormatHTML:
		return "text/html; charset=utf-8"
	case pagehtml.FormatTree:
		return "application/json"
	}
	return "text/plain; charset=utf-8"
}

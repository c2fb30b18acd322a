/*
Command pagemark renders a page template from the command line.

	pagemark -template home.html -data home.yaml
	pagemark -template home.html -data home.yaml -format markdown
	pagemark -template home.html -format js -out home.js
	pagemark -template home.html -data home.yaml -out out.html -watch

Formats: html (default), markdown, text, tree, and js. The js format emits
the browser runtime plus a render function for the template instead of a
rendered page. With -watch the command stays running and re-renders
whenever the template file changes.
*/
package main

import (
	"flag"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/pagemark/pagemark"
	"github.com/pagemark/pagemark/data"
	"github.com/pagemark/pagemark/pagehtml"
	"github.com/pagemark/pagemark/pagejs"
)

var (
	templatePath = flag.String("template", "", "page template file to render")
	dataPath     = flag.String("data", "", "YAML or JSON data file")
	format       = flag.String("format", pagehtml.FormatHTML, "html, markdown, text, tree, or js")
	outPath      = flag.String("out", "", "output file (default stdout)")
	watch        = flag.Bool("watch", false, "re-render whenever the template changes")
)

func main() {
	flag.Parse()
	log.SetFlags(0)
	if *templatePath == "" {
		flag.Usage()
		os.Exit(2)
	}

	var payload data.Map
	if *dataPath != "" {
		var err error
		if payload, err = data.ParseFile(*dataPath); err != nil {
			log.Fatal(err)
		}
	}

	var name = templateName(*templatePath)
	var bundle = pagemark.NewBundle().
		WatchFiles(*watch).
		AddTemplateFile(*templatePath)
	if *watch {
		bundle.SetRecompilationCallback(func(fresh *pagemark.Engine) {
			if err := render(fresh, name, payload); err != nil {
				pagemark.Logger.Println(err)
			}
		})
	}
	var engine, err = bundle.Compile()
	if err != nil {
		log.Fatal(err)
	}
	if err := render(engine, name, payload); err != nil {
		log.Fatal(err)
	}
	if *watch {
		select {}
	}
}

func render(engine *pagemark.Engine, name string, payload data.Map) error {
	var out io.Writer = os.Stdout
	if *outPath != "" {
		var f, err = os.Create(*outPath)
		if err != nil {
			return err
		}
		defer f.Close()
		out = f
	}

	if *format == "js" {
		return pagejs.NewGenerator(engine.Registry()).WriteFile(out, pagejs.Options{
			Engine:  engine.Options(),
			Globals: engine.Globals(),
		})
	}

	var artifact, err = engine.Export(name, payload, *format)
	if err != nil {
		return err
	}
	text, err := artifact.Output()
	if err != nil {
		return err
	}
	if _, err := io.WriteString(out, text); err != nil {
		return err
	}
	_, err = io.WriteString(out, "\n")
	return err
}

func templateName(path string) string {
	var base = filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

/*
Package pagemark renders page templates: HTML-like markup annotated with a
small marker language of placeholder tokens, loop regions, named sections,
and layout blocks, driven by untyped data.

Usage example

Typically an application keeps a directory of page templates:

	pages/
	pages/home.html
	pages/contact.html

This snippet parses a YAML file of globals and every template under pages/,
and returns an engine that can render any of them. (Error checking is
skipped.)

On startup:

	engine, _ := pagemark.NewBundle().
		WatchFiles(mode == "dev").            // reload templates on change (in dev)
		AddGlobalsFile("pages/globals.yaml"). // values available to every page
		AddTemplateDir("pages").              // load *.html and *.tmpl
		Compile()

To render a page:

	err := engine.Render(resp, "home", map[string]interface{}{
		"businessName": "Acme Plumbing",
		"reviews":      reviews,
	})

Exports

Beyond HTML, a rendered page can be exported as markdown, plain text, or a
JSON markup tree:

	artifact, _ := engine.Export("home", obj, pagehtml.FormatMarkdown)

Advanced usage

The pagemark package is a friendly interface to its sub-packages. Usages
like custom pipelines or marker tooling are better served by using
e.g. pagehtml and parse directly.
*/
package pagemark

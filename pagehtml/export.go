package pagehtml

import (
	"errors"
	"fmt"

	"github.com/pagemark/pagemark/data"
	"github.com/pagemark/pagemark/pagetext"
	"github.com/pagemark/pagemark/pagetree"
)

// Export formats.
const (
	FormatHTML     = "html"
	FormatMarkdown = "markdown"
	FormatText     = "text"
	FormatTree     = "tree"
)

// ErrUnsupportedFormat is returned by Export for an unrecognized format
// name. It is the pipeline's only hard failure; everything else degrades.
var ErrUnsupportedFormat = errors.New("unsupported export format")

// Artifact is one export result. Format names the requested form and the
// matching payload field is set.
type Artifact struct {
	Format   string
	HTML     string
	Markdown string
	Text     string
	Tree     []*pagetree.Node
}

// Output returns the artifact payload as a string. Tree artifacts render
// as indented JSON.
func (a Artifact) Output() (string, error) {
	switch a.Format {
	case FormatHTML:
		return a.HTML, nil
	case FormatMarkdown:
		return a.Markdown, nil
	case FormatText:
		return a.Text, nil
	case FormatTree:
		return pagetree.Marshal(a.Tree)
	}
	return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, a.Format)
}

// Export processes text and converts the finished page to the requested
// format.
func (e *Engine) Export(text, format string, contexts ...data.Map) (Artifact, error) {
	var page = e.Process(text, contexts...)
	switch format {
	case FormatHTML:
		return Artifact{Format: FormatHTML, HTML: page}, nil
	case FormatMarkdown:
		var md, err = pagetext.Markdown(page)
		if err != nil {
			return Artifact{}, err
		}
		return Artifact{Format: FormatMarkdown, Markdown: md}, nil
	case FormatText:
		var txt, err = pagetext.Text(page)
		if err != nil {
			return Artifact{}, err
		}
		return Artifact{Format: FormatText, Text: txt}, nil
	case FormatTree:
		return Artifact{Format: FormatTree, Tree: pagetree.Parse(page)}, nil
	}
	return Artifact{}, fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
}

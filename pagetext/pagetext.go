// Package pagetext converts finished page HTML into the markdown and plain
// text export formats.
package pagetext

import (
	"regexp"
	"strings"

	md "github.com/JohannesKaufmann/html-to-markdown"
	"github.com/PuerkitoBio/goquery"
)

// Markdown converts page HTML to CommonMark markdown.
func Markdown(page string) (string, error) {
	return md.NewConverter("", true, nil).ConvertString(page)
}

// Closing tags that end a paragraph-level block get a blank line in the
// text form; list items, table rows, and explicit breaks get a newline.
var (
	paraBoundary = regexp.MustCompile(`(?i)(</(?:p|div|section|article|aside|header|footer|nav|h[1-6]|blockquote|pre|table|ul|ol)>)`)
	lineBoundary = regexp.MustCompile(`(?i)(</(?:li|tr)>|<br\s*/?>)`)
)

// Text converts page HTML to plain text. Script and style elements are
// dropped, entities decode, block boundaries become line or paragraph
// breaks, and blank runs collapse to a single blank line.
func Text(page string) (string, error) {
	var marked = paraBoundary.ReplaceAllString(page, "$1\n\n")
	marked = lineBoundary.ReplaceAllString(marked, "$1\n")
	var doc, err = goquery.NewDocumentFromReader(strings.NewReader(marked))
	if err != nil {
		return "", err
	}
	doc.Find("script, style").Remove()
	return collapse(doc.Text()), nil
}

// collapse trims every line and squeezes each run of blank lines down to
// one, dropping leading and trailing blanks entirely.
func collapse(s string) string {
	var lines = strings.Split(s, "\n")
	var out = make([]string, 0, len(lines))
	var blank = true
	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" {
			if !blank {
				out = append(out, "")
			}
			blank = true
			continue
		}
		out = append(out, line)
		blank = false
	}
	for len(out) > 0 && out[len(out)-1] == "" {
		out = out[:len(out)-1]
	}
	return strings.Join(out, "\n")
}

package pagehtml

import (
	"errors"
	"reflect"
	"testing"

	"github.com/andreyvit/diff"

	"github.com/pagemark/pagemark/data"
	"github.com/pagemark/pagemark/pagetree"
)

func TestExportHTML(t *testing.T) {
	e := New()
	ctx := data.New(d{"businessName": "Acme"}).(data.Map)
	art, err := e.Export("<h1>{businessName}</h1>", FormatHTML, ctx)
	if err != nil {
		t.Fatal(err)
	}
	if art.Format != FormatHTML || art.HTML != "<h1>Acme</h1>" {
		t.Errorf("got %+v", art)
	}
	out, err := art.Output()
	if err != nil {
		t.Fatal(err)
	}
	if out != "<h1>Acme</h1>" {
		t.Errorf("got %q", out)
	}
}

func TestExportMarkdown(t *testing.T) {
	e := New()
	ctx := data.New(d{"businessName": "Acme"}).(data.Map)
	art, err := e.Export("<h1>{businessName}</h1><p>Hello</p>", FormatMarkdown, ctx)
	if err != nil {
		t.Fatal(err)
	}
	want := "# Acme\n\nHello"
	if art.Markdown != want {
		t.Errorf("mismatch:\n%s", diff.LineDiff(want, art.Markdown))
	}
}

func TestExportText(t *testing.T) {
	e := New()
	ctx := data.New(d{"businessName": "Acme"}).(data.Map)
	art, err := e.Export("<h1>{businessName}</h1><p>Hello</p>", FormatText, ctx)
	if err != nil {
		t.Fatal(err)
	}
	want := "Acme\n\nHello"
	if art.Text != want {
		t.Errorf("mismatch:\n%s", diff.LineDiff(want, art.Text))
	}
}

func TestExportTree(t *testing.T) {
	e := New()
	ctx := data.New(d{"businessName": "Acme"}).(data.Map)
	art, err := e.Export("<p>{businessName}</p>", FormatTree, ctx)
	if err != nil {
		t.Fatal(err)
	}
	want := []*pagetree.Node{
		{Type: pagetree.TypeElement, Tag: "p", Children: []*pagetree.Node{
			{Type: pagetree.TypeText, Text: "Acme"},
		}},
	}
	if !reflect.DeepEqual(art.Tree, want) {
		t.Errorf("got %+v", art.Tree)
	}

	out, err := art.Output()
	if err != nil {
		t.Fatal(err)
	}
	wantJSON := `[
  {
    "type": "element",
    "tag": "p",
    "children": [
      {
        "type": "text",
        "text": "Acme"
      }
    ]
  }
]`
	if out != wantJSON {
		t.Errorf("json mismatch:\n%s", diff.LineDiff(wantJSON, out))
	}
}

func TestExportUnknownFormat(t *testing.T) {
	_, err := New().Export("<p>x</p>", "pdf")
	if err == nil {
		t.Fatal("expected an error")
	}
	if !errors.Is(err, ErrUnsupportedFormat) {
		t.Errorf("got %v, want ErrUnsupportedFormat", err)
	}
}

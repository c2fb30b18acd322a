package pagehtml

import (
	"testing"

	"github.com/pagemark/pagemark/data"
)

func TestRenderRating(t *testing.T) {
	tests := []struct {
		name  string
		value interface{}
		want  string
	}{
		{"four", 4, "★★★★☆"},
		{"numeric string", "3", "★★★☆☆"},
		{"zero", 0, "☆☆☆☆☆"},
		{"five", 5, "★★★★★"},
		{"fraction floors", 4.9, "★★★★☆"},
		{"clamped high", 7, "★★★★★"},
		{"negative is permissive", -1, "★★★★★"},
		{"non-numeric is permissive", "great", "★★★★★"},
		{"null is permissive", nil, "★★★★★"},
		{"bool is permissive", true, "★★★★★"},
		{"padded string", " 2 ", "★★☆☆☆"},
	}
	for _, test := range tests {
		if got := renderRating(data.New(test.value)); got != test.want {
			t.Errorf("%s: got %q, want %q", test.name, got, test.want)
		}
	}
}

func TestRenderVCard(t *testing.T) {
	tests := []struct {
		name  string
		value data.Value
		want  string
	}{
		{"absent renders prefix alone", data.Undefined{}, vcardPrefix},
		{"null renders prefix alone", data.Null{}, vcardPrefix},
		{"ampersand", data.String("A&B"), vcardPrefix + "A%26B"},
		{"spaces use percent-twenty", data.String("FN:John Doe"), vcardPrefix + "FN%3AJohn%20Doe"},
		{"newlines", data.String("a\nb"), vcardPrefix + "a%0Ab"},
	}
	for _, test := range tests {
		if got := renderVCard(test.value); got != test.want {
			t.Errorf("%s: got %q, want %q", test.name, got, test.want)
		}
	}
}

func TestAssetKey(t *testing.T) {
	tests := []struct {
		key  string
		want bool
	}{
		{"logoUrl", true},
		{"headerURL", true},
		{"ctaLink", true},
		{"heroImage", true},
		{"profilePhoto", true},
		{"photograph", true},
		{"imageCount", true},
		{"businessName", false},
		{"curl", false},
		{"urls", false},
	}
	for _, test := range tests {
		if got := assetKey(test.key); got != test.want {
			t.Errorf("%s: got %v, want %v", test.key, got, test.want)
		}
	}
}

func TestRenderAsset(t *testing.T) {
	tests := []struct {
		name  string
		value interface{}
		want  string
	}{
		{"string passes through", "images/logo.png", "images/logo.png"},
		{"string escapes", `x".png`, "x&#34;.png"},
		{"null renders empty", nil, ""},
		{"mapping degrades", d{"path": "x"}, placeholderAsset},
		{"number degrades", 5, placeholderAsset},
		{"bool degrades", true, placeholderAsset},
	}
	for _, test := range tests {
		if got := renderAsset(data.New(test.value)); got != test.want {
			t.Errorf("%s: got %q, want %q", test.name, got, test.want)
		}
	}
}

func TestHTMLEscape(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"plain", "plain"},
		{`<a href="x">`, "&lt;a href=&#34;x&#34;&gt;"},
		{"a & b", "a &amp; b"},
		{"it's", "it&#39;s"},
		{"", ""},
	}
	for _, test := range tests {
		if got := htmlEscapeString(test.in); got != test.want {
			t.Errorf("%q: got %q, want %q", test.in, got, test.want)
		}
	}
}

func TestRenderValueDispatch(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value interface{}
		want  string
	}{
		{"vcard key", "vcard", "A&B", vcardPrefix + "A%26B"},
		{"rating key", "rating", 2, "★★☆☆☆"},
		{"asset key", "photoUrl", 5, placeholderAsset},
		{"plain key escapes", "note", "<hi>", "&lt;hi&gt;"},
		{"plain key stringifies numbers", "year", 1989, "1989"},
	}
	for _, test := range tests {
		if got := renderValue(test.key, data.New(test.value)); got != test.want {
			t.Errorf("%s: got %q, want %q", test.name, got, test.want)
		}
	}
}

package pagehtml

import (
	"strings"

	"github.com/pagemark/pagemark/data"
	"github.com/pagemark/pagemark/parse"
)

// socialLinks pairs each social profile field with the element id its link
// carries in page templates.
var socialLinks = []struct {
	field string
	id    string
}{
	{"facebookUrl", "facebook-link"},
	{"instagramUrl", "instagram-link"},
	{"twitterUrl", "twitter-link"},
	{"linkedinUrl", "linkedin-link"},
	{"youtubeUrl", "youtube-link"},
	{"tiktokUrl", "tiktok-link"},
}

// pruneElements deletes whole elements whose backing data is blank: social
// links by id, contact details by class, and the fixed title element.
// Elements with no matching id or class are untouched.
func pruneElements(e *Engine, text string, s scope) string {
	for _, link := range socialLinks {
		if socialValue(s, link.field).Blank() {
			text = removeSpans(text, parse.ElementsByID(text, link.id))
		}
	}
	if s.lookup("phone").Blank() {
		text = removeSpans(text, parse.ElementsByClass(text, "contact-phone"))
	}
	if s.lookup("website").Blank() {
		text = removeSpans(text, parse.ElementsByClass(text, "contact-website"))
	}
	if addressBlank(s.lookup("address")) {
		text = removeSpans(text, parse.ElementsByClass(text, "contact-address"))
	}
	if s.lookup("title").Blank() {
		text = removeSpans(text, parse.ElementsByID(text, "title"))
	}
	return text
}

// socialValue resolves a social profile field: as a top-level key first,
// then inside the socialMedia group under the field name, then under the
// lowercased network name ("facebookUrl" falls back to "facebook").
func socialValue(s scope, field string) data.Value {
	if v := s.lookup(field); !isUndefined(v) {
		return v
	}
	var group, ok = s.lookup("socialMedia").(data.Map)
	if !ok {
		return data.Undefined{}
	}
	if v := group.Key(field); !isUndefined(v) {
		return v
	}
	return group.Key(strings.ToLower(strings.TrimSuffix(field, "Url")))
}

// addressBlank treats an address as present only when it is a mapping with
// a non-blank street field.
func addressBlank(v data.Value) bool {
	var m, ok = v.(data.Map)
	if !ok {
		return true
	}
	return m.Key("street").Blank()
}

// removeSpans deletes the given non-overlapping, ordered spans from text.
func removeSpans(text string, spans []parse.Span) string {
	if len(spans) == 0 {
		return text
	}
	var b strings.Builder
	var last = 0
	for _, span := range spans {
		b.WriteString(text[last:span.Start])
		last = span.End
	}
	b.WriteString(text[last:])
	return b.String()
}

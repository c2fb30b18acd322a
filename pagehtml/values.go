package pagehtml

import (
	"math"
	"net/url"
	"strconv"
	"strings"

	"github.com/pagemark/pagemark/data"
)

const (
	vcardKey    = "vcard"
	vcardPrefix = "data:text/vcard;charset=utf-8,"

	ratingKey  = "rating"
	filledStar = "★"
	emptyStar  = "☆"

	placeholderAsset = "images/placeholder.png"
)

// renderValue converts a resolved value to its page representation. The key
// selects per-key rendering for contact cards, star ratings, and asset
// references; everything else is stringified and HTML-escaped.
func renderValue(key string, value data.Value) string {
	switch {
	case key == vcardKey:
		return renderVCard(value)
	case key == ratingKey:
		return renderRating(value)
	case assetKey(key):
		return renderAsset(value)
	}
	return htmlEscapeString(value.String())
}

// renderVCard renders a contact payload as a data: URI suitable for a
// download link. Spaces encode as %20, not +.
func renderVCard(value data.Value) string {
	var payload string
	switch value.(type) {
	case data.Undefined, data.Null:
	default:
		payload = value.String()
	}
	return vcardPrefix + strings.ReplaceAll(url.QueryEscape(payload), "+", "%20")
}

// renderRating converts a rating to five star glyphs: floor the number,
// clamp to [0, 5], fill that many. Non-numeric and negative input renders
// all five filled.
func renderRating(value data.Value) string {
	var n = math.NaN()
	switch v := value.(type) {
	case data.Int:
		n = float64(v)
	case data.Float:
		n = float64(v)
	case data.String:
		if f, err := strconv.ParseFloat(strings.TrimSpace(string(v)), 64); err == nil {
			n = f
		}
	}
	if math.IsNaN(n) || n < 0 {
		return strings.Repeat(filledStar, 5)
	}
	if n > 5 {
		n = 5
	}
	var filled = int(n)
	return strings.Repeat(filledStar, filled) + strings.Repeat(emptyStar, 5-filled)
}

// assetKey reports whether a placeholder key names a URL or image asset.
func assetKey(key string) bool {
	if strings.HasSuffix(key, "Url") || strings.HasSuffix(key, "URL") || strings.HasSuffix(key, "Link") {
		return true
	}
	var lower = strings.ToLower(key)
	return strings.Contains(lower, "image") || strings.Contains(lower, "photo")
}

// renderAsset renders an asset reference: strings escape as usual, absent
// values render empty, and any other type degrades to the placeholder
// image path.
func renderAsset(value data.Value) string {
	switch v := value.(type) {
	case data.Undefined, data.Null:
		return ""
	case data.String:
		return htmlEscapeString(string(v))
	}
	return placeholderAsset
}

func htmlEscapeString(s string) string {
	if !strings.ContainsAny(s, `&<>"'`) {
		return s
	}
	var b strings.Builder
	b.Grow(len(s) + 8)
	for i := 0; i < len(s); i++ {
		switch c := s[i]; c {
		case '&':
			b.WriteString("&amp;")
		case '<':
			b.WriteString("&lt;")
		case '>':
			b.WriteString("&gt;")
		case '"':
			b.WriteString("&#34;")
		case '\'':
			b.WriteString("&#39;")
		default:
			b.WriteByte(c)
		}
	}
	return b.String()
}

package pagehtml

import (
	"testing"

	"github.com/pagemark/pagemark/data"
)

func TestSectionRules(t *testing.T) {
	runProcTests(t, New(), []procTest{
		{"about me removed when text blank",
			"<header>Acme</header>\n<!-- About Me section -->\n<p>{aboutMeText}</p>\n<!-- EndAbout Me section -->\n<footer>end</footer>",
			"<header>Acme</header>\n\n<footer>end</footer>",
			d{"aboutMeText": "   "}},

		{"about me kept when text present",
			"<header>Acme</header>\n<!-- About Me section -->\n<p>{aboutMeText}</p>\n<!-- EndAbout Me section -->\n<footer>end</footer>",
			"<header>Acme</header>\n\n<p>Since 1989</p>\n\n<footer>end</footer>",
			d{"aboutMeText": "Since 1989"}},

		{"logo removed when flag is falsy",
			`<!-- Logo section --><img src="{logoUrl}"><!-- EndLogo section -->`,
			"",
			d{"logoUrl": false}},

		{"logo kept when url present",
			`<!-- Logo section --><img src="{logoUrl}"><!-- EndLogo section -->`,
			`<img src="logo.png">`,
			d{"logoUrl": "logo.png"}},

		{"services removed when text blank",
			"<!-- Services section --><p>{servicesText}</p><!-- EndServices section -->",
			"",
			d{"servicesText": ""}},

		{"reviews removed when sequence empty",
			"<!-- Reviews section -->{LOOP_START:reviews}<p>{text}</p>{LOOP_END:reviews}<!-- EndReviews section -->",
			"",
			d{"reviews": []interface{}{}}},

		{"reviews kept when sequence has entries",
			"<!-- Reviews section -->{LOOP_START:reviews}<p>{text}</p>{LOOP_END:reviews}<!-- EndReviews section -->",
			"<p>Great</p>",
			d{"reviews": []interface{}{d{"text": "Great"}}}},

		{"buttons removed when sequence missing",
			"<!-- Buttons section --><nav>b</nav><!-- EndButtons section -->",
			"",
			d{"other": 1}},

		{"contact info wrapper survives empty fields",
			`<!-- Contact Info section --><h3>Contact</h3><p class="contact-phone">{phone}</p><!-- EndContact Info section -->`,
			"<h3>Contact</h3>",
			d{"website": "https://acme.example"}},

		{"social removed when every network is blank",
			`<!-- Social Links section --><a id="facebook-link" href="#">f</a><!-- EndSocial Links section -->`,
			"",
			d{"socialMedia": d{"facebook": ""}}},

		{"social kept when one network is set",
			`<!-- Social section --><a id="facebook-link" href="#">f</a><!-- EndSocial section -->`,
			`<a id="facebook-link" href="#">f</a>`,
			d{"socialMedia": d{"facebook": "https://fb.example/acme"}}},

		{"unknown name with no empty references is kept",
			"<!-- Opening Hours section --><p>9-5</p><!-- EndOpening Hours section -->",
			"<p>9-5</p>",
			d{"other": 1}},

		{"unmatched section marker is literal text",
			"<!-- Team section --><p>x</p>",
			"<!-- Team section --><p>x</p>",
			nil},

		{"nested section pruned after outer is kept",
			"<!-- About Me section --><p>{aboutMeText}</p><!-- Reviews section --><p>r</p><!-- EndReviews section --><!-- EndAbout Me section -->",
			"<p>bio</p>",
			d{"aboutMeText": "bio"}},
	})
}

// The generic empty-reference rule inspects placeholder tokens, so it
// matters chiefly when resolution is disabled and the tokens survive.
func TestGenericSectionRule(t *testing.T) {
	e := NewWithOptions(Options{
		RemoveEmptySections: true,
		ProcessLoops:        true,
	})
	runProcTests(t, e, []procTest{
		{"removed when a referenced value is empty",
			"<!-- Gallery section --><p>{galleryIntro}</p><!-- EndGallery section -->",
			"",
			d{"galleryIntro": ""}},

		{"removed when a referenced value is null",
			"<!-- Gallery section --><p>{galleryIntro}</p><!-- EndGallery section -->",
			"",
			d{"galleryIntro": nil}},

		{"removed when a referenced sequence is empty",
			"<!-- Gallery section --><p>{photos}</p><!-- EndGallery section -->",
			"",
			d{"photos": []interface{}{}}},

		{"kept when referenced values are set",
			"<!-- Gallery section --><p>{galleryIntro}</p><!-- EndGallery section -->",
			"<p>{galleryIntro}</p>",
			d{"galleryIntro": "Our work"}},

		{"kept when referenced keys are absent",
			"<!-- Gallery section --><p>{galleryIntro}</p><!-- EndGallery section -->",
			"<p>{galleryIntro}</p>",
			d{"other": 1}},
	})
}

func TestElementPruning(t *testing.T) {
	runProcTests(t, New(), []procTest{
		{"blank social links removed by id",
			`<nav><a id="facebook-link" href="#">f</a><a id="instagram-link" href="#">i</a></nav>`,
			`<nav><a id="instagram-link" href="#">i</a></nav>`,
			d{"socialMedia": d{"instagram": "https://insta.example/acme"}}},

		{"top-level social field keeps its link",
			`<a id="facebook-link" href="#">f</a>`,
			`<a id="facebook-link" href="#">f</a>`,
			d{"facebookUrl": "https://fb.example/acme"}},

		{"phone element removed when phone missing",
			`<p class="contact-phone">Call us</p><p class="hours">9-5</p>`,
			`<p class="hours">9-5</p>`,
			nil},

		{"phone element kept when phone set",
			`<p class="contact-phone">Call {phone}</p>`,
			`<p class="contact-phone">Call 555-0100</p>`,
			d{"phone": "555-0100"}},

		{"website element removed when blank",
			`<span class="contact-website">www</span>`,
			"",
			d{"website": "  "}},

		{"address removed without a street",
			`<div class="contact-address">Addr</div>`,
			"",
			d{"address": d{"city": "Springfield"}}},

		{"address kept with a street",
			`<div class="contact-address">Addr</div>`,
			`<div class="contact-address">Addr</div>`,
			d{"address": d{"street": "1 Main St"}}},

		{"address must be a mapping",
			`<div class="contact-address">Addr</div>`,
			"",
			d{"address": "1 Main St"}},

		{"title element removed when title blank",
			`<h1>Acme</h1><p id="title">{title}</p>`,
			"<h1>Acme</h1>",
			d{"title": ""}},

		{"title element kept when title set",
			`<p id="title">{title}</p>`,
			`<p id="title">Master Plumber</p>`,
			d{"title": "Master Plumber"}},

		{"pruned element takes nested markup with it",
			`<div class="contact-phone"><span>Call</span><b>now</b></div><p>kept</p>`,
			"<p>kept</p>",
			nil},
	})
}

func TestSocialValue(t *testing.T) {
	tests := []struct {
		name  string
		data  d
		field string
		want  string
	}{
		{"direct field", d{"facebookUrl": "direct"}, "facebookUrl", "direct"},
		{"group original case", d{"socialMedia": d{"facebookUrl": "grouped"}}, "facebookUrl", "grouped"},
		{"group network name", d{"socialMedia": d{"facebook": "short"}}, "facebookUrl", "short"},
		{"absent everywhere", d{"socialMedia": d{"twitter": "x"}}, "facebookUrl", ""},
		{"no group", d{"other": 1}, "facebookUrl", ""},
	}
	for _, test := range tests {
		s := scope{data.New(test.data).(data.Map)}
		if got := socialValue(s, test.field).String(); got != test.want {
			t.Errorf("%s: got %q, want %q", test.name, got, test.want)
		}
	}
}

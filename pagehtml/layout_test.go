package pagehtml

import "testing"

func TestReorder(t *testing.T) {
	input := "<!-- REORDER -->\n" +
		"<!-- BLOCK:header --><header>H</header><!-- ENDBLOCK:header -->\n" +
		"<!-- BLOCK:main --><main>M</main><!-- ENDBLOCK:main -->\n" +
		"<!-- BLOCK:sidebar --><aside>S</aside><!-- ENDBLOCK:sidebar -->\n" +
		"<!-- ENDREORDER -->"

	runProcTests(t, New(), []procTest{
		{"container replaced in listed order",
			input,
			"<main>M</main><aside>S</aside><header>H</header>",
			d{"layoutOrder": []interface{}{"main", "sidebar", "header"}}},

		{"unknown ids skipped",
			input,
			"<main>M</main>",
			d{"layoutOrder": []interface{}{"main", "bogus"}}},

		{"no order leaves container markers and strips block markers",
			"<!-- REORDER -->\n<!-- BLOCK:a --><p>x</p><!-- ENDBLOCK:a -->\n<!-- ENDREORDER -->",
			"<!-- REORDER -->\n<p>x</p>\n<!-- ENDREORDER -->",
			nil},
	})
}

func TestSwaps(t *testing.T) {
	blocks := "<!-- BLOCK:A --><p>alpha</p><!-- ENDBLOCK:A -->\n" +
		"<!-- BLOCK:B --><p>beta</p><!-- ENDBLOCK:B -->"

	runProcTests(t, New(), []procTest{
		{"inline swap exchanges content and erases the directive",
			blocks + "\n{SWAP:A:B}",
			"<p>beta</p>\n<p>alpha</p>",
			nil},

		{"data swap exchanges content",
			blocks,
			"<p>beta</p>\n<p>alpha</p>",
			d{"swaps": []interface{}{d{"from": "A", "to": "B"}}}},

		{"swap with unknown id is skipped",
			blocks + "\n{SWAP:A:missing}",
			"<p>alpha</p>\n<p>beta</p>",
			nil},

		{"data swaps apply in order",
			"<!-- BLOCK:a --><p>1</p><!-- ENDBLOCK:a -->\n" +
				"<!-- BLOCK:b --><p>2</p><!-- ENDBLOCK:b -->\n" +
				"<!-- BLOCK:c --><p>3</p><!-- ENDBLOCK:c -->",
			"<p>3</p>\n<p>1</p>\n<p>2</p>",
			d{"swaps": []interface{}{
				d{"from": "a", "to": "b"},
				d{"from": "a", "to": "c"},
			}}},

		{"block markers stripped without any directives",
			"<!-- BLOCK:solo --><p>x</p><!-- ENDBLOCK:solo -->",
			"<p>x</p>",
			nil},

		{"inline swap applies before data swaps",
			blocks + "\n{SWAP:A:B}",
			"<p>alpha</p>\n<p>beta</p>",
			d{"swaps": []interface{}{d{"from": "A", "to": "B"}}}},
	})
}

func TestReorderWithSurroundingMarkup(t *testing.T) {
	input := "<body>\n<!-- REORDER -->\n" +
		"<!-- BLOCK:main --><main>M</main><!-- ENDBLOCK:main -->\n" +
		"<!-- BLOCK:header --><header>H</header><!-- ENDBLOCK:header -->\n" +
		"<!-- ENDREORDER -->\n</body>"

	runProcTests(t, New(), []procTest{
		{"surrounding markup survives",
			input,
			"<body>\n<header>H</header><main>M</main>\n</body>",
			d{"layoutOrder": []interface{}{"header", "main"}}},
	})
}

package passages

import (
	"strings"

	"github.com/antchfx/htmlquery"
	"golang.org/x/net/html"

	"github.com/openscripture/berea/core/bible"
	"github.com/openscripture/berea/internal/logging"
)

// Selectors for the optional content fragments in Api.Bible HTML markup:
//
//	<p class="s1">Allotment for Simeon</p>        section heading
//	<p class="d"><span>Of David.</span></p>       descriptive title
//	<span data-caller="+" class="f">...</span>    footnote
//	<span class="v" data-number="6">6</span>      verse number
//	<h2 class="c" data-number="19">19</h2>        chapter number
var fragmentSelectors = []struct {
	fragment bible.Fragments
	exprs    []string
}{
	{bible.FragmentHeadings, []string{`//p[@class="s1"]`, `//p[@class="d"]`}},
	{bible.FragmentFootnotes, []string{`//span[@class="f"]`}},
	{bible.FragmentVerseNumbers, []string{`//span[@class="v"]`}},
	{bible.FragmentChapterNumbers, []string{`//h2[@class="c"]`}},
}

// FilterContent returns the passage's HTML content with every fragment kind
// not selected by include removed. Selecting all fragments returns the
// content unchanged. Cross-references have no markup of their own in this
// API; their bit is accepted but filters nothing.
func FilterContent(passage *bible.Passage, include bible.Fragments) string {
	content := passage.Content
	if strings.TrimSpace(content) == "" {
		return ""
	}
	if include.Has(bible.FragmentsAll) {
		return content
	}

	doc, err := html.Parse(strings.NewReader(content))
	if err != nil {
		logging.Error("passage content parse failed", "error", err.Error())
		return content
	}

	for _, sel := range fragmentSelectors {
		if include.Has(sel.fragment) {
			continue
		}
		for _, expr := range sel.exprs {
			for _, node := range htmlquery.Find(doc, expr) {
				if node.Parent != nil {
					node.Parent.RemoveChild(node)
				}
			}
		}
	}

	return renderBody(doc)
}

// renderBody serializes the children of the parsed document's body,
// unwrapping the html/head/body scaffolding html.Parse adds around a
// fragment.
func renderBody(doc *html.Node) string {
	body := htmlquery.FindOne(doc, "//body")
	if body == nil {
		return ""
	}
	var sb strings.Builder
	for child := body.FirstChild; child != nil; child = child.NextSibling {
		if err := html.Render(&sb, child); err != nil {
			logging.Error("passage content render failed", "error", err.Error())
			return ""
		}
	}
	return sb.String()
}

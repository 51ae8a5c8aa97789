package pattern

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// CleanText renders the text content of doc with <script>, <style>, and
// comment nodes removed, per spec.md §4.4's cleaning step. It walks a
// freshly reparsed copy of the underlying x/net/html tree directly —
// goquery's CSS selectors cannot target comment nodes, and removing both
// kinds of node in one pass avoids a second traversal.
func CleanText(doc *goquery.Document) string {
	markup, err := goquery.OuterHtml(doc.Selection)
	if err != nil {
		return ""
	}
	root, err := html.Parse(strings.NewReader(markup))
	if err != nil {
		return ""
	}
	stripNoise(root)

	var text strings.Builder
	collectText(root, &text)
	return strings.TrimSpace(text.String())
}

// stripNoise removes script, style, and comment nodes from n, recursively.
func stripNoise(n *html.Node) {
	var next *html.Node
	for c := n.FirstChild; c != nil; c = next {
		next = c.NextSibling
		switch {
		case c.Type == html.CommentNode:
			n.RemoveChild(c)
		case c.Type == html.ElementNode && (c.DataAtom == atom.Script || c.DataAtom == atom.Style):
			n.RemoveChild(c)
		default:
			stripNoise(c)
		}
	}
}

func collectText(n *html.Node, out *strings.Builder) {
	if n.Type == html.TextNode {
		out.WriteString(n.Data)
		out.WriteString(" ")
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		collectText(c, out)
	}
}

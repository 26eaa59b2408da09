package option

import (
	"strings"

	"golang.org/x/net/html"
)

// DecodeLabel returns the text content of label parsed as an HTML fragment, so
// "Boeken &amp; Tijdschriften" becomes "Boeken & Tijdschriften" and stray
// markup is dropped. Labels that fail to parse are returned unchanged.
func DecodeLabel(label string) string {
	if !strings.ContainsAny(label, "&<") {
		return label
	}
	doc, err := html.Parse(strings.NewReader(label))
	if err != nil {
		return label
	}
	var b strings.Builder
	var walk func(n *html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			b.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(doc)
	return b.String()
}

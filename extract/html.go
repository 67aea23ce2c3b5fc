package extract

import (
	"strings"

	"golang.org/x/net/html"
)

// skipElements are subtrees that never contain human-readable prose.
var skipElements = map[string]bool{
	"script": true,
	"style":  true,
}

// stripMarkup parses an HTML document and returns the concatenation of
// its text nodes, dropping script and style subtrees. The parser is
// lenient, so malformed chapter markup still yields whatever text it
// holds.
func stripMarkup(src string) (string, error) {
	doc, err := html.Parse(strings.NewReader(src))
	if err != nil {
		return "", err
	}

	var b strings.Builder
	var walk func(n *html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode && skipElements[n.Data] {
			return
		}
		if n.Type == html.TextNode {
			b.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(doc)

	return b.String(), nil
}

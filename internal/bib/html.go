package bib

import (
	"strings"

	"golang.org/x/net/html"
)

// StripHTML flattens markup to its text content. Reference managers export
// abstracts with embedded HTML (jats tags, italics, paragraph wrappers) that
// would otherwise pollute the feature space.
func StripHTML(s string) string {
	if !strings.ContainsAny(s, "<&") {
		return s
	}

	doc, err := html.Parse(strings.NewReader(s))
	if err != nil {
		// Fallback to string if parsing fails
		return s
	}

	var buf strings.Builder
	var extractText func(*html.Node)
	extractText = func(n *html.Node) {
		if n.Type == html.TextNode {
			buf.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			extractText(c)
		}
	}
	extractText(doc)

	return strings.Join(strings.Fields(buf.String()), " ")
}

package web

import (
	"net/url"

	"golang.org/x/net/html"
)

// ForEachNode applies a function to the given node and each of its
// descendants.
func ForEachNode(node *html.Node, fn func(n *html.Node) error) error {
	var iter func(n *html.Node) error
	iter = func(n *html.Node) error {
		err := fn(n)
		if err != nil {
			return err
		}

		for c := n.FirstChild; c != nil; c = c.NextSibling {
			err := iter(c)
			if err != nil {
				return err
			}
		}

		return nil
	}

	return iter(node)
}

// ImageSources returns the src attribute of every img element in the given
// html document, in document order. Empty src attributes are omitted.
func ImageSources(doc *html.Node) []string {
	var srcs []string

	ForEachNode(doc, func(n *html.Node) error {
		if n.Type != html.ElementNode || n.Data != "img" {
			return nil
		}

		for _, a := range n.Attr {
			if a.Key == "src" && a.Val != "" {
				srcs = append(srcs, a.Val)
				break
			}
		}
		return nil
	})

	return srcs
}

// ResolveRef resolves a possibly-relative reference against the url of the
// page it appeared on. It returns the empty string if either url is
// unparseable.
func ResolveRef(pageURL string, ref string) string {
	base, err := url.Parse(pageURL)
	if err != nil {
		return ""
	}

	r, err := url.Parse(ref)
	if err != nil {
		return ""
	}

	return base.ResolveReference(r).String()
}

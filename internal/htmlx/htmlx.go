// Package htmlx wraps golang.org/x/net/html with the small set of fragment
// operations the enhancers need: parsing, rendering, text-node iteration and
// block extraction. Fragments are held under a synthetic container node so
// top-level siblings can be rewritten and appended to in place.
package htmlx

import (
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// Fragment is a parsed HTML fragment. The zero value is not usable; obtain
// one through Parse.
type Fragment struct {
	container *html.Node
}

// Parse parses markup as a body fragment.
func Parse(markup string) (*Fragment, error) {
	context := &html.Node{
		Type:     html.ElementNode,
		Data:     "body",
		DataAtom: atom.Body,
	}
	nodes, err := html.ParseFragment(strings.NewReader(markup), context)
	if err != nil {
		return nil, err
	}

	container := &html.Node{
		Type:     html.ElementNode,
		Data:     "body",
		DataAtom: atom.Body,
	}
	for _, node := range nodes {
		container.AppendChild(node)
	}
	return &Fragment{container: container}, nil
}

// Render serialises the fragment back to markup. Void elements, escaping and
// attribute quoting follow x/net/html rules, so output is normalised rather
// than byte-identical to the input.
func (f *Fragment) Render() string {
	var b strings.Builder
	for child := f.container.FirstChild; child != nil; child = child.NextSibling {
		// Render only fails on a broken writer; strings.Builder never errors.
		_ = html.Render(&b, child)
	}
	return b.String()
}

// Append adds node at the end of the fragment.
func (f *Fragment) Append(node *html.Node) {
	f.container.AppendChild(node)
}

// Walk visits every node in the fragment in document order.
func (f *Fragment) Walk(visit func(*html.Node)) {
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		visit(n)
		for child := n.FirstChild; child != nil; child = child.NextSibling {
			walk(child)
		}
	}
	for child := f.container.FirstChild; child != nil; child = child.NextSibling {
		walk(child)
	}
}

// TextNodes returns the fragment's text nodes in document order. The slice is
// collected up front so callers can splice replacements without invalidating
// the iteration.
func (f *Fragment) TextNodes() []*html.Node {
	var nodes []*html.Node
	f.Walk(func(n *html.Node) {
		if n.Type == html.TextNode {
			nodes = append(nodes, n)
		}
	})
	return nodes
}

// Elements returns every element node whose tag matches one of names, in
// document order.
func (f *Fragment) Elements(names ...string) []*html.Node {
	want := make(map[string]struct{}, len(names))
	for _, name := range names {
		want[name] = struct{}{}
	}
	var nodes []*html.Node
	f.Walk(func(n *html.Node) {
		if n.Type != html.ElementNode {
			return
		}
		if _, ok := want[n.Data]; ok {
			nodes = append(nodes, n)
		}
	})
	return nodes
}

// Attr returns the value of the named attribute, or "" when absent.
func Attr(n *html.Node, key string) string {
	for _, attr := range n.Attr {
		if attr.Key == key {
			return attr.Val
		}
	}
	return ""
}

// HasClass reports whether the node's class attribute contains name.
func HasClass(n *html.Node, name string) bool {
	for _, class := range strings.Fields(Attr(n, "class")) {
		if class == name {
			return true
		}
	}
	return false
}

// Text returns the node's concatenated text content with surrounding
// whitespace trimmed.
func Text(n *html.Node) string {
	var b strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			b.WriteString(n.Data)
		}
		for child := n.FirstChild; child != nil; child = child.NextSibling {
			walk(child)
		}
	}
	walk(n)
	return strings.TrimSpace(b.String())
}

// OuterHTML serialises a single node.
func OuterHTML(n *html.Node) string {
	var b strings.Builder
	_ = html.Render(&b, n)
	return b.String()
}

// Element builds an element node with the given attribute key/value pairs.
func Element(tag string, attrs ...string) *html.Node {
	node := &html.Node{
		Type:     html.ElementNode,
		Data:     tag,
		DataAtom: atom.Lookup([]byte(tag)),
	}
	for i := 0; i+1 < len(attrs); i += 2 {
		node.Attr = append(node.Attr, html.Attribute{Key: attrs[i], Val: attrs[i+1]})
	}
	return node
}

// TextNode builds a text node.
func TextNode(text string) *html.Node {
	return &html.Node{Type: html.TextNode, Data: text}
}

// Replace swaps old for replacements in old's parent, preserving position.
func Replace(old *html.Node, replacements ...*html.Node) {
	parent := old.Parent
	if parent == nil {
		return
	}
	for _, node := range replacements {
		parent.InsertBefore(node, old)
	}
	parent.RemoveChild(old)
}

// Ancestor reports whether any ancestor of n satisfies match.
func Ancestor(n *html.Node, match func(*html.Node) bool) bool {
	for parent := n.Parent; parent != nil; parent = parent.Parent {
		if parent.Type == html.ElementNode && match(parent) {
			return true
		}
	}
	return false
}

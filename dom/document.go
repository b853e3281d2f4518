// Package dom is a small retained element tree for the navigation widgets.
//
// Elements wrap golang.org/x/net/html nodes, so a rendered tree can be
// serialized with html.Render and queried with XPath. On top of the raw
// nodes the package keeps per-element event listeners and class helpers,
// mirroring the subset of the browser DOM the widgets rely on.
//
// A Document and its elements are not safe for concurrent use; one logical
// UI thread owns them.
package dom

import (
	"bytes"
	"io"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// Document owns every element created through it and maps raw nodes back to
// their elements.
type Document struct {
	root     *html.Node
	body     *Element
	elements map[*html.Node]*Element
}

// NewDocument creates an empty document with an <html><body> skeleton.
func NewDocument() *Document {
	d := &Document{
		root:     &html.Node{Type: html.DocumentNode},
		elements: make(map[*html.Node]*Element),
	}

	htmlNode := &html.Node{Type: html.ElementNode, Data: "html", DataAtom: atom.Html}
	d.root.AppendChild(htmlNode)

	d.body = d.CreateElement("body")
	htmlNode.AppendChild(d.body.node)

	return d
}

// CreateElement allocates a detached element with the given tag name.
func (d *Document) CreateElement(tag string) *Element {
	n := &html.Node{
		Type:     html.ElementNode,
		Data:     tag,
		DataAtom: atom.Lookup([]byte(tag)),
	}
	el := &Element{doc: d, node: n}
	d.elements[n] = el
	return el
}

// Body returns the document body.
func (d *Document) Body() *Element {
	return d.body
}

// Attach appends el to the document body.
func (d *Document) Attach(el *Element) {
	d.body.AppendChild(el)
}

// Node returns the underlying document node.
func (d *Document) Node() *html.Node {
	return d.root
}

// ElementFor returns the element wrapping n, or nil when n was not created by
// this document.
func (d *Document) ElementFor(n *html.Node) *Element {
	if n == nil {
		return nil
	}
	return d.elements[n]
}

// Render writes the HTML serialization of el and its subtree to w.
func Render(w io.Writer, el *Element) error {
	return html.Render(w, el.node)
}

// OuterHTML returns the HTML serialization of el.
func OuterHTML(el *Element) string {
	var buf bytes.Buffer
	if err := Render(&buf, el); err != nil {
		return ""
	}
	return buf.String()
}

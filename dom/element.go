package dom

import (
	"strings"

	"golang.org/x/net/html"
)

// Element is a DOM element node with attached event listeners.
type Element struct {
	doc       *Document
	node      *html.Node
	listeners map[string][]listenerEntry
	nextID    uint64
}

// Document returns the document that created the element.
func (e *Element) Document() *Document {
	return e.doc
}

// Node returns the underlying html node.
func (e *Element) Node() *html.Node {
	return e.node
}

// Tag returns the element's tag name.
func (e *Element) Tag() string {
	return e.node.Data
}

// AppendChild appends child as the last child of e. A child that already has
// a parent is moved, as in the browser DOM.
func (e *Element) AppendChild(child *Element) {
	if child.node.Parent != nil {
		child.node.Parent.RemoveChild(child.node)
	}
	e.node.AppendChild(child.node)
}

// RemoveChild detaches child from e. It reports false if child is not a
// direct child of e.
func (e *Element) RemoveChild(child *Element) bool {
	if child.node.Parent != e.node {
		return false
	}
	e.node.RemoveChild(child.node)
	return true
}

// Children returns the element children of e in document order. Text nodes
// are skipped.
func (e *Element) Children() []*Element {
	var out []*Element
	for c := e.node.FirstChild; c != nil; c = c.NextSibling {
		if c.Type != html.ElementNode {
			continue
		}
		if el := e.doc.ElementFor(c); el != nil {
			out = append(out, el)
		}
	}
	return out
}

// FirstChild returns the first element child of e, or nil.
func (e *Element) FirstChild() *Element {
	children := e.Children()
	if len(children) == 0 {
		return nil
	}
	return children[0]
}

// Parent returns the parent element, or nil for a detached element.
func (e *Element) Parent() *Element {
	return e.doc.ElementFor(e.node.Parent)
}

// SetAttribute sets an attribute, replacing any previous value.
func (e *Element) SetAttribute(key, val string) {
	for i := range e.node.Attr {
		if e.node.Attr[i].Key == key {
			e.node.Attr[i].Val = val
			return
		}
	}
	e.node.Attr = append(e.node.Attr, html.Attribute{Key: key, Val: val})
}

// Attribute returns the value of an attribute and whether it is present.
func (e *Element) Attribute(key string) (string, bool) {
	for _, a := range e.node.Attr {
		if a.Key == key {
			return a.Val, true
		}
	}
	return "", false
}

// RemoveAttribute deletes an attribute if present.
func (e *Element) RemoveAttribute(key string) {
	attrs := e.node.Attr[:0]
	for _, a := range e.node.Attr {
		if a.Key != key {
			attrs = append(attrs, a)
		}
	}
	e.node.Attr = attrs
}

// Classes returns the element's class list in order.
func (e *Element) Classes() []string {
	val, _ := e.Attribute("class")
	return strings.Fields(val)
}

// HasClass reports whether name is in the class list.
func (e *Element) HasClass(name string) bool {
	for _, c := range e.Classes() {
		if c == name {
			return true
		}
	}
	return false
}

// AddClass adds each name that is not already in the class list.
func (e *Element) AddClass(names ...string) {
	classes := e.Classes()
	for _, name := range names {
		if name == "" || contains(classes, name) {
			continue
		}
		classes = append(classes, name)
	}
	e.SetAttribute("class", strings.Join(classes, " "))
}

// RemoveClass removes name from the class list.
func (e *Element) RemoveClass(name string) {
	var kept []string
	for _, c := range e.Classes() {
		if c != name {
			kept = append(kept, c)
		}
	}
	if len(kept) == 0 {
		e.RemoveAttribute("class")
		return
	}
	e.SetAttribute("class", strings.Join(kept, " "))
}

// SetText replaces all children of e with a single text node.
func (e *Element) SetText(text string) {
	for c := e.node.FirstChild; c != nil; {
		next := c.NextSibling
		e.node.RemoveChild(c)
		c = next
	}
	if text != "" {
		e.node.AppendChild(&html.Node{Type: html.TextNode, Data: text})
	}
}

// Text returns the concatenated text content of e and its descendants.
func (e *Element) Text() string {
	var b strings.Builder
	var walk func(n *html.Node)
	walk = func(n *html.Node) {
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			if c.Type == html.TextNode {
				b.WriteString(c.Data)
			}
			walk(c)
		}
	}
	walk(e.node)
	return b.String()
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}

// Package iconbutton implements a clickable button that displays a single
// text glyph.
package iconbutton

import (
	"context"

	"github.com/grovetools/navbar/dom"
	"github.com/grovetools/navbar/errors"
)

const (
	// Class is added to the button root on render.
	Class = "icon-button"
	// GlyphClass is the class of the inner span holding the glyph.
	GlyphClass = "icon-button-glyph"
)

// Button is a <button> element with one glyph span.
//
// Render may be called once; a second call returns ALREADY_RENDERED.
type Button struct {
	doc      *dom.Document
	root     *dom.Element
	glyph    *dom.Element
	text     string
	rendered bool
}

// New allocates the button root. Nothing is attached until Render.
func New(doc *dom.Document) *Button {
	return &Button{
		doc:  doc,
		root: doc.CreateElement("button"),
	}
}

// RootNode returns the <button> element.
func (b *Button) RootNode() *dom.Element {
	return b.root
}

// Element returns the node click listeners are attached to. It is the same
// node as RootNode.
func (b *Button) Element() *dom.Element {
	return b.root
}

// Render sets the button class and type and builds the glyph span.
func (b *Button) Render(ctx context.Context) error {
	if b.rendered {
		return errors.AlreadyRendered(Class)
	}
	b.rendered = true

	b.root.AddClass(Class)
	b.root.SetAttribute("type", "button")

	b.glyph = b.doc.CreateElement("span")
	b.glyph.AddClass(GlyphClass)
	b.glyph.SetAttribute("aria-hidden", "true")
	b.glyph.SetText(b.text)
	b.root.AppendChild(b.glyph)
	return nil
}

// SetGlyph sets the displayed glyph. Before Render the text is kept and
// applied when the span is built.
func (b *Button) SetGlyph(text string) {
	b.text = text
	if b.glyph != nil {
		b.glyph.SetText(text)
	}
}

// Glyph returns the current glyph text.
func (b *Button) Glyph() string {
	return b.text
}

// Rendered reports whether Render has been called.
func (b *Button) Rendered() bool {
	return b.rendered
}

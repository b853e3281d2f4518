// Package widget defines the two-phase lifecycle shared by every component of
// the navigation bar.
//
// A widget is built in two steps. Its constructor allocates the root node and
// any owned sub-components without inserting anything into a parent. Render
// then populates the subtree: classes, attributes, children and listeners.
// RootNode is valid from construction on and keeps its identity for the
// widget's lifetime, but its content is only meaningful once Render has
// returned nil.
package widget

import (
	"context"

	"github.com/grovetools/navbar/dom"
)

// Renderable is a component with a stable root node and a blocking render
// phase.
type Renderable interface {
	// RootNode returns the widget's root element.
	RootNode() *dom.Element

	// Render populates the subtree under RootNode. Implementations document
	// whether they may be called more than once.
	Render(ctx context.Context) error
}

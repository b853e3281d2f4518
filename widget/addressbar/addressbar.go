// Package addressbar implements the address-entry field of the navigation bar
// together with its loading indicator.
package addressbar

import (
	"context"
	"fmt"
	"math"
	"strconv"

	"github.com/grovetools/navbar/dom"
	"github.com/grovetools/navbar/errors"
	"github.com/grovetools/navbar/event"
)

// Classes used by the rendered subtree.
const (
	Class             = "url-bar"
	InputClass        = "url-bar-input"
	ProgressClass     = "url-bar-progress"
	ProgressFillClass = "url-bar-progress-fill"
	LoadingClass      = "loading"
	progressAttr      = "data-progress"
	busyAttr          = "aria-busy"
)

// Option configures an AddressBar.
type Option func(*AddressBar)

// WithPlaceholder sets the placeholder shown while the field is empty.
func WithPlaceholder(text string) Option {
	return func(a *AddressBar) { a.placeholder = text }
}

// WithValue sets the initial address.
func WithValue(value string) Option {
	return func(a *AddressBar) { a.value = value }
}

// AddressBar is a text input with a progress track underneath.
//
// Loading state may be changed at any time. Calls made before Render are
// recorded and applied to the DOM when Render builds it. Render may be called
// once; a second call returns ALREADY_RENDERED.
type AddressBar struct {
	// Submitted fires with the new address whenever Submit is called.
	Submitted *event.Channel[string]

	doc      *dom.Document
	root     *dom.Element
	input    *dom.Element
	fill     *dom.Element
	rendered bool

	placeholder string
	value       string
	loading     bool
	progress    float64
	hasProgress bool
}

// New allocates the root <div>. The input and progress track are built by
// Render.
func New(doc *dom.Document, opts ...Option) *AddressBar {
	a := &AddressBar{
		Submitted: event.New[string](event.WithName("address-submitted")),
		doc:       doc,
		root:      doc.CreateElement("div"),
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// RootNode returns the outer <div>.
func (a *AddressBar) RootNode() *dom.Element {
	return a.root
}

// Render builds the input and the progress track, then applies any state
// recorded before the call.
func (a *AddressBar) Render(ctx context.Context) error {
	if a.rendered {
		return errors.AlreadyRendered(Class)
	}
	a.rendered = true

	a.root.AddClass(Class)

	a.input = a.doc.CreateElement("input")
	a.input.AddClass(InputClass)
	a.input.SetAttribute("type", "text")
	a.input.SetAttribute("spellcheck", "false")
	if a.placeholder != "" {
		a.input.SetAttribute("placeholder", a.placeholder)
	}
	a.root.AppendChild(a.input)

	track := a.doc.CreateElement("div")
	track.AddClass(ProgressClass)
	a.fill = a.doc.CreateElement("div")
	a.fill.AddClass(ProgressFillClass)
	track.AppendChild(a.fill)
	a.root.AppendChild(track)

	a.syncValue()
	a.syncLoading()
	return nil
}

// Rendered reports whether Render has been called.
func (a *AddressBar) Rendered() bool {
	return a.rendered
}

// SetValue replaces the displayed address.
func (a *AddressBar) SetValue(value string) {
	a.value = value
	a.syncValue()
}

// Value returns the displayed address.
func (a *AddressBar) Value() string {
	return a.value
}

// Placeholder returns the placeholder text.
func (a *AddressBar) Placeholder() string {
	return a.placeholder
}

// Submit sets the value and notifies Submitted subscribers.
func (a *AddressBar) Submit(value string) {
	a.SetValue(value)
	a.Submitted.Trigger(value)
}

// ShowLoadingIndicator marks the field busy without a known progress.
func (a *AddressBar) ShowLoadingIndicator() {
	a.loading = true
	a.syncLoading()
}

// ShowLoadingProgress marks the field busy and sets the progress fill.
// Percent is clamped to [0,100]; NaN is treated as 0.
func (a *AddressBar) ShowLoadingProgress(ctx context.Context, percent float64) error {
	a.loading = true
	a.hasProgress = true
	a.progress = clamp(percent)
	a.syncLoading()
	return nil
}

// HideLoadingIndicator clears the busy state and resets the fill to 0%.
func (a *AddressBar) HideLoadingIndicator(ctx context.Context) error {
	a.loading = false
	a.hasProgress = false
	a.progress = 0
	a.syncLoading()
	return nil
}

// Loading reports whether the busy state is shown.
func (a *AddressBar) Loading() bool {
	return a.loading
}

// Progress returns the last clamped progress value.
func (a *AddressBar) Progress() float64 {
	return a.progress
}

func (a *AddressBar) syncValue() {
	if a.input == nil {
		return
	}
	if a.value == "" {
		a.input.RemoveAttribute("value")
		return
	}
	a.input.SetAttribute("value", a.value)
}

func (a *AddressBar) syncLoading() {
	if !a.rendered {
		return
	}
	if a.loading {
		a.root.AddClass(LoadingClass)
		a.root.SetAttribute(busyAttr, "true")
	} else {
		a.root.RemoveClass(LoadingClass)
		a.root.RemoveAttribute(busyAttr)
	}

	if a.hasProgress {
		a.root.SetAttribute(progressAttr, formatPercent(a.progress))
	} else {
		a.root.RemoveAttribute(progressAttr)
	}
	a.fill.SetAttribute("style", fmt.Sprintf("width: %s%%", formatPercent(a.progress)))
}

func clamp(percent float64) float64 {
	switch {
	case math.IsNaN(percent), percent < 0:
		return 0
	case percent > 100:
		return 100
	}
	return percent
}

func formatPercent(p float64) string {
	return strconv.FormatFloat(p, 'f', -1, 64)
}

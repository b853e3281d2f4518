// Package browserbar implements the navigation bar controller: a container
// holding back, forward, refresh and home buttons around an address field.
//
// The controller republishes button clicks as navigation intents on five
// subscribe-only signals. Hosts subscribe to the signals and drive the loading
// indicator through the controller; nothing in this package navigates.
package browserbar

import (
	"context"

	"github.com/grovetools/navbar/config"
	"github.com/grovetools/navbar/dom"
	"github.com/grovetools/navbar/errors"
	"github.com/grovetools/navbar/event"
	"github.com/grovetools/navbar/logging"
	"github.com/grovetools/navbar/widget"
	"github.com/grovetools/navbar/widget/addressbar"
	"github.com/grovetools/navbar/widget/iconbutton"
	"github.com/sirupsen/logrus"
)

// ButtonID names one of the four action buttons.
type ButtonID int

const (
	Back ButtonID = iota
	Forward
	Refresh
	Home
)

// String returns the value written to the button's data-action attribute.
func (id ButtonID) String() string {
	switch id {
	case Back:
		return "back"
	case Forward:
		return "forward"
	case Refresh:
		return "refresh"
	case Home:
		return "home"
	}
	return "unknown"
}

// ActionAttr is the attribute carrying a button's ButtonID.
const ActionAttr = "data-action"

// Button is the contract required of an action button.
type Button interface {
	widget.Renderable
	SetGlyph(text string)
}

// AddressField is the contract required of the address-entry widget.
type AddressField interface {
	widget.Renderable
	ShowLoadingIndicator()
	ShowLoadingProgress(ctx context.Context, percent float64) error
	HideLoadingIndicator(ctx context.Context) error
}

// ButtonFactory builds the button for id.
type ButtonFactory func(doc *dom.Document, id ButtonID) Button

// Option configures a Bar.
type Option func(*Bar)

// WithAddressField replaces the default address bar.
func WithAddressField(field AddressField) Option {
	return func(b *Bar) { b.address = field }
}

// WithButtonFactory replaces the default icon button constructor.
func WithButtonFactory(factory ButtonFactory) Option {
	return func(b *Bar) { b.factory = factory }
}

// WithLogger sets the logger used for render and dispatch tracing.
func WithLogger(logger *logrus.Entry) Option {
	return func(b *Bar) { b.logger = logger }
}

// Bar is the navigation bar controller.
//
// Render must be called once before the root node is inserted anywhere
// visible. A second call returns ALREADY_RENDERED and leaves the DOM as it
// is, including after a failed first call. Bar is not safe for concurrent use.
type Bar struct {
	back           *event.Signal
	forward        *event.Signal
	home           *event.Signal
	refresh        *event.Signal
	noCacheRefresh *event.Signal

	doc     *dom.Document
	cfg     config.BarConfig
	bypass  dom.Modifiers
	logger  *logrus.Entry
	factory ButtonFactory

	outer   *dom.Element
	wrapper *dom.Element
	buttons [4]Button
	address AddressField

	rendered bool
}

// New constructs the bar and its sub-widgets. Nothing is rendered or wired
// until Render. Unset fields of cfg take their defaults.
func New(doc *dom.Document, cfg config.BarConfig, opts ...Option) *Bar {
	cfg.SetDefaults()

	b := &Bar{
		doc:     doc,
		cfg:     cfg,
		outer:   doc.CreateElement("div"),
		wrapper: doc.CreateElement("div"),
	}
	for _, opt := range opts {
		opt(b)
	}
	if b.logger == nil {
		b.logger = logging.NewLogger("browserbar")
	}
	if b.factory == nil {
		b.factory = func(doc *dom.Document, _ ButtonID) Button { return iconbutton.New(doc) }
	}
	if b.address == nil {
		b.address = addressbar.New(doc)
	}

	mod, err := dom.ParseModifier(cfg.BypassCacheModifier)
	if err != nil {
		b.logger.WithError(err).Warnf("Falling back to %s as bypass-cache modifier", config.DefaultBypassModifier)
		mod = dom.ModShift
	}
	b.bypass = mod

	signal := func(name string) *event.Signal {
		return event.NewSignal(event.WithName(name), event.WithLogger(b.logger))
	}
	b.back = signal("back-pressed")
	b.forward = signal("forward-pressed")
	b.home = signal("home-pressed")
	b.refresh = signal("refresh-pressed")
	b.noCacheRefresh = signal("no-cache-refresh-pressed")

	for _, id := range []ButtonID{Back, Forward, Refresh, Home} {
		b.buttons[id] = b.factory(doc, id)
	}
	return b
}

// RootNode returns the outer container.
func (b *Bar) RootNode() *dom.Element {
	return b.outer
}

// BackPressed notifies when the back button is clicked.
func (b *Bar) BackPressed() event.Subscribable { return b.back.ReadOnly() }

// ForwardPressed notifies when the forward button is clicked.
func (b *Bar) ForwardPressed() event.Subscribable { return b.forward.ReadOnly() }

// HomePressed notifies when the home button is clicked.
func (b *Bar) HomePressed() event.Subscribable { return b.home.ReadOnly() }

// RefreshPressed notifies when the refresh button is clicked without the
// bypass modifier.
func (b *Bar) RefreshPressed() event.Subscribable { return b.refresh.ReadOnly() }

// NoCacheRefreshPressed notifies when the refresh button is clicked with the
// bypass modifier held.
func (b *Bar) NoCacheRefreshPressed() event.Subscribable { return b.noCacheRefresh.ReadOnly() }

// AddressField returns the address widget owned by the bar.
func (b *Bar) AddressField() AddressField {
	return b.address
}

// Button returns the button owned by the bar for id, or nil for an unknown id.
func (b *Bar) Button(id ButtonID) Button {
	if id < Back || id > Home {
		return nil
	}
	return b.buttons[id]
}

// Rendered reports whether Render has been called.
func (b *Bar) Rendered() bool {
	return b.rendered
}

// BypassModifier returns the modifier that turns a refresh click into a
// cache-bypassing refresh.
func (b *Bar) BypassModifier() dom.Modifiers {
	return b.bypass
}

// Render builds the subtree and wires the button listeners. Sub-widgets are
// rendered in the order back, forward, refresh, address field, home. The
// first sub-widget error is returned unchanged and nothing after it is
// rendered or wired.
func (b *Bar) Render(ctx context.Context) error {
	if b.rendered {
		return errors.AlreadyRendered("browser-bar")
	}
	b.rendered = true

	b.outer.AddClass(b.cfg.Classes.Bar)
	b.wrapper.AddClass(b.cfg.Classes.Wrapper)
	b.outer.AppendChild(b.wrapper)

	if err := b.renderButton(ctx, Back, b.cfg.Glyphs.Back, b.cfg.Labels.Back, b.relay(Back, b.back)); err != nil {
		return err
	}
	if err := b.renderButton(ctx, Forward, b.cfg.Glyphs.Forward, b.cfg.Labels.Forward, b.relay(Forward, b.forward)); err != nil {
		return err
	}
	if err := b.renderButton(ctx, Refresh, b.cfg.Glyphs.Refresh, b.cfg.Labels.Refresh, b.onRefreshClick); err != nil {
		return err
	}

	b.logger.WithField("widget", "address").Debug("Rendering sub-widget")
	if err := b.address.Render(ctx); err != nil {
		return err
	}
	b.wrapper.AppendChild(b.address.RootNode())

	if err := b.renderButton(ctx, Home, b.cfg.Glyphs.Home, b.cfg.Labels.Home, b.relay(Home, b.home)); err != nil {
		return err
	}

	b.logger.Debug("Navigation bar rendered")
	return nil
}

// renderButton renders one button, appends it to the wrapper and attaches
// onClick as its only click listener.
func (b *Bar) renderButton(ctx context.Context, id ButtonID, glyph, label string, onClick dom.Listener) error {
	btn := b.buttons[id]
	b.logger.WithField("widget", id.String()).Debug("Rendering sub-widget")

	if err := btn.Render(ctx); err != nil {
		return err
	}
	btn.SetGlyph(glyph)

	root := btn.RootNode()
	root.SetAttribute(ActionAttr, id.String())
	if label != "" {
		root.SetAttribute("title", label)
		root.SetAttribute("aria-label", label)
	}
	b.wrapper.AppendChild(root)

	listenerTarget(btn).AddEventListener(dom.EventClick, onClick)
	return nil
}

// relay returns a click listener that fires sig.
func (b *Bar) relay(id ButtonID, sig *event.Signal) dom.Listener {
	return func(ev *dom.Event) {
		b.logger.WithFields(logrus.Fields{
			"widget":    id.String(),
			"modifiers": ev.Modifiers.String(),
		}).Debug("Button clicked")
		sig.Fire()
	}
}

// onRefreshClick fires exactly one of the two refresh signals.
func (b *Bar) onRefreshClick(ev *dom.Event) {
	if ev.Modifiers.Has(b.bypass) {
		b.logger.WithField("modifiers", ev.Modifiers.String()).Debug("Refresh clicked, bypassing cache")
		b.noCacheRefresh.Fire()
		return
	}
	b.logger.Debug("Refresh clicked")
	b.refresh.Fire()
}

// ShowLoadingIndicator delegates to the address field.
func (b *Bar) ShowLoadingIndicator() {
	b.address.ShowLoadingIndicator()
}

// ShowLoadingProgress delegates to the address field without validating
// percent.
func (b *Bar) ShowLoadingProgress(ctx context.Context, percent float64) error {
	return b.address.ShowLoadingProgress(ctx, percent)
}

// HideLoadingIndicator delegates to the address field.
func (b *Bar) HideLoadingIndicator(ctx context.Context) error {
	return b.address.HideLoadingIndicator(ctx)
}

// listenerTarget prefers the button's raw element when it exposes one.
func listenerTarget(btn Button) *dom.Element {
	if el, ok := btn.(interface{ Element() *dom.Element }); ok {
		if node := el.Element(); node != nil {
			return node
		}
	}
	return btn.RootNode()
}

// Package event provides a typed publish/subscribe channel used to decouple
// widgets from the code that reacts to them.
package event

import (
	"sync"

	"github.com/google/uuid"
	"github.com/grovetools/navbar/errors"
	"github.com/grovetools/navbar/logging"
	"github.com/sirupsen/logrus"
)

// Subscription identifies a registered handler.
type Subscription struct {
	ID uuid.UUID
}

// Option configures a Channel or Signal.
type Option func(*options)

type options struct {
	name    string
	logger  *logrus.Entry
	onPanic func(error)
}

// WithName sets the name reported in logs and panic errors.
func WithName(name string) Option {
	return func(o *options) { o.name = name }
}

// WithLogger overrides the logger used to report panicking handlers.
func WithLogger(logger *logrus.Entry) Option {
	return func(o *options) { o.logger = logger }
}

// WithPanicHandler registers fn to receive a HANDLER_PANIC error whenever a
// handler panics.
func WithPanicHandler(fn func(error)) Option {
	return func(o *options) { o.onPanic = fn }
}

type subscriber[A any] struct {
	sub     Subscription
	handler func(A)
}

// Channel is a multi-subscriber notification point carrying a payload of type A.
//
// Handlers run synchronously on the goroutine calling Trigger, in the order
// they subscribed. A handler that panics is recovered and reported; the
// handlers after it still run. The zero value is not usable; use New.
type Channel[A any] struct {
	mu   sync.Mutex
	subs []subscriber[A]
	opts options
}

// New creates an empty channel.
func New[A any](opts ...Option) *Channel[A] {
	c := &Channel[A]{opts: options{name: "channel"}}
	for _, opt := range opts {
		opt(&c.opts)
	}
	return c
}

// Name returns the channel name.
func (c *Channel[A]) Name() string {
	return c.opts.name
}

// Subscribe appends handler to the channel and returns its subscription.
func (c *Channel[A]) Subscribe(handler func(A)) Subscription {
	sub := Subscription{ID: uuid.New()}

	c.mu.Lock()
	c.subs = append(c.subs, subscriber[A]{sub: sub, handler: handler})
	c.mu.Unlock()

	return sub
}

// Unsubscribe removes sub. It reports whether sub was registered. A trigger
// already in progress still delivers to the removed handler.
func (c *Channel[A]) Unsubscribe(sub Subscription) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	for i, s := range c.subs {
		if s.sub == sub {
			c.subs = append(c.subs[:i:i], c.subs[i+1:]...)
			return true
		}
	}
	return false
}

// Len returns the number of current subscriptions.
func (c *Channel[A]) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.subs)
}

// Trigger invokes every handler subscribed at the time of the call with arg.
// Handlers subscribed while Trigger runs are not called in this pass.
func (c *Channel[A]) Trigger(arg A) {
	// subs is only ever replaced or appended past its length, never edited in
	// place, so the slice header alone is a stable snapshot.
	c.mu.Lock()
	snapshot := c.subs
	c.mu.Unlock()

	for i, s := range snapshot {
		if s.handler == nil {
			continue
		}
		c.invoke(i, s, arg)
	}
}

func (c *Channel[A]) invoke(index int, s subscriber[A], arg A) {
	defer func() {
		r := recover()
		if r == nil {
			return
		}
		err := errors.HandlerPanic(c.opts.name, index, r).
			WithDetail("subscription", s.sub.ID.String())
		c.logger().WithError(err).Error("Channel handler panicked")
		if c.opts.onPanic != nil {
			c.opts.onPanic(err)
		}
	}()
	s.handler(arg)
}

func (c *Channel[A]) logger() *logrus.Entry {
	if c.opts.logger != nil {
		return c.opts.logger.WithField("channel", c.opts.name)
	}
	return logging.NewLogger("event").WithField("channel", c.opts.name)
}

package event

// Subscribable is the subscribe side of a Signal. Owners hand it out so that
// only they can fire.
type Subscribable interface {
	Name() string
	Subscribe(fn func()) Subscription
	Unsubscribe(sub Subscription) bool
	Len() int
}

var _ Subscribable = (*Signal)(nil)

// subscribeOnly hides Fire from holders of a Subscribable.
type subscribeOnly struct {
	sig *Signal
}

func (v subscribeOnly) Name() string {
	return v.sig.Name()
}

func (v subscribeOnly) Subscribe(fn func()) Subscription {
	return v.sig.Subscribe(fn)
}

func (v subscribeOnly) Unsubscribe(sub Subscription) bool {
	return v.sig.Unsubscribe(sub)
}

func (v subscribeOnly) Len() int {
	return v.sig.Len()
}

// Signal is a Channel without a payload.
type Signal struct {
	ch *Channel[struct{}]
}

// NewSignal creates an empty signal.
func NewSignal(opts ...Option) *Signal {
	return &Signal{ch: New[struct{}](opts...)}
}

// Name returns the signal name.
func (s *Signal) Name() string {
	return s.ch.Name()
}

// Subscribe registers fn to run on every Fire.
func (s *Signal) Subscribe(fn func()) Subscription {
	if fn == nil {
		return s.ch.Subscribe(nil)
	}
	return s.ch.Subscribe(func(struct{}) { fn() })
}

// Unsubscribe removes a subscription.
func (s *Signal) Unsubscribe(sub Subscription) bool {
	return s.ch.Unsubscribe(sub)
}

// Len returns the number of current subscriptions.
func (s *Signal) Len() int {
	return s.ch.Len()
}

// ReadOnly returns a view of s that can subscribe but not fire.
func (s *Signal) ReadOnly() Subscribable {
	return subscribeOnly{sig: s}
}

// Fire notifies every subscriber.
func (s *Signal) Fire() {
	s.ch.Trigger(struct{}{})
}

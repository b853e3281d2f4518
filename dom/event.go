package dom

import (
	"strings"

	"github.com/grovetools/navbar/errors"
)

// EventClick is the event type dispatched by Element.Click.
const EventClick = "click"

// Modifiers is the set of modifier keys held while an event was produced.
type Modifiers uint8

const (
	ModShift Modifiers = 1 << iota
	ModCtrl
	ModAlt
	ModMeta
)

// Has reports whether every modifier in m2 is held in m.
func (m Modifiers) Has(m2 Modifiers) bool {
	return m2 != 0 && m&m2 == m2
}

// String returns the modifier names joined with '+'.
func (m Modifiers) String() string {
	var parts []string
	for _, mod := range []struct {
		bit  Modifiers
		name string
	}{
		{ModCtrl, "ctrl"},
		{ModAlt, "alt"},
		{ModMeta, "meta"},
		{ModShift, "shift"},
	} {
		if m&mod.bit != 0 {
			parts = append(parts, mod.name)
		}
	}
	if len(parts) == 0 {
		return "none"
	}
	return strings.Join(parts, "+")
}

// ParseModifier maps a single modifier key name to its flag.
func ParseModifier(name string) (Modifiers, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "shift":
		return ModShift, nil
	case "ctrl", "control":
		return ModCtrl, nil
	case "alt", "option":
		return ModAlt, nil
	case "meta", "cmd", "super":
		return ModMeta, nil
	}
	return 0, errors.InvalidModifier(name)
}

// Event is a dispatched DOM event.
type Event struct {
	Type          string
	Target        *Element
	CurrentTarget *Element
	Modifiers     Modifiers

	stopped bool
}

// ShiftKey reports whether shift was held.
func (ev *Event) ShiftKey() bool { return ev.Modifiers.Has(ModShift) }

// StopPropagation prevents the event from reaching ancestors of the current
// target.
func (ev *Event) StopPropagation() {
	ev.stopped = true
}

// Listener handles a dispatched event.
type Listener func(ev *Event)

// ListenerHandle identifies a registered listener for removal.
type ListenerHandle struct {
	eventType string
	id        uint64
}

type listenerEntry struct {
	id uint64
	fn Listener
}

// AddEventListener registers fn for events of the given type. Listeners run
// in registration order.
func (e *Element) AddEventListener(eventType string, fn Listener) ListenerHandle {
	if e.listeners == nil {
		e.listeners = make(map[string][]listenerEntry)
	}
	e.nextID++
	e.listeners[eventType] = append(e.listeners[eventType], listenerEntry{id: e.nextID, fn: fn})
	return ListenerHandle{eventType: eventType, id: e.nextID}
}

// RemoveEventListener unregisters a listener. It reports whether the handle
// was registered on e.
func (e *Element) RemoveEventListener(h ListenerHandle) bool {
	entries := e.listeners[h.eventType]
	for i, entry := range entries {
		if entry.id == h.id {
			e.listeners[h.eventType] = append(entries[:i:i], entries[i+1:]...)
			return true
		}
	}
	return false
}

// ListenerCount returns the number of listeners registered for eventType.
func (e *Element) ListenerCount(eventType string) int {
	return len(e.listeners[eventType])
}

// Dispatch delivers ev to e and then bubbles it up through e's ancestors
// until a listener stops propagation.
func (e *Element) Dispatch(ev *Event) {
	if ev.Target == nil {
		ev.Target = e
	}
	for cur := e; cur != nil && !ev.stopped; cur = cur.Parent() {
		entries := append([]listenerEntry(nil), cur.listeners[ev.Type]...)
		ev.CurrentTarget = cur
		for _, entry := range entries {
			if entry.fn != nil {
				entry.fn(ev)
			}
		}
	}
	ev.CurrentTarget = nil
}

// Click dispatches a click event on e with the given modifiers held.
func (e *Element) Click(mods Modifiers) {
	e.Dispatch(&Event{Type: EventClick, Modifiers: mods})
}

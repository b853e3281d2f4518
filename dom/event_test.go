package dom

import (
	"testing"

	"github.com/grovetools/navbar/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseModifier(t *testing.T) {
	tests := []struct {
		in      string
		want    Modifiers
		wantErr bool
	}{
		{in: "shift", want: ModShift},
		{in: " Shift ", want: ModShift},
		{in: "ctrl", want: ModCtrl},
		{in: "control", want: ModCtrl},
		{in: "alt", want: ModAlt},
		{in: "meta", want: ModMeta},
		{in: "cmd", want: ModMeta},
		{in: "hyper", wantErr: true},
		{in: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseModifier(tt.in)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, errors.Is(err, errors.ErrCodeInvalidInput))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestModifiersHas(t *testing.T) {
	m := ModShift | ModCtrl
	assert.True(t, m.Has(ModShift))
	assert.True(t, m.Has(ModShift|ModCtrl))
	assert.False(t, m.Has(ModAlt))
	assert.False(t, m.Has(0))
	assert.Equal(t, "ctrl+shift", m.String())
	assert.Equal(t, "none", Modifiers(0).String())
}

func TestDispatchOrderAndModifiers(t *testing.T) {
	btn := NewDocument().CreateElement("button")

	var calls []string
	btn.AddEventListener(EventClick, func(ev *Event) {
		calls = append(calls, "first")
		assert.True(t, ev.ShiftKey())
		assert.Same(t, btn, ev.Target)
	})
	btn.AddEventListener(EventClick, func(ev *Event) { calls = append(calls, "second") })
	btn.AddEventListener("keydown", func(ev *Event) { calls = append(calls, "keydown") })

	btn.Click(ModShift)
	assert.Equal(t, []string{"first", "second"}, calls)
	assert.Equal(t, 2, btn.ListenerCount(EventClick))
}

func TestRemoveEventListener(t *testing.T) {
	btn := NewDocument().CreateElement("button")
	count := 0
	h := btn.AddEventListener(EventClick, func(*Event) { count++ })

	assert.True(t, btn.RemoveEventListener(h))
	assert.False(t, btn.RemoveEventListener(h))

	btn.Click(0)
	assert.Equal(t, 0, count)
	assert.Equal(t, 0, btn.ListenerCount(EventClick))
}

func TestDispatchBubbles(t *testing.T) {
	doc := NewDocument()
	btn := doc.CreateElement("button")
	glyph := doc.CreateElement("span")
	btn.AppendChild(glyph)

	var current []*Element
	btn.AddEventListener(EventClick, func(ev *Event) {
		current = append(current, ev.CurrentTarget)
		assert.Same(t, glyph, ev.Target)
	})

	glyph.Click(0)
	assert.Equal(t, []*Element{btn}, current)
}

func TestStopPropagation(t *testing.T) {
	doc := NewDocument()
	outer := doc.CreateElement("div")
	inner := doc.CreateElement("button")
	outer.AppendChild(inner)

	outerCalls := 0
	outer.AddEventListener(EventClick, func(*Event) { outerCalls++ })
	inner.AddEventListener(EventClick, func(ev *Event) { ev.StopPropagation() })

	inner.Click(0)
	assert.Equal(t, 0, outerCalls)
}

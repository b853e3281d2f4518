package event

import (
	"bytes"
	"sync"
	"testing"

	"github.com/grovetools/navbar/errors"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func quietLogger() (*logrus.Entry, *bytes.Buffer) {
	var buf bytes.Buffer
	l := logrus.New()
	l.SetOutput(&buf)
	return l.WithField("component", "test"), &buf
}

func TestTriggerOrder(t *testing.T) {
	for _, n := range []int{0, 1, 2, 5, 17} {
		ch := New[int]()
		var got []int
		for i := 0; i < n; i++ {
			i := i
			ch.Subscribe(func(v int) {
				assert.Equal(t, 7, v)
				got = append(got, i)
			})
		}

		ch.Trigger(7)

		want := make([]int, n)
		for i := range want {
			want[i] = i
		}
		if n == 0 {
			want = nil
		}
		assert.Equal(t, want, got, "n=%d", n)
	}
}

func TestTriggerIsStableAcrossCalls(t *testing.T) {
	ch := New[string]()
	var got []string
	ch.Subscribe(func(s string) { got = append(got, "a"+s) })
	ch.Subscribe(func(s string) { got = append(got, "b"+s) })

	ch.Trigger("1")
	ch.Trigger("2")

	assert.Equal(t, []string{"a1", "b1", "a2", "b2"}, got)
}

func TestSubscribeDuringTrigger(t *testing.T) {
	ch := New[struct{}]()
	lateCalls := 0
	ch.Subscribe(func(struct{}) {
		ch.Subscribe(func(struct{}) { lateCalls++ })
	})

	ch.Trigger(struct{}{})
	assert.Equal(t, 0, lateCalls, "handler added mid-trigger must not see that trigger")
	assert.Equal(t, 2, ch.Len())

	ch.Trigger(struct{}{})
	assert.Equal(t, 1, lateCalls)
}

func TestUnsubscribe(t *testing.T) {
	ch := New[int]()
	var got []string
	a := ch.Subscribe(func(int) { got = append(got, "a") })
	ch.Subscribe(func(int) { got = append(got, "b") })

	assert.True(t, ch.Unsubscribe(a))
	assert.False(t, ch.Unsubscribe(a))
	assert.NotEqual(t, Subscription{}, a)

	ch.Trigger(0)
	assert.Equal(t, []string{"b"}, got)
}

func TestUnsubscribeDuringTriggerKeepsPass(t *testing.T) {
	ch := New[int]()
	var got []string
	var second Subscription
	ch.Subscribe(func(int) {
		got = append(got, "first")
		ch.Unsubscribe(second)
	})
	second = ch.Subscribe(func(int) { got = append(got, "second") })

	ch.Trigger(0)
	ch.Trigger(0)
	assert.Equal(t, []string{"first", "second", "first"}, got)
}

func TestPanicIsolation(t *testing.T) {
	logger, buf := quietLogger()
	var panics []error
	ch := New[int](
		WithName("refresh-pressed"),
		WithLogger(logger),
		WithPanicHandler(func(err error) { panics = append(panics, err) }),
	)

	var got []string
	ch.Subscribe(func(int) { got = append(got, "before") })
	ch.Subscribe(func(int) { panic("boom") })
	ch.Subscribe(func(int) { got = append(got, "after") })

	assert.NotPanics(t, func() { ch.Trigger(1) })
	assert.Equal(t, []string{"before", "after"}, got)

	require.Len(t, panics, 1)
	assert.True(t, errors.Is(panics[0], errors.ErrCodeHandlerPanic))
	navErr, ok := panics[0].(*errors.NavbarError)
	require.True(t, ok)
	assert.Equal(t, "refresh-pressed", navErr.Details["channel"])
	assert.Equal(t, 1, navErr.Details["index"])
	assert.Contains(t, buf.String(), "Channel handler panicked")
}

func TestNilHandlerIgnored(t *testing.T) {
	ch := New[int]()
	ch.Subscribe(nil)
	called := false
	ch.Subscribe(func(int) { called = true })

	assert.NotPanics(t, func() { ch.Trigger(0) })
	assert.True(t, called)
}

func TestConcurrentSubscribe(t *testing.T) {
	ch := New[int]()
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			ch.Subscribe(func(int) {})
		}()
	}
	wg.Wait()
	assert.Equal(t, 50, ch.Len())
}

package testutil

import (
	"os"
	"path/filepath"
	"sort"
	"sync"
	"testing"

	"github.com/grovetools/navbar/dom"
	"github.com/grovetools/navbar/event"
	"github.com/stretchr/testify/require"
)

// WriteConfig writes body to dir/name and returns the full path.
func WriteConfig(t *testing.T, dir, name, body string) string {
	t.Helper()

	path := filepath.Join(dir, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(body), 0600), "failed to write %s", name)
	return path
}

// Recorder counts notifications on a set of named signals.
type Recorder struct {
	mu     sync.Mutex
	counts map[string]int
	order  []string
}

// NewRecorder returns an empty recorder.
func NewRecorder() *Recorder {
	return &Recorder{counts: make(map[string]int)}
}

// Watch subscribes to sig and records each notification under name.
func (r *Recorder) Watch(name string, sig event.Subscribable) event.Subscription {
	r.mu.Lock()
	if _, ok := r.counts[name]; !ok {
		r.counts[name] = 0
	}
	r.mu.Unlock()

	return sig.Subscribe(func() {
		r.mu.Lock()
		defer r.mu.Unlock()
		r.counts[name]++
		r.order = append(r.order, name)
	})
}

// Count returns how many times name fired.
func (r *Recorder) Count(name string) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.counts[name]
}

// Counts returns a copy of every watched signal's count, including zeros.
func (r *Recorder) Counts() map[string]int {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make(map[string]int, len(r.counts))
	for k, v := range r.counts {
		out[k] = v
	}
	return out
}

// Order returns the signal names in the order they fired.
func (r *Recorder) Order() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.order...)
}

// Total returns the number of notifications across all signals.
func (r *Recorder) Total() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.order)
}

// Names returns the watched signal names, sorted.
func (r *Recorder) Names() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	names := make([]string, 0, len(r.counts))
	for k := range r.counts {
		names = append(names, k)
	}
	sort.Strings(names)
	return names
}

// ChildClasses returns the first class of each element child of el.
func ChildClasses(el *dom.Element) []string {
	var out []string
	for _, c := range el.Children() {
		classes := c.Classes()
		if len(classes) == 0 {
			out = append(out, "")
			continue
		}
		out = append(out, classes[0])
	}
	return out
}

// ChildAttr returns the value of key on each element child of el.
func ChildAttr(el *dom.Element, key string) []string {
	var out []string
	for _, c := range el.Children() {
		v, _ := c.Attribute(key)
		out = append(out, v)
	}
	return out
}

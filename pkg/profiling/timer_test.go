package profiling

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNestedSpans(t *testing.T) {
	p := NewProfiler()

	outer := p.Start("render bar")
	inner := p.Start("back")
	inner.Stop()
	sibling := p.Start("forward")
	sibling.Stop()
	outer.Stop()
	p.Start("query").Stop()

	var buf bytes.Buffer
	p.Summarize(&buf)
	out := buf.String()

	assert.Contains(t, out, "- render bar (")
	assert.Contains(t, out, "  - back (")
	assert.Contains(t, out, "  - forward (")
	assert.Contains(t, out, "\n- query (")
	assert.Contains(t, out, "total ")
}

func TestUnclosedChildIsPoppedWithParent(t *testing.T) {
	p := NewProfiler()

	outer := p.Start("outer")
	p.Start("leaked")
	outer.Stop()
	p.Start("after").Stop()

	require.Len(t, p.root.children, 2)
	assert.Equal(t, "after", p.root.children[1].name)
}

func TestDisabledProfiler(t *testing.T) {
	var p Profiler
	p.Start("ignored").Stop()

	var buf bytes.Buffer
	p.Summarize(&buf)
	assert.Empty(t, buf.String())
}

package testutil

import (
	"os"
	"testing"

	"github.com/grovetools/navbar/dom"
	"github.com/grovetools/navbar/event"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteConfig(t *testing.T) {
	dir := t.TempDir()
	path := WriteConfig(t, dir, "sub/navbar.yml", "home_url: x\n")

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "home_url: x\n", string(data))
}

func TestRecorder(t *testing.T) {
	a := event.NewSignal()
	b := event.NewSignal()
	r := NewRecorder()
	r.Watch("a", a)
	r.Watch("b", b)

	a.Fire()
	b.Fire()
	a.Fire()

	assert.Equal(t, 2, r.Count("a"))
	assert.Equal(t, map[string]int{"a": 2, "b": 1}, r.Counts())
	assert.Equal(t, []string{"a", "b", "a"}, r.Order())
	assert.Equal(t, 3, r.Total())
	assert.Equal(t, []string{"a", "b"}, r.Names())
}

func TestChildClasses(t *testing.T) {
	doc := dom.NewDocument()
	parent := doc.CreateElement("div")
	for _, class := range []string{"one", "", "three"} {
		child := doc.CreateElement("span")
		child.AddClass(class)
		child.SetAttribute("data-k", class)
		parent.AppendChild(child)
	}

	assert.Equal(t, []string{"one", "", "three"}, ChildClasses(parent))
	assert.Equal(t, []string{"one", "", "three"}, ChildAttr(parent, "data-k"))
}

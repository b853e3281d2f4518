package widget_test

import (
	"context"
	"testing"

	"github.com/grovetools/navbar/browserbar"
	"github.com/grovetools/navbar/config"
	"github.com/grovetools/navbar/dom"
	"github.com/grovetools/navbar/widget"
	"github.com/grovetools/navbar/widget/addressbar"
	"github.com/grovetools/navbar/widget/iconbutton"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRootNodeStableAcrossRender(t *testing.T) {
	tests := []struct {
		name  string
		build func(doc *dom.Document) widget.Renderable
	}{
		{name: "icon button", build: func(doc *dom.Document) widget.Renderable { return iconbutton.New(doc) }},
		{name: "address bar", build: func(doc *dom.Document) widget.Renderable { return addressbar.New(doc) }},
		{name: "browser bar", build: func(doc *dom.Document) widget.Renderable {
			return browserbar.New(doc, config.BarConfig{})
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := tt.build(dom.NewDocument())
			before := w.RootNode()
			require.NotNil(t, before)
			assert.Empty(t, before.Children())
			assert.Nil(t, before.Parent())

			require.NoError(t, w.Render(context.Background()))
			assert.Same(t, before, w.RootNode())
			assert.NotEmpty(t, before.Children())
		})
	}
}

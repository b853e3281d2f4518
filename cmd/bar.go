package cmd

import (
	"context"

	"github.com/grovetools/navbar/browserbar"
	"github.com/grovetools/navbar/cli"
	"github.com/grovetools/navbar/config"
	"github.com/grovetools/navbar/dom"
	"github.com/grovetools/navbar/pkg/profiling"
	"github.com/grovetools/navbar/widget/addressbar"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// buildBar constructs and renders a bar from cfg and attaches it to a fresh
// document.
func buildBar(ctx context.Context, cfg *config.Config, logger *logrus.Entry) (*browserbar.Bar, error) {
	defer profiling.Start("render bar").Stop()

	doc := dom.NewDocument()
	field := addressbar.New(doc,
		addressbar.WithPlaceholder(cfg.AddressBar.Placeholder),
		addressbar.WithValue(cfg.AddressBar.Value),
	)
	bar := browserbar.New(doc, cfg.Bar,
		browserbar.WithAddressField(field),
		browserbar.WithLogger(logger),
	)
	if err := bar.Render(ctx); err != nil {
		return nil, err
	}
	doc.Attach(bar.RootNode())
	return bar, nil
}

// loadConfig loads the configuration selected by the command flags.
func loadConfig(cmd *cobra.Command) (*config.Config, string, error) {
	defer profiling.Start("load config").Stop()
	return cli.LoadConfig(cmd)
}

package cmd

import (
	"github.com/grovetools/navbar/cli"
	"github.com/grovetools/navbar/logging"
	"github.com/grovetools/navbar/pkg/profiling"
	"github.com/grovetools/navbar/version"
	"github.com/spf13/cobra"
)

// NewRootCmd assembles the navbar command tree.
func NewRootCmd() *cobra.Command {
	root := cli.NewStandardCommand(
		"navbar",
		"Render and drive a browser navigation bar",
	)
	cli.SetVersionTemplate(root, version.GetInfo())

	profiler := profiling.NewCobraProfiler(logging.NewLogger("profiling"))
	profiler.AddFlags(root)
	root.PersistentPreRunE = profiler.PreRun
	root.PersistentPostRun = profiler.PostRun

	root.AddCommand(NewRenderCmd())
	root.AddCommand(NewQueryCmd())
	root.AddCommand(NewRunCmd())
	root.AddCommand(NewSchemaCmd())
	root.AddCommand(NewConfigCmd())
	root.AddCommand(cli.NewVersionCommand("navbar"))

	cli.ApplyStyledHelpRecursive(root)
	return root
}

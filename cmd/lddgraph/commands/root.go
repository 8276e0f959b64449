// Package commands implements the command line interface for lddgraph.
package commands

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.trai.ch/lddgraph/internal/build"
	"go.trai.ch/lddgraph/internal/core/domain"
	"go.trai.ch/zerr"
)

// CLI represents the command line interface for lddgraph.
type CLI struct {
	app     Application
	rootCmd *cobra.Command
}

// Application represents the application logic interface.
type Application interface {
	Run(ctx context.Context, inputs []string, stdout io.Writer) error
}

// New creates a new CLI instance with the given app.
func New(a Application) *CLI {
	c := &CLI{app: a}

	rootCmd := &cobra.Command{
		Use:   "lddgraph { - | ldd-output-file | dynamically-loadable-file } ...",
		Short: "Convert shared object dependencies into a directed graph",
		Long: `Examine a dynamically loadable file, a saved "ldd -v" report, or a report
on standard input ("-"), and write a Graphviz DOT digraph to standard output.

Dotted edges are direct loader dependencies. Solid edges carry the symbol
versions one object requires from another.`,
		Example: `  lddgraph /bin/bash | dot -Tpng > g.png
  ldd -v /bin/uname | lddgraph - | dot -Tsvg > g.svg`,
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       build.Version,
		RunE:          c.run,
	}

	rootCmd.SetVersionTemplate(fmt.Sprintf(
		"{{.Name}} version {{.Version}} (commit: %s, date: %s)\n",
		build.Commit,
		build.Date,
	))
	rootCmd.InitDefaultVersionFlag()
	rootCmd.Flags().Lookup("version").Usage = "Print the application version"

	rootCmd.InitDefaultHelpFlag()
	rootCmd.Flags().Lookup("help").Usage = "Show help for command"

	rootCmd.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		printUsage(cmd)
		return zerr.Wrap(err, domain.ErrUnknownFlag.Error())
	})

	c.rootCmd = rootCmd
	return c
}

func (c *CLI) run(cmd *cobra.Command, args []string) error {
	if len(args) == 0 {
		printUsage(cmd)
		return domain.ErrNoInputs
	}
	return c.app.Run(cmd.Context(), args, cmd.OutOrStdout())
}

// printUsage writes the usage to the error stream so it never mixes with a graph.
func printUsage(cmd *cobra.Command) {
	_, _ = fmt.Fprint(cmd.ErrOrStderr(), cmd.UsageString())
}

// Execute runs the root command with the given context.
func (c *CLI) Execute(ctx context.Context) error {
	c.rootCmd.SetContext(ctx)
	return c.rootCmd.Execute()
}

// SetArgs sets the arguments for the root command. Used for testing.
func (c *CLI) SetArgs(args []string) {
	c.rootCmd.SetArgs(args)
}

// SetOutput sets the output and error streams for the root command. Used for testing.
func (c *CLI) SetOutput(out, err io.Writer) {
	c.rootCmd.SetOut(out)
	c.rootCmd.SetErr(err)
}

// Package commands implements the CLI commands for the stint time tracker.
package commands

import (
	"context"
	"io"

	"github.com/spf13/cobra"
	"go.trai.ch/stint/internal/app"
	"go.trai.ch/stint/internal/build"
)

// CLI represents the command line interface for stint.
type CLI struct {
	app     *app.App
	rootCmd *cobra.Command
}

// Option configures the CLI.
type Option func(*CLI)

// WithOutput redirects command output, which defaults to stdout.
func WithOutput(w io.Writer) Option {
	return func(c *CLI) {
		c.rootCmd.SetOut(w)
	}
}

// WithErrOutput redirects diagnostic output, which defaults to stderr.
func WithErrOutput(w io.Writer) Option {
	return func(c *CLI) {
		c.rootCmd.SetErr(w)
	}
}

// New creates a new CLI instance with the given app.
func New(a *app.App, opts ...Option) *CLI {
	rootCmd := &cobra.Command{
		Use:           "stint",
		Short:         "Replay task timelines and report the time spent on each task",
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       build.Version,
	}

	rootCmd.InitDefaultVersionFlag()
	rootCmd.Flags().Lookup("version").Usage = "Print the application version"

	rootCmd.InitDefaultHelpFlag()
	rootCmd.Flags().Lookup("help").Usage = "Show help for command"

	// -v stays with --version, which cobra claims when the shorthand is free.
	rootCmd.PersistentFlags().Bool("verbose", false, "Log every replayed event")
	rootCmd.PersistentPreRunE = func(cmd *cobra.Command, _ []string) error {
		verbose, err := cmd.Flags().GetBool("verbose")
		if err != nil {
			return err
		}
		a.SetVerbose(verbose)
		return nil
	}

	c := &CLI{
		app:     a,
		rootCmd: rootCmd,
	}

	rootCmd.AddCommand(c.newReplayCmd())
	rootCmd.AddCommand(c.newVersionCmd())

	for _, opt := range opts {
		opt(c)
	}

	return c
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

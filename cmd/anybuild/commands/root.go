// Package commands implements the CLI for the anybuild tool.
package commands

import (
	"context"
	"io"

	"github.com/spf13/cobra"
	"go.trai.ch/anybuild/internal/core/domain"
)

// CLI represents the command line interface for anybuild.
type CLI struct {
	app      Application
	rootCmd  *cobra.Command
	exitCode int
}

// Application represents the application logic interface.
type Application interface {
	Run(ctx context.Context, args []string) (int, error)
}

// New creates a new CLI instance with the given app.
//
// The root command takes no flags of its own: every argument, including
// --help, belongs to the delegated build tool.
func New(a Application) *CLI {
	c := &CLI{app: a}

	c.rootCmd = &cobra.Command{
		Use:                "anybuild [args...]",
		Short:              "Build any project with the build tool it already uses",
		Args:               cobra.ArbitraryArgs,
		DisableFlagParsing: true,
		SilenceUsage:       true,
		SilenceErrors:      true,
		CompletionOptions:  cobra.CompletionOptions{DisableDefaultCmd: true},
		RunE: func(cmd *cobra.Command, args []string) error {
			code, err := c.app.Run(cmd.Context(), args)
			c.exitCode = code
			return err
		},
	}

	return c
}

// Execute runs the root command with the given context and returns the exit
// code reported by the application.
func (c *CLI) Execute(ctx context.Context) (int, error) {
	c.exitCode = domain.ExitSuccess
	c.rootCmd.SetContext(ctx)
	if err := c.rootCmd.Execute(); err != nil {
		if c.exitCode == domain.ExitSuccess {
			c.exitCode = domain.ExitFatal
		}
		return c.exitCode, err
	}
	return c.exitCode, nil
}

// SetArgs sets the arguments for the root command.
func (c *CLI) SetArgs(args []string) {
	// cobra falls back to os.Args on a nil slice.
	if args == nil {
		args = []string{}
	}
	c.rootCmd.SetArgs(args)
}

// SetOutput sets the output and error streams for the root command. Used for testing.
func (c *CLI) SetOutput(out, err io.Writer) {
	c.rootCmd.SetOut(out)
	c.rootCmd.SetErr(err)
}

// Package main is the entry point for the anybuild tool.
package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/grindlemire/graft"
	"go.trai.ch/anybuild/cmd/anybuild/commands"
	"go.trai.ch/anybuild/internal/app"
	"go.trai.ch/anybuild/internal/core/domain"
	_ "go.trai.ch/anybuild/internal/wiring"
)

// ComponentProvider is a function that returns the application components.
type ComponentProvider func(context.Context) (*app.Components, error)

func main() {
	os.Exit(run(context.Background(), os.Args[1:], os.Stderr, func(ctx context.Context) (*app.Components, error) {
		c, _, err := graft.ExecuteFor[*app.Components](ctx)
		return c, err
	}))
}

// run returns the process exit code. Signals are not captured here: while a
// build tool runs the executor forwards them to it, otherwise the default
// disposition applies.
func run(ctx context.Context, args []string, stderr io.Writer, provider ComponentProvider) int {
	// 1. Initialize application components
	components, err := provider(ctx)
	if err != nil {
		// Logger is not available yet if initialization failed
		_, _ = fmt.Fprintln(stderr, "Error: "+err.Error())
		return domain.ExitFatal
	}

	// 2. Interface - CLI
	cli := commands.New(components.App)
	cli.SetArgs(args)
	cli.SetOutput(os.Stdout, stderr)

	// 3. Execution
	code, err := cli.Execute(ctx)
	if err != nil {
		components.Logger.Error(err)
	}
	return code
}

// Package app implements the application layer for anybuild.
package app

import (
	"context"

	"go.trai.ch/anybuild/internal/core/domain"
	"go.trai.ch/anybuild/internal/core/ports"
	"go.trai.ch/anybuild/internal/engine/dispatcher"
	"go.trai.ch/zerr"
)

// App represents the main application logic.
type App struct {
	loader     ports.RuleLoader
	dispatcher *dispatcher.Dispatcher
}

// Components contains all the initialized application components.
// This struct provides controlled access to components needed by the CLI layer.
type Components struct {
	App    *App
	Logger ports.Logger
}

// New creates a new App instance.
func New(loader ports.RuleLoader, d *dispatcher.Dispatcher) *App {
	return &App{
		loader:     loader,
		dispatcher: d,
	}
}

// Run detects the build system of the current directory and delegates to it,
// forwarding args. It returns the exit code the process should end with.
func (a *App) Run(ctx context.Context, args []string) (int, error) {
	// 1. Load the rule table
	table, err := a.loader.Load()
	if err != nil {
		return domain.ExitFatal, zerr.Wrap(err, "failed to load rule table")
	}

	// 2. Dispatch
	outcome, err := a.dispatcher.Run(ctx, table, args)
	if err != nil {
		return domain.ExitFatal, err
	}

	return outcome.ExitCode, nil
}

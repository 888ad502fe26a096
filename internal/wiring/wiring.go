// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/anybuild/internal/adapters/config"
	_ "go.trai.ch/anybuild/internal/adapters/fs"
	_ "go.trai.ch/anybuild/internal/adapters/logger"
	_ "go.trai.ch/anybuild/internal/adapters/shell"
	// Register app and engine nodes.
	_ "go.trai.ch/anybuild/internal/app"
	_ "go.trai.ch/anybuild/internal/engine/dispatcher"
)

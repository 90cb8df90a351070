// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/crew/internal/adapters/hostrunner"
	_ "go.trai.ch/crew/internal/adapters/logger"
	_ "go.trai.ch/crew/internal/adapters/modfile"
	_ "go.trai.ch/crew/internal/adapters/registry"
	_ "go.trai.ch/crew/internal/adapters/shell"
	_ "go.trai.ch/crew/internal/adapters/telemetry"
	// Register app and engine nodes.
	_ "go.trai.ch/crew/internal/app"
	_ "go.trai.ch/crew/internal/engine/loader"
)

// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/unibuild/internal/adapters/backend"
	_ "go.trai.ch/unibuild/internal/adapters/config"
	_ "go.trai.ch/unibuild/internal/adapters/fetch"
	_ "go.trai.ch/unibuild/internal/adapters/fs"
	_ "go.trai.ch/unibuild/internal/adapters/logger"
	_ "go.trai.ch/unibuild/internal/adapters/manifest"
	_ "go.trai.ch/unibuild/internal/adapters/shell"
	_ "go.trai.ch/unibuild/internal/adapters/telemetry/progrock"
	// Register app and engine nodes.
	_ "go.trai.ch/unibuild/internal/app"
	_ "go.trai.ch/unibuild/internal/engine/decision"
	_ "go.trai.ch/unibuild/internal/engine/executor"
	_ "go.trai.ch/unibuild/internal/engine/scheduler"
)

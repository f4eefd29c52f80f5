// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/idgov/internal/adapters/config"
	_ "go.trai.ch/idgov/internal/adapters/logger"
	_ "go.trai.ch/idgov/internal/adapters/metrics"
	_ "go.trai.ch/idgov/internal/adapters/watcher"
	// Register the app composition node.
	_ "go.trai.ch/idgov/internal/app"
)

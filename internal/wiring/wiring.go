// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/stint/internal/adapters/clock"
	_ "go.trai.ch/stint/internal/adapters/config"
	_ "go.trai.ch/stint/internal/adapters/fingerprint"
	_ "go.trai.ch/stint/internal/adapters/logger"
	_ "go.trai.ch/stint/internal/adapters/telemetry/progrock"
	// Register app and engine nodes.
	_ "go.trai.ch/stint/internal/app"
	_ "go.trai.ch/stint/internal/engine/replay"
)

// Package constants defines shared constants and configuration values
// used throughout scenerouter.
package constants

import (
	"os"
	"time"
)

// RootKey is the key of the synthetic container the builder wraps around
// declarations that do not form a single rooted container.
const RootKey = "__root"

// PathSeparator joins scene keys into a scene path.
const PathSeparator = "/"

// Environment variables read during Init.
const (
	DebugEnvVar    = "SCENEROUTER_DEBUG"     // Forces debug level on the internal logger
	LogLevelEnvVar = "SCENEROUTER_LOG_LEVEL" // Application log level ("debug", "info", "warn", "error")
)

// IsDebug returns true if SCENEROUTER_DEBUG is set to a non-empty value.
func IsDebug() bool {
	return os.Getenv(DebugEnvVar) != ""
}

// Default timing constants.
const (
	DefaultBackDebounce = 150 * time.Millisecond // Minimum spacing between hardware back presses
)

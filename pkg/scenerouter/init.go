// Package scenerouter manages navigation state for tree-structured UI
// scenes.
//
// The work is split across subpackages: scene normalizes declarations into
// a scene tree, state holds navigation state, action defines the closed
// set of navigation actions, reducer computes the next state, and router
// coordinates dispatch and back navigation across router instances.
//
// This package carries the ambient pieces: logging setup and loading
// scene declarations from TOML or YAML files.
package scenerouter

import (
	"log/slog"
	"os"

	"github.com/BrandonKowalski/scenerouter/pkg/scenerouter/constants"
	"github.com/BrandonKowalski/scenerouter/pkg/scenerouter/internal"
)

// Options configures scenerouter initialization.
type Options struct {
	LogPath  string // Full path for log file including filename (creates parent directories)
	LogLevel string // Application log level: "debug", "info", "warn" or "error"
	Debug    bool   // Log router internals at debug level
}

// Init configures logging. Call it before creating routers; without it,
// logs go to stderr and router internals only report errors.
func Init(options Options) {
	if options.LogPath != "" {
		internal.SetLogPath(options.LogPath)
	}

	if options.Debug || constants.IsDebug() {
		internal.SetInternalLogLevel(slog.LevelDebug)
	} else {
		internal.SetInternalLogLevel(slog.LevelError)
	}

	level := options.LogLevel
	if env := os.Getenv(constants.LogLevelEnvVar); env != "" {
		level = env
	}
	internal.SetRawLogLevel(level)
}

// Close flushes and closes the log file, if any.
func Close() {
	internal.CloseLogger()
}

// SetLogPath sets the full path for the log file, including filename.
// Creates all necessary parent directories.
// Call before Init() to take effect during initialization.
func SetLogPath(path string) {
	internal.SetLogPath(path)
}

// GetLogger returns the application logger for structured logging.
func GetLogger() *slog.Logger {
	return internal.GetLogger()
}

// SetLogLevel sets the minimum log level for the application logger.
func SetLogLevel(level slog.Level) {
	internal.SetLogLevel(level)
}

// SetRawLogLevel parses and sets the log level from a string (e.g., "debug", "info", "error").
func SetRawLogLevel(level string) {
	internal.SetRawLogLevel(level)
}

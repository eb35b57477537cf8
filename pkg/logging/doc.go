// Package logging configures structured logging for the coffeemaker binaries.
//
// # Overview
//
// The package wraps log/slog with a JSON handler writing to stderr, attaches
// module and version attributes to every record, and reads the level from the
// LOG_LEVEL environment variable. Debug level also records source locations.
//
// # Usage
//
// Set the default logger early in main:
//
//	func main() {
//	    logging.SetDefaultStructuredLogger("coffeemakerd", version)
//	    slog.Info("machine starting", "capacity", 3)
//	}
//
// Create a dedicated logger:
//
//	logger := logging.NewStructuredLogger("coffeemaker", "v1.0.0", "debug")
//	m := machine.New(machine.WithLogger(logger))
//
// Bridge a standard library logger, for example for http.Server.ErrorLog:
//
//	srv.ErrorLog = logging.NewLogLogger(slog.LevelError, false)
//
// # Levels
//
// Supported values (case-insensitive): debug, info (default), warn or
// warning, error. Unknown values fall back to info.
package logging

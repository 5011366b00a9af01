// Package logger provides a thin wrapper around Go's slog package adding
// functional options for configuration and helper attribute constructors.
//
// New creates a *slog.Logger configured by a set of Option functions. These
// options allow you to:
//
//   - Select an output format (text or json)
//   - Set the minimum log level
//   - Supply default slog.Attr values applied to every record
//   - Apply environment presets (development, staging, production)
//
// Helper constructors such as Group, Error, Mode, Code and Field live in
// attr.go and keep attribute naming consistent across the codebase.
//
// # Usage
//
//	import "github.com/dmitrymomot/csscolor/pkg/logger"
//
//	func main() {
//	    log := logger.New(logger.WithDevelopment("csscolor"))
//	    logger.SetAsDefault(log)
//
//	    log.Debug("color rejected",
//	        logger.Mode("hex_long"),
//	        logger.Value("#K0FFEE"),
//	    )
//	}
//
// ParseLevel and ParseFormat turn configuration strings into option values;
// Discard returns a logger for libraries that log only when asked to.
package logger

// Package logging provides structured logging for the asnint tools.
//
// # Overview
//
// The package exposes a small leveled, key-value Logger interface backed
// by zap:
//
//   - Multiple log levels (debug, info, warn, error)
//   - Text (console) and JSON output formats
//   - Field-based contextual logging
//
// # Creating a Logger
//
//	logger := logging.New(logging.Config{
//	    Level:  "debug",
//	    Format: "json",
//	    Output: "stderr",
//	})
//	defer logger.Sync()
//
// For testing, use a no-op logger:
//
//	logger := logging.NewNop()
//
// # Structured Logging
//
//	logger.Info("field encoded",
//	    "field", "Latitude",
//	    "octets", 4,
//	)
//
// Output (JSON format):
//
//	{"level":"info","ts":"2026-10-19T10:30:00Z","msg":"field encoded","field":"Latitude","octets":4}
//
// # Contextual Fields
//
//	fieldLogger := logger.WithFields("field", "Latitude", "tag", "[0]")
//	fieldLogger.Debug("decoding")
//
// # Output Destinations
//
//	logging.Config{Output: "stdout"}            // Standard output
//	logging.Config{Output: "stderr"}            // Standard error (default)
//	logging.Config{Output: "/var/log/asnint.log"} // File path
package logging

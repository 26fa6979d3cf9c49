// Package log provides simple leveled logging for the keen-log tool itself.
//
// This is the CLI's and relay server's own diagnostic output (startup
// messages, configuration problems, HTTP access lines). Events emitted by
// applications go through the keenlog package and its configured sinks, never
// through this package.
//
// # Log Levels
//
//   - DEBUG: Detailed diagnostic information (only shown in verbose mode)
//   - INFO: General informational messages
//   - WARN: Warning messages for potentially problematic situations
//   - ERROR: Error messages for failures and exceptions
//
// # Example Usage
//
//	log.Infof("Relay listening on %s", addr)
//	log.Warnf("Configuration file not found at %s, using defaults", path)
//
// Enabling verbose mode for debug output:
//
//	log.SetVerbose(true)
//	log.Debugf("Resolved file sink: %s", path)
//
// Output control:
//
//	log.SetForceStdErr(true) // Send all logs to stderr
//
// All functions are safe for concurrent use.
package log

// Package utils provides small helpers shared across keen-log.
//
// Path resolution lets file sinks declared in a configuration file be written
// relative to that file's directory:
//
//	absPath := utils.GetAbsolutePath("logs/error.txt", "/etc/keen-log")
//	// Returns: /etc/keen-log/logs/error.txt
package utils

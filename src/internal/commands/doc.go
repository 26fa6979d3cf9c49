// Package commands implements the keen-log command-line interface.
//
// Every subcommand is a small struct holding its flags with a Run method,
// wired into a cobra command tree by NewRootCommand. Global flags live in
// AppContext.
//
// # Available Commands
//
//   - emit: dispatch one event through the configured sinks
//   - check: validate a configuration file and print the effective configuration
//   - demo: emit one event per severity with a built-in preset (default, file, web)
//   - serve: run the HTTP relay
//
// # Example Usage
//
//	keen-log --config /etc/keen-log.toml emit --severity error "backup failed"
//	keen-log --config /etc/keen-log.toml check
//	keen-log demo --preset file --dir /tmp/logs
//	keen-log --config /etc/keen-log.toml serve --bind 127.0.0.1:8080
//
// Without --config the built-in defaults are used: colored console output
// only.
package commands

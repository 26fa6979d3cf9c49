// Package config holds the dispatcher's live configuration.
//
// A Configuration carries one Level per severity (color, console target,
// backtrace policy, file and webhook sinks) plus the global time zone. The
// Store publishes exactly one Configuration at a time; the Builder is the only
// way to produce a new one.
//
// # Building a configuration
//
//	store := config.NewStore(config.Default())
//	err := config.NewBuilder(store).
//	    Select(severity.Info).
//	    File("info.txt").
//	    File("all.txt").
//	    Select(severity.Error).
//	    Webhook(req, `{"text":"{{line}}"}`).
//	    Publish()
//
// The first failing call is remembered; later calls are ignored and Publish
// returns that error without touching the store.
//
// # Configuration file
//
// LoadConfig reads a TOML document with one table per severity:
//
//	time_zone = "utc"
//	color_mode = "auto"
//	webhook_timeout_sec = 10
//
//	[info]
//	files = ["info.txt", "all.txt"]
//
//	[error]
//	color = "#ff6400"
//	console = "stderr"
//	backtrace = "simple"
//
//	[[error.webhook]]
//	url = "https://hooks.example.com/notify"
//	format = '{"text":"{{line}}"}'
//	escape_json = true
//
// ValidateConfig reports every problem at once as ValidationErrors, and Apply
// feeds a valid file through a Builder. Relative file paths resolve against
// the directory of the configuration file.
package config

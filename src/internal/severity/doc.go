// Package severity defines the closed enumerations every per-level setting is
// indexed by: the four event severities, the backtrace policy, the console
// target and the time-zone mode.
//
// Severity values map to a dense index 0..Count-1 that addresses the
// per-severity arrays of a configuration. The None value is the unset
// selection of a configuration builder; it has no index and is never
// dispatched.
//
// All enumerations implement encoding.TextMarshaler and
// encoding.TextUnmarshaler, so they can be used directly as TOML or JSON
// string fields:
//
//	console = "stderr"
//	backtrace = "simple"
//	time_zone = "utc"
package severity

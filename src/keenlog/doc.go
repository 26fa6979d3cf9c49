// Package keenlog is a severity-leveled log dispatcher.
//
// Each of the four severities (Info, Warn, Error, Fatal) has its own console
// color and stream, backtrace policy, and any number of file and webhook
// sinks. The package-level functions log through a default Logger whose
// configuration starts out as:
//
//	info   cyan         stdout  no backtrace
//	warn   pale orange  stderr  no backtrace
//	error  orange       stderr  file:line:column of the call
//	fatal  red          stderr  full stack trace
//
// Change it with New, which returns a builder bound to the default logger:
//
//	err := keenlog.New().
//	    TimeZone(keenlog.UTC).
//	    Select(keenlog.Info).
//	    File("info.txt").
//	    File("all.txt").
//	    Select(keenlog.Error).
//	    WebhookJSON(keenlog.RequestTemplate{URL: hookURL}, `{"text":"{{line}}"}`).
//	    Publish()
//
//	keenlog.Infof("listening on %s", addr)
//
// Logging never fails and never exits the process, Fatalf included. Sink
// failures are reported on stdout in the fatal color.
//
// NewZapCore adapts a Logger to go.uber.org/zap.
package keenlog

// Package dispatch renders log events and fans them out to the sinks of the
// event's severity.
//
// An Engine reads one configuration snapshot per event, builds the line
//
//	[<timestamp>] <message><backtrace suffix>
//
// and then writes it to the console, every webhook and every file of that
// severity, in that order. A failing sink never stops the others: its error
// is printed to stdout in the fatal color and dispatch continues. Nothing is
// returned to the caller.
//
// If the configuration cannot be read, a single uncolored FATAL!!! line is
// written to stdout instead.
package dispatch

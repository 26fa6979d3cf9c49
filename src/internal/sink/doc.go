// Package sink describes the delivery targets of a rendered log line and
// performs the single-target side effects: appending to a file and sending a
// webhook request.
//
// Descriptors are plain values so that a published configuration can be
// copied and compared. Delivery functions return domain errors
// (SINK_IO_ERROR, SINK_REQUEST_ERROR) and never retry.
//
// # Webhook templates
//
// A webhook's format is a body template containing exactly one {{line}}
// placeholder:
//
//	{"type":"error","text":"{{line}}"}
//
// Other {{...}} sequences are left untouched. With EscapeJSON set, the line is
// JSON-string escaped before substitution so multi-line backtraces keep the
// body valid JSON.
package sink

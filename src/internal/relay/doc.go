// Package relay exposes a logger over HTTP.
//
// Other processes (shell scripts, cron jobs, services without a Go client)
// can emit events and replace the logger's configuration through a small
// REST API:
//
//	POST /api/v1/log/{severity}   {"message": "..."}      202 Accepted
//	GET  /api/v1/config                                   current snapshot
//	PUT  /api/v1/config           configuration document  publish a new snapshot
//	GET  /health                                          "OK"
//
// The configuration document is the JSON form of the TOML configuration
// file. PUT replaces the whole snapshot; sections that are left out get
// their defaults back. color_mode and webhook_timeout_sec are fixed when the
// relay starts and are rejected in a PUT.
//
// # Response Format
//
// Successful responses wrap data in a "data" field:
//
//	{
//	  "data": { /* response payload */ }
//	}
//
// Error responses use the following format:
//
//	{
//	  "error": {
//	    "code": "ERROR_CODE",
//	    "message": "Human-readable error message",
//	    "details": { /* optional context */ }
//	  }
//	}
package relay

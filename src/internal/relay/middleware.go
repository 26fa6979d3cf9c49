package relay

import (
	"fmt"
	"mime"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5/middleware"

	"github.com/maksimkurb/keen-log/src/internal/log"
	"github.com/maksimkurb/keen-log/src/internal/severity"
)

// Recovery turns a handler panic into a 500 and reports it as a Fatal event
// through emitter, so it reaches the same sinks as the events the relay
// forwards. http.ErrAbortHandler is re-raised untouched.
func Recovery(emitter Emitter) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				rec := recover()
				if rec == nil {
					return
				}
				if rec == http.ErrAbortHandler {
					panic(rec)
				}
				msg := fmt.Sprintf("relay: panic serving %s %s: %v", r.Method, r.URL.Path, rec)
				log.Errorf("%s", msg)
				emitter.Emit(severity.Fatal, msg)
				writeError(w, ErrCodeInternalError, "Internal server error", nil)
			}()
			next.ServeHTTP(w, r)
		})
	}
}

// Logger writes one debug line per request with its status and response size.
func Logger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

		next.ServeHTTP(ww, r)

		status := ww.Status()
		if status == 0 {
			status = http.StatusOK
		}
		log.Debugf("%s %s - %d %dB (%v)", r.Method, r.URL.Path, status, ww.BytesWritten(), time.Since(start))
	})
}

// JSONContentType rejects request bodies declared as anything but JSON. A
// body with no Content-Type is accepted; chunked bodies (unknown length) are
// checked like any other.
func JSONContentType(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.ContentLength == 0 {
			next.ServeHTTP(w, r)
			return
		}
		if ct := r.Header.Get("Content-Type"); ct != "" {
			mediaType, _, err := mime.ParseMediaType(ct)
			if err != nil || mediaType != "application/json" {
				writeError(w, ErrCodeUnsupportedMediaType, "Content-Type must be application/json", nil)
				return
			}
		}
		next.ServeHTTP(w, r)
	})
}

package dispatch

import (
	"time"

	"github.com/maksimkurb/keen-log/src/internal/severity"
)

// Timestamp layouts. The local form carries the numeric offset, the UTC form
// the literal zone name.
const (
	LocalLayout = "2006-01-02 15:04:05.000000000 -07:00"
	UTCLayout   = "2006-01-02 15:04:05.000000000 UTC"
)

// Clock supplies the wall-clock time of an event.
type Clock interface {
	Now() time.Time
}

// SystemClock reads the system clock.
type SystemClock struct{}

// Now implements Clock.
func (SystemClock) Now() time.Time {
	return time.Now()
}

// FormatTimestamp renders t in the given zone and wraps it in brackets.
func FormatTimestamp(t time.Time, tz severity.TimeZone) string {
	if tz == severity.UTC {
		return "[" + t.UTC().Format(UTCLayout) + "]"
	}
	return "[" + t.Local().Format(LocalLayout) + "]"
}

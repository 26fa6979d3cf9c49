package severity

import (
	"fmt"
	"strings"

	"github.com/maksimkurb/keen-log/src/internal/errors"
)

// Severity is the level tag that routes an event to its per-level configuration.
type Severity uint8

const (
	// None is the unset selection. It has no index and must never be dispatched.
	None Severity = iota
	Info
	Warn
	Error
	Fatal
)

// Count is the number of dispatchable severities.
const Count = 4

// All lists the dispatchable severities in index order.
var All = [Count]Severity{Info, Warn, Error, Fatal}

var severityNames = [...]string{
	None:  "none",
	Info:  "info",
	Warn:  "warn",
	Error: "error",
	Fatal: "fatal",
}

// Index returns the dense index (0..Count-1) of s. The second value is false
// for None and for out-of-range values.
func (s Severity) Index() (int, bool) {
	if s < Info || s > Fatal {
		return 0, false
	}
	return int(s - Info), true
}

// Valid reports whether s can be dispatched.
func (s Severity) Valid() bool {
	_, ok := s.Index()
	return ok
}

func (s Severity) String() string {
	if int(s) < len(severityNames) {
		return severityNames[s]
	}
	return fmt.Sprintf("severity(%d)", uint8(s))
}

// Parse returns the dispatchable severity with the given name, case-insensitively.
func Parse(name string) (Severity, error) {
	lowered := strings.ToLower(strings.TrimSpace(name))
	for _, s := range All {
		if severityNames[s] == lowered {
			return s, nil
		}
	}
	return None, errors.NewInvalidSeverityError(fmt.Sprintf("unknown severity %q (expected info, warn, error or fatal)", name))
}

// MarshalText implements encoding.TextMarshaler.
func (s Severity) MarshalText() ([]byte, error) {
	if !s.Valid() {
		return nil, errors.NewInvalidSeverityError(fmt.Sprintf("cannot encode %s", s))
	}
	return []byte(s.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (s *Severity) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(text))
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}

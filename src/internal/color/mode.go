package color

import (
	"fmt"
	"strings"

	"github.com/maksimkurb/keen-log/src/internal/errors"
)

// Mode decides whether console output is painted.
type Mode uint8

const (
	// Auto paints only when the stream is a terminal.
	Auto Mode = iota
	Always
	Never
)

var modeNames = []string{"auto", "always", "never"}

func (m Mode) String() string {
	if int(m) < len(modeNames) {
		return modeNames[m]
	}
	return fmt.Sprintf("mode(%d)", uint8(m))
}

// ParseMode parses "auto", "always" or "never".
func ParseMode(s string) (Mode, error) {
	lowered := strings.ToLower(strings.TrimSpace(s))
	for i, name := range modeNames {
		if name == lowered {
			return Mode(i), nil
		}
	}
	return Auto, errors.NewValidationError(fmt.Sprintf("unknown color mode %q (expected auto, always or never)", s), nil)
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (m *Mode) UnmarshalText(text []byte) error {
	parsed, err := ParseMode(string(text))
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}

// MarshalText implements encoding.TextMarshaler.
func (m Mode) MarshalText() ([]byte, error) {
	return []byte(m.String()), nil
}

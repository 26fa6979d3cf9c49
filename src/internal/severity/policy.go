package severity

import (
	"fmt"
	"strings"

	"github.com/maksimkurb/keen-log/src/internal/errors"
)

// Backtrace selects what is appended to a rendered line.
type Backtrace uint8

const (
	// BacktraceNone appends nothing.
	BacktraceNone Backtrace = iota
	// BacktraceSimple appends the entry point's call site as " (file:line:column)".
	BacktraceSimple
	// BacktraceComplex appends a newline and the full captured stack trace.
	BacktraceComplex
)

// Console selects the standard stream an event is echoed to.
type Console uint8

const (
	ConsoleDisabled Console = iota
	ConsoleStdout
	ConsoleStderr
)

// TimeZone selects how timestamps are rendered. It is global, not per severity.
type TimeZone uint8

const (
	Local TimeZone = iota
	UTC
)

var (
	backtraceNames = []string{"none", "simple", "complex"}
	consoleNames   = []string{"disabled", "stdout", "stderr"}
	timeZoneNames  = []string{"local", "utc"}
)

func (b Backtrace) String() string { return enumName(backtraceNames, int(b), "backtrace") }
func (c Console) String() string   { return enumName(consoleNames, int(c), "console") }
func (z TimeZone) String() string  { return enumName(timeZoneNames, int(z), "time_zone") }

// MarshalText implements encoding.TextMarshaler.
func (b Backtrace) MarshalText() ([]byte, error) {
	return marshalEnum(backtraceNames, int(b), "backtrace")
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (b *Backtrace) UnmarshalText(text []byte) error {
	i, err := parseEnum(backtraceNames, string(text), "backtrace")
	if err != nil {
		return err
	}
	*b = Backtrace(i)
	return nil
}

// MarshalText implements encoding.TextMarshaler.
func (c Console) MarshalText() ([]byte, error) {
	return marshalEnum(consoleNames, int(c), "console")
}

// UnmarshalText implements encoding.TextUnmarshaler.
// "none" and "off" are accepted as aliases of "disabled".
func (c *Console) UnmarshalText(text []byte) error {
	switch strings.ToLower(strings.TrimSpace(string(text))) {
	case "none", "off":
		*c = ConsoleDisabled
		return nil
	}
	i, err := parseEnum(consoleNames, string(text), "console")
	if err != nil {
		return err
	}
	*c = Console(i)
	return nil
}

// MarshalText implements encoding.TextMarshaler.
func (z TimeZone) MarshalText() ([]byte, error) {
	return marshalEnum(timeZoneNames, int(z), "time_zone")
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (z *TimeZone) UnmarshalText(text []byte) error {
	i, err := parseEnum(timeZoneNames, string(text), "time_zone")
	if err != nil {
		return err
	}
	*z = TimeZone(i)
	return nil
}

func enumName(names []string, i int, kind string) string {
	if i >= 0 && i < len(names) {
		return names[i]
	}
	return fmt.Sprintf("%s(%d)", kind, i)
}

func marshalEnum(names []string, i int, kind string) ([]byte, error) {
	if i < 0 || i >= len(names) {
		return nil, errors.NewValidationError(fmt.Sprintf("cannot encode %s(%d)", kind, i), nil)
	}
	return []byte(names[i]), nil
}

func parseEnum(names []string, text string, kind string) (int, error) {
	lowered := strings.ToLower(strings.TrimSpace(text))
	for i, name := range names {
		if name == lowered {
			return i, nil
		}
	}
	return 0, errors.NewValidationError(
		fmt.Sprintf("unknown %s %q (expected one of: %s)", kind, text, strings.Join(names, ", ")), nil)
}

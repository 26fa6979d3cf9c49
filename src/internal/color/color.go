// Package color provides the 24-bit console colors used to paint dispatched
// lines. Painting wraps a line in ANSI truecolor escapes and never changes
// its text.
package color

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/maksimkurb/keen-log/src/internal/errors"
)

const reset = "\033[0m"

// Color is an RGB triple.
type Color struct {
	R, G, B uint8
}

// RGB returns the color with the given components.
func RGB(r, g, b uint8) Color {
	return Color{R: r, G: g, B: b}
}

// Default palette of the four severities.
var (
	Cyan       = RGB(0, 255, 255)
	PaleOrange = RGB(255, 215, 185)
	Orange     = RGB(255, 100, 0)
	Red        = RGB(255, 0, 0)
)

var named = map[string]Color{
	"black":       RGB(0, 0, 0),
	"red":         Red,
	"green":       RGB(0, 255, 0),
	"yellow":      RGB(255, 255, 0),
	"blue":        RGB(0, 0, 255),
	"magenta":     RGB(255, 0, 255),
	"cyan":        Cyan,
	"white":       RGB(255, 255, 255),
	"orange":      Orange,
	"pale_orange": PaleOrange,
}

// Parse accepts "#rrggbb", "rrggbb", "rgb(r, g, b)" or a palette name such as
// "cyan" or "pale_orange".
func Parse(s string) (Color, error) {
	value := strings.ToLower(strings.TrimSpace(s))

	if c, ok := named[value]; ok {
		return c, nil
	}

	if strings.HasPrefix(value, "rgb(") && strings.HasSuffix(value, ")") {
		parts := strings.Split(value[4:len(value)-1], ",")
		if len(parts) != 3 {
			return Color{}, invalid(s)
		}
		var rgb [3]uint8
		for i, p := range parts {
			n, err := strconv.ParseUint(strings.TrimSpace(p), 10, 8)
			if err != nil {
				return Color{}, invalid(s)
			}
			rgb[i] = uint8(n)
		}
		return RGB(rgb[0], rgb[1], rgb[2]), nil
	}

	hex := strings.TrimPrefix(value, "#")
	if len(hex) != 6 {
		return Color{}, invalid(s)
	}
	n, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return Color{}, invalid(s)
	}
	return RGB(uint8(n>>16), uint8(n>>8), uint8(n)), nil
}

func invalid(s string) error {
	return errors.NewValidationError(fmt.Sprintf("invalid color %q (expected #rrggbb, rgb(r, g, b) or a color name)", s), nil)
}

// Hex returns the "#rrggbb" form.
func (c Color) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

func (c Color) String() string {
	return c.Hex()
}

// Paint wraps text in the truecolor foreground escape of c.
func (c Color) Paint(text string) string {
	var b strings.Builder
	b.Grow(len(text) + 24)
	b.WriteString("\033[38;2;")
	b.WriteString(strconv.Itoa(int(c.R)))
	b.WriteByte(';')
	b.WriteString(strconv.Itoa(int(c.G)))
	b.WriteByte(';')
	b.WriteString(strconv.Itoa(int(c.B)))
	b.WriteByte('m')
	b.WriteString(text)
	b.WriteString(reset)
	return b.String()
}

// MarshalText implements encoding.TextMarshaler.
func (c Color) MarshalText() ([]byte, error) {
	return []byte(c.Hex()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (c *Color) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(text))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

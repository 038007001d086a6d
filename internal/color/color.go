// Package color parses and formats the RGB colors used by a Style's
// Foreground and Background fields.
package color

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// A Color is a 8-bit-per-channel RGB color.
type Color struct {
	R, G, B uint8
}

// String returns the hex color code for c.
func (c Color) String() string { return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B) }

// names maps the 16 ANSI terminal color names a catalogue or config author
// is likely to type (the same vocabulary the highlighter's lineage prints
// kinds with, e.g. comment -> Fg(Black), string -> Fg(Green)) to their usual
// RGB values, so a style in config.toml can say foreground = "green"
// instead of spelling out a hex triplet.
var names = map[string]Color{
	"black":   {0, 0, 0},
	"red":     {205, 0, 0},
	"green":   {0, 205, 0},
	"yellow":  {205, 205, 0},
	"blue":    {0, 0, 238},
	"magenta": {205, 0, 205},
	"cyan":    {0, 205, 205},
	"white":   {229, 229, 229},

	"lightblack":   {127, 127, 127},
	"lightred":     {255, 0, 0},
	"lightgreen":   {0, 255, 0},
	"lightyellow":  {255, 255, 0},
	"lightblue":    {92, 92, 255},
	"lightmagenta": {255, 0, 255},
	"lightcyan":    {0, 255, 255},
	"lightwhite":   {255, 255, 255},
}

// Parse returns the RGB values corresponding to the color described by s.
// The string may be a CSS-style hex code (#ABCDEF or the shorthand #ABC),
// or one of the 16 ANSI color names listed above, case-insensitively.
func Parse(s string) (Color, error) {
	if c, ok := names[strings.ToLower(s)]; ok {
		return c, nil
	}
	if len(s) == 0 || s[0] != '#' {
		return Color{}, fmt.Errorf("color: parse %q: not a valid hex string or color name", s)
	}
	hex := s[1:]
	if len(hex) == 3 {
		hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
	}
	if len(hex) != 6 {
		return Color{}, fmt.Errorf("color: parse %q: not a valid hex string", s)
	}
	n, err := strconv.ParseInt(hex, 16, 32)
	if err != nil {
		return Color{}, errors.WithMessage(err, fmt.Sprintf("color: parse %q", s))
	}
	return Color{uint8(n >> 16), uint8(n >> 8), uint8(n)}, nil
}

func (c *Color) UnmarshalText(b []byte) (err error) {
	in, err := Parse(string(b))
	if err == nil {
		*c = in
	}
	return
}

package termesc

import (
	"strconv"

	"github.com/dpinela/synoptic/internal/color"
)

type GraphicFlag int

// Constants for non-color graphic attributes.
const (
	StyleNone GraphicFlag = 0
	StyleBold GraphicFlag = 1
)

// Constants for the 3-bit ANSI color palette.
const (
	ColorBlack GraphicFlag = 30 + iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorWhite
)

func (c GraphicFlag) forEachSGRCode(f func(int)) { f(int(c)) }

type GraphicAttribute interface {
	forEachSGRCode(func(int))
}

// rgbAttribute sets a 24-bit foreground or background color via the
// SGR 38;2;r;g;b / 48;2;r;g;b sequences most modern terminals support.
type rgbAttribute struct {
	base int // 38 for foreground, 48 for background
	c    color.Color
}

func (a rgbAttribute) forEachSGRCode(f func(int)) {
	f(a.base)
	f(2)
	f(int(a.c.R))
	f(int(a.c.G))
	f(int(a.c.B))
}

// Foreground sets the foreground (text) color.
func Foreground(c color.Color) GraphicAttribute { return rgbAttribute{base: 38, c: c} }

// Background sets the background color.
func Background(c color.Color) GraphicAttribute { return rgbAttribute{base: 48, c: c} }

func SetGraphicAttributes(attrs ...GraphicAttribute) string {
	b := make([]byte, len(csi), 64)
	copy(b, csi)
	for _, attr := range attrs {
		attr.forEachSGRCode(func(x int) {
			if len(b) > len(csi) {
				b = append(b, ';')
			}
			b = strconv.AppendInt(b, int64(x), 10)
		})
	}
	return string(append(b, 'm'))
}

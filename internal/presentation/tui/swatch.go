// Package tui holds terminal presentation helpers for the CLI.
package tui

import (
	"fmt"
	"math"
	"os"
	"strings"

	"github.com/muesli/termenv"
	"golang.org/x/term"
)

// Hex renders sRGB coordinates as a #rrggbb string, clamping each channel
// to [0,1]. NaN channels render as 0.
func Hex(coords []float64) string {
	var ch [3]int
	for i := 0; i < 3 && i < len(coords); i++ {
		v := coords[i]
		if math.IsNaN(v) {
			v = 0
		}
		v = math.Min(1, math.Max(0, v))
		ch[i] = int(math.Round(v * 255))
	}
	return fmt.Sprintf("#%02x%02x%02x", ch[0], ch[1], ch[2])
}

// Swatch returns a colored block of the given width for the hex color, or an
// empty string when stdout is not a terminal.
func Swatch(hex string, width int) string {
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return ""
	}
	if width <= 0 {
		width = 6
	}
	p := termenv.ColorProfile()
	block := termenv.String(strings.Repeat(" ", width)).Background(p.Color(hex))
	return block.String()
}

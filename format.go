package gamut

import (
	"math"
	"strconv"
	"strings"
)

// FormatOptions controls CSS serialization.
type FormatOptions struct {
	// Precision is the number of significant digits per coordinate.
	// Zero means the default of 5.
	Precision int
	// Commas switches to comma-delimited legacy formatting.
	Commas bool
}

// DefaultPrecision is the significant-digit count used when FormatOptions
// leaves Precision at zero.
const DefaultPrecision = 5

// Format serializes a color to CSS. Spaces with their own CSS function
// (lab, lch, hsl) use it; everything else uses the generic
// color(<id> c1 c2 ...) form, with "XYZ" standing in for spaces that have no
// CSS-facing identifier. NaN and negative-zero coordinates are normalized to
// 0, and alpha is omitted when it is exactly 1.
func (e *Engine) Format(c Color, opts FormatOptions) (string, error) {
	space, err := e.reg.Get(c.Space)
	if err != nil {
		return "", err
	}
	prec := opts.Precision
	if prec <= 0 {
		prec = DefaultPrecision
	}

	parts := make([]string, len(space.Coords))
	for i := range space.Coords {
		v := 0.0
		if i < len(c.Coords) {
			v = c.Coords[i]
		}
		parts[i] = formatCoord(v, prec)
		if space.Format != "" && space.Coords[i].Unit != "" {
			parts[i] += space.Coords[i].Unit
		}
	}

	sep := " "
	if opts.Commas {
		sep = ", "
	}

	var b strings.Builder
	if space.Format != "" {
		b.WriteString(space.Format)
		b.WriteByte('(')
	} else {
		id := space.CSSID
		if id == "" {
			id = "XYZ"
		}
		b.WriteString("color(")
		b.WriteString(id)
		b.WriteString(sep)
	}
	b.WriteString(strings.Join(parts, sep))

	if !math.IsNaN(c.Alpha) && c.Alpha != 1 {
		if opts.Commas {
			b.WriteString(", ")
		} else {
			b.WriteString(" / ")
		}
		b.WriteString(formatCoord(c.Alpha, prec))
	}
	b.WriteByte(')')
	return b.String(), nil
}

// String serializes with default options, returning "" for colors in
// unregistered spaces.
func (e *Engine) String(c Color) string {
	s, err := e.Format(c, FormatOptions{})
	if err != nil {
		return ""
	}
	return s
}

// formatCoord rounds to the given number of significant digits and prints
// the shortest decimal form. NaN (undefined channel) and negative zero both
// come out as "0".
func formatCoord(v float64, prec int) string {
	if math.IsNaN(v) || v == 0 {
		return "0"
	}
	return strconv.FormatFloat(roundSig(v, prec), 'f', -1, 64)
}

func roundSig(v float64, digits int) float64 {
	if v == 0 || math.IsInf(v, 0) || math.IsNaN(v) {
		return v
	}
	mag := math.Ceil(math.Log10(math.Abs(v)))
	factor := math.Pow(10, float64(digits)-mag)
	return math.Round(v*factor) / factor
}

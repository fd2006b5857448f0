package domain

// WhitePoint is a reference illuminant given as CIE 1931 XYZ tristimulus
// values (Y normalized to 1). Spaces refer to the canonical package values
// below; the conversion engine compares white points by pointer identity,
// not by numeric equality.
type WhitePoint struct {
	Name    string
	X, Y, Z float64
}

var (
	// D50 is the ICC profile connection space illuminant.
	D50 = &WhitePoint{Name: "D50", X: 0.96422, Y: 1.0, Z: 0.82521}

	// D65 is the sRGB / display illuminant.
	D65 = &WhitePoint{Name: "D65", X: 0.95047, Y: 1.0, Z: 1.08883}
)

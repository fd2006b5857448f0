package domain

import "math"

// CoordFunc converts a coordinate vector between two spaces. Implementations
// must be pure and must return a fresh slice (or the input unchanged for
// identity transforms); they never mutate their argument.
type CoordFunc func(coords []float64) []float64

// SpaceParseFunc is a space-specific parse override. It is offered every
// parsed CSS function call before the generic parsers run and reports whether
// it claimed the input.
type SpaceParseFunc func(call *FuncCall) (coords []float64, alpha float64, ok bool)

// Range is a reference range for a single coordinate. Unbounded sides are
// expressed as ±Inf.
type Range struct {
	Min, Max float64
}

// Unbounded returns a range with no constraint on either side.
func Unbounded() *Range {
	return &Range{Min: math.Inf(-1), Max: math.Inf(1)}
}

// Coordinate describes one axis of a color space.
type Coordinate struct {
	// Name is the canonical coordinate name ("lightness", "chroma", ...).
	Name string

	// Range is the reference range, or nil when the axis is unconstrained.
	Range *Range

	// Unit is an optional CSS unit suffix ("%" or "deg") used when the
	// space serializes through its own CSS function.
	Unit string
}

// Space describes one color space. A Space handed to the registry is a
// partial definition; Define resolves inheritance and connection wiring and
// stores a flattened copy which must be treated as immutable afterwards.
type Space struct {
	// ID is the unique lowercase identifier of the space.
	ID string

	// Name is the human-readable display name.
	Name string

	// CSSID is the identifier used inside the CSS color() function, e.g.
	// "--display-p3". Empty means the space has no CSS-facing identifier
	// and serializes with the "XYZ" fallback.
	CSSID string

	// Format, when set, names the space's own CSS function ("lab", "lch",
	// "hsl"). Spaces without one serialize through the generic color()
	// syntax.
	Format string

	// Coords lists the axes of the space in order.
	Coords []Coordinate

	// White is the reference white point. Defaults to D50 when nil.
	White *WhitePoint

	// ToXYZ and FromXYZ connect the space directly to XYZ. Spaces that
	// connect through an intermediate leave these nil and declare Via,
	// ToBase and FromBase instead; the registry composes the XYZ pair at
	// definition time.
	ToXYZ   CoordFunc
	FromXYZ CoordFunc

	// Via names an already-registered connection space. ToBase converts
	// this space's coordinates into the Via space, FromBase converts back.
	Via      string
	ToBase   CoordFunc
	FromBase CoordFunc

	// ConvertersFrom holds direct specialized conversions keyed by source
	// space id, bypassing the XYZ round trip. A converter is used verbatim
	// and is responsible for any white point adaptation itself.
	ConvertersFrom map[string]CoordFunc

	// GamutCheck overrides the generic per-coordinate bounds test.
	GamutCheck func(coords []float64) bool

	// Parse is a space-specific parse override. It is never inherited.
	Parse SpaceParseFunc

	// Inherits names a parent space whose undeclared properties are copied
	// in at definition time. The id and parse override are never copied.
	Inherits string
}

// CoordIndex returns the position of the named coordinate.
func (s *Space) CoordIndex(name string) (int, bool) {
	for i, c := range s.Coords {
		if c.Name == name {
			return i, true
		}
	}
	return -1, false
}

// Bounded reports whether any coordinate carries a reference range.
func (s *Space) Bounded() bool {
	for _, c := range s.Coords {
		if c.Range != nil {
			return true
		}
	}
	return false
}

// CoordRef identifies a single coordinate of a registered space, e.g. the
// result of resolving "lch.chroma".
type CoordRef struct {
	Space *Space
	Index int
	Name  string
}

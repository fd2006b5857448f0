package gamut

import "math"

// Color is a color value: coordinates expressed in a registered space, plus
// alpha. Coordinates are meaningful only relative to the space id; a NaN
// coordinate marks an undefined channel, like the hue of a gray.
//
// Each Color owns its coordinate slice exclusively; operations return new
// values rather than mutating shared state.
type Color struct {
	Space  string    `json:"spaceId"`
	Coords []float64 `json:"coordinates"`
	Alpha  float64   `json:"alpha"`
}

// NewColor builds a Color from explicit coordinates. Alpha is clamped to at
// most 1 here, once, at construction; NaN alpha is preserved as given. The
// coordinate slice is copied.
func NewColor(spaceID string, coords []float64, alpha float64) Color {
	if !math.IsNaN(alpha) && alpha > 1 {
		alpha = 1
	}
	return Color{
		Space:  spaceID,
		Coords: append([]float64(nil), coords...),
		Alpha:  alpha,
	}
}

// SpaceID returns the id of the space the coordinates are expressed in.
func (c Color) SpaceID() string { return c.Space }

// Clone returns a deep copy.
func (c Color) Clone() Color {
	return Color{
		Space:  c.Space,
		Coords: append([]float64(nil), c.Coords...),
		Alpha:  c.Alpha,
	}
}

package spaces

import "github.com/aretw0/gamut/pkg/domain"

func identity(coords []float64) []float64 { return coords }

// XYZ returns the CIE 1931 XYZ space relative to D65. It is the connection
// root: its conversion functions are the identity, and every other space
// reaches it through a finite chain of to/from pairs.
func XYZ() *domain.Space {
	return &domain.Space{
		ID:    "xyz",
		Name:  "CIE XYZ (D65)",
		White: domain.D65,
		Coords: []domain.Coordinate{
			{Name: "x"},
			{Name: "y"},
			{Name: "z"},
		},
		ToXYZ:   identity,
		FromXYZ: identity,
	}
}

// XYZD50 returns the XYZ space relative to D50. Conversions to and from the
// D65 variant go through chromatic adaptation like any other white point
// mismatch.
func XYZD50() *domain.Space {
	return &domain.Space{
		ID:    "xyz-d50",
		Name:  "CIE XYZ (D50)",
		CSSID: "xyz-d50",
		White: domain.D50,
		Coords: []domain.Coordinate{
			{Name: "x"},
			{Name: "y"},
			{Name: "z"},
		},
		ToXYZ:   identity,
		FromXYZ: identity,
	}
}

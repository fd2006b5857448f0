// Package spaces defines the built-in color spaces: CIE XYZ (the connection
// root), sRGB and its linear form, Display P3, CIE Lab and LCH, and HSL.
//
// Definitions are plain constructors returning domain.Space values; Register
// wires them into a registry in dependency order (spaces connecting via
// another must come after it).
package spaces

import (
	"github.com/aretw0/gamut/pkg/domain"
	"github.com/aretw0/gamut/pkg/registry"
)

// Register defines every built-in space on the registry, in dependency
// order.
func Register(reg *registry.Registry) error {
	defs := []*domain.Space{
		XYZ(),
		XYZD50(),
		SRGBLinear(),
		SRGB(),
		P3(),
		Lab(),
		LCH(),
		HSL(),
	}
	for _, def := range defs {
		if _, err := reg.Define(def); err != nil {
			return err
		}
	}
	return nil
}

func mul3(m [3][3]float64, v []float64) []float64 {
	return []float64{
		m[0][0]*v[0] + m[0][1]*v[1] + m[0][2]*v[2],
		m[1][0]*v[0] + m[1][1]*v[1] + m[1][2]*v[2],
		m[2][0]*v[0] + m[2][1]*v[1] + m[2][2]*v[2],
	}
}

func unitRange() *domain.Range {
	return &domain.Range{Min: 0, Max: 1}
}

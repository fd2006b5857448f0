package spaces

import (
	"math"

	"github.com/aretw0/gamut/pkg/domain"
)

// sRGB linear-light to XYZ (D65) and back, IEC 61966-2-1.
var (
	srgbToXYZ = [3][3]float64{
		{0.4124564, 0.3575761, 0.1804375},
		{0.2126729, 0.7151522, 0.0721750},
		{0.0193339, 0.1191920, 0.9503041},
	}
	xyzToSRGB = [3][3]float64{
		{3.2404542, -1.5371385, -0.4985314},
		{-0.9692660, 1.8760108, 0.0415560},
		{0.0556434, -0.2040259, 1.0572252},
	}
)

// srgbGamma applies the sRGB transfer curve to one linear-light component.
// Extended to negative values by mirroring, so out-of-gamut colors survive
// the round trip.
func srgbGamma(c float64) float64 {
	sign := 1.0
	if c < 0 {
		sign, c = -1, -c
	}
	if c > 0.0031308 {
		return sign * (1.055*math.Pow(c, 1/2.4) - 0.055)
	}
	return sign * 12.92 * c
}

// srgbDegamma inverts srgbGamma.
func srgbDegamma(c float64) float64 {
	sign := 1.0
	if c < 0 {
		sign, c = -1, -c
	}
	if c < 0.04045 {
		return sign * c / 12.92
	}
	return sign * math.Pow((c+0.055)/1.055, 2.4)
}

func gammaEncode(coords []float64) []float64 {
	return []float64{srgbGamma(coords[0]), srgbGamma(coords[1]), srgbGamma(coords[2])}
}

func gammaDecode(coords []float64) []float64 {
	return []float64{srgbDegamma(coords[0]), srgbDegamma(coords[1]), srgbDegamma(coords[2])}
}

func rgbCoords() []domain.Coordinate {
	return []domain.Coordinate{
		{Name: "red", Range: unitRange()},
		{Name: "green", Range: unitRange()},
		{Name: "blue", Range: unitRange()},
	}
}

// SRGBLinear returns the linear-light sRGB space.
func SRGBLinear() *domain.Space {
	return &domain.Space{
		ID:     "srgb-linear",
		Name:   "sRGB (linear light)",
		CSSID:  "srgb-linear",
		White:  domain.D65,
		Coords: rgbCoords(),
		ToXYZ: func(coords []float64) []float64 {
			return mul3(srgbToXYZ, coords)
		},
		FromXYZ: func(xyz []float64) []float64 {
			return mul3(xyzToSRGB, xyz)
		},
		ConvertersFrom: map[string]domain.CoordFunc{
			"srgb": gammaDecode,
		},
	}
}

// SRGB returns the gamma-encoded sRGB space.
func SRGB() *domain.Space {
	return &domain.Space{
		ID:     "srgb",
		Name:   "sRGB",
		CSSID:  "srgb",
		White:  domain.D65,
		Coords: rgbCoords(),
		ToXYZ: func(coords []float64) []float64 {
			return mul3(srgbToXYZ, gammaDecode(coords))
		},
		FromXYZ: func(xyz []float64) []float64 {
			return gammaEncode(mul3(xyzToSRGB, xyz))
		},
		ConvertersFrom: map[string]domain.CoordFunc{
			"srgb-linear": gammaEncode,
		},
	}
}

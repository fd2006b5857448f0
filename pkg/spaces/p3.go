package spaces

import "github.com/aretw0/gamut/pkg/domain"

// Display P3 linear-light to XYZ (D65) and back. P3 shares the sRGB
// transfer curve; only the primaries differ.
var (
	p3ToXYZ = [3][3]float64{
		{0.4865709486482162, 0.26566769316909306, 0.19821728523436247},
		{0.2289745640697488, 0.6917385218365064, 0.079286914093745},
		{0.0, 0.04511338185890264, 1.043944368900976},
	}
	xyzToP3 = [3][3]float64{
		{2.493496911941425, -0.9313836179191239, -0.40271078445071684},
		{-0.8294889695615747, 1.7626640603183463, 0.023624685841943577},
		{0.03584583024378447, -0.07617238926804182, 0.9568845240076872},
	}
)

// P3 returns the Display P3 space. It inherits the sRGB coordinate layout,
// white point and gamut handling, and overrides the primaries and the CSS
// identifier.
func P3() *domain.Space {
	return &domain.Space{
		ID:       "p3",
		Name:     "Display P3",
		CSSID:    "--display-p3",
		Inherits: "srgb",
		// Block inheriting srgb's direct converters; they encode sRGB
		// primaries, not P3.
		ConvertersFrom: map[string]domain.CoordFunc{},
		ToXYZ: func(coords []float64) []float64 {
			return mul3(p3ToXYZ, gammaDecode(coords))
		},
		FromXYZ: func(xyz []float64) []float64 {
			return gammaEncode(mul3(xyzToP3, xyz))
		},
	}
}

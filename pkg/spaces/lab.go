package spaces

import (
	"math"

	"github.com/aretw0/gamut/pkg/domain"
)

// CIE standard constants, http://www.brucelindbloom.com/index.html?Eqn_XYZ_to_Lab.html
const (
	labEpsilon = 216.0 / 24389.0
	labKappa   = 24389.0 / 27.0
)

func labCompress(t float64) float64 {
	if t > labEpsilon {
		return math.Cbrt(t)
	}
	return (labKappa*t + 16) / 116
}

func labUncompress(ft float64) float64 {
	ft3 := ft * ft * ft
	if ft3 > labEpsilon {
		return ft3
	}
	return (116*ft - 16) / labKappa
}

func xyzToLab(xyz []float64) []float64 {
	fx := labCompress(xyz[0] / domain.D50.X)
	fy := labCompress(xyz[1] / domain.D50.Y)
	fz := labCompress(xyz[2] / domain.D50.Z)
	return []float64{
		116*fy - 16,
		500 * (fx - fy),
		200 * (fy - fz),
	}
}

func labToXYZ(lab []float64) []float64 {
	fy := (lab[0] + 16) / 116
	fx := lab[1]/500 + fy
	fz := fy - lab[2]/200
	return []float64{
		labUncompress(fx) * domain.D50.X,
		labUncompress(fy) * domain.D50.Y,
		labUncompress(fz) * domain.D50.Z,
	}
}

// Lab returns the CIE 1976 L*a*b* space relative to D50.
func Lab() *domain.Space {
	return &domain.Space{
		ID:     "lab",
		Name:   "CIE Lab",
		CSSID:  "lab-d50",
		Format: "lab",
		White:  domain.D50,
		Coords: []domain.Coordinate{
			{Name: "lightness", Range: &domain.Range{Min: 0, Max: 100}},
			{Name: "a"},
			{Name: "b"},
		},
		ToXYZ:   labToXYZ,
		FromXYZ: xyzToLab,
		Parse:   parseLabFunc("lab"),
		ConvertersFrom: map[string]domain.CoordFunc{
			"lch": lchToLab,
		},
	}
}

// parseLabFunc builds a parse override for the lab()/lch() function shape:
// the first argument may be a percentage (of the 0-100 lightness scale), the
// remaining two are bare numbers, with an optional slash alpha.
func parseLabFunc(name string) domain.SpaceParseFunc {
	return func(call *domain.FuncCall) ([]float64, float64, bool) {
		if call.Name != name || len(call.Args) < 3 {
			return nil, 0, false
		}
		coords := make([]float64, 3)
		for i := 0; i < 3; i++ {
			arg := call.Args[i]
			if arg.Kind == domain.ArgIdent {
				return nil, 0, false
			}
			v := arg.Value
			if i == 0 && arg.Kind == domain.ArgPercentage {
				v *= 100
			}
			coords[i] = v
		}
		alpha := 1.0
		if call.HasAlphaSlash() && len(call.Args) > 3 {
			alpha = call.Args[3].Value
		}
		return coords, alpha, true
	}
}

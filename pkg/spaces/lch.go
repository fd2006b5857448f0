package spaces

import (
	"math"

	"github.com/aretw0/gamut/pkg/domain"
)

// Below this chroma a color is treated as achromatic and its hue is
// undefined (NaN).
const achromaticChroma = 1e-7

func labToLCH(lab []float64) []float64 {
	l, a, b := lab[0], lab[1], lab[2]
	chroma := math.Hypot(a, b)
	hue := math.NaN()
	if chroma >= achromaticChroma {
		hue = math.Atan2(b, a) * 180 / math.Pi
		if hue < 0 {
			hue += 360
		}
	}
	return []float64{l, chroma, hue}
}

func lchToLab(lch []float64) []float64 {
	l, chroma, hue := lch[0], lch[1], lch[2]
	if math.IsNaN(hue) {
		hue = 0
	}
	rad := hue * math.Pi / 180
	return []float64{l, chroma * math.Cos(rad), chroma * math.Sin(rad)}
}

// LCH returns the cylindrical form of CIE Lab. It has no direct XYZ
// functions; it connects through lab, and the registry composes the chain at
// definition time.
func LCH() *domain.Space {
	return &domain.Space{
		ID:     "lch",
		Name:   "CIE LCH",
		CSSID:  "lch-d50",
		Format: "lch",
		White:  domain.D50,
		Coords: []domain.Coordinate{
			{Name: "lightness", Range: &domain.Range{Min: 0, Max: 100}},
			{Name: "chroma", Range: &domain.Range{Min: 0, Max: 150}},
			{Name: "hue"},
		},
		Via:      "lab",
		ToBase:   lchToLab,
		FromBase: labToLCH,
		Parse:    parseLabFunc("lch"),
		ConvertersFrom: map[string]domain.CoordFunc{
			"lab": labToLCH,
		},
	}
}

package spaces

import (
	"math"

	"github.com/aretw0/gamut/pkg/domain"
)

func hslToRGB(hsl []float64) []float64 {
	h, s, l := hsl[0], hsl[1]/100, hsl[2]/100
	if math.IsNaN(h) {
		h = 0
	}
	h = math.Mod(h, 360)
	if h < 0 {
		h += 360
	}

	c := (1 - math.Abs(2*l-1)) * s
	x := c * (1 - math.Abs(math.Mod(h/60, 2)-1))
	m := l - c/2

	var r, g, b float64
	switch {
	case h < 60:
		r, g, b = c, x, 0
	case h < 120:
		r, g, b = x, c, 0
	case h < 180:
		r, g, b = 0, c, x
	case h < 240:
		r, g, b = 0, x, c
	case h < 300:
		r, g, b = x, 0, c
	default:
		r, g, b = c, 0, x
	}
	return []float64{r + m, g + m, b + m}
}

func rgbToHSL(rgb []float64) []float64 {
	r, g, b := rgb[0], rgb[1], rgb[2]
	max := math.Max(r, math.Max(g, b))
	min := math.Min(r, math.Min(g, b))
	l := (max + min) / 2

	if max == min {
		// Achromatic: hue is undefined.
		return []float64{math.NaN(), 0, l * 100}
	}

	d := max - min
	var s float64
	if l > 0.5 {
		s = d / (2 - max - min)
	} else {
		s = d / (max + min)
	}

	var h float64
	switch max {
	case r:
		h = (g - b) / d
		if g < b {
			h += 6
		}
	case g:
		h = (b-r)/d + 2
	default:
		h = (r-g)/d + 4
	}
	h *= 60
	return []float64{h, s * 100, l * 100}
}

// hslInGamut defers to the sRGB gamut: an HSL triple is displayable exactly
// when its RGB form is.
func hslInGamut(hsl []float64) bool {
	const eps = 5e-6
	for _, c := range hslToRGB(hsl) {
		if c < -eps || c > 1+eps {
			return false
		}
	}
	return true
}

// HSL returns the HSL space. Like LCH it carries no direct XYZ functions and
// connects through sRGB.
func HSL() *domain.Space {
	return &domain.Space{
		ID:     "hsl",
		Name:   "HSL",
		CSSID:  "hsl",
		Format: "hsl",
		White:  domain.D65,
		Coords: []domain.Coordinate{
			{Name: "hue"},
			{Name: "saturation", Range: &domain.Range{Min: 0, Max: 100}, Unit: "%"},
			{Name: "lightness", Range: &domain.Range{Min: 0, Max: 100}, Unit: "%"},
		},
		Via:        "srgb",
		ToBase:     hslToRGB,
		FromBase:   rgbToHSL,
		GamutCheck: hslInGamut,
		Parse:      parseHSLFunc,
	}
}

// parseHSLFunc handles hsl() and hsla(): hue as a number or angle,
// saturation and lightness as percentages, optional alpha after a slash or
// as a fourth comma argument.
func parseHSLFunc(call *domain.FuncCall) ([]float64, float64, bool) {
	if call.Name != "hsl" && call.Name != "hsla" {
		return nil, 0, false
	}
	if len(call.Args) < 3 {
		return nil, 0, false
	}
	for _, arg := range call.Args[:3] {
		if arg.Kind == domain.ArgIdent {
			return nil, 0, false
		}
	}
	hue := call.Args[0].Value
	s := call.Args[1].Value
	if call.Args[1].Kind == domain.ArgPercentage {
		s *= 100
	}
	l := call.Args[2].Value
	if call.Args[2].Kind == domain.ArgPercentage {
		l *= 100
	}
	alpha := 1.0
	if len(call.Args) > 3 {
		alpha = call.Args[3].Value
	}
	return []float64{hue, s, l}, alpha, true
}

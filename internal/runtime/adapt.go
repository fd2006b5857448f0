package runtime

import (
	"fmt"

	"github.com/aretw0/gamut/pkg/domain"
)

// Bradford-derived chromatic adaptation matrices. Only the D50/D65 pair is
// supported; adaptation between any other white points is an error rather
// than an approximation.
var (
	d65ToD50 = [3][3]float64{
		{1.0478112, 0.0228866, -0.0501270},
		{0.0295424, 0.9904844, -0.0170491},
		{-0.0092345, 0.0150436, 0.7521316},
	}
	d50ToD65 = [3][3]float64{
		{0.9555766, -0.0230393, 0.0631636},
		{-0.0282895, 1.0099416, 0.0210077},
		{0.0122982, -0.0204830, 1.3299098},
	}
)

// Adapt converts an XYZ vector between two reference white points. White
// points are compared by identity: passing the same *WhitePoint twice is a
// no-op that returns the input slice.
func Adapt(w1, w2 *domain.WhitePoint, xyz []float64) ([]float64, error) {
	switch {
	case w1 == w2:
		return xyz, nil
	case w1 == domain.D65 && w2 == domain.D50:
		return mul3(d65ToD50, xyz), nil
	case w1 == domain.D50 && w2 == domain.D65:
		return mul3(d50ToD65, xyz), nil
	}
	return nil, fmt.Errorf("%w: %s to %s", domain.ErrUnsupportedWhitePoint, w1.Name, w2.Name)
}

func mul3(m [3][3]float64, v []float64) []float64 {
	return []float64{
		m[0][0]*v[0] + m[0][1]*v[1] + m[0][2]*v[2],
		m[1][0]*v[0] + m[1][1]*v[1] + m[1][2]*v[2],
		m[2][0]*v[0] + m[2][1]*v[1] + m[2][2]*v[2],
	}
}

// Package spacefile loads custom RGB color space definitions from YAML
// files, so a deployment can register house gamuts (scanner profiles, wide
// gamut displays) without writing Go.
//
// A space file looks like:
//
//	spaces:
//	  - id: a98-rgb
//	    name: Adobe RGB (1998)
//	    css_id: a98-rgb
//	    white: d65
//	    gamma: 2.19921875
//	    to_xyz:
//	      - [0.5767309, 0.1855540, 0.1881852]
//	      - [0.2973769, 0.6273491, 0.0752741]
//	      - [0.0270343, 0.0706872, 0.9911085]
//	    from_xyz:
//	      - [2.0413690, -0.5649464, -0.3446944]
//	      - [-0.9692660, 1.8760108, 0.0415560]
//	      - [0.0134474, -0.1183897, 1.0154096]
package spacefile

import (
	"fmt"
	"math"
	"os"

	"github.com/aretw0/gamut/pkg/domain"
	"github.com/aretw0/gamut/pkg/registry"
	"github.com/mitchellh/mapstructure"
	"gopkg.in/yaml.v3"
)

// File is the top-level document.
type File struct {
	Spaces []Definition `json:"spaces" mapstructure:"spaces"`
}

// Definition describes one RGB-like space: a transfer curve plus a pair of
// 3x3 matrices to and from XYZ relative to the given white point.
type Definition struct {
	ID    string `json:"id" mapstructure:"id"`
	Name  string `json:"name" mapstructure:"name"`
	CSSID string `json:"css_id" mapstructure:"css_id"`

	// White is "d65" (default) or "d50".
	White string `json:"white" mapstructure:"white"`

	// Gamma is a simple power-law exponent for the transfer curve.
	// Zero or one means the space is linear.
	Gamma float64 `json:"gamma" mapstructure:"gamma"`

	ToXYZ   [][]float64 `json:"to_xyz" mapstructure:"to_xyz"`
	FromXYZ [][]float64 `json:"from_xyz" mapstructure:"from_xyz"`

	// Coords optionally overrides the default red/green/blue [0,1] axes.
	Coords []CoordDef `json:"coords" mapstructure:"coords"`
}

// CoordDef describes one coordinate axis. Nil bounds mean unbounded.
type CoordDef struct {
	Name string   `json:"name" mapstructure:"name"`
	Min  *float64 `json:"min" mapstructure:"min"`
	Max  *float64 `json:"max" mapstructure:"max"`
}

// Load reads a space file and builds the space descriptors.
func Load(path string) ([]*domain.Space, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading space file: %w", err)
	}
	return Parse(raw)
}

// Parse builds space descriptors from raw YAML.
func Parse(raw []byte) ([]*domain.Space, error) {
	var doc map[string]any
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("invalid YAML in space file: %w", err)
	}

	var file File
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           &file,
		WeaklyTypedInput: true,
	})
	if err != nil {
		return nil, err
	}
	if err := decoder.Decode(doc); err != nil {
		return nil, fmt.Errorf("invalid space file structure: %w", err)
	}

	spaces := make([]*domain.Space, 0, len(file.Spaces))
	for i := range file.Spaces {
		space, err := file.Spaces[i].Build()
		if err != nil {
			return nil, fmt.Errorf("space %d: %w", i, err)
		}
		spaces = append(spaces, space)
	}
	return spaces, nil
}

// Register loads a space file and defines every space it contains.
func Register(reg *registry.Registry, path string) error {
	defs, err := Load(path)
	if err != nil {
		return err
	}
	for _, def := range defs {
		if _, err := reg.Define(def); err != nil {
			return fmt.Errorf("defining %q: %w", def.ID, err)
		}
	}
	return nil
}

// Build turns the definition into a space descriptor.
func (d *Definition) Build() (*domain.Space, error) {
	if d.ID == "" {
		return nil, fmt.Errorf("missing id")
	}
	toXYZ, err := matrix(d.ToXYZ)
	if err != nil {
		return nil, fmt.Errorf("to_xyz: %w", err)
	}
	fromXYZ, err := matrix(d.FromXYZ)
	if err != nil {
		return nil, fmt.Errorf("from_xyz: %w", err)
	}

	var white *domain.WhitePoint
	switch d.White {
	case "", "d65":
		white = domain.D65
	case "d50":
		white = domain.D50
	default:
		return nil, fmt.Errorf("unknown white point %q (want d50 or d65)", d.White)
	}

	coords, err := d.coordinates()
	if err != nil {
		return nil, err
	}

	gamma := d.Gamma
	name := d.Name
	if name == "" {
		name = d.ID
	}
	return &domain.Space{
		ID:     d.ID,
		Name:   name,
		CSSID:  d.CSSID,
		Coords: coords,
		White:  white,
		ToXYZ: func(c []float64) []float64 {
			return mul3(toXYZ, decodeGamma(c, gamma))
		},
		FromXYZ: func(xyz []float64) []float64 {
			return encodeGamma(mul3(fromXYZ, xyz), gamma)
		},
	}, nil
}

func (d *Definition) coordinates() ([]domain.Coordinate, error) {
	if len(d.Coords) == 0 {
		return []domain.Coordinate{
			{Name: "red", Range: &domain.Range{Min: 0, Max: 1}},
			{Name: "green", Range: &domain.Range{Min: 0, Max: 1}},
			{Name: "blue", Range: &domain.Range{Min: 0, Max: 1}},
		}, nil
	}
	if len(d.Coords) != 3 {
		return nil, fmt.Errorf("want 3 coords, got %d", len(d.Coords))
	}
	out := make([]domain.Coordinate, 3)
	for i, c := range d.Coords {
		if c.Name == "" {
			return nil, fmt.Errorf("coord %d: missing name", i)
		}
		out[i] = domain.Coordinate{Name: c.Name}
		if c.Min != nil || c.Max != nil {
			r := domain.Unbounded()
			if c.Min != nil {
				r.Min = *c.Min
			}
			if c.Max != nil {
				r.Max = *c.Max
			}
			out[i].Range = r
		}
	}
	return out, nil
}

func matrix(rows [][]float64) ([3][3]float64, error) {
	var m [3][3]float64
	if len(rows) != 3 {
		return m, fmt.Errorf("want 3 rows, got %d", len(rows))
	}
	for i, row := range rows {
		if len(row) != 3 {
			return m, fmt.Errorf("row %d: want 3 values, got %d", i, len(row))
		}
		copy(m[i][:], row)
	}
	return m, nil
}

// decodeGamma linearizes with a sign-mirrored power law.
func decodeGamma(c []float64, gamma float64) []float64 {
	if gamma == 0 || gamma == 1 {
		return c
	}
	out := make([]float64, len(c))
	for i, v := range c {
		out[i] = math.Copysign(math.Pow(math.Abs(v), gamma), v)
	}
	return out
}

func encodeGamma(c []float64, gamma float64) []float64 {
	if gamma == 0 || gamma == 1 {
		return c
	}
	out := make([]float64, len(c))
	for i, v := range c {
		out[i] = math.Copysign(math.Pow(math.Abs(v), 1/gamma), v)
	}
	return out
}

func mul3(m [3][3]float64, v []float64) []float64 {
	return []float64{
		m[0][0]*v[0] + m[0][1]*v[1] + m[0][2]*v[2],
		m[1][0]*v[0] + m[1][1]*v[1] + m[1][2]*v[2],
		m[2][0]*v[0] + m[2][1]*v[1] + m[2][2]*v[2],
	}
}

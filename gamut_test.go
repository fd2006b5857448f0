package gamut_test

import (
	"context"
	"errors"
	"math"
	"testing"

	"github.com/aretw0/gamut"
	"github.com/aretw0/gamut/pkg/adapters/memory"
	"github.com/aretw0/gamut/pkg/css"
	"github.com/aretw0/gamut/pkg/domain"
)

func newEngine(t *testing.T, opts ...gamut.Option) *gamut.Engine {
	t.Helper()
	e, err := gamut.New(opts...)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	return e
}

func coordsWithin(t *testing.T, got, want []float64, tol float64) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("coords = %v, want %v", got, want)
	}
	for i := range want {
		if math.IsNaN(want[i]) {
			if !math.IsNaN(got[i]) {
				t.Fatalf("coord %d = %v, want NaN", i, got[i])
			}
			continue
		}
		if math.Abs(got[i]-want[i]) > tol {
			t.Fatalf("coord %d = %v, want %v ± %v (got %v)", i, got[i], want[i], tol, got)
		}
	}
}

func TestNew_RegistersBuiltins(t *testing.T) {
	e := newEngine(t)
	if e.Registry().Len() != 8 {
		t.Errorf("Len() = %d, want 8", e.Registry().Len())
	}
	for _, id := range []string{"xyz", "xyz-d50", "srgb", "srgb-linear", "p3", "lab", "lch", "hsl"} {
		if _, err := e.Space(id); err != nil {
			t.Errorf("Space(%q) error = %v", id, err)
		}
	}
}

func TestNew_WithoutDefaults(t *testing.T) {
	e := newEngine(t, gamut.WithoutDefaults())
	if e.Registry().Len() != 0 {
		t.Errorf("Len() = %d, want 0", e.Registry().Len())
	}
	if _, err := e.Parse(context.Background(), "rgb(255 0 0)"); err == nil {
		t.Error("Parse succeeded with no spaces registered")
	}
}

func TestEngine_ParseAndConvert(t *testing.T) {
	e := newEngine(t)
	ctx := context.Background()

	c, err := e.Parse(ctx, "rgb(255 0 0)")
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if c.Space != "srgb" {
		t.Fatalf("Space = %q, want srgb", c.Space)
	}
	coordsWithin(t, c.Coords, []float64{1, 0, 0}, 1e-9)

	lch, err := e.To(c, "lch")
	if err != nil {
		t.Fatalf("To() error = %v", err)
	}
	coordsWithin(t, lch.Coords, []float64{54.29, 106.84, 40.86}, 0.1)
	if lch.Alpha != 1 {
		t.Errorf("Alpha = %v, want carried through", lch.Alpha)
	}

	back, err := e.To(lch, "srgb")
	if err != nil {
		t.Fatalf("To() error = %v", err)
	}
	coordsWithin(t, back.Coords, []float64{1, 0, 0}, 1e-4)
}

func TestEngine_To_SameSpace(t *testing.T) {
	e := newEngine(t)
	c := gamut.NewColor("srgb", []float64{0.1, 0.2, 0.3}, 1)
	got, err := e.To(c, "srgb")
	if err != nil {
		t.Fatalf("To() error = %v", err)
	}
	coordsWithin(t, got.Coords, c.Coords, 0)
}

func TestEngine_To_UnknownSpace(t *testing.T) {
	e := newEngine(t)
	c := gamut.NewColor("srgb", []float64{1, 0, 0}, 1)
	if _, err := e.To(c, "no-such-space"); !errors.Is(err, domain.ErrUnknownSpace) {
		t.Fatalf("error = %v, want ErrUnknownSpace", err)
	}
}

func TestEngine_Convert_XYZIdentity(t *testing.T) {
	e := newEngine(t)
	in := []float64{0.3, 0.4, 0.5}
	got, err := e.Convert(in, "xyz", "xyz")
	if err != nil {
		t.Fatalf("Convert() error = %v", err)
	}
	if &got[0] != &in[0] {
		t.Error("xyz->xyz did not return the input slice")
	}
}

func TestEngine_Wrap(t *testing.T) {
	e := newEngine(t)
	ctx := context.Background()

	c := gamut.NewColor("srgb", []float64{1, 0, 0}, 1)

	got, err := e.Wrap(ctx, c)
	if err != nil || got.Space != "srgb" {
		t.Fatalf("Wrap(Color) = %+v, %v", got, err)
	}

	got, err = e.Wrap(ctx, &c)
	if err != nil || got.Space != "srgb" {
		t.Fatalf("Wrap(*Color) = %+v, %v", got, err)
	}

	got, err = e.Wrap(ctx, "rgb(0 255 0)")
	if err != nil {
		t.Fatalf("Wrap(string) error = %v", err)
	}
	coordsWithin(t, got.Coords, []float64{0, 1, 0}, 1e-9)

	if _, err = e.Wrap(ctx, (*gamut.Color)(nil)); !errors.Is(err, domain.ErrInvalidSpaceArg) {
		t.Errorf("Wrap(nil *Color) error = %v", err)
	}
	if _, err = e.Wrap(ctx, 42); !errors.Is(err, domain.ErrInvalidSpaceArg) {
		t.Errorf("Wrap(int) error = %v", err)
	}
}

func TestEngine_Coord(t *testing.T) {
	e := newEngine(t)
	c := gamut.NewColor("srgb", []float64{1, 0, 0}, 1)

	chroma, err := e.Coord(c, "lch.chroma")
	if err != nil {
		t.Fatalf("Coord() error = %v", err)
	}
	if math.Abs(chroma-106.84) > 0.1 {
		t.Errorf("chroma = %v, want about 106.84", chroma)
	}

	red, err := e.Coord(c, "srgb.red")
	if err != nil || red != 1 {
		t.Errorf("Coord(srgb.red) = %v, %v", red, err)
	}

	if _, err := e.Coord(c, "lch.sparkle"); err == nil {
		t.Error("Coord() succeeded for unknown coordinate")
	}
}

func TestEngine_SetCoord(t *testing.T) {
	e := newEngine(t)
	c := gamut.NewColor("srgb", []float64{1, 0, 0}, 1)

	if err := e.SetCoord(&c, "lch.lightness", 80); err != nil {
		t.Fatalf("SetCoord() error = %v", err)
	}
	if c.Space != "srgb" {
		t.Fatalf("Space changed to %q", c.Space)
	}
	got, err := e.Coord(c, "lch.lightness")
	if err != nil {
		t.Fatalf("Coord() error = %v", err)
	}
	if math.Abs(got-80) > 1e-3 {
		t.Errorf("lightness = %v, want 80", got)
	}
}

func TestEngine_InGamut(t *testing.T) {
	e := newEngine(t)

	inside := gamut.NewColor("srgb", []float64{0.5, 0.5, 0.5}, 1)
	ok, err := e.InGamut(inside, nil)
	if err != nil || !ok {
		t.Errorf("InGamut(inside, nil) = %v, %v", ok, err)
	}

	p3Green := gamut.NewColor("p3", []float64{0, 1, 0}, 1)
	ok, err = e.InGamut(p3Green, "srgb")
	if err != nil || ok {
		t.Errorf("InGamut(p3 green, srgb) = %v, %v, want false", ok, err)
	}
	ok, err = e.InGamut(p3Green, nil)
	if err != nil || !ok {
		t.Errorf("InGamut(p3 green, own space) = %v, %v, want true", ok, err)
	}
}

func TestEngine_ToGamut(t *testing.T) {
	e := newEngine(t)

	t.Run("clip", func(t *testing.T) {
		c := gamut.NewColor("srgb", []float64{1.2, 0, 0}, 1)
		got, err := e.ToGamut(&c, gamut.GamutOptions{Method: "clip"})
		if err != nil {
			t.Fatalf("ToGamut() error = %v", err)
		}
		coordsWithin(t, got.Coords, []float64{1, 0, 0}, 1e-9)
		// Not in place by default.
		coordsWithin(t, c.Coords, []float64{1.2, 0, 0}, 1e-9)
	})

	t.Run("in place", func(t *testing.T) {
		c := gamut.NewColor("srgb", []float64{1.2, 0, 0}, 1)
		_, err := e.ToGamut(&c, gamut.GamutOptions{Method: "clip", InPlace: true})
		if err != nil {
			t.Fatalf("ToGamut() error = %v", err)
		}
		coordsWithin(t, c.Coords, []float64{1, 0, 0}, 1e-9)
	})

	t.Run("chroma reduction into srgb", func(t *testing.T) {
		c := gamut.NewColor("p3", []float64{0, 1, 0}, 1)
		got, err := e.ToGamut(&c, gamut.GamutOptions{Space: "srgb"})
		if err != nil {
			t.Fatalf("ToGamut() error = %v", err)
		}
		if got.Space != "p3" {
			t.Errorf("result space = %q, want the color's own", got.Space)
		}
		ok, err := e.InGamut(got, "srgb")
		if err != nil || !ok {
			t.Errorf("mapped color still out of srgb: %v, %v", ok, err)
		}
	})

	t.Run("already in gamut untouched", func(t *testing.T) {
		c := gamut.NewColor("srgb", []float64{0.2, 0.4, 0.6}, 1)
		got, err := e.ToGamut(&c, gamut.GamutOptions{})
		if err != nil {
			t.Fatalf("ToGamut() error = %v", err)
		}
		coordsWithin(t, got.Coords, c.Coords, 0)
	})
}

func TestEngine_Define(t *testing.T) {
	e := newEngine(t)

	// A quantized sRGB variant connecting through srgb.
	quantize := func(coords []float64) []float64 {
		out := make([]float64, len(coords))
		for i, v := range coords {
			out[i] = math.Round(v*15) / 15
		}
		return out
	}
	_, err := e.Define(&domain.Space{
		ID:     "srgb-4bit",
		Name:   "sRGB 4-bit",
		White:  domain.D65,
		Coords: []domain.Coordinate{{Name: "red"}, {Name: "green"}, {Name: "blue"}},
		Via:    "srgb",
		ToBase: func(coords []float64) []float64 { return coords },
		FromBase: func(coords []float64) []float64 {
			return quantize(coords)
		},
	})
	if err != nil {
		t.Fatalf("Define() error = %v", err)
	}

	got, err := e.Convert([]float64{0.5, 0.5, 0.5}, "srgb", "srgb-4bit")
	if err != nil {
		t.Fatalf("Convert() error = %v", err)
	}
	coordsWithin(t, got, []float64{8.0 / 15, 8.0 / 15, 8.0 / 15}, 1e-9)
}

func TestEngine_WithResolver(t *testing.T) {
	e := newEngine(t, gamut.WithResolver(memory.NewWithKeywords()))
	c, err := e.Parse(context.Background(), "hotpink")
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	coordsWithin(t, c.Coords, []float64{1, 105.0 / 255, 180.0 / 255}, 1e-9)
}

func TestEngine_WithParseHook(t *testing.T) {
	hook := func(input string) (*css.Parsed, bool) {
		if input == "brand" {
			return &css.Parsed{SpaceID: "srgb", Coords: []float64{0, 0.32, 0.8}, Alpha: 1}, true
		}
		return nil, false
	}
	e := newEngine(t, gamut.WithParseHook(hook))

	c, err := e.Parse(context.Background(), "brand")
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	coordsWithin(t, c.Coords, []float64{0, 0.32, 0.8}, 1e-9)
}

func TestEngine_LifecycleHooks(t *testing.T) {
	var converts, parses, gamuts int
	e := newEngine(t, gamut.WithLifecycleHooks(domain.LifecycleHooks{
		OnConvert:     func(*domain.ConvertEvent) { converts++ },
		OnParse:       func(*domain.ParseEvent) { parses++ },
		OnGamutMapped: func(*domain.GamutEvent) { gamuts++ },
	}))
	ctx := context.Background()

	c, err := e.Parse(ctx, "rgb(255 0 0)")
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if _, err := e.To(c, "lab"); err != nil {
		t.Fatalf("To() error = %v", err)
	}
	if _, err := e.ToGamut(&c, gamut.GamutOptions{}); err != nil {
		t.Fatalf("ToGamut() error = %v", err)
	}

	if parses != 1 {
		t.Errorf("parse events = %d, want 1", parses)
	}
	if converts == 0 {
		t.Error("no convert events observed")
	}
	if gamuts != 1 {
		t.Errorf("gamut events = %d, want 1", gamuts)
	}
}

func TestScenario_P3GreenToSRGB(t *testing.T) {
	e := newEngine(t)
	ctx := context.Background()

	c, err := e.Parse(ctx, "color(--display-p3 0 1 0 / 0.5)")
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if c.Space != "p3" || c.Alpha != 0.5 {
		t.Fatalf("parsed = %+v", c)
	}

	srgb, err := e.To(c, "srgb")
	if err != nil {
		t.Fatalf("To() error = %v", err)
	}
	if srgb.Alpha != 0.5 {
		t.Errorf("alpha lost: %v", srgb.Alpha)
	}
	if srgb.Coords[0] > -0.05 {
		t.Errorf("red channel = %v, want clearly negative out-of-gamut", srgb.Coords[0])
	}

	mapped, err := e.ToGamut(&srgb, gamut.GamutOptions{})
	if err != nil {
		t.Fatalf("ToGamut() error = %v", err)
	}
	ok, err := e.InGamut(mapped, nil)
	if err != nil || !ok {
		t.Errorf("mapped = %v, InGamut = %v, %v", mapped.Coords, ok, err)
	}
}

package css_test

import (
	"context"
	"errors"
	"fmt"
	"math"
	"testing"

	"github.com/aretw0/gamut/pkg/adapters/memory"
	"github.com/aretw0/gamut/pkg/css"
	"github.com/aretw0/gamut/pkg/domain"
	"github.com/aretw0/gamut/pkg/registry"
	"github.com/aretw0/gamut/pkg/spaces"
)

func newParser(t *testing.T, opts ...css.ParserOption) *css.Parser {
	t.Helper()
	reg := registry.New()
	if err := spaces.Register(reg); err != nil {
		t.Fatalf("Register() error = %v", err)
	}
	return css.NewParser(reg, opts...)
}

func checkParsed(t *testing.T, got *css.Parsed, spaceID string, coords []float64, alpha float64) {
	t.Helper()
	if got.SpaceID != spaceID {
		t.Errorf("SpaceID = %q, want %q", got.SpaceID, spaceID)
	}
	if len(got.Coords) != len(coords) {
		t.Fatalf("Coords = %v, want %v", got.Coords, coords)
	}
	for i := range coords {
		if math.Abs(got.Coords[i]-coords[i]) > 1e-9 {
			t.Errorf("Coords[%d] = %v, want %v", i, got.Coords[i], coords[i])
		}
	}
	if math.IsNaN(alpha) != math.IsNaN(got.Alpha) || (!math.IsNaN(alpha) && math.Abs(got.Alpha-alpha) > 1e-9) {
		t.Errorf("Alpha = %v, want %v", got.Alpha, alpha)
	}
}

func TestParse_RGB(t *testing.T) {
	p := newParser(t)
	ctx := context.Background()

	cases := []struct {
		name   string
		input  string
		coords []float64
		alpha  float64
	}{
		{"channels over 255", "rgb(255 0 0)", []float64{1, 0, 0}, 1},
		{"legacy commas", "rgb(255, 128, 0)", []float64{1, 128.0 / 255, 0}, 1},
		{"percentages stay fractional", "rgb(100% 50% 0%)", []float64{1, 0.5, 0}, 1},
		{"rgba alpha", "rgba(0 0 255 0.5)", []float64{0, 0, 1}, 0.5},
		{"slash alpha", "rgb(0 255 0 / 0.25)", []float64{0, 1, 0}, 0.25},
		{"whitespace tolerated", "  rgb( 255   0   0 )  ", []float64{1, 0, 0}, 1},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := p.Parse(ctx, tc.input)
			if err != nil {
				t.Fatalf("Parse(%q) error = %v", tc.input, err)
			}
			checkParsed(t, got, "srgb", tc.coords, tc.alpha)
		})
	}
}

func TestParse_SpaceOverrides(t *testing.T) {
	p := newParser(t)
	ctx := context.Background()

	cases := []struct {
		name   string
		input  string
		space  string
		coords []float64
		alpha  float64
	}{
		{"lab", "lab(50 40 59.5)", "lab", []float64{50, 40, 59.5}, 1},
		{"lab percent lightness", "lab(50% 40 59.5)", "lab", []float64{50, 40, 59.5}, 1},
		{"lab slash alpha", "lab(50 40 59.5 / 0.5)", "lab", []float64{50, 40, 59.5}, 0.5},
		{"lch", "lch(52.2 72.2 50)", "lch", []float64{52.2, 72.2, 50}, 1},
		{"hsl", "hsl(120 50% 50%)", "hsl", []float64{120, 50, 50}, 1},
		{"hsl angle hue", "hsl(120deg 50% 50%)", "hsl", []float64{120, 50, 50}, 1},
		{"hsla legacy", "hsla(240, 100%, 50%, 0.8)", "hsl", []float64{240, 100, 50}, 0.8},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := p.Parse(ctx, tc.input)
			if err != nil {
				t.Fatalf("Parse(%q) error = %v", tc.input, err)
			}
			checkParsed(t, got, tc.space, tc.coords, tc.alpha)
		})
	}
}

func TestParse_ColorFunction(t *testing.T) {
	p := newParser(t)
	ctx := context.Background()

	t.Run("css id match", func(t *testing.T) {
		got, err := p.Parse(ctx, "color(--display-p3 0 1 0 / 0.5)")
		if err != nil {
			t.Fatalf("Parse() error = %v", err)
		}
		checkParsed(t, got, "p3", []float64{0, 1, 0}, 0.5)
	})

	t.Run("space id fallback", func(t *testing.T) {
		got, err := p.Parse(ctx, "color(p3 0 1 0)")
		if err != nil {
			t.Fatalf("Parse() error = %v", err)
		}
		checkParsed(t, got, "p3", []float64{0, 1, 0}, 1)
	})

	t.Run("srgb", func(t *testing.T) {
		got, err := p.Parse(ctx, "color(srgb 1 0.5 0)")
		if err != nil {
			t.Fatalf("Parse() error = %v", err)
		}
		checkParsed(t, got, "srgb", []float64{1, 0.5, 0}, 1)
	})

	t.Run("missing coordinates zero fill", func(t *testing.T) {
		got, err := p.Parse(ctx, "color(srgb 1)")
		if err != nil {
			t.Fatalf("Parse() error = %v", err)
		}
		checkParsed(t, got, "srgb", []float64{1, 0, 0}, 1)
	})

	t.Run("excess coordinates dropped", func(t *testing.T) {
		got, err := p.Parse(ctx, "color(srgb 1 0 0 0.9 0.8)")
		if err != nil {
			t.Fatalf("Parse() error = %v", err)
		}
		checkParsed(t, got, "srgb", []float64{1, 0, 0}, 1)
	})

	t.Run("unknown space", func(t *testing.T) {
		_, err := p.Parse(ctx, "color(--acme-wide 1 0 0)")
		if !errors.Is(err, domain.ErrUnknownSpace) {
			t.Fatalf("error = %v, want ErrUnknownSpace", err)
		}
	})

	t.Run("xyz-d50 by css id", func(t *testing.T) {
		got, err := p.Parse(ctx, "color(xyz-d50 0.2 0.3 0.4)")
		if err != nil {
			t.Fatalf("Parse() error = %v", err)
		}
		checkParsed(t, got, "xyz-d50", []float64{0.2, 0.3, 0.4}, 1)
	})
}

func TestParse_Unparseable(t *testing.T) {
	p := newParser(t)
	ctx := context.Background()

	for _, input := range []string{"", "garbage", "rebeccapurple", "url(foo)", "rgb()", "color()"} {
		t.Run(fmt.Sprintf("%q", input), func(t *testing.T) {
			_, err := p.Parse(ctx, input)
			if !errors.Is(err, domain.ErrCannotParse) {
				t.Fatalf("Parse(%q) error = %v, want ErrCannotParse", input, err)
			}
		})
	}
}

func TestParse_Resolver(t *testing.T) {
	ctx := context.Background()

	t.Run("keyword resolves", func(t *testing.T) {
		p := newParser(t, css.WithResolver(memory.NewWithKeywords()))
		got, err := p.Parse(ctx, "rebeccapurple")
		if err != nil {
			t.Fatalf("Parse() error = %v", err)
		}
		checkParsed(t, got, "srgb", []float64{0.4, 0.2, 0.6}, 1)
	})

	t.Run("case insensitive", func(t *testing.T) {
		p := newParser(t, css.WithResolver(memory.NewWithKeywords()))
		got, err := p.Parse(ctx, "RED")
		if err != nil {
			t.Fatalf("Parse() error = %v", err)
		}
		checkParsed(t, got, "srgb", []float64{1, 0, 0}, 1)
	})

	t.Run("transparent", func(t *testing.T) {
		p := newParser(t, css.WithResolver(memory.NewWithKeywords()))
		got, err := p.Parse(ctx, "transparent")
		if err != nil {
			t.Fatalf("Parse() error = %v", err)
		}
		checkParsed(t, got, "srgb", []float64{0, 0, 0}, 0)
	})

	t.Run("unknown name falls through", func(t *testing.T) {
		p := newParser(t, css.WithResolver(memory.NewWithKeywords()))
		_, err := p.Parse(ctx, "not-a-color-name")
		if !errors.Is(err, domain.ErrCannotParse) {
			t.Fatalf("error = %v, want ErrCannotParse", err)
		}
	})

	t.Run("resolver failure propagates", func(t *testing.T) {
		p := newParser(t, css.WithResolver(failingResolver{}))
		_, err := p.Parse(ctx, "anything")
		if err == nil || errors.Is(err, domain.ErrCannotParse) {
			t.Fatalf("error = %v, want the resolver failure", err)
		}
	})

	t.Run("rgb input skips resolver", func(t *testing.T) {
		p := newParser(t, css.WithResolver(failingResolver{}))
		got, err := p.Parse(ctx, "rgb(255 0 0)")
		if err != nil {
			t.Fatalf("Parse() error = %v", err)
		}
		checkParsed(t, got, "srgb", []float64{1, 0, 0}, 1)
	})
}

type failingResolver struct{}

func (failingResolver) Lookup(ctx context.Context, name string) (string, error) {
	return "", errors.New("backend unavailable")
}

func TestParse_Hooks(t *testing.T) {
	ctx := context.Background()

	hexHook := func(input string) (*css.Parsed, bool) {
		if input != "#ff0000" {
			return nil, false
		}
		return &css.Parsed{SpaceID: "srgb", Coords: []float64{1, 0, 0}, Alpha: 1}, true
	}

	t.Run("hook claims input", func(t *testing.T) {
		p := newParser(t, css.WithHook(hexHook))
		got, err := p.Parse(ctx, "#ff0000")
		if err != nil {
			t.Fatalf("Parse() error = %v", err)
		}
		checkParsed(t, got, "srgb", []float64{1, 0, 0}, 1)
	})

	t.Run("hook runs before everything", func(t *testing.T) {
		override := func(input string) (*css.Parsed, bool) {
			if input == "rgb(255 0 0)" {
				return &css.Parsed{SpaceID: "lab", Coords: []float64{1, 2, 3}, Alpha: 1}, true
			}
			return nil, false
		}
		p := newParser(t, css.WithHook(override))
		got, err := p.Parse(ctx, "rgb(255 0 0)")
		if err != nil {
			t.Fatalf("Parse() error = %v", err)
		}
		checkParsed(t, got, "lab", []float64{1, 2, 3}, 1)
	})

	t.Run("declined input falls through", func(t *testing.T) {
		p := newParser(t, css.WithHook(hexHook))
		got, err := p.Parse(ctx, "rgb(0 0 255)")
		if err != nil {
			t.Fatalf("Parse() error = %v", err)
		}
		checkParsed(t, got, "srgb", []float64{0, 0, 1}, 1)
	})
}

func TestParse_Events(t *testing.T) {
	var events []*domain.ParseEvent
	p := newParser(t, css.WithLifecycleHooks(domain.LifecycleHooks{
		OnParse: func(e *domain.ParseEvent) { events = append(events, e) },
	}))

	if _, err := p.Parse(context.Background(), "rgb(255 0 0)"); err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if _, err := p.Parse(context.Background(), "garbage"); err == nil {
		t.Fatal("Parse(garbage) succeeded")
	}

	if len(events) != 1 {
		t.Fatalf("got %d events, want 1 (failures emit none)", len(events))
	}
	if events[0].Input != "rgb(255 0 0)" || events[0].SpaceID != "srgb" {
		t.Errorf("event = %+v", events[0])
	}
}

package gamut

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/aretw0/gamut/internal/logging"
	"github.com/aretw0/gamut/internal/runtime"
	"github.com/aretw0/gamut/pkg/css"
	"github.com/aretw0/gamut/pkg/domain"
	"github.com/aretw0/gamut/pkg/ports"
	"github.com/aretw0/gamut/pkg/registry"
	"github.com/aretw0/gamut/pkg/spaces"
)

// Version is the library version, also reported by the CLI and the MCP
// server.
var Version = "0.4.0"

// Engine is the high-level entry point for the gamut library. It owns a
// space registry and wires the conversion engine, the gamut mapper and the
// CSS parser to it.
type Engine struct {
	reg    *registry.Registry
	conv   *runtime.Converter
	mapper *runtime.Mapper
	parser *css.Parser
	logger *slog.Logger

	hooks      domain.LifecycleHooks
	resolver   ports.NameResolver
	parseHooks []css.Hook
	noDefaults bool
}

// Option defines a functional option for configuring the Engine.
type Option func(*Engine)

// WithLogger sets the engine logger. The default is silent.
func WithLogger(l *slog.Logger) Option {
	return func(e *Engine) {
		if l != nil {
			e.logger = l
		}
	}
}

// WithLifecycleHooks registers observability hooks, invoked synchronously on
// space definition, conversion, gamut mapping and parsing.
func WithLifecycleHooks(hooks domain.LifecycleHooks) Option {
	return func(e *Engine) { e.hooks = hooks }
}

// WithResolver installs a name resolver used by Parse for keyword input
// ("rebeccapurple"). Without one, only function syntax parses.
func WithResolver(r ports.NameResolver) Option {
	return func(e *Engine) { e.resolver = r }
}

// WithParseHook appends a parse extension hook, consulted before all other
// parsing.
func WithParseHook(h css.Hook) Option {
	return func(e *Engine) { e.parseHooks = append(e.parseHooks, h) }
}

// WithoutDefaults skips registration of the built-in spaces. The caller must
// Define at least one space with a direct XYZ connection before parsing or
// converting anything.
func WithoutDefaults() Option {
	return func(e *Engine) { e.noDefaults = true }
}

// New creates an Engine. Unless WithoutDefaults is given, the built-in
// spaces (xyz, xyz-d50, srgb-linear, srgb, p3, lab, lch, hsl) are registered
// up front.
func New(opts ...Option) (*Engine, error) {
	e := &Engine{logger: logging.NewNop()}
	for _, opt := range opts {
		opt(e)
	}

	e.reg = registry.New(
		registry.WithLogger(e.logger),
		registry.WithHooks(e.hooks),
	)
	if !e.noDefaults {
		if err := spaces.Register(e.reg); err != nil {
			return nil, fmt.Errorf("registering built-in spaces: %w", err)
		}
	}

	e.conv = runtime.NewConverter(e.reg,
		runtime.WithHooks(e.hooks),
		runtime.WithLogger(e.logger),
	)
	e.mapper = runtime.NewMapper(e.conv,
		runtime.WithMapperHooks(e.hooks),
		runtime.WithMapperLogger(e.logger),
	)

	parserOpts := []css.ParserOption{
		css.WithLifecycleHooks(e.hooks),
		css.WithLogger(e.logger),
	}
	if e.resolver != nil {
		parserOpts = append(parserOpts, css.WithResolver(e.resolver))
	}
	for _, h := range e.parseHooks {
		parserOpts = append(parserOpts, css.WithHook(h))
	}
	e.parser = css.NewParser(e.reg, parserOpts...)

	return e, nil
}

// Registry exposes the engine's space registry, e.g. for loading additional
// space definitions.
func (e *Engine) Registry() *registry.Registry { return e.reg }

// Define registers a color space on the engine.
func (e *Engine) Define(def *domain.Space) (*domain.Space, error) {
	return e.reg.Define(def)
}

// Space looks up a registered space by id, descriptor, or Color value.
func (e *Engine) Space(arg any) (*domain.Space, error) {
	return e.reg.Resolve(arg)
}

// Parse parses a CSS color string into a Color. The context is only used by
// the name resolver fallback.
func (e *Engine) Parse(ctx context.Context, input string) (Color, error) {
	res, err := e.parser.Parse(ctx, input)
	if err != nil {
		return Color{}, err
	}
	return NewColor(res.SpaceID, res.Coords, res.Alpha), nil
}

// Wrap implements get-or-wrap: a Color passes through, a *Color is
// dereferenced, and a string is parsed.
func (e *Engine) Wrap(ctx context.Context, v any) (Color, error) {
	switch val := v.(type) {
	case Color:
		return val, nil
	case *Color:
		if val == nil {
			return Color{}, fmt.Errorf("%w: nil color", domain.ErrInvalidSpaceArg)
		}
		return *val, nil
	case string:
		return e.Parse(ctx, val)
	default:
		return Color{}, fmt.Errorf("%w: %T", domain.ErrInvalidSpaceArg, v)
	}
}

// Convert re-expresses a coordinate vector from one space in another. Both
// spaces may be ids or descriptors. Same-space conversions return the input
// slice unchanged.
func (e *Engine) Convert(coords []float64, from, to any) ([]float64, error) {
	fromSpace, err := e.reg.Resolve(from)
	if err != nil {
		return nil, err
	}
	toSpace, err := e.reg.Resolve(to)
	if err != nil {
		return nil, err
	}
	return e.conv.Convert(coords, fromSpace, toSpace)
}

// To converts a Color into another space. The result is a new value; the
// original is untouched.
func (e *Engine) To(c Color, space any) (Color, error) {
	toSpace, err := e.reg.Resolve(space)
	if err != nil {
		return Color{}, err
	}
	if c.Space == toSpace.ID {
		return c, nil
	}
	fromSpace, err := e.reg.Get(c.Space)
	if err != nil {
		return Color{}, err
	}
	coords, err := e.conv.Convert(c.Coords, fromSpace, toSpace)
	if err != nil {
		return Color{}, err
	}
	return NewColor(toSpace.ID, coords, c.Alpha), nil
}

// Coord reads a single coordinate of a color through a
// "<spaceId>.<coordinateName>" reference, converting as needed:
// eng.Coord(c, "lch.chroma") works for a color natively in any space.
func (e *Engine) Coord(c Color, ref string) (float64, error) {
	cr, err := e.reg.ResolveCoordRef(ref)
	if err != nil {
		return 0, err
	}
	fromSpace, err := e.reg.Get(c.Space)
	if err != nil {
		return 0, err
	}
	coords, err := e.conv.Convert(c.Coords, fromSpace, cr.Space)
	if err != nil {
		return 0, err
	}
	return coords[cr.Index], nil
}

// SetCoord assigns a coordinate through a "<spaceId>.<coordinateName>"
// reference. The color is converted into the reference space, the
// coordinate replaced, and the result re-converted and stored back in the
// color's native space.
func (e *Engine) SetCoord(c *Color, ref string, value float64) error {
	cr, err := e.reg.ResolveCoordRef(ref)
	if err != nil {
		return err
	}
	native, err := e.reg.Get(c.Space)
	if err != nil {
		return err
	}
	coords, err := e.conv.Convert(c.Coords, native, cr.Space)
	if err != nil {
		return err
	}
	coords = append([]float64(nil), coords...)
	coords[cr.Index] = value
	back, err := e.conv.Convert(coords, cr.Space, native)
	if err != nil {
		return err
	}
	c.Coords = append(c.Coords[:0:0], back...)
	return nil
}

// InGamut reports whether the color is in gamut. With a nil space the
// color's own space is checked; otherwise the color is converted first.
func (e *Engine) InGamut(c Color, space any) (bool, error) {
	target, err := e.targetSpace(c, space)
	if err != nil {
		return false, err
	}
	native, err := e.reg.Get(c.Space)
	if err != nil {
		return false, err
	}
	coords, err := e.conv.Convert(c.Coords, native, target)
	if err != nil {
		return false, err
	}
	return e.mapper.InGamut(target, coords), nil
}

// GamutOptions controls ToGamut.
type GamutOptions struct {
	// Method is "clip" or a "<spaceId>.<coordinateName>" reduction
	// reference; default "lch.chroma".
	Method string
	// Space is the gamut to map into; default the color's own space.
	Space any
	// InPlace overwrites the passed color in addition to returning the
	// result.
	InPlace bool
}

// ToGamut maps the color into the target gamut. Colors already in gamut
// come back unchanged.
func (e *Engine) ToGamut(c *Color, opts GamutOptions) (Color, error) {
	target, err := e.targetSpace(*c, opts.Space)
	if err != nil {
		return Color{}, err
	}
	native, err := e.reg.Get(c.Space)
	if err != nil {
		return Color{}, err
	}
	coords, err := e.mapper.ToGamut(c.Coords, native, runtime.MapOptions{
		Method: opts.Method,
		Target: target,
	})
	if err != nil {
		return Color{}, err
	}
	out := NewColor(c.Space, coords, c.Alpha)
	if opts.InPlace {
		c.Coords = append(c.Coords[:0:0], coords...)
	}
	return out, nil
}

func (e *Engine) targetSpace(c Color, space any) (*domain.Space, error) {
	if space == nil || space == "" {
		return e.reg.Get(c.Space)
	}
	return e.reg.Resolve(space)
}

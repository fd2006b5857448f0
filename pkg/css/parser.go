package css

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"strings"
	"time"

	"github.com/aretw0/gamut/pkg/domain"
	"github.com/aretw0/gamut/pkg/ports"
	"github.com/aretw0/gamut/pkg/registry"
)

// Parsed is the result of parsing a color string: a registered space id, raw
// coordinates in that space, and an alpha value.
type Parsed struct {
	SpaceID string
	Coords  []float64
	Alpha   float64
}

// Hook is a parse extension point. Hooks run before any other parsing; the
// first hook that claims the input supplies the result directly.
type Hook func(input string) (*Parsed, bool)

// Parser turns CSS color strings into Parsed records. Dispatch order:
// extension hooks, per-space parse overrides (registration order), name
// resolver fallback, rgb/rgba, generic color().
type Parser struct {
	reg      *registry.Registry
	resolver ports.NameResolver
	hooks    []Hook
	events   domain.LifecycleHooks
	logger   *slog.Logger
}

// ParserOption configures a Parser.
type ParserOption func(*Parser)

// WithResolver installs a name resolver consulted for input that is not a
// color function (keywords, palette names).
func WithResolver(r ports.NameResolver) ParserOption {
	return func(p *Parser) { p.resolver = r }
}

// WithHook appends a parse extension hook.
func WithHook(h Hook) ParserOption {
	return func(p *Parser) { p.hooks = append(p.hooks, h) }
}

// WithLifecycleHooks registers observability hooks.
func WithLifecycleHooks(h domain.LifecycleHooks) ParserOption {
	return func(p *Parser) { p.events = h }
}

// WithLogger sets the parser's logger.
func WithLogger(l *slog.Logger) ParserOption {
	return func(p *Parser) {
		if l != nil {
			p.logger = l
		}
	}
}

// NewParser creates a parser bound to the given registry.
func NewParser(reg *registry.Registry, opts ...ParserOption) *Parser {
	p := &Parser{
		reg:    reg,
		logger: slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Parse parses a CSS color string. The context is only consulted by the name
// resolver fallback; everything else is pure computation.
func (p *Parser) Parse(ctx context.Context, input string) (*Parsed, error) {
	str := strings.TrimSpace(input)

	// 1. Extension hooks win outright.
	for _, hook := range p.hooks {
		if res, ok := hook(str); ok {
			return p.done(input, res), nil
		}
	}

	call := ParseFunction(str)

	// 2. Space-specific parse overrides, in registration order.
	if call != nil {
		for _, space := range p.reg.List() {
			if space.Parse == nil {
				continue
			}
			if coords, alpha, ok := space.Parse(call); ok {
				return p.done(input, &Parsed{SpaceID: space.ID, Coords: coords, Alpha: alpha}), nil
			}
		}
	}

	// 3. Not an RGB-family function (or not a function at all): offer the
	// string to the name resolver, which may hand back a normalized rgb
	// function.
	if p.resolver != nil && (call == nil || !isRGBFamily(call.Name)) {
		resolved, err := p.resolver.Lookup(ctx, strings.ToLower(str))
		switch {
		case err == nil:
			if c := ParseFunction(resolved); c != nil {
				call = c
			}
		case errors.Is(err, domain.ErrNameNotFound):
			// fall through to the generic parsers
		default:
			return nil, fmt.Errorf("resolving color name %q: %w", str, err)
		}
	}

	if call != nil {
		// 4. rgb()/rgba(): 0-255 channels unless given as percentages.
		if isRGBFamily(call.Name) && len(call.Args) >= 3 {
			return p.done(input, parseRGB(call)), nil
		}

		// 5. Generic color(): first argument names the space.
		if call.Name == "color" && len(call.Args) > 0 {
			res, err := p.parseColorFunction(call)
			if err != nil {
				return nil, err
			}
			return p.done(input, res), nil
		}
	}

	return nil, fmt.Errorf("%w: %q", domain.ErrCannotParse, input)
}

func isRGBFamily(name string) bool {
	return name == "rgb" || name == "rgba"
}

func parseRGB(call *domain.FuncCall) *Parsed {
	coords := make([]float64, 3)
	for i := 0; i < 3; i++ {
		arg := call.Args[i]
		if arg.Kind == domain.ArgPercentage {
			coords[i] = arg.Value
		} else {
			coords[i] = arg.Value / 255
		}
	}
	alpha := 1.0
	if len(call.Args) > 3 {
		alpha = call.Args[3].Value
	}
	return &Parsed{SpaceID: "srgb", Coords: coords, Alpha: alpha}
}

// parseColorFunction handles color(<ident> c1 c2 ... [/ alpha]). Missing
// trailing coordinates zero-fill and excess coordinates are dropped, as the
// CSS spec mandates.
func (p *Parser) parseColorFunction(call *domain.FuncCall) (*Parsed, error) {
	ident := call.Args[0].Raw
	space := p.lookupCSSID(ident)
	if space == nil {
		return nil, fmt.Errorf("%w: %q (missing a plugin?)", domain.ErrUnknownSpace, ident)
	}

	args := call.Args[1:]
	alpha := 1.0
	if call.HasAlphaSlash() && len(args) > 0 {
		alpha = args[len(args)-1].Value
		args = args[:len(args)-1]
	}

	coords := make([]float64, len(space.Coords))
	for i := range coords {
		if i < len(args) {
			coords[i] = args[i].Value
		}
	}
	return &Parsed{SpaceID: space.ID, Coords: coords, Alpha: alpha}, nil
}

// lookupCSSID matches a color() identifier against each registered space's
// CSSID, falling back to the space id itself.
func (p *Parser) lookupCSSID(ident string) *domain.Space {
	for _, space := range p.reg.List() {
		if space.CSSID == ident || space.ID == ident {
			return space
		}
	}
	return nil
}

func (p *Parser) done(input string, res *Parsed) *Parsed {
	if math.IsNaN(res.Alpha) {
		// Preserved as given; clamping happens at Color construction.
		p.logger.Debug("parsed color has NaN alpha", "input", input)
	}
	if p.events.OnParse != nil {
		p.events.OnParse(&domain.ParseEvent{
			Timestamp: time.Now(),
			Input:     input,
			SpaceID:   res.SpaceID,
		})
	}
	return res
}

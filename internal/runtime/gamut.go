package runtime

import (
	"fmt"
	"log/slog"
	"math"
	"time"

	"github.com/aretw0/gamut/pkg/domain"
)

// Epsilon absorbs floating point round-off at gamut boundaries. It doubles
// as the convergence bound for the bisection reduction, so every mapping
// terminates after at most log2(range/Epsilon) iterations.
const Epsilon = 5e-6

// DefaultMapMethod is the reduction used when the caller does not pick one:
// walk LCH chroma toward zero until the result fits.
const DefaultMapMethod = "lch.chroma"

// ClipMethod clamps each coordinate independently to its reference bounds.
const ClipMethod = "clip"

// Mapper decides in-gamut status and maps out-of-gamut coordinates into
// gamut.
type Mapper struct {
	conv   *Converter
	hooks  domain.LifecycleHooks
	logger *slog.Logger
}

// MapperOption configures a Mapper.
type MapperOption func(*Mapper)

// WithMapperHooks registers observability hooks on the mapper.
func WithMapperHooks(h domain.LifecycleHooks) MapperOption {
	return func(m *Mapper) { m.hooks = h }
}

// WithMapperLogger sets the mapper's logger.
func WithMapperLogger(l *slog.Logger) MapperOption {
	return func(m *Mapper) {
		if l != nil {
			m.logger = l
		}
	}
}

// NewMapper creates a gamut mapper on top of a converter.
func NewMapper(conv *Converter, opts ...MapperOption) *Mapper {
	m := &Mapper{conv: conv, logger: slog.New(slog.DiscardHandler)}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// InGamut reports whether coords lie within the space's gamut. A custom
// predicate wins over the generic bounds test; a space without bounded
// coordinates is trivially in gamut. NaN coordinates mark undefined channels
// (the hue of a gray) and never fail the test.
func (m *Mapper) InGamut(space *domain.Space, coords []float64) bool {
	if space.GamutCheck != nil {
		return space.GamutCheck(coords)
	}
	if !space.Bounded() {
		return true
	}
	for i, c := range space.Coords {
		if c.Range == nil || i >= len(coords) {
			continue
		}
		v := coords[i]
		if math.IsNaN(v) {
			continue
		}
		if !math.IsInf(c.Range.Min, -1) && v < c.Range.Min-Epsilon {
			return false
		}
		if !math.IsInf(c.Range.Max, 1) && v > c.Range.Max+Epsilon {
			return false
		}
	}
	return true
}

// Clip clamps each coordinate independently to its reference bounds.
// Unconstrained bounds and NaN channels pass through unchanged.
func Clip(space *domain.Space, coords []float64) []float64 {
	out := append([]float64(nil), coords...)
	for i, c := range space.Coords {
		if c.Range == nil || i >= len(out) || math.IsNaN(out[i]) {
			continue
		}
		if !math.IsInf(c.Range.Min, -1) && out[i] < c.Range.Min {
			out[i] = c.Range.Min
		}
		if !math.IsInf(c.Range.Max, 1) && out[i] > c.Range.Max {
			out[i] = c.Range.Max
		}
	}
	return out
}

// MapOptions controls ToGamut.
type MapOptions struct {
	// Method is either ClipMethod or a "<spaceId>.<coordinateName>"
	// reduction reference. Defaults to DefaultMapMethod.
	Method string
	// Target is the space whose gamut the result must satisfy. Defaults to
	// the space the coordinates are expressed in.
	Target *domain.Space
}

// ToGamut maps coords (expressed in space) into the target gamut and returns
// the result re-expressed in space. Coordinates already in gamut are
// returned unchanged, same slice.
//
// Reduction methods bisect the named coordinate over [min, current]; the
// policy assumes in-gamut-ness is monotonic in that coordinate. A mandatory
// clip pass afterwards removes residual epsilon-sized violations.
func (m *Mapper) ToGamut(coords []float64, space *domain.Space, opts MapOptions) ([]float64, error) {
	target := opts.Target
	if target == nil {
		target = space
	}
	method := opts.Method
	if method == "" {
		method = DefaultMapMethod
	}

	targetCoords, err := m.conv.Convert(coords, space, target)
	if err != nil {
		return nil, err
	}
	if m.InGamut(target, targetCoords) {
		m.notify(target, method, false)
		return coords, nil
	}

	if method != ClipMethod {
		targetCoords, err = m.reduce(coords, space, target, method)
		if err != nil {
			return nil, err
		}
	}

	// Forced cleanup after any reduction, and the whole job for "clip".
	clipped := Clip(target, targetCoords)
	out, err := m.conv.Convert(clipped, target, space)
	if err != nil {
		return nil, err
	}
	m.notify(target, method, true)
	return out, nil
}

// reduce bisects the method's coordinate toward its lower reference bound
// until the conversion into target is boundary-in-gamut.
func (m *Mapper) reduce(coords []float64, space, target *domain.Space, method string) ([]float64, error) {
	ref, err := m.conv.reg.ResolveCoordRef(method)
	if err != nil {
		return nil, err
	}
	coord := ref.Space.Coords[ref.Index]
	if coord.Range == nil || math.IsInf(coord.Range.Min, -1) {
		return nil, fmt.Errorf("%w: coordinate %q has no lower reference bound", domain.ErrInvalidSpaceArg, method)
	}

	mapCoords, err := m.conv.Convert(coords, space, ref.Space)
	if err != nil {
		return nil, err
	}
	mapCoords = append([]float64(nil), mapCoords...)

	low := coord.Range.Min
	high := mapCoords[ref.Index]
	mapCoords[ref.Index] = high / 2

	var candidate []float64
	for high-low > Epsilon {
		candidate, err = m.conv.Convert(mapCoords, ref.Space, target)
		if err != nil {
			return nil, err
		}
		if m.InGamut(target, candidate) {
			low = mapCoords[ref.Index]
		} else {
			high = mapCoords[ref.Index]
		}
		mapCoords[ref.Index] = (low + high) / 2
	}
	return m.conv.Convert(mapCoords, ref.Space, target)
}

func (m *Mapper) notify(target *domain.Space, method string, mapped bool) {
	if m.hooks.OnGamutMapped == nil {
		return
	}
	m.hooks.OnGamutMapped(&domain.GamutEvent{
		Timestamp: time.Now(),
		SpaceID:   target.ID,
		Method:    method,
		Mapped:    mapped,
	})
}

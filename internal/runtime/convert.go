// Package runtime implements the conversion engine and the gamut mapper.
// Both operate on raw coordinate vectors; the user-facing Color wrapper lives
// in the root package.
package runtime

import (
	"log/slog"
	"time"

	"github.com/aretw0/gamut/pkg/domain"
	"github.com/aretw0/gamut/pkg/registry"
)

// Converter converts coordinate vectors between registered spaces through
// the XYZ connection space, applying chromatic adaptation when the white
// points differ.
type Converter struct {
	reg    *registry.Registry
	hooks  domain.LifecycleHooks
	logger *slog.Logger
}

// ConverterOption configures a Converter.
type ConverterOption func(*Converter)

// WithHooks registers observability hooks.
func WithHooks(h domain.LifecycleHooks) ConverterOption {
	return func(c *Converter) { c.hooks = h }
}

// WithLogger sets the converter's logger.
func WithLogger(l *slog.Logger) ConverterOption {
	return func(c *Converter) {
		if l != nil {
			c.logger = l
		}
	}
}

// NewConverter creates a converter bound to the given registry.
func NewConverter(reg *registry.Registry, opts ...ConverterOption) *Converter {
	c := &Converter{
		reg:    reg,
		logger: slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Registry returns the registry the converter reads from.
func (c *Converter) Registry() *registry.Registry {
	return c.reg
}

// Convert re-expresses coords from one space in another.
//
// Same-space conversions return the input slice unchanged; the caller must
// not mutate shared inputs. If the target declares a direct specialized
// conversion keyed by the source id, it is used verbatim and is itself
// responsible for white point handling. Everything else round-trips through
// XYZ with chromatic adaptation as needed.
func (c *Converter) Convert(coords []float64, from, to *domain.Space) ([]float64, error) {
	if from == to || from.ID == to.ID {
		return coords, nil
	}

	if fn, ok := to.ConvertersFrom[from.ID]; ok {
		c.notify(from, to, true, false)
		return fn(coords), nil
	}

	xyz := from.ToXYZ(coords)
	adapted := false
	if from.White != to.White {
		var err error
		xyz, err = Adapt(from.White, to.White, xyz)
		if err != nil {
			return nil, err
		}
		adapted = true
	}
	out := to.FromXYZ(xyz)
	c.notify(from, to, false, adapted)
	return out, nil
}

func (c *Converter) notify(from, to *domain.Space, direct, adapted bool) {
	if c.hooks.OnConvert == nil {
		return
	}
	c.hooks.OnConvert(&domain.ConvertEvent{
		Timestamp: time.Now(),
		From:      from.ID,
		To:        to.ID,
		Direct:    direct,
		Adapted:   adapted,
	})
}

// Package registry holds the process-wide set of color space definitions.
//
// Registration resolves inheritance and connection-space wiring eagerly, so
// that by the time a space is visible to the conversion engine it is a flat,
// immutable descriptor with working ToXYZ/FromXYZ functions. Construction
// order matters: a space connecting via another must be defined after it.
package registry

import (
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/aretw0/gamut/pkg/domain"
)

// Registry manages the available color spaces. It is read-mostly shared
// state: registration must complete before conversions or parsing run
// against the new space.
type Registry struct {
	mu     sync.RWMutex
	spaces map[string]*domain.Space
	order  []string
	hooks  domain.LifecycleHooks
	logger *slog.Logger
}

// Option configures a Registry.
type Option func(*Registry)

// WithLogger sets the logger used for registration diagnostics.
func WithLogger(l *slog.Logger) Option {
	return func(r *Registry) {
		if l != nil {
			r.logger = l
		}
	}
}

// WithHooks registers observability hooks.
func WithHooks(h domain.LifecycleHooks) Option {
	return func(r *Registry) { r.hooks = h }
}

// New creates a new empty registry.
func New(opts ...Option) *Registry {
	r := &Registry{
		spaces: make(map[string]*domain.Space),
		logger: slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Define validates, resolves and registers a space definition. The stored
// descriptor is a flattened copy of def; the caller's value is not retained.
// Defining an id that already exists replaces it, which is intended for test
// isolation, not production use.
func (r *Registry) Define(def *domain.Space) (*domain.Space, error) {
	if def == nil || def.ID == "" {
		return nil, fmt.Errorf("%w: definition has no id", domain.ErrInvalidSpaceArg)
	}

	s := *def // shallow copy; the caller's value stays untouched
	s.Coords = append([]domain.Coordinate(nil), def.Coords...)

	r.mu.Lock()
	defer r.mu.Unlock()

	if s.Inherits != "" {
		parent, ok := r.spaces[s.Inherits]
		if !ok {
			return nil, fmt.Errorf("%w: %q (parent of %q)", domain.ErrUnknownSpace, s.Inherits, s.ID)
		}
		inherit(&s, parent)
	}

	if s.White == nil {
		s.White = domain.D50
	}
	if len(s.Coords) == 0 {
		return nil, fmt.Errorf("%w: space %q declares no coordinates", domain.ErrInvalidSpaceArg, s.ID)
	}

	if err := r.wireConnection(&s); err != nil {
		return nil, err
	}

	_, replaced := r.spaces[s.ID]
	r.spaces[s.ID] = &s
	if !replaced {
		r.order = append(r.order, s.ID)
	} else {
		r.logger.Debug("color space replaced", "id", s.ID)
	}
	r.logger.Debug("color space defined", "id", s.ID, "white", s.White.Name, "via", s.Via)

	if r.hooks.OnSpaceDefined != nil {
		r.hooks.OnSpaceDefined(&domain.SpaceEvent{
			Timestamp: time.Now(),
			SpaceID:   s.ID,
			Replaced:  replaced,
			Via:       s.Via,
		})
	}
	return &s, nil
}

// inherit copies every property from parent that s leaves unset.
// The id and the parse override are never inherited.
func inherit(s, parent *domain.Space) {
	if s.Name == "" {
		s.Name = parent.Name
	}
	if s.CSSID == "" {
		s.CSSID = parent.CSSID
	}
	if s.Format == "" {
		s.Format = parent.Format
	}
	if len(s.Coords) == 0 {
		s.Coords = append([]domain.Coordinate(nil), parent.Coords...)
	}
	if s.White == nil {
		s.White = parent.White
	}
	// Conversion functions travel as a unit: a child that declares none of
	// them takes the parent's connection wholesale.
	if s.ToXYZ == nil && s.FromXYZ == nil && s.Via == "" {
		s.ToXYZ = parent.ToXYZ
		s.FromXYZ = parent.FromXYZ
		s.Via = parent.Via
		s.ToBase = parent.ToBase
		s.FromBase = parent.FromBase
	}
	if s.GamutCheck == nil {
		s.GamutCheck = parent.GamutCheck
	}
	if s.ConvertersFrom == nil {
		s.ConvertersFrom = parent.ConvertersFrom
	}
}

// wireConnection guarantees the space ends up with a direct ToXYZ/FromXYZ
// pair, composing through the declared connection space when needed.
// The caller holds the write lock.
func (r *Registry) wireConnection(s *domain.Space) error {
	if s.ToXYZ != nil && s.FromXYZ != nil {
		return nil
	}
	if s.Via == "" || s.ToBase == nil || s.FromBase == nil {
		return fmt.Errorf("%w: space %q declares neither XYZ functions nor a connection space", domain.ErrMissingConnection, s.ID)
	}
	via, ok := r.spaces[s.Via]
	if !ok {
		return fmt.Errorf("%w: space %q connects via unregistered space %q", domain.ErrMissingConnection, s.ID, s.Via)
	}
	if via.ToXYZ == nil || via.FromXYZ == nil {
		return fmt.Errorf("%w: connection space %q has no direct XYZ functions", domain.ErrMissingConnection, s.Via)
	}
	toBase, fromBase := s.ToBase, s.FromBase
	viaTo, viaFrom := via.ToXYZ, via.FromXYZ
	s.ToXYZ = func(coords []float64) []float64 {
		return viaTo(toBase(coords))
	}
	s.FromXYZ = func(xyz []float64) []float64 {
		return fromBase(viaFrom(xyz))
	}
	return nil
}

// Get looks up a space by id.
func (r *Registry) Get(id string) (*domain.Space, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	s, ok := r.spaces[id]
	if !ok {
		return nil, fmt.Errorf("%w: %q", domain.ErrUnknownSpace, id)
	}
	return s, nil
}

// Resolve accepts a space id, a *domain.Space, or anything exposing a
// SpaceID() string method, and returns the registered descriptor.
func (r *Registry) Resolve(arg any) (*domain.Space, error) {
	switch v := arg.(type) {
	case string:
		return r.Get(v)
	case *domain.Space:
		if v == nil {
			return nil, fmt.Errorf("%w: nil space", domain.ErrInvalidSpaceArg)
		}
		return r.Get(v.ID)
	case interface{ SpaceID() string }:
		return r.Get(v.SpaceID())
	default:
		return nil, fmt.Errorf("%w: %T", domain.ErrInvalidSpaceArg, arg)
	}
}

// ResolveCoordRef resolves a "<spaceId>.<coordinateName>" reference, e.g.
// "lch.chroma".
func (r *Registry) ResolveCoordRef(ref string) (domain.CoordRef, error) {
	spaceID, coordName, ok := strings.Cut(ref, ".")
	if !ok || spaceID == "" || coordName == "" {
		return domain.CoordRef{}, fmt.Errorf("%w: coordinate reference %q", domain.ErrInvalidSpaceArg, ref)
	}
	s, err := r.Get(spaceID)
	if err != nil {
		return domain.CoordRef{}, err
	}
	idx, ok := s.CoordIndex(coordName)
	if !ok {
		return domain.CoordRef{}, fmt.Errorf("%w: space %q has no coordinate %q", domain.ErrInvalidSpaceArg, spaceID, coordName)
	}
	return domain.CoordRef{Space: s, Index: idx, Name: coordName}, nil
}

// List returns the registered spaces in definition order.
func (r *Registry) List() []*domain.Space {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*domain.Space, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.spaces[id])
	}
	return out
}

// Len returns the number of registered spaces.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.spaces)
}

// Package memory provides an in-memory ports.PaletteStore, optionally
// pre-seeded with the common CSS color keywords.
package memory

import (
	"context"
	"strings"
	"sync"

	"github.com/aretw0/gamut/pkg/domain"
)

// Store implements ports.PaletteStore in memory.
// Safe for concurrent use. Names are case-insensitive.
type Store struct {
	mu   sync.RWMutex
	data map[string]string
}

// New creates an empty store.
func New() *Store {
	return &Store{data: make(map[string]string)}
}

// NewWithKeywords creates a store pre-seeded with the CSS color keywords.
func NewWithKeywords() *Store {
	s := New()
	for name, value := range cssKeywords {
		s.data[name] = value
	}
	return s
}

// Lookup resolves a name to its stored CSS color string.
func (s *Store) Lookup(ctx context.Context, name string) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.data[strings.ToLower(name)]
	if !ok {
		return "", domain.ErrNameNotFound
	}
	return v, nil
}

// Save binds a name to a CSS color string.
func (s *Store) Save(ctx context.Context, name, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[strings.ToLower(name)] = value
	return nil
}

// Delete removes a binding.
func (s *Store) Delete(ctx context.Context, name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.data, strings.ToLower(name))
	return nil
}

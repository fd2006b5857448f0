// Package redis provides a Redis-backed ports.PaletteStore so that several
// processes can share one named-color palette.
package redis

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/aretw0/gamut/pkg/domain"
	backend "github.com/redis/go-redis/v9"
)

const defaultPrefix = "gamut:palette:"

// Store implements ports.PaletteStore on top of Redis.
type Store struct {
	client *backend.Client
	prefix string
	ttl    time.Duration
}

// StoreOption configures a Store.
type StoreOption func(*Store)

// WithPrefix overrides the key prefix (default "gamut:palette:").
func WithPrefix(prefix string) StoreOption {
	return func(s *Store) { s.prefix = prefix }
}

// WithTTL sets an expiry on saved entries. Zero means no expiry.
func WithTTL(ttl time.Duration) StoreOption {
	return func(s *Store) { s.ttl = ttl }
}

// NewFromClient creates a store using an existing Redis client.
func NewFromClient(client *backend.Client, opts ...StoreOption) *Store {
	s := &Store{client: client, prefix: defaultPrefix}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Store) key(name string) string {
	return s.prefix + strings.ToLower(name)
}

// Lookup resolves a name to its stored CSS color string.
func (s *Store) Lookup(ctx context.Context, name string) (string, error) {
	v, err := s.client.Get(ctx, s.key(name)).Result()
	if errors.Is(err, backend.Nil) {
		return "", domain.ErrNameNotFound
	}
	if err != nil {
		return "", fmt.Errorf("redis error looking up %q: %w", name, err)
	}
	return v, nil
}

// Save binds a name to a CSS color string.
func (s *Store) Save(ctx context.Context, name, value string) error {
	if err := s.client.Set(ctx, s.key(name), value, s.ttl).Err(); err != nil {
		return fmt.Errorf("redis error saving %q: %w", name, err)
	}
	return nil
}

// Delete removes a binding.
func (s *Store) Delete(ctx context.Context, name string) error {
	if err := s.client.Del(ctx, s.key(name)).Err(); err != nil {
		return fmt.Errorf("redis error deleting %q: %w", name, err)
	}
	return nil
}

package ports

import "context"

// NameResolver resolves a color name ("rebeccapurple", a palette entry) into
// a normalized CSS color function string, typically "rgb(r g b)". It is the
// portable replacement for host-environment keyword resolution.
//
// Lookup returns domain.ErrNameNotFound when the name is unknown.
type NameResolver interface {
	Lookup(ctx context.Context, name string) (string, error)
}

// PaletteStore is a writable NameResolver: named colors can be added and
// removed at runtime.
type PaletteStore interface {
	NameResolver

	// Save binds a name to a CSS color string, replacing any previous
	// binding.
	Save(ctx context.Context, name, value string) error

	// Delete removes a binding. Deleting an unknown name is not an error.
	Delete(ctx context.Context, name string) error
}

package registry

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/auxil/attrmap"
)

var (
	// ErrDuplicate indicates the name is already registered.
	ErrDuplicate = errors.New("registry: name already registered")

	// ErrUnknown indicates no factory is registered under the name.
	ErrUnknown = errors.New("registry: unknown name")
)

// Registry maps identifier names to factories producing T.
// The backing store is a Sorted attrmap, so Names is deterministic.
type Registry[T any] struct {
	factories *attrmap.Map[func() T]
}

// New returns an empty Registry.
func New[T any]() *Registry[T] {
	return &Registry[T]{
		factories: attrmap.New[func() T](attrmap.WithOrdering(attrmap.Sorted)),
	}
}

// Register binds name to factory. Fails with ErrDuplicate when name is
// taken, or with attrmap's key errors when name is not a usable key.
func (r *Registry[T]) Register(name string, factory func() T) error {
	if r.factories.Has(name) {
		return fmt.Errorf("%w: %q", ErrDuplicate, name)
	}

	return r.factories.Set(name, factory)
}

// New instantiates the type registered under name, or fails with ErrUnknown.
func (r *Registry[T]) New(name string) (T, error) {
	factory, ok := r.factories.Lookup(name)
	if !ok {
		var zero T

		return zero, fmt.Errorf("%w: %q", ErrUnknown, name)
	}

	return factory(), nil
}

// Lookup returns the factory registered under name, comma-ok style.
func (r *Registry[T]) Lookup(name string) (func() T, bool) {
	return r.factories.Lookup(name)
}

// Has reports whether name is registered.
func (r *Registry[T]) Has(name string) bool { return r.factories.Has(name) }

// Names returns all registered names in ascending order.
func (r *Registry[T]) Names() []string { return r.factories.Keys() }

// Len returns the number of registered factories.
func (r *Registry[T]) Len() int { return r.factories.Len() }

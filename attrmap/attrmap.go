package attrmap

import (
	"fmt"
	"iter"
	"maps"
	"slices"
	"unicode"

	"github.com/katalvlaran/auxil/stringkit"
)

// Map is a mapping from identifier-string keys to values of type V.
//
// Every key reachable through Get is reachable through Keys/Pairs/All and
// vice versa; there is exactly one backing store, so the access paths can
// never disagree. Iteration order follows the Ordering fixed at
// construction.
//
// The zero value is not ready for use; construct with New or a From*
// constructor. A Map is not safe for concurrent mutation.
type Map[V any] struct {
	items map[string]V
	idx   keyIndex
	ord   Ordering
}

// New returns an empty Map configured by opts.
//
// Example:
//
//	m := attrmap.New[int](attrmap.WithOrdering(attrmap.Sorted))
func New[V any](opts ...Option) *Map[V] {
	cfg := gatherOptions(opts)

	return &Map[V]{
		items: make(map[string]V, cfg.capacity),
		idx:   newKeyIndex(cfg.ordering, cfg.capacity),
		ord:   cfg.ordering,
	}
}

// FromMap builds a Map from src. Keys are validated like Set; on the first
// invalid key the partial Map is discarded and the error returned.
// For the InsertionOrder policy, src's keys are recorded in sorted order
// since Go map iteration order is not meaningful.
func FromMap[V any](src map[string]V, opts ...Option) (*Map[V], error) {
	m := New[V](append(opts, WithCapacity(len(src)))...)
	for _, key := range slices.Sorted(maps.Keys(src)) {
		if err := m.Set(key, src[key]); err != nil {
			return nil, err
		}
	}

	return m, nil
}

// FromPairs builds a Map from pairs, applied in order via Set, so the
// InsertionOrder policy records the slice order and a repeated key
// reassigns rather than duplicates.
func FromPairs[V any](pairs []Pair[V], opts ...Option) (*Map[V], error) {
	m := New[V](append(opts, WithCapacity(len(pairs)))...)
	for _, p := range pairs {
		if err := m.Set(p.Key, p.Value); err != nil {
			return nil, err
		}
	}

	return m, nil
}

// FromKeys builds a Map binding every key in keys to the same fallback
// value, in slice order.
func FromKeys[V any](keys []string, fallback V, opts ...Option) (*Map[V], error) {
	m := New[V](append(opts, WithCapacity(len(keys)))...)
	for _, key := range keys {
		if err := m.Set(key, fallback); err != nil {
			return nil, err
		}
	}

	return m, nil
}

// ValidateKey reports whether key may be used as a Map key.
// Returns ErrInvalidKey when key is not a valid identifier
// (a letter or underscore followed by letters, digits or underscores)
// and ErrReservedKey when key is empty or a dunder name ("__x__").
func ValidateKey(key string) error {
	if key == "" {
		return fmt.Errorf("%w: empty key", ErrReservedKey)
	}
	for i, r := range key {
		if r == '_' || unicode.IsLetter(r) || (i > 0 && unicode.IsDigit(r)) {
			continue
		}

		return fmt.Errorf("%w: %q", ErrInvalidKey, key)
	}
	if stringkit.IsDunder(key) {
		return fmt.Errorf("%w: %q", ErrReservedKey, key)
	}

	return nil
}

// Get returns the value bound to key, or ErrKeyNotFound.
func (m *Map[V]) Get(key string) (V, error) {
	v, ok := m.items[key]
	if !ok {
		return v, fmt.Errorf("%w: %q", ErrKeyNotFound, key)
	}

	return v, nil
}

// Lookup is the comma-ok form of Get.
func (m *Map[V]) Lookup(key string) (V, bool) {
	v, ok := m.items[key]

	return v, ok
}

// GetOr returns the value bound to key, or fallback when key is absent.
func (m *Map[V]) GetOr(key string, fallback V) V {
	if v, ok := m.items[key]; ok {
		return v
	}

	return fallback
}

// Set binds key to value, creating the key if new and overwriting if
// present. Reassignment never moves a key; only first insertion assigns a
// position. Fails with ErrInvalidKey or ErrReservedKey per ValidateKey.
func (m *Map[V]) Set(key string, value V) error {
	if err := ValidateKey(key); err != nil {
		return err
	}
	if _, ok := m.items[key]; !ok {
		m.idx.add(key)
	}
	m.items[key] = value

	return nil
}

// Delete removes key, or fails with ErrKeyNotFound.
func (m *Map[V]) Delete(key string) error {
	if _, ok := m.items[key]; !ok {
		return fmt.Errorf("%w: %q", ErrKeyNotFound, key)
	}
	delete(m.items, key)
	m.idx.remove(key)

	return nil
}

// Has reports whether key is present. No side effects.
func (m *Map[V]) Has(key string) bool {
	_, ok := m.items[key]

	return ok
}

// Len returns the number of entries.
func (m *Map[V]) Len() int { return len(m.items) }

// Ordering returns the iteration-order policy fixed at construction.
func (m *Map[V]) Ordering() Ordering { return m.ord }

// Keys returns a fresh slice of all keys in policy order.
func (m *Map[V]) Keys() []string {
	return slices.Clone(m.idx.keys())
}

// Values returns a fresh slice of all values in policy key order.
func (m *Map[V]) Values() []V {
	out := make([]V, 0, len(m.items))
	for _, key := range m.idx.keys() {
		out = append(out, m.items[key])
	}

	return out
}

// Pairs returns a snapshot of all entries in policy key order.
// Feeding the snapshot back through Set (see FromPairs) reproduces an
// equal mapping.
func (m *Map[V]) Pairs() []Pair[V] {
	out := make([]Pair[V], 0, len(m.items))
	for _, key := range m.idx.keys() {
		out = append(out, Pair[V]{Key: key, Value: m.items[key]})
	}

	return out
}

// All iterates entries in policy order. The iteration walks a snapshot of
// the key order taken when the loop starts; keys deleted mid-loop are
// skipped, keys added mid-loop are not visited.
func (m *Map[V]) All() iter.Seq2[string, V] {
	return func(yield func(string, V) bool) {
		for _, key := range slices.Clone(m.idx.keys()) {
			v, ok := m.items[key]
			if !ok {
				continue
			}
			if !yield(key, v) {
				return
			}
		}
	}
}

// Update copies every entry of other into m via Set, in other's policy
// order. Values are shared, not deep-copied.
func (m *Map[V]) Update(other *Map[V]) error {
	for _, p := range other.Pairs() {
		if err := m.Set(p.Key, p.Value); err != nil {
			return err
		}
	}

	return nil
}

// Clone returns an independent Map with the same policy and entries.
func (m *Map[V]) Clone() *Map[V] {
	out := New[V](WithOrdering(m.ord), WithCapacity(len(m.items)))
	for _, key := range m.idx.keys() {
		out.idx.add(key)
		out.items[key] = m.items[key]
	}

	return out
}

// Clear removes every entry, keeping the policy and capacity hint.
func (m *Map[V]) Clear() {
	clear(m.items)
	m.idx = newKeyIndex(m.ord, 0)
}

// String renders the Map like a struct literal, in policy order.
func (m *Map[V]) String() string {
	s := "attrmap{"
	for i, key := range m.idx.keys() {
		if i > 0 {
			s += ", "
		}
		s += fmt.Sprintf("%s: %v", key, m.items[key])
	}

	return s + "}"
}

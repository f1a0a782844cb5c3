// Package attrmap: internal key-order strategies backing the Ordering policies.
package attrmap

import "sort"

// keyIndex tracks key order for a Map. The Map deduplicates before calling:
// add sees only new keys, remove sees only present ones.
type keyIndex interface {
	// add records a new key in policy position.
	add(key string)

	// remove forgets a present key.
	remove(key string)

	// keys returns the backing order slice. Callers must copy before retaining.
	keys() []string
}

// newKeyIndex builds the strategy for the given Ordering.
func newKeyIndex(o Ordering, capacity int) keyIndex {
	switch o {
	case Sorted:
		return &sortedIndex{order: make([]string, 0, capacity)}
	case InsertionOrder:
		return &insertionIndex{order: make([]string, 0, capacity)}
	default:
		return &arbitraryIndex{
			order: make([]string, 0, capacity),
			pos:   make(map[string]int, capacity),
		}
	}
}

// arbitraryIndex appends on add and swap-deletes on remove.
// Order stays stable between mutations, which is all Arbitrary promises.
type arbitraryIndex struct {
	order []string
	pos   map[string]int
}

func (x *arbitraryIndex) add(key string) {
	x.pos[key] = len(x.order)
	x.order = append(x.order, key)
}

func (x *arbitraryIndex) remove(key string) {
	i := x.pos[key]
	last := len(x.order) - 1
	x.order[i] = x.order[last]
	x.pos[x.order[i]] = i
	x.order = x.order[:last]
	delete(x.pos, key)
}

func (x *arbitraryIndex) keys() []string { return x.order }

// sortedIndex keeps the order slice ascending via binary search.
type sortedIndex struct {
	order []string
}

func (x *sortedIndex) add(key string) {
	i := sort.SearchStrings(x.order, key)
	x.order = append(x.order, "")
	copy(x.order[i+1:], x.order[i:])
	x.order[i] = key
}

func (x *sortedIndex) remove(key string) {
	i := sort.SearchStrings(x.order, key)
	x.order = append(x.order[:i], x.order[i+1:]...)
}

func (x *sortedIndex) keys() []string { return x.order }

// insertionIndex appends on add and shifts on remove, so surviving keys
// keep their relative first-insertion order.
type insertionIndex struct {
	order []string
}

func (x *insertionIndex) add(key string) {
	x.order = append(x.order, key)
}

func (x *insertionIndex) remove(key string) {
	for i, k := range x.order {
		if k == key {
			x.order = append(x.order[:i], x.order[i+1:]...)

			return
		}
	}
}

func (x *insertionIndex) keys() []string { return x.order }

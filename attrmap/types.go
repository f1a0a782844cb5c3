// Package attrmap: ordering policies, pairs and functional options.
package attrmap

// Ordering selects the iteration-order policy of a Map.
//
//   - Arbitrary      — order is unspecified. The current implementation
//     iterates in append order until a delete occurs, after which the
//     order of the remaining keys is implementation-defined but stable
//     until the next mutation.
//
//   - Sorted         — keys iterate in ascending lexicographic order
//     regardless of insertion order.
//
//   - InsertionOrder — keys iterate in the order first inserted.
//     Reassigning an existing key does not move it; deleting a key and
//     inserting it again places it at the end.
//
//go:generate go tool stringer -type=Ordering
type Ordering int

const (
	// Arbitrary leaves iteration order unspecified (stable between mutations).
	Arbitrary Ordering = iota

	// Sorted keeps keys in ascending lexicographic order at all times.
	Sorted

	// InsertionOrder keeps keys in first-insertion order.
	InsertionOrder
)

// DefaultOrdering is the policy used when no WithOrdering option is given.
const DefaultOrdering = Arbitrary

// Pair is a single key/value entry of a Map snapshot.
type Pair[V any] struct {
	// Key is the entry's identifier key.
	Key string

	// Value is the value bound to Key at snapshot time.
	Value V
}

// options holds construction-time configuration gathered from Option values.
type options struct {
	ordering Ordering
	capacity int
}

// Option configures a Map before creation.
type Option func(*options)

// WithOrdering selects the iteration-order policy for the new Map.
// Unknown Ordering values panic: they are programmer errors, not input.
func WithOrdering(o Ordering) Option {
	if o < Arbitrary || o > InsertionOrder {
		panic("attrmap: unknown Ordering " + o.String())
	}

	return func(cfg *options) { cfg.ordering = o }
}

// WithCapacity pre-sizes the backing store for at least n entries.
// Negative n is treated as zero.
func WithCapacity(n int) Option {
	return func(cfg *options) {
		if n > 0 {
			cfg.capacity = n
		}
	}
}

// gatherOptions folds opts over the defaults.
func gatherOptions(opts []Option) options {
	cfg := options{ordering: DefaultOrdering}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

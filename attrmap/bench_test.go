package attrmap_test

import (
	"strconv"
	"testing"

	"github.com/katalvlaran/auxil/attrmap"
)

// benchKeys returns n distinct valid identifier keys.
func benchKeys(n int) []string {
	keys := make([]string, n)
	for i := range keys {
		keys[i] = "key_" + strconv.Itoa(i)
	}

	return keys
}

// benchmarkSet measures n inserts under the given ordering policy.
func benchmarkSet(b *testing.B, ordering attrmap.Ordering, n int) {
	keys := benchKeys(n)

	b.ResetTimer() // ignore key generation
	for i := 0; i < b.N; i++ {
		m := attrmap.New[int](attrmap.WithOrdering(ordering), attrmap.WithCapacity(n))
		for j, key := range keys {
			if err := m.Set(key, j); err != nil {
				b.Fatalf("Set failed: %v", err)
			}
		}
	}
}

// benchmarkGet measures lookups against a prefilled map.
func benchmarkGet(b *testing.B, ordering attrmap.Ordering, n int) {
	keys := benchKeys(n)
	m := attrmap.New[int](attrmap.WithOrdering(ordering), attrmap.WithCapacity(n))
	for j, key := range keys {
		if err := m.Set(key, j); err != nil {
			b.Fatalf("Set failed: %v", err)
		}
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := m.Get(keys[i%n]); err != nil {
			b.Fatalf("Get failed: %v", err)
		}
	}
}

// BenchmarkMap_SetArbitrarySmall benchmarks 100 inserts, Arbitrary policy.
func BenchmarkMap_SetArbitrarySmall(b *testing.B) { benchmarkSet(b, attrmap.Arbitrary, 100) }

// BenchmarkMap_SetArbitraryLarge benchmarks 10_000 inserts, Arbitrary policy.
func BenchmarkMap_SetArbitraryLarge(b *testing.B) { benchmarkSet(b, attrmap.Arbitrary, 10_000) }

// BenchmarkMap_SetSortedSmall benchmarks 100 inserts, Sorted policy.
func BenchmarkMap_SetSortedSmall(b *testing.B) { benchmarkSet(b, attrmap.Sorted, 100) }

// BenchmarkMap_SetSortedLarge benchmarks 10_000 inserts, Sorted policy (O(n) shifts).
func BenchmarkMap_SetSortedLarge(b *testing.B) { benchmarkSet(b, attrmap.Sorted, 10_000) }

// BenchmarkMap_SetInsertionLarge benchmarks 10_000 inserts, InsertionOrder policy.
func BenchmarkMap_SetInsertionLarge(b *testing.B) { benchmarkSet(b, attrmap.InsertionOrder, 10_000) }

// BenchmarkMap_GetArbitrary benchmarks lookups against 10_000 entries.
func BenchmarkMap_GetArbitrary(b *testing.B) { benchmarkGet(b, attrmap.Arbitrary, 10_000) }

// BenchmarkMap_GetSorted benchmarks lookups against 10_000 sorted entries.
func BenchmarkMap_GetSorted(b *testing.B) { benchmarkGet(b, attrmap.Sorted, 10_000) }

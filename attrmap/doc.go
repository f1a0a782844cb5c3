// Package attrmap provides string-keyed maps whose keys behave like
// attribute names: every key must be a valid identifier, reads and writes
// go through one backing store, and iteration order is a pluggable policy.
//
// 🚀 What is attrmap?
//
//	A Map[V] is a mapping from identifier strings to values of type V.
//	It fills the gap between a raw map[string]V and a struct:
//	  • keys are validated like field names (no "123abc", no "__dunder__")
//	  • subscript-style Get/Set/Delete and snapshot Keys/Values/Pairs
//	  • three interchangeable ordering policies, fixed at construction
//	  • order-preserving JSON and YAML round-trips
//
// ✨ Ordering policies:
//   - Arbitrary      — unspecified order, stable between mutations
//   - Sorted         — keys always iterate in ascending lexicographic order
//   - InsertionOrder — first-insertion order; reassigning a key keeps its
//     position; deleting and re-adding moves it to the end
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/auxil/attrmap"
//
//	m := attrmap.New[string](attrmap.WithOrdering(attrmap.InsertionOrder))
//	if err := m.Set("host", "localhost"); err != nil { ... }
//	if err := m.Set("user", "admin"); err != nil { ... }
//	host, err := m.Get("host")          // "localhost", nil
//	fmt.Println(m.Keys())               // [host user]
//
// Errors:
//   - ErrKeyNotFound — read or delete of an absent key.
//   - ErrInvalidKey  — insertion of a non-identifier key.
//   - ErrReservedKey — insertion of a reserved (dunder or empty) key.
//
// All operations are synchronous and in-memory. A Map is not safe for
// concurrent mutation; callers needing that must synchronize externally.
//
// Complexity: Get/Set/Delete are O(1) for Arbitrary, O(log n) insert /
// O(n) delete for Sorted, O(1) insert / O(n) delete for InsertionOrder.
//
// See examples in example_test.go.
package attrmap

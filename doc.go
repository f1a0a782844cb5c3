// Package auxil is a grab-bag of small, sharp helpers for everyday
// application code — attribute-style mappings, deep path access, bounded
// numbers, recursive regex substitution and friends.
//
// 🚀 What is auxil?
//
//	A dependency-light collection of independent utilities:
//		• attrmap    — string-keyed maps with pluggable iteration order
//		• deepattr   — get/set values through dotted paths ("a.b[3].c")
//		• numkit     — clamping, multiple-rounding, digit counts, sequences
//		• stringkit  — multi-delimiter split, nth-find, fixpoint regex sub
//		• geometry   — circle/rectangle collision tests
//		• registry   — name→factory registries for pluggable types
//
// ✨ Why choose auxil?
//
//   - Beginner-friendly – minimal API, clear, intuitive naming
//   - Predictable – typed sentinel errors, no hidden global state
//   - Pure Go – no cgo, in-memory only, no I/O surface
//   - Independent – every package stands alone; import only what you use
//
// Under the hood, everything is organized under flat subpackages:
//
//	attrmap/   — ordered & attribute-checked maps + JSON/YAML codec
//	deepattr/  — reflective deep attribute access
//	numkit/    — numeric conveniences & integer sequences
//	stringkit/ — string & regex helpers
//	geometry/  — collision primitives
//	registry/  — factory registries
//
// Quick taste:
//
//	m := attrmap.New[int](attrmap.WithOrdering(attrmap.Sorted))
//	_ = m.Set("beta", 2)
//	_ = m.Set("alpha", 1)
//	fmt.Println(m.Keys()) // [alpha beta]
//
// Dive into each package's doc.go for full examples and the exact
// error contracts.
//
//	go get github.com/katalvlaran/auxil
package auxil

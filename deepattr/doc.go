// Package deepattr reads and writes values through dotted paths, so
// "a.b[3].c" reaches three levels into a nested structure in one call.
//
// 🚀 What is deepattr?
//
//	Get, GetOr and Set generalize plain field access to a whole path:
//	identifier segments separated by dots, each optionally followed by
//	one or more [n] index suffixes. The walk understands, at every level:
//	  • pointers and interfaces (transparently dereferenced)
//	  • maps with string keys (field segments) or int keys (index segments)
//	  • slices and arrays (index segments)
//	  • exported struct fields (field segments)
//	  • attrmap-style containers, via their
//	    Lookup(string) (any, bool) / Set(string, any) error methods
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/auxil/deepattr"
//
//	type Server struct{ Addr string }
//	type Config struct{ Servers []Server }
//
//	cfg := &Config{Servers: []Server{{Addr: "a"}, {Addr: "b"}}}
//	addr, err := deepattr.Get(cfg, "Servers[1].Addr") // "b", nil
//	err = deepattr.Set(cfg, "Servers[0].Addr", "c")
//
// Errors:
//   - ErrBadPath   — the path string does not parse.
//   - ErrNotFound  — a segment names a missing key/field or an
//     out-of-range index, or descends into a non-container.
//   - ErrCannotSet — the final target exists but is not assignable
//     (unaddressable struct field, nil map, type mismatch).
//
// Writing through struct fields requires the root (or the containing
// struct) to be reachable through a pointer; values boxed directly in
// interfaces are read-only.
package deepattr

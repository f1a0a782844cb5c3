// Package registry provides name→factory registries for pluggable types:
// register constructors under identifier names, then instantiate by name
// at runtime.
//
// 🚀 What is registry?
//
//	A Registry[T] replaces the "register every subclass in a global table"
//	pattern from dynamic languages with an explicit, typed table:
//	  • Register binds a name to a func() T exactly once
//	  • New looks the name up and calls the factory
//	  • Names lists all registered names in sorted order
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/auxil/registry"
//
//	codecs := registry.New[Codec]()
//	if err := codecs.Register("json", func() Codec { return &jsonCodec{} }); err != nil { ... }
//	if err := codecs.Register("yaml", func() Codec { return &yamlCodec{} }); err != nil { ... }
//
//	c, err := codecs.New("json")
//	fmt.Println(codecs.Names()) // [json yaml]
//
// Names follow attrmap's key rules: they must be valid identifiers and
// not reserved, so a registry name is always usable as an attribute-style
// key elsewhere.
//
// Errors:
//   - ErrDuplicate — Register of an already-registered name.
//   - ErrUnknown   — New of an unregistered name.
//   - attrmap.ErrInvalidKey / attrmap.ErrReservedKey — bad names.
//
// A Registry is not safe for concurrent mutation; register everything up
// front (init time) or synchronize externally.
package registry

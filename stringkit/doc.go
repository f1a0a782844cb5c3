// Package stringkit collects small string and regex helpers that keep
// showing up in application code: splitting on several delimiters at once,
// finding the nth occurrence of a substring, and reapplying a regex
// substitution until the text stops changing.
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/auxil/stringkit"
//
//	parts, err := stringkit.SplitAny("a-b_c", []string{"-", "_"}, 0)
//	// parts = [a b c]
//
//	i := stringkit.FindNth("abcabcabc", "abc", 2)
//	// i = 3
//
//	flat, err := stringkit.SubRecursive(`\(([^()]*)\)`, "$1", "((x))")
//	// flat = "x"
//
// SubRecursive differs from a plain ReplaceAll in that the substitution is
// reapplied to its own output until a fixpoint is reached, which handles
// nested structures a single pass cannot. A substitution whose output
// keeps growing never reaches a fixpoint; the pass count is capped at
// DefaultMaxPasses and ErrNoFixpoint reports the overrun.
//
// Errors:
//   - ErrNoFixpoint — SubRecursive exceeded DefaultMaxPasses passes.
//
// All helpers are pure functions over their inputs.
package stringkit

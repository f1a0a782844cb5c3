// Package numkit provides small numeric conveniences: clamping a value
// into a closed interval, rounding to a multiple, counting decimal digits,
// and integer sequences as range-over-func iterators.
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/auxil/numkit"
//
//	numkit.Clamp(17, 0, 10)                     // 10
//	numkit.RoundMult(7.3, 2.5, numkit.Nearest)  // 7.5
//	numkit.NumDigits(-250)                      // 3
//
//	for i := range numkit.Span(0, 10, 2) {      // 0 2 4 6 8
//		...
//	}
//	for i := range numkit.Count(1, 1) {         // 1 2 3 ... (unbounded)
//		if i > limit { break }
//	}
//
// Count is the unbounded counterpart of Span: where the original design
// switched on an infinite stop value, Go's iterators simply never stop
// yielding and the caller breaks out of the loop.
//
// All helpers are pure functions; the iterators allocate nothing per step.
package numkit

package numkit

import (
	"cmp"
	"iter"
	"math"
)

// RoundDirection selects how RoundMult resolves a value sitting between
// two multiples.
type RoundDirection int

const (
	// Nearest rounds to the closest multiple, halves away from zero.
	Nearest RoundDirection = iota

	// Up rounds toward the next multiple at or above the value.
	Up

	// Down rounds toward the next multiple at or below the value.
	Down
)

// Clamp limits v to the closed interval [lo, hi].
// Callers must ensure lo <= hi; the bounds are not reordered.
func Clamp[T cmp.Ordered](v, lo, hi T) T {
	return min(max(v, lo), hi)
}

// RoundMult rounds v to a multiple of multiple, in the given direction.
// A zero multiple returns v unchanged.
func RoundMult(v, multiple float64, dir RoundDirection) float64 {
	if multiple == 0 {
		return v
	}

	q := v / multiple
	switch dir {
	case Up:
		q = math.Ceil(q)
	case Down:
		q = math.Floor(q)
	default:
		q = math.Round(q)
	}

	return q * multiple
}

// NumDigits returns the number of decimal digits in n, ignoring sign.
// NumDigits(0) is 1.
func NumDigits(n int) int {
	if n == 0 {
		return 1
	}

	digits := 0
	for n != 0 {
		n /= 10
		digits++
	}

	return digits
}

// Span yields start, start+step, ... while strictly before stop (after
// stop for negative step). A zero step yields nothing rather than loop
// forever; use Count for an unbounded sequence.
func Span(start, stop, step int) iter.Seq[int] {
	return func(yield func(int) bool) {
		switch {
		case step > 0:
			for i := start; i < stop; i += step {
				if !yield(i) {
					return
				}
			}
		case step < 0:
			for i := start; i > stop; i += step {
				if !yield(i) {
					return
				}
			}
		}
	}
}

// Count yields start, start+step, ... without end; the caller terminates
// by breaking out of the range loop. A zero step repeats start forever.
func Count(start, step int) iter.Seq[int] {
	return func(yield func(int) bool) {
		for i := start; ; i += step {
			if !yield(i) {
				return
			}
		}
	}
}

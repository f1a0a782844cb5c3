package stringkit

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
)

// DefaultMaxPasses bounds how many times SubRecursive reapplies its
// substitution before giving up with ErrNoFixpoint.
const DefaultMaxPasses = 1000

// ErrNoFixpoint indicates a recursive substitution kept changing its input
// after DefaultMaxPasses passes.
var ErrNoFixpoint = errors.New("stringkit: substitution did not reach a fixpoint")

// IsDunder reports whether name is a reserved "dunder" identifier:
// at least one character wrapped in double underscores, e.g. "__state__".
func IsDunder(name string) bool {
	return len(name) > 4 && strings.HasPrefix(name, "__") && strings.HasSuffix(name, "__")
}

// SplitAny splits s on every delimiter in delims, treating each delimiter
// literally. A maxSplit of 0 (or less) means no limit; otherwise at most
// maxSplit splits are made and the remainder stays in the last element.
// With no delimiters the whole string is returned as a single element.
func SplitAny(s string, delims []string, maxSplit int) ([]string, error) {
	if len(delims) == 0 {
		return []string{s}, nil
	}

	quoted := make([]string, len(delims))
	for i, d := range delims {
		quoted[i] = regexp.QuoteMeta(d)
	}
	re, err := regexp.Compile(strings.Join(quoted, "|"))
	if err != nil {
		return nil, fmt.Errorf("stringkit: bad delimiters: %w", err)
	}

	n := -1
	if maxSplit > 0 {
		n = maxSplit + 1
	}

	return re.Split(s, n), nil
}

// FindNth returns the byte index of the nth occurrence of needle in
// haystack (n counts from 1), or -1 when there are fewer than n
// occurrences. Occurrences do not overlap.
func FindNth(haystack, needle string, n int) int {
	if n < 1 || needle == "" {
		return -1
	}

	start := strings.Index(haystack, needle)
	offset := 0
	for start >= 0 && n > 1 {
		offset += start + len(needle)
		start = strings.Index(haystack[offset:], needle)
		n--
	}
	if start < 0 {
		return -1
	}

	return offset + start
}

// SubRecursive compiles pattern and applies the substitution repl to s
// repeatedly until the result stops changing, then returns it.
//
// repl uses the regexp.ReplaceAllString syntax ($1, ${name}, ...).
// A bad pattern returns the compile error; a substitution still changing
// after DefaultMaxPasses passes returns ErrNoFixpoint.
func SubRecursive(pattern, repl, s string) (string, error) {
	re, err := regexp.Compile(pattern)
	if err != nil {
		return "", fmt.Errorf("stringkit: bad pattern: %w", err)
	}

	for range DefaultMaxPasses {
		next := re.ReplaceAllString(s, repl)
		if next == s {
			return s, nil
		}
		s = next
	}

	return "", fmt.Errorf("%w: %q after %d passes", ErrNoFixpoint, pattern, DefaultMaxPasses)
}

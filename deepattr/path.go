// Package deepattr: path string parsing.
//
// Grammar (no whitespace):
//
//	path    := segment ("." segment)*
//	segment := name index* | index+
//	index   := "[" integer "]"
//
// where name is an identifier (letter or underscore, then letters, digits
// or underscores).
package deepattr

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"
)

// step is one resolved move of the walk: a named field/key lookup when
// name is non-empty, an integer index otherwise.
type step struct {
	name  string
	index int
}

func (s step) String() string {
	if s.name != "" {
		return s.name
	}

	return "[" + strconv.Itoa(s.index) + "]"
}

// isIdent reports whether s is a valid identifier.
func isIdent(s string) bool {
	if s == "" {
		return false
	}
	for i, r := range s {
		if r == '_' || unicode.IsLetter(r) || (i > 0 && unicode.IsDigit(r)) {
			continue
		}

		return false
	}

	return true
}

// parsePath splits path into steps, or fails with ErrBadPath.
func parsePath(path string) ([]step, error) {
	if path == "" {
		return nil, fmt.Errorf("%w: empty path", ErrBadPath)
	}

	var steps []step
	for _, segment := range strings.Split(path, ".") {
		head, indexes, found := segment, "", false
		if i := strings.IndexByte(segment, '['); i >= 0 {
			head, indexes = segment[:i], segment[i:]
		}

		if head != "" {
			if !isIdent(head) {
				return nil, fmt.Errorf("%w: bad segment %q in %q", ErrBadPath, segment, path)
			}
			steps = append(steps, step{name: head})
			found = true
		}

		for indexes != "" {
			closing := strings.IndexByte(indexes, ']')
			if indexes[0] != '[' || closing < 0 {
				return nil, fmt.Errorf("%w: bad index in segment %q of %q", ErrBadPath, segment, path)
			}
			n, err := strconv.Atoi(indexes[1:closing])
			if err != nil {
				return nil, fmt.Errorf("%w: bad index in segment %q of %q", ErrBadPath, segment, path)
			}
			steps = append(steps, step{index: n})
			found = true
			indexes = indexes[closing+1:]
		}

		if !found {
			return nil, fmt.Errorf("%w: empty segment in %q", ErrBadPath, path)
		}
	}

	return steps, nil
}

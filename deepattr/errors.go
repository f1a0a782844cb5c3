package deepattr

import "errors"

var (
	// ErrBadPath indicates the path string is malformed.
	ErrBadPath = errors.New("deepattr: malformed path")

	// ErrNotFound indicates a path segment does not resolve.
	ErrNotFound = errors.New("deepattr: path segment not found")

	// ErrCannotSet indicates the final path target is not assignable.
	ErrCannotSet = errors.New("deepattr: target is not assignable")
)

package attrmap

import "errors"

var (
	// ErrKeyNotFound indicates a read or delete referenced an absent key.
	ErrKeyNotFound = errors.New("attrmap: key not found")

	// ErrInvalidKey indicates the key is not a valid identifier string.
	ErrInvalidKey = errors.New("attrmap: key is not a valid identifier")

	// ErrReservedKey indicates the key collides with a reserved name.
	ErrReservedKey = errors.New("attrmap: key is reserved")

	// ErrBadDocument indicates a JSON or YAML document cannot decode into a Map.
	ErrBadDocument = errors.New("attrmap: document is not a mapping")
)

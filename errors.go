package bplustree

import "errors"

// Sentinel errors identifying the failure kinds spec'd for this index.
// Callers should compare against these with errors.Is; every returned
// error wraps one of them with call-specific context via fmt.Errorf's
// %w verb.
var (
	// ErrDuplicateKey is returned by Insert when the key already exists
	// and update was not requested.
	ErrDuplicateKey = errors.New("bplustree: duplicate key")

	// ErrKeyNotFound is returned by Search and Delete when the key is
	// absent.
	ErrKeyNotFound = errors.New("bplustree: key not found")

	// ErrInvalidRange is returned when a range iterator is constructed
	// with start >= stop. The range methods take no stride parameter.
	ErrInvalidRange = errors.New("bplustree: invalid range")

	// ErrIncomparableKey is returned when a key's ordered projection
	// cannot be placed in a total order (currently: NaN floats).
	ErrIncomparableKey = errors.New("bplustree: incomparable key")

	// ErrInvalidArgument is returned by the constructors for a
	// non-positive or sub-minimum order, or a nil key function.
	ErrInvalidArgument = errors.New("bplustree: invalid argument")
)

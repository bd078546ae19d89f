package rating

import "errors"

// Sentinel error kinds for this package. These allow errors.Is/As from callers.
var (
	ErrEmptyBrackets  = errors.New("bracket table is empty")
	ErrNonFiniteValue = errors.New("non-finite value")
)

package dlx

import "errors"

var (
	// ErrItemCount indicates a negative item count was passed to New.
	ErrItemCount = errors.New("dlx: item count must be non-negative")

	// ErrInvalidOption indicates an option with no items, an item index
	// outside [1, itemCount], or a duplicate item within the option.
	// The engine is unchanged and remains usable after the rejection.
	ErrInvalidOption = errors.New("dlx: invalid option")

	// ErrFrozen indicates AddOption was called after NextSolution had
	// already begun enumerating; the matrix is final at that point.
	ErrFrozen = errors.New("dlx: engine is frozen once enumeration has started")
)

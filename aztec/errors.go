package aztec

import "errors"

// ErrBadOrder indicates a diamond order below 1.
var ErrBadOrder = errors.New("aztec: diamond order must be at least 1")

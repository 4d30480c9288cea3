package queens

import "errors"

// ErrBadSize indicates a board size below 1.
var ErrBadSize = errors.New("queens: board size must be at least 1")

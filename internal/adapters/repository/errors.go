package repository

import "errors"

// Sentinel kinds for board errors.
var (
	ErrNotFound     = errors.New("player not on board")
	ErrInvalidLimit = errors.New("invalid board limit")
	ErrInvalidEntry = errors.New("invalid board entry")
)

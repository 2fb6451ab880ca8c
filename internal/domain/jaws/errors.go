package jaws

import "errors"

// Sentinel kinds for comparison errors.
var (
	ErrUnknownPosition = errors.New("no baseline for position")
)

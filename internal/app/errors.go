package service

import "errors"

// Sentinel kinds for service errors.
var (
	ErrNoCorpus = errors.New("no inductee corpus configured")
)

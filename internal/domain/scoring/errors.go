package scoring

import "errors"

// Sentinel errors for scoring.
var (
	ErrUnknownTier = errors.New("unknown tier")
)

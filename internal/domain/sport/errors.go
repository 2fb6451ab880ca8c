package sport

import "errors"

// Sentinel kinds for catalog errors.
var (
	ErrUnknownSport   = errors.New("unknown sport")
	ErrInvalidCatalog = errors.New("invalid catalog")
	ErrLoadOverlay    = errors.New("failed to load catalog overlay")
)

package ingest

import "errors"

// Sentinel kinds for ingest errors.
var (
	ErrDecode        = errors.New("decode player records")
	ErrInvalidPlayer = errors.New("invalid player record")
	ErrFormat        = errors.New("unsupported file format")
)

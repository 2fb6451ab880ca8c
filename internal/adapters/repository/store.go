// Package repository keeps the ranked board of evaluated players.
package repository

import "context"

// Entry is one board row.
type Entry struct {
	Rank      int     `json:"rank" yaml:"rank"`
	PlayerID  string  `json:"player_id" yaml:"player_id"`
	Name      string  `json:"name" yaml:"name"`
	Sport     string  `json:"sport" yaml:"sport"`
	Position  string  `json:"position" yaml:"position"`
	Overall   int     `json:"overall" yaml:"overall"`
	Composite float64 `json:"composite_ratio" yaml:"composite_ratio"`
	Tier      string  `json:"tier" yaml:"tier"`
}

// Store provides read/write access to the board.
type Store interface {
	// Put inserts or replaces the entry for e.PlayerID. It reports whether
	// the player was new.
	Put(ctx context.Context, e Entry) (bool, error)

	// Get returns the ranked entry for a player, or ErrNotFound.
	Get(ctx context.Context, playerID string) (Entry, error)

	// Rank returns the competition rank for a player, or ErrNotFound.
	Rank(ctx context.Context, playerID string) (int, error)

	// TopN returns the best n entries, best first.
	TopN(ctx context.Context, n int) ([]Entry, error)

	// Count returns the number of players on the board.
	Count(ctx context.Context) int
}

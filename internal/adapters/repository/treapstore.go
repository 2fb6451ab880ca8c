package repository

import (
	"context"
	"fmt"
	"math"
	"math/rand/v2"
	"sync"

	"github.com/okian/cooperstown/internal/domain/model"
	"github.com/okian/cooperstown/pkg/metrics"
)

// Treap-based, in-memory Store.
//
// Ordering: overall DESC, composite ratio DESC, player ID ASC. "less" means
// ranks earlier, so in-order traversal walks the board best to worst.
// Ranks are competition ranks on the overall score: equal scores share a
// rank and the next distinct score skips ahead (1, 2, 2, 4).

// compositeScale fixes composite ratios to six decimals so equal ratios
// compare equal.
const compositeScale = 1_000_000

type key struct {
	overall   int
	composite int64
	id        string
}

func keyOf(e Entry) key {
	return key{
		overall:   e.Overall,
		composite: int64(math.Round(model.Finite(e.Composite) * compositeScale)),
		id:        e.PlayerID,
	}
}

func less(a, b key) bool {
	if a.overall != b.overall {
		return a.overall > b.overall
	}
	if a.composite != b.composite {
		return a.composite > b.composite
	}
	return a.id < b.id
}

type node struct {
	key   key
	prio  uint64
	left  *node
	right *node
	size  int
}

func nsize(n *node) int {
	if n == nil {
		return 0
	}
	return n.size
}

func fix(n *node) {
	if n != nil {
		n.size = 1 + nsize(n.left) + nsize(n.right)
	}
}

func rotateRight(y *node) *node {
	x := y.left
	y.left = x.right
	x.right = y
	fix(y)
	fix(x)
	return x
}

func rotateLeft(x *node) *node {
	y := x.right
	x.right = y.left
	y.left = x
	fix(x)
	fix(y)
	return y
}

func insert(n *node, k key, prio uint64) *node {
	if n == nil {
		return &node{key: k, prio: prio, size: 1}
	}
	if less(k, n.key) {
		n.left = insert(n.left, k, prio)
		if n.left.prio > n.prio {
			n = rotateRight(n)
		}
	} else {
		n.right = insert(n.right, k, prio)
		if n.right.prio > n.prio {
			n = rotateLeft(n)
		}
	}
	fix(n)
	return n
}

func deleteNode(n *node, k key) *node {
	if n == nil {
		return nil
	}
	switch {
	case n.key == k:
		if n.left == nil {
			return n.right
		}
		if n.right == nil {
			return n.left
		}
		if n.left.prio > n.right.prio {
			n = rotateRight(n)
			n.right = deleteNode(n.right, k)
		} else {
			n = rotateLeft(n)
			n.left = deleteNode(n.left, k)
		}
	case less(k, n.key):
		n.left = deleteNode(n.left, k)
	default:
		n.right = deleteNode(n.right, k)
	}
	fix(n)
	return n
}

// countAbove returns how many nodes have a strictly higher overall score.
func countAbove(n *node, overall int) int {
	count := 0
	for n != nil {
		if n.key.overall > overall {
			count += nsize(n.left) + 1
			n = n.right
		} else {
			n = n.left
		}
	}
	return count
}

// collectTopN appends up to limit entries in board order.
func collectTopN(n *node, limit int, byID map[string]Entry, out *[]Entry) {
	if n == nil || len(*out) >= limit {
		return
	}
	collectTopN(n.left, limit, byID, out)
	if len(*out) < limit {
		if e, ok := byID[n.key.id]; ok {
			*out = append(*out, e)
		}
	}
	if len(*out) < limit {
		collectTopN(n.right, limit, byID, out)
	}
}

func first(n *node) *node {
	if n == nil {
		return nil
	}
	for n.left != nil {
		n = n.left
	}
	return n
}

// TreapStore is the in-memory board.
type TreapStore struct {
	mu             sync.RWMutex
	root           *node
	byID           map[string]Entry
	rng            *rand.Rand
	seed           uint64
	metricsEnabled bool
}

// NewTreapStore constructs an empty board.
func NewTreapStore(opts ...Option) *TreapStore {
	s := &TreapStore{
		byID:           make(map[string]Entry),
		seed:           rand.Uint64(),
		metricsEnabled: true,
	}
	for _, opt := range opts {
		opt(s)
	}
	s.rng = rand.New(rand.NewPCG(s.seed, s.seed^0x9e3779b97f4a7c15))
	return s
}

// Put implements Store.Put in O(log n) expected time. A re-evaluated player
// replaces its previous entry.
func (s *TreapStore) Put(_ context.Context, e Entry) (bool, error) {
	if e.PlayerID == "" {
		metrics.RecordError("repository", "invalid_entry")
		return false, fmt.Errorf("empty player id: %w", ErrInvalidEntry)
	}
	e.Rank = 0
	k := keyOf(e)

	s.mu.Lock()
	old, exists := s.byID[e.PlayerID]
	if exists {
		s.root = deleteNode(s.root, keyOf(old))
	}
	s.byID[e.PlayerID] = e
	s.root = insert(s.root, k, s.rng.Uint64())
	size, top := len(s.byID), s.topOverallLocked()
	s.mu.Unlock()

	if s.metricsEnabled {
		metrics.UpdateBoard(size, top)
	}
	return !exists, nil
}

// Get returns the ranked entry for a player in O(log n).
func (s *TreapStore) Get(_ context.Context, playerID string) (Entry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	e, ok := s.byID[playerID]
	if !ok {
		metrics.RecordError("repository", "not_found")
		return Entry{}, fmt.Errorf("%q: %w", playerID, ErrNotFound)
	}
	e.Rank = countAbove(s.root, e.Overall) + 1
	return e, nil
}

// Rank returns a player's competition rank.
func (s *TreapStore) Rank(ctx context.Context, playerID string) (int, error) {
	e, err := s.Get(ctx, playerID)
	if err != nil {
		return 0, err
	}
	return e.Rank, nil
}

// TopN returns the top n entries, best first.
func (s *TreapStore) TopN(_ context.Context, n int) ([]Entry, error) {
	if n < 1 {
		metrics.RecordError("repository", "invalid_limit")
		return nil, ErrInvalidLimit
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]Entry, 0, min(n, len(s.byID)))
	collectTopN(s.root, n, s.byID, &out)
	assignRanks(out)
	return out, nil
}

// Count returns the number of players on the board.
func (s *TreapStore) Count(_ context.Context) int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.byID)
}

func (s *TreapStore) topOverallLocked() int {
	if n := first(s.root); n != nil {
		return n.key.overall
	}
	return 0
}

// assignRanks sets competition ranks on a prefix of the board.
func assignRanks(entries []Entry) {
	for i := range entries {
		if i > 0 && entries[i].Overall == entries[i-1].Overall {
			entries[i].Rank = entries[i-1].Rank
			continue
		}
		entries[i].Rank = i + 1
	}
}

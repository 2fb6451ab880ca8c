package similarity

import "github.com/okian/cooperstown/internal/domain/model"

// Affinity scores.
const (
	AffinityIdentical   = 1.0
	AffinitySameGroup   = 0.8
	AffinityPitcherType = 0.6
	AffinityNeighbor    = 0.5
	AffinitySameRole    = 0.3
	AffinityCrossRole   = 0.1
)

// PositionInfo places a position in a broad group and a role.
type PositionInfo struct {
	Group string
	Role  model.Role
}

// AffinityTable scores how interchangeable two positions are. Neighbor
// lookups are symmetric.
type AffinityTable struct {
	Positions map[string]PositionInfo
	Neighbors map[string][]string
}

// Affinity returns the position affinity of a and b. Unknown positions
// are treated as crossing the role boundary.
func (t AffinityTable) Affinity(a, b string) float64 {
	if a == b {
		return AffinityIdentical
	}
	pa, okA := t.Positions[a]
	pb, okB := t.Positions[b]
	if !okA || !okB || pa.Role != pb.Role {
		return AffinityCrossRole
	}
	if pa.Group != "" && pa.Group == pb.Group {
		return AffinitySameGroup
	}
	if t.adjacent(a, b) || t.adjacent(b, a) {
		return AffinityNeighbor
	}
	if pa.Role.PitcherLike() {
		return AffinityPitcherType
	}
	return AffinitySameRole
}

func (t AffinityTable) adjacent(a, b string) bool {
	for _, n := range t.Neighbors[a] {
		if n == b {
			return true
		}
	}
	return false
}

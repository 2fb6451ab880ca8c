// Package sport holds the per-sport reference tables the engine is
// configured with: positional baselines, awards, milestones, season
// thresholds, similarity scales and position affinity.
package sport

import (
	"fmt"
	"sort"
	"strings"

	"github.com/okian/cooperstown/internal/domain/aging"
	"github.com/okian/cooperstown/internal/domain/jaws"
	"github.com/okian/cooperstown/internal/domain/model"
	"github.com/okian/cooperstown/internal/domain/projection"
	"github.com/okian/cooperstown/internal/domain/scoring"
	"github.com/okian/cooperstown/internal/domain/similarity"
)

// Sport names.
const (
	Baseball = "baseball"
	Hockey   = "hockey"
)

// PositionDef describes one position code.
type PositionDef struct {
	Code  string     `json:"code" yaml:"code"`
	Name  string     `json:"name" yaml:"name"`
	Group string     `json:"group" yaml:"group"`
	Role  model.Role `json:"role" yaml:"role"`
}

// Catalog is the immutable configuration for one sport. Treat values
// returned by Lookup as read-only.
type Catalog struct {
	Sport      string              `json:"sport" yaml:"sport"`
	ValueUnit  string              `json:"value_unit" yaml:"value_unit"`
	Positions  []PositionDef       `json:"positions" yaml:"positions"`
	Neighbors  map[string][]string `json:"neighbors" yaml:"neighbors"`
	Baselines  jaws.Baselines      `json:"baselines" yaml:"baselines"`
	Milestones []scoring.Milestone `json:"milestones" yaml:"milestones"`
	Awards     []scoring.AwardRule `json:"awards" yaml:"awards"`
	Thresholds scoring.Thresholds  `json:"thresholds" yaml:"thresholds"`
	Scales     similarity.Scales   `json:"scales" yaml:"scales"`
	Aging      aging.Tables        `json:"aging" yaml:"aging"`
	Outcome    scoring.BallotTable `json:"outcome" yaml:"outcome"`
}

var registry = map[string]func() Catalog{
	Baseball: BaseballCatalog,
	Hockey:   HockeyCatalog,
}

// Lookup returns the built-in catalog for name (case-insensitive).
func Lookup(name string) (Catalog, error) {
	build, ok := registry[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return Catalog{}, fmt.Errorf("lookup %q: %w", name, ErrUnknownSport)
	}
	return build(), nil
}

// Names lists the built-in sports.
func Names() []string {
	out := make([]string, 0, len(registry))
	for n := range registry {
		out = append(out, n)
	}
	sort.Strings(out)
	return out
}

// Position returns the definition for code.
func (c Catalog) Position(code string) (PositionDef, bool) {
	for _, p := range c.Positions {
		if p.Code == code {
			return p, true
		}
	}
	return PositionDef{}, false
}

// Role returns the stat role for a position, or RoleUnknown.
func (c Catalog) Role(code string) model.Role {
	p, ok := c.Position(code)
	if !ok {
		return model.RoleUnknown
	}
	return p.Role
}

// Affinity builds the position affinity table.
func (c Catalog) Affinity() similarity.AffinityTable {
	t := similarity.AffinityTable{
		Positions: make(map[string]similarity.PositionInfo, len(c.Positions)),
		Neighbors: c.Neighbors,
	}
	for _, p := range c.Positions {
		t.Positions[p.Code] = similarity.PositionInfo{Group: p.Group, Role: p.Role}
	}
	return t
}

// Scorer builds a scorer configured for the sport.
func (c Catalog) Scorer() *scoring.Scorer {
	return scoring.NewScorer(
		scoring.WithAwardRules(c.Awards),
		scoring.WithMilestones(c.Milestones),
		scoring.WithThresholds(c.Thresholds),
		scoring.WithOutcomeMapper(c.Outcome),
	)
}

// Projector builds a projector configured for the sport.
func (c Catalog) Projector(opts ...projection.Option) *projection.Projector {
	opts = append([]projection.Option{projection.WithAgingTables(c.Aging)}, opts...)
	return projection.NewProjector(c.Baselines, c.Scorer(), opts...)
}

// Matcher builds a similarity matcher over corpus.
func (c Catalog) Matcher(corpus []model.Player, opts ...similarity.Option) *similarity.Matcher {
	opts = append([]similarity.Option{
		similarity.WithScales(c.Scales),
		similarity.WithThresholds(c.Thresholds),
		similarity.WithAffinity(c.Affinity()),
	}, opts...)
	return similarity.NewMatcher(corpus, opts...)
}

// Validate checks the catalog is complete and internally consistent.
func (c Catalog) Validate() error {
	if c.Sport == "" {
		return fmt.Errorf("sport name is empty: %w", ErrInvalidCatalog)
	}
	if len(c.Positions) == 0 {
		return fmt.Errorf("%s: no positions: %w", c.Sport, ErrInvalidCatalog)
	}
	seen := make(map[string]bool, len(c.Positions))
	for _, p := range c.Positions {
		if seen[p.Code] {
			return fmt.Errorf("%s: duplicate position %s: %w", c.Sport, p.Code, ErrInvalidCatalog)
		}
		seen[p.Code] = true
		if p.Role == model.RoleUnknown {
			return fmt.Errorf("%s: position %s has no role: %w", c.Sport, p.Code, ErrInvalidCatalog)
		}
		b, ok := c.Baselines[p.Code]
		if !ok {
			return fmt.Errorf("%s: position %s has no baseline: %w", c.Sport, p.Code, ErrInvalidCatalog)
		}
		if b.Career <= 0 || b.Peak <= 0 || b.Blended <= 0 {
			return fmt.Errorf("%s: baseline for %s must be positive: %w", c.Sport, p.Code, ErrInvalidCatalog)
		}
	}
	for code, ns := range c.Neighbors {
		if !seen[code] {
			return fmt.Errorf("%s: neighbor map names unknown position %s: %w", c.Sport, code, ErrInvalidCatalog)
		}
		for _, n := range ns {
			if !seen[n] {
				return fmt.Errorf("%s: %s neighbors unknown position %s: %w", c.Sport, code, n, ErrInvalidCatalog)
			}
		}
	}
	for _, a := range c.Awards {
		if a.Type == "" || a.Points < 0 || a.Cap < a.Points {
			return fmt.Errorf("%s: award %q needs a type and cap >= points >= 0: %w", c.Sport, a.Type, ErrInvalidCatalog)
		}
	}
	for _, m := range c.Milestones {
		if !m.Stat.Known() || m.Threshold <= 0 || m.Weight <= 0 || m.Role == model.RoleUnknown {
			return fmt.Errorf("%s: milestone %q is malformed: %w", c.Sport, m.Label, ErrInvalidCatalog)
		}
	}
	if c.Thresholds.Solid <= 0 || c.Thresholds.Elite < c.Thresholds.Solid {
		return fmt.Errorf("%s: thresholds need elite >= solid > 0: %w", c.Sport, ErrInvalidCatalog)
	}
	for name, curve := range map[string]aging.Curve{
		"hitter": c.Aging.Hitter, "pitcher": c.Aging.Pitcher, "survival": c.Aging.Survival,
	} {
		if len(curve.Points) == 0 || !curve.Sorted() {
			return fmt.Errorf("%s: %s aging curve is empty or unsorted: %w", c.Sport, name, ErrInvalidCatalog)
		}
	}
	return nil
}

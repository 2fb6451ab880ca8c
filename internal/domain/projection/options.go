package projection

import "github.com/okian/cooperstown/internal/domain/aging"

// Default projection limits.
const (
	defaultMaxAge          = 42
	defaultSurvivalFloor   = 0.05
	defaultBaselineFloor   = 0.5
	defaultMultiplierFloor = 0.05
	defaultSolidBonus      = 0.05
	defaultEliteBonus      = 0.05
)

// Option applies a configuration option to the Projector.
type Option func(*Projector)

// WithAgingTables replaces the aging and survival curves.
func WithAgingTables(t aging.Tables) Option {
	return func(p *Projector) {
		p.tables = t
	}
}

// WithMaxAge sets the oldest age that may be projected.
func WithMaxAge(age int) Option {
	return func(p *Projector) {
		if age > 0 {
			p.maxAge = age
		}
	}
}

// WithSurvivalFloor sets the cumulative survival below which the
// projection stops.
func WithSurvivalFloor(floor float64) Option {
	return func(p *Projector) {
		if floor > 0 && floor < 1 {
			p.survivalFloor = floor
		}
	}
}

// WithPlayBonuses sets the play-probability bonuses for solid and elite
// projected seasons. The elite bonus stacks on the solid one.
func WithPlayBonuses(solid, elite float64) Option {
	return func(p *Projector) {
		if solid >= 0 {
			p.solidBonus = solid
		}
		if elite >= 0 {
			p.eliteBonus = elite
		}
	}
}

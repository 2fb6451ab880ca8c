package scoring

import (
	"github.com/okian/cooperstown/internal/domain/model"
)

// Component caps.
const (
	MaxValuePoints      = 40
	MaxAwardPoints      = 25
	MaxMilestonePoints  = 20
	MaxTrajectoryPoints = 15
	MaxOverall          = 100
)

// Trajectory constants.
const (
	elitePointsPerSeason = 1.5
	eliteSeasonCap       = 7.5
	solidPointsPerSeason = 0.5
	solidSeasonCap       = 5
	youngActiveBonus     = 2.5
	youngActiveMaxAge    = 30
)

// Milestone near-miss bands.
const (
	milestonePointsPerWeight = 10
	nearMissFloor            = 0.8  // higher-is-better: partial credit from 80% of threshold
	nearMissCeiling          = 1.15 // lower-is-better: partial credit up to 115% of threshold
)

// AwardRule weights one award type. Each occurrence is worth Points, and
// the type's total is capped at Cap.
type AwardRule struct {
	Type   string  `koanf:"type" json:"type" yaml:"type"`
	Label  string  `koanf:"label" json:"label" yaml:"label"`
	Points float64 `koanf:"points" json:"points" yaml:"points"`
	Cap    float64 `koanf:"cap" json:"cap" yaml:"cap"`
}

// Milestone is a career stat threshold. IsRateStat milestones only count
// once the player has MinGames games.
type Milestone struct {
	Stat          model.StatKey `koanf:"stat" json:"stat" yaml:"stat"`
	Threshold     float64       `koanf:"threshold" json:"threshold" yaml:"threshold"`
	Label         string        `koanf:"label" json:"label" yaml:"label"`
	Role          model.Role    `koanf:"role" json:"role" yaml:"role"`
	Weight        float64       `koanf:"weight" json:"weight" yaml:"weight"`
	LowerIsBetter bool          `koanf:"lower_is_better" json:"lower_is_better,omitempty" yaml:"lower_is_better,omitempty"`
	IsRateStat    bool          `koanf:"is_rate_stat" json:"is_rate_stat,omitempty" yaml:"is_rate_stat,omitempty"`
	MinGames      float64       `koanf:"min_games" json:"min_games,omitempty" yaml:"min_games,omitempty"`
}

// Points is the full credit for meeting the milestone.
func (m Milestone) Points() float64 {
	return model.Finite(m.Weight) * milestonePointsPerWeight
}

// Met reports whether value satisfies the threshold outright.
func (m Milestone) Met(value float64) bool {
	if m.LowerIsBetter {
		// a zero rate is missing data, not a perfect record
		return value > 0 && value <= m.Threshold
	}
	return value >= m.Threshold
}

// Credit returns the points earned for value: full weight when met, a
// linear ramp inside the near-miss band, otherwise 0.
func (m Milestone) Credit(value float64) float64 {
	value = model.Finite(value)
	full := m.Points()
	if m.Threshold <= 0 || full <= 0 {
		return 0
	}
	if m.Met(value) {
		return full
	}
	if m.LowerIsBetter {
		ceiling := m.Threshold * nearMissCeiling
		if value <= 0 || value > ceiling {
			return 0
		}
		return full * (ceiling - value) / (ceiling - m.Threshold)
	}
	frac := value / m.Threshold
	if frac < nearMissFloor {
		return 0
	}
	return full * (frac - nearMissFloor) / (1 - nearMissFloor)
}

// Thresholds classify single seasons. Elite seasons are >= Elite; solid
// seasons are >= Solid and below Elite.
type Thresholds struct {
	Elite float64 `koanf:"elite" json:"elite" yaml:"elite"`
	Solid float64 `koanf:"solid" json:"solid" yaml:"solid"`
}

// DefaultThresholds are the WAR thresholds.
var DefaultThresholds = Thresholds{Elite: 5, Solid: 3}

// Classify counts elite and solid seasons.
func (t Thresholds) Classify(seasons []model.SeasonValue) (elite, solid int) {
	for _, s := range seasons {
		v := model.Finite(s.Value)
		switch {
		case v >= t.Elite:
			elite++
		case v >= t.Solid:
			solid++
		}
	}
	return elite, solid
}

func awardPoints(rules []AwardRule, awards []model.Award) (float64, map[string]int, int) {
	counts := make(map[string]int, len(rules))
	for _, a := range awards {
		counts[a.Type]++
	}
	var total float64
	rated := 0
	for _, r := range rules {
		n := counts[r.Type]
		if n == 0 {
			continue
		}
		rated += n
		total += model.Clamp(float64(n)*model.Finite(r.Points), 0, model.Finite(r.Cap))
	}
	return model.Clamp(total, 0, MaxAwardPoints), counts, len(awards) - rated
}

func milestonePoints(milestones []Milestone, role model.Role, career model.StatLine) (float64, []MilestoneCredit) {
	var total float64
	credits := make([]MilestoneCredit, 0, len(milestones))
	for _, m := range milestones {
		if m.Role != role {
			continue
		}
		var value float64
		if career != nil {
			value = career.Stat(m.Stat)
		}
		credit := MilestoneCredit{Milestone: m, Current: value}
		qualified := true
		if m.IsRateStat && m.MinGames > 0 && (career == nil || career.Stat(model.StatGames) < m.MinGames) {
			qualified = false
		}
		if qualified {
			credit.Points = m.Credit(value)
			credit.Met = m.Met(value)
		}
		total += credit.Points
		credits = append(credits, credit)
	}
	return model.Clamp(total, 0, MaxMilestonePoints), credits
}

func trajectoryPoints(elite, solid int, active bool, age int) float64 {
	pts := min(float64(elite)*elitePointsPerSeason, eliteSeasonCap) +
		min(float64(solid)*solidPointsPerSeason, solidSeasonCap)
	if active && age <= youngActiveMaxAge {
		pts += youngActiveBonus
	}
	return model.Clamp(pts, 0, MaxTrajectoryPoints)
}

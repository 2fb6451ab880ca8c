// Package scoring combines a baseline comparison, awards, milestones and
// season trajectory into a 0-100 Hall of Fame worthiness score.
package scoring

import (
	"math"

	"github.com/okian/cooperstown/internal/domain/jaws"
	"github.com/okian/cooperstown/internal/domain/model"
)

// Option applies a configuration option to the Scorer.
type Option func(*Scorer)

// WithAwardRules sets the award taxonomy.
func WithAwardRules(rules []AwardRule) Option {
	return func(s *Scorer) {
		s.awards = append([]AwardRule(nil), rules...)
	}
}

// WithMilestones sets the milestone table.
func WithMilestones(ms []Milestone) Option {
	return func(s *Scorer) {
		s.milestones = append([]Milestone(nil), ms...)
	}
}

// WithThresholds sets elite/solid season thresholds. Non-positive values
// and Solid above Elite are ignored.
func WithThresholds(t Thresholds) Option {
	return func(s *Scorer) {
		if t.Elite > 0 && t.Solid > 0 && t.Solid <= t.Elite {
			s.thresholds = t
		}
	}
}

// WithOutcomeMapper sets the probability/label mapping.
func WithOutcomeMapper(m OutcomeMapper) Option {
	return func(s *Scorer) {
		if m != nil {
			s.outcome = m
		}
	}
}

// Input is everything the scorer reads about one player.
type Input struct {
	Comparison jaws.Comparison
	Awards     []model.Award
	Career     model.StatLine
	Role       model.Role
	Seasons    []model.SeasonValue
	Age        int
	Active     bool
}

// Components holds the four independently capped parts of the score.
type Components struct {
	Value      float64 `json:"value" yaml:"value"`
	Awards     float64 `json:"awards" yaml:"awards"`
	Milestones float64 `json:"milestones" yaml:"milestones"`
	Trajectory float64 `json:"trajectory" yaml:"trajectory"`
}

// Sum adds the components.
func (c Components) Sum() float64 {
	return c.Value + c.Awards + c.Milestones + c.Trajectory
}

// Counters are the raw tallies behind the components.
type Counters struct {
	Awards            map[string]int `json:"awards" yaml:"awards"`
	UnratedAwards     int            `json:"unrated_awards" yaml:"unrated_awards"`
	MilestonesMet     int            `json:"milestones_met" yaml:"milestones_met"`
	MilestonesPartial int            `json:"milestones_partial" yaml:"milestones_partial"`
	EliteSeasons      int            `json:"elite_seasons" yaml:"elite_seasons"`
	SolidSeasons      int            `json:"solid_seasons" yaml:"solid_seasons"`
	CareerLength      int            `json:"career_length" yaml:"career_length"`
}

// MilestoneCredit is one milestone's contribution.
type MilestoneCredit struct {
	Milestone `yaml:",inline"`
	Current   float64 `json:"current" yaml:"current"`
	Points    float64 `json:"points" yaml:"points"`
	Met       bool    `json:"met" yaml:"met"`
}

// Breakdown is the full scoring result.
type Breakdown struct {
	Overall        int               `json:"overall" yaml:"overall"`
	CompositeRatio float64           `json:"composite_ratio" yaml:"composite_ratio"`
	Components     Components        `json:"components" yaml:"components"`
	Tier           Tier              `json:"tier" yaml:"tier"`
	Probability    float64           `json:"probability" yaml:"probability"`
	Outcome        string            `json:"outcome" yaml:"outcome"`
	Counters       Counters          `json:"counters" yaml:"counters"`
	Milestones     []MilestoneCredit `json:"milestones" yaml:"milestones"`
}

// Scorer is a pure, stateless scoring model. Safe for concurrent use.
type Scorer struct {
	awards     []AwardRule
	milestones []Milestone
	thresholds Thresholds
	outcome    OutcomeMapper
}

// NewScorer creates a Scorer with the given options.
func NewScorer(opts ...Option) *Scorer {
	s := &Scorer{
		thresholds: DefaultThresholds,
		outcome:    DefaultBallotTable(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Thresholds returns the season thresholds in use.
func (s *Scorer) Thresholds() Thresholds { return s.thresholds }

// Milestones returns a copy of the milestone table.
func (s *Scorer) Milestones() []Milestone {
	return append([]Milestone(nil), s.milestones...)
}

// Score computes the breakdown for in.
func (s *Scorer) Score(in Input) Breakdown {
	ratio := CompositeRatio(in.Comparison)

	awards, counts, unrated := awardPoints(s.awards, in.Awards)
	milestones, credits := milestonePoints(s.milestones, in.Role, in.Career)
	elite, solid := s.thresholds.Classify(in.Seasons)

	raw := Components{
		Value:      ValuePoints(ratio),
		Awards:     awards,
		Milestones: milestones,
		Trajectory: trajectoryPoints(elite, solid, in.Active, in.Age),
	}
	overall := int(math.Round(raw.Sum()))
	overall = max(0, min(overall, MaxOverall))
	outcome := s.outcome.Outcome(overall)

	counters := Counters{
		Awards:        counts,
		UnratedAwards: unrated,
		EliteSeasons:  elite,
		SolidSeasons:  solid,
		CareerLength:  len(in.Seasons),
	}
	for _, c := range credits {
		switch {
		case c.Met:
			counters.MilestonesMet++
		case c.Points > 0:
			counters.MilestonesPartial++
		}
	}

	return Breakdown{
		Overall:        overall,
		CompositeRatio: ratio,
		Components: Components{
			Value:      model.Round1(raw.Value),
			Awards:     model.Round1(raw.Awards),
			Milestones: model.Round1(raw.Milestones),
			Trajectory: model.Round1(raw.Trajectory),
		},
		Tier:        TierFor(overall),
		Probability: outcome.Probability,
		Outcome:     outcome.Label,
		Counters:    counters,
		Milestones:  credits,
	}
}

// Package projection extends an active player's career along aging and
// survival curves and rescores the projected career.
package projection

import (
	"math"
	"sort"

	"github.com/okian/cooperstown/internal/domain/aging"
	"github.com/okian/cooperstown/internal/domain/jaws"
	"github.com/okian/cooperstown/internal/domain/model"
	"github.com/okian/cooperstown/internal/domain/scoring"
)

// ReasonNoHistory is reported when there is nothing to project from.
const ReasonNoHistory = "no season history"

// recencyWeights weight the most recent seasons first.
var recencyWeights = []float64{3, 2, 1}

// Input is the projector's view of one player.
type Input struct {
	Seasons     []model.SeasonValue
	SeasonLines []model.SeasonLine
	Career      model.StatLine
	Awards      []model.Award
	Position    string
	Age         int
	Role        model.Role
}

// ProjectedSeason is one simulated future season. Value is the raw aged
// value; Expected is Value weighted by the chance the season is played.
type ProjectedSeason struct {
	Season          int                       `json:"season" yaml:"season"`
	Age             int                       `json:"age" yaml:"age"`
	Value           float64                   `json:"value" yaml:"value"`
	Expected        float64                   `json:"expected" yaml:"expected"`
	PlayProbability float64                   `json:"play_probability" yaml:"play_probability"`
	Survival        float64                   `json:"survival" yaml:"survival"`
	Stats           map[model.StatKey]float64 `json:"stats,omitempty" yaml:"stats,omitempty"`
}

// MilestoneProjection is the chance of reaching one milestone.
type MilestoneProjection struct {
	Milestone  scoring.Milestone `json:"milestone" yaml:"milestone"`
	Current    float64           `json:"current" yaml:"current"`
	Projected  float64           `json:"projected" yaml:"projected"`
	AlreadyMet bool              `json:"already_met" yaml:"already_met"`
	Likelihood float64           `json:"likelihood" yaml:"likelihood"`
	Season     int               `json:"season,omitempty" yaml:"season,omitempty"`
	Age        int               `json:"age,omitempty" yaml:"age,omitempty"`
}

// Projection is the result of Project. When Applicable is false only
// Reason is set.
type Projection struct {
	Applicable               bool                      `json:"applicable" yaml:"applicable"`
	Reason                   string                    `json:"reason,omitempty" yaml:"reason,omitempty"`
	BaselineValue            float64                   `json:"baseline_value" yaml:"baseline_value"`
	PeakValue                float64                   `json:"peak_value" yaml:"peak_value"`
	SeasonsRemaining         int                       `json:"seasons_remaining" yaml:"seasons_remaining"`
	ExpectedSeasonsRemaining float64                   `json:"expected_seasons_remaining" yaml:"expected_seasons_remaining"`
	RetirementAge            int                       `json:"retirement_age" yaml:"retirement_age"`
	CumulativeSurvival       float64                   `json:"cumulative_survival" yaml:"cumulative_survival"`
	Seasons                  []ProjectedSeason         `json:"seasons" yaml:"seasons"`
	CountingStats            map[model.StatKey]float64 `json:"counting_stats" yaml:"counting_stats"`
	CareerValue              jaws.CareerValue          `json:"career_value" yaml:"career_value"`
	Score                    scoring.Breakdown         `json:"score" yaml:"score"`
	Milestones               []MilestoneProjection     `json:"milestones" yaml:"milestones"`
}

// Projector is stateless after construction and safe for concurrent use.
type Projector struct {
	baselines       jaws.Baselines
	scorer          *scoring.Scorer
	tables          aging.Tables
	maxAge          int
	survivalFloor   float64
	baselineFloor   float64
	multiplierFloor float64
	solidBonus      float64
	eliteBonus      float64
}

// NewProjector creates a Projector that rescores projected careers with
// scorer against baselines.
func NewProjector(baselines jaws.Baselines, scorer *scoring.Scorer, opts ...Option) *Projector {
	if scorer == nil {
		scorer = scoring.NewScorer()
	}
	p := &Projector{
		baselines:       baselines,
		scorer:          scorer,
		tables:          aging.Default(),
		maxAge:          defaultMaxAge,
		survivalFloor:   defaultSurvivalFloor,
		baselineFloor:   defaultBaselineFloor,
		multiplierFloor: defaultMultiplierFloor,
		solidBonus:      defaultSolidBonus,
		eliteBonus:      defaultEliteBonus,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Project simulates the remaining career. An empty history is not an
// error; it yields a projection with Applicable set to false. A position
// without a baseline is.
func (p *Projector) Project(in Input) (Projection, error) {
	if len(in.Seasons) == 0 {
		return Projection{Reason: ReasonNoHistory}, nil
	}

	history := chronological(in.Seasons)
	last := history[len(history)-1]
	age := in.Age
	if age <= 0 {
		age = last.Age
	}
	pitcherLike := in.Role.PitcherLike()
	thresholds := p.scorer.Thresholds()

	recent := make([]float64, 0, len(recencyWeights))
	for i := len(history) - 1; i >= 0 && len(recent) < len(recencyWeights); i-- {
		recent = append(recent, model.Finite(history[i].Value))
	}
	baseline := math.Max(weighted(recent), p.baselineFloor)
	currentMult := math.Max(p.tables.Multiplier(float64(age), pitcherLike), p.multiplierFloor)
	peak := baseline / currentMult

	rates := p.countingRates(in, currentMult)
	totals := careerTotals(in)

	out := Projection{
		Applicable:         true,
		BaselineValue:      model.Round1(baseline),
		PeakValue:          model.Round1(peak),
		RetirementAge:      age,
		CumulativeSurvival: 1,
	}

	cumulative := 1.0
	for step := 1; ; step++ {
		a := age + step
		if a > p.maxAge {
			break
		}
		mult := p.tables.Multiplier(float64(a), pitcherLike)
		value := peak * mult
		play := p.tables.PlayProbability(float64(a), pitcherLike)
		if value >= thresholds.Solid {
			play += p.solidBonus
		}
		if value >= thresholds.Elite {
			play += p.eliteBonus
		}
		play = model.Clamp(play, 0, 1)
		next := cumulative * play
		if next < p.survivalFloor {
			break
		}
		cumulative = next

		ps := ProjectedSeason{
			Season:          last.Season + step,
			Age:             a,
			Value:           model.Round1(value),
			Expected:        value * cumulative,
			PlayProbability: play,
			Survival:        cumulative,
		}
		if len(rates) > 0 {
			ps.Stats = make(map[model.StatKey]float64, len(rates))
			for k, r := range rates {
				contrib := r * mult * cumulative
				ps.Stats[k] = contrib
				totals.Add(k, contrib)
			}
		}
		out.Seasons = append(out.Seasons, ps)
		out.ExpectedSeasonsRemaining += cumulative
		out.RetirementAge = a
		out.CumulativeSurvival = cumulative
	}
	out.SeasonsRemaining = len(out.Seasons)
	out.ExpectedSeasonsRemaining = model.Round1(out.ExpectedSeasonsRemaining)
	out.CountingStats = totals.Map()
	out.Milestones = p.milestones(in, out.Seasons)

	combined := make([]model.SeasonValue, 0, len(history)+len(out.Seasons))
	combined = append(combined, history...)
	for _, ps := range out.Seasons {
		combined = append(combined, model.SeasonValue{Season: ps.Season, Age: ps.Age, Value: ps.Expected})
	}
	out.CareerValue = jaws.ComputeCareerValue(combined, in.Position)
	cmp, err := jaws.CompareToBaseline(out.CareerValue, p.baselines)
	if err != nil {
		return Projection{}, err
	}
	out.Score = p.scorer.Score(scoring.Input{
		Comparison: cmp,
		Awards:     in.Awards,
		Career:     totals,
		Role:       in.Role,
		Seasons:    combined,
		Age:        out.RetirementAge,
		Active:     false,
	})
	return out, nil
}

// countingRates returns the aging-normalized per-season rate for each
// counting stat, using the same recency weights as season value. Without
// per-season lines the career average stands in.
func (p *Projector) countingRates(in Input, currentMult float64) map[model.StatKey]float64 {
	keys := in.Role.CountingKeys()
	if len(keys) == 0 {
		return nil
	}
	rates := make(map[model.StatKey]float64, len(keys))

	lines := append([]model.SeasonLine(nil), in.SeasonLines...)
	sort.SliceStable(lines, func(i, j int) bool { return lines[i].Season < lines[j].Season })
	if len(lines) > 0 {
		for _, k := range keys {
			recent := make([]float64, 0, len(recencyWeights))
			for i := len(lines) - 1; i >= 0 && len(recent) < len(recencyWeights); i-- {
				if lines[i].Line == nil {
					continue
				}
				recent = append(recent, lines[i].Line.Stat(k))
			}
			rates[k] = weighted(recent) / currentMult
		}
		return rates
	}

	if in.Career == nil {
		return nil
	}
	n := float64(len(in.Seasons))
	for _, k := range keys {
		rates[k] = in.Career.Stat(k) / n / currentMult
	}
	return rates
}

func (p *Projector) milestones(in Input, seasons []ProjectedSeason) []MilestoneProjection {
	var out []MilestoneProjection
	for _, m := range p.scorer.Milestones() {
		if m.Role != in.Role {
			continue
		}
		var current float64
		if in.Career != nil {
			current = in.Career.Stat(m.Stat)
		}
		mp := MilestoneProjection{Milestone: m, Current: current, Projected: current}
		if m.Met(current) {
			mp.AlreadyMet = true
			mp.Likelihood = 100
			out = append(out, mp)
			continue
		}
		// rate stats are carried forward unchanged
		if m.IsRateStat || m.LowerIsBetter || m.Stat.Rate() {
			out = append(out, mp)
			continue
		}
		running := current
		for _, ps := range seasons {
			running += ps.Stats[m.Stat]
			if mp.Season == 0 && m.Met(running) {
				mp.Likelihood = model.Round1(ps.Survival * 100)
				mp.Season = ps.Season
				mp.Age = ps.Age
			}
		}
		mp.Projected = running
		out = append(out, mp)
	}
	return out
}

func careerTotals(in Input) model.Totals {
	if in.Career != nil && in.Career.Role() == in.Role {
		return model.TotalsOf(in.Career)
	}
	t := model.NewTotals(in.Role)
	for _, k := range in.Role.Keys() {
		t.Set(k, 0)
	}
	return t
}

func chronological(seasons []model.SeasonValue) []model.SeasonValue {
	out := append([]model.SeasonValue(nil), seasons...)
	sort.SliceStable(out, func(i, j int) bool { return out[i].Season < out[j].Season })
	return out
}

// weighted averages values (most recent first) with the leading recency
// weights.
func weighted(values []float64) float64 {
	var sum, total float64
	for i, v := range values {
		if i >= len(recencyWeights) {
			break
		}
		sum += recencyWeights[i] * model.Finite(v)
		total += recencyWeights[i]
	}
	if total == 0 {
		return 0
	}
	return sum / total
}

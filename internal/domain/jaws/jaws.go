// Package jaws reduces season value series to career, peak and blended
// (JAWS) figures, and compares them against positional Hall of Fame
// baselines.
package jaws

import (
	"fmt"
	"sort"

	"github.com/okian/cooperstown/internal/domain/model"
)

// PeakWindow is the number of best seasons summed into peak value.
const PeakWindow = 7

// PeakSeason is one of the seasons counted toward peak value.
type PeakSeason struct {
	Rank              int `json:"rank" yaml:"rank"`
	model.SeasonValue `yaml:",inline"`
}

// CareerValue is the aggregated value of a season series.
type CareerValue struct {
	Career      float64      `json:"career" yaml:"career"`
	Peak        float64      `json:"peak" yaml:"peak"`
	Blended     float64      `json:"blended" yaml:"blended"`
	PeakSeasons []PeakSeason `json:"peak_seasons" yaml:"peak_seasons"`
	Position    string       `json:"position" yaml:"position"`
}

// ComputeCareerValue sums all seasons into career value and the best seven
// into peak value. Seasons with equal value are ranked earliest season first,
// then by input order, so the peak list is reproducible.
func ComputeCareerValue(seasons []model.SeasonValue, position string) CareerValue {
	ranked := make([]model.SeasonValue, len(seasons))
	var career float64
	for i, s := range seasons {
		s.Value = model.Finite(s.Value)
		ranked[i] = s
		career += s.Value
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		if ranked[i].Value != ranked[j].Value {
			return ranked[i].Value > ranked[j].Value
		}
		return ranked[i].Season < ranked[j].Season
	})

	n := len(ranked)
	if n > PeakWindow {
		n = PeakWindow
	}
	peakSeasons := make([]PeakSeason, n)
	var peak float64
	for i := 0; i < n; i++ {
		peak += ranked[i].Value
		peakSeasons[i] = PeakSeason{Rank: i + 1, SeasonValue: ranked[i]}
	}

	career = model.Round1(career)
	peak = model.Round1(peak)
	return CareerValue{
		Career:      career,
		Peak:        peak,
		Blended:     model.Round1((career + peak) / 2),
		PeakSeasons: peakSeasons,
		Position:    position,
	}
}

// Baseline is the historical inductee average at one position.
type Baseline struct {
	Career  float64 `koanf:"career" json:"career" yaml:"career"`
	Peak    float64 `koanf:"peak" json:"peak" yaml:"peak"`
	Blended float64 `koanf:"blended" json:"blended" yaml:"blended"`
}

// Baselines maps a position code to its baseline.
type Baselines map[string]Baseline

// Comparison is a player's value expressed as ratios of the positional
// baseline.
type Comparison struct {
	Player       CareerValue `json:"player" yaml:"player"`
	Baseline     Baseline    `json:"baseline" yaml:"baseline"`
	CareerRatio  float64     `json:"career_ratio" yaml:"career_ratio"`
	PeakRatio    float64     `json:"peak_ratio" yaml:"peak_ratio"`
	BlendedRatio float64     `json:"blended_ratio" yaml:"blended_ratio"`
}

// CompareToBaseline divides the player's values by the baseline for the
// player's position. A position without a baseline is a configuration error.
func CompareToBaseline(cv CareerValue, baselines Baselines) (Comparison, error) {
	b, ok := baselines[cv.Position]
	if !ok {
		return Comparison{}, fmt.Errorf("compare %q: %w", cv.Position, ErrUnknownPosition)
	}
	return Comparison{
		Player:       cv,
		Baseline:     b,
		CareerRatio:  ratio(cv.Career, b.Career),
		PeakRatio:    ratio(cv.Peak, b.Peak),
		BlendedRatio: ratio(cv.Blended, b.Blended),
	}, nil
}

func ratio(v, base float64) float64 {
	if base <= 0 {
		return 0
	}
	return model.Finite(v / base)
}

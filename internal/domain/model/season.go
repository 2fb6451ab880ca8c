// Package model contains domain value types passed between layers.
package model

import "math"

// SeasonValue is one season of aggregate value (WAR for baseball, point
// shares for hockey).
type SeasonValue struct {
	Season int     `json:"season" yaml:"season"`
	Value  float64 `json:"value" yaml:"value"`
	Age    int     `json:"age" yaml:"age"`
	Team   string  `json:"team,omitempty" yaml:"team,omitempty"`
}

// Award is a single award occurrence. Occurrences are counted, not weighted
// by recency.
type Award struct {
	Type   string `json:"type" yaml:"type"`
	Season int    `json:"season" yaml:"season"`
}

// Induction describes how an inducted player entered the Hall.
type Induction struct {
	Year    int     `json:"year" yaml:"year"`
	Method  string  `json:"method,omitempty" yaml:"method,omitempty"`
	Ballot  int     `json:"ballot,omitempty" yaml:"ballot,omitempty"`
	VotePct float64 `json:"vote_pct,omitempty" yaml:"vote_pct,omitempty"`
}

// Finite returns x, or 0 when x is NaN or infinite. Every sum in the engine
// goes through it so a single bad field cannot poison a total.
func Finite(x float64) float64 {
	if math.IsNaN(x) || math.IsInf(x, 0) {
		return 0
	}
	return x
}

// Round1 rounds to one decimal place.
func Round1(x float64) float64 {
	return math.Round(x*10) / 10
}

// Clamp bounds x to [lo, hi].
func Clamp(x, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, x))
}

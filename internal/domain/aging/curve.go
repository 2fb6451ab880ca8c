// Package aging holds the age-indexed curves used to project careers.
//
// Curves are data: named, versioned anchor tables. Interpolation is the only
// logic here, so a curve revision is a table change.
package aging

import "sort"

// Point is a single anchor of a curve.
type Point struct {
	Age   float64 `koanf:"age" json:"age" yaml:"age"`
	Value float64 `koanf:"value" json:"value" yaml:"value"`
}

// Curve is a piecewise-linear function of age.
type Curve struct {
	Name    string  `json:"name" yaml:"name"`
	Version string  `json:"version" yaml:"version"`
	Points  []Point `json:"points" yaml:"points"`
}

// At interpolates the curve at age. Ages outside the anchor range take the
// nearest anchor's value. An empty curve reads 0.
func (c Curve) At(age float64) float64 {
	pts := c.Points
	if len(pts) == 0 {
		return 0
	}
	if age <= pts[0].Age {
		return pts[0].Value
	}
	last := pts[len(pts)-1]
	if age >= last.Age {
		return last.Value
	}
	// first anchor strictly above age
	i := sort.Search(len(pts), func(i int) bool { return pts[i].Age > age })
	lo, hi := pts[i-1], pts[i]
	if hi.Age == lo.Age {
		return hi.Value
	}
	t := (age - lo.Age) / (hi.Age - lo.Age)
	return lo.Value + t*(hi.Value-lo.Value)
}

// Sorted reports whether anchors are in strictly increasing age order.
func (c Curve) Sorted() bool {
	for i := 1; i < len(c.Points); i++ {
		if c.Points[i].Age <= c.Points[i-1].Age {
			return false
		}
	}
	return true
}

// Tables groups the curves the projector reads.
type Tables struct {
	Hitter          Curve `json:"hitter" yaml:"hitter"`
	Pitcher         Curve `json:"pitcher" yaml:"pitcher"`
	Survival        Curve `json:"survival" yaml:"survival"`
	PitcherSurvival Curve `json:"pitcher_survival" yaml:"pitcher_survival"`
}

// Multiplier returns expected performance relative to peak at age.
func (t Tables) Multiplier(age float64, pitcherLike bool) float64 {
	if pitcherLike {
		return t.Pitcher.At(age)
	}
	return t.Hitter.At(age)
}

// PlayProbability returns the base probability of playing the season at age.
func (t Tables) PlayProbability(age float64, pitcherLike bool) float64 {
	if pitcherLike && len(t.PitcherSurvival.Points) > 0 {
		return t.PitcherSurvival.At(age)
	}
	return t.Survival.At(age)
}

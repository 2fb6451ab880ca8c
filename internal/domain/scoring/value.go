package scoring

import (
	"math"

	"github.com/okian/cooperstown/internal/domain/jaws"
	"github.com/okian/cooperstown/internal/domain/model"
)

// Composite ratio weights. Blended value dominates.
const (
	blendedRatioWeight = 0.6
	careerRatioWeight  = 0.2
	peakRatioWeight    = 0.2

	// ratioPrecision trims float noise so exact breakpoints land exactly.
	ratioPrecision = 1e6
)

// Segment is one branch of a piecewise-linear scoring function. It applies
// when the input is >= Min and yields Base + Slope*(x - Anchor).
type Segment struct {
	Min    float64
	Anchor float64
	Base   float64
	Slope  float64
}

// Piecewise is an ordered breakpoint table, highest Min first.
type Piecewise []Segment

// Eval returns the value of the first segment whose Min is <= x.
func (p Piecewise) Eval(x float64) float64 {
	for _, s := range p {
		if x >= s.Min {
			return s.Base + s.Slope*(x-s.Anchor)
		}
	}
	return 0
}

// ValueCurve maps the composite JAWS ratio to value points (0-40).
//
// The bottom branch is anchored at 0, not at 0.5, so it does not extend
// into the next branch: at r=0.75 the 0.75 branch gives 20 while r*20
// would give 15. This is intentional and pinned by tests.
var ValueCurve = Piecewise{
	{Min: 1.25, Anchor: 1.25, Base: 40},
	{Min: 1.00, Anchor: 1.00, Base: 32, Slope: 32},
	{Min: 0.75, Anchor: 0.75, Base: 20, Slope: 48},
	{Min: 0.50, Anchor: 0.50, Base: 10, Slope: 40},
	{Min: math.Inf(-1), Anchor: 0, Base: 0, Slope: 20},
}

// CompositeRatio blends the three baseline ratios into one.
func CompositeRatio(c jaws.Comparison) float64 {
	r := blendedRatioWeight*model.Finite(c.BlendedRatio) +
		careerRatioWeight*model.Finite(c.CareerRatio) +
		peakRatioWeight*model.Finite(c.PeakRatio)
	return math.Round(r*ratioPrecision) / ratioPrecision
}

// ValuePoints scores a composite ratio, clamped to [0, MaxValuePoints].
func ValuePoints(r float64) float64 {
	return model.Clamp(ValueCurve.Eval(model.Finite(r)), 0, MaxValuePoints)
}

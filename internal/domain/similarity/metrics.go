package similarity

import (
	"math"
	"sort"

	"github.com/okian/cooperstown/internal/domain/jaws"
	"github.com/okian/cooperstown/internal/domain/model"
	"github.com/okian/cooperstown/internal/domain/scoring"
)

// Shape classifies how value is distributed across a career.
type Shape string

// Trajectory shapes.
const (
	ShapeStandard    Shape = "standard"
	ShapeConsistent  Shape = "consistent"
	ShapeEarlyPeak   Shape = "early-peak"
	ShapeLateBloomer Shape = "late-bloomer"
)

// Shape classification bounds.
const (
	minShapeSeasons    = 5
	consistentMaxCV    = 0.35
	consistentMinShare = 0.4
	consistentMaxShare = 0.6
	earlyPeakMinShare  = 0.6
	lateBloomMaxShare  = 0.4
)

// Metrics is the comparison vector extracted from a season history.
type Metrics struct {
	Career      float64 `json:"career" yaml:"career"`
	Peak        float64 `json:"peak" yaml:"peak"`
	Blended     float64 `json:"blended" yaml:"blended"`
	Length      float64 `json:"length" yaml:"length"`
	Elite       float64 `json:"elite" yaml:"elite"`
	Solid       float64 `json:"solid" yaml:"solid"`
	Best        float64 `json:"best" yaml:"best"`
	Consistency float64 `json:"consistency" yaml:"consistency"`
	Shape       Shape   `json:"shape" yaml:"shape"`
}

// Extract computes the metrics vector. Consistency is the population
// standard deviation of season values.
func Extract(seasons []model.SeasonValue, t scoring.Thresholds) Metrics {
	cv := jaws.ComputeCareerValue(seasons, "")
	elite, solid := t.Classify(seasons)
	m := Metrics{
		Career:  cv.Career,
		Peak:    cv.Peak,
		Blended: cv.Blended,
		Length:  float64(len(seasons)),
		Elite:   float64(elite),
		Solid:   float64(solid),
		Shape:   ShapeStandard,
	}
	if len(cv.PeakSeasons) > 0 {
		m.Best = cv.PeakSeasons[0].Value
	}
	values := make([]float64, len(seasons))
	for i, s := range seasons {
		values[i] = model.Finite(s.Value)
	}
	m.Consistency = stddev(values)
	m.Shape = ShapeOf(seasons)
	return m
}

// ShapeOf classifies a career's trajectory. Careers shorter than five
// seasons, or with no positive total, are standard.
func ShapeOf(seasons []model.SeasonValue) Shape {
	if len(seasons) < minShapeSeasons {
		return ShapeStandard
	}
	ordered := append([]model.SeasonValue(nil), seasons...)
	sort.SliceStable(ordered, func(i, j int) bool { return ordered[i].Season < ordered[j].Season })

	values := make([]float64, len(ordered))
	var total, front float64
	half := len(ordered) / 2
	for i, s := range ordered {
		v := model.Finite(s.Value)
		values[i] = v
		total += v
		if i < half {
			front += v
		}
	}
	if total <= 0 {
		return ShapeStandard
	}
	share := front / total
	cv := stddev(values) / (total / float64(len(values)))

	switch {
	case cv < consistentMaxCV && share >= consistentMinShare && share <= consistentMaxShare:
		return ShapeConsistent
	case share >= earlyPeakMinShare:
		return ShapeEarlyPeak
	case share < lateBloomMaxShare:
		return ShapeLateBloomer
	default:
		return ShapeStandard
	}
}

func stddev(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	var mean float64
	for _, v := range values {
		mean += v
	}
	mean /= float64(len(values))
	var sq float64
	for _, v := range values {
		sq += (v - mean) * (v - mean)
	}
	return math.Sqrt(sq / float64(len(values)))
}

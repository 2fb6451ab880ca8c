package scoring

import (
	"sort"

	"github.com/okian/cooperstown/internal/domain/model"
)

// Outcome is the ballot probability (0-100) and a descriptive label.
type Outcome struct {
	Probability float64 `json:"probability" yaml:"probability"`
	Label       string  `json:"label" yaml:"label"`
}

// OutcomeMapper turns an overall score into an Outcome.
type OutcomeMapper interface {
	Outcome(overall int) Outcome
}

// ProbabilityAnchor pins the probability at one overall score.
type ProbabilityAnchor struct {
	Score       float64 `koanf:"score" json:"score" yaml:"score"`
	Probability float64 `koanf:"probability" json:"probability" yaml:"probability"`
}

// OutcomeLabel applies to scores >= Min.
type OutcomeLabel struct {
	Min   int    `koanf:"min" json:"min" yaml:"min"`
	Label string `koanf:"label" json:"label" yaml:"label"`
}

// BallotTable interpolates probability between anchors and picks the label
// with the highest Min not above the score.
type BallotTable struct {
	Anchors []ProbabilityAnchor `koanf:"anchors" json:"anchors" yaml:"anchors"`
	Labels  []OutcomeLabel      `koanf:"labels" json:"labels" yaml:"labels"`
}

// DefaultBallotTable is used when a sport supplies no table.
func DefaultBallotTable() BallotTable {
	return BallotTable{
		Anchors: []ProbabilityAnchor{
			{Score: 0, Probability: 1},
			{Score: 25, Probability: 5},
			{Score: 45, Probability: 20},
			{Score: 60, Probability: 45},
			{Score: 75, Probability: 75},
			{Score: 90, Probability: 95},
			{Score: 100, Probability: 99},
		},
		Labels: []OutcomeLabel{
			{Min: 90, Label: "Elected on the first ballot"},
			{Min: 75, Label: "Elected within a few ballots"},
			{Min: 60, Label: "Elected after a long ballot wait"},
			{Min: 45, Label: "Veterans committee candidate"},
			{Min: 25, Label: "Drops off the ballot"},
			{Min: 0, Label: "Not on the ballot"},
		},
	}
}

// Outcome implements OutcomeMapper.
func (b BallotTable) Outcome(overall int) Outcome {
	return Outcome{Probability: b.probability(float64(overall)), Label: b.label(overall)}
}

func (b BallotTable) probability(score float64) float64 {
	pts := append([]ProbabilityAnchor(nil), b.Anchors...)
	if len(pts) == 0 {
		return 0
	}
	sort.Slice(pts, func(i, j int) bool { return pts[i].Score < pts[j].Score })
	if score <= pts[0].Score {
		return model.Clamp(pts[0].Probability, 0, 100)
	}
	last := pts[len(pts)-1]
	if score >= last.Score {
		return model.Clamp(last.Probability, 0, 100)
	}
	i := sort.Search(len(pts), func(i int) bool { return pts[i].Score >= score })
	lo, hi := pts[i-1], pts[i]
	t := (score - lo.Score) / (hi.Score - lo.Score)
	return model.Clamp(model.Round1(lo.Probability+t*(hi.Probability-lo.Probability)), 0, 100)
}

func (b BallotTable) label(overall int) string {
	best := ""
	bestMin := -1
	for _, l := range b.Labels {
		if overall >= l.Min && l.Min > bestMin {
			best, bestMin = l.Label, l.Min
		}
	}
	return best
}

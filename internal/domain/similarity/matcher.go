// Package similarity finds the inducted players whose careers most
// resemble a query player's.
package similarity

import (
	"math"
	"sort"

	"github.com/okian/cooperstown/internal/domain/model"
	"github.com/okian/cooperstown/internal/domain/scoring"
)

// Distance weights. They sum to 1.
const (
	weightCareer      = 0.20
	weightBlended     = 0.20
	weightPeak        = 0.18
	weightElite       = 0.12
	weightBest        = 0.10
	weightLength      = 0.08
	weightSolid       = 0.07
	weightConsistency = 0.05
)

const (
	defaultLimit     = 3
	distanceDecay    = 3.0
	shapeMatchBonus  = 0.05
	affinityFloor    = 0.6
	affinityRange    = 0.4
	strengthMinRatio = 0.95
	closeMinRatio    = 0.75
)

// Scales normalize each metric before differencing.
type Scales struct {
	Career      float64 `koanf:"career" json:"career" yaml:"career"`
	Peak        float64 `koanf:"peak" json:"peak" yaml:"peak"`
	Blended     float64 `koanf:"blended" json:"blended" yaml:"blended"`
	Length      float64 `koanf:"length" json:"length" yaml:"length"`
	Elite       float64 `koanf:"elite" json:"elite" yaml:"elite"`
	Solid       float64 `koanf:"solid" json:"solid" yaml:"solid"`
	Best        float64 `koanf:"best" json:"best" yaml:"best"`
	Consistency float64 `koanf:"consistency" json:"consistency" yaml:"consistency"`
}

// DefaultScales fit WAR-denominated careers.
var DefaultScales = Scales{
	Career: 80, Peak: 50, Blended: 65, Length: 20,
	Elite: 10, Solid: 10, Best: 10, Consistency: 3,
}

// Class buckets a dimension ratio.
type Class string

// Dimension classes.
const (
	ClassStrength Class = "strength"
	ClassClose    Class = "close"
	ClassGap      Class = "gap"
)

// Dimension compares one human-readable metric of the query player against
// an inductee. Ratio is query over inductee.
type Dimension struct {
	Name     string  `json:"name" yaml:"name"`
	Query    float64 `json:"query" yaml:"query"`
	Inductee float64 `json:"inductee" yaml:"inductee"`
	Ratio    float64 `json:"ratio" yaml:"ratio"`
	Class    Class   `json:"class" yaml:"class"`
}

// Comparable is one matched inductee.
type Comparable struct {
	ID         string           `json:"id" yaml:"id"`
	Name       string           `json:"name" yaml:"name"`
	Position   string           `json:"position" yaml:"position"`
	Score      float64          `json:"score" yaml:"score"`
	Distance   float64          `json:"distance" yaml:"distance"`
	Affinity   float64          `json:"affinity" yaml:"affinity"`
	ShapeMatch bool             `json:"shape_match" yaml:"shape_match"`
	Metrics    Metrics          `json:"metrics" yaml:"metrics"`
	Induction  *model.Induction `json:"induction,omitempty" yaml:"induction,omitempty"`
	Strengths  []Dimension      `json:"strengths" yaml:"strengths"`
	Close      []Dimension      `json:"close" yaml:"close"`
	Gaps       []Dimension      `json:"gaps" yaml:"gaps"`
}

// Result is the answer to one query.
type Result struct {
	Comparables []Comparable `json:"comparables" yaml:"comparables"`
	Query       Metrics      `json:"query" yaml:"query"`
}

// Option applies a configuration option to the Matcher.
type Option func(*Matcher)

// WithLimit sets how many comparables are returned.
func WithLimit(n int) Option {
	return func(m *Matcher) {
		if n > 0 {
			m.limit = n
		}
	}
}

// WithScales sets the normalization scales.
func WithScales(s Scales) Option {
	return func(m *Matcher) {
		m.scales = s
	}
}

// WithThresholds sets the elite/solid thresholds used to count seasons.
func WithThresholds(t scoring.Thresholds) Option {
	return func(m *Matcher) {
		m.thresholds = t
	}
}

// WithAffinity sets the position affinity table.
func WithAffinity(t AffinityTable) Option {
	return func(m *Matcher) {
		m.affinity = t
	}
}

type entry struct {
	player  model.Player
	metrics Metrics
}

// Matcher holds a read-only corpus with precomputed metrics. It is safe
// for concurrent use.
type Matcher struct {
	corpus     []entry
	limit      int
	scales     Scales
	thresholds scoring.Thresholds
	affinity   AffinityTable
}

// NewMatcher precomputes metrics for every corpus member. Options are
// applied before extraction so thresholds take effect.
func NewMatcher(corpus []model.Player, opts ...Option) *Matcher {
	m := &Matcher{
		limit:      defaultLimit,
		scales:     DefaultScales,
		thresholds: scoring.DefaultThresholds,
	}
	for _, opt := range opts {
		opt(m)
	}
	m.corpus = make([]entry, 0, len(corpus))
	for _, p := range corpus {
		m.corpus = append(m.corpus, entry{player: p, metrics: Extract(p.Seasons, m.thresholds)})
	}
	return m
}

// Size returns the corpus size.
func (m *Matcher) Size() int { return len(m.corpus) }

// FindSimilar ranks the corpus against the query history and returns the
// top matches, best first. Corpus members with excludeID are skipped.
func (m *Matcher) FindSimilar(seasons []model.SeasonValue, position, excludeID string) Result {
	q := Extract(seasons, m.thresholds)
	matches := make([]Comparable, 0, len(m.corpus))
	for _, e := range m.corpus {
		if excludeID != "" && e.player.ID == excludeID {
			continue
		}
		d := m.distance(q, e.metrics)
		aff := m.affinity.Affinity(position, e.player.Position)
		match := q.Shape == e.metrics.Shape
		sim := math.Exp(-distanceDecay * d)
		if match {
			sim += shapeMatchBonus
		}
		sim *= affinityFloor + affinityRange*aff
		sim = model.Clamp(sim, 0, 1)

		c := Comparable{
			ID:         e.player.ID,
			Name:       e.player.Name,
			Position:   e.player.Position,
			Score:      model.Round1(sim * 100),
			Distance:   d,
			Affinity:   aff,
			ShapeMatch: match,
			Metrics:    e.metrics,
			Induction:  e.player.Induction,
		}
		c.Strengths, c.Close, c.Gaps = classify(dimensions(q, e.metrics))
		matches = append(matches, c)
	}

	sort.SliceStable(matches, func(i, j int) bool {
		if matches[i].Score != matches[j].Score {
			return matches[i].Score > matches[j].Score
		}
		if matches[i].Name != matches[j].Name {
			return matches[i].Name < matches[j].Name
		}
		return matches[i].ID < matches[j].ID
	})
	if len(matches) > m.limit {
		matches = matches[:m.limit]
	}
	return Result{Comparables: matches, Query: q}
}

func (m *Matcher) distance(a, b Metrics) float64 {
	terms := []struct{ w, x, y, scale float64 }{
		{weightCareer, a.Career, b.Career, m.scales.Career},
		{weightBlended, a.Blended, b.Blended, m.scales.Blended},
		{weightPeak, a.Peak, b.Peak, m.scales.Peak},
		{weightElite, a.Elite, b.Elite, m.scales.Elite},
		{weightBest, a.Best, b.Best, m.scales.Best},
		{weightLength, a.Length, b.Length, m.scales.Length},
		{weightSolid, a.Solid, b.Solid, m.scales.Solid},
		{weightConsistency, a.Consistency, b.Consistency, m.scales.Consistency},
	}
	var sum float64
	for _, t := range terms {
		if t.scale <= 0 {
			continue
		}
		d := (t.x - t.y) / t.scale
		sum += t.w * d * d
	}
	return math.Sqrt(sum)
}

func dimensions(q, c Metrics) []Dimension {
	return []Dimension{
		dimension("Career Value", q.Career, c.Career),
		dimension("Peak Value", q.Peak, c.Peak),
		dimension("JAWS", q.Blended, c.Blended),
		dimension("Elite Seasons", q.Elite, c.Elite),
		dimension("Solid Seasons", q.Solid, c.Solid),
		dimension("Best Season", q.Best, c.Best),
		dimension("Career Length", q.Length, c.Length),
	}
}

func dimension(name string, query, inductee float64) Dimension {
	var r float64
	switch {
	case inductee > 0:
		r = query / inductee
	case query <= 0:
		r = 1
	default:
		r = 2
	}
	d := Dimension{Name: name, Query: query, Inductee: inductee, Ratio: math.Round(r*100) / 100}
	switch {
	case r >= strengthMinRatio:
		d.Class = ClassStrength
	case r >= closeMinRatio:
		d.Class = ClassClose
	default:
		d.Class = ClassGap
	}
	return d
}

func classify(dims []Dimension) (strengths, near, gaps []Dimension) {
	for _, d := range dims {
		switch d.Class {
		case ClassStrength:
			strengths = append(strengths, d)
		case ClassClose:
			near = append(near, d)
		default:
			gaps = append(gaps, d)
		}
	}
	return strengths, near, gaps
}

package scoring_test

import (
	"errors"
	"math"
	"testing"

	"github.com/okian/cooperstown/internal/domain/jaws"
	"github.com/okian/cooperstown/internal/domain/model"
	"github.com/okian/cooperstown/internal/domain/scoring"
	. "github.com/smartystreets/goconvey/convey"
)

func comparisonAt(r float64) jaws.Comparison {
	return jaws.Comparison{CareerRatio: r, PeakRatio: r, BlendedRatio: r}
}

func seasons(values ...float64) []model.SeasonValue {
	out := make([]model.SeasonValue, len(values))
	for i, v := range values {
		out[i] = model.SeasonValue{Season: 1990 + i, Value: v, Age: 22 + i}
	}
	return out
}

func TestValuePoints(t *testing.T) {
	Convey("Given the value curve breakpoints", t, func() {
		Convey("Then each branch starts where the table says", func() {
			So(scoring.ValuePoints(1.25), ShouldEqual, 40)
			So(scoring.ValuePoints(1.0), ShouldEqual, 32)
			So(scoring.ValuePoints(0.75), ShouldEqual, 20)
			So(scoring.ValuePoints(0.5), ShouldEqual, 10)
			So(scoring.ValuePoints(0.25), ShouldEqual, 5)
		})

		Convey("Then r=0.75 scores 20, not the 15 the bottom branch would give", func() {
			So(scoring.ValuePoints(0.75), ShouldEqual, 20)
			So(0.75*20, ShouldEqual, 15)
		})

		Convey("Then inner points follow the branch slopes", func() {
			So(scoring.ValuePoints(1.125), ShouldAlmostEqual, 36, 1e-9)
			So(scoring.ValuePoints(0.875), ShouldAlmostEqual, 26, 1e-9)
			So(scoring.ValuePoints(0.625), ShouldAlmostEqual, 15, 1e-9)
		})

		Convey("Then output stays inside 0..40", func() {
			So(scoring.ValuePoints(9), ShouldEqual, 40)
			So(scoring.ValuePoints(-3), ShouldEqual, 0)
			So(scoring.ValuePoints(math.NaN()), ShouldEqual, 0)
		})
	})
}

func TestScore(t *testing.T) {
	Convey("Given a scorer with no awards or milestones configured", t, func() {
		s := scoring.NewScorer()

		Convey("When every sub-ratio is exactly 1.0", func() {
			b := s.Score(scoring.Input{Comparison: comparisonAt(1.0)})

			Convey("Then the composite ratio is 1 and value is 32", func() {
				So(b.CompositeRatio, ShouldEqual, 1.0)
				So(b.Components.Value, ShouldEqual, 32)
				So(b.Overall, ShouldEqual, 32)
				So(b.Tier, ShouldEqual, scoring.TierUnlikely)
			})
		})

		Convey("When the ratios differ", func() {
			b := s.Score(scoring.Input{Comparison: jaws.Comparison{
				BlendedRatio: 1.0, CareerRatio: 1.5, PeakRatio: 0.5,
			}})

			Convey("Then blended dominates the composite", func() {
				So(b.CompositeRatio, ShouldAlmostEqual, 1.0, 1e-9)
			})
		})
	})

	Convey("Given a hits milestone at 3000", t, func() {
		hits := scoring.Milestone{
			Stat: model.StatHits, Threshold: 3000, Label: "3,000 Hits",
			Role: model.RoleHitter, Weight: 1,
		}
		s := scoring.NewScorer(scoring.WithMilestones([]scoring.Milestone{hits}))

		Convey("When the player has 2850 hits", func() {
			b := s.Score(scoring.Input{
				Role:   model.RoleHitter,
				Career: model.HittingLine{Hits: 2850},
			})

			Convey("Then the credit is positive but below full weight", func() {
				So(b.Components.Milestones, ShouldBeGreaterThan, 0)
				So(b.Components.Milestones, ShouldBeLessThan, hits.Points())
				So(b.Components.Milestones, ShouldAlmostEqual, 7.5, 0.05)
				So(b.Counters.MilestonesPartial, ShouldEqual, 1)
				So(b.Counters.MilestonesMet, ShouldEqual, 0)
			})
		})

		Convey("When the player has 3000 hits", func() {
			b := s.Score(scoring.Input{Role: model.RoleHitter, Career: model.HittingLine{Hits: 3000}})

			Convey("Then full credit is given", func() {
				So(b.Components.Milestones, ShouldEqual, 10)
				So(b.Counters.MilestonesMet, ShouldEqual, 1)
			})
		})

		Convey("When the player is below the near-miss band", func() {
			b := s.Score(scoring.Input{Role: model.RoleHitter, Career: model.HittingLine{Hits: 2300}})

			Convey("Then nothing is credited", func() {
				So(b.Components.Milestones, ShouldEqual, 0)
			})
		})

		Convey("When the player is a pitcher", func() {
			b := s.Score(scoring.Input{Role: model.RolePitcher, Career: model.PitchingLine{Wins: 300}})

			Convey("Then the hitter milestone does not apply", func() {
				So(b.Components.Milestones, ShouldEqual, 0)
				So(b.Milestones, ShouldBeEmpty)
			})
		})
	})

	Convey("Given a lower-is-better ERA milestone", t, func() {
		era := scoring.Milestone{
			Stat: model.StatERA, Threshold: 3.0, Label: "Sub-3.00 ERA",
			Role: model.RolePitcher, Weight: 0.6, LowerIsBetter: true, IsRateStat: true,
		}

		Convey("Then meeting it gives full credit", func() {
			So(era.Credit(2.8), ShouldAlmostEqual, 6, 1e-9)
		})

		Convey("Then being inside 115% ramps linearly", func() {
			So(era.Credit(3.3), ShouldAlmostEqual, 2, 1e-9)
			So(era.Credit(3.5), ShouldEqual, 0)
		})

		Convey("Then a zero value is treated as missing", func() {
			So(era.Credit(0), ShouldEqual, 0)
			So(era.Met(0), ShouldBeFalse)
		})

		Convey("When a games qualifier is set and the player falls short", func() {
			era.MinGames = 300
			s := scoring.NewScorer(scoring.WithMilestones([]scoring.Milestone{era}))
			b := s.Score(scoring.Input{Role: model.RolePitcher, Career: model.PitchingLine{Games: 120, ERA: 2.5}})

			Convey("Then the rate milestone is not credited", func() {
				So(b.Components.Milestones, ShouldEqual, 0)
			})
		})
	})

	Convey("Given the trajectory component", t, func() {
		s := scoring.NewScorer()
		vals := []float64{}
		for i := 0; i < 10; i++ {
			vals = append(vals, 6)
		}
		for i := 0; i < 20; i++ {
			vals = append(vals, 3.5)
		}

		Convey("When a young active player has many strong seasons", func() {
			b := s.Score(scoring.Input{Seasons: seasons(vals...), Active: true, Age: 28})

			Convey("Then both tallies cap and the bonus applies", func() {
				So(b.Counters.EliteSeasons, ShouldEqual, 10)
				So(b.Counters.SolidSeasons, ShouldEqual, 20)
				So(b.Counters.CareerLength, ShouldEqual, 30)
				So(b.Components.Trajectory, ShouldEqual, 15)
			})
		})

		Convey("When the player is past 30", func() {
			b := s.Score(scoring.Input{Seasons: seasons(vals...), Active: true, Age: 31})

			Convey("Then no bonus applies", func() {
				So(b.Components.Trajectory, ShouldEqual, 12.5)
			})
		})

		Convey("When a season sits exactly on a threshold", func() {
			b := s.Score(scoring.Input{Seasons: seasons(5, 3, 2.9)})

			Convey("Then the lower edge is inclusive", func() {
				So(b.Counters.EliteSeasons, ShouldEqual, 1)
				So(b.Counters.SolidSeasons, ShouldEqual, 1)
				So(b.Components.Trajectory, ShouldEqual, 2)
			})
		})
	})

	Convey("Given an award table and absurd inputs", t, func() {
		rules := []scoring.AwardRule{
			{Type: "MVP", Label: "MVP", Points: 5, Cap: 15},
			{Type: "AllStar", Label: "All-Star", Points: 0.5, Cap: 5},
			{Type: "GoldGlove", Label: "Gold Glove", Points: 0.5, Cap: 3},
		}
		ms := []scoring.Milestone{
			{Stat: model.StatHits, Threshold: 3000, Role: model.RoleHitter, Weight: 1},
			{Stat: model.StatHomeRuns, Threshold: 500, Role: model.RoleHitter, Weight: 1},
			{Stat: model.StatRBI, Threshold: 1500, Role: model.RoleHitter, Weight: 1},
		}
		s := scoring.NewScorer(scoring.WithAwardRules(rules), scoring.WithMilestones(ms))

		var awards []model.Award
		for i := 0; i < 500; i++ {
			awards = append(awards, model.Award{Type: "MVP"}, model.Award{Type: "AllStar"}, model.Award{Type: "GoldGlove"})
		}
		awards = append(awards, model.Award{Type: "Comeback"})
		vals := make([]float64, 25)
		for i := range vals {
			vals[i] = 12
		}

		b := s.Score(scoring.Input{
			Comparison: comparisonAt(50),
			Awards:     awards,
			Role:       model.RoleHitter,
			Career:     model.HittingLine{Hits: 5000, HomeRuns: 900, RBI: 2500},
			Seasons:    seasons(vals...),
			Active:     true,
			Age:        25,
		})

		Convey("Then every component is clamped", func() {
			So(b.Components.Value, ShouldEqual, 40)
			So(b.Components.Awards, ShouldEqual, 23)
			So(b.Components.Milestones, ShouldEqual, 20)
			So(b.Components.Trajectory, ShouldEqual, 10)
			So(b.Overall, ShouldEqual, 93)
			So(b.Tier, ShouldEqual, scoring.TierLock)
		})

		Convey("Then unknown award types are counted but not scored", func() {
			So(b.Counters.Awards["MVP"], ShouldEqual, 500)
			So(b.Counters.UnratedAwards, ShouldEqual, 1)
		})
	})

	Convey("Given every component at its cap", t, func() {
		rules := []scoring.AwardRule{{Type: "MVP", Points: 5, Cap: 100}}
		ms := []scoring.Milestone{{Stat: model.StatHits, Threshold: 1, Role: model.RoleHitter, Weight: 100}}
		s := scoring.NewScorer(scoring.WithAwardRules(rules), scoring.WithMilestones(ms))
		awards := make([]model.Award, 40)
		for i := range awards {
			awards[i] = model.Award{Type: "MVP"}
		}
		vals := make([]float64, 20)
		for i := range vals {
			vals[i] = 9
			if i%2 == 1 {
				vals[i] = 4
			}
		}
		b := s.Score(scoring.Input{
			Comparison: comparisonAt(3), Awards: awards, Role: model.RoleHitter,
			Career: model.HittingLine{Hits: 4000}, Seasons: seasons(vals...), Active: true, Age: 29,
		})

		Convey("Then overall is exactly 100", func() {
			So(b.Overall, ShouldEqual, 100)
			So(b.Components.Awards, ShouldEqual, 25)
			So(b.Components.Milestones, ShouldEqual, 20)
			So(b.Components.Trajectory, ShouldEqual, 15)
		})
	})

	Convey("Given garbage ratios", t, func() {
		b := scoring.NewScorer().Score(scoring.Input{Comparison: jaws.Comparison{
			BlendedRatio: math.NaN(), CareerRatio: math.Inf(1), PeakRatio: -4,
		}})

		Convey("Then the score is still inside range", func() {
			So(b.Overall, ShouldBeBetweenOrEqual, 0, 100)
			So(math.IsNaN(b.Components.Value), ShouldBeFalse)
		})
	})
}

func TestTierFor(t *testing.T) {
	Convey("Given the tier floors", t, func() {
		Convey("Then lower edges are inclusive", func() {
			So(scoring.TierFor(100), ShouldEqual, scoring.TierLock)
			So(scoring.TierFor(90), ShouldEqual, scoring.TierLock)
			So(scoring.TierFor(89), ShouldEqual, scoring.TierStrong)
			So(scoring.TierFor(75), ShouldEqual, scoring.TierStrong)
			So(scoring.TierFor(74), ShouldEqual, scoring.TierSolid)
			So(scoring.TierFor(60), ShouldEqual, scoring.TierSolid)
			So(scoring.TierFor(59), ShouldEqual, scoring.TierBorderline)
			So(scoring.TierFor(45), ShouldEqual, scoring.TierBorderline)
			So(scoring.TierFor(44), ShouldEqual, scoring.TierUnlikely)
			So(scoring.TierFor(25), ShouldEqual, scoring.TierUnlikely)
			So(scoring.TierFor(24), ShouldEqual, scoring.TierNotCaliber)
			So(scoring.TierFor(0), ShouldEqual, scoring.TierNotCaliber)
		})

		Convey("Then the tier never decreases as the score rises", func() {
			prev := scoring.TierFor(0)
			for o := 1; o <= 100; o++ {
				cur := scoring.TierFor(o)
				So(int(cur), ShouldBeGreaterThanOrEqualTo, int(prev))
				prev = cur
			}
		})

		Convey("Then labels round-trip through text", func() {
			text, err := scoring.TierStrong.MarshalText()
			So(err, ShouldBeNil)
			So(string(text), ShouldEqual, "Strong Candidate")

			var tier scoring.Tier
			So(tier.UnmarshalText([]byte("First Ballot Lock")), ShouldBeNil)
			So(tier, ShouldEqual, scoring.TierLock)
			So(errors.Is(tier.UnmarshalText([]byte("Hall of Very Good")), scoring.ErrUnknownTier), ShouldBeTrue)
		})
	})
}

func TestBallotTable(t *testing.T) {
	Convey("Given the default ballot table", t, func() {
		table := scoring.DefaultBallotTable()

		Convey("Then anchors map exactly", func() {
			So(table.Outcome(90).Probability, ShouldEqual, 95)
			So(table.Outcome(0).Probability, ShouldEqual, 1)
			So(table.Outcome(100).Probability, ShouldEqual, 99)
		})

		Convey("Then probability interpolates between anchors", func() {
			So(table.Outcome(50).Probability, ShouldAlmostEqual, 28.3, 1e-9)
		})

		Convey("Then probability never decreases", func() {
			prev := table.Outcome(0).Probability
			for o := 1; o <= 100; o++ {
				p := table.Outcome(o).Probability
				So(p, ShouldBeGreaterThanOrEqualTo, prev)
				prev = p
			}
		})

		Convey("Then labels follow the floors", func() {
			So(table.Outcome(92).Label, ShouldEqual, "Elected on the first ballot")
			So(table.Outcome(10).Label, ShouldEqual, "Not on the ballot")
		})
	})
}

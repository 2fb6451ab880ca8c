package service_test

import (
	"context"
	"errors"
	"io"
	"testing"

	"github.com/google/uuid"
	. "github.com/smartystreets/goconvey/convey"

	"github.com/okian/cooperstown/internal/adapters/repository"
	service "github.com/okian/cooperstown/internal/app"
	"github.com/okian/cooperstown/internal/domain/jaws"
	"github.com/okian/cooperstown/internal/domain/model"
	"github.com/okian/cooperstown/internal/domain/scoring"
	"github.com/okian/cooperstown/internal/domain/sport"
	"github.com/okian/cooperstown/pkg/logger"
)

func init() {
	if err := logger.InitWithWriter(io.Discard, "text"); err != nil {
		panic(err)
	}
}

func flat(n int, value float64, firstAge int) []model.SeasonValue {
	out := make([]model.SeasonValue, n)
	for i := range out {
		out[i] = model.SeasonValue{Season: 2000 + i, Value: value, Age: firstAge + i}
	}
	return out
}

func shortstop(id string, n int, value float64) model.Player {
	seasons := flat(n, value, 24)
	return model.Player{
		ID:       id,
		Name:     "Player " + id,
		Sport:    sport.Baseball,
		Position: "SS",
		Age:      seasons[n-1].Age,
		Seasons:  seasons,
		Career:   model.HittingLine{Hits: 2500},
		Awards:   []model.Award{{Type: "MVP"}, {Type: "AllStar"}, {Type: "AllStar"}},
	}
}

func TestService_New(t *testing.T) {
	Convey("Given default options", t, func() {
		svc, err := service.New()

		Convey("Then the service runs on the baseball catalog", func() {
			So(err, ShouldBeNil)
			So(svc.Catalog().Sport, ShouldEqual, sport.Baseball)
			So(svc.Board().Count(context.Background()), ShouldEqual, 0)
		})
	})

	Convey("Given an incomplete catalog", t, func() {
		_, err := service.New(service.WithCatalog(sport.Catalog{Sport: "curling"}))

		Convey("Then construction fails", func() {
			So(errors.Is(err, sport.ErrInvalidCatalog), ShouldBeTrue)
		})
	})
}

func TestService_Evaluate(t *testing.T) {
	ctx := context.Background()

	Convey("Given a retired shortstop with twelve 6-WAR seasons", t, func() {
		svc, err := service.New()
		So(err, ShouldBeNil)
		r, err := svc.Evaluate(ctx, shortstop("ss", 12, 6))

		Convey("Then the report carries the value comparison and score", func() {
			So(err, ShouldBeNil)
			So(r.Value.Player.Career, ShouldEqual, 72.0)
			So(r.Score.Overall, ShouldEqual, 48)
			So(r.Score.Tier, ShouldEqual, scoring.TierBorderline)
			So(r.Role, ShouldEqual, model.RoleHitter)
		})

		Convey("Then retired players are not projected and nothing is matched", func() {
			So(r.Projection, ShouldBeNil)
			So(r.Similar, ShouldBeNil)
		})
	})

	Convey("Given an active veteran", t, func() {
		svc, _ := service.New()
		p := shortstop("active", 10, 5)
		p.Active = true
		r, err := svc.Evaluate(ctx, p)

		Convey("Then a projection is attached", func() {
			So(err, ShouldBeNil)
			So(r.Projection, ShouldNotBeNil)
			So(r.Projection.Applicable, ShouldBeTrue)
			So(r.Projection.Score.Overall, ShouldBeGreaterThanOrEqualTo, 0)
		})
	})

	Convey("Given a corpus of inductees", t, func() {
		inductee := shortstop("hof", 12, 6)
		inductee.Position = "2B"
		svc, err := service.New(service.WithCorpus([]model.Player{inductee}), service.WithSimilarLimit(1))
		So(err, ShouldBeNil)

		Convey("When evaluating a matching player", func() {
			r, err := svc.Evaluate(ctx, shortstop("query", 12, 6))

			Convey("Then the closest inductee is reported", func() {
				So(err, ShouldBeNil)
				So(r.Similar, ShouldNotBeNil)
				So(len(r.Similar.Comparables), ShouldEqual, 1)
				So(r.Similar.Comparables[0].ID, ShouldEqual, "hof")
				So(r.Similar.Comparables[0].Score, ShouldAlmostEqual, 96.6, 1e-9)
			})
		})

		Convey("When asking for the inductee's own comparables", func() {
			res, err := svc.Similar(ctx, inductee)

			Convey("Then the inductee is excluded from its own matches", func() {
				So(err, ShouldBeNil)
				So(res.Comparables, ShouldBeEmpty)
			})
		})
	})

	Convey("Given a position the catalog does not know", t, func() {
		svc, _ := service.New()
		p := shortstop("qb", 5, 3)
		p.Position = "QB"

		Convey("Then evaluation fails loudly", func() {
			_, err := svc.Evaluate(ctx, p)
			So(errors.Is(err, jaws.ErrUnknownPosition), ShouldBeTrue)
			_, err = svc.Project(ctx, p)
			So(errors.Is(err, jaws.ErrUnknownPosition), ShouldBeTrue)
		})
	})

	Convey("Given no corpus", t, func() {
		svc, _ := service.New()

		Convey("Then similarity queries are refused", func() {
			_, err := svc.Similar(ctx, shortstop("x", 3, 1))
			So(errors.Is(err, service.ErrNoCorpus), ShouldBeTrue)
		})
	})

	Convey("Given a player with no seasons", t, func() {
		svc, _ := service.New()
		proj, err := svc.Project(ctx, model.Player{Name: "Rookie", Position: "C"})

		Convey("Then the projection is not applicable rather than an error", func() {
			So(err, ShouldBeNil)
			So(proj.Applicable, ShouldBeFalse)
			So(proj.Reason, ShouldNotBeEmpty)
		})
	})
}

func TestService_Batch(t *testing.T) {
	Convey("Given a batch with a duplicate and an invalid player", t, func() {
		board := repository.NewTreapStore(repository.WithMetrics(false))
		svc, err := service.New(
			service.WithBoard(board),
			service.WithWorkerCount(3),
			service.WithQueueSize(2),
			service.WithTopN(2),
		)
		So(err, ShouldBeNil)

		bad := shortstop("bad", 4, 2)
		bad.Position = "QB"
		players := []model.Player{
			shortstop("solid", 12, 6),
			shortstop("great", 15, 8),
			shortstop("solid", 12, 6),
			shortstop("meh", 5, 2),
			bad,
		}

		res, err := svc.Batch(context.Background(), players)

		Convey("Then every unique valid player is evaluated", func() {
			So(err, ShouldBeNil)
			So(res.Evaluated, ShouldEqual, 3)
			So(res.Duplicates, ShouldEqual, 1)
			So(board.Count(context.Background()), ShouldEqual, 3)
		})

		Convey("Then reports keep input order", func() {
			So(len(res.Reports), ShouldEqual, 3)
			So(res.Reports[0].PlayerID, ShouldEqual, "solid")
			So(res.Reports[1].PlayerID, ShouldEqual, "great")
			So(res.Reports[2].PlayerID, ShouldEqual, "meh")
		})

		Convey("Then the failure is recorded with its input position", func() {
			So(len(res.Failures), ShouldEqual, 1)
			So(res.Failures[0].Seq, ShouldEqual, 4)
			So(res.Failures[0].PlayerID, ShouldEqual, "bad")
		})

		Convey("Then the top of the board is ranked best first", func() {
			So(len(res.Top), ShouldEqual, 2)
			So(res.Top[0].PlayerID, ShouldEqual, "great")
			So(res.Top[0].Rank, ShouldEqual, 1)
			So(res.Top[1].PlayerID, ShouldEqual, "solid")
			So(res.Top[0].Overall, ShouldBeGreaterThan, res.Top[1].Overall)
		})

		Convey("Then the run has an identifier", func() {
			_, err := uuid.Parse(res.RunID)
			So(err, ShouldBeNil)
		})
	})

	Convey("Given a cancelled context", t, func() {
		svc, _ := service.New(service.WithWorkerCount(1))
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, err := svc.Batch(ctx, []model.Player{shortstop("a", 3, 1), shortstop("b", 3, 1)})

		Convey("Then the batch stops with the context error", func() {
			So(errors.Is(err, context.Canceled), ShouldBeTrue)
		})
	})
}

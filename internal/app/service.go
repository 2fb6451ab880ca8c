// Package service evaluates players against a sport catalog and runs batch
// evaluations through the queue, worker pool and ranked board.
package service

import (
	"context"
	"fmt"
	"runtime"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/okian/cooperstown/internal/adapters/mq/queue"
	"github.com/okian/cooperstown/internal/adapters/mq/worker"
	"github.com/okian/cooperstown/internal/adapters/repository"
	"github.com/okian/cooperstown/internal/domain/dedupe"
	"github.com/okian/cooperstown/internal/domain/jaws"
	"github.com/okian/cooperstown/internal/domain/model"
	"github.com/okian/cooperstown/internal/domain/projection"
	"github.com/okian/cooperstown/internal/domain/scoring"
	"github.com/okian/cooperstown/internal/domain/similarity"
	"github.com/okian/cooperstown/internal/domain/sport"
	"github.com/okian/cooperstown/pkg/logger"
	"github.com/okian/cooperstown/pkg/metrics"
)

// Default service configuration.
const (
	defaultQueueSize    = 256
	defaultDedupeSize   = 50_000
	defaultTopN         = 10
	defaultSimilarLimit = 3
)

// Report is the full evaluation of one player.
type Report struct {
	PlayerID   string                 `json:"player_id" yaml:"player_id"`
	Name       string                 `json:"name" yaml:"name"`
	Sport      string                 `json:"sport" yaml:"sport"`
	Position   string                 `json:"position" yaml:"position"`
	Role       model.Role             `json:"role" yaml:"role"`
	Age        int                    `json:"age,omitempty" yaml:"age,omitempty"`
	Active     bool                   `json:"active" yaml:"active"`
	Inducted   bool                   `json:"inducted,omitempty" yaml:"inducted,omitempty"`
	Value      jaws.Comparison        `json:"value" yaml:"value"`
	Score      scoring.Breakdown      `json:"score" yaml:"score"`
	Projection *projection.Projection `json:"projection,omitempty" yaml:"projection,omitempty"`
	Similar    *similarity.Result     `json:"similar,omitempty" yaml:"similar,omitempty"`
}

// Failure records a player a batch could not evaluate.
type Failure struct {
	Seq      int    `json:"seq" yaml:"seq"`
	PlayerID string `json:"player_id,omitempty" yaml:"player_id,omitempty"`
	Name     string `json:"name" yaml:"name"`
	Error    string `json:"error" yaml:"error"`
}

// BatchResult summarizes one batch run. Reports keep input order.
type BatchResult struct {
	RunID      string             `json:"run_id" yaml:"run_id"`
	Evaluated  int                `json:"evaluated" yaml:"evaluated"`
	Duplicates int                `json:"duplicates" yaml:"duplicates"`
	Reports    []Report           `json:"reports" yaml:"reports"`
	Top        []repository.Entry `json:"top" yaml:"top"`
	Failures   []Failure          `json:"failures,omitempty" yaml:"failures,omitempty"`
	Duration   time.Duration      `json:"duration_ns" yaml:"duration_ns"`
}

// Service wires a sport catalog to the engine and the batch pipeline.
type Service struct {
	catalog   sport.Catalog
	scorer    *scoring.Scorer
	projector *projection.Projector
	matcher   *similarity.Matcher
	corpus    []model.Player
	board     repository.Store

	similarLimit int
	workerCount  int
	queueSize    int
	dedupeSize   int
	topN         int

	logger logger.Logger
}

// New validates the catalog and builds a service.
func New(opts ...Option) (*Service, error) {
	s := &Service{
		catalog:      sport.BaseballCatalog(),
		similarLimit: defaultSimilarLimit,
		workerCount:  runtime.NumCPU(),
		queueSize:    defaultQueueSize,
		dedupeSize:   defaultDedupeSize,
		topN:         defaultTopN,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.logger == nil {
		s.logger = logger.Get().Named("service")
	}
	if err := s.catalog.Validate(); err != nil {
		return nil, fmt.Errorf("service catalog: %w", err)
	}
	if s.board == nil {
		s.board = repository.NewTreapStore()
	}

	s.scorer = s.catalog.Scorer()
	s.projector = s.catalog.Projector()
	if len(s.corpus) > 0 {
		s.matcher = s.catalog.Matcher(s.corpus, similarity.WithLimit(s.similarLimit))
		metrics.UpdateCorpusSize(s.matcher.Size())
	}

	s.logger.Info(context.Background(), "service ready",
		logger.String("sport", s.catalog.Sport),
		logger.Int("corpus", len(s.corpus)),
		logger.Int("workers", s.workerCount))
	return s, nil
}

// Catalog returns the sport catalog in use.
func (s *Service) Catalog() sport.Catalog { return s.catalog }

// Board returns the ranked board.
func (s *Service) Board() repository.Store { return s.board }

// role prefers the career record's role and falls back to the position's.
func (s *Service) role(p *model.Player) model.Role {
	if p.Career != nil && p.Career.Role() != model.RoleUnknown {
		return p.Career.Role()
	}
	return s.catalog.Role(p.Position)
}

func (s *Service) check(ctx context.Context, p *model.Player) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if _, ok := s.catalog.Position(p.Position); !ok {
		return fmt.Errorf("%s: %s position %q: %w", p.Name, s.catalog.Sport, p.Position, jaws.ErrUnknownPosition)
	}
	return nil
}

// Evaluate aggregates, compares and scores a player. Active players are
// also projected, and every player is matched against the corpus when one
// is configured.
func (s *Service) Evaluate(ctx context.Context, p model.Player) (Report, error) { //nolint:gocritic // hugeParam: players travel by value
	start := time.Now()
	if err := s.check(ctx, &p); err != nil {
		metrics.RecordError("service", "invalid_player")
		return Report{}, err
	}
	role := s.role(&p)

	cv := jaws.ComputeCareerValue(p.Seasons, p.Position)
	cmp, err := jaws.CompareToBaseline(cv, s.catalog.Baselines)
	if err != nil {
		metrics.RecordError("service", "baseline")
		return Report{}, fmt.Errorf("%s: %w", p.Name, err)
	}

	r := Report{
		PlayerID: p.ID,
		Name:     p.Name,
		Sport:    s.catalog.Sport,
		Position: p.Position,
		Role:     role,
		Age:      p.Age,
		Active:   p.Active,
		Inducted: p.Inducted(),
		Value:    cmp,
		Score: s.scorer.Score(scoring.Input{
			Comparison: cmp,
			Awards:     p.Awards,
			Career:     p.Career,
			Role:       role,
			Seasons:    p.Seasons,
			Age:        p.Age,
			Active:     p.Active,
		}),
	}

	if p.Active {
		proj, err := s.project(&p, role)
		if err != nil {
			return Report{}, err
		}
		r.Projection = &proj
	}
	if s.matcher != nil {
		res := s.matcher.FindSimilar(p.Seasons, p.Position, p.ID)
		r.Similar = &res
	}

	latency := time.Since(start)
	metrics.RecordEvaluation(s.catalog.Sport, r.Score.Tier.String(), r.Score.Overall, latency)
	s.logger.Debug(ctx, "player evaluated",
		logger.String("player", p.Name),
		logger.String("position", p.Position),
		logger.Int("overall", r.Score.Overall),
		logger.String("tier", r.Score.Tier.String()),
		logger.Duration("latency", latency))
	return r, nil
}

// Project runs the career projector alone, for active or retired players.
func (s *Service) Project(ctx context.Context, p model.Player) (projection.Projection, error) { //nolint:gocritic // hugeParam: players travel by value
	if err := s.check(ctx, &p); err != nil {
		metrics.RecordError("service", "invalid_player")
		return projection.Projection{}, err
	}
	return s.project(&p, s.role(&p))
}

func (s *Service) project(p *model.Player, role model.Role) (projection.Projection, error) {
	proj, err := s.projector.Project(projection.Input{
		Seasons:     p.Seasons,
		SeasonLines: p.SeasonLines,
		Career:      p.Career,
		Awards:      p.Awards,
		Position:    p.Position,
		Age:         p.Age,
		Role:        role,
	})
	if err != nil {
		metrics.RecordError("service", "projection")
		return projection.Projection{}, fmt.Errorf("project %s: %w", p.Name, err)
	}
	metrics.RecordProjection(s.catalog.Sport, proj.Applicable)
	return proj, nil
}

// Similar finds the closest inductees to a player.
func (s *Service) Similar(ctx context.Context, p model.Player) (similarity.Result, error) { //nolint:gocritic // hugeParam: players travel by value
	if s.matcher == nil {
		return similarity.Result{}, ErrNoCorpus
	}
	if err := s.check(ctx, &p); err != nil {
		return similarity.Result{}, err
	}
	return s.matcher.FindSimilar(p.Seasons, p.Position, p.ID), nil
}

// Batch evaluates players on the worker pool and ranks them on the board.
// Duplicate players are evaluated once. A player that fails is recorded as
// a failure and does not stop the batch; cancelling ctx does.
func (s *Service) Batch(ctx context.Context, players []model.Player) (BatchResult, error) {
	start := time.Now()
	res := BatchResult{RunID: uuid.NewString()}
	log := s.logger.With(logger.String("run_id", res.RunID))

	var (
		mu       sync.Mutex
		reports  = make([]*Report, len(players))
		failures []Failure
	)
	handler := worker.HandlerFunc(func(ctx context.Context, j queue.Job) error {
		r, err := s.Evaluate(ctx, j.Player)
		if err == nil {
			_, err = s.board.Put(ctx, entryOf(&r, dedupe.Key(j.Player)))
		}
		if err != nil {
			mu.Lock()
			failures = append(failures, Failure{Seq: j.Seq, PlayerID: j.Player.ID, Name: j.Player.Name, Error: err.Error()})
			mu.Unlock()
			return err
		}
		reports[j.Seq] = &r
		return nil
	})

	q := queue.NewInMemoryQueue(queue.WithCapacity(s.queueSize))
	pool := worker.NewPool(s.workerCount, q, handler, worker.WithLogger(log))
	runCtx, cancel := context.WithCancel(ctx)
	defer cancel()
	pool.Start(runCtx)

	seen := dedupe.New(dedupe.WithMaxSize(s.dedupeSize))
	var pushErr error
	for i := range players {
		if seen.SeenAndRecord(runCtx, dedupe.Key(players[i])) {
			res.Duplicates++
			metrics.RecordDuplicate()
			continue
		}
		if pushErr = q.Push(runCtx, queue.Job{RunID: res.RunID, Seq: i, Player: players[i]}); pushErr != nil {
			break
		}
	}
	_ = q.Close()
	waitErr := pool.Wait(ctx)

	if err := ctx.Err(); err != nil {
		log.Warn(ctx, "batch cancelled", logger.Error(err))
		return res, fmt.Errorf("batch %s: %w", res.RunID, err)
	}
	if pushErr != nil {
		return res, fmt.Errorf("batch %s: %w", res.RunID, pushErr)
	}
	if waitErr != nil {
		return res, fmt.Errorf("batch %s: %w", res.RunID, waitErr)
	}

	for _, r := range reports {
		if r != nil {
			res.Reports = append(res.Reports, *r)
		}
	}
	sort.Slice(failures, func(i, j int) bool { return failures[i].Seq < failures[j].Seq })
	res.Failures = failures
	res.Evaluated = len(res.Reports)

	if s.board.Count(ctx) > 0 {
		top, err := s.board.TopN(ctx, s.topN)
		if err != nil {
			return res, fmt.Errorf("batch %s: %w", res.RunID, err)
		}
		res.Top = top
	}
	res.Duration = time.Since(start)
	metrics.RecordBatch(res.Duration)

	log.Info(ctx, "batch complete",
		logger.Int("players", len(players)),
		logger.Int("evaluated", res.Evaluated),
		logger.Int("duplicates", res.Duplicates),
		logger.Int("failures", len(res.Failures)),
		logger.Duration("duration", res.Duration))
	return res, nil
}

// entryOf projects a report onto a board row. Players without an ID are
// keyed by their dedupe key.
func entryOf(r *Report, fallbackID string) repository.Entry {
	id := r.PlayerID
	if id == "" {
		id = fallbackID
	}
	return repository.Entry{
		PlayerID:  id,
		Name:      r.Name,
		Sport:     r.Sport,
		Position:  r.Position,
		Overall:   r.Score.Overall,
		Composite: r.Score.CompositeRatio,
		Tier:      r.Score.Tier.String(),
	}
}

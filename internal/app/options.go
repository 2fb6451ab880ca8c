package service

import (
	"github.com/okian/cooperstown/internal/adapters/repository"
	"github.com/okian/cooperstown/internal/domain/model"
	"github.com/okian/cooperstown/internal/domain/sport"
	"github.com/okian/cooperstown/pkg/logger"
)

// Option applies a configuration option to the Service.
type Option func(*Service)

// WithCatalog sets the sport catalog. The default is baseball.
func WithCatalog(c sport.Catalog) Option {
	return func(s *Service) {
		s.catalog = c
	}
}

// WithCorpus sets the inductee corpus used for similarity matching.
func WithCorpus(corpus []model.Player) Option {
	return func(s *Service) {
		s.corpus = corpus
	}
}

// WithSimilarLimit sets how many comparables each report carries.
func WithSimilarLimit(n int) Option {
	return func(s *Service) {
		if n > 0 {
			s.similarLimit = n
		}
	}
}

// WithWorkerCount sets the number of batch workers.
func WithWorkerCount(count int) Option {
	return func(s *Service) {
		if count > 0 {
			s.workerCount = count
		}
	}
}

// WithQueueSize sets the batch job queue capacity.
func WithQueueSize(size int) Option {
	return func(s *Service) {
		if size > 0 {
			s.queueSize = size
		}
	}
}

// WithDedupeSize bounds how many player keys a batch remembers. 0 means
// unbounded.
func WithDedupeSize(size int) Option {
	return func(s *Service) {
		if size >= 0 {
			s.dedupeSize = size
		}
	}
}

// WithTopN sets how many board entries a batch result carries.
func WithTopN(n int) Option {
	return func(s *Service) {
		if n > 0 {
			s.topN = n
		}
	}
}

// WithBoard sets the ranked board.
func WithBoard(b repository.Store) Option {
	return func(s *Service) {
		if b != nil {
			s.board = b
		}
	}
}

// WithLogger sets a custom logger for the service.
func WithLogger(l logger.Logger) Option {
	return func(s *Service) {
		if l != nil {
			s.logger = l
		}
	}
}

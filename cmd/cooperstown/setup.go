package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/okian/cooperstown/internal/adapters/ingest"
	service "github.com/okian/cooperstown/internal/app"
	"github.com/okian/cooperstown/internal/config"
	"github.com/okian/cooperstown/internal/domain/model"
	"github.com/okian/cooperstown/internal/domain/sport"
	"github.com/okian/cooperstown/pkg/logger"
	"github.com/okian/cooperstown/pkg/metrics"
)

var (
	flagConfig      string
	flagSport       string
	flagFormat      string
	flagCatalog     string
	flagLogLevel    string
	flagMetricsFile string
)

// current holds what setup resolved for the running command.
var current struct {
	cfg     *config.Config
	catalog sport.Catalog
	log     logger.Logger
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVar(&flagConfig, "config", "", "YAML config file (overrides COOPERSTOWN_CONFIG)")
	pf.StringVarP(&flagSport, "sport", "s", "", "sport catalog: baseball or hockey")
	pf.StringVarP(&flagFormat, "format", "f", "", "output format: json or yaml")
	pf.StringVar(&flagCatalog, "catalog", "", "YAML overlay for the sport catalog")
	pf.StringVar(&flagLogLevel, "log-level", "", "log level: debug, info, warn, error")
	pf.StringVar(&flagMetricsFile, "metrics-file", "", "write Prometheus metrics to this textfile after the run")
}

// setup loads configuration, applies flag overrides, initializes logging
// and resolves the sport catalog.
func setup(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	var opts []config.LoadOption
	if flagConfig != "" {
		opts = append(opts, config.WithFile(flagConfig))
	}
	cfg, err := config.Load(ctx, opts...)
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	if flags.Changed("sport") {
		cfg.Sport = flagSport
	}
	if flags.Changed("format") {
		cfg.OutputFormat = flagFormat
	}
	if flags.Changed("catalog") {
		cfg.CatalogFile = flagCatalog
	}
	if flags.Changed("log-level") {
		cfg.LogLevel = flagLogLevel
	}
	if flags.Changed("metrics-file") {
		cfg.MetricsFile = flagMetricsFile
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	if err := logger.InitWithWriter(cmd.ErrOrStderr(), cfg.LogFormat); err != nil {
		return fmt.Errorf("init logging: %w", err)
	}
	if err := logger.SetLevelString(cfg.LogLevel); err != nil {
		return fmt.Errorf("init logging: %w", err)
	}
	log := logger.Named("cli")

	catalog, err := sport.Lookup(cfg.Sport)
	if err != nil {
		return err
	}
	if cfg.CatalogFile != "" {
		if catalog, err = sport.LoadOverlay(catalog, cfg.CatalogFile); err != nil {
			return err
		}
		log.Debug(ctx, "catalog overlay applied", logger.String("path", cfg.CatalogFile))
	}

	current.cfg = cfg
	current.catalog = catalog
	current.log = log
	return nil
}

func flushMetrics(ctx context.Context) error {
	if current.cfg == nil || current.cfg.MetricsFile == "" {
		return nil
	}
	if err := metrics.WriteTextfile(current.cfg.MetricsFile); err != nil {
		return err
	}
	current.log.Debug(ctx, "metrics written", logger.String("path", current.cfg.MetricsFile))
	return nil
}

func loadPlayers(ctx context.Context, paths []string) ([]model.Player, error) {
	l := ingest.NewLoader(current.catalog, ingest.WithLogger(logger.Named("ingest")))
	players, err := l.LoadFiles(ctx, paths...)
	if err != nil {
		return nil, fmt.Errorf("load players: %w", err)
	}
	return players, nil
}

// corpusPath prefers the flag and falls back to configuration.
func corpusPath(flag string) string {
	if flag != "" {
		return flag
	}
	return current.cfg.CorpusFile
}

func newService(ctx context.Context, corpusFile string) (*service.Service, error) {
	cfg := current.cfg
	opts := []service.Option{
		service.WithCatalog(current.catalog),
		service.WithSimilarLimit(cfg.SimilarLimit),
		service.WithWorkerCount(cfg.WorkerCount),
		service.WithQueueSize(cfg.QueueSize),
		service.WithDedupeSize(cfg.DedupeSize),
		service.WithTopN(cfg.TopN),
		service.WithLogger(logger.Named("service")),
	}
	if corpusFile != "" {
		corpus, err := loadPlayers(ctx, []string{corpusFile})
		if err != nil {
			return nil, fmt.Errorf("corpus: %w", err)
		}
		opts = append(opts, service.WithCorpus(corpus))
	}
	return service.New(opts...)
}

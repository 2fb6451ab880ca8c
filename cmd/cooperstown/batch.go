package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/okian/cooperstown/pkg/logger"
)

var batchCmd = &cobra.Command{
	Use:   "batch",
	Short: "Evaluate many players concurrently and rank them",
	Long: "Loads every player file, evaluates unique players on a worker pool and prints " +
		"the run summary with the ranked board.",
	RunE: runBatch,
}

var (
	batchPlayers []string
	batchCorpus  string
	batchTop     int
	batchWorkers int
	batchSummary bool
)

func init() {
	batchCmd.Flags().StringSliceVarP(&batchPlayers, "players", "p", nil, "player JSON/YAML files (required)")
	batchCmd.Flags().StringVarP(&batchCorpus, "corpus", "c", "", "inductee corpus file for similarity")
	batchCmd.Flags().IntVar(&batchTop, "top", 0, "board rows to print (defaults to top_n)")
	batchCmd.Flags().IntVarP(&batchWorkers, "workers", "w", 0, "worker count (defaults to worker_count)")
	batchCmd.Flags().BoolVar(&batchSummary, "summary", false, "omit per-player reports")

	if err := batchCmd.MarkFlagRequired("players"); err != nil {
		panic(fmt.Sprintf("failed to mark players flag as required: %v", err))
	}

	rootCmd.AddCommand(batchCmd)
}

func runBatch(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	if batchTop > 0 {
		current.cfg.TopN = batchTop
	}
	if batchWorkers > 0 {
		current.cfg.WorkerCount = batchWorkers
	}

	players, err := loadPlayers(ctx, batchPlayers)
	if err != nil {
		return err
	}
	svc, err := newService(ctx, corpusPath(batchCorpus))
	if err != nil {
		return err
	}

	res, err := svc.Batch(ctx, players)
	if err != nil {
		return err
	}
	for _, f := range res.Failures {
		current.log.Warn(ctx, "player not evaluated",
			logger.Int("seq", f.Seq),
			logger.String("player", f.Name),
			logger.String("error", f.Error))
	}
	if batchSummary {
		res.Reports = nil
	}
	return emit(cmd, res)
}

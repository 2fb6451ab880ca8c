package main

import (
	"fmt"

	"github.com/spf13/cobra"

	service "github.com/okian/cooperstown/internal/app"
)

var scoreCmd = &cobra.Command{
	Use:   "score",
	Short: "Score players for Hall of Fame worthiness",
	Long: "Evaluates every player in the given files: JAWS value against the positional baseline, " +
		"the 0-100 composite score and tier, a projection for active players, and similar " +
		"inductees when a corpus is given.",
	RunE: runScore,
}

var (
	scorePlayers []string
	scoreCorpus  string
)

func init() {
	scoreCmd.Flags().StringSliceVarP(&scorePlayers, "players", "p", nil, "player JSON/YAML files (required)")
	scoreCmd.Flags().StringVarP(&scoreCorpus, "corpus", "c", "", "inductee corpus file for similarity")

	if err := scoreCmd.MarkFlagRequired("players"); err != nil {
		panic(fmt.Sprintf("failed to mark players flag as required: %v", err))
	}

	rootCmd.AddCommand(scoreCmd)
}

func runScore(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	players, err := loadPlayers(ctx, scorePlayers)
	if err != nil {
		return err
	}
	svc, err := newService(ctx, corpusPath(scoreCorpus))
	if err != nil {
		return err
	}

	reports := make([]service.Report, 0, len(players))
	for _, p := range players {
		r, err := svc.Evaluate(ctx, p)
		if err != nil {
			return fmt.Errorf("score %s: %w", p.Name, err)
		}
		reports = append(reports, r)
	}
	return emit(cmd, reports)
}

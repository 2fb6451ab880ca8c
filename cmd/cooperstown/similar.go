package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/okian/cooperstown/internal/domain/similarity"
)

var similarCmd = &cobra.Command{
	Use:   "similar",
	Short: "Find the inductees most similar to each player",
	RunE:  runSimilar,
}

var (
	similarPlayers []string
	similarCorpus  string
	similarLimit   int
)

type matched struct {
	PlayerID string            `json:"player_id,omitempty" yaml:"player_id,omitempty"`
	Name     string            `json:"name" yaml:"name"`
	Result   similarity.Result `json:"result" yaml:"result"`
}

func init() {
	similarCmd.Flags().StringSliceVarP(&similarPlayers, "players", "p", nil, "player JSON/YAML files (required)")
	similarCmd.Flags().StringVarP(&similarCorpus, "corpus", "c", "", "inductee corpus file (defaults to corpus_file)")
	similarCmd.Flags().IntVarP(&similarLimit, "limit", "n", 0, "comparables per player (defaults to similar_limit)")

	if err := similarCmd.MarkFlagRequired("players"); err != nil {
		panic(fmt.Sprintf("failed to mark players flag as required: %v", err))
	}

	rootCmd.AddCommand(similarCmd)
}

func runSimilar(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	path := corpusPath(similarCorpus)
	if path == "" {
		return errors.New("similar needs a corpus: pass --corpus or set corpus_file")
	}
	if similarLimit > 0 {
		current.cfg.SimilarLimit = similarLimit
	}
	players, err := loadPlayers(ctx, similarPlayers)
	if err != nil {
		return err
	}
	svc, err := newService(ctx, path)
	if err != nil {
		return err
	}

	out := make([]matched, 0, len(players))
	for _, p := range players {
		res, err := svc.Similar(ctx, p)
		if err != nil {
			return err
		}
		out = append(out, matched{PlayerID: p.ID, Name: p.Name, Result: res})
	}
	return emit(cmd, out)
}

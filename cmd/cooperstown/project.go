package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/okian/cooperstown/internal/domain/projection"
)

var projectCmd = &cobra.Command{
	Use:   "project",
	Short: "Project remaining careers along aging curves",
	RunE:  runProject,
}

var projectPlayers []string

type projected struct {
	PlayerID   string                `json:"player_id,omitempty" yaml:"player_id,omitempty"`
	Name       string                `json:"name" yaml:"name"`
	Projection projection.Projection `json:"projection" yaml:"projection"`
}

func init() {
	projectCmd.Flags().StringSliceVarP(&projectPlayers, "players", "p", nil, "player JSON/YAML files (required)")

	if err := projectCmd.MarkFlagRequired("players"); err != nil {
		panic(fmt.Sprintf("failed to mark players flag as required: %v", err))
	}

	rootCmd.AddCommand(projectCmd)
}

func runProject(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	players, err := loadPlayers(ctx, projectPlayers)
	if err != nil {
		return err
	}
	svc, err := newService(ctx, "")
	if err != nil {
		return err
	}

	out := make([]projected, 0, len(players))
	for _, p := range players {
		proj, err := svc.Project(ctx, p)
		if err != nil {
			return err
		}
		out = append(out, projected{PlayerID: p.ID, Name: p.Name, Projection: proj})
	}
	return emit(cmd, out)
}

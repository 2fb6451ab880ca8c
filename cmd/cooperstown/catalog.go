package main

import (
	"github.com/spf13/cobra"

	"github.com/okian/cooperstown/internal/domain/jaws"
	"github.com/okian/cooperstown/internal/domain/scoring"
	"github.com/okian/cooperstown/internal/domain/sport"
)

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "Print the resolved sport catalog",
	Long:  "Prints positions, baselines, award weights, milestones and season thresholds after any overlay.",
	RunE:  runCatalog,
}

type catalogView struct {
	Sport      string              `json:"sport" yaml:"sport"`
	ValueUnit  string              `json:"value_unit" yaml:"value_unit"`
	Sports     []string            `json:"available_sports" yaml:"available_sports"`
	Positions  []sport.PositionDef `json:"positions" yaml:"positions"`
	Baselines  jaws.Baselines      `json:"baselines" yaml:"baselines"`
	Awards     []scoring.AwardRule `json:"awards" yaml:"awards"`
	Milestones []scoring.Milestone `json:"milestones" yaml:"milestones"`
	Thresholds scoring.Thresholds  `json:"thresholds" yaml:"thresholds"`
}

func init() {
	rootCmd.AddCommand(catalogCmd)
}

func runCatalog(cmd *cobra.Command, _ []string) error {
	c := current.catalog
	return emit(cmd, catalogView{
		Sport:      c.Sport,
		ValueUnit:  c.ValueUnit,
		Sports:     sport.Names(),
		Positions:  c.Positions,
		Baselines:  c.Baselines,
		Awards:     c.Awards,
		Milestones: c.Milestones,
		Thresholds: c.Thresholds,
	})
}

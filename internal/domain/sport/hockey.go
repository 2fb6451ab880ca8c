package sport

import (
	"github.com/okian/cooperstown/internal/domain/aging"
	"github.com/okian/cooperstown/internal/domain/jaws"
	"github.com/okian/cooperstown/internal/domain/model"
	"github.com/okian/cooperstown/internal/domain/scoring"
	"github.com/okian/cooperstown/internal/domain/similarity"
)

// HockeyCatalog returns the hockey tables. Values are point shares, so
// baselines, thresholds and scales run larger than baseball's.
func HockeyCatalog() Catalog {
	return Catalog{
		Sport:     Hockey,
		ValueUnit: "Point Shares",
		Positions: []PositionDef{
			{Code: "C", Name: "Center", Group: "center", Role: model.RoleSkater},
			{Code: "LW", Name: "Left Wing", Group: "wing", Role: model.RoleSkater},
			{Code: "RW", Name: "Right Wing", Group: "wing", Role: model.RoleSkater},
			{Code: "D", Name: "Defense", Group: "defense", Role: model.RoleSkater},
			{Code: "G", Name: "Goaltender", Group: "goaltender", Role: model.RoleGoalie},
		},
		Neighbors: map[string][]string{
			"C": {"LW", "RW"},
		},
		Baselines: jaws.Baselines{
			"C":  {Career: 120, Peak: 70, Blended: 95},
			"LW": {Career: 105, Peak: 62, Blended: 83.5},
			"RW": {Career: 110, Peak: 64, Blended: 87},
			"D":  {Career: 100, Peak: 58, Blended: 79},
			"G":  {Career: 110, Peak: 66, Blended: 88},
		},
		Milestones: []scoring.Milestone{
			{Stat: model.StatGoals, Threshold: 500, Label: "500 Goals", Role: model.RoleSkater, Weight: 1},
			{Stat: model.StatPoints, Threshold: 1000, Label: "1,000 Points", Role: model.RoleSkater, Weight: 1},
			{Stat: model.StatAssists, Threshold: 700, Label: "700 Assists", Role: model.RoleSkater, Weight: 0.6},
			{Stat: model.StatGames, Threshold: 1000, Label: "1,000 Games", Role: model.RoleSkater, Weight: 0.4},
			{Stat: model.StatWins, Threshold: 400, Label: "400 Wins", Role: model.RoleGoalie, Weight: 1},
			{Stat: model.StatShutouts, Threshold: 60, Label: "60 Shutouts", Role: model.RoleGoalie, Weight: 0.6},
			{Stat: model.StatSavePct, Threshold: 0.915, Label: ".915 Save Percentage", Role: model.RoleGoalie, Weight: 0.5, IsRateStat: true, MinGames: 300},
			{Stat: model.StatGAA, Threshold: 2.50, Label: "Sub-2.50 GAA", Role: model.RoleGoalie, Weight: 0.5, LowerIsBetter: true, IsRateStat: true, MinGames: 300},
		},
		Awards: []scoring.AwardRule{
			{Type: "Hart", Label: "Hart Trophy", Points: 5, Cap: 15},
			{Type: "Vezina", Label: "Vezina Trophy", Points: 4, Cap: 12},
			{Type: "Norris", Label: "Norris Trophy", Points: 4, Cap: 12},
			{Type: "ArtRoss", Label: "Art Ross Trophy", Points: 3, Cap: 9},
			{Type: "RocketRichard", Label: "Rocket Richard Trophy", Points: 2, Cap: 6},
			{Type: "ConnSmythe", Label: "Conn Smythe Trophy", Points: 3, Cap: 6},
			{Type: "StanleyCup", Label: "Stanley Cup", Points: 1, Cap: 4},
			{Type: "AllStar", Label: "All-Star Team", Points: 0.5, Cap: 5},
			{Type: "Calder", Label: "Calder Trophy", Points: 2, Cap: 2},
		},
		Thresholds: scoring.Thresholds{Elite: 10, Solid: 6},
		Scales: similarity.Scales{
			Career: 130, Peak: 80, Blended: 100, Length: 20,
			Elite: 10, Solid: 10, Best: 15, Consistency: 4,
		},
		Aging:   aging.Default(),
		Outcome: scoring.DefaultBallotTable(),
	}
}

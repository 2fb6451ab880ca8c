package sport

import (
	"github.com/okian/cooperstown/internal/domain/aging"
	"github.com/okian/cooperstown/internal/domain/jaws"
	"github.com/okian/cooperstown/internal/domain/model"
	"github.com/okian/cooperstown/internal/domain/scoring"
	"github.com/okian/cooperstown/internal/domain/similarity"
)

// BaseballCatalog returns the baseball tables. Values are WAR.
func BaseballCatalog() Catalog {
	return Catalog{
		Sport:     Baseball,
		ValueUnit: "WAR",
		Positions: []PositionDef{
			{Code: "C", Name: "Catcher", Group: "catcher", Role: model.RoleHitter},
			{Code: "1B", Name: "First Base", Group: "corner-infield", Role: model.RoleHitter},
			{Code: "2B", Name: "Second Base", Group: "middle-infield", Role: model.RoleHitter},
			{Code: "3B", Name: "Third Base", Group: "corner-infield", Role: model.RoleHitter},
			{Code: "SS", Name: "Shortstop", Group: "middle-infield", Role: model.RoleHitter},
			{Code: "LF", Name: "Left Field", Group: "outfield", Role: model.RoleHitter},
			{Code: "CF", Name: "Center Field", Group: "outfield", Role: model.RoleHitter},
			{Code: "RF", Name: "Right Field", Group: "outfield", Role: model.RoleHitter},
			{Code: "DH", Name: "Designated Hitter", Group: "designated-hitter", Role: model.RoleHitter},
			{Code: "SP", Name: "Starting Pitcher", Group: "starter", Role: model.RolePitcher},
			{Code: "RP", Name: "Relief Pitcher", Group: "reliever", Role: model.RolePitcher},
		},
		Neighbors: map[string][]string{
			"C":  {"1B", "DH"},
			"1B": {"C", "DH", "LF", "RF"},
			"2B": {"3B", "CF"},
			"3B": {"SS", "2B"},
			"SS": {"3B", "CF"},
			"LF": {"1B", "DH"},
			"CF": {"SS", "2B"},
			"RF": {"1B", "3B"},
			"DH": {"1B", "LF", "C"},
		},
		Baselines: jaws.Baselines{
			"C":  {Career: 53.4, Peak: 34.8, Blended: 44.1},
			"1B": {Career: 65.9, Peak: 42.4, Blended: 54.2},
			"2B": {Career: 69.4, Peak: 44.5, Blended: 57.0},
			"3B": {Career: 68.4, Peak: 43.0, Blended: 55.7},
			"SS": {Career: 66.7, Peak: 42.8, Blended: 54.7},
			"LF": {Career: 65.2, Peak: 41.5, Blended: 53.3},
			"CF": {Career: 71.1, Peak: 44.1, Blended: 57.6},
			"RF": {Career: 71.1, Peak: 42.8, Blended: 57.0},
			"DH": {Career: 68.2, Peak: 42.4, Blended: 55.3},
			"SP": {Career: 73.0, Peak: 49.8, Blended: 61.4},
			"RP": {Career: 40.6, Peak: 28.9, Blended: 34.8},
		},
		Milestones: []scoring.Milestone{
			{Stat: model.StatHits, Threshold: 3000, Label: "3,000 Hits", Role: model.RoleHitter, Weight: 1},
			{Stat: model.StatHomeRuns, Threshold: 500, Label: "500 Home Runs", Role: model.RoleHitter, Weight: 1},
			{Stat: model.StatRBI, Threshold: 1500, Label: "1,500 RBI", Role: model.RoleHitter, Weight: 0.5},
			{Stat: model.StatRuns, Threshold: 1500, Label: "1,500 Runs", Role: model.RoleHitter, Weight: 0.5},
			{Stat: model.StatStolenBases, Threshold: 500, Label: "500 Stolen Bases", Role: model.RoleHitter, Weight: 0.5},
			{Stat: model.StatBattingAverage, Threshold: 0.300, Label: ".300 Career Average", Role: model.RoleHitter, Weight: 0.6, IsRateStat: true, MinGames: 1000},
			{Stat: model.StatWins, Threshold: 300, Label: "300 Wins", Role: model.RolePitcher, Weight: 1},
			{Stat: model.StatStrikeouts, Threshold: 3000, Label: "3,000 Strikeouts", Role: model.RolePitcher, Weight: 1},
			{Stat: model.StatSaves, Threshold: 400, Label: "400 Saves", Role: model.RolePitcher, Weight: 0.8},
			{Stat: model.StatERA, Threshold: 3.00, Label: "Sub-3.00 ERA", Role: model.RolePitcher, Weight: 0.6, LowerIsBetter: true, IsRateStat: true, MinGames: 300},
		},
		Awards: []scoring.AwardRule{
			{Type: "MVP", Label: "Most Valuable Player", Points: 5, Cap: 15},
			{Type: "CyYoung", Label: "Cy Young Award", Points: 5, Cap: 15},
			{Type: "AllStar", Label: "All-Star Selection", Points: 0.5, Cap: 5},
			{Type: "GoldGlove", Label: "Gold Glove", Points: 0.5, Cap: 3},
			{Type: "SilverSlugger", Label: "Silver Slugger", Points: 0.5, Cap: 3},
			{Type: "ROY", Label: "Rookie of the Year", Points: 2, Cap: 2},
			{Type: "WorldSeries", Label: "World Series Title", Points: 1, Cap: 3},
			{Type: "WSMVP", Label: "World Series MVP", Points: 2, Cap: 4},
		},
		Thresholds: scoring.DefaultThresholds,
		Scales:     similarity.DefaultScales,
		Aging:      aging.Default(),
		Outcome:    scoring.DefaultBallotTable(),
	}
}

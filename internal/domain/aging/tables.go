package aging

// Version of the default tables below.
const Version = "v1"

// HitterMultiplier is the hitter/skater performance curve. Peak runs 26-29.
var HitterMultiplier = Curve{
	Name:    "hitter-multiplier",
	Version: Version,
	Points: []Point{
		{Age: 20, Value: 0.70},
		{Age: 23, Value: 0.85},
		{Age: 26, Value: 1.00},
		{Age: 29, Value: 1.00},
		{Age: 32, Value: 0.88},
		{Age: 35, Value: 0.70},
		{Age: 38, Value: 0.50},
		{Age: 42, Value: 0.25},
	},
}

// PitcherMultiplier is the pitcher/goalie performance curve. It peaks a
// little earlier and falls off faster than HitterMultiplier.
var PitcherMultiplier = Curve{
	Name:    "pitcher-multiplier",
	Version: Version,
	Points: []Point{
		{Age: 20, Value: 0.65},
		{Age: 23, Value: 0.85},
		{Age: 26, Value: 1.00},
		{Age: 28, Value: 1.00},
		{Age: 31, Value: 0.85},
		{Age: 34, Value: 0.65},
		{Age: 37, Value: 0.45},
		{Age: 42, Value: 0.20},
	},
}

// Survival is the per-season probability a hitter/skater keeps playing.
var Survival = Curve{
	Name:    "survival",
	Version: Version,
	Points: []Point{
		{Age: 20, Value: 0.97},
		{Age: 30, Value: 0.95},
		{Age: 33, Value: 0.88},
		{Age: 36, Value: 0.75},
		{Age: 39, Value: 0.55},
		{Age: 42, Value: 0.30},
	},
}

// PitcherSurvival is the per-season probability a pitcher/goalie keeps
// playing.
var PitcherSurvival = Curve{
	Name:    "pitcher-survival",
	Version: Version,
	Points: []Point{
		{Age: 20, Value: 0.96},
		{Age: 30, Value: 0.92},
		{Age: 33, Value: 0.84},
		{Age: 36, Value: 0.70},
		{Age: 39, Value: 0.50},
		{Age: 42, Value: 0.25},
	},
}

// Default returns the v1 tables.
func Default() Tables {
	return Tables{
		Hitter:          HitterMultiplier,
		Pitcher:         PitcherMultiplier,
		Survival:        Survival,
		PitcherSurvival: PitcherSurvival,
	}
}

package model

import (
	"fmt"
	"strings"
)

// Role is the statistical role a player fills. Each role carries its own
// stat record shape.
type Role int

// Player roles.
const (
	RoleUnknown Role = iota
	RoleHitter
	RolePitcher
	RoleSkater
	RoleGoalie
)

var roleNames = map[Role]string{
	RoleHitter:  "hitter",
	RolePitcher: "pitcher",
	RoleSkater:  "skater",
	RoleGoalie:  "goalie",
}

func (r Role) String() string {
	if name, ok := roleNames[r]; ok {
		return name
	}
	return "unknown"
}

// PitcherLike reports whether the role ages on the pitcher/goalie curves.
func (r Role) PitcherLike() bool {
	return r == RolePitcher || r == RoleGoalie
}

// ParseRole parses a role name (case-insensitive).
func ParseRole(s string) (Role, error) {
	want := strings.ToLower(strings.TrimSpace(s))
	for r, name := range roleNames {
		if name == want {
			return r, nil
		}
	}
	return RoleUnknown, fmt.Errorf("unknown role %q", s)
}

// MarshalText implements encoding.TextMarshaler.
func (r Role) MarshalText() ([]byte, error) {
	return []byte(r.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (r *Role) UnmarshalText(b []byte) error {
	parsed, err := ParseRole(string(b))
	if err != nil {
		return err
	}
	*r = parsed
	return nil
}

// StatKey names a career statistic.
type StatKey string

// Stat keys. Rate keys are never accumulated across seasons.
const (
	StatGames          StatKey = "games"
	StatHits           StatKey = "hits"
	StatHomeRuns       StatKey = "home_runs"
	StatRBI            StatKey = "rbi"
	StatRuns           StatKey = "runs"
	StatStolenBases    StatKey = "stolen_bases"
	StatBattingAverage StatKey = "batting_average"
	StatWins           StatKey = "wins"
	StatStrikeouts     StatKey = "strikeouts"
	StatSaves          StatKey = "saves"
	StatInnings        StatKey = "innings_pitched"
	StatERA            StatKey = "era"
	StatGoals          StatKey = "goals"
	StatAssists        StatKey = "assists"
	StatPoints         StatKey = "points"
	StatShutouts       StatKey = "shutouts"
	StatSavePct        StatKey = "save_pct"
	StatGAA            StatKey = "gaa"
)

type statMeta struct {
	rate          bool
	lowerIsBetter bool
}

var statMetas = map[StatKey]statMeta{
	StatGames:          {},
	StatHits:           {},
	StatHomeRuns:       {},
	StatRBI:            {},
	StatRuns:           {},
	StatStolenBases:    {},
	StatBattingAverage: {rate: true},
	StatWins:           {},
	StatStrikeouts:     {},
	StatSaves:          {},
	StatInnings:        {},
	StatERA:            {rate: true, lowerIsBetter: true},
	StatGoals:          {},
	StatAssists:        {},
	StatPoints:         {},
	StatShutouts:       {},
	StatSavePct:        {rate: true},
	StatGAA:            {rate: true, lowerIsBetter: true},
}

// Known reports whether k is a recognized stat key.
func (k StatKey) Known() bool {
	_, ok := statMetas[k]
	return ok
}

// Rate reports whether k is a rate statistic.
func (k StatKey) Rate() bool { return statMetas[k].rate }

// LowerIsBetter reports whether smaller values of k are better.
func (k StatKey) LowerIsBetter() bool { return statMetas[k].lowerIsBetter }

// Keys returns every stat key carried by the role's record shape.
func (r Role) Keys() []StatKey {
	switch r {
	case RoleHitter:
		return []StatKey{StatGames, StatHits, StatHomeRuns, StatRBI, StatRuns, StatStolenBases, StatBattingAverage}
	case RolePitcher:
		return []StatKey{StatGames, StatWins, StatStrikeouts, StatSaves, StatInnings, StatERA}
	case RoleSkater:
		return []StatKey{StatGames, StatGoals, StatAssists, StatPoints}
	case RoleGoalie:
		return []StatKey{StatGames, StatWins, StatShutouts, StatSavePct, StatGAA}
	default:
		return nil
	}
}

// CountingKeys returns the role's accumulating (non-rate) stat keys.
func (r Role) CountingKeys() []StatKey {
	keys := r.Keys()
	out := make([]StatKey, 0, len(keys))
	for _, k := range keys {
		if !k.Rate() {
			out = append(out, k)
		}
	}
	return out
}

// StatLine is a role-tagged stat record. Keys the role does not carry read 0.
type StatLine interface {
	Role() Role
	Stat(key StatKey) float64
}

// HittingLine is a position player's baseball record.
type HittingLine struct {
	Games          float64 `json:"games" yaml:"games"`
	Hits           float64 `json:"hits" yaml:"hits"`
	HomeRuns       float64 `json:"home_runs" yaml:"home_runs"`
	RBI            float64 `json:"rbi" yaml:"rbi"`
	Runs           float64 `json:"runs" yaml:"runs"`
	StolenBases    float64 `json:"stolen_bases" yaml:"stolen_bases"`
	BattingAverage float64 `json:"batting_average" yaml:"batting_average"`
}

// Role implements StatLine.
func (HittingLine) Role() Role { return RoleHitter }

// Stat implements StatLine.
func (l HittingLine) Stat(key StatKey) float64 {
	switch key {
	case StatGames:
		return Finite(l.Games)
	case StatHits:
		return Finite(l.Hits)
	case StatHomeRuns:
		return Finite(l.HomeRuns)
	case StatRBI:
		return Finite(l.RBI)
	case StatRuns:
		return Finite(l.Runs)
	case StatStolenBases:
		return Finite(l.StolenBases)
	case StatBattingAverage:
		return Finite(l.BattingAverage)
	default:
		return 0
	}
}

// PitchingLine is a pitcher's baseball record.
type PitchingLine struct {
	Games          float64 `json:"games" yaml:"games"`
	Wins           float64 `json:"wins" yaml:"wins"`
	Strikeouts     float64 `json:"strikeouts" yaml:"strikeouts"`
	Saves          float64 `json:"saves" yaml:"saves"`
	InningsPitched float64 `json:"innings_pitched" yaml:"innings_pitched"`
	ERA            float64 `json:"era" yaml:"era"`
}

// Role implements StatLine.
func (PitchingLine) Role() Role { return RolePitcher }

// Stat implements StatLine.
func (l PitchingLine) Stat(key StatKey) float64 {
	switch key {
	case StatGames:
		return Finite(l.Games)
	case StatWins:
		return Finite(l.Wins)
	case StatStrikeouts:
		return Finite(l.Strikeouts)
	case StatSaves:
		return Finite(l.Saves)
	case StatInnings:
		return Finite(l.InningsPitched)
	case StatERA:
		return Finite(l.ERA)
	default:
		return 0
	}
}

// SkatingLine is a hockey skater's record. Points are derived.
type SkatingLine struct {
	Games   float64 `json:"games" yaml:"games"`
	Goals   float64 `json:"goals" yaml:"goals"`
	Assists float64 `json:"assists" yaml:"assists"`
}

// Role implements StatLine.
func (SkatingLine) Role() Role { return RoleSkater }

// Stat implements StatLine.
func (l SkatingLine) Stat(key StatKey) float64 {
	switch key {
	case StatGames:
		return Finite(l.Games)
	case StatGoals:
		return Finite(l.Goals)
	case StatAssists:
		return Finite(l.Assists)
	case StatPoints:
		return Finite(l.Goals) + Finite(l.Assists)
	default:
		return 0
	}
}

// GoaltendingLine is a hockey goalie's record.
type GoaltendingLine struct {
	Games    float64 `json:"games" yaml:"games"`
	Wins     float64 `json:"wins" yaml:"wins"`
	Shutouts float64 `json:"shutouts" yaml:"shutouts"`
	SavePct  float64 `json:"save_pct" yaml:"save_pct"`
	GAA      float64 `json:"gaa" yaml:"gaa"`
}

// Role implements StatLine.
func (GoaltendingLine) Role() Role { return RoleGoalie }

// Stat implements StatLine.
func (l GoaltendingLine) Stat(key StatKey) float64 {
	switch key {
	case StatGames:
		return Finite(l.Games)
	case StatWins:
		return Finite(l.Wins)
	case StatShutouts:
		return Finite(l.Shutouts)
	case StatSavePct:
		return Finite(l.SavePct)
	case StatGAA:
		return Finite(l.GAA)
	default:
		return 0
	}
}

// Totals is a role-tagged accumulated record, used where stats are built up
// rather than observed (projected careers).
type Totals struct {
	role   Role
	values map[StatKey]float64
}

// NewTotals returns an empty record for role.
func NewTotals(role Role) Totals {
	return Totals{role: role, values: make(map[StatKey]float64)}
}

// TotalsOf copies every key the line's role carries. A nil line yields an
// empty record with an unknown role.
func TotalsOf(line StatLine) Totals {
	if line == nil {
		return NewTotals(RoleUnknown)
	}
	t := NewTotals(line.Role())
	for _, k := range line.Role().Keys() {
		t.values[k] = line.Stat(k)
	}
	return t
}

// Role implements StatLine.
func (t Totals) Role() Role { return t.role }

// Stat implements StatLine.
func (t Totals) Stat(key StatKey) float64 { return Finite(t.values[key]) }

// Add accumulates v into key.
func (t Totals) Add(key StatKey, v float64) {
	t.values[key] = Finite(t.values[key]) + Finite(v)
}

// Set overwrites key.
func (t Totals) Set(key StatKey, v float64) {
	t.values[key] = Finite(v)
}

// Map returns a copy of the values keyed by stat.
func (t Totals) Map() map[StatKey]float64 {
	out := make(map[StatKey]float64, len(t.values))
	for k, v := range t.values {
		out[k] = v
	}
	return out
}

// SeasonLine pairs a season with its stat record.
type SeasonLine struct {
	Season int
	Line   StatLine
}

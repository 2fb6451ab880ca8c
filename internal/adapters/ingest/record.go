// Package ingest decodes player records from JSON or YAML and converts them
// into domain players for a sport catalog.
package ingest

import (
	"fmt"
	"sort"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/okian/cooperstown/internal/domain/model"
	"github.com/okian/cooperstown/internal/domain/sport"
)

// SeasonRecord is one season row.
type SeasonRecord struct {
	Season int               `json:"season" yaml:"season" validate:"gte=1850,lte=2200"`
	Age    int               `json:"age" yaml:"age" validate:"gte=0,lte=60"`
	Value  Number            `json:"value" yaml:"value"`
	Team   string            `json:"team,omitempty" yaml:"team,omitempty"`
	Stats  map[string]Number `json:"stats,omitempty" yaml:"stats,omitempty"`
}

// AwardRecord is an award, optionally repeated Count times.
type AwardRecord struct {
	Type   string `json:"type" yaml:"type" validate:"required"`
	Season int    `json:"season,omitempty" yaml:"season,omitempty"`
	Count  int    `json:"count,omitempty" yaml:"count,omitempty" validate:"gte=0,lte=100"`
}

// InductionRecord marks an inducted player.
type InductionRecord struct {
	Year    int     `json:"year" yaml:"year" validate:"gte=1936"`
	Method  string  `json:"method,omitempty" yaml:"method,omitempty"`
	Ballot  int     `json:"ballot,omitempty" yaml:"ballot,omitempty"`
	VotePct float64 `json:"vote_pct,omitempty" yaml:"vote_pct,omitempty" validate:"gte=0,lte=100"`
}

// PlayerRecord is the wire shape of a player.
type PlayerRecord struct {
	ID        string            `json:"id,omitempty" yaml:"id,omitempty" validate:"max=64"`
	Name      string            `json:"name" yaml:"name" validate:"required,max=128"`
	Sport     string            `json:"sport,omitempty" yaml:"sport,omitempty"`
	Position  string            `json:"position" yaml:"position" validate:"required,max=4"`
	Role      string            `json:"role,omitempty" yaml:"role,omitempty" validate:"omitempty,oneof=hitter pitcher skater goalie"`
	Age       int               `json:"age,omitempty" yaml:"age,omitempty" validate:"gte=0,lte=60"`
	Active    bool              `json:"active,omitempty" yaml:"active,omitempty"`
	Seasons   []SeasonRecord    `json:"seasons" yaml:"seasons" validate:"dive"`
	Career    map[string]Number `json:"career,omitempty" yaml:"career,omitempty"`
	Awards    []AwardRecord     `json:"awards,omitempty" yaml:"awards,omitempty" validate:"dive"`
	Induction *InductionRecord  `json:"induction,omitempty" yaml:"induction,omitempty"`
}

// Document is the top-level file shape. A bare list of players is also
// accepted.
type Document struct {
	Players []PlayerRecord `json:"players" yaml:"players"`
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// ToPlayer validates r and converts it for catalog c. The position must
// exist in the catalog; the role defaults to the position's role.
func (r PlayerRecord) ToPlayer(c sport.Catalog) (model.Player, error) {
	if err := validate.Struct(r); err != nil {
		return model.Player{}, fmt.Errorf("%s: %w: %w", r.label(), ErrInvalidPlayer, err)
	}
	if r.Sport != "" && !strings.EqualFold(r.Sport, c.Sport) {
		return model.Player{}, fmt.Errorf("%s: sport %q, want %q: %w", r.label(), r.Sport, c.Sport, ErrInvalidPlayer)
	}
	pos := strings.ToUpper(strings.TrimSpace(r.Position))
	def, ok := c.Position(pos)
	if !ok {
		return model.Player{}, fmt.Errorf("%s: unknown %s position %q: %w", r.label(), c.Sport, r.Position, ErrInvalidPlayer)
	}
	role := def.Role
	if r.Role != "" {
		parsed, err := model.ParseRole(r.Role)
		if err != nil {
			return model.Player{}, fmt.Errorf("%s: %w: %w", r.label(), ErrInvalidPlayer, err)
		}
		role = parsed
	}

	p := model.Player{
		ID:       r.ID,
		Name:     strings.TrimSpace(r.Name),
		Sport:    c.Sport,
		Position: pos,
		Age:      r.Age,
		Active:   r.Active,
	}

	seasons := append([]SeasonRecord(nil), r.Seasons...)
	sort.SliceStable(seasons, func(i, j int) bool { return seasons[i].Season < seasons[j].Season })
	summed := model.NewTotals(role)
	rateSums := make(map[model.StatKey]float64)
	var rateGames float64
	for _, s := range seasons {
		p.Seasons = append(p.Seasons, model.SeasonValue{
			Season: s.Season,
			Value:  s.Value.Float(),
			Age:    s.Age,
			Team:   s.Team,
		})
		if len(s.Stats) > 0 {
			line := StatLine(role, s.Stats)
			p.SeasonLines = append(p.SeasonLines, model.SeasonLine{Season: s.Season, Line: line})
			for _, k := range role.CountingKeys() {
				summed.Add(k, line.Stat(k))
			}
			g := line.Stat(model.StatGames)
			rateGames += g
			for _, k := range role.Keys() {
				if k.Rate() {
					rateSums[k] += line.Stat(k) * g
				}
			}
		}
	}
	// rate stats over summed seasons are games-weighted
	if rateGames > 0 {
		for k, v := range rateSums {
			summed.Set(k, v/rateGames)
		}
	}
	if p.Age == 0 && len(p.Seasons) > 0 {
		p.Age = p.Seasons[len(p.Seasons)-1].Age
	}

	switch {
	case len(r.Career) > 0:
		p.Career = StatLine(role, r.Career)
	case len(p.SeasonLines) > 0:
		p.Career = summed
	default:
		p.Career = StatLine(role, nil)
	}

	for _, a := range r.Awards {
		n := max(a.Count, 1)
		for i := 0; i < n; i++ {
			p.Awards = append(p.Awards, model.Award{Type: a.Type, Season: a.Season})
		}
	}
	if r.Induction != nil {
		p.Induction = &model.Induction{
			Year:    r.Induction.Year,
			Method:  r.Induction.Method,
			Ballot:  r.Induction.Ballot,
			VotePct: r.Induction.VotePct,
		}
	}
	return p, nil
}

func (r PlayerRecord) label() string {
	if r.ID != "" {
		return r.ID
	}
	if r.Name != "" {
		return r.Name
	}
	return "player"
}

// StatLine builds the role's typed stat record from loose keys. Unknown
// keys are ignored.
func StatLine(role model.Role, stats map[string]Number) model.StatLine {
	get := func(k model.StatKey) float64 { return stats[string(k)].Float() }
	switch role {
	case model.RoleHitter:
		return model.HittingLine{
			Games:          get(model.StatGames),
			Hits:           get(model.StatHits),
			HomeRuns:       get(model.StatHomeRuns),
			RBI:            get(model.StatRBI),
			Runs:           get(model.StatRuns),
			StolenBases:    get(model.StatStolenBases),
			BattingAverage: get(model.StatBattingAverage),
		}
	case model.RolePitcher:
		return model.PitchingLine{
			Games:          get(model.StatGames),
			Wins:           get(model.StatWins),
			Strikeouts:     get(model.StatStrikeouts),
			Saves:          get(model.StatSaves),
			InningsPitched: get(model.StatInnings),
			ERA:            get(model.StatERA),
		}
	case model.RoleSkater:
		return model.SkatingLine{
			Games:   get(model.StatGames),
			Goals:   get(model.StatGoals),
			Assists: get(model.StatAssists),
		}
	case model.RoleGoalie:
		return model.GoaltendingLine{
			Games:    get(model.StatGames),
			Wins:     get(model.StatWins),
			Shutouts: get(model.StatShutouts),
			SavePct:  get(model.StatSavePct),
			GAA:      get(model.StatGAA),
		}
	default:
		return model.NewTotals(role)
	}
}

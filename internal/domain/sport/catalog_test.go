package sport_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/okian/cooperstown/internal/domain/jaws"
	"github.com/okian/cooperstown/internal/domain/model"
	"github.com/okian/cooperstown/internal/domain/projection"
	"github.com/okian/cooperstown/internal/domain/scoring"
	"github.com/okian/cooperstown/internal/domain/sport"
)

func TestBuiltInCatalogsValidate(t *testing.T) {
	for _, name := range sport.Names() {
		t.Run(name, func(t *testing.T) {
			c, err := sport.Lookup(name)
			require.NoError(t, err)
			assert.NoError(t, c.Validate())
			for _, p := range c.Positions {
				assert.Contains(t, c.Baselines, p.Code)
			}
		})
	}
}

func TestLookup(t *testing.T) {
	c, err := sport.Lookup("  Baseball ")
	require.NoError(t, err)
	assert.Equal(t, sport.Baseball, c.Sport)

	_, err = sport.Lookup("cricket")
	assert.ErrorIs(t, err, sport.ErrUnknownSport)
	assert.Equal(t, []string{"baseball", "hockey"}, sport.Names())
}

func TestBaseballAffinity(t *testing.T) {
	aff := sport.BaseballCatalog().Affinity()

	assert.Equal(t, 0.8, aff.Affinity("SS", "2B"))
	assert.Equal(t, 0.8, aff.Affinity("1B", "3B"))
	assert.Equal(t, 0.8, aff.Affinity("LF", "RF"))
	assert.Equal(t, 0.1, aff.Affinity("SS", "SP"))
	assert.Equal(t, 0.1, aff.Affinity("RP", "DH"))
	assert.Equal(t, 0.6, aff.Affinity("SP", "RP"))
	assert.Equal(t, 0.5, aff.Affinity("C", "1B"))
	assert.Equal(t, 0.5, aff.Affinity("DH", "C"))
	assert.Equal(t, 0.3, aff.Affinity("C", "SS"))
	assert.Equal(t, 1.0, aff.Affinity("CF", "CF"))
}

func TestHockeyAffinity(t *testing.T) {
	aff := sport.HockeyCatalog().Affinity()

	assert.Equal(t, 0.8, aff.Affinity("LW", "RW"))
	assert.Equal(t, 0.5, aff.Affinity("RW", "C"))
	assert.Equal(t, 0.3, aff.Affinity("D", "LW"))
	assert.Equal(t, 0.1, aff.Affinity("G", "D"))
}

func TestRole(t *testing.T) {
	c := sport.BaseballCatalog()
	assert.Equal(t, model.RolePitcher, c.Role("SP"))
	assert.Equal(t, model.RoleHitter, c.Role("CF"))
	assert.Equal(t, model.RoleUnknown, c.Role("QB"))

	h := sport.HockeyCatalog()
	assert.Equal(t, model.RoleGoalie, h.Role("G"))
}

func TestValidateRejectsGaps(t *testing.T) {
	c := sport.BaseballCatalog()
	delete(c.Baselines, "DH")
	err := c.Validate()
	assert.ErrorIs(t, err, sport.ErrInvalidCatalog)
	assert.Contains(t, err.Error(), "DH")

	c = sport.BaseballCatalog()
	c.Awards = append(c.Awards, scoring.AwardRule{Type: "Bad", Points: 5, Cap: 1})
	assert.ErrorIs(t, c.Validate(), sport.ErrInvalidCatalog)

	c = sport.BaseballCatalog()
	c.Neighbors["SS"] = append(c.Neighbors["SS"], "QB")
	assert.ErrorIs(t, c.Validate(), sport.ErrInvalidCatalog)

	c = sport.BaseballCatalog()
	c.Thresholds = scoring.Thresholds{Elite: 2, Solid: 3}
	assert.ErrorIs(t, c.Validate(), sport.ErrInvalidCatalog)
}

func TestCatalogBuildsEngine(t *testing.T) {
	c := sport.BaseballCatalog()
	seasons := make([]model.SeasonValue, 0, 12)
	for i := 0; i < 12; i++ {
		seasons = append(seasons, model.SeasonValue{Season: 2000 + i, Value: 6, Age: 24 + i})
	}

	cv := jaws.ComputeCareerValue(seasons, "SS")
	cmp, err := jaws.CompareToBaseline(cv, c.Baselines)
	require.NoError(t, err)

	b := c.Scorer().Score(scoring.Input{
		Comparison: cmp,
		Awards:     []model.Award{{Type: "MVP"}, {Type: "AllStar"}, {Type: "AllStar"}},
		Career:     model.HittingLine{Hits: 2500},
		Role:       model.RoleHitter,
		Seasons:    seasons,
	})
	assert.Equal(t, 6.0, b.Components.Awards)
	assert.Equal(t, 48, b.Overall)
	assert.Equal(t, scoring.TierBorderline, b.Tier)

	out, err := c.Projector().Project(projectionInput(seasons))
	require.NoError(t, err)
	assert.True(t, out.Applicable)

	m := c.Matcher([]model.Player{{ID: "a", Name: "A", Position: "2B", Seasons: seasons}})
	res := m.FindSimilar(seasons, "SS", "")
	require.Len(t, res.Comparables, 1)
	assert.InDelta(t, 96.6, res.Comparables[0].Score, 1e-9)
}

func TestLoadOverlay(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "overlay.yaml")
	body := `
baselines:
  SS:
    career: 70
    peak: 45
    blended: 57.5
thresholds:
  elite: 6
awards:
  - type: MVP
    label: Most Valuable Player
    points: 4
    cap: 12
milestones:
  - stat: hits
    threshold: 2500
    label: 2,500 Hits
    role: hitter
    weight: 1
`
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))

	c, err := sport.LoadOverlay(sport.BaseballCatalog(), path)
	require.NoError(t, err)

	assert.Equal(t, jaws.Baseline{Career: 70, Peak: 45, Blended: 57.5}, c.Baselines["SS"])
	assert.Equal(t, 53.4, c.Baselines["C"].Career)
	assert.Equal(t, 6.0, c.Thresholds.Elite)
	assert.Equal(t, 3.0, c.Thresholds.Solid)
	require.Len(t, c.Awards, 1)
	assert.Equal(t, 12.0, c.Awards[0].Cap)
	require.Len(t, c.Milestones, 1)
	assert.Equal(t, model.RoleHitter, c.Milestones[0].Role)
	assert.Equal(t, model.StatHits, c.Milestones[0].Stat)

	assert.Equal(t, 66.7, sport.BaseballCatalog().Baselines["SS"].Career)
}

func TestLoadOverlayErrors(t *testing.T) {
	_, err := sport.LoadOverlay(sport.BaseballCatalog(), filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, sport.ErrLoadOverlay)

	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("baselines:\n  SS:\n    career: -1\n    peak: 1\n    blended: 1\n"), 0o600))
	_, err = sport.LoadOverlay(sport.BaseballCatalog(), path)
	assert.ErrorIs(t, err, sport.ErrInvalidCatalog)
}

func projectionInput(seasons []model.SeasonValue) projection.Input {
	return projection.Input{
		Seasons:  seasons,
		Position: "SS",
		Age:      seasons[len(seasons)-1].Age,
		Role:     model.RoleHitter,
	}
}

package sport

import (
	"fmt"
	"maps"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/okian/cooperstown/internal/domain/jaws"
	"github.com/okian/cooperstown/internal/domain/scoring"
)

// LoadOverlay layers a YAML file over c. Baselines merge per position;
// awards, milestones and outcome replace the built-in lists when present;
// thresholds and scales override field by field. The result is validated.
//
// Example:
//
//	baselines:
//	  SS: {career: 67.0, peak: 43.0, blended: 55.0}
//	thresholds:
//	  elite: 6
func LoadOverlay(c Catalog, path string) (Catalog, error) {
	k := koanf.New(".")
	if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
		return Catalog{}, fmt.Errorf("%s: %w: %w", path, ErrLoadOverlay, err)
	}
	return applyOverlay(c, k)
}

func applyOverlay(c Catalog, k *koanf.Koanf) (Catalog, error) {
	conf := koanf.UnmarshalConf{Tag: "koanf"}
	out := c
	out.Baselines = maps.Clone(c.Baselines)
	if out.Baselines == nil {
		out.Baselines = jaws.Baselines{}
	}

	if k.Exists("baselines") {
		var bs map[string]jaws.Baseline
		if err := k.UnmarshalWithConf("baselines", &bs, conf); err != nil {
			return Catalog{}, fmt.Errorf("baselines: %w: %w", ErrLoadOverlay, err)
		}
		maps.Copy(out.Baselines, bs)
	}
	if k.Exists("awards") {
		var awards []scoring.AwardRule
		if err := k.UnmarshalWithConf("awards", &awards, conf); err != nil {
			return Catalog{}, fmt.Errorf("awards: %w: %w", ErrLoadOverlay, err)
		}
		out.Awards = awards
	}
	if k.Exists("milestones") {
		var ms []scoring.Milestone
		if err := k.UnmarshalWithConf("milestones", &ms, conf); err != nil {
			return Catalog{}, fmt.Errorf("milestones: %w: %w", ErrLoadOverlay, err)
		}
		out.Milestones = ms
	}
	if k.Exists("thresholds") {
		if err := k.UnmarshalWithConf("thresholds", &out.Thresholds, conf); err != nil {
			return Catalog{}, fmt.Errorf("thresholds: %w: %w", ErrLoadOverlay, err)
		}
	}
	if k.Exists("scales") {
		if err := k.UnmarshalWithConf("scales", &out.Scales, conf); err != nil {
			return Catalog{}, fmt.Errorf("scales: %w: %w", ErrLoadOverlay, err)
		}
	}
	if k.Exists("outcome") {
		var table scoring.BallotTable
		if err := k.UnmarshalWithConf("outcome", &table, conf); err != nil {
			return Catalog{}, fmt.Errorf("outcome: %w: %w", ErrLoadOverlay, err)
		}
		out.Outcome = table
	}

	if err := out.Validate(); err != nil {
		return Catalog{}, err
	}
	return out, nil
}

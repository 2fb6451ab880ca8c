package scoring

import "fmt"

// Tier is the ordinal worthiness label derived from the overall score.
type Tier int

// Tiers from lowest to highest.
const (
	TierNotCaliber Tier = iota
	TierUnlikely
	TierBorderline
	TierSolid
	TierStrong
	TierLock
)

var tierFloors = []struct {
	min  int
	tier Tier
}{
	{90, TierLock},
	{75, TierStrong},
	{60, TierSolid},
	{45, TierBorderline},
	{25, TierUnlikely},
}

var tierLabels = map[Tier]string{
	TierNotCaliber: "Not HOF Caliber",
	TierUnlikely:   "Unlikely",
	TierBorderline: "Borderline",
	TierSolid:      "Solid Candidate",
	TierStrong:     "Strong Candidate",
	TierLock:       "First Ballot Lock",
}

// TierFor maps an overall score to its tier. Floors are inclusive.
func TierFor(overall int) Tier {
	for _, f := range tierFloors {
		if overall >= f.min {
			return f.tier
		}
	}
	return TierNotCaliber
}

func (t Tier) String() string {
	if l, ok := tierLabels[t]; ok {
		return l
	}
	return fmt.Sprintf("Tier(%d)", int(t))
}

// MarshalText renders the tier label.
func (t Tier) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

// UnmarshalText parses a tier label.
func (t *Tier) UnmarshalText(b []byte) error {
	for k, v := range tierLabels {
		if v == string(b) {
			*t = k
			return nil
		}
	}
	return fmt.Errorf("tier %q: %w", string(b), ErrUnknownTier)
}

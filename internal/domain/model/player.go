package model

// Player aggregates everything the upstream data layer supplies for one
// player. The engine's entry points take its parts explicitly.
type Player struct {
	ID          string
	Name        string
	Sport       string
	Position    string
	Age         int
	Active      bool
	Seasons     []SeasonValue
	SeasonLines []SeasonLine
	Career      StatLine
	Awards      []Award
	Induction   *Induction
}

// Inducted reports whether the player carries an induction record.
func (p *Player) Inducted() bool {
	return p.Induction != nil
}

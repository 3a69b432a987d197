// Package buff tracks the status effects active during a craft. Buffs are
// small value types grouped by the state category they modify (quality,
// progress, durability) plus combo triggers and specialist resources; the
// whole State is comparable so search code can use it as a map key.
//
// Durational buffs hold their remaining turns directly: zero means inactive.
// Activate overwrites the duration at base plus any condition bonus whether
// or not the buff is already running. Decay ticks down exactly one turn,
// saturating at inactive. Consuming an inactive buff is a programming error
// and panics.
package buff

// State is the full set of buffs on a craft in flight.
type State struct {
	Quality    QualitySet
	Progress   ProgressSet
	Durability DurabilitySet
	Combo      ComboTriggers

	// Specialist tracks crafter's delineation charges.
	Specialist Specialist
	// HeartAndSoul is the once-per-craft good-gate override.
	HeartAndSoul HeartAndSoul
}

// Decay ticks every durational buff down one turn. Combo triggers decay too;
// they live exactly one turn like any other buff.
func (s *State) Decay() {
	s.Quality.Decay()
	s.Progress.Decay()
	s.Durability.Decay()
	s.Combo.Decay()
}

// DecayCombo expires combo triggers only. Time-stopped actions do not tick
// buffs, but they still break combos.
func (s *State) DecayCombo() {
	s.Combo.Decay()
}

// Repair is the durability restored at the end of a turn by active buffs.
func (s State) Repair() int {
	return s.Durability.Repair()
}

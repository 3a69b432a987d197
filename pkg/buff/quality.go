package buff

// MaxInnerQuiet is the stack cap on InnerQuiet.
const MaxInnerQuiet = 10

// QualitySet groups the buffs that modify quality gains.
type QualitySet struct {
	InnerQuiet   InnerQuiet
	GreatStrides GreatStrides
	Innovation   Innovation
}

// Decay ticks the durational quality buffs. InnerQuiet does not decay; it
// only leaves through Byregot's Blessing or the end of the craft.
func (s *QualitySet) Decay() {
	s.GreatStrides = s.GreatStrides.Decay()
	s.Innovation = s.Innovation.Decay()
}

// EfficiencyMod is the summed efficiency bonus from Great Strides and
// Innovation, before dividing by 100. InnerQuiet is excluded; its multiplier
// applies separately in the quality formula.
func (s QualitySet) EfficiencyMod() int {
	mod := 0
	if s.GreatStrides.Active() {
		mod += greatStridesBonus
	}
	if s.Innovation.Active() {
		mod += innovationBonus
	}
	return mod
}

// InnerQuiet is a stacking counter granting 10% extra quality per stack and
// gating Byregot's Blessing and Trained Finesse. Zero stacks means inactive.
type InnerQuiet uint8

// Active reports whether any stacks are held.
func (b InnerQuiet) Active() bool { return b > 0 }

// Stacks returns the current stack count.
func (b InnerQuiet) Stacks() int { return int(b) }

// Add grants n stacks, capped at MaxInnerQuiet.
func (b InnerQuiet) Add(n int) InnerQuiet {
	v := int(b) + n
	if v > MaxInnerQuiet {
		v = MaxInnerQuiet
	}
	return InnerQuiet(v)
}

// Consume drains all stacks, returning the count spent. Panics if inactive.
func (b InnerQuiet) Consume() (InnerQuiet, int) {
	if b == 0 {
		panic("buff: consume of inactive Inner Quiet")
	}
	return 0, int(b)
}

const (
	greatStridesDuration = 3
	greatStridesBonus    = 100

	innovationDuration = 4
	innovationBonus    = 50
)

// GreatStrides doubles the next quality action's efficiency. It is consumed
// by the first quality action used under it.
type GreatStrides uint8

// Active reports whether the buff is running.
func (b GreatStrides) Active() bool { return b > 0 }

// Activate starts the buff at its base duration plus bonus, replacing any
// remaining turns.
func (b GreatStrides) Activate(bonus int) GreatStrides {
	return GreatStrides(greatStridesDuration + bonus)
}

// Decay ticks the buff down one turn.
func (b GreatStrides) Decay() GreatStrides {
	if b == 0 {
		return 0
	}
	return b - 1
}

// Consume ends the buff early. Panics if inactive.
func (b GreatStrides) Consume() GreatStrides {
	if b == 0 {
		panic("buff: consume of inactive Great Strides")
	}
	return 0
}

// Innovation adds 50 to quality action efficiency modifiers while active.
type Innovation uint8

// Active reports whether the buff is running.
func (b Innovation) Active() bool { return b > 0 }

// Activate starts the buff at its base duration plus bonus.
func (b Innovation) Activate(bonus int) Innovation {
	return Innovation(innovationDuration + bonus)
}

// Decay ticks the buff down one turn.
func (b Innovation) Decay() Innovation {
	if b == 0 {
		return 0
	}
	return b - 1
}

package buff

const (
	manipulationDuration = 8
	manipulationRepair   = 5

	wasteNotDuration       = 4
	wasteNotDoubleDuration = 8
	wasteNotDiscount       = 50
)

// DurabilitySet groups the buffs that modify durability costs and repair.
type DurabilitySet struct {
	Manipulation Manipulation
	WasteNot     WasteNot
}

// Decay ticks the durational durability buffs.
func (s *DurabilitySet) Decay() {
	s.Manipulation = s.Manipulation.Decay()
	s.WasteNot = s.WasteNot.Decay()
}

// Repair is the durability restored at the end of a turn.
func (s DurabilitySet) Repair() int {
	if s.Manipulation.Active() {
		return manipulationRepair
	}
	return 0
}

// CostMod is the percentage multiplier on action durability costs.
func (s DurabilitySet) CostMod() int {
	if s.WasteNot.Active() {
		return wasteNotDiscount
	}
	return 100
}

// Manipulation repairs 5 durability at the end of every turn that time
// passes, while the craft is still in progress.
type Manipulation uint8

// Active reports whether the buff is running.
func (b Manipulation) Active() bool { return b > 0 }

// Activate starts the buff at its base duration plus bonus.
func (b Manipulation) Activate(bonus int) Manipulation {
	return Manipulation(manipulationDuration + bonus)
}

// Decay ticks the buff down one turn.
func (b Manipulation) Decay() Manipulation {
	if b == 0 {
		return 0
	}
	return b - 1
}

// Consume ends the buff without repairing. Recasting Manipulation consumes
// the running instance so the recast turn gets no repair. Panics if inactive.
func (b Manipulation) Consume() Manipulation {
	if b == 0 {
		panic("buff: consume of inactive Manipulation")
	}
	return 0
}

// WasteNotKind distinguishes which action started the discount.
type WasteNotKind uint8

const (
	// WasteNotSingle is the 4-turn variant.
	WasteNotSingle WasteNotKind = iota
	// WasteNotDouble is the 8-turn variant.
	WasteNotDouble
)

// WasteNot halves action durability costs while active. The two actions
// overwrite each other in either direction, so a single buff with a kind tag
// tracks both.
type WasteNot struct {
	Kind  WasteNotKind
	Turns uint8
}

// Active reports whether the discount is running.
func (b WasteNot) Active() bool { return b.Turns > 0 }

// Activate starts the 4-turn variant, replacing any running instance.
func (b WasteNot) Activate(bonus int) WasteNot {
	return WasteNot{Kind: WasteNotSingle, Turns: uint8(wasteNotDuration + bonus)}
}

// ActivateDouble starts the 8-turn variant, replacing any running instance.
func (b WasteNot) ActivateDouble(bonus int) WasteNot {
	return WasteNot{Kind: WasteNotDouble, Turns: uint8(wasteNotDoubleDuration + bonus)}
}

// Decay ticks the buff down one turn.
func (b WasteNot) Decay() WasteNot {
	if b.Turns == 0 {
		return WasteNot{}
	}
	b.Turns--
	if b.Turns == 0 {
		return WasteNot{}
	}
	return b
}

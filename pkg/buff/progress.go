package buff

const (
	venerationDuration = 4
	venerationBonus    = 50

	muscleMemoryDuration = 5
	muscleMemoryBonus    = 100

	finalAppraisalDuration = 5
)

// ProgressSet groups the buffs that modify progress gains.
type ProgressSet struct {
	Veneration     Veneration
	MuscleMemory   MuscleMemory
	FinalAppraisal FinalAppraisal
}

// Decay ticks the durational progress buffs.
func (s *ProgressSet) Decay() {
	s.Veneration = s.Veneration.Decay()
	s.MuscleMemory = s.MuscleMemory.Decay()
	s.FinalAppraisal = s.FinalAppraisal.Decay()
}

// EfficiencyMod is the efficiency bonus from Veneration, before dividing
// by 100.
func (s ProgressSet) EfficiencyMod() int {
	if s.Veneration.Active() {
		return venerationBonus
	}
	return 0
}

// BonusEfficiency is the flat efficiency added to the next progress action
// by Muscle Memory.
func (s ProgressSet) BonusEfficiency() int {
	if s.MuscleMemory.Active() {
		return muscleMemoryBonus
	}
	return 0
}

// Veneration adds 50 to progress action efficiency modifiers while active.
type Veneration uint8

// Active reports whether the buff is running.
func (b Veneration) Active() bool { return b > 0 }

// Activate starts the buff at its base duration plus bonus.
func (b Veneration) Activate(bonus int) Veneration {
	return Veneration(venerationDuration + bonus)
}

// Decay ticks the buff down one turn.
func (b Veneration) Decay() Veneration {
	if b == 0 {
		return 0
	}
	return b - 1
}

// MuscleMemory adds 100 to the base efficiency of the next progress action,
// which consumes it.
type MuscleMemory uint8

// Active reports whether the buff is running.
func (b MuscleMemory) Active() bool { return b > 0 }

// Activate starts the buff at its base duration plus bonus.
func (b MuscleMemory) Activate(bonus int) MuscleMemory {
	return MuscleMemory(muscleMemoryDuration + bonus)
}

// Decay ticks the buff down one turn.
func (b MuscleMemory) Decay() MuscleMemory {
	if b == 0 {
		return 0
	}
	return b - 1
}

// Consume ends the buff early. Panics if inactive.
func (b MuscleMemory) Consume() MuscleMemory {
	if b == 0 {
		panic("buff: consume of inactive Muscle Memory")
	}
	return 0
}

// FinalAppraisal pins the next craft-finishing progress gain at one short of
// the target, consuming the buff.
type FinalAppraisal uint8

// Active reports whether the buff is running.
func (b FinalAppraisal) Active() bool { return b > 0 }

// Activate starts the buff at its base duration plus bonus.
func (b FinalAppraisal) Activate(bonus int) FinalAppraisal {
	return FinalAppraisal(finalAppraisalDuration + bonus)
}

// Decay ticks the buff down one turn.
func (b FinalAppraisal) Decay() FinalAppraisal {
	if b == 0 {
		return 0
	}
	return b - 1
}

// Consume ends the buff early. Panics if inactive.
func (b FinalAppraisal) Consume() FinalAppraisal {
	if b == 0 {
		panic("buff: consume of inactive Final Appraisal")
	}
	return 0
}

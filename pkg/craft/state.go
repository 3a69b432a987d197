package craft

import (
	"github.com/jwebster45206/craft-engine/pkg/buff"
	"github.com/jwebster45206/craft-engine/pkg/condition"
	"github.com/jwebster45206/craft-engine/pkg/dice"
)

// State is one point in a craft. Progress and quality only grow; durability
// and CP are signed and may legitimately dip below zero in planning contexts,
// so the engine never clamps them at the bottom. The zero State is not
// meaningful; use Simulator.Initial.
type State struct {
	Progress uint32
	Quality  uint32

	Durability int8
	CP         int16

	Condition condition.Condition
	Buffs     buff.State

	// FirstStep is true until an action passes time, gating the openers.
	FirstStep bool
}

// Initial is the state before the first action: full durability and CP,
// the rule-set's starting condition, and specialist charges if the
// character has them.
func (s *Simulator) Initial() State {
	st := State{
		Durability: s.Recipe.MaxDurability,
		CP:         s.Character.MaxCP,
		Condition:  s.Recipe.RuleSet.Initial(),
		FirstStep:  true,
	}
	st.Buffs.Specialist = buff.NotSpecialist
	if s.Character.Specialist {
		st.Buffs.Specialist = buff.NewSpecialist()
	}
	return st
}

// Delta is the full effect of executing one action: additive state changes,
// the replacement buff set, and the flags the pipeline derived on the way.
type Delta struct {
	Progress uint32
	Quality  uint32

	// Durability is the action's durability cost, zero or negative, after
	// condition and Waste Not scaling. Repair is the end-of-turn
	// restoration from buffs, tracked separately because failing or
	// finishing the craft forfeits it.
	Durability int8
	Repair     int8

	CP int16

	// Buffs replaces the state's buff set wholesale.
	Buffs buff.State

	// TimePassed is false for the instant actions that do not tick buffs.
	TimePassed bool
	// ProgressCapped means Final Appraisal pinned a finishing blow at one
	// short of the target.
	ProgressCapped bool
}

// Apply folds a delta into the state. Durability and CP saturate at their
// maxima and are left unclamped below zero. The condition does not advance
// here; GenerateNext samples it.
func (st State) Apply(s *Simulator, d Delta) State {
	next := st
	next.Progress += d.Progress
	next.Quality += d.Quality

	dur := int(st.Durability) + int(d.Durability) + int(d.Repair)
	if max := int(s.Recipe.MaxDurability); dur > max {
		dur = max
	}
	next.Durability = int8(dur)

	cp := int(st.CP) + int(d.CP)
	if max := int(s.Character.MaxCP); cp > max {
		cp = max
	}
	next.CP = int16(cp)

	next.Buffs = d.Buffs
	if d.TimePassed {
		next.FirstStep = false
	}
	return next
}

// GenerateNext folds a delta into the state and samples the following
// turn's condition. The condition cycles every turn, including under
// time-stopped actions.
func (st State) GenerateNext(s *Simulator, d Delta, r dice.Roller) State {
	next := st.Apply(s, d)
	next.Condition = st.Condition.Sample(r)
	return next
}

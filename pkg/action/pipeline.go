package action

import (
	"fmt"
	"math"

	"github.com/jwebster45206/craft-engine/pkg/buff"
	"github.com/jwebster45206/craft-engine/pkg/craft"
	"github.com/jwebster45206/craft-engine/pkg/dice"
)

// Status classifies the craft after an action resolves.
type Status uint8

const (
	// InProgress means the craft continues.
	InProgress Status = iota
	// Completed means progress reached the recipe target. Completion is
	// checked before breakage, so finishing on the last point of
	// durability still completes.
	Completed
	// Failed means durability ran out with the craft unfinished.
	Failed
)

// String returns the status name.
func (s Status) String() string {
	switch s {
	case InProgress:
		return "in progress"
	case Completed:
		return "completed"
	case Failed:
		return "failed"
	}
	return fmt.Sprintf("status(%d)", uint8(s))
}

// Outcome is the result of resolving one action: the classification and the
// delta to fold into the state.
type Outcome struct {
	Status Status
	Delta  craft.Delta
}

// Act resolves the action, rolling its failure chance on r. It panics when
// the action cannot legally execute; strict execution is for drivers that
// have already validated their rotation. Use ProspectiveAct to probe.
func Act(s *craft.Simulator, st craft.State, k Kind, r dice.Roller) Outcome {
	out, err := ProspectiveAct(s, st, k, r)
	if err != nil {
		panic(fmt.Sprintf("action: %v", err))
	}
	return out
}

// ProspectiveAct resolves the action like Act, but an illegal action returns
// an InfeasibleError carrying the outcome that would have happened, for
// planners that want to see past a constraint.
func ProspectiveAct(s *craft.Simulator, st craft.State, k Kind, r dice.Roller) (Outcome, error) {
	return prospective(s, st, k, !Decide(k, st, r))
}

// Decide rolls the action's failure chance, reporting success. Certain
// outcomes in either direction do not consume a roll.
func Decide(k Kind, st craft.State, r dice.Roller) bool {
	rate := k.FailRate(st)
	if rate <= 0 {
		return true
	}
	if rate >= 100 {
		return false
	}
	return r.Roll(100) > rate
}

func prospective(s *craft.Simulator, st craft.State, k Kind, failed bool) (Outcome, error) {
	d := execute(s, st, k, failed)
	out := Outcome{Status: classify(s, st, &d), Delta: d}

	err := &InfeasibleError{
		Outcome:       out,
		TooLittleCP:   int(st.CP)+int(d.CP) < 0,
		NotExecutable: !k.CanExecute(s, st),
	}
	if err.TooLittleCP || err.NotExecutable {
		return out, err
	}
	return out, nil
}

// execute runs the action pipeline: CP, progress, quality, durability, buff
// consumption, time passage, then buff application. A failed roll pays the
// action's costs but skips its effects and buff interactions.
func execute(s *craft.Simulator, st craft.State, k Kind, failed bool) craft.Delta {
	d := craft.Delta{
		Buffs:      st.Buffs,
		TimePassed: k.TimePasses(),
		CP:         cpDelta(k, st),
		Durability: durabilityDelta(k, st),
	}

	if !failed {
		progressStage(s, st, k, &d)
		qualityStage(s, st, k, &d)
		consumeStage(st, k, &d)
	}

	// Repair is read after the consume stage so a Manipulation recast does
	// not repair on its own turn, and before decay so an expiring buff
	// still repairs its final turn.
	d.Repair = int8(d.Buffs.Repair())
	if d.TimePassed {
		d.Buffs.Decay()
	} else {
		d.Buffs.DecayCombo()
	}

	if !failed {
		applyStage(st, k, &d)
	}
	return d
}

func cpDelta(k Kind, st craft.State) int16 {
	if k == TricksOfTheTrade {
		// The CP refund needs the condition itself; a Heart and Soul
		// forced use restores nothing.
		if st.Condition.IsGood() || st.Condition.IsExcellent() {
			return 20
		}
		return 0
	}

	cost := int(table[k].cp)
	switch k {
	case StandardTouch:
		if st.Buffs.Combo.Touch == buff.TouchComboBasic {
			cost = 18
		}
	case AdvancedTouch:
		if st.Buffs.Combo.Touch == buff.TouchComboStandard {
			cost = 18
		}
	}
	cost = cost * st.Condition.CPUsageMod() / 100
	return int16(-cost)
}

func durabilityDelta(k Kind, st craft.State) int8 {
	base := table[k].durability
	if base >= 0 {
		// Restoration is never scaled.
		return base
	}
	mod := float64(st.Condition.DurabilityMod()) / 100 *
		float64(st.Buffs.Durability.CostMod()) / 100
	return int8(math.Floor(float64(base) * mod))
}

func progressStage(s *craft.Simulator, st craft.State, k Kind, d *craft.Delta) {
	pot := int(table[k].progress)
	if pot == 0 {
		return
	}

	bonus := st.Buffs.Progress.EfficiencyMod() + st.Buffs.Progress.BonusEfficiency()
	eff := float64(100+bonus) / 100 * float64(pot) / 100
	if k == Groundwork && int(st.Durability) < -int(d.Durability) {
		eff /= 2
	}

	gain := uint32(math.Floor(
		float64(s.BaseProgress()) * float64(st.Condition.ProgressMod()) / 100 * eff))

	if st.Buffs.Progress.MuscleMemory.Active() {
		d.Buffs.Progress.MuscleMemory = d.Buffs.Progress.MuscleMemory.Consume()
	}
	if d.Buffs.Progress.FinalAppraisal.Active() && st.Progress+gain >= s.Recipe.MaxProgress {
		gain = s.Recipe.MaxProgress - 1 - st.Progress
		d.Buffs.Progress.FinalAppraisal = d.Buffs.Progress.FinalAppraisal.Consume()
		d.ProgressCapped = true
	}
	d.Progress = gain
}

func qualityStage(s *craft.Simulator, st craft.State, k Kind, d *craft.Delta) {
	if k == TrainedEye {
		d.Quality = s.Recipe.MaxQuality
		d.Buffs.Quality.InnerQuiet = d.Buffs.Quality.InnerQuiet.Add(1)
		return
	}

	pot := int(table[k].quality)
	if k == ByregotsBlessing {
		pot = 100 + 20*st.Buffs.Quality.InnerQuiet.Stacks()
	}
	if pot == 0 {
		return
	}

	// The Inner Quiet multiplier reads the stacks held before this action;
	// the stack this action grants lands afterward.
	iq := st.Buffs.Quality.InnerQuiet.Stacks()
	eff := float64(100+st.Buffs.Quality.EfficiencyMod()) / 100 *
		float64(pot) / 100 *
		float64(100+10*iq) / 100

	d.Quality = uint32(math.Floor(
		float64(s.BaseQuality()) * float64(st.Condition.QualityMod()) / 100 * eff))

	if st.Buffs.Quality.GreatStrides.Active() {
		d.Buffs.Quality.GreatStrides = d.Buffs.Quality.GreatStrides.Consume()
	}
	if k == ByregotsBlessing {
		// The Inner Quiet gate may be bypassed prospectively; with no
		// stacks there is nothing to consume.
		if d.Buffs.Quality.InnerQuiet.Active() {
			d.Buffs.Quality.InnerQuiet, _ = d.Buffs.Quality.InnerQuiet.Consume()
		}
	} else {
		d.Buffs.Quality.InnerQuiet = d.Buffs.Quality.InnerQuiet.Add(1)
	}
}

// consumeStage spends buffs that must deactivate before repair is read.
func consumeStage(st craft.State, k Kind, d *craft.Delta) {
	switch k {
	case Manipulation:
		// A recast consumes the running instance; Manipulation never
		// repairs on the turn it is cast.
		if d.Buffs.Durability.Manipulation.Active() {
			d.Buffs.Durability.Manipulation = d.Buffs.Durability.Manipulation.Consume()
		}
	case TricksOfTheTrade, IntensiveSynthesis, PreciseTouch:
		if !(st.Condition.IsGood() || st.Condition.IsExcellent()) &&
			d.Buffs.HeartAndSoul.Active() {
			d.Buffs.HeartAndSoul = d.Buffs.HeartAndSoul.Consume()
		}
	}
}

// applyStage activates the action's buffs after decay, so a fresh buff does
// not lose a turn to its own cast. The condition's status bonus extends
// activations made this turn.
func applyStage(st craft.State, k Kind, d *craft.Delta) {
	bonus := st.Condition.StatusBonus()

	switch k {
	case Veneration:
		d.Buffs.Progress.Veneration = d.Buffs.Progress.Veneration.Activate(bonus)
	case MuscleMemory:
		d.Buffs.Progress.MuscleMemory = d.Buffs.Progress.MuscleMemory.Activate(bonus)
	case FinalAppraisal:
		d.Buffs.Progress.FinalAppraisal = d.Buffs.Progress.FinalAppraisal.Activate(bonus)
	case GreatStrides:
		d.Buffs.Quality.GreatStrides = d.Buffs.Quality.GreatStrides.Activate(bonus)
	case Innovation:
		d.Buffs.Quality.Innovation = d.Buffs.Quality.Innovation.Activate(bonus)
	case WasteNot:
		d.Buffs.Durability.WasteNot = d.Buffs.Durability.WasteNot.Activate(bonus)
	case WasteNot2:
		d.Buffs.Durability.WasteNot = d.Buffs.Durability.WasteNot.ActivateDouble(bonus)
	case Manipulation:
		d.Buffs.Durability.Manipulation = d.Buffs.Durability.Manipulation.Activate(bonus)
	case BasicTouch:
		d.Buffs.Combo.Touch = buff.TouchComboBasic
	case StandardTouch:
		if st.Buffs.Combo.Touch == buff.TouchComboBasic {
			d.Buffs.Combo.Touch = buff.TouchComboStandard
		}
	case Observe:
		d.Buffs.Combo.Observation = true
	case PreciseTouch, PreparatoryTouch, Reflect:
		// Second stack on top of the one the quality stage granted.
		d.Buffs.Quality.InnerQuiet = d.Buffs.Quality.InnerQuiet.Add(1)
	case CarefulObservation:
		if d.Buffs.Specialist.Available() {
			d.Buffs.Specialist = d.Buffs.Specialist.Use()
		}
	case HeartAndSoul:
		if d.Buffs.Specialist.Available() && d.Buffs.HeartAndSoul == buff.HeartAndSoulUnused {
			d.Buffs.Specialist = d.Buffs.Specialist.Use()
			d.Buffs.HeartAndSoul = d.Buffs.HeartAndSoul.Activate()
		}
	}
}

// classify checks completion before breakage; a terminal craft forfeits its
// end-of-turn repair.
func classify(s *craft.Simulator, st craft.State, d *craft.Delta) Status {
	if st.Progress+d.Progress >= s.Recipe.MaxProgress {
		d.Repair = 0
		return Completed
	}
	if int(st.Durability)+int(d.Durability) <= 0 {
		d.Repair = 0
		return Failed
	}
	return InProgress
}

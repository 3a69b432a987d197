// Package action implements the closed crafting action set and the execution
// pipeline that turns an action plus a state into a Delta. Shared numbers
// (potency, CP, durability, fail rate, level) live in a per-kind data table;
// the handful of bespoke rules are explicit switch arms in the pipeline.
package action

import (
	"fmt"
	"strings"

	"github.com/jwebster45206/craft-engine/pkg/buff"
	"github.com/jwebster45206/craft-engine/pkg/craft"
)

// Kind names one action in the closed action set.
type Kind uint8

const (
	// Progress actions.
	BasicSynthesis Kind = iota
	RapidSynthesis
	MuscleMemory
	CarefulSynthesis
	FocusedSynthesis
	Groundwork
	IntensiveSynthesis
	PrudentSynthesis
	DelicateSynthesis

	// Quality actions.
	BasicTouch
	HastyTouch
	StandardTouch
	ByregotsBlessing
	PreciseTouch
	PrudentTouch
	FocusedTouch
	Reflect
	PreparatoryTouch
	TrainedEye
	AdvancedTouch
	TrainedFinesse

	// Buff and utility actions.
	MastersMend
	Observe
	TricksOfTheTrade
	Veneration
	WasteNot
	GreatStrides
	Innovation
	FinalAppraisal
	WasteNot2
	Manipulation
	CarefulObservation
	HeartAndSoul

	numKinds
)

// data is the shared per-action numbers. Durability follows the sign
// convention of the state delta: negative is a cost, positive restores.
type data struct {
	name string
	// level is the minimum character level.
	level uint8
	// progress and quality are base potencies, zero when the action does
	// not touch that attribute.
	progress uint16
	quality  uint16
	// cp is the base CP cost before condition scaling.
	cp int16
	// durability is the base durability change before scaling.
	durability int8
	// fail is the base failure rate in percent.
	fail uint8
	// timeStops marks the instant actions that do not tick buffs.
	timeStops bool
}

var table = [numKinds]data{
	BasicSynthesis:     {name: "BasicSynthesis", level: 1, progress: 120, durability: -10},
	RapidSynthesis:     {name: "RapidSynthesis", level: 9, progress: 500, durability: -10, fail: 50},
	MuscleMemory:       {name: "MuscleMemory", level: 54, progress: 300, cp: 6, durability: -10},
	CarefulSynthesis:   {name: "CarefulSynthesis", level: 62, progress: 180, cp: 7, durability: -10},
	FocusedSynthesis:   {name: "FocusedSynthesis", level: 67, progress: 200, cp: 5, durability: -10, fail: 50},
	Groundwork:         {name: "Groundwork", level: 72, progress: 360, cp: 18, durability: -20},
	IntensiveSynthesis: {name: "IntensiveSynthesis", level: 78, progress: 400, cp: 6, durability: -10},
	PrudentSynthesis:   {name: "PrudentSynthesis", level: 88, progress: 180, cp: 18, durability: -5},
	DelicateSynthesis:  {name: "DelicateSynthesis", level: 76, progress: 100, quality: 100, cp: 32, durability: -10},

	BasicTouch:       {name: "BasicTouch", level: 5, quality: 100, cp: 18, durability: -10},
	HastyTouch:       {name: "HastyTouch", level: 9, quality: 100, durability: -10, fail: 40},
	StandardTouch:    {name: "StandardTouch", level: 18, quality: 125, cp: 32, durability: -10},
	ByregotsBlessing: {name: "ByregotsBlessing", level: 50, quality: 100, cp: 24, durability: -10},
	PreciseTouch:     {name: "PreciseTouch", level: 53, quality: 150, cp: 18, durability: -10},
	PrudentTouch:     {name: "PrudentTouch", level: 66, quality: 100, cp: 25, durability: -5},
	FocusedTouch:     {name: "FocusedTouch", level: 68, quality: 150, cp: 18, durability: -10, fail: 50},
	Reflect:          {name: "Reflect", level: 69, quality: 100, cp: 6, durability: -10},
	PreparatoryTouch: {name: "PreparatoryTouch", level: 71, quality: 200, cp: 40, durability: -20},
	TrainedEye:       {name: "TrainedEye", level: 80, cp: 250, durability: -10},
	AdvancedTouch:    {name: "AdvancedTouch", level: 84, quality: 150, cp: 46, durability: -10},
	TrainedFinesse:   {name: "TrainedFinesse", level: 90, quality: 100, cp: 32},

	MastersMend:        {name: "MastersMend", level: 7, cp: 88, durability: 30},
	Observe:            {name: "Observe", level: 13, cp: 7},
	TricksOfTheTrade:   {name: "TricksOfTheTrade", level: 13},
	Veneration:         {name: "Veneration", level: 15, cp: 18},
	WasteNot:           {name: "WasteNot", level: 15, cp: 56},
	GreatStrides:       {name: "GreatStrides", level: 21, cp: 32},
	Innovation:         {name: "Innovation", level: 26, cp: 18},
	FinalAppraisal:     {name: "FinalAppraisal", level: 42, cp: 1, timeStops: true},
	WasteNot2:          {name: "WasteNot2", level: 47, cp: 98},
	Manipulation:       {name: "Manipulation", level: 65, cp: 96},
	CarefulObservation: {name: "CarefulObservation", level: 55, timeStops: true},
	HeartAndSoul:       {name: "HeartAndSoul", level: 86, timeStops: true},
}

// Kinds returns every action in enum order.
func Kinds() []Kind {
	out := make([]Kind, numKinds)
	for i := range out {
		out[i] = Kind(i)
	}
	return out
}

// String returns the action's canonical name.
func (k Kind) String() string {
	if k >= numKinds {
		return fmt.Sprintf("action(%d)", uint8(k))
	}
	return table[k].name
}

// Parse resolves a canonical action name, case-insensitively.
func Parse(name string) (Kind, error) {
	for k := Kind(0); k < numKinds; k++ {
		if strings.EqualFold(table[k].name, name) {
			return k, nil
		}
	}
	return 0, fmt.Errorf("unknown action %q", name)
}

// Level is the minimum character level for the action.
func (k Kind) Level() uint8 { return table[k].level }

// TimePasses reports whether the action ticks time. The instant actions
// leave buffs untouched but still break combos and cycle the condition.
func (k Kind) TimePasses() bool { return !table[k].timeStops }

// FailRate is the failure chance in percent for this state, after the
// condition's success bonus and the Observe combo.
func (k Kind) FailRate(st craft.State) int {
	rate := int(table[k].fail)
	if rate == 0 {
		return 0
	}
	if st.Buffs.Combo.Observation && (k == FocusedSynthesis || k == FocusedTouch) {
		return 0
	}
	rate -= st.Condition.SuccessBonus()
	if rate < 0 {
		rate = 0
	}
	return rate
}

// goodGated marks the actions that need a Good or Excellent condition, or an
// armed Heart and Soul.
func (k Kind) goodGated() bool {
	return k == IntensiveSynthesis || k == PreciseTouch || k == TricksOfTheTrade
}

// CanExecute reports whether the action is legal in this state. CP is
// checked separately; this covers level gates, opener restrictions,
// condition gates and buff requirements.
func (k Kind) CanExecute(s *craft.Simulator, st craft.State) bool {
	if s.Character.Level < table[k].level {
		return false
	}

	switch k {
	case MuscleMemory, Reflect:
		return st.FirstStep
	case TrainedEye:
		return st.FirstStep && !s.Recipe.Expert() &&
			int(s.Character.Level) >= int(s.Recipe.Level)+10
	case IntensiveSynthesis, PreciseTouch, TricksOfTheTrade:
		return st.Condition.IsGood() || st.Condition.IsExcellent() ||
			st.Buffs.HeartAndSoul.Active()
	case ByregotsBlessing:
		return st.Buffs.Quality.InnerQuiet.Active()
	case TrainedFinesse:
		return st.Buffs.Quality.InnerQuiet.Stacks() == buff.MaxInnerQuiet
	case PrudentTouch, PrudentSynthesis:
		return !st.Buffs.Durability.WasteNot.Active()
	case CarefulObservation:
		return st.Buffs.Specialist.Available()
	case HeartAndSoul:
		return st.Buffs.Specialist.Available() &&
			st.Buffs.HeartAndSoul == buff.HeartAndSoulUnused
	}
	return true
}

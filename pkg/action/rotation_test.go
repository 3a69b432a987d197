package action

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jwebster45206/craft-engine/pkg/dice"
	"github.com/jwebster45206/craft-engine/pkg/quality"
)

// TestReferenceRotation drives a full 27-step endgame rotation against the
// rlvl 580 recipe under an always-Normal condition stream and checks every
// intermediate state. CP legitimately runs negative near the end, so the
// rotation is driven prospectively and the carried outcomes are applied.
func TestReferenceRotation(t *testing.T) {
	s := testSimulator(t)
	st := s.Initial()

	// Roll 100 keeps the regular condition on Normal and wins every
	// failure check (no step here rolls one anyway).
	roller := dice.NewFixed(100)

	steps := []struct {
		kind    Kind
		dProg   uint32
		dQual   uint32
		dDur    int8
		repair  int8
		dCP     int16
		prog    uint32
		qual    uint32
		dur     int8
		cp      int16
		status  Status
		capped  bool
		cpShort bool
	}{
		{kind: MuscleMemory, dProg: 684, dDur: -10, dCP: -6, prog: 684, dur: 60, cp: 558},
		{kind: Veneration, dCP: -18, prog: 684, dur: 60, cp: 540},
		{kind: WasteNot2, dCP: -98, prog: 684, dur: 60, cp: 442},
		{kind: FinalAppraisal, dCP: -1, prog: 684, dur: 60, cp: 441},
		{kind: Groundwork, dProg: 2052, dDur: -10, dCP: -18, prog: 2736, dur: 50, cp: 423},
		{kind: CarefulSynthesis, dProg: 615, dDur: -5, dCP: -7, prog: 3351, dur: 45, cp: 416},
		{kind: CarefulSynthesis, dProg: 548, dDur: -5, dCP: -7, prog: 3899, dur: 40, cp: 409, capped: true},
		{kind: Innovation, dCP: -18, prog: 3899, dur: 40, cp: 391},
		{kind: BasicTouch, dQual: 370, dDur: -5, dCP: -18, prog: 3899, qual: 370, dur: 35, cp: 373},
		{kind: BasicTouch, dQual: 407, dDur: -5, dCP: -18, prog: 3899, qual: 777, dur: 30, cp: 355},
		{kind: StandardTouch, dQual: 555, dDur: -5, dCP: -18, prog: 3899, qual: 1332, dur: 25, cp: 337},
		{kind: AdvancedTouch, dQual: 722, dDur: -5, dCP: -18, prog: 3899, qual: 2054, dur: 20, cp: 319},
		{kind: Manipulation, dCP: -96, prog: 3899, qual: 2054, dur: 20, cp: 223},
		{kind: Innovation, repair: 5, dCP: -18, prog: 3899, qual: 2054, dur: 25, cp: 205},
		{kind: PrudentTouch, dQual: 518, dDur: -5, repair: 5, dCP: -25, prog: 3899, qual: 2572, dur: 25, cp: 180},
		{kind: PrudentTouch, dQual: 555, dDur: -5, repair: 5, dCP: -25, prog: 3899, qual: 3127, dur: 25, cp: 155},
		{kind: PrudentTouch, dQual: 592, dDur: -5, repair: 5, dCP: -25, prog: 3899, qual: 3719, dur: 25, cp: 130},
		{kind: PrudentTouch, dQual: 629, dDur: -5, repair: 5, dCP: -25, prog: 3899, qual: 4348, dur: 25, cp: 105},
		{kind: Innovation, repair: 5, dCP: -18, prog: 3899, qual: 4348, dur: 30, cp: 87},
		{kind: PrudentTouch, dQual: 666, dDur: -5, repair: 5, dCP: -25, prog: 3899, qual: 5014, dur: 30, cp: 62},
		{kind: PrudentTouch, dQual: 703, dDur: -5, repair: 5, dCP: -25, prog: 3899, qual: 5717, dur: 30, cp: 37},
		// Manipulation has expired by here; no more repair.
		{kind: PrudentTouch, dQual: 741, dDur: -5, dCP: -25, prog: 3899, qual: 6458, dur: 25, cp: 12},
		{kind: TrainedFinesse, dQual: 741, dCP: -32, prog: 3899, qual: 7199, dur: 25, cp: -20, cpShort: true},
		{kind: Innovation, dCP: -18, prog: 3899, qual: 7199, dur: 25, cp: -38, cpShort: true},
		{kind: GreatStrides, dCP: -32, prog: 3899, qual: 7199, dur: 25, cp: -70, cpShort: true},
		{kind: ByregotsBlessing, dQual: 3705, dDur: -10, dCP: -24, prog: 3899, qual: 10904, dur: 15, cp: -94, cpShort: true},
		{kind: BasicSynthesis, dProg: 273, dDur: -10, prog: 4172, qual: 10904, dur: 5, cp: -94, status: Completed, cpShort: true},
	}

	for i, step := range steps {
		out, err := ProspectiveAct(s, st, step.kind, roller)
		if step.cpShort {
			var infeasible *InfeasibleError
			require.ErrorAs(t, err, &infeasible, "step %d %s", i+1, step.kind)
			assert.True(t, infeasible.TooLittleCP, "step %d %s", i+1, step.kind)
			assert.False(t, infeasible.NotExecutable, "step %d %s", i+1, step.kind)
			out = infeasible.Outcome
		} else {
			require.NoError(t, err, "step %d %s", i+1, step.kind)
		}

		assert.Equal(t, step.status, out.Status, "step %d %s status", i+1, step.kind)
		assert.Equal(t, step.dProg, out.Delta.Progress, "step %d %s progress delta", i+1, step.kind)
		assert.Equal(t, step.dQual, out.Delta.Quality, "step %d %s quality delta", i+1, step.kind)
		assert.Equal(t, step.dDur, out.Delta.Durability, "step %d %s durability delta", i+1, step.kind)
		assert.Equal(t, step.repair, out.Delta.Repair, "step %d %s repair", i+1, step.kind)
		assert.Equal(t, step.dCP, out.Delta.CP, "step %d %s cp delta", i+1, step.kind)
		assert.Equal(t, step.capped, out.Delta.ProgressCapped, "step %d %s capped", i+1, step.kind)

		st = st.GenerateNext(s, out.Delta, roller)
		assert.Equal(t, step.prog, st.Progress, "step %d %s progress", i+1, step.kind)
		assert.Equal(t, step.qual, st.Quality, "step %d %s quality", i+1, step.kind)
		assert.Equal(t, step.dur, st.Durability, "step %d %s durability", i+1, step.kind)
		assert.Equal(t, step.cp, st.CP, "step %d %s cp", i+1, step.kind)
	}

	// The finished craft maps to a guaranteed HQ result.
	assert.Equal(t, quality.HQChance(100), quality.ForQuality(st.Quality, s.Recipe.MaxQuality))
}

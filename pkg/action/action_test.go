package action

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jwebster45206/craft-engine/pkg/buff"
	"github.com/jwebster45206/craft-engine/pkg/condition"
	"github.com/jwebster45206/craft-engine/pkg/craft"
	"github.com/jwebster45206/craft-engine/pkg/recipe"
)

// testSimulator builds the reference level 90 crafter against the rlvl 580
// two-star recipe used across the engine tests.
func testSimulator(t *testing.T) *craft.Simulator {
	t.Helper()
	return testSimulatorWith(t, func(c *craft.CharacterStats, r *recipe.Stats) {})
}

func testSimulatorWith(t *testing.T, mod func(*craft.CharacterStats, *recipe.Stats)) *craft.Simulator {
	t.Helper()
	c := craft.CharacterStats{
		Craftsmanship: 3691,
		Control:       3664,
		MaxCP:         564,
		Level:         90,
	}
	r := recipe.Stats{
		RLvl:             580,
		Level:            90,
		Stars:            2,
		MaxProgress:      3900,
		MaxQuality:       10920,
		MaxDurability:    70,
		ProgressDivider:  130,
		QualityDivider:   115,
		ProgressModifier: 80,
		QualityModifier:  70,
		Conditions:       condition.RegularBits,
		RuleSet:          condition.Regular,
	}
	mod(&c, &r)
	validated, err := recipe.New(r)
	require.NoError(t, err)
	s, err := craft.NewSimulator(c, validated)
	require.NoError(t, err)
	return s
}

func TestParseRoundTrip(t *testing.T) {
	for _, k := range Kinds() {
		got, err := Parse(k.String())
		require.NoError(t, err, k.String())
		assert.Equal(t, k, got)
	}

	// Case-insensitive.
	got, err := Parse("basicsynthesis")
	require.NoError(t, err)
	assert.Equal(t, BasicSynthesis, got)

	_, err = Parse("PatientTouch")
	assert.Error(t, err)
}

func TestKindsCoversActionSet(t *testing.T) {
	assert.Len(t, Kinds(), 33)
}

func TestFailRate(t *testing.T) {
	s := testSimulator(t)
	st := s.Initial()

	assert.Equal(t, 0, BasicSynthesis.FailRate(st))
	assert.Equal(t, 50, RapidSynthesis.FailRate(st))
	assert.Equal(t, 40, HastyTouch.FailRate(st))
	assert.Equal(t, 50, FocusedSynthesis.FailRate(st))
	assert.Equal(t, 50, FocusedTouch.FailRate(st))

	// Centered shaves 25 off.
	st.Condition = condition.Expert1Centered
	assert.Equal(t, 25, RapidSynthesis.FailRate(st))
	assert.Equal(t, 15, HastyTouch.FailRate(st))
	assert.Equal(t, 0, BasicSynthesis.FailRate(st))

	// The Observe combo makes only the focused actions certain.
	st = s.Initial()
	st.Buffs.Combo.Observation = true
	assert.Equal(t, 0, FocusedSynthesis.FailRate(st))
	assert.Equal(t, 0, FocusedTouch.FailRate(st))
	assert.Equal(t, 50, RapidSynthesis.FailRate(st))
}

func TestCanExecuteFirstStepGates(t *testing.T) {
	s := testSimulator(t)
	st := s.Initial()

	assert.True(t, MuscleMemory.CanExecute(s, st))
	assert.True(t, Reflect.CanExecute(s, st))

	st.FirstStep = false
	assert.False(t, MuscleMemory.CanExecute(s, st))
	assert.False(t, Reflect.CanExecute(s, st))
	assert.True(t, BasicSynthesis.CanExecute(s, st))
}

func TestCanExecuteTrainedEye(t *testing.T) {
	// Level gap below 10: blocked even on the first step.
	s := testSimulator(t)
	assert.False(t, TrainedEye.CanExecute(s, s.Initial()))

	// A big enough gap on a non-expert recipe allows it.
	s = testSimulatorWith(t, func(c *craft.CharacterStats, r *recipe.Stats) {
		r.Level = 80
	})
	st := s.Initial()
	assert.True(t, TrainedEye.CanExecute(s, st))

	st.FirstStep = false
	assert.False(t, TrainedEye.CanExecute(s, st))

	// Expert recipes refuse it regardless of gap.
	s = testSimulatorWith(t, func(c *craft.CharacterStats, r *recipe.Stats) {
		r.Level = 80
		r.Conditions = condition.Expert1Bits
		r.RuleSet = condition.Expert1
	})
	assert.False(t, TrainedEye.CanExecute(s, s.Initial()))
}

func TestCanExecuteGoodGates(t *testing.T) {
	s := testSimulator(t)
	st := s.Initial()

	for _, k := range []Kind{IntensiveSynthesis, PreciseTouch, TricksOfTheTrade} {
		assert.False(t, k.CanExecute(s, st), k.String())
	}

	st.Condition = condition.RegularGood
	for _, k := range []Kind{IntensiveSynthesis, PreciseTouch, TricksOfTheTrade} {
		assert.True(t, k.CanExecute(s, st), k.String())
	}

	st.Condition = condition.RegularExcellent
	assert.True(t, TricksOfTheTrade.CanExecute(s, st))

	// Heart and Soul opens the gate off-condition.
	st.Condition = condition.RegularNormal
	st.Buffs.HeartAndSoul = buff.HeartAndSoulActive
	assert.True(t, IntensiveSynthesis.CanExecute(s, st))
}

func TestCanExecuteBuffGates(t *testing.T) {
	s := testSimulator(t)
	st := s.Initial()

	assert.False(t, ByregotsBlessing.CanExecute(s, st))
	st.Buffs.Quality.InnerQuiet = st.Buffs.Quality.InnerQuiet.Add(1)
	assert.True(t, ByregotsBlessing.CanExecute(s, st))

	assert.False(t, TrainedFinesse.CanExecute(s, st))
	st.Buffs.Quality.InnerQuiet = st.Buffs.Quality.InnerQuiet.Add(9)
	assert.True(t, TrainedFinesse.CanExecute(s, st))

	assert.True(t, PrudentTouch.CanExecute(s, st))
	assert.True(t, PrudentSynthesis.CanExecute(s, st))
	st.Buffs.Durability.WasteNot = st.Buffs.Durability.WasteNot.Activate(0)
	assert.False(t, PrudentTouch.CanExecute(s, st))
	assert.False(t, PrudentSynthesis.CanExecute(s, st))
}

func TestCanExecuteSpecialistGates(t *testing.T) {
	s := testSimulator(t)
	st := s.Initial()

	// Not a specialist.
	assert.False(t, CarefulObservation.CanExecute(s, st))
	assert.False(t, HeartAndSoul.CanExecute(s, st))

	st.Buffs.Specialist = buff.NewSpecialist()
	assert.True(t, CarefulObservation.CanExecute(s, st))
	assert.True(t, HeartAndSoul.CanExecute(s, st))

	// Heart and Soul is once per craft even with charges left.
	st.Buffs.HeartAndSoul = buff.HeartAndSoulSpent
	assert.False(t, HeartAndSoul.CanExecute(s, st))
	assert.True(t, CarefulObservation.CanExecute(s, st))
}

func TestCanExecuteLevelGate(t *testing.T) {
	s := testSimulatorWith(t, func(c *craft.CharacterStats, r *recipe.Stats) {
		c.Level = 60
	})
	st := s.Initial()

	assert.True(t, BasicSynthesis.CanExecute(s, st))
	assert.True(t, MuscleMemory.CanExecute(s, st))  // level 54
	assert.False(t, Groundwork.CanExecute(s, st))   // level 72
	assert.False(t, AdvancedTouch.CanExecute(s, st)) // level 84
}

func TestTimePasses(t *testing.T) {
	for _, k := range Kinds() {
		want := k != FinalAppraisal && k != CarefulObservation && k != HeartAndSoul
		assert.Equal(t, want, k.TimePasses(), k.String())
	}
}

package condition

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jwebster45206/craft-engine/pkg/dice"
)

func TestRuleSetBits(t *testing.T) {
	assert.Equal(t, Bits(15), Regular.Bits())
	assert.Equal(t, Bits(15), RegularQA.Bits())
	assert.Equal(t, Bits(115), Expert1.Bits())
	assert.Equal(t, Bits(483), Expert2.Bits())
}

func TestFromBits(t *testing.T) {
	tests := []struct {
		name    string
		rs      RuleSet
		bits    Bits
		want    Condition
		wantErr bool
	}{
		{"regular ok", Regular, Bits(15), RegularNormal, false},
		{"qa ok", RegularQA, Bits(15), QANormal, false},
		{"expert1 ok", Expert1, Bits(115), Expert1Normal, false},
		{"expert2 ok", Expert2, Bits(483), Expert2Normal, false},
		{"regular bits on expert set", Expert1, Bits(15), nil, true},
		{"zero bits", Regular, Bits(0), nil, true},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := FromBits(tc.rs, tc.bits)
			if tc.wantErr {
				require.Error(t, err)
				var be *BitsError
				require.ErrorAs(t, err, &be)
				assert.Equal(t, tc.bits, be.Got)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestRegularForcedTransitions(t *testing.T) {
	// Forced successors must not consume a roll.
	r := dice.NewFixed(1, 100)

	assert.Equal(t, Condition(RegularNormal), RegularGood.Sample(r))
	assert.Equal(t, Condition(RegularNormal), RegularPoor.Sample(r))
	assert.Equal(t, Condition(RegularPoor), RegularExcellent.Sample(r))
	// The roller is untouched: the first queued value is still pending.
	assert.Equal(t, 1, r.Roll(100))
}

func TestRegularSampleThresholds(t *testing.T) {
	tests := []struct {
		roll int // Roll result, 1..100; sampler uses roll-1
		want Condition
	}{
		{1, RegularGood},    // 0
		{20, RegularGood},   // 19
		{21, RegularExcellent},
		{24, RegularExcellent}, // 23
		{25, RegularNormal},    // 24
		{100, RegularNormal},
	}
	for _, tc := range tests {
		got := RegularNormal.Sample(dice.NewFixed(tc.roll))
		assert.Equal(t, tc.want, got, "roll %d", tc.roll)
	}
}

func TestQASampleThresholds(t *testing.T) {
	tests := []struct {
		roll int
		want Condition
	}{
		{25, QAGood},      // 24
		{26, QAExcellent}, // 25
		{29, QAExcellent}, // 28
		{30, QANormal},    // 29
	}
	for _, tc := range tests {
		got := QANormal.Sample(dice.NewFixed(tc.roll))
		assert.Equal(t, tc.want, got, "roll %d", tc.roll)
	}
	assert.Equal(t, Condition(QAPoor), QAExcellent.Sample(dice.NewFixed(1)))
}

func TestExpert1SampleThresholds(t *testing.T) {
	tests := []struct {
		roll int
		want Condition
	}{
		{12, Expert1Good},     // 11
		{13, Expert1Centered}, // 12
		{27, Expert1Centered}, // 26
		{28, Expert1Pliant},   // 27
		{39, Expert1Pliant},   // 38
		{40, Expert1Sturdy},   // 39
		{54, Expert1Sturdy},   // 53
		{55, Expert1Normal},   // 54
	}
	for _, tc := range tests {
		// Sampling is independent of the current condition.
		got := Expert1Sturdy.Sample(dice.NewFixed(tc.roll))
		assert.Equal(t, tc.want, got, "roll %d", tc.roll)
	}
}

func TestExpert2SampleThresholds(t *testing.T) {
	tests := []struct {
		roll int
		want Condition
	}{
		{12, Expert2Good},      // 11
		{13, Expert2Pliant},    // 12
		{24, Expert2Pliant},    // 23
		{25, Expert2Malleable}, // 24
		{36, Expert2Malleable}, // 35
		{37, Expert2Primed},    // 36
		{48, Expert2Primed},    // 47
		{49, Expert2Normal},    // 48
	}
	for _, tc := range tests {
		got := Expert2Primed.Sample(dice.NewFixed(tc.roll))
		assert.Equal(t, tc.want, got, "roll %d", tc.roll)
	}
}

func TestModifiers(t *testing.T) {
	tests := []struct {
		name string
		c    Condition
		qual, prog, succ, dur, status, cp int
	}{
		{"regular normal", RegularNormal, 100, 100, 0, 100, 0, 100},
		{"regular good", RegularGood, 150, 100, 0, 100, 0, 100},
		{"regular excellent", RegularExcellent, 400, 100, 0, 100, 0, 100},
		{"regular poor", RegularPoor, 50, 100, 0, 100, 0, 100},
		{"expert1 centered", Expert1Centered, 100, 100, 25, 100, 0, 100},
		{"expert1 pliant", Expert1Pliant, 100, 100, 0, 100, 0, 50},
		{"expert1 sturdy", Expert1Sturdy, 100, 100, 0, 50, 0, 100},
		{"expert2 malleable", Expert2Malleable, 100, 150, 0, 100, 0, 100},
		{"expert2 primed", Expert2Primed, 100, 100, 0, 100, 2, 100},
		{"expert2 good", Expert2Good, 150, 100, 0, 100, 0, 100},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.qual, tc.c.QualityMod())
			assert.Equal(t, tc.prog, tc.c.ProgressMod())
			assert.Equal(t, tc.succ, tc.c.SuccessBonus())
			assert.Equal(t, tc.dur, tc.c.DurabilityMod())
			assert.Equal(t, tc.status, tc.c.StatusBonus())
			assert.Equal(t, tc.cp, tc.c.CPUsageMod())
		})
	}
}

func TestGoodExcellentFlags(t *testing.T) {
	assert.True(t, RegularGood.IsGood())
	assert.True(t, RegularExcellent.IsExcellent())
	assert.False(t, RegularExcellent.IsGood())
	assert.True(t, QAGood.IsGood())
	assert.True(t, Expert1Good.IsGood())
	assert.True(t, Expert2Good.IsGood())
	assert.False(t, Expert1Good.IsExcellent())
	assert.False(t, Expert2Good.IsExcellent())
}

func TestInitial(t *testing.T) {
	for _, rs := range []RuleSet{Regular, RegularQA, Expert1, Expert2} {
		c := rs.Initial()
		assert.False(t, c.IsGood())
		assert.False(t, c.IsExcellent())
		assert.Equal(t, rs, c.RuleSet())
		assert.Equal(t, 100, c.QualityMod())
	}
}

func TestParseRuleSet(t *testing.T) {
	for _, rs := range []RuleSet{Regular, RegularQA, Expert1, Expert2} {
		got, err := ParseRuleSet(rs.String())
		require.NoError(t, err, rs.String())
		assert.Equal(t, rs, got)
	}

	got, err := ParseRuleSet("expert1")
	require.NoError(t, err)
	assert.Equal(t, Expert1, got)

	got, err = ParseRuleSet("")
	require.NoError(t, err)
	assert.Equal(t, Regular, got)

	_, err = ParseRuleSet("legendary")
	assert.Error(t, err)
}

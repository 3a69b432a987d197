// Package condition models the per-turn crafting condition: a randomly
// sampled state that scales quality, progress, success rate, durability,
// status duration and CP usage for that turn. Each rule-set (regular crafts
// vs the two expert variants) has its own legal set of conditions, its own
// sampling distribution, and a fixed bitmask identifying the set.
package condition

import (
	"fmt"
	"strings"

	"github.com/jwebster45206/craft-engine/pkg/dice"
)

// Raw condition bits, matching the reference data files. A rule-set's legal
// condition set is the OR of its members' bits.
const (
	bitNormal    uint16 = 0x01
	bitGood      uint16 = 0x02
	bitExcellent uint16 = 0x04
	bitPoor      uint16 = 0x08
	bitCentered  uint16 = 0x10
	bitPliant    uint16 = 0x20
	bitSturdy    uint16 = 0x40
	bitMalleable uint16 = 0x80
	bitPrimed    uint16 = 0x100
)

// Bits is the raw bitmask identifying a rule-set's legal condition set.
type Bits uint16

// The three legal condition sets. Recipes declare one of these; constructing
// a simulation checks the recipe's mask against the chosen rule-set.
const (
	RegularBits Bits = Bits(bitNormal | bitGood | bitExcellent | bitPoor)              // 15
	Expert1Bits Bits = Bits(bitNormal | bitGood | bitCentered | bitPliant | bitSturdy) // 115
	Expert2Bits Bits = Bits(bitNormal | bitGood | bitPliant | bitSturdy | bitMalleable | bitPrimed) // 483
)

// Condition is one variant of a rule-set's condition enum. Modifier getters
// are total: variants that don't affect a category return that category's
// neutral value (100 for multiplicative categories, 0 for additive ones).
type Condition interface {
	// QualityMod is the percentage multiplier applied to quality gains.
	QualityMod() int
	// ProgressMod is the percentage multiplier applied to progress gains.
	ProgressMod() int
	// SuccessBonus is the additive bonus subtracted from action fail rates.
	SuccessBonus() int
	// DurabilityMod is the percentage multiplier applied to durability costs.
	DurabilityMod() int
	// StatusBonus is the number of extra turns granted to buffs activated
	// this turn.
	StatusBonus() int
	// CPUsageMod is the percentage multiplier applied to CP costs.
	CPUsageMod() int

	// IsGood reports whether the condition enables good-gated actions.
	IsGood() bool
	// IsExcellent reports whether the condition is the excellent state.
	IsExcellent() bool

	// Sample draws the next turn's condition. Conditions with a forced
	// deterministic successor do not consume a roll.
	Sample(r dice.Roller) Condition

	// RuleSet identifies the rule-set this condition belongs to.
	RuleSet() RuleSet
}

// Modifier values from the reference tables, before dividing by 100.
const (
	qualityPoor      = 50
	qualityNormal    = 100
	qualityGood      = 150
	qualityExcellent = 400

	progressMalleable = 150
	successCentered   = 25
	durabilitySturdy  = 50
	statusPrimed      = 2
	cpPliant          = 50

	neutralMultiplier = 100
	neutralBonus      = 0
)

// RuleSet names one fixed set of legal conditions plus its distribution.
type RuleSet uint8

const (
	// Regular is the Normal/Good/Excellent/Poor set used by the vast
	// majority of recipes, before the quality-assurance bonus.
	Regular RuleSet = iota
	// RegularQA is Regular with the +5% quality-assurance bonus to the
	// chance of Good appearing after Normal.
	RegularQA
	// Expert1 is the first expert set: Normal/Good/Centered/Pliant/Sturdy.
	Expert1
	// Expert2 is the second expert set:
	// Normal/Good/Pliant/Sturdy/Malleable/Primed.
	Expert2
)

// String returns the rule-set name.
func (rs RuleSet) String() string {
	switch rs {
	case Regular:
		return "regular"
	case RegularQA:
		return "regular+qa"
	case Expert1:
		return "expert-1"
	case Expert2:
		return "expert-2"
	}
	return fmt.Sprintf("ruleset(%d)", uint8(rs))
}

// ParseRuleSet resolves a rule-set name. It accepts the String forms plus
// the bare shorthands "qa", "expert1" and "expert2".
func ParseRuleSet(name string) (RuleSet, error) {
	switch strings.ToLower(name) {
	case "regular", "":
		return Regular, nil
	case "qa", "regular+qa":
		return RegularQA, nil
	case "expert1", "expert-1":
		return Expert1, nil
	case "expert2", "expert-2":
		return Expert2, nil
	}
	return 0, fmt.Errorf("unknown rule set %q (want regular, qa, expert1 or expert2)", name)
}

// Bits returns the legal condition bitmask for the rule-set.
func (rs RuleSet) Bits() Bits {
	switch rs {
	case Regular, RegularQA:
		return RegularBits
	case Expert1:
		return Expert1Bits
	case Expert2:
		return Expert2Bits
	}
	return 0
}

// Expert reports whether the rule-set is one of the expert variants.
func (rs RuleSet) Expert() bool {
	return rs == Expert1 || rs == Expert2
}

// Initial returns the condition every craft starts in (Normal).
func (rs RuleSet) Initial() Condition {
	switch rs {
	case Regular:
		return RegularNormal
	case RegularQA:
		return QANormal
	case Expert1:
		return Expert1Normal
	case Expert2:
		return Expert2Normal
	}
	return RegularNormal
}

// BitsError reports a mismatch between a recipe's condition bitmask and the
// rule-set it was paired with. This is a construction-time data integrity
// error, not a hot-path condition.
type BitsError struct {
	Got  Bits
	Want Bits
	Set  RuleSet
}

func (e *BitsError) Error() string {
	return fmt.Sprintf("condition bits %#x do not match rule-set %s (want %#x)",
		uint16(e.Got), e.Set, uint16(e.Want))
}

// FromBits constructs the initial condition for the rule-set after checking
// that the supplied bitmask exactly matches the rule-set's legal set.
func FromBits(rs RuleSet, bits Bits) (Condition, error) {
	if bits != rs.Bits() {
		return nil, &BitsError{Got: bits, Want: rs.Bits(), Set: rs}
	}
	return rs.Initial(), nil
}

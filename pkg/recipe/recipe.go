// Package recipe holds the static definition of a craft target: the resolved
// recipe-level numbers the simulation formulas consume, plus the mapping from
// player-facing character levels to internal crafting levels.
package recipe

import (
	"fmt"

	"github.com/jwebster45206/craft-engine/pkg/condition"
)

// Stats is a fully resolved recipe record. Dividers and modifiers come from
// the recipe-level tables; they are carried here so the engine needs no table
// lookups at simulation time.
type Stats struct {
	// RLvl is the internal recipe level.
	RLvl uint16
	// Level is the player-facing recipe level.
	Level uint8
	// Stars is the difficulty star count shown in game.
	Stars uint8

	MaxProgress   uint32
	MaxQuality    uint32
	MaxDurability int8

	// ProgressDivider and QualityDivider scale raw craftsmanship and
	// control in the base value formulas.
	ProgressDivider uint16
	QualityDivider  uint16
	// ProgressModifier and QualityModifier are the percentage penalties
	// applied when the crafter's level is below the recipe's.
	ProgressModifier uint16
	QualityModifier  uint16

	// Conditions is the legal condition bitmask from the recipe tables.
	Conditions condition.Bits
	// RuleSet is the condition rule-set the recipe plays under.
	RuleSet condition.RuleSet
}

// New validates that the recipe's condition bitmask matches its rule-set and
// returns the record. The bitmask is table data and the rule-set is caller
// intent; a mismatch means one of them is wrong.
func New(s Stats) (Stats, error) {
	if _, err := condition.FromBits(s.RuleSet, s.Conditions); err != nil {
		return Stats{}, fmt.Errorf("recipe rlvl %d: %w", s.RLvl, err)
	}
	if s.MaxProgress == 0 || s.MaxDurability <= 0 {
		return Stats{}, fmt.Errorf("recipe rlvl %d: empty progress or durability target", s.RLvl)
	}
	return s, nil
}

// Expert reports whether the recipe uses an expert condition rule-set.
func (s Stats) Expert() bool {
	return s.RuleSet.Expert()
}

// clvl maps player-facing character levels 1..90 to internal crafting
// levels. Levels 1..50 map to themselves.
var clvl = [91]uint16{
	0, // unused, levels are 1-based
	1, 2, 3, 4, 5, 6, 7, 8, 9, 10,
	11, 12, 13, 14, 15, 16, 17, 18, 19, 20,
	21, 22, 23, 24, 25, 26, 27, 28, 29, 30,
	31, 32, 33, 34, 35, 36, 37, 38, 39, 40,
	41, 42, 43, 44, 45, 46, 47, 48, 49, 50,
	120, 125, 130, 133, 136, 139, 142, 145, 148, 150,
	260, 265, 270, 273, 276, 279, 282, 285, 288, 290,
	390, 395, 400, 403, 406, 409, 412, 415, 418, 420,
	517, 520, 525, 530, 535, 540, 545, 550, 555, 560,
}

// MaxCharLevel is the highest character level the clvl table covers.
const MaxCharLevel = 90

// CharLevel converts a player-facing character level into the internal
// crafting level used in the level-gap checks.
func CharLevel(level uint8) (uint16, error) {
	if level < 1 || level > MaxCharLevel {
		return 0, fmt.Errorf("character level %d out of range 1..%d", level, MaxCharLevel)
	}
	return clvl[level], nil
}

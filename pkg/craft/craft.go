// Package craft holds the simulation context and the crafting state machine:
// character and recipe stats, the per-turn State, and the Delta produced by
// executing an action. Action semantics live in pkg/action; this package owns
// the numbers they read and the state they advance.
package craft

import (
	"fmt"
	"math"

	"github.com/jwebster45206/craft-engine/pkg/recipe"
)

// CharacterStats is the crafter half of the simulation context.
type CharacterStats struct {
	Craftsmanship uint16
	Control       uint16
	MaxCP         int16
	// Level is the player-facing character level, 1..90.
	Level uint8
	// Specialist grants crafter's delineation charges and Heart and Soul.
	Specialist bool
}

// Simulator is the immutable context of one craft: the character, the
// recipe, and the base values derived from them. States reference a
// Simulator rather than carrying these numbers around.
type Simulator struct {
	Character CharacterStats
	Recipe    recipe.Stats

	// CLvl is the internal crafting level resolved from Character.Level.
	CLvl uint16

	baseProgress uint32
	baseQuality  uint32
}

// NewSimulator resolves the character's internal level and precomputes the
// base progress and quality values.
func NewSimulator(c CharacterStats, r recipe.Stats) (*Simulator, error) {
	clvl, err := recipe.CharLevel(c.Level)
	if err != nil {
		return nil, fmt.Errorf("resolving character level: %w", err)
	}

	s := &Simulator{Character: c, Recipe: r, CLvl: clvl}

	p := float64(c.Craftsmanship)*10/float64(r.ProgressDivider) + 2
	q := float64(c.Control)*10/float64(r.QualityDivider) + 35
	if clvl < r.RLvl {
		p = p * float64(r.ProgressModifier) / 100
		q = q * float64(r.QualityModifier) / 100
	}
	s.baseProgress = uint32(math.Floor(p))
	s.baseQuality = uint32(math.Floor(q))

	return s, nil
}

// BaseProgress is the floored base progress value fed into the progress
// formula.
func (s *Simulator) BaseProgress() uint32 { return s.baseProgress }

// BaseQuality is the floored base quality value fed into the quality
// formula.
func (s *Simulator) BaseQuality() uint32 { return s.baseQuality }

// LevelGap is the internal level difference clvl - rlvl, negative when the
// recipe outlevels the crafter.
func (s *Simulator) LevelGap() int {
	return int(s.CLvl) - int(s.Recipe.RLvl)
}

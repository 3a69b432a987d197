// Package rotation loads and validates rotation files: named lists of
// actions for the driver tools to run against a recipe.
package rotation

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/jwebster45206/craft-engine/pkg/action"
	"github.com/jwebster45206/craft-engine/pkg/condition"
	"github.com/jwebster45206/craft-engine/pkg/recipe"
)

// Rotation is an ordered list of action names, optionally paired with the
// recipe it was written for.
type Rotation struct {
	Name    string      `json:"name,omitempty"`
	Actions []string    `json:"actions"`
	Recipe  *RecipeSpec `json:"recipe,omitempty"`
}

// RecipeSpec is the JSON form of a recipe record. Conditions defaults to the
// rule-set's own bitmask when omitted; a recipe extracted from the game
// tables may carry the raw mask, and the pairing is checked either way.
type RecipeSpec struct {
	RLvl             uint16 `json:"rlvl"`
	Level            uint8  `json:"level"`
	Stars            uint8  `json:"stars,omitempty"`
	MaxProgress      uint32 `json:"progress"`
	MaxQuality       uint32 `json:"quality"`
	MaxDurability    int8   `json:"durability"`
	ProgressDivider  uint16 `json:"progress_divider"`
	QualityDivider   uint16 `json:"quality_divider"`
	ProgressModifier uint16 `json:"progress_modifier"`
	QualityModifier  uint16 `json:"quality_modifier"`
	Conditions       uint16 `json:"conditions,omitempty"`
	RuleSet          string `json:"ruleset,omitempty"`
}

// Stats resolves the JSON form into a validated recipe record.
func (rs *RecipeSpec) Stats() (recipe.Stats, error) {
	ruleSet, err := condition.ParseRuleSet(rs.RuleSet)
	if err != nil {
		return recipe.Stats{}, err
	}
	bits := condition.Bits(rs.Conditions)
	if bits == 0 {
		bits = ruleSet.Bits()
	}
	return recipe.New(recipe.Stats{
		RLvl:             rs.RLvl,
		Level:            rs.Level,
		Stars:            rs.Stars,
		MaxProgress:      rs.MaxProgress,
		MaxQuality:       rs.MaxQuality,
		MaxDurability:    rs.MaxDurability,
		ProgressDivider:  rs.ProgressDivider,
		QualityDivider:   rs.QualityDivider,
		ProgressModifier: rs.ProgressModifier,
		QualityModifier:  rs.QualityModifier,
		Conditions:       bits,
		RuleSet:          ruleSet,
	})
}

// Load reads a rotation from a JSON file, rejecting unknown fields.
func Load(path string) (*Rotation, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read rotation file: %w", err)
	}

	decoder := json.NewDecoder(bytes.NewReader(data))
	decoder.DisallowUnknownFields()

	var r Rotation
	if err := decoder.Decode(&r); err != nil {
		return nil, fmt.Errorf("file %s failed strict JSON unmarshaling: %w", path, err)
	}
	if len(r.Actions) == 0 {
		return nil, fmt.Errorf("rotation %s has no actions", path)
	}
	return &r, nil
}

// FromList builds a rotation from a comma-separated action list.
func FromList(list string) (*Rotation, error) {
	var actions []string
	for _, name := range strings.Split(list, ",") {
		if name = strings.TrimSpace(name); name != "" {
			actions = append(actions, name)
		}
	}
	if len(actions) == 0 {
		return nil, fmt.Errorf("empty action list")
	}
	return &Rotation{Actions: actions}, nil
}

// Kinds resolves the action names in order.
func (r *Rotation) Kinds() ([]action.Kind, error) {
	kinds := make([]action.Kind, 0, len(r.Actions))
	for i, name := range r.Actions {
		k, err := action.Parse(name)
		if err != nil {
			return nil, fmt.Errorf("action %d: %w", i+1, err)
		}
		kinds = append(kinds, k)
	}
	return kinds, nil
}

// Validate checks every action name and its level gate against a character
// level, returning one message per problem.
func (r *Rotation) Validate(level uint8) []string {
	var problems []string
	for i, name := range r.Actions {
		k, err := action.Parse(name)
		if err != nil {
			problems = append(problems, fmt.Sprintf("action %d: unknown action %q", i+1, name))
			continue
		}
		if k.Level() > level {
			problems = append(problems, fmt.Sprintf(
				"action %d: %s requires level %d, character is %d", i+1, k, k.Level(), level))
		}
	}
	return problems
}

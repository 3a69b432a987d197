package condition

import (
	"fmt"

	"github.com/jwebster45206/craft-engine/pkg/dice"
)

// roll100 draws a uniform value in [0, 100).
func roll100(r dice.Roller) int {
	return r.Roll(100) - 1
}

// RegularCondition is the Normal/Good/Excellent/Poor cycle used by most
// recipes. Good and Poor always resolve to Normal; Excellent always resolves
// to Poor. Only Normal consumes a roll.
type RegularCondition uint8

const (
	RegularNormal RegularCondition = iota
	RegularGood
	RegularExcellent
	RegularPoor
)

func (c RegularCondition) String() string {
	switch c {
	case RegularNormal:
		return "normal"
	case RegularGood:
		return "good"
	case RegularExcellent:
		return "excellent"
	case RegularPoor:
		return "poor"
	}
	return fmt.Sprintf("regular(%d)", uint8(c))
}

func (c RegularCondition) QualityMod() int {
	switch c {
	case RegularGood:
		return qualityGood
	case RegularExcellent:
		return qualityExcellent
	case RegularPoor:
		return qualityPoor
	}
	return neutralMultiplier
}

func (c RegularCondition) ProgressMod() int   { return neutralMultiplier }
func (c RegularCondition) SuccessBonus() int  { return neutralBonus }
func (c RegularCondition) DurabilityMod() int { return neutralMultiplier }
func (c RegularCondition) StatusBonus() int   { return neutralBonus }
func (c RegularCondition) CPUsageMod() int    { return neutralMultiplier }

func (c RegularCondition) IsGood() bool      { return c == RegularGood }
func (c RegularCondition) IsExcellent() bool { return c == RegularExcellent }

func (c RegularCondition) Sample(r dice.Roller) Condition {
	switch c {
	case RegularGood, RegularPoor:
		return RegularNormal
	case RegularExcellent:
		return RegularPoor
	}
	switch v := roll100(r); {
	case v < 20:
		return RegularGood
	case v < 24:
		return RegularExcellent
	default:
		return RegularNormal
	}
}

func (c RegularCondition) RuleSet() RuleSet { return Regular }

// QACondition is the regular cycle with the quality-assurance trait raising
// the chance of Good after a Normal turn.
type QACondition uint8

const (
	QANormal QACondition = iota
	QAGood
	QAExcellent
	QAPoor
)

func (c QACondition) String() string { return RegularCondition(c).String() }

func (c QACondition) QualityMod() int    { return RegularCondition(c).QualityMod() }
func (c QACondition) ProgressMod() int   { return neutralMultiplier }
func (c QACondition) SuccessBonus() int  { return neutralBonus }
func (c QACondition) DurabilityMod() int { return neutralMultiplier }
func (c QACondition) StatusBonus() int   { return neutralBonus }
func (c QACondition) CPUsageMod() int    { return neutralMultiplier }

func (c QACondition) IsGood() bool      { return c == QAGood }
func (c QACondition) IsExcellent() bool { return c == QAExcellent }

func (c QACondition) Sample(r dice.Roller) Condition {
	switch c {
	case QAGood, QAPoor:
		return QANormal
	case QAExcellent:
		return QAPoor
	}
	switch v := roll100(r); {
	case v < 25:
		return QAGood
	case v < 29:
		return QAExcellent
	default:
		return QANormal
	}
}

func (c QACondition) RuleSet() RuleSet { return RegularQA }

// Expert1Condition is the first expert set. Every turn samples independently
// of the previous condition.
type Expert1Condition uint8

const (
	Expert1Normal Expert1Condition = iota
	Expert1Good
	Expert1Centered
	Expert1Pliant
	Expert1Sturdy
)

func (c Expert1Condition) String() string {
	switch c {
	case Expert1Normal:
		return "normal"
	case Expert1Good:
		return "good"
	case Expert1Centered:
		return "centered"
	case Expert1Pliant:
		return "pliant"
	case Expert1Sturdy:
		return "sturdy"
	}
	return fmt.Sprintf("expert1(%d)", uint8(c))
}

func (c Expert1Condition) QualityMod() int {
	if c == Expert1Good {
		return qualityGood
	}
	return neutralMultiplier
}

func (c Expert1Condition) ProgressMod() int { return neutralMultiplier }

func (c Expert1Condition) SuccessBonus() int {
	if c == Expert1Centered {
		return successCentered
	}
	return neutralBonus
}

func (c Expert1Condition) DurabilityMod() int {
	if c == Expert1Sturdy {
		return durabilitySturdy
	}
	return neutralMultiplier
}

func (c Expert1Condition) StatusBonus() int { return neutralBonus }

func (c Expert1Condition) CPUsageMod() int {
	if c == Expert1Pliant {
		return cpPliant
	}
	return neutralMultiplier
}

func (c Expert1Condition) IsGood() bool      { return c == Expert1Good }
func (c Expert1Condition) IsExcellent() bool { return false }

func (c Expert1Condition) Sample(r dice.Roller) Condition {
	switch v := roll100(r); {
	case v < 12:
		return Expert1Good
	case v < 27:
		return Expert1Centered
	case v < 39:
		return Expert1Pliant
	case v < 54:
		return Expert1Sturdy
	default:
		return Expert1Normal
	}
}

func (c Expert1Condition) RuleSet() RuleSet { return Expert1 }

// Expert2Condition is the second expert set. Every turn samples independently
// of the previous condition. Sturdy is legal for the set but the reference
// sampler never yields it; the distribution is reproduced as-is.
type Expert2Condition uint8

const (
	Expert2Normal Expert2Condition = iota
	Expert2Good
	Expert2Pliant
	Expert2Sturdy
	Expert2Malleable
	Expert2Primed
)

func (c Expert2Condition) String() string {
	switch c {
	case Expert2Normal:
		return "normal"
	case Expert2Good:
		return "good"
	case Expert2Pliant:
		return "pliant"
	case Expert2Sturdy:
		return "sturdy"
	case Expert2Malleable:
		return "malleable"
	case Expert2Primed:
		return "primed"
	}
	return fmt.Sprintf("expert2(%d)", uint8(c))
}

func (c Expert2Condition) QualityMod() int {
	if c == Expert2Good {
		return qualityGood
	}
	return neutralMultiplier
}

func (c Expert2Condition) ProgressMod() int {
	if c == Expert2Malleable {
		return progressMalleable
	}
	return neutralMultiplier
}

func (c Expert2Condition) SuccessBonus() int { return neutralBonus }

func (c Expert2Condition) DurabilityMod() int {
	if c == Expert2Sturdy {
		return durabilitySturdy
	}
	return neutralMultiplier
}

func (c Expert2Condition) StatusBonus() int {
	if c == Expert2Primed {
		return statusPrimed
	}
	return neutralBonus
}

func (c Expert2Condition) CPUsageMod() int {
	if c == Expert2Pliant {
		return cpPliant
	}
	return neutralMultiplier
}

func (c Expert2Condition) IsGood() bool      { return c == Expert2Good }
func (c Expert2Condition) IsExcellent() bool { return false }

func (c Expert2Condition) Sample(r dice.Roller) Condition {
	switch v := roll100(r); {
	case v < 12:
		return Expert2Good
	case v < 24:
		return Expert2Pliant
	case v < 36:
		return Expert2Malleable
	case v < 48:
		return Expert2Primed
	default:
		return Expert2Normal
	}
}

func (c Expert2Condition) RuleSet() RuleSet { return Expert2 }

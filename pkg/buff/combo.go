package buff

// TouchCombo records where the craft sits in the Basic Touch chain. The
// trigger lives exactly one turn; any action other than the chain's next
// step breaks it.
type TouchCombo uint8

const (
	// TouchComboNone means no touch combo is available.
	TouchComboNone TouchCombo = iota
	// TouchComboBasic means Basic Touch was used last turn, discounting
	// Standard Touch.
	TouchComboBasic
	// TouchComboStandard means a combo Standard Touch was used last turn,
	// discounting Advanced Touch.
	TouchComboStandard
)

// ComboTriggers holds the single-turn combo flags. Unlike other buffs these
// decay even on time-stopped actions, since any action breaks a combo.
type ComboTriggers struct {
	Touch TouchCombo
	// Observation means Observe was used last turn, making the focused
	// actions certain to succeed.
	Observation bool
}

// Decay expires both triggers. Actions that extend a combo re-set their
// trigger after the decay pass.
func (c *ComboTriggers) Decay() {
	c.Touch = TouchComboNone
	c.Observation = false
}

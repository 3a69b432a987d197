package action

// InfeasibleError reports why an action could not legally execute, carrying
// the outcome that would have applied so planners can evaluate moves they
// cannot yet afford.
type InfeasibleError struct {
	Outcome Outcome

	// TooLittleCP means the action's CP cost would take CP below zero.
	TooLittleCP bool
	// NotExecutable means a state gate (opener, condition, buff
	// requirement or level) blocked the action.
	NotExecutable bool
}

func (e *InfeasibleError) Error() string {
	switch {
	case e.TooLittleCP && e.NotExecutable:
		return "too little CP, and the action cannot execute in this state"
	case e.TooLittleCP:
		return "too little CP to execute the action"
	default:
		return "the action cannot execute in this state"
	}
}

package action

import (
	"github.com/jwebster45206/craft-engine/pkg/craft"
)

// Branch is one weighted resolution of an action. Weights across an
// action's branches always sum to 100.
type Branch struct {
	// Weight is the branch's probability in percent.
	Weight int
	// Failed marks the failure branch.
	Failed  bool
	Outcome Outcome
}

// Exhaustive resolves the action without randomness, returning every
// possible branch with its weight: one certain branch for deterministic
// actions, a success and a failure branch otherwise. Infeasible actions
// return the branches alongside an InfeasibleError, prospective-style.
func Exhaustive(s *craft.Simulator, st craft.State, k Kind) ([]Branch, error) {
	rate := k.FailRate(st)

	var branches []Branch
	var err error
	if rate < 100 {
		out, perr := prospective(s, st, k, false)
		branches = append(branches, Branch{Weight: 100 - rate, Outcome: out})
		err = perr
	}
	if rate > 0 {
		out, perr := prospective(s, st, k, true)
		branches = append(branches, Branch{Weight: rate, Failed: true, Outcome: out})
		if err == nil {
			err = perr
		}
	}
	return branches, err
}

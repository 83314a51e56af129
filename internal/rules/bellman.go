package rules

// Assembling the Bellman equation: once both the expected reward and the
// successor values are in place, the equation holds for every state.
//
//	v(s) = r(s) + \gamma \sum_{s'} P(s'\mid s) v(s')
//	->
//	v(s) = r(s) + \gamma \sum_{s'} P(s'\mid s) v(s') \quad \forall s \in \mathcal{S}

const (
	BellmanID = "bellman"

	bellmanRHS  = rewardFunc + ` + \gamma ` + transitionWeight + successorValue
	bellmanEq   = bareValue + ` = ` + bellmanRHS
	forAllState = ` \quad \forall s \in \mathcal{S}`
)

// AppliesBellman reports whether the fully substituted per-state equation
// is present but not yet quantified over the state space.
func AppliesBellman(expr string) bool {
	return containsToken(expr, bellmanRHS) && !containsToken(expr, `\forall`)
}

// ApplyBellman tags the assembled equation as holding for every state.
func ApplyBellman(expr string) (string, error) {
	if NormalizeSpace(expr) != bellmanEq {
		return "", transformErr(BellmanID, bellmanEq)
	}
	return bellmanEq + forAllState, nil
}

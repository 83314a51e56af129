package rules

// Value substitution: the return expectation conditioned on the successor
// state is, by definition, the value of that state.
//
//	\mathbb{E}[G_{t+1}\mid S_{t+1}=s']  ->  v(s')

const (
	ValueSubstitutionID = "value-substitution"

	successorValue = `v(s')`
)

// AppliesValueSubstitution reports whether the successor-conditioned return
// expectation is present.
func AppliesValueSubstitution(expr string) bool {
	return containsToken(expr, successorExpect)
}

// ApplyValueSubstitution closes the recursion by folding the successor
// expectation back into the value function.
func ApplyValueSubstitution(expr string) (string, error) {
	return replaceExact(ValueSubstitutionID, expr, successorExpect, successorValue)
}

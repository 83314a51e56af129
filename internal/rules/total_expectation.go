package rules

// Law of total expectation: condition the return expectation on the
// successor state and weight by the transition probabilities.
//
//	\mathbb{E}[G_{t+1}\mid S_t=s]
//	->
//	\sum_{s'} P(s'\mid s) \mathbb{E}[G_{t+1}\mid S_{t+1}=s']

const (
	TotalExpectationID = "total-expectation"

	returnExpect     = `\mathbb{E}[G_{t+1}\mid S_t=s]`
	successorExpect  = `\mathbb{E}[G_{t+1}\mid S_{t+1}=s']`
	transitionWeight = `\sum_{s'} P(s'\mid s) `
)

// AppliesTotalExpectation reports whether the return expectation is still
// conditioned on the current state only.
func AppliesTotalExpectation(expr string) bool {
	return containsToken(expr, returnExpect)
}

// ApplyTotalExpectation rewrites the return expectation as a
// transition-weighted sum over successor states.
func ApplyTotalExpectation(expr string) (string, error) {
	return replaceExact(TotalExpectationID, expr, returnExpect, transitionWeight+successorExpect)
}

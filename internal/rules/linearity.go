package rules

// Linearity of expectation: the expectation of the unrolled return splits
// into an expectation per term, with the discount factor pulled out.
//
//	\mathbb{E}[R_{t+1} + \gamma G_{t+1}\mid S_t=s]
//	->
//	\mathbb{E}[R_{t+1}\mid S_t=s] + \gamma \mathbb{E}[G_{t+1}\mid S_t=s]

const (
	LinearityID = "linearity"

	jointExpect = `\mathbb{E}[R_{t+1} + \gamma G_{t+1}\mid S_t=s]`
	splitExpect = rewardExpect + ` + \gamma ` + returnExpect
)

// AppliesLinearity reports whether the expectation still covers the whole
// unrolled return.
func AppliesLinearity(expr string) bool {
	return containsToken(expr, `\mathbb{E}[`+unrolledReturn)
}

// ApplyLinearity distributes the expectation over the sum and factors the
// discount out of the second term.
func ApplyLinearity(expr string) (string, error) {
	return replaceExact(LinearityID, expr, jointExpect, splitExpect)
}

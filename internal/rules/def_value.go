package rules

// Definition of the state-value function: the bare v(s) becomes the
// conditional expectation of the return.
//
//	v(s)  ->  v(s) = \mathbb{E}[G_t\mid S_t=s]

const (
	DefValueID = "def-value"

	bareValue     = `v(s)`
	valueAsExpect = `v(s) = \mathbb{E}[G_t\mid S_t=s]`
)

// AppliesDefValue reports whether the expression is still the undefined
// value function, i.e. no equation has been formed yet.
func AppliesDefValue(expr string) bool {
	return !containsToken(expr, `=`) && containsToken(expr, bareValue)
}

// ApplyDefValue rewrites the bare value function into its definition as an
// expectation of the return conditioned on the current state.
func ApplyDefValue(expr string) (string, error) {
	if NormalizeSpace(expr) != bareValue {
		return "", transformErr(DefValueID, bareValue)
	}
	return valueAsExpect, nil
}

package rules

// Definition of the return: G_t expands into the discounted sum of future
// rewards.
//
//	G_t  ->  \sum_{k=0}^{\infty} \gamma^k R_{t+k+1}

const (
	DefReturnID = "def-return"

	// returnSym is matched together with the conditioning bar so that the
	// later G_{t+1} terms are never rewritten by this rule.
	returnSym      = `G_t\mid`
	discountedSum  = `\sum_{k=0}^{\infty} \gamma^k R_{t+k+1}`
	expandedReturn = discountedSum + `\mid`
)

// AppliesDefReturn reports whether the unexpanded return G_t still appears
// directly under the conditioning bar.
func AppliesDefReturn(expr string) bool {
	return containsToken(expr, returnSym)
}

// ApplyDefReturn replaces the return symbol with the discounted sum of
// future rewards.
func ApplyDefReturn(expr string) (string, error) {
	return replaceExact(DefReturnID, expr, returnSym, expandedReturn)
}

package rules

// Unrolling the return one step: the discounted sum splits into the next
// reward plus the discounted return from the successor time step.
//
//	\sum_{k=0}^{\infty} \gamma^k R_{t+k+1}  ->  R_{t+1} + \gamma G_{t+1}

const (
	UnrollReturnID = "unroll-return"

	unrolledReturn = `R_{t+1} + \gamma G_{t+1}`
)

// AppliesUnrollReturn matches any expression carrying a sum. The transform
// itself insists on the exact discounted-sum notation, so a foreign sum
// produces an explanatory failure rather than a wrong rewrite.
func AppliesUnrollReturn(expr string) bool {
	return containsToken(expr, `\sum`)
}

// ApplyUnrollReturn splits the discounted sum into its first term and the
// discounted remainder.
func ApplyUnrollReturn(expr string) (string, error) {
	return replaceExact(UnrollReturnID, expr, discountedSum, unrolledReturn)
}

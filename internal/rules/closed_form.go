package rules

// Closed form: solving the vector equation for v gives the direct linear
// system answer, the one the solve panel computes numerically.
//
//	\mathbf{v} = \mathbf{r} + \gamma P \mathbf{v}  ->  \mathbf{v} = (I - \gamma P)^{-1} \mathbf{r}

const (
	ClosedFormID = "closed-form"

	closedFormEq = `\mathbf{v} = (I - \gamma P)^{-1} \mathbf{r}`
)

// AppliesClosedForm reports whether the vector Bellman equation is present.
func AppliesClosedForm(expr string) bool {
	return containsToken(expr, vectorBellman)
}

// ApplyClosedForm rearranges the vector equation into its closed-form
// solution, valid whenever I - γP is invertible.
func ApplyClosedForm(expr string) (string, error) {
	return replaceExact(ClosedFormID, expr, vectorBellman, closedFormEq)
}

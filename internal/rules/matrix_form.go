package rules

// Vector form: the per-state Bellman equation over a finite state space is
// one linear equation per state, collected into vectors and the transition
// matrix.
//
//	v(s) = r(s) + \gamma \sum_{s'} P(s'\mid s) v(s')  ->  \mathbf{v} = \mathbf{r} + \gamma P \mathbf{v}

const (
	MatrixFormID = "matrix-form"

	vectorBellman = `\mathbf{v} = \mathbf{r} + \gamma P \mathbf{v}`
)

// AppliesMatrixForm reports whether the per-state Bellman right-hand side
// is present, quantified or not.
func AppliesMatrixForm(expr string) bool {
	return containsToken(expr, bellmanRHS)
}

// ApplyMatrixForm collects the per-state equations into a single vector
// equation. The \forall tag, if present, is consumed by the rewrite.
func ApplyMatrixForm(expr string) (string, error) {
	e := NormalizeSpace(expr)
	if e != bellmanEq && e != bellmanEq+forAllState {
		return "", transformErr(MatrixFormID, bellmanEq)
	}
	return vectorBellman, nil
}

package internal

import (
	"github.com/mdpkit/bellman/internal/rules"
)

/*
* Implement each rewrite rule as a separate struct
 */

// Rule defines the interface for all rewrite rules. A rule is a pure
// predicate/transform pair over expression text plus display metadata.
type Rule interface {
	// ID returns the stable identifier of the rule.
	ID() string

	// Name returns the display name of the rule.
	Name() string

	// DisplayForm returns the markup fragment shown next to the rule
	// name, or "" when the name alone is enough.
	DisplayForm() string

	// Explanation returns the one-sentence lecture justification.
	Explanation() string

	// Applies reports whether the rule matches the expression.
	Applies(expr string) bool

	// Transform rewrites the expression, or fails with a
	// *rules.TransformError when the exact surface form is absent.
	Transform(expr string) (string, error)
}

type DefValueRule struct{}

func (r *DefValueRule) ID() string { return rules.DefValueID }
func (r *DefValueRule) Name() string { return "Definition of the value function" }
func (r *DefValueRule) DisplayForm() string {
	return `v(s) = \mathbb{E}[G_t\mid S_t=s]`
}
func (r *DefValueRule) Explanation() string {
	return "The value of a state is the expected return when starting from that state."
}
func (r *DefValueRule) Applies(expr string) bool { return rules.AppliesDefValue(expr) }
func (r *DefValueRule) Transform(expr string) (string, error) { return rules.ApplyDefValue(expr) }

type DefReturnRule struct{}

func (r *DefReturnRule) ID() string { return rules.DefReturnID }
func (r *DefReturnRule) Name() string { return "Expand the return" }
func (r *DefReturnRule) DisplayForm() string {
	return `G_t = \sum_{k=0}^{\infty} \gamma^k R_{t+k+1}`
}
func (r *DefReturnRule) Explanation() string {
	return "The return is the discounted sum of all future rewards."
}
func (r *DefReturnRule) Applies(expr string) bool { return rules.AppliesDefReturn(expr) }
func (r *DefReturnRule) Transform(expr string) (string, error) { return rules.ApplyDefReturn(expr) }

type UnrollReturnRule struct{}

func (r *UnrollReturnRule) ID() string { return rules.UnrollReturnID }
func (r *UnrollReturnRule) Name() string { return "Unroll the return one step" }
func (r *UnrollReturnRule) DisplayForm() string {
	return `G_t = R_{t+1} + \gamma G_{t+1}`
}
func (r *UnrollReturnRule) Explanation() string {
	return "Splitting off the first reward leaves the discounted return from the next step."
}
func (r *UnrollReturnRule) Applies(expr string) bool { return rules.AppliesUnrollReturn(expr) }
func (r *UnrollReturnRule) Transform(expr string) (string, error) {
	return rules.ApplyUnrollReturn(expr)
}

type LinearityRule struct{}

func (r *LinearityRule) ID() string { return rules.LinearityID }
func (r *LinearityRule) Name() string { return "Linearity of expectation" }
func (r *LinearityRule) DisplayForm() string { return `\mathbb{E}[X+cY] = \mathbb{E}[X]+c\,\mathbb{E}[Y]` }
func (r *LinearityRule) Explanation() string {
	return "Expectation distributes over sums, and constants factor out."
}
func (r *LinearityRule) Applies(expr string) bool { return rules.AppliesLinearity(expr) }
func (r *LinearityRule) Transform(expr string) (string, error) { return rules.ApplyLinearity(expr) }

type ExpectedRewardRule struct{}

func (r *ExpectedRewardRule) ID() string { return rules.ExpectedRewardID }
func (r *ExpectedRewardRule) Name() string { return "Define the expected reward" }
func (r *ExpectedRewardRule) DisplayForm() string { return `r(s) = \mathbb{E}[R_{t+1}\mid S_t=s]` }
func (r *ExpectedRewardRule) Explanation() string {
	return "Name the one-step expected reward from state s."
}
func (r *ExpectedRewardRule) Applies(expr string) bool { return rules.AppliesExpectedReward(expr) }
func (r *ExpectedRewardRule) Transform(expr string) (string, error) {
	return rules.ApplyExpectedReward(expr)
}

type TotalExpectationRule struct{}

func (r *TotalExpectationRule) ID() string { return rules.TotalExpectationID }
func (r *TotalExpectationRule) Name() string { return "Law of total expectation" }
func (r *TotalExpectationRule) DisplayForm() string {
	return `\mathbb{E}[X\mid s] = \sum_{s'} P(s'\mid s)\,\mathbb{E}[X\mid s']`
}
func (r *TotalExpectationRule) Explanation() string {
	return "Condition on the successor state and weight by transition probabilities."
}
func (r *TotalExpectationRule) Applies(expr string) bool { return rules.AppliesTotalExpectation(expr) }
func (r *TotalExpectationRule) Transform(expr string) (string, error) {
	return rules.ApplyTotalExpectation(expr)
}

type ValueSubstitutionRule struct{}

func (r *ValueSubstitutionRule) ID() string { return rules.ValueSubstitutionID }
func (r *ValueSubstitutionRule) Name() string { return "Substitute the value function" }
func (r *ValueSubstitutionRule) DisplayForm() string {
	return `v(s') = \mathbb{E}[G_{t+1}\mid S_{t+1}=s']`
}
func (r *ValueSubstitutionRule) Explanation() string {
	return "The successor expectation is, by definition, the value of the successor state."
}
func (r *ValueSubstitutionRule) Applies(expr string) bool { return rules.AppliesValueSubstitution(expr) }
func (r *ValueSubstitutionRule) Transform(expr string) (string, error) {
	return rules.ApplyValueSubstitution(expr)
}

type BellmanRule struct{}

func (r *BellmanRule) ID() string { return rules.BellmanID }
func (r *BellmanRule) Name() string { return "Assemble the Bellman equation" }
func (r *BellmanRule) DisplayForm() string { return "" }
func (r *BellmanRule) Explanation() string {
	return "The recursion holds for every state of the process."
}
func (r *BellmanRule) Applies(expr string) bool { return rules.AppliesBellman(expr) }
func (r *BellmanRule) Transform(expr string) (string, error) { return rules.ApplyBellman(expr) }

type MatrixFormRule struct{}

func (r *MatrixFormRule) ID() string { return rules.MatrixFormID }
func (r *MatrixFormRule) Name() string { return "Vector form" }
func (r *MatrixFormRule) DisplayForm() string { return `\mathbf{v} = \mathbf{r} + \gamma P \mathbf{v}` }
func (r *MatrixFormRule) Explanation() string {
	return "Over a finite state space the per-state equations collect into one vector equation."
}
func (r *MatrixFormRule) Applies(expr string) bool { return rules.AppliesMatrixForm(expr) }
func (r *MatrixFormRule) Transform(expr string) (string, error) { return rules.ApplyMatrixForm(expr) }

type ClosedFormRule struct{}

func (r *ClosedFormRule) ID() string { return rules.ClosedFormID }
func (r *ClosedFormRule) Name() string { return "Closed-form solution" }
func (r *ClosedFormRule) DisplayForm() string {
	return `\mathbf{v} = (I - \gamma P)^{-1} \mathbf{r}`
}
func (r *ClosedFormRule) Explanation() string {
	return "Solving the vector equation for v gives the direct linear-system answer."
}
func (r *ClosedFormRule) Applies(expr string) bool { return rules.AppliesClosedForm(expr) }
func (r *ClosedFormRule) Transform(expr string) (string, error) { return rules.ApplyClosedForm(expr) }

// DefaultCatalog returns the full rule catalog in canonical lecture order.
// The order matters for display only; the engine never enforces it.
func DefaultCatalog() []Rule {
	return []Rule{
		&DefValueRule{},
		&DefReturnRule{},
		&UnrollReturnRule{},
		&LinearityRule{},
		&ExpectedRewardRule{},
		&TotalExpectationRule{},
		&ValueSubstitutionRule{},
		&BellmanRule{},
		&MatrixFormRule{},
		&ClosedFormRule{},
	}
}

package internal

import (
	"github.com/mdpkit/bellman/internal/rules"
	"github.com/mdpkit/bellman/internal/types"
)

// Applicable returns the rules in catalog whose predicate matches the
// expression, preserving catalog order. A predicate that panics counts as
// "does not apply"; an ill-formed predicate must never hide the remaining
// rules from the user. The result is recomputed on every call.
func Applicable(expr string, catalog []Rule) []Rule {
	matched := make([]Rule, 0, len(catalog))
	for _, r := range catalog {
		if applies(r, expr) {
			matched = append(matched, r)
		}
	}
	return matched
}

func applies(r Rule, expr string) (ok bool) {
	defer func() {
		if recover() != nil {
			ok = false
		}
	}()
	return r.Applies(expr)
}

// Apply runs the rule's transform on the step's expression. On success it
// returns a fresh step with whitespace-normalized output and the rule's
// metadata attached. Transform failures are returned to the caller
// unwrapped; deciding how to surface them is the caller's contract.
func Apply(step types.Step, r Rule) (types.Step, error) {
	out, err := r.Transform(step.Expression)
	if err != nil {
		return types.Step{}, err
	}
	return types.Step{
		Expression:  rules.NormalizeSpace(out),
		RuleID:      r.ID(),
		RuleName:    r.Name(),
		Explanation: r.Explanation(),
	}, nil
}

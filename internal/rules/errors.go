package rules

import "fmt"

// TransformError reports that a rule was conceptually applicable but the
// expression did not contain the exact surface form the transform rewrites.
// The caller is expected to surface the message to the user instead of
// silently skipping the step.
type TransformError struct {
	RuleID   string
	Expected string
}

// Error reports the expected form verbatim. Quoting would double the
// backslashes of the markup tokens and render the message useless.
func (e *TransformError) Error() string {
	return fmt.Sprintf("rule %s: expression does not contain the expected form: %s", e.RuleID, e.Expected)
}

func transformErr(ruleID, expected string) error {
	return &TransformError{RuleID: ruleID, Expected: expected}
}

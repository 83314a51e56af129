package types

// StartExpression is the fixed expression every derivation begins from.
const StartExpression = "v(s)"

// Step represents one entry in a derivation history: the expression text
// plus metadata about how it was produced. A Step is immutable once created;
// rule application always yields a fresh value.
type Step struct {
	Expression  string
	RuleID      string
	RuleName    string
	Explanation string
}

// Start returns the fixed first step of every derivation.
func Start() Step {
	return Step{
		Expression:  StartExpression,
		RuleName:    "Start",
		Explanation: "The state-value function we want to characterize.",
	}
}

// ConfigRule holds the per-rule settings read from the configuration file.
type ConfigRule struct {
	Enabled *bool `yaml:"enabled,omitempty"`
}

// On reports whether the rule is enabled. A rule with no explicit setting
// is on.
func (c ConfigRule) On() bool {
	return c.Enabled == nil || *c.Enabled
}

package rules

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// the canonical lecture path, each expression being the exact normalized
// output of its predecessor rule
const (
	exprStart       = `v(s)`
	exprDefValue    = `v(s) = \mathbb{E}[G_t\mid S_t=s]`
	exprDefReturn   = `v(s) = \mathbb{E}[\sum_{k=0}^{\infty} \gamma^k R_{t+k+1}\mid S_t=s]`
	exprUnrolled    = `v(s) = \mathbb{E}[R_{t+1} + \gamma G_{t+1}\mid S_t=s]`
	exprLinear      = `v(s) = \mathbb{E}[R_{t+1}\mid S_t=s] + \gamma \mathbb{E}[G_{t+1}\mid S_t=s]`
	exprReward      = `v(s) = r(s) + \gamma \mathbb{E}[G_{t+1}\mid S_t=s]`
	exprTotal       = `v(s) = r(s) + \gamma \sum_{s'} P(s'\mid s) \mathbb{E}[G_{t+1}\mid S_{t+1}=s']`
	exprSubstituted = `v(s) = r(s) + \gamma \sum_{s'} P(s'\mid s) v(s')`
	exprBellman     = `v(s) = r(s) + \gamma \sum_{s'} P(s'\mid s) v(s') \quad \forall s \in \mathcal{S}`
	exprVector      = `\mathbf{v} = \mathbf{r} + \gamma P \mathbf{v}`
	exprClosed      = `\mathbf{v} = (I - \gamma P)^{-1} \mathbf{r}`
)

func TestCanonicalChain(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		applies func(string) bool
		apply   func(string) (string, error)
		in      string
		want    string
	}{
		{"def-value", AppliesDefValue, ApplyDefValue, exprStart, exprDefValue},
		{"def-return", AppliesDefReturn, ApplyDefReturn, exprDefValue, exprDefReturn},
		{"unroll-return", AppliesUnrollReturn, ApplyUnrollReturn, exprDefReturn, exprUnrolled},
		{"linearity", AppliesLinearity, ApplyLinearity, exprUnrolled, exprLinear},
		{"expected-reward", AppliesExpectedReward, ApplyExpectedReward, exprLinear, exprReward},
		{"total-expectation", AppliesTotalExpectation, ApplyTotalExpectation, exprReward, exprTotal},
		{"value-substitution", AppliesValueSubstitution, ApplyValueSubstitution, exprTotal, exprSubstituted},
		{"bellman", AppliesBellman, ApplyBellman, exprSubstituted, exprBellman},
		{"matrix-form", AppliesMatrixForm, ApplyMatrixForm, exprBellman, exprVector},
		{"closed-form", AppliesClosedForm, ApplyClosedForm, exprVector, exprClosed},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			require.True(t, tt.applies(tt.in), "predicate must match its predecessor's output")
			got, err := tt.apply(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, NormalizeSpace(got))
		})
	}
}

func TestPredicatesRejectForeignExpressions(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		applies func(string) bool
		in      string
	}{
		{"def-value after equation formed", AppliesDefValue, exprDefValue},
		{"def-return after expansion", AppliesDefReturn, exprDefReturn},
		{"def-return ignores successor return", AppliesDefReturn, exprUnrolled},
		{"linearity after split", AppliesLinearity, exprLinear},
		{"expected-reward before linearity", AppliesExpectedReward, exprUnrolled},
		{"total-expectation after conditioning", AppliesTotalExpectation, exprTotal},
		{"bellman already quantified", AppliesBellman, exprBellman},
		{"closed-form on its own output", AppliesClosedForm, exprClosed},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.False(t, tt.applies(tt.in))
		})
	}
}

func TestTransformFailures(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		apply    func(string) (string, error)
		in       string
		ruleID   string
		expected string
	}{
		{
			name:     "unroll without the exact sum token",
			apply:    ApplyUnrollReturn,
			in:       `v(s) = \mathbb{E}[\sum_k \gamma^k R_k\mid S_t=s]`,
			ruleID:   UnrollReturnID,
			expected: `\sum_{k=0}^{\infty} \gamma^k R_{t+k+1}`,
		},
		{
			name:     "def-value on a composite expression",
			apply:    ApplyDefValue,
			in:       `v(s) + 1`,
			ruleID:   DefValueID,
			expected: `v(s)`,
		},
		{
			name:     "bellman on partially substituted equation",
			apply:    ApplyBellman,
			in:       exprTotal,
			ruleID:   BellmanID,
			expected: exprSubstituted,
		},
		{
			name:     "matrix form on foreign equation",
			apply:    ApplyMatrixForm,
			in:       exprSubstituted + ` + 1`,
			ruleID:   MatrixFormID,
			expected: exprSubstituted,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, err := tt.apply(tt.in)
			require.Error(t, err)

			var terr *TransformError
			require.True(t, errors.As(err, &terr))
			assert.Equal(t, tt.ruleID, terr.RuleID)
			assert.Equal(t, tt.expected, terr.Expected)
			assert.Contains(t, err.Error(), tt.expected)
		})
	}
}

func TestNormalizeSpace(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   string
		want string
	}{
		{"collapses runs", "v(s)  =   r(s)", "v(s) = r(s)"},
		{"trims ends", "  v(s) \n", "v(s)"},
		{"tabs and newlines", "v(s)\t=\nr(s)", "v(s) = r(s)"},
		{"already normal", "v(s) = r(s)", "v(s) = r(s)"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, NormalizeSpace(tt.in))
		})
	}
}

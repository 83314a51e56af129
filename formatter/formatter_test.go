package formatter

import (
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mdpkit/bellman/internal"
	"github.com/mdpkit/bellman/internal/linalg"
	tt "github.com/mdpkit/bellman/internal/types"
)

func init() {
	// keep assertions on plain text
	color.NoColor = true
}

func TestGenerateFormattedSteps(t *testing.T) {
	steps := []tt.Step{
		tt.Start(),
		{
			Expression:  `v(s) = \mathbb{E}[G_t\mid S_t=s]`,
			RuleID:      "def-value",
			RuleName:    "Definition of the value function",
			Explanation: "The value of a state is the expected return when starting from that state.",
		},
		{
			Expression:  `v(s) = \mathbb{E}[G_t\mid S_t=s]`,
			RuleID:      "unroll-return",
			RuleName:    "Rule failed: Unroll the return one step",
			Explanation: "rule unroll-return: expression does not contain the expected form: ...",
		},
	}

	out := GenerateFormattedSteps(steps, 1)
	assert.Contains(t, out, "[0] Start")
	assert.Contains(t, out, "> [1] Definition of the value function")
	assert.Contains(t, out, "[2] Rule failed: Unroll the return one step")
	assert.Contains(t, out, `\mathbb{E}[G_t\mid S_t=s]`)
}

func TestGenerateFormattedRules(t *testing.T) {
	catalog := internal.DefaultCatalog()
	out := GenerateFormattedRules(catalog)

	for _, r := range catalog {
		assert.Contains(t, out, r.ID())
		assert.Contains(t, out, r.Name())
	}
}

func TestGenerateFormattedVector(t *testing.T) {
	out := GenerateFormattedVector(linalg.Vec{2.25, -0.5})
	require.Contains(t, out, "v[0] = 2.25")
	require.Contains(t, out, "v[1] = -0.5")
}

func TestGenerateFormattedSweep(t *testing.T) {
	out := GenerateFormattedSweep(
		[]float64{0, 0.9},
		[]linalg.Vec{{1, 0}, {2.25, 0.5}},
	)
	assert.Contains(t, out, "γ=0.0000")
	assert.Contains(t, out, "[2.25, 0.5]")
}

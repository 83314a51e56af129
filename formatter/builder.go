// Package formatter renders derivation histories, rule catalogs, and
// solved value vectors for the terminal.
package formatter

import (
	"fmt"
	"strings"

	"github.com/fatih/color"

	"github.com/mdpkit/bellman/internal"
	"github.com/mdpkit/bellman/internal/linalg"
	tt "github.com/mdpkit/bellman/internal/types"
)

var (
	errorStyle       = color.New(color.FgRed, color.Bold)
	ruleStyle        = color.New(color.FgYellow, color.Bold)
	exprStyle        = color.New(color.FgCyan)
	lineStyle        = color.New(color.FgHiBlue, color.Bold)
	cursorStyle      = color.New(color.FgGreen, color.Bold)
	explanationStyle = color.New(color.FgWhite)
)

// GenerateFormattedSteps renders a derivation history, marking the cursor
// row. Failed pseudo-steps are shown in the error style.
func GenerateFormattedSteps(steps []tt.Step, cursor int) string {
	var builder strings.Builder
	for i, step := range steps {
		builder.WriteString(formatStepHeader(i, cursor, step))
		builder.WriteString("    " + exprStyle.Sprint(step.Expression) + "\n")
		if step.Explanation != "" {
			builder.WriteString("    " + explanationStyle.Sprint(step.Explanation) + "\n")
		}
	}
	return builder.String()
}

func formatStepHeader(index, cursor int, step tt.Step) string {
	marker := "  "
	if index == cursor {
		marker = cursorStyle.Sprint("> ")
	}
	name := step.RuleName
	style := ruleStyle
	if strings.HasPrefix(name, "Rule failed:") {
		style = errorStyle
	}
	return fmt.Sprintf("%s%s %s\n", marker, lineStyle.Sprintf("[%d]", index), style.Sprint(name))
}

// GenerateFormattedRules renders the catalog in order: id, name, optional
// display form, explanation.
func GenerateFormattedRules(rules []internal.Rule) string {
	var builder strings.Builder
	for _, r := range rules {
		builder.WriteString(ruleStyle.Sprint(r.ID()) + " " + r.Name() + "\n")
		if form := r.DisplayForm(); form != "" {
			builder.WriteString("    " + exprStyle.Sprint(form) + "\n")
		}
		builder.WriteString("    " + explanationStyle.Sprint(r.Explanation()) + "\n")
	}
	return builder.String()
}

// GenerateFormattedVector renders a solved value vector one state per
// line.
func GenerateFormattedVector(v linalg.Vec) string {
	var builder strings.Builder
	for i, x := range v {
		builder.WriteString(lineStyle.Sprintf("v[%d]", i))
		builder.WriteString(fmt.Sprintf(" = %.6g\n", x))
	}
	return builder.String()
}

// GenerateFormattedSweep renders one line per discount factor of a γ
// sweep.
func GenerateFormattedSweep(gammas []float64, values []linalg.Vec) string {
	var builder strings.Builder
	for i, gamma := range gammas {
		builder.WriteString(lineStyle.Sprintf("γ=%.4f", gamma))
		entries := make([]string, len(values[i]))
		for j, x := range values[i] {
			entries[j] = fmt.Sprintf("%.6g", x)
		}
		builder.WriteString("  [" + strings.Join(entries, ", ") + "]\n")
	}
	return builder.String()
}

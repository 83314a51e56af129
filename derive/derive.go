// Package derive is the public surface of the derivation engine: it owns
// the step history and exposes rule listing, rule application, manual
// edits, and history navigation to the UI layer.
package derive

import (
	"errors"
	"fmt"
	"os"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/mdpkit/bellman/internal"
	"github.com/mdpkit/bellman/internal/rules"
	tt "github.com/mdpkit/bellman/internal/types"
)

// ErrUnknownRule is returned when a rule id is not in the active catalog.
var ErrUnknownRule = errors.New("derive: unknown rule")

// Config represents the overall configuration: rule toggles plus solver
// settings.
type Config struct {
	Name   string                   `yaml:"name"`
	Rules  map[string]tt.ConfigRule `yaml:"rules"`
	Solver SolverConfig             `yaml:"solver"`
}

// SolverConfig carries the numeric settings of the solve panel.
type SolverConfig struct {
	// PivotTolerance overrides the default singularity threshold when
	// positive.
	PivotTolerance float64 `yaml:"pivot_tolerance,omitempty"`
}

// ParseConfigurationFile reads a YAML configuration. An empty path or a
// missing file yields the zero config, which enables every rule.
func ParseConfigurationFile(configurationPath string) (Config, error) {
	var config Config
	if configurationPath == "" {
		return config, nil
	}

	f, err := os.Open(configurationPath)
	if err != nil {
		if os.IsNotExist(err) {
			return config, nil
		}
		return config, err
	}
	defer f.Close()

	decoder := yaml.NewDecoder(f)
	if err := decoder.Decode(&config); err != nil {
		return config, err
	}
	return config, nil
}

// Session holds one derivation: the active rule catalog and the caller's
// step history. The engine itself stays stateless; every mutation below is
// a history operation.
type Session struct {
	catalog []internal.Rule
	ignored map[string]bool
	history *internal.History
}

// New builds a session from the configuration at configurationPath. Rules
// disabled in the configuration are dropped from the catalog.
func New(configurationPath string) (*Session, error) {
	config, err := ParseConfigurationFile(configurationPath)
	if err != nil {
		return nil, err
	}

	s := &Session{
		catalog: internal.DefaultCatalog(),
		ignored: make(map[string]bool),
		history: internal.NewHistory(),
	}
	for id, rule := range config.Rules {
		if !rule.On() {
			s.IgnoreRule(id)
		}
	}
	return s, nil
}

// IgnoreRule removes the rule from listing and application.
func (s *Session) IgnoreRule(id string) {
	s.ignored[id] = true
}

// Rules returns the active catalog in canonical order.
func (s *Session) Rules() []internal.Rule {
	active := make([]internal.Rule, 0, len(s.catalog))
	for _, r := range s.catalog {
		if !s.ignored[r.ID()] {
			active = append(active, r)
		}
	}
	return active
}

// Applicable returns the active rules whose predicate matches the current
// expression, in catalog order.
func (s *Session) Applicable() []internal.Rule {
	return internal.Applicable(s.history.Current().Expression, s.Rules())
}

// Apply applies the rule with the given id to the current step and
// advances the history. A transform failure still advances the history,
// with a pseudo-step labeled "Rule failed: <name>" carrying the error
// message, so the failure stays visible in the derivation; the error is
// returned as well.
func (s *Session) Apply(id string) (tt.Step, error) {
	rule := s.find(id)
	if rule == nil {
		return tt.Step{}, fmt.Errorf("apply %q: %w", id, ErrUnknownRule)
	}

	step, err := internal.Apply(s.history.Current(), rule)
	if err != nil {
		step = tt.Step{
			Expression:  s.history.Current().Expression,
			RuleID:      rule.ID(),
			RuleName:    "Rule failed: " + rule.Name(),
			Explanation: err.Error(),
		}
		s.history.Advance(step)
		return step, err
	}

	s.history.Advance(step)
	return step, nil
}

// Edit replaces the current expression with a manually entered one,
// recorded as its own step. The expression is whitespace-normalized like
// any transform output.
func (s *Session) Edit(expression string) tt.Step {
	step := tt.Step{
		Expression: rules.NormalizeSpace(expression),
		RuleName:   "Manual edit",
	}
	s.history.Advance(step)
	return step
}

// Reset returns the history to the single start step.
func (s *Session) Reset() {
	s.history.Reset()
}

// GoTo moves the cursor to an earlier or later recorded step.
func (s *Session) GoTo(index int) error {
	return s.history.GoTo(index)
}

// Current returns the step under the cursor.
func (s *Session) Current() tt.Step {
	return s.history.Current()
}

// Cursor returns the active history index.
func (s *Session) Cursor() int {
	return s.history.Cursor()
}

// Steps returns a copy of the recorded step sequence.
func (s *Session) Steps() []tt.Step {
	return s.history.Steps()
}

func (s *Session) find(id string) internal.Rule {
	for _, r := range s.Rules() {
		if r.ID() == id {
			return r
		}
	}
	return nil
}

// Replay applies a sequence of rule ids in order. Transform failures are
// logged and recorded as failed steps without stopping the replay; an
// unknown rule id aborts.
func Replay(logger *zap.Logger, s *Session, ruleIDs []string) ([]tt.Step, error) {
	for _, id := range ruleIDs {
		if _, err := s.Apply(id); err != nil {
			if errors.Is(err, ErrUnknownRule) {
				return nil, err
			}
			if logger != nil {
				logger.Warn("Rule application failed",
					zap.String("rule", id), zap.Error(err))
			}
		}
	}
	return s.Steps(), nil
}

package belief

import (
	"fmt"
	"math"

	"github.com/poiesic/bayesearch/core"
)

// Rule selects the revision formula.
type Rule int

const (
	// RuleLiteral revises using only the current priors.
	RuleLiteral Rule = iota
	// RuleSearchTheory weights each area by the chance a search missed it.
	RuleSearchTheory
)

func (r Rule) String() string {
	switch r {
	case RuleLiteral:
		return "literal"
	case RuleSearchTheory:
		return "search-theory"
	default:
		return fmt.Sprintf("Rule(%d)", int(r))
	}
}

// ParseRule maps a rule name to a Rule.
func ParseRule(name string) (Rule, error) {
	switch name {
	case "", "literal":
		return RuleLiteral, nil
	case "search-theory":
		return RuleSearchTheory, nil
	default:
		return RuleLiteral, fmt.Errorf("%w: unknown revision rule %q", core.ErrConfiguration, name)
	}
}

// State is the belief over which area holds the target.
// Priors sum to 1 after construction and after every successful revision.
type State struct {
	initial []float64
	p       []float64
	rule    Rule
}

// Option configures a State.
type Option func(*State)

// WithRule selects the revision rule. Default is RuleLiteral.
func WithRule(rule Rule) Option {
	return func(s *State) {
		s.rule = rule
	}
}

// New creates a belief state from priors; priors[i] belongs to area i+1.
func New(priors []float64, opts ...Option) (*State, error) {
	if err := core.ValidatePriors(priors); err != nil {
		return nil, err
	}

	s := &State{
		initial: append([]float64(nil), priors...),
		p:       append([]float64(nil), priors...),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// Rule returns the revision rule in use.
func (s *State) Rule() Rule {
	return s.rule
}

// NumAreas returns the number of areas.
func (s *State) NumAreas() int {
	return len(s.p)
}

// Priors returns a copy of the current probabilities.
func (s *State) Priors() []float64 {
	return append([]float64(nil), s.p...)
}

// Prior returns the current probability of one area.
func (s *State) Prior(area core.AreaID) (float64, error) {
	if err := core.ValidateAreaID(area, len(s.p)); err != nil {
		return 0, err
	}
	return s.p[area.Index()], nil
}

// Revise applies one round's update. effectiveness holds the round's
// per-area effectiveness and is only consulted by RuleSearchTheory.
// On error the state is left unchanged.
func (s *State) Revise(effectiveness []float64) error {
	weights := make([]float64, len(s.p))

	switch s.rule {
	case RuleSearchTheory:
		if len(effectiveness) != len(s.p) {
			return fmt.Errorf("%w: got %d effectiveness values for %d areas",
				core.ErrInvalidArea, len(effectiveness), len(s.p))
		}
		for i, p := range s.p {
			if err := core.ValidateEffectiveness(effectiveness[i]); err != nil {
				return err
			}
			weights[i] = p * (1 - effectiveness[i])
		}
	default:
		for i, p := range s.p {
			weights[i] = p * (1 - p)
		}
	}

	denom := 0.0
	for _, w := range weights {
		denom += w
	}
	if denom == 0 || math.IsNaN(denom) || math.IsInf(denom, 0) {
		return fmt.Errorf("%w: revision denominator is %v", core.ErrDegenerateProbability, denom)
	}

	for i, w := range weights {
		s.p[i] = w / denom
	}
	return nil
}

// Reset restores the configured priors.
func (s *State) Reset() {
	copy(s.p, s.initial)
}

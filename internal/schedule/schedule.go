// Package schedule reorders unordered rule bodies into deterministic,
// binding-safe execution sequences. Two interchangeable policies exist:
// mode-directed ordering (the default) walks the body by binding
// dependencies, and recall-directed ordering uses per-predicate frequency
// hints when the run is configured for Datalog-style execution.
//
// Remaining-literal pools are kept as insertion-ordered slices, so every
// "first literal found" tie-break resolves to original body order and the
// result is reproducible across runs.
package schedule

import (
	"fmt"

	"go.uber.org/zap"

	"lakatos/internal/rule"
)

// GroundingError reports a body that cannot be put into a binding-safe
// order: some literal's inputs can never be bound given the head and the
// other literals' outputs. The bias declarations are inconsistent for this
// rule; the caller discards it and the run continues.
type GroundingError struct {
	Literal rule.Literal
	Rule    rule.Rule
}

func (e *GroundingError) Error() string {
	return fmt.Sprintf("%s in clause %s could not be grounded", e.Literal, e.Rule)
}

// Orderer turns a rule with an unordered body into one whose body can be
// executed left to right without illegal free variables.
type Orderer interface {
	OrderRule(r rule.Rule) (rule.Rule, error)
}

// ModeOrderer is the default, mode-directed policy.
type ModeOrderer struct {
	logger *zap.Logger
}

// NewModeOrderer builds the mode-directed policy. A nil logger is replaced
// with a no-op.
func NewModeOrderer(logger *zap.Logger) *ModeOrderer {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ModeOrderer{logger: logger}
}

// selector is one tier of the literal-selection policy. Tiers are evaluated
// in rank order over the remaining pool; the first literal matching the
// highest non-empty tier is selected.
type selector func(lit rule.Literal, grounded map[string]bool, head *rule.Literal) bool

// isGenerator selects literals whose every position is output-moded; they
// can run with nothing bound.
func isGenerator(lit rule.Literal, _ map[string]bool, _ *rule.Literal) bool {
	return lit.IsGenerator()
}

// eligibleNonRecursive selects literals whose inputs are already grounded
// and whose predicate differs from the head's.
func eligibleNonRecursive(lit rule.Literal, grounded map[string]bool, head *rule.Literal) bool {
	if head != nil && lit.Predicate == head.Predicate {
		return false
	}
	return inputsGrounded(lit, grounded)
}

// eligibleRecursive selects any remaining literal whose inputs are
// grounded; by rank position this only fires for recursive literals.
func eligibleRecursive(lit rule.Literal, grounded map[string]bool, _ *rule.Literal) bool {
	return inputsGrounded(lit, grounded)
}

var selectors = []selector{isGenerator, eligibleNonRecursive, eligibleRecursive}

func inputsGrounded(lit rule.Literal, grounded map[string]bool) bool {
	for _, v := range lit.Inputs() {
		if !grounded[v] {
			return false
		}
	}
	return true
}

// OrderRule reorders r's body into a binding-safe sequence. A rule whose
// head has no input variables needs no grounding order and is returned
// unchanged. The input rule is never mutated.
func (o *ModeOrderer) OrderRule(r rule.Rule) (rule.Rule, error) {
	grounded := make(map[string]bool)
	if r.Head != nil {
		inputs := r.Head.Inputs()
		if len(inputs) == 0 {
			return r, nil
		}
		for _, v := range inputs {
			grounded[v] = true
		}
	}

	pool := append([]rule.Literal(nil), r.Body...)
	ordered := make([]rule.Literal, 0, len(pool))

	for len(pool) > 0 {
		idx := -1
	tiers:
		for _, sel := range selectors {
			for i, lit := range pool {
				if sel(lit, grounded, r.Head) {
					idx = i
					break tiers
				}
			}
		}
		if idx < 0 {
			err := &GroundingError{Literal: pool[0], Rule: r}
			o.logger.Warn("rule discarded", zap.Error(err))
			return rule.Rule{}, err
		}

		selected := pool[idx]
		ordered = append(ordered, selected)
		for _, v := range selected.Outputs() {
			grounded[v] = true
		}
		pool = append(pool[:idx], pool[idx+1:]...)
	}

	return rule.Rule{Head: r.Head, Body: ordered}, nil
}

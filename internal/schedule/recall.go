package schedule

import (
	"strings"

	"go.uber.org/zap"

	"lakatos/internal/rule"
)

// RecallSource resolves the frequency hint for a predicate under a
// boundedness pattern. The catalog's RecallScore satisfies this.
type RecallSource func(predicate, pattern string) int

// RecallOrderer is the alternate, recall-directed policy. It does not
// distinguish input from output positions: a variable is either seen or
// not. When several literals are simultaneously fully seen, the first in
// original body order wins; this tie-break is a documented choice, not a
// contract inherited from anywhere stronger.
type RecallOrderer struct {
	recall RecallSource
	logger *zap.Logger
}

// NewRecallOrderer builds the recall-directed policy around a hint source.
func NewRecallOrderer(recall RecallSource, logger *zap.Logger) *RecallOrderer {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &RecallOrderer{recall: recall, logger: logger}
}

// OrderRule reorders r's body by seen-variable coverage, falling back to
// the cheapest recall score when no remaining literal is fully covered.
// This policy always terminates: the fallback branch always selects
// something, so there is no grounding failure.
func (o *RecallOrderer) OrderRule(r rule.Rule) (rule.Rule, error) {
	seen := make(map[string]bool)
	if r.Head != nil {
		for _, v := range r.Head.Arguments {
			seen[v] = true
		}
	}

	pool := append([]rule.Literal(nil), r.Body...)
	ordered := make([]rule.Literal, 0, len(pool))

	for len(pool) > 0 {
		idx := -1
		for i, lit := range pool {
			if allSeen(lit, seen) {
				idx = i
				break
			}
		}
		if idx < 0 {
			best := o.score(pool[0], seen)
			idx = 0
			for i := 1; i < len(pool); i++ {
				if s := o.score(pool[i], seen); s < best {
					best = s
					idx = i
				}
			}
		}

		selected := pool[idx]
		ordered = append(ordered, selected)
		for _, v := range selected.Arguments {
			seen[v] = true
		}
		pool = append(pool[:idx], pool[idx+1:]...)
	}

	return rule.Rule{Head: r.Head, Body: ordered}, nil
}

func allSeen(lit rule.Literal, seen map[string]bool) bool {
	for _, v := range lit.Arguments {
		if !seen[v] {
			return false
		}
	}
	return true
}

// score looks up the recall hint for the literal under the current
// boundedness pattern: one '1' or '0' per argument position.
func (o *RecallOrderer) score(lit rule.Literal, seen map[string]bool) int {
	var pattern strings.Builder
	for _, v := range lit.Arguments {
		if seen[v] {
			pattern.WriteByte('1')
		} else {
			pattern.WriteByte('0')
		}
	}
	return o.recall(lit.Predicate, pattern.String())
}

// Package canon deduplicates, orders and compares candidate programs.
// Everything here is syntactic: rules reduce to (predicate, arguments)
// signatures that ignore mode and type annotations, and subsumption is a
// plain set-containment test. Two logically equivalent rules that differ
// only by variable renaming are not recognized as equivalent; that is a
// documented limitation, deliberately not corrected here.
package canon

import (
	"sort"
	"strings"

	"lakatos/internal/rule"
)

// Signature reduces a literal to its predicate and argument spelling,
// dropping modes and types.
func Signature(l rule.Literal) string {
	return l.String()
}

// ruleKey is the dedup signature of a rule: the head signature (empty for a
// constraint) plus the body signatures as a sorted set.
func ruleKey(r rule.Rule) string {
	var head string
	if r.Head != nil {
		head = Signature(*r.Head)
	}
	body := bodySignatures(r)
	return head + " :- " + strings.Join(body, ";")
}

func bodySignatures(r rule.Rule) []string {
	set := make(map[string]bool, len(r.Body))
	for _, lit := range r.Body {
		set[Signature(lit)] = true
	}
	sigs := make([]string, 0, len(set))
	for s := range set {
		sigs = append(sigs, s)
	}
	sort.Strings(sigs)
	return sigs
}

// Reduce deduplicates a program: rules whose heads and body sets reduce to
// the same signatures collapse to one representative. The first occurrence
// is kept and first-occurrence order is preserved.
func Reduce(p rule.Program) rule.Program {
	seen := make(map[string]bool, len(p))
	var out rule.Program
	for _, r := range p {
		k := ruleKey(r)
		if seen[k] {
			continue
		}
		seen[k] = true
		out = append(out, r)
	}
	return out
}

// OrderProgram returns the canonical display order: non-recursive rules
// before recursive ones, and within each class by ascending body length.
// The sort is stable, so equal rules keep their relative order.
func OrderProgram(p rule.Program) rule.Program {
	out := append(rule.Program(nil), p...)
	sort.SliceStable(out, func(i, j int) bool {
		ri, rj := out[i].IsRecursive(), out[j].IsRecursive()
		if ri != rj {
			return !ri
		}
		return len(out[i].Body) < len(out[j].Body)
	})
	return out
}

// SortBodyForDisplay re-sorts a rule's body by (argument count, predicate,
// arguments) for diff-friendly printing. It is a display variant only and
// deliberately ignores binding safety.
func SortBodyForDisplay(r rule.Rule) rule.Rule {
	body := append([]rule.Literal(nil), r.Body...)
	sort.SliceStable(body, func(i, j int) bool {
		if len(body[i].Arguments) != len(body[j].Arguments) {
			return len(body[i].Arguments) < len(body[j].Arguments)
		}
		if body[i].Predicate != body[j].Predicate {
			return body[i].Predicate < body[j].Predicate
		}
		return strings.Join(body[i].Arguments, ",") < strings.Join(body[j].Arguments, ",")
	})
	return rule.Rule{Head: r.Head, Body: body}
}

// RuleSubsumes reports whether r1 subsumes r2: r1's body-signature set is a
// subset of r2's, and a headed rule never subsumes a headless one.
func RuleSubsumes(r1, r2 rule.Rule) bool {
	if r1.Head != nil && r2.Head == nil {
		return false
	}
	b2 := make(map[string]bool, len(r2.Body))
	for _, lit := range r2.Body {
		b2[Signature(lit)] = true
	}
	for _, lit := range r1.Body {
		if !b2[Signature(lit)] {
			return false
		}
	}
	return true
}

// ProgramSubsumes reports whether p1 subsumes p2: every rule in p2 is
// subsumed by some rule in p1.
func ProgramSubsumes(p1, p2 rule.Program) bool {
	for _, r2 := range p2 {
		subsumed := false
		for _, r1 := range p1 {
			if RuleSubsumes(r1, r2) {
				subsumed = true
				break
			}
		}
		if !subsumed {
			return false
		}
	}
	return true
}

// BodyOrderer re-orders one rule's body for display; the scheduler's
// OrderRule satisfies this.
type BodyOrderer func(r rule.Rule) (rule.Rule, error)

// FormatProgram renders a program one rule per line in canonical program
// order, passing each rule through orderBody first. A rule the orderer
// rejects is rendered in its given order; rendering never fails.
func FormatProgram(p rule.Program, orderBody BodyOrderer) string {
	lines := make([]string, 0, len(p))
	for _, r := range OrderProgram(p) {
		if orderBody != nil {
			if ordered, err := orderBody(r); err == nil {
				r = ordered
			}
		}
		lines = append(lines, r.String())
	}
	return strings.Join(lines, "\n")
}

// FormatProgramSorted renders a program with display-sorted bodies, the
// diffing-oriented variant of FormatProgram.
func FormatProgramSorted(p rule.Program) string {
	return FormatProgram(p, func(r rule.Rule) (rule.Rule, error) {
		return SortBodyForDisplay(r), nil
	})
}

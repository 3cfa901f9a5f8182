// Package rule provides the foundational value types shared across lakatos
// packages: literals with per-argument binding directions, rules, and
// programs. Types in this package are plain values with no complex
// dependencies so that the catalog, scheduler, enumerator and canonicalizer
// can all build on them without import cycles.
package rule

import (
	"fmt"
	"strings"
)

// Direction tags how an argument position binds when a literal executes.
type Direction int

const (
	// In means the argument must be bound before the literal executes.
	In Direction = iota
	// Out means the argument becomes bound by executing the literal.
	Out
	// Unbound means the position carries no binding constraint. Invented
	// predicates have no fixed mode a priori, so all their positions are
	// Unbound.
	Unbound
)

// String returns the bias-file spelling of the direction.
func (d Direction) String() string {
	switch d {
	case In:
		return "in"
	case Out:
		return "out"
	default:
		return "?"
	}
}

// InventedPrefix marks predicates introduced by predicate invention.
const InventedPrefix = "inv"

// Literal is an atomic predicate application with named arguments and
// per-argument binding directions. Literals are immutable values; callers
// must not mutate Arguments or Modes after construction.
type Literal struct {
	Predicate string
	Arguments []string
	Modes     []Direction
}

// NewLiteral builds a literal, enforcing that the mode vector matches the
// argument list position for position.
func NewLiteral(predicate string, arguments []string, modes []Direction) (Literal, error) {
	if len(modes) != len(arguments) {
		return Literal{}, fmt.Errorf("literal %s: %d arguments but %d modes", predicate, len(arguments), len(modes))
	}
	return Literal{Predicate: predicate, Arguments: arguments, Modes: modes}, nil
}

// MustLiteral is NewLiteral that panics on a malformed literal. Intended for
// tests and for templates derived from an already-validated catalog.
func MustLiteral(predicate string, arguments []string, modes []Direction) Literal {
	l, err := NewLiteral(predicate, arguments, modes)
	if err != nil {
		panic(err)
	}
	return l
}

// Arity returns the number of argument positions.
func (l Literal) Arity() int { return len(l.Arguments) }

// Inputs returns the distinct variables at In positions, in first-occurrence
// order.
func (l Literal) Inputs() []string { return l.argsWithMode(In) }

// Outputs returns the distinct variables at Out positions, in
// first-occurrence order.
func (l Literal) Outputs() []string { return l.argsWithMode(Out) }

func (l Literal) argsWithMode(d Direction) []string {
	var vars []string
	seen := make(map[string]bool, len(l.Arguments))
	for i, arg := range l.Arguments {
		if i < len(l.Modes) && l.Modes[i] == d && !seen[arg] {
			seen[arg] = true
			vars = append(vars, arg)
		}
	}
	return vars
}

// IsGenerator reports whether every argument position is output-moded.
// Generators can execute with no variables bound, so the scheduler may place
// them anywhere. A literal with a repeated variable is only a generator if
// the repeat is itself output-moded, mirroring the set semantics of the
// distinct-output comparison.
func (l Literal) IsGenerator() bool {
	return len(l.Outputs()) == len(l.Arguments)
}

// String renders the literal as predicate(arg,arg).
func (l Literal) String() string {
	return l.Predicate + "(" + strings.Join(l.Arguments, ",") + ")"
}

// Equal reports structural equality of predicate, arguments and modes.
func (l Literal) Equal(other Literal) bool {
	if l.Predicate != other.Predicate || len(l.Arguments) != len(other.Arguments) || len(l.Modes) != len(other.Modes) {
		return false
	}
	for i := range l.Arguments {
		if l.Arguments[i] != other.Arguments[i] {
			return false
		}
	}
	for i := range l.Modes {
		if l.Modes[i] != other.Modes[i] {
			return false
		}
	}
	return true
}

// Rule is a single clause: an optional head literal (nil marks a
// constraint/denial) and a body. Body order is the insertion order handed to
// the planner; the scheduler produces a reordered copy and never mutates the
// original.
type Rule struct {
	Head *Literal
	Body []Literal
}

// NewRule builds a rule from an optional head and body literals.
func NewRule(head *Literal, body ...Literal) Rule {
	return Rule{Head: head, Body: body}
}

// IsRecursive reports whether any body literal shares the head's predicate.
// Headless rules are never recursive.
func (r Rule) IsRecursive() bool {
	if r.Head == nil {
		return false
	}
	for _, lit := range r.Body {
		if lit.Predicate == r.Head.Predicate {
			return true
		}
	}
	return false
}

// IsInvented reports whether the head predicate was introduced by predicate
// invention.
func (r Rule) IsInvented() bool {
	return r.Head != nil && strings.HasPrefix(r.Head.Predicate, InventedPrefix)
}

// Size is 1 for the head plus one per body literal.
func (r Rule) Size() int { return 1 + len(r.Body) }

// Program is an ordered sequence of rules. No inherent ordering is implied
// until the program is canonicalized.
type Program []Rule

// Size is the sum of the member rule sizes.
func (p Program) Size() int {
	total := 0
	for _, r := range p {
		total += r.Size()
	}
	return total
}

// IsRecursive reports whether a multi-rule program contains a recursive
// rule. Single-rule programs report false: the recursive case only matters
// once a base case exists alongside it.
func (p Program) IsRecursive() bool {
	if len(p) < 2 {
		return false
	}
	for _, r := range p {
		if r.IsRecursive() {
			return true
		}
	}
	return false
}

// HasInvention reports whether a multi-rule program defines an invented
// predicate.
func (p Program) HasInvention() bool {
	if len(p) < 2 {
		return false
	}
	for _, r := range p {
		if r.IsInvented() {
			return true
		}
	}
	return false
}

package bias

import (
	"fmt"
	"io"

	"github.com/google/mangle/ast"
	"github.com/google/mangle/parse"

	"lakatos/internal/rule"
)

// ModeSource resolves the direction vector of a predicate, typically backed
// by a compiled catalog. A nil return means the predicate has no declared
// modes and every position is treated as Unbound.
type ModeSource func(predicate string, arity int) []rule.Direction

// ParseRules decodes candidate rules in clause syntax, attaching per-literal
// modes from the given source. Only variables may appear as arguments: the
// planner schedules over variable bindings, not ground terms.
func ParseRules(r io.Reader, modes ModeSource) ([]rule.Rule, error) {
	unit, err := parse.Unit(r)
	if err != nil {
		return nil, fmt.Errorf("parse rules: %w", err)
	}

	var rules []rule.Rule
	for _, clause := range unit.Clauses {
		head, err := atomToLiteral(clause.Head, modes)
		if err != nil {
			return nil, err
		}
		body := make([]rule.Literal, 0, len(clause.Premises))
		for _, premise := range clause.Premises {
			atom, ok := premise.(ast.Atom)
			if !ok {
				return nil, fmt.Errorf("parse rules: %v: body term %v is not an atom", clause.Head, premise)
			}
			lit, err := atomToLiteral(atom, modes)
			if err != nil {
				return nil, err
			}
			body = append(body, lit)
		}
		rules = append(rules, rule.Rule{Head: &head, Body: body})
	}
	return rules, nil
}

func atomToLiteral(atom ast.Atom, modes ModeSource) (rule.Literal, error) {
	args := make([]string, len(atom.Args))
	for i, term := range atom.Args {
		v, ok := term.(ast.Variable)
		if !ok {
			return rule.Literal{}, fmt.Errorf("parse rules: %v: argument %d is not a variable", atom, i)
		}
		args[i] = v.Symbol
	}

	var dirs []rule.Direction
	if modes != nil {
		dirs = modes(atom.Predicate.Symbol, len(args))
	}
	if dirs == nil {
		dirs = make([]rule.Direction, len(args))
		for i := range dirs {
			dirs[i] = rule.Unbound
		}
	}
	if len(dirs) != len(args) {
		return rule.Literal{}, fmt.Errorf("parse rules: %v: mode vector has %d entries for %d arguments", atom, len(dirs), len(args))
	}
	return rule.NewLiteral(atom.Predicate.Symbol, args, dirs)
}

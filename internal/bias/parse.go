package bias

import (
	"fmt"
	"io"
	"strings"

	"github.com/google/mangle/ast"
	"github.com/google/mangle/parse"

	"lakatos/internal/rule"
)

// Parse decodes a bias source in Mangle syntax into typed fact records.
// Recognized facts:
//
//	head_pred(/f, 2).
//	body_pred(/succ, 2).
//	direction(/f, 0, /in).
//	type(/f, 0, /int).
//	recall(/succ, "10", 1).
//	max_body(6).
//	max_vars(6).
//	max_clauses(2).
//	enable_recursion().
//	enable_pi().
//
// Unknown predicates are ignored (bias files routinely carry facts for the
// external solvers); malformed arguments on a recognized fact are an error
// naming the offending clause.
func Parse(r io.Reader) (*Facts, error) {
	unit, err := parse.Unit(r)
	if err != nil {
		return nil, fmt.Errorf("parse bias: %w", err)
	}

	facts := &Facts{}
	for _, clause := range unit.Clauses {
		if len(clause.Premises) > 0 {
			return nil, fmt.Errorf("parse bias: %v: bias files hold facts only, not rules", clause.Head)
		}
		if err := facts.addAtom(clause.Head); err != nil {
			return nil, err
		}
	}
	return facts, nil
}

// ParseString is Parse over an in-memory source.
func ParseString(src string) (*Facts, error) {
	return Parse(strings.NewReader(src))
}

func (f *Facts) addAtom(atom ast.Atom) error {
	switch atom.Predicate.Symbol {
	case "head_pred", "body_pred":
		sym, err := nameArg(atom, 0)
		if err != nil {
			return err
		}
		arity, err := numberArg(atom, 1)
		if err != nil {
			return err
		}
		decl := PredDecl{Symbol: sym, Arity: arity}
		if atom.Predicate.Symbol == "head_pred" {
			f.HeadPreds = append(f.HeadPreds, decl)
		} else {
			f.BodyPreds = append(f.BodyPreds, decl)
		}
	case "direction":
		sym, err := nameArg(atom, 0)
		if err != nil {
			return err
		}
		arg, err := numberArg(atom, 1)
		if err != nil {
			return err
		}
		dir, err := directionArg(atom, 2)
		if err != nil {
			return err
		}
		f.Directions = append(f.Directions, DirectionFact{Predicate: sym, Arg: arg, Direction: dir})
	case "type":
		sym, err := nameArg(atom, 0)
		if err != nil {
			return err
		}
		arg, err := numberArg(atom, 1)
		if err != nil {
			return err
		}
		typ, err := nameArg(atom, 2)
		if err != nil {
			return err
		}
		f.Types = append(f.Types, TypeFact{Predicate: sym, Arg: arg, Type: typ})
	case "recall":
		sym, err := nameArg(atom, 0)
		if err != nil {
			return err
		}
		pattern, err := stringArg(atom, 1)
		if err != nil {
			return err
		}
		count, err := numberArg(atom, 2)
		if err != nil {
			return err
		}
		f.Recall = append(f.Recall, RecallFact{Predicate: sym, Pattern: pattern, Count: count})
	case "max_body":
		n, err := numberArg(atom, 0)
		if err != nil {
			return err
		}
		f.MaxBody = &n
	case "max_vars":
		n, err := numberArg(atom, 0)
		if err != nil {
			return err
		}
		f.MaxVars = &n
	case "max_clauses":
		n, err := numberArg(atom, 0)
		if err != nil {
			return err
		}
		f.MaxClauses = &n
	case "enable_recursion":
		f.EnableRecursion = true
	case "enable_pi":
		f.EnablePI = true
	}
	return nil
}

func constArg(atom ast.Atom, i int) (ast.Constant, error) {
	if i >= len(atom.Args) {
		return ast.Constant{}, fmt.Errorf("parse bias: %v: missing argument %d", atom, i)
	}
	c, ok := atom.Args[i].(ast.Constant)
	if !ok {
		return ast.Constant{}, fmt.Errorf("parse bias: %v: argument %d is not a constant", atom, i)
	}
	return c, nil
}

// nameArg decodes a name constant like /succ, stripping the leading slash.
func nameArg(atom ast.Atom, i int) (string, error) {
	c, err := constArg(atom, i)
	if err != nil {
		return "", err
	}
	if c.Type != ast.NameType {
		return "", fmt.Errorf("parse bias: %v: argument %d must be a name constant", atom, i)
	}
	return strings.TrimPrefix(c.Symbol, "/"), nil
}

func numberArg(atom ast.Atom, i int) (int, error) {
	c, err := constArg(atom, i)
	if err != nil {
		return 0, err
	}
	if c.Type != ast.NumberType {
		return 0, fmt.Errorf("parse bias: %v: argument %d must be a number", atom, i)
	}
	return int(c.NumValue), nil
}

func stringArg(atom ast.Atom, i int) (string, error) {
	c, err := constArg(atom, i)
	if err != nil {
		return "", err
	}
	if c.Type != ast.StringType {
		return "", fmt.Errorf("parse bias: %v: argument %d must be a string", atom, i)
	}
	return c.Symbol, nil
}

func directionArg(atom ast.Atom, i int) (rule.Direction, error) {
	name, err := nameArg(atom, i)
	if err != nil {
		return rule.Unbound, err
	}
	switch name {
	case "in":
		return rule.In, nil
	case "out":
		return rule.Out, nil
	case "unbound":
		return rule.Unbound, nil
	default:
		return rule.Unbound, fmt.Errorf("parse bias: %v: unknown direction /%s", atom, name)
	}
}

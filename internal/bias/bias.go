// Package bias decodes the declarative language bias handed to the planner
// into typed fact records. Bias files are written in Mangle (Datalog)
// syntax and parsed with the Mangle parser; the records here are the flat,
// already-decoded surface the catalog builder consumes.
package bias

import "lakatos/internal/rule"

// PredDecl declares a predicate symbol with its arity.
type PredDecl struct {
	Symbol string
	Arity  int
}

// DirectionFact assigns a binding direction to one argument position of a
// predicate.
type DirectionFact struct {
	Predicate string
	Arg       int
	Direction rule.Direction
}

// TypeFact assigns a type symbol to one argument position of a predicate.
type TypeFact struct {
	Predicate string
	Arg       int
	Type      string
}

// RecallFact is a frequency hint for a predicate under a boundedness
// pattern ("1" bound, "0" free, one character per argument). The fallback
// scheduler prefers lower values.
type RecallFact struct {
	Predicate string
	Pattern   string
	Count     int
}

// Facts is the flat bias vocabulary: predicate declarations, directions,
// types, bound overrides and feature flags. Nil bound fields mean the fact
// was absent and caller defaults apply.
type Facts struct {
	HeadPreds  []PredDecl
	BodyPreds  []PredDecl
	Directions []DirectionFact
	Types      []TypeFact
	Recall     []RecallFact

	MaxBody    *int
	MaxVars    *int
	MaxClauses *int

	EnableRecursion bool
	EnablePI        bool
}

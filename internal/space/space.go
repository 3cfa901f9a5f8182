// Package space enumerates the ordered sequence of (literal count,
// variable count, rule count) configurations the outer iterative-deepening
// search attempts. The sequence is computed once per run and consumed
// read-only.
package space

import (
	"fmt"
	"math/big"
	"sort"
)

// Entry is one search configuration. Size is a combinatorial upper bound on
// the hypothesis space, not an exact count; it is nil in the simple sweep
// mode.
type Entry struct {
	Literals int
	Vars     int
	Rules    int
	Size     *big.Int
}

// String renders the entry for the plan listing.
func (e Entry) String() string {
	if e.Size == nil {
		return fmt.Sprintf("literals=%d vars=%d rules=%d", e.Literals, e.Vars, e.Rules)
	}
	return fmt.Sprintf("literals=%d vars=%d rules=%d space=%s", e.Literals, e.Vars, e.Rules, e.Size)
}

// Options bounds the enumeration. BodyPredCount excludes the head
// predicate; the estimator adds it back.
type Options struct {
	MaxLiterals   int
	MaxVars       int
	MaxRules      int
	MaxBody       int
	MaxArity      int
	BodyPredCount int

	// NoBias widens the sweep to start from one rule and one variable
	// instead of pinning both to their maxima.
	NoBias bool
	// OrderBySpace sorts the expanded sweep by estimated size.
	OrderBySpace bool
}

// Enumerate produces the search order. With neither NoBias nor
// OrderBySpace the simple mode applies: one entry per literal count from 1
// to MaxLiterals-1, carrying the configured variable and rule maxima and no
// size estimate. Otherwise the expanded nested sweep runs.
func Enumerate(opts Options) []Entry {
	if !opts.NoBias && !opts.OrderBySpace {
		var entries []Entry
		for literals := 1; literals < opts.MaxLiterals; literals++ {
			entries = append(entries, Entry{Literals: literals, Vars: opts.MaxVars, Rules: opts.MaxRules})
		}
		return entries
	}

	predicates := int64(opts.BodyPredCount + 1)
	arity := opts.MaxArity

	minRules := opts.MaxRules
	if opts.NoBias {
		minRules = 1
	}

	var entries []Entry
	for rules := minRules; rules <= opts.MaxRules; rules++ {
		maxLiterals := (1 + opts.MaxBody) * rules
		for literals := 1; literals <= maxLiterals; literals++ {
			minVars := opts.MaxVars
			if opts.NoBias {
				minVars = 1
			}
			for vars := minVars; vars <= opts.MaxVars; vars++ {
				// A configuration needs at least one variable shared across
				// literals to be connected; beyond literals*arity-1 distinct
				// variables every literal would be disjoint.
				if vars > literals*arity-1 {
					break
				}
				size := estimate(predicates, vars, arity, literals)
				if size.Sign() == 0 {
					continue
				}
				// Multi-rule programs need a minimum body to be meaningful.
				if rules > 1 && literals < 5 {
					continue
				}
				entries = append(entries, Entry{Literals: literals, Vars: vars, Rules: rules, Size: size})
			}
		}
	}

	if opts.OrderBySpace {
		sort.SliceStable(entries, func(i, j int) bool {
			if c := entries[i].Size.Cmp(entries[j].Size); c != 0 {
				return c < 0
			}
			return entries[i].Literals < entries[j].Literals
		})
	}
	return entries
}

// estimate bounds the hypothesis space as "choose literals from
// predicates * vars^arity candidate atoms".
func estimate(predicates int64, vars, arity, literals int) *big.Int {
	atoms := int64(1)
	for i := 0; i < arity; i++ {
		atoms *= int64(vars)
	}
	atoms *= predicates
	if atoms < 0 {
		atoms = 0
	}
	return new(big.Int).Binomial(atoms, int64(literals))
}

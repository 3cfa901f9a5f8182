package catalog

import (
	"strconv"
	"strings"

	"lakatos/internal/rule"
)

// ArgTuple is a comma-joined sequence of variable slot indices, e.g. "0,2".
// It keys the permutation table and the literal template cache so slices
// never need to be compared.
type ArgTuple string

// TemplateKey identifies a precomputed literal.
type TemplateKey struct {
	Predicate string
	Args      ArgTuple
}

// TupleKey builds the cache key for a sequence of variable slot indices.
func TupleKey(slots []int) ArgTuple {
	parts := make([]string, len(slots))
	for i, s := range slots {
		parts[i] = strconv.Itoa(s)
	}
	return ArgTuple(strings.Join(parts, ","))
}

// VarName maps a variable slot index to its canonical name: A, B, C, ...
// The scheme is purely positional and deterministic.
func VarName(slot int) string {
	return string(rune('A' + slot))
}

func canonicalArgs(arity int) []string {
	args := make([]string, arity)
	for i := range args {
		args[i] = VarName(i)
	}
	return args
}

// buildArgPerms fills the permutation table: for every arity from 1 to the
// observed maximum, every permutation of variable slots 0..MaxVars-1 of
// that length maps to its canonical variable names.
func (c *Catalog) buildArgPerms() {
	c.ArgPerms = make(map[ArgTuple][]string)
	for arity := 1; arity <= c.MaxArity; arity++ {
		for _, slots := range permutations(c.MaxVars, arity) {
			names := make([]string, len(slots))
			for i, s := range slots {
				names[i] = VarName(s)
			}
			c.ArgPerms[TupleKey(slots)] = names
		}
	}
}

// buildTemplates precomputes one literal per (predicate, argument tuple)
// pair whose tuple length matches the predicate's arity. The cache only
// avoids re-deriving literals during grounding; it is rebuildable from the
// catalog at any time and is never a source of truth.
func (c *Catalog) buildTemplates() {
	c.Templates = make(map[TemplateKey]rule.Literal)
	add := func(pred string, arity int) {
		modes := c.Modes[pred]
		for key, names := range c.ArgPerms {
			if len(names) != arity {
				continue
			}
			c.Templates[TemplateKey{Predicate: pred, Args: key}] = rule.MustLiteral(pred, names, modes)
		}
	}
	for decl := range c.BodyPreds {
		add(decl.Symbol, decl.Arity)
	}
	add(c.HeadPred, c.HeadArity)
}

// Template returns the precomputed literal for a (predicate, slot tuple)
// pair, if one exists.
func (c *Catalog) Template(predicate string, slots []int) (rule.Literal, bool) {
	lit, ok := c.Templates[TemplateKey{Predicate: predicate, Args: TupleKey(slots)}]
	return lit, ok
}

// permutations enumerates all k-permutations of 0..n-1 in lexicographic
// order of the index tuples.
func permutations(n, k int) [][]int {
	if k <= 0 || k > n {
		return nil
	}
	var out [][]int
	used := make([]bool, n)
	current := make([]int, 0, k)
	var walk func()
	walk = func() {
		if len(current) == k {
			out = append(out, append([]int(nil), current...))
			return
		}
		for i := 0; i < n; i++ {
			if used[i] {
				continue
			}
			used[i] = true
			current = append(current, i)
			walk()
			current = current[:len(current)-1]
			used[i] = false
		}
	}
	walk()
	return out
}

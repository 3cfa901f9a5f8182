// Package catalog compiles the declarative bias vocabulary into the
// immutable lookup structures every later search step depends on: predicate
// mode and type vectors, search bounds, the argument-permutation table and
// the literal template cache. The catalog is built once at startup and is
// read-only for the remainder of the run.
package catalog

import (
	"fmt"

	"go.uber.org/zap"

	"lakatos/internal/bias"
	"lakatos/internal/rule"
)

// DefaultRecall is the score assumed for a (predicate, pattern) pair with
// no recall hint: effectively "try last".
const DefaultRecall = 1000000

// MissingModeError reports a head or body predicate whose direction vector
// is incomplete. Catalog construction is configuration: this error is fatal
// to the run.
type MissingModeError struct {
	Predicate string
	Arity     int
	Arg       int
}

func (e *MissingModeError) Error() string {
	return fmt.Sprintf("bias: predicate %s/%d has no direction for argument %d", e.Predicate, e.Arity, e.Arg)
}

// RecallKey identifies a frequency hint: a predicate plus a boundedness
// pattern ("1" bound, "0" free, one character per argument position).
type RecallKey struct {
	Predicate string
	Pattern   string
}

// Options carries the caller-supplied default bounds. Bias facts override
// them where present.
type Options struct {
	MaxBody  int
	MaxVars  int
	MaxRules int
}

// Catalog is the compiled predicate/mode/type vocabulary. All fields are
// populated by Build and must be treated as immutable afterwards.
type Catalog struct {
	HeadPred  string
	HeadArity int
	// Head is the canonical head literal over variables A, B, C, ...
	// Zero-valued when predicate invention is enabled.
	Head rule.Literal

	// Modes maps each declared predicate to its direction vector. Empty
	// when predicate invention is enabled.
	Modes map[string][]rule.Direction

	HeadTypes []string
	BodyTypes map[string][]string

	BodyPreds map[bias.PredDecl]bool

	MaxArity int
	MaxBody  int
	MaxVars  int
	MaxRules int

	RecursionEnabled bool
	InventionEnabled bool
	// SingleSolve is true when neither recursion nor invention is enabled:
	// the outer search then solves for one rule at a time.
	SingleSolve bool

	Recall map[RecallKey]int

	// ArgPerms maps every permutation of variable slots (up to MaxVars,
	// for each arity up to MaxArity) to its canonical variable names.
	ArgPerms map[ArgTuple][]string
	// Templates maps (predicate, argument tuple) to a prebuilt literal.
	// Empty when predicate invention is enabled.
	Templates map[TemplateKey]rule.Literal
}

// Build compiles bias facts into a catalog. Errors are fatal configuration
// errors: an incomplete direction vector (without predicate invention), a
// missing head declaration, or an out-of-range fact.
func Build(facts *bias.Facts, opts Options, logger *zap.Logger) (*Catalog, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	cat := &Catalog{
		Modes:            make(map[string][]rule.Direction),
		BodyTypes:        make(map[string][]string),
		BodyPreds:        make(map[bias.PredDecl]bool),
		Recall:           make(map[RecallKey]int),
		MaxBody:          opts.MaxBody,
		MaxVars:          opts.MaxVars,
		RecursionEnabled: facts.EnableRecursion,
		InventionEnabled: facts.EnablePI,
	}

	if len(facts.HeadPreds) == 0 {
		return nil, fmt.Errorf("bias: no head_pred declared")
	}
	head := facts.HeadPreds[len(facts.HeadPreds)-1]
	cat.HeadPred = head.Symbol
	cat.HeadArity = head.Arity
	cat.MaxArity = head.Arity

	for _, decl := range facts.BodyPreds {
		cat.BodyPreds[decl] = true
		if decl.Arity > cat.MaxArity {
			cat.MaxArity = decl.Arity
		}
	}

	if facts.MaxBody != nil {
		cat.MaxBody = *facts.MaxBody
	}
	if facts.MaxVars != nil {
		cat.MaxVars = *facts.MaxVars
	}
	switch {
	case facts.MaxClauses != nil:
		cat.MaxRules = *facts.MaxClauses
	case cat.RecursionEnabled || cat.InventionEnabled:
		cat.MaxRules = opts.MaxRules
	default:
		cat.MaxRules = 1
	}
	cat.SingleSolve = !(cat.RecursionEnabled || cat.InventionEnabled)

	// Invented predicates have no fixed mode a priori, so direction
	// inference and literal templates are skipped entirely under PI.
	if !cat.InventionEnabled {
		dirs := make(map[string]map[int]rule.Direction)
		for _, d := range facts.Directions {
			if dirs[d.Predicate] == nil {
				dirs[d.Predicate] = make(map[int]rule.Direction)
			}
			dirs[d.Predicate][d.Arg] = d.Direction
		}
		decls := append([]bias.PredDecl{head}, facts.BodyPreds...)
		for _, decl := range decls {
			vector, err := modeVector(decl, dirs[decl.Symbol])
			if err != nil {
				return nil, err
			}
			cat.Modes[decl.Symbol] = vector
		}
		cat.Head = rule.MustLiteral(head.Symbol, canonicalArgs(head.Arity), cat.Modes[head.Symbol])
	}

	for _, r := range facts.Recall {
		cat.Recall[RecallKey{Predicate: r.Predicate, Pattern: r.Pattern}] = r.Count
	}

	typed := make(map[string][]string)
	for _, t := range facts.Types {
		vector := typed[t.Predicate]
		for len(vector) <= t.Arg {
			vector = append(vector, "")
		}
		vector[t.Arg] = t.Type
		typed[t.Predicate] = vector
	}
	for pred, vector := range typed {
		if pred == cat.HeadPred {
			cat.HeadTypes = vector
		} else {
			cat.BodyTypes[pred] = vector
		}
	}

	cat.buildArgPerms()
	if !cat.InventionEnabled {
		cat.buildTemplates()
	}

	logger.Debug("catalog compiled",
		zap.String("head", fmt.Sprintf("%s/%d", cat.HeadPred, cat.HeadArity)),
		zap.Int("body_preds", len(cat.BodyPreds)),
		zap.Int("max_rules", cat.MaxRules),
		zap.Int("max_vars", cat.MaxVars),
		zap.Int("max_body", cat.MaxBody),
		zap.Int("templates", len(cat.Templates)))

	return cat, nil
}

func modeVector(decl bias.PredDecl, dirs map[int]rule.Direction) ([]rule.Direction, error) {
	vector := make([]rule.Direction, decl.Arity)
	for i := 0; i < decl.Arity; i++ {
		d, ok := dirs[i]
		if !ok {
			return nil, &MissingModeError{Predicate: decl.Symbol, Arity: decl.Arity, Arg: i}
		}
		vector[i] = d
	}
	return vector, nil
}

// ModeSource adapts the catalog for the rule decoder: declared predicates
// resolve to their direction vector, everything else to nil (all Unbound).
func (c *Catalog) ModeSource(predicate string, arity int) []rule.Direction {
	vector, ok := c.Modes[predicate]
	if !ok || len(vector) != arity {
		return nil
	}
	return vector
}

// RecallScore looks up the frequency hint for a predicate under a
// boundedness pattern, defaulting to DefaultRecall so unseen combinations
// sort last.
func (c *Catalog) RecallScore(predicate, pattern string) int {
	if n, ok := c.Recall[RecallKey{Predicate: predicate, Pattern: pattern}]; ok {
		return n
	}
	return DefaultRecall
}

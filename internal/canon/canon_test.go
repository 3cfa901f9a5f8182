package canon

import (
	"testing"

	"lakatos/internal/rule"
)

func lit(pred string, args ...string) rule.Literal {
	modes := make([]rule.Direction, len(args))
	for i := range modes {
		modes[i] = rule.In
	}
	return rule.MustLiteral(pred, args, modes)
}

func headed(head rule.Literal, body ...rule.Literal) rule.Rule {
	return rule.NewRule(&head, body...)
}

func TestReduceCollapsesLiteralOrder(t *testing.T) {
	// p(A,B) :- q(A), r(B).  and  p(A,B) :- r(B), q(A).  are duplicates.
	r1 := headed(lit("p", "A", "B"), lit("q", "A"), lit("r", "B"))
	r2 := headed(lit("p", "A", "B"), lit("r", "B"), lit("q", "A"))

	got := Reduce(rule.Program{r1, r2})
	if len(got) != 1 {
		t.Fatalf("expected one rule after dedup, got %d", len(got))
	}
	if got[0].String() != r1.String() {
		t.Fatalf("expected first occurrence kept, got %s", got[0])
	}
}

func TestReduceIgnoresModes(t *testing.T) {
	// Same signature, different modes: still duplicates.
	a := rule.MustLiteral("q", []string{"A"}, []rule.Direction{rule.In})
	b := rule.MustLiteral("q", []string{"A"}, []rule.Direction{rule.Out})
	r1 := headed(lit("p", "A"), a)
	r2 := headed(lit("p", "A"), b)

	if got := Reduce(rule.Program{r1, r2}); len(got) != 1 {
		t.Fatalf("dedup must ignore mode annotations, got %d rules", len(got))
	}
}

func TestReduceKeepsDistinctRules(t *testing.T) {
	r1 := headed(lit("p", "A"), lit("q", "A"))
	r2 := headed(lit("p", "A"), lit("r", "A"))
	constraint := rule.NewRule(nil, lit("q", "A"))

	if got := Reduce(rule.Program{r1, r2, constraint}); len(got) != 3 {
		t.Fatalf("expected three distinct rules, got %d", len(got))
	}
}

func TestOrderProgramNonRecursiveFirst(t *testing.T) {
	// A recursive 1-literal rule and a non-recursive 2-literal rule: the
	// non-recursive rule comes first even though its body is longer.
	recursive := headed(lit("p", "A"), lit("p", "A"))
	base := headed(lit("p", "A"), lit("q", "A"), lit("r", "A"))

	got := OrderProgram(rule.Program{recursive, base})
	if got[0].IsRecursive() {
		t.Fatalf("expected non-recursive rule first, got %s", got[0])
	}
}

func TestOrderProgramByBodyLength(t *testing.T) {
	long := headed(lit("p", "A"), lit("q", "A"), lit("r", "A"))
	short := headed(lit("p", "A"), lit("q", "A"))

	got := OrderProgram(rule.Program{long, short})
	if len(got[0].Body) != 1 {
		t.Fatalf("expected shorter body first, got %s", got[0])
	}
}

func TestSortBodyForDisplay(t *testing.T) {
	r := headed(lit("p", "A", "B"),
		lit("zz", "A"),
		lit("aa", "B", "A"),
		lit("aa", "A", "B"))

	got := SortBodyForDisplay(r)
	want := "p(A,B):- zz(A),aa(A,B),aa(B,A)."
	if got.String() != want {
		t.Fatalf("unexpected display order:\nwant: %s\ngot:  %s", want, got)
	}
	// Original rule untouched.
	if r.Body[0].Predicate != "zz" {
		t.Fatalf("input rule was mutated")
	}
}

func TestRuleSubsumption(t *testing.T) {
	general := headed(lit("p", "A"), lit("q", "A"))
	specific := headed(lit("p", "A"), lit("q", "A"), lit("r", "A"))

	if !RuleSubsumes(general, specific) {
		t.Fatalf("subset body must subsume superset body")
	}
	if RuleSubsumes(specific, general) {
		t.Fatalf("superset body must not subsume subset body")
	}

	// A headed rule never subsumes a headless one; headless subsumes
	// either.
	constraint := rule.NewRule(nil, lit("q", "A"))
	if RuleSubsumes(general, constraint) {
		t.Fatalf("headed rule must not subsume a constraint")
	}
	if !RuleSubsumes(constraint, general) {
		t.Fatalf("constraint with subset body should subsume headed rule")
	}
}

func TestRenamedVariablesNotRecognized(t *testing.T) {
	// Documented limitation: no variable-renaming normalization.
	r1 := headed(lit("p", "A"), lit("q", "A"))
	r2 := headed(lit("p", "B"), lit("q", "B"))
	if RuleSubsumes(r1, r2) {
		t.Fatalf("renamed variables must not be recognized as equivalent")
	}
}

func TestProgramSubsumption(t *testing.T) {
	p1 := rule.Program{headed(lit("p", "A"), lit("q", "A"))}
	p2 := rule.Program{headed(lit("p", "A"), lit("q", "A"), lit("r", "A"))}

	if !ProgramSubsumes(p1, p2) {
		t.Fatalf("p1 should subsume the specialization p2")
	}
	if ProgramSubsumes(p2, p1) {
		t.Fatalf("p2 must not subsume the more general p1")
	}
}

func TestFormatProgram(t *testing.T) {
	recursive := headed(lit("p", "A"), lit("p", "A"))
	base := headed(lit("p", "A"), lit("q", "A"))
	prog := rule.Program{recursive, base}

	got := FormatProgram(prog, nil)
	want := "p(A):- q(A).\np(A):- p(A)."
	if got != want {
		t.Fatalf("unexpected program rendering:\nwant: %q\ngot:  %q", want, got)
	}
}

func TestFormatProgramSorted(t *testing.T) {
	r := headed(lit("p", "A", "B"), lit("r", "B", "A"), lit("q", "A"))
	got := FormatProgramSorted(rule.Program{r})
	want := "p(A,B):- q(A),r(B,A)."
	if got != want {
		t.Fatalf("unexpected sorted rendering:\nwant: %q\ngot:  %q", want, got)
	}
}

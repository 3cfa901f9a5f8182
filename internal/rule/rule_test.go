package rule

import "testing"

func lit(pred string, args []string, modes []Direction) Literal {
	return MustLiteral(pred, args, modes)
}

func TestNewLiteralModeMismatch(t *testing.T) {
	_, err := NewLiteral("p", []string{"A", "B"}, []Direction{In})
	if err == nil {
		t.Fatalf("expected error for mismatched mode vector")
	}
}

func TestInputsOutputs(t *testing.T) {
	l := lit("p", []string{"A", "B", "C"}, []Direction{In, Out, In})
	if got := l.Inputs(); len(got) != 2 || got[0] != "A" || got[1] != "C" {
		t.Fatalf("unexpected inputs: %v", got)
	}
	if got := l.Outputs(); len(got) != 1 || got[0] != "B" {
		t.Fatalf("unexpected outputs: %v", got)
	}
}

func TestDuplicateArgumentsCollapse(t *testing.T) {
	// Inputs and outputs are sets: a repeated variable counts once.
	l := lit("p", []string{"A", "A"}, []Direction{Out, Out})
	if got := l.Outputs(); len(got) != 1 {
		t.Fatalf("expected one distinct output, got %v", got)
	}
	if l.IsGenerator() {
		t.Fatalf("literal with a repeated output variable is not a generator")
	}
}

func TestIsGenerator(t *testing.T) {
	gen := lit("succ", []string{"A", "B"}, []Direction{Out, Out})
	if !gen.IsGenerator() {
		t.Fatalf("all-output literal should be a generator")
	}
	mixed := lit("succ", []string{"A", "B"}, []Direction{In, Out})
	if mixed.IsGenerator() {
		t.Fatalf("literal with an input position is not a generator")
	}
}

func TestRuleIsRecursive(t *testing.T) {
	head := lit("f", []string{"A", "B"}, []Direction{In, Out})
	recursive := NewRule(&head,
		lit("succ", []string{"A", "C"}, []Direction{In, Out}),
		lit("f", []string{"C", "B"}, []Direction{In, Out}))
	if !recursive.IsRecursive() {
		t.Fatalf("expected rule with head predicate in body to be recursive")
	}

	base := NewRule(&head, lit("succ", []string{"A", "B"}, []Direction{In, Out}))
	if base.IsRecursive() {
		t.Fatalf("expected base case to be non-recursive")
	}

	constraint := NewRule(nil, lit("f", []string{"A", "B"}, []Direction{In, Out}))
	if constraint.IsRecursive() {
		t.Fatalf("headless rules are never recursive")
	}
}

func TestRuleIsInvented(t *testing.T) {
	inv := lit("inv1", []string{"A"}, []Direction{In})
	if !NewRule(&inv).IsInvented() {
		t.Fatalf("expected inv-prefixed head to mark an invented rule")
	}
	plain := lit("involved_pred_is_not_checked_here", []string{"A"}, []Direction{In})
	if !NewRule(&plain).IsInvented() {
		// The prefix check is deliberately naive, matching the naming
		// convention for invented predicates.
		t.Fatalf("prefix check should match any inv-prefixed predicate")
	}
}

func TestSizes(t *testing.T) {
	head := lit("f", []string{"A"}, []Direction{In})
	r1 := NewRule(&head, lit("q", []string{"A"}, []Direction{In}))
	r2 := NewRule(&head,
		lit("q", []string{"A"}, []Direction{In}),
		lit("r", []string{"A"}, []Direction{In}))
	if r1.Size() != 2 || r2.Size() != 3 {
		t.Fatalf("unexpected rule sizes: %d, %d", r1.Size(), r2.Size())
	}
	if got := (Program{r1, r2}).Size(); got != 5 {
		t.Fatalf("unexpected program size: %d", got)
	}
}

func TestProgramRecursionAndInvention(t *testing.T) {
	head := lit("f", []string{"A"}, []Direction{In})
	rec := NewRule(&head, lit("f", []string{"A"}, []Direction{In}))
	base := NewRule(&head, lit("q", []string{"A"}, []Direction{In}))

	if (Program{rec}).IsRecursive() {
		t.Fatalf("single-rule programs report non-recursive")
	}
	if !(Program{base, rec}).IsRecursive() {
		t.Fatalf("expected multi-rule program with recursive member to be recursive")
	}

	invHead := lit("inv1", []string{"A"}, []Direction{In})
	inv := NewRule(&invHead, lit("q", []string{"A"}, []Direction{In}))
	if (Program{inv}).HasInvention() {
		t.Fatalf("single-rule programs report no invention")
	}
	if !(Program{base, inv}).HasInvention() {
		t.Fatalf("expected invention to be detected in multi-rule program")
	}
}

func TestScore(t *testing.T) {
	s := Score{TP: 8, FN: 2, TN: 5, FP: 2, Size: 4}
	if s.MDL() != 8 {
		t.Fatalf("unexpected MDL: %d", s.MDL())
	}
	if s.Precision() != "0.80" {
		t.Fatalf("unexpected precision: %s", s.Precision())
	}
	if s.Recall() != "0.80" {
		t.Fatalf("unexpected recall: %s", s.Recall())
	}
	empty := Score{}
	if empty.Precision() != "n/a" || empty.Recall() != "n/a" {
		t.Fatalf("expected n/a precision/recall for empty score")
	}
	want := "Precision:0.80 Recall:0.80 TP:8 FN:2 TN:5 FP:2 Size:4 MDL:8"
	if got := s.Summary(true); got != want {
		t.Fatalf("unexpected noisy summary:\nwant: %s\ngot:  %s", want, got)
	}
}

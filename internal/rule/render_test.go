package rule

import (
	"testing"

	"github.com/sebdah/goldie/v2"
)

func TestLiteralString(t *testing.T) {
	l := lit("succ", []string{"A", "B"}, []Direction{In, Out})
	if got := l.String(); got != "succ(A,B)" {
		t.Fatalf("unexpected literal rendering: %s", got)
	}
}

func TestRuleString(t *testing.T) {
	head := lit("f", []string{"A", "B"}, []Direction{In, Out})
	r := NewRule(&head,
		lit("succ", []string{"A", "C"}, []Direction{In, Out}),
		lit("succ", []string{"C", "B"}, []Direction{In, Out}))
	if got := r.String(); got != "f(A,B):- succ(A,C),succ(C,B)." {
		t.Fatalf("unexpected rule rendering: %s", got)
	}

	constraint := NewRule(nil, lit("f", []string{"A", "A"}, []Direction{In, In}))
	if got := constraint.String(); got != ":- f(A,A)." {
		t.Fatalf("unexpected constraint rendering: %s", got)
	}
}

func TestProgramRenderingGolden(t *testing.T) {
	head := lit("f", []string{"A", "B"}, []Direction{In, Out})
	base := NewRule(&head, lit("succ", []string{"A", "B"}, []Direction{In, Out}))
	step := NewRule(&head,
		lit("succ", []string{"A", "C"}, []Direction{In, Out}),
		lit("f", []string{"C", "B"}, []Direction{In, Out}))
	constraint := NewRule(nil, lit("f", []string{"A", "A"}, []Direction{In, In}))
	prog := Program{base, step, constraint}

	g := goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
	g.Assert(t, "program", []byte(prog.String()))
}

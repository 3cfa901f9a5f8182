package rule

import (
	"fmt"
	"strings"
)

// String renders the rule in clause syntax: head:- b1,b2. A headless
// constraint renders as :- b1,b2. and a bodiless fact keeps the trailing
// separator so the output round-trips through the same renderer the search
// logs use.
func (r Rule) String() string {
	var head string
	if r.Head != nil {
		head = r.Head.String()
	}
	body := make([]string, len(r.Body))
	for i, lit := range r.Body {
		body[i] = lit.String()
	}
	return fmt.Sprintf("%s:- %s.", head, strings.Join(body, ","))
}

// String renders the program one rule per line, in the program's current
// order. Canonical ordering is the canonicalizer's job, not the renderer's.
func (p Program) String() string {
	lines := make([]string, len(p))
	for i, r := range p {
		lines[i] = r.String()
	}
	return strings.Join(lines, "\n")
}

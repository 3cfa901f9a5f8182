package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lakatos/internal/rule"
)

func TestVarName(t *testing.T) {
	assert.Equal(t, "A", VarName(0))
	assert.Equal(t, "B", VarName(1))
	assert.Equal(t, "F", VarName(5))
}

func TestPermutations(t *testing.T) {
	perms := permutations(3, 2)
	// 3P2 = 6, lexicographic by index tuple.
	require.Len(t, perms, 6)
	assert.Equal(t, []int{0, 1}, perms[0])
	assert.Equal(t, []int{0, 2}, perms[1])
	assert.Equal(t, []int{1, 0}, perms[2])
	assert.Equal(t, []int{2, 1}, perms[5])

	assert.Nil(t, permutations(2, 3), "k > n has no permutations")
	assert.Nil(t, permutations(3, 0))
}

func TestArgPermTable(t *testing.T) {
	cat, err := Build(testFacts(), defaults(), nil) // max_vars 3, max_arity 2
	require.NoError(t, err)

	// Arity 1: 3 tuples; arity 2: 6 tuples.
	assert.Len(t, cat.ArgPerms, 9)
	assert.Equal(t, []string{"A", "C"}, cat.ArgPerms[TupleKey([]int{0, 2})])
	assert.Equal(t, []string{"C", "A"}, cat.ArgPerms[TupleKey([]int{2, 0})])
	assert.Equal(t, []string{"B"}, cat.ArgPerms[TupleKey([]int{1})])
}

func TestTemplateCache(t *testing.T) {
	cat, err := Build(testFacts(), defaults(), nil)
	require.NoError(t, err)

	// succ/2 and f/2 each take the 6 arity-2 tuples; zero/1 the 3 arity-1
	// tuples.
	assert.Len(t, cat.Templates, 15)

	lit, ok := cat.Template("succ", []int{2, 0})
	require.True(t, ok)
	assert.Equal(t, "succ(C,A)", lit.String())
	assert.Equal(t, []rule.Direction{rule.In, rule.Out}, lit.Modes)

	_, ok = cat.Template("succ", []int{0})
	assert.False(t, ok, "tuple arity must match predicate arity")
	_, ok = cat.Template("mystery", []int{0, 1})
	assert.False(t, ok)
}

package arith_test

import (
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zephyrtronium/arith"
)

func TestTrace(t *testing.T) {
	n, err := arith.BuildTree([]arith.Token{
		arith.Num("4"), arith.Num("3"), arith.Op(arith.Mul),
		arith.Num("12"), arith.Num("2"), arith.Num("7"), arith.Op(arith.Pow), arith.Op(arith.Sub),
		arith.Op(arith.Add),
	})
	require.NoError(t, err)
	require.Equal(t, "((4 * 3) + (12 - (2 ^ 7)))", n.String())

	r, steps, err := n.Trace()
	require.NoError(t, err)
	assert.Equal(t, float64(4*3+(12-128)), r)
	want := []arith.Step{
		{Op: arith.Pow, Left: 2, Right: 7, Result: 128, Tree: "((4 * 3) + (12 - 128))"},
		{Op: arith.Mul, Left: 4, Right: 3, Result: 12, Tree: "(12 + (12 - 128))"},
		{Op: arith.Sub, Left: 12, Right: 128, Result: -116, Tree: "(12 + -116)"},
		{Op: arith.Add, Left: 12, Right: -116, Result: -104, Tree: "-104"},
	}
	assert.Equal(t, want, steps)
	// The tree itself is untouched.
	assert.Equal(t, "((4 * 3) + (12 - (2 ^ 7)))", n.String())
}

func TestTraceLeftmost(t *testing.T) {
	n, err := arith.Parse(strings.NewReader("(1+2)*(3+4)"))
	require.NoError(t, err)
	_, steps, err := n.Trace()
	require.NoError(t, err)
	require.Len(t, steps, 3)
	assert.Equal(t, "(3 * (3 + 4))", steps[0].Tree)
	assert.Equal(t, "(3 * 7)", steps[1].Tree)
	assert.Equal(t, "21", steps[2].Tree)
}

func TestTraceLeaf(t *testing.T) {
	r, steps, err := arith.Leaf("2.5").Trace()
	require.NoError(t, err)
	assert.Empty(t, steps)
	assert.Equal(t, 2.5, r)
}

func TestTraceErrors(t *testing.T) {
	n := arith.Binary(arith.Add, arith.Leaf("1"), arith.Leaf("1.2.3"))
	_, steps, err := n.Trace()
	require.ErrorIs(t, err, arith.ErrInvalidNumericLiteral)
	assert.Nil(t, steps)
}

func TestTraceMatchesEval(t *testing.T) {
	srcs := []string{
		"5+3",
		"4*3+2^7",
		"2^3^2",
		"2^(3+4)",
		"4*(5-2)^(3*(5-6))",
		"4+ 26/ (8- 2)^  4",
		"1/0",
		"0/0",
		"(0-8)^(1/3)",
		"0.1+0.2+0.3",
		"1-2-3-4-5-6",
	}
	for _, src := range srcs {
		n, err := arith.Parse(strings.NewReader(src))
		require.NoError(t, err, src)
		want, err := n.Eval()
		require.NoError(t, err, src)
		got, _, err := n.Trace()
		require.NoError(t, err, src)
		if math.IsNaN(want) {
			assert.True(t, math.IsNaN(got), "%q: want NaN, got %g", src, got)
			continue
		}
		assert.Equal(t, want, got, src)
	}
}

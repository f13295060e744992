// Package exprgen generates random arithmetic expressions for tests and
// demonstrations.
package exprgen

import (
	"math/rand"
	"strconv"
	"strings"
)

// DefaultOps are the operators used when a Generator has none set.
const DefaultOps = "+-*/"

// DefaultMax is the default exclusive upper bound of generated numbers.
const DefaultMax = 10

// A Generator generates random expressions. The zero value is not usable;
// create one with New.
type Generator struct {
	// Ops is the set of operator characters to draw from. If empty,
	// DefaultOps is used.
	Ops string

	// Max is the exclusive upper bound of generated numbers. If it is not
	// positive, DefaultMax is used.
	Max float64

	// Group is the probability that a term spanning more than one number is
	// generated as a parenthesized subexpression.
	Group float64

	// MaxDepth limits the nesting of parentheses.
	MaxDepth int

	rng *rand.Rand
}

// New creates a generator whose output is determined by seed.
func New(seed int64) *Generator {
	return &Generator{rng: rand.New(rand.NewSource(seed))}
}

// Generate generates an expression containing exactly terms numbers. Every
// number has two decimal places. Panics if terms < 1.
func (g *Generator) Generate(terms int) string {
	if terms < 1 {
		panic("exprgen: need at least one term, got " + strconv.Itoa(terms))
	}
	var b strings.Builder
	g.expr(&b, terms, 0)
	return b.String()
}

func (g *Generator) expr(b *strings.Builder, terms, depth int) {
	for i := 0; i < terms; {
		if i > 0 {
			b.WriteByte(g.op())
		}
		n := 1
		if left := terms - i; left > 1 && depth < g.MaxDepth && g.rng.Float64() < g.Group {
			n = 1 + g.rng.Intn(left)
		}
		if n == 1 {
			b.WriteString(g.num())
		} else {
			b.WriteByte('(')
			g.expr(b, n, depth+1)
			b.WriteByte(')')
		}
		i += n
	}
}

func (g *Generator) op() byte {
	ops := g.Ops
	if ops == "" {
		ops = DefaultOps
	}
	return ops[g.rng.Intn(len(ops))]
}

func (g *Generator) num() string {
	hi := g.Max
	if hi <= 0 {
		hi = DefaultMax
	}
	return strconv.FormatFloat(g.rng.Float64()*hi, 'f', 2, 64)
}

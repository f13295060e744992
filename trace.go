package arith

import (
	"strconv"
	"strings"
)

// Step is one reduction in a collapse trace.
type Step struct {
	// Op is the operator that was applied.
	Op Operator
	// Left and Right are its operands, and Result is the value that replaced
	// the operator node.
	Left, Right, Result float64
	// Tree is the expression after the reduction, formatted like Node.String.
	Tree string
}

// tnode is a node in a trace arena. Operands are indices into the arena.
type tnode struct {
	op    Operator
	val   float64
	text  string
	left  int
	right int
}

// Trace evaluates the expression one operator at a time, always reducing the
// leftmost operator node among those deepest in the tree. The operands of
// such a node are always both numbers. The steps are returned in order.
// n itself is not modified. The value is the same as Eval's.
func (n *Node) Trace() (float64, []Step, error) {
	var arena tarena
	root, err := arena.add(n)
	if err != nil {
		return 0, nil, err
	}
	var steps []Step
	for arena[root].op != opNone {
		k := arena.deepest(root)
		t := &arena[k]
		l, r := arena[t.left].val, arena[t.right].val
		v := t.op.apply(l, r)
		steps = append(steps, Step{Op: t.op, Left: l, Right: r, Result: v})
		*t = tnode{val: v, text: strconv.FormatFloat(v, 'g', -1, 64)}
		steps[len(steps)-1].Tree = arena.render(root)
	}
	return arena[root].val, steps, nil
}

type tarena []tnode

// add copies n into the arena, parsing leaves as it goes, and returns the
// index of its root.
func (a *tarena) add(n *Node) (int, error) {
	if n.IsLeaf() {
		v, err := parseNum(n.text)
		if err != nil {
			return 0, err
		}
		*a = append(*a, tnode{val: v, text: n.text})
		return len(*a) - 1, nil
	}
	l, err := a.add(n.left)
	if err != nil {
		return 0, err
	}
	r, err := a.add(n.right)
	if err != nil {
		return 0, err
	}
	*a = append(*a, tnode{op: n.op, left: l, right: r})
	return len(*a) - 1, nil
}

// deepest finds the first operator node in the last level of the tree that
// contains any operator nodes. root must be an operator node.
func (a tarena) deepest(root int) int {
	level := []int{root}
	found := root
	for len(level) > 0 {
		var next []int
		for _, k := range level {
			if a[k].op == opNone {
				continue
			}
			if len(next) == 0 {
				found = k
			}
			next = append(next, a[k].left, a[k].right)
		}
		level = next
	}
	return found
}

// render formats the subtree at k.
func (a tarena) render(k int) string {
	var b strings.Builder
	a.fmt(&b, k)
	return b.String()
}

func (a tarena) fmt(b *strings.Builder, k int) {
	t := a[k]
	if t.op == opNone {
		b.WriteString(t.text)
		return
	}
	b.WriteByte('(')
	a.fmt(b, t.left)
	b.WriteByte(' ')
	b.WriteString(t.op.String())
	b.WriteByte(' ')
	a.fmt(b, t.right)
	b.WriteByte(')')
}

package arith

import (
	"strings"
)

// Node is a node in the expression tree. A leaf holds a number literal; any
// other node holds an operator and exactly two operands. Each node is owned by
// its parent, and nothing modifies a tree after it is built.
type Node struct {
	op   Operator
	text string

	left  *Node
	right *Node
}

// Leaf creates a leaf node for a number literal.
func Leaf(text string) *Node {
	return &Node{text: text}
}

// Binary creates a node applying op to left and right. Panics if op is not an
// operator or either operand is nil.
func Binary(op Operator, left, right *Node) *Node {
	if !op.valid() {
		panic("arith: Binary with invalid operator " + op.String())
	}
	if left == nil || right == nil {
		panic("arith: Binary with nil operand")
	}
	return &Node{op: op, left: left, right: right}
}

// IsLeaf reports whether n is a number literal.
func (n *Node) IsLeaf() bool {
	return n.op == opNone
}

// Operator returns the operator of an operator node.
func (n *Node) Operator() Operator {
	return n.op
}

// Text returns the literal text of a leaf.
func (n *Node) Text() string {
	return n.text
}

// Left returns the first operand of an operator node, or nil for a leaf.
func (n *Node) Left() *Node {
	return n.left
}

// Right returns the second operand of an operator node, or nil for a leaf.
func (n *Node) Right() *Node {
	return n.right
}

// BuildTree builds an expression tree from postfix tokens. Operators take the
// two most recent operands, the later one on the right.
func BuildTree(postfix []Token) (*Node, error) {
	var stack []*Node
	for _, tok := range postfix {
		switch tok.Kind {
		case TokenNum:
			stack = append(stack, Leaf(tok.Text))
		case TokenOp:
			if !tok.Op.valid() {
				return nil, &InvariantError{Token: tok, Stage: "tree"}
			}
			if len(stack) < 2 {
				return nil, &ExpressionError{Op: tok.Op, Operands: len(stack)}
			}
			r := stack[len(stack)-1]
			l := stack[len(stack)-2]
			stack = stack[:len(stack)-2]
			stack = append(stack, &Node{op: tok.Op, left: l, right: r})
		default:
			return nil, &InvariantError{Token: tok, Stage: "tree"}
		}
	}
	if len(stack) != 1 {
		return nil, &ExpressionError{Operands: len(stack)}
	}
	return stack[0], nil
}

// Postfix returns the postfix tokens that build n.
func (n *Node) Postfix() []Token {
	var toks []Token
	n.postfix(&toks)
	return toks
}

func (n *Node) postfix(toks *[]Token) {
	if n.IsLeaf() {
		*toks = append(*toks, Num(n.text))
		return
	}
	n.left.postfix(toks)
	n.right.postfix(toks)
	*toks = append(*toks, Op(n.op))
}

// String formats n in fully parenthesized infix form, e.g. "((4 * 3) + 2)".
// The result is a valid expression with the same value as n.
func (n *Node) String() string {
	var b strings.Builder
	n.fmt(&b)
	return b.String()
}

func (n *Node) fmt(b *strings.Builder) {
	if n.IsLeaf() {
		b.WriteString(n.text)
		return
	}
	b.WriteByte('(')
	n.left.fmt(b)
	b.WriteByte(' ')
	b.WriteString(n.op.String())
	b.WriteByte(' ')
	n.right.fmt(b)
	b.WriteByte(')')
}

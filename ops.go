package arith

import (
	"math"
	"strconv"
)

// Operator is a binary arithmetic operator.
type Operator int8

const (
	opNone Operator = iota

	Add // left + right
	Sub // left - right
	Mul // left * right
	Div // left / right
	Pow // left ^ right
)

// Operators contains the runes which are considered to be operators, in the
// order of the Operator constants.
const Operators = "+-*/^"

// Associativity decides how a run of operators with equal precedence groups.
type Associativity int8

const (
	// LeftAssoc groups the leftmost operator first: a-b-c is (a-b)-c.
	LeftAssoc Associativity = iota
	// RightAssoc groups the rightmost operator first: a^b^c is a^(b^c).
	RightAssoc
)

func (a Associativity) String() string {
	if a == RightAssoc {
		return "right"
	}
	return "left"
}

// operator returns the operator spelled by r, or opNone.
func operator(r rune) Operator {
	switch r {
	case '+':
		return Add
	case '-':
		return Sub
	case '*':
		return Mul
	case '/':
		return Div
	case '^':
		return Pow
	}
	return opNone
}

// Precedence returns the binding strength of the operator. Higher binds
// tighter.
func (op Operator) Precedence() int {
	switch op {
	case Add, Sub:
		return 2
	case Mul, Div:
		return 3
	case Pow:
		return 4
	}
	panic("arith: invalid operator " + op.String())
}

// Assoc returns the associativity of the operator.
func (op Operator) Assoc() Associativity {
	if op == Pow {
		return RightAssoc
	}
	return LeftAssoc
}

// valid reports whether op is one of the operator constants.
func (op Operator) valid() bool {
	return Add <= op && op <= Pow
}

func (op Operator) String() string {
	if !op.valid() {
		return "Operator(" + strconv.Itoa(int(op)) + ")"
	}
	return Operators[op-1 : op]
}

// apply computes l op r with float64 semantics. Division by zero and invalid
// powers produce infinities and NaN rather than errors.
func (op Operator) apply(l, r float64) float64 {
	switch op {
	case Add:
		return l + r
	case Sub:
		return l - r
	case Mul:
		return l * r
	case Div:
		return l / r
	case Pow:
		return math.Pow(l, r)
	}
	panic("arith: invalid operator " + op.String())
}

package arith

import (
	"errors"
	"io"
	"strconv"
	"strings"
)

// Parse scans an expression and builds its tree.
func Parse(src io.RuneScanner) (*Node, error) {
	toks, err := Lex(src)
	if err != nil {
		return nil, err
	}
	postfix, err := ToPostfix(toks)
	if err != nil {
		return nil, err
	}
	return BuildTree(postfix)
}

// Eval is a shortcut to parse an expression and return its value.
func Eval(src io.RuneScanner) (float64, error) {
	n, err := Parse(src)
	if err != nil {
		return 0, err
	}
	return n.Eval()
}

// EvalString is a shortcut to parse and evaluate a string expression.
func EvalString(src string) (float64, error) {
	return Eval(strings.NewReader(src))
}

// Eval computes the value of the expression. Division by zero and powers
// outside the real domain are not errors; they produce infinities and NaN as
// float64 arithmetic does. The only error is a *NumberError for a leaf that is
// not a decimal number.
func (n *Node) Eval() (float64, error) {
	if n.IsLeaf() {
		return parseNum(n.text)
	}
	l, err := n.left.Eval()
	if err != nil {
		return 0, err
	}
	r, err := n.right.Eval()
	if err != nil {
		return 0, err
	}
	return n.op.apply(l, r), nil
}

// parseNum parses a number literal. A literal too large for float64 is an
// infinity, not an error.
func parseNum(s string) (float64, error) {
	if !validNum(s) {
		return 0, &NumberError{Text: s}
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return 0, &NumberError{Text: s, Err: err}
	}
	return v, nil
}

// validNum reports whether s is digits, optionally followed by a dot and more
// digits.
func validNum(s string) bool {
	dot := -1
	for i := 0; i < len(s); i++ {
		switch c := s[i]; {
		case '0' <= c && c <= '9':
		case c == '.' && dot < 0:
			dot = i
		default:
			return false
		}
	}
	return len(s) > 0 && dot != 0 && dot != len(s)-1
}

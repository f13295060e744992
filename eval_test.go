package arith_test

import (
	"errors"
	"math"
	"strings"
	"testing"

	"github.com/zephyrtronium/arith"
)

func TestEval(t *testing.T) {
	cases := []struct {
		name string
		src  string
		r    float64
	}{
		{"num", "1", 1},
		{"real", "2.5", 2.5},
		{"add", "5+3", 8},
		{"add3", "4+5+6", 4 + 5 + 6},
		{"sub", "4-5-6", 4 - 5 - 6},
		{"mul", "4*5*6", 4 * 5 * 6},
		{"div", "4/5/6", 4.0 / 5.0 / 6.0},
		{"pow", "4^3^2", 262144},
		{"pow-right", "2^3^2", 512},
		{"precedence", "4*3+2^7", 140},
		{"group", "2^(3+4)", 128},
		{"group-left", "(2^3)^2", 64},
		{"negative-exp", "4*(5-2)^(3*(5-6))", 4 * math.Pow(3, -3)},
		{"sample", "4+ 26/ (8- 2)^  4", 4 + 26/math.Pow(6, 4)},
		{"negative", "0-2.5", -2.5},
		{"fractional-exp", "2^0.5", math.Sqrt2},
		{"nested", "((((7))))", 7},
		{"spaces", " \t1 \n+ 2 ", 3},
		{"inf", "1/0", math.Inf(1)},
		{"neg-inf", "(0-1)/0", math.Inf(-1)},
		{"overflow", "10^400", math.Inf(1)},
		{"long-literal", strings.Repeat("9", 400), math.Inf(1)},
		{"zero-pow", "0^0", 1},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			r, err := arith.EvalString(c.src)
			if err != nil {
				t.Fatalf("%q failed to evaluate: %v", c.src, err)
			}
			if r != c.r {
				t.Errorf("wrong result: want %g, got %g", c.r, r)
			}
		})
	}
}

func TestEvalNaN(t *testing.T) {
	cases := []struct {
		name string
		src  string
	}{
		{"zero-div", "0/0"},
		{"neg-base", "(0-8)^(1/3)"},
		{"inf-sub", "1/0-1/0"},
		{"inf-mul", "0*(1/0)"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			r, err := arith.EvalString(c.src)
			if err != nil {
				t.Fatalf("%q failed to evaluate: %v", c.src, err)
			}
			if !math.IsNaN(r) {
				t.Errorf("want NaN, got %g", r)
			}
		})
	}
}

func TestEvalErrors(t *testing.T) {
	cases := []struct {
		name  string
		src   string
		kind  error
		input bool
	}{
		{"char", "1+x", arith.ErrUnrecognizedCharacter, true},
		{"exp-notation", "1e5", arith.ErrUnrecognizedCharacter, true},
		{"open", "(1+2", arith.ErrUnbalancedParentheses, true},
		{"close", "1+2)", arith.ErrUnbalancedParentheses, true},
		{"dangling", "1+", arith.ErrMalformedExpression, true},
		{"leading", "*1", arith.ErrMalformedExpression, true},
		{"unary-minus", "-1", arith.ErrMalformedExpression, true},
		{"double-op", "1+*2", arith.ErrMalformedExpression, true},
		{"implicit-mul", "4(5-2)^(3*(5-6))", arith.ErrMalformedExpression, true},
		{"juxtaposed", "1 2", arith.ErrMalformedExpression, true},
		{"empty", "", arith.ErrMalformedExpression, true},
		{"empty-group", "()", arith.ErrMalformedExpression, true},
		{"dots", "1.2.3", arith.ErrInvalidNumericLiteral, false},
		{"dot", ".", arith.ErrInvalidNumericLiteral, false},
		{"trailing-dot", "1.+1", arith.ErrInvalidNumericLiteral, false},
		{"leading-dot", "2*.5", arith.ErrInvalidNumericLiteral, false},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			r, err := arith.EvalString(c.src)
			if err == nil {
				t.Fatalf("%q: expected error, got %g", c.src, r)
			}
			if !errors.Is(err, c.kind) {
				t.Errorf("%q: want %v, got %v", c.src, c.kind, err)
			}
			if arith.IsInputError(err) != c.input {
				t.Errorf("%q: want input error %t for %v", c.src, c.input, err)
			}
		})
	}
}

func TestEvalFirstError(t *testing.T) {
	// Both literals are bad; the left one is reported.
	_, err := arith.EvalString("1..2 + 3..4")
	var nerr *arith.NumberError
	if !errors.As(err, &nerr) {
		t.Fatalf("wrong error: %v", err)
	}
	if nerr.Text != "1..2" {
		t.Errorf("wrong literal: want %q, got %q", "1..2", nerr.Text)
	}
}

func TestEvalInvariant(t *testing.T) {
	_, err := arith.BuildTree([]arith.Token{arith.Num("1"), arith.Open})
	var ierr *arith.InvariantError
	if !errors.As(err, &ierr) {
		t.Fatalf("wrong error: %v", err)
	}
	if ierr.Token != arith.Open {
		t.Errorf("wrong token: %v", ierr.Token)
	}
	if arith.IsInputError(err) {
		t.Errorf("%v reported as input error", err)
	}
}

func TestEvalHandBuilt(t *testing.T) {
	n := arith.Binary(arith.Div, arith.Leaf("1"), arith.Leaf("4"))
	r, err := n.Eval()
	if err != nil {
		t.Fatal(err)
	}
	if r != 0.25 {
		t.Errorf("want 0.25, got %g", r)
	}
	// Evaluation does not consume the tree.
	if s := n.String(); s != "(1 / 4)" {
		t.Errorf("tree changed after evaluation: %s", s)
	}
	if q, _ := n.Eval(); q != r {
		t.Errorf("second evaluation differs: %g then %g", r, q)
	}
}

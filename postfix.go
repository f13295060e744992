package arith

// ToPostfix reorders infix tokens into postfix order using operator
// precedence and associativity. Parentheses do not appear in the result.
//
// ToPostfix only checks that parentheses balance. Whether operators have
// enough operands is left to BuildTree.
func ToPostfix(toks []Token) ([]Token, error) {
	out := make([]Token, 0, len(toks))
	// stack holds operators and open parentheses.
	var stack []Token
	for _, tok := range toks {
		switch tok.Kind {
		case TokenNum:
			out = append(out, tok)
		case TokenOpen:
			stack = append(stack, tok)
		case TokenClose:
			for {
				if len(stack) == 0 {
					return nil, &BracketError{Close: true}
				}
				top := stack[len(stack)-1]
				stack = stack[:len(stack)-1]
				if top.Kind == TokenOpen {
					break
				}
				out = append(out, top)
			}
		case TokenOp:
			if !tok.Op.valid() {
				return nil, &InvariantError{Token: tok, Stage: "postfix"}
			}
			for len(stack) > 0 {
				top := stack[len(stack)-1]
				if top.Kind != TokenOp || !popsBefore(top.Op, tok.Op) {
					break
				}
				out = append(out, top)
				stack = stack[:len(stack)-1]
			}
			stack = append(stack, tok)
		default:
			return nil, &InvariantError{Token: tok, Stage: "postfix"}
		}
	}
	for len(stack) > 0 {
		top := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if top.Kind == TokenOpen {
			return nil, &BracketError{Close: false}
		}
		out = append(out, top)
	}
	return out, nil
}

// popsBefore reports whether top, an operator already on the stack, must be
// output before op is pushed.
func popsBefore(top, op Operator) bool {
	tp, p := top.Precedence(), op.Precedence()
	return tp > p || tp == p && op.Assoc() == LeftAssoc
}

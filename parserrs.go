package arith

import (
	"errors"
	"math/big"
	"strconv"
)

// Error kinds. Every error from this package that concerns an expression
// unwraps to exactly one of these.
var (
	// ErrUnrecognizedCharacter indicates a character outside the grammar.
	ErrUnrecognizedCharacter = errors.New("unrecognized character")
	// ErrUnbalancedParentheses indicates a missing or extra parenthesis.
	ErrUnbalancedParentheses = errors.New("unbalanced parentheses")
	// ErrMalformedExpression indicates operators and operands that do not
	// combine into a single expression, e.g. "1+" or "1 2".
	ErrMalformedExpression = errors.New("malformed expression")
	// ErrInvalidNumericLiteral indicates a number token that is not a decimal
	// number, e.g. "1.2.3".
	ErrInvalidNumericLiteral = errors.New("invalid numeric literal")
	// ErrInvariantViolation indicates a token sequence that no valid earlier
	// stage can produce, e.g. parentheses in postfix input.
	ErrInvariantViolation = errors.New("invariant violation")
)

// IsInputError reports whether err is a syntax error in the input expression,
// as opposed to a bad literal or a defect in the token sequence.
func IsInputError(err error) bool {
	return errors.Is(err, ErrUnrecognizedCharacter) ||
		errors.Is(err, ErrUnbalancedParentheses) ||
		errors.Is(err, ErrMalformedExpression)
}

// CharacterError is an error indicating a character that cannot begin any
// token. It unwraps to ErrUnrecognizedCharacter.
type CharacterError struct {
	// Col is the number of runes scanned up to and including Char.
	Col int
	// Char is the unrecognized character.
	Char rune
}

func (err *CharacterError) Error() string {
	return errpos(err.Col, "unrecognized character "+strconv.QuoteRune(err.Char))
}

func (err *CharacterError) Pos() int {
	return err.Col
}

func (err *CharacterError) Unwrap() error {
	return ErrUnrecognizedCharacter
}

// BracketError is an error indicating mismatched parentheses. It unwraps to
// ErrUnbalancedParentheses.
type BracketError struct {
	// Close is true if a close parenthesis had no open parenthesis, or false
	// if an open parenthesis was never closed.
	Close bool
}

func (err *BracketError) Error() string {
	if err.Close {
		return "close parenthesis with no open parenthesis"
	}
	return "open parenthesis with no close parenthesis"
}

func (err *BracketError) Unwrap() error {
	return ErrUnbalancedParentheses
}

// ExpressionError is an error indicating a postfix sequence that does not
// reduce to exactly one expression. It unwraps to ErrMalformedExpression.
type ExpressionError struct {
	// Op is the operator that lacked operands, if any.
	Op Operator
	// Operands is the number of operands available when the error was found:
	// those available to Op, or those left at the end with no operator
	// joining them.
	Operands int
}

func (err *ExpressionError) Error() string {
	if err.Op != opNone {
		return "operator " + err.Op.String() + " needs 2 operands, have " + strconv.Itoa(err.Operands)
	}
	if err.Operands == 0 {
		return "no expression"
	}
	return strconv.Itoa(err.Operands) + " operands with no operator between them"
}

func (err *ExpressionError) Unwrap() error {
	return ErrMalformedExpression
}

// NumberError is an error indicating a number literal that is not a decimal
// number. It unwraps to ErrInvalidNumericLiteral and to the parse error, if
// there is one.
type NumberError struct {
	// Text is the literal.
	Text string
	// Err is the error from parsing Text, or nil if Text was rejected before
	// parsing.
	Err error
}

func (err *NumberError) Error() string {
	return "invalid number " + strconv.Quote(err.Text)
}

func (err *NumberError) Unwrap() []error {
	if err.Err == nil {
		return []error{ErrInvalidNumericLiteral}
	}
	return []error{ErrInvalidNumericLiteral, err.Err}
}

// InvariantError is an error indicating a token that cannot appear where it
// was found. It unwraps to ErrInvariantViolation.
type InvariantError struct {
	// Token is the misplaced token.
	Token Token
	// Stage is the pipeline stage that found it.
	Stage string
}

func (err *InvariantError) Error() string {
	return err.Stage + ": unexpected token " + strconv.Quote(err.Token.String())
}

func (err *InvariantError) Unwrap() error {
	return ErrInvariantViolation
}

// DomainError is an error from arbitrary precision evaluation of an operation
// whose result is undefined, such as 0/0. DomainError unwraps to big.ErrNaN.
type DomainError struct {
	// Op is the operator.
	Op Operator
	// X and Y are the operands.
	X, Y *big.Float
}

func (err *DomainError) Error() string {
	return err.X.String() + " " + err.Op.String() + " " + err.Y.String() + " is undefined"
}

func (err *DomainError) Unwrap() error {
	return big.ErrNaN{}
}

// errpos is a shortcut to create an error message with a position.
func errpos(pos int, msg string) string {
	return strconv.Itoa(pos) + ": " + msg
}

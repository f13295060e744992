package arith

import (
	"errors"
	"io"
	"strings"
	"unicode"
)

// Token is a lexical token of an expression.
type Token struct {
	// Kind is the kind of the token.
	Kind TokenKind
	// Op is the operator of a TokenOp token.
	Op Operator
	// Text is the literal text of a TokenNum token. It is parsed only when
	// the expression is evaluated.
	Text string
}

// TokenKind identifies the variant of a token.
type TokenKind int8

const (
	tokenNone TokenKind = iota
	// TokenNum is a number literal.
	TokenNum
	// TokenOp is a binary operator.
	TokenOp
	// TokenOpen is an open parenthesis.
	TokenOpen
	// TokenClose is a close parenthesis.
	TokenClose
)

func (k TokenKind) String() string {
	switch k {
	case TokenNum:
		return "Num"
	case TokenOp:
		return "Op"
	case TokenOpen:
		return "Open"
	case TokenClose:
		return "Close"
	}
	return "None"
}

// Open and Close are the parenthesis tokens.
var (
	Open  = Token{Kind: TokenOpen}
	Close = Token{Kind: TokenClose}
)

// Num creates a number token with the given literal text.
func Num(text string) Token {
	return Token{Kind: TokenNum, Text: text}
}

// Op creates an operator token.
func Op(op Operator) Token {
	return Token{Kind: TokenOp, Op: op}
}

func (t Token) String() string {
	switch t.Kind {
	case TokenNum:
		return t.Text
	case TokenOp:
		return t.Op.String()
	case TokenOpen:
		return "("
	case TokenClose:
		return ")"
	}
	return "<none>"
}

// Format joins the text of tokens with single spaces, e.g. "5 3 +".
func Format(toks []Token) string {
	var b strings.Builder
	for i, tok := range toks {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(tok.String())
	}
	return b.String()
}

type lexer struct {
	src  io.RuneScanner
	buf  strings.Builder
	rune int
}

// readRune reads a rune from the src and updates the lexer's position info.
func (l *lexer) readRune() (r rune, err error) {
	r, sz, err := l.src.ReadRune()
	if sz > 0 {
		l.rune++
	}
	return r, err
}

// unreadRune unreads a rune from the src and updates the lexer's position
// info. Panics if unreading returns an error.
func (l *lexer) unreadRune() {
	if err := l.src.UnreadRune(); err != nil {
		panic(err)
	}
	l.rune--
}

// next scans the next token from the input. At the end of the input, the
// result is io.EOF.
func (l *lexer) next() (Token, error) {
	for {
		r, err := l.readRune()
		if err != nil {
			return Token{}, err
		}
		switch {
		case unicode.IsSpace(r):
			continue
		case isNumRune(r):
			l.unreadRune()
			if err := l.scanNum(); err != nil {
				return Token{}, err
			}
			return Num(l.buf.String()), nil
		case r == '(':
			return Open, nil
		case r == ')':
			return Close, nil
		default:
			if op := operator(r); op != opNone {
				return Op(op), nil
			}
			return Token{}, &CharacterError{Col: l.rune, Char: r}
		}
	}
}

// scanNum scans a maximal run of digits and dots into buf. Whether the run is
// a well-formed number is decided at evaluation.
func (l *lexer) scanNum() error {
	l.buf.Reset()
	for {
		r, err := l.readRune()
		if err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			return err
		}
		if !isNumRune(r) {
			l.unreadRune()
			return nil
		}
		l.buf.WriteRune(r)
	}
}

func isNumRune(r rune) bool {
	return '0' <= r && r <= '9' || r == '.'
}

// Lex scans all tokens from src. Whitespace separates tokens but is otherwise
// ignored. The error, if any, is from src or a *CharacterError.
func Lex(src io.RuneScanner) ([]Token, error) {
	l := lexer{src: src}
	var toks []Token
	for {
		tok, err := l.next()
		if err != nil {
			if errors.Is(err, io.EOF) {
				return toks, nil
			}
			return nil, err
		}
		toks = append(toks, tok)
	}
}

// Tokenize is a shortcut to scan the tokens of a string.
func Tokenize(s string) ([]Token, error) {
	return Lex(strings.NewReader(s))
}

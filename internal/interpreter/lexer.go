package interpreter

import (
	"fmt"
	"strings"
)

// LexError reports a character the lexer could not classify. Tokenizing
// stops at the first such character.
type LexError struct {
	Pos  int
	Char byte
}

func (e *LexError) Error() string {
	return fmt.Sprintf("unknown token %q at position %d", e.Char, e.Pos)
}

// Lexer scans a rio source string left to right, producing tokens with no
// backtracking.
type Lexer struct {
	input string
	pos   int
}

func NewLexer(input string) *Lexer {
	return &Lexer{input: input}
}

// Tokenize converts the whole source into an ordered token sequence. It
// fails on the first unclassifiable character.
func (l *Lexer) Tokenize() ([]Token, error) {
	var tokens []Token
	for l.pos < len(l.input) {
		tok := l.next()
		if tok.Type == TOKEN_UNKNOWN {
			// next advanced exactly one byte past the bad character
			return nil, &LexError{Pos: l.pos - 1, Char: l.input[l.pos-1]}
		}
		tokens = append(tokens, tok)
	}
	return tokens, nil
}

// Tokenize is a convenience wrapper over a one-shot Lexer.
func Tokenize(source string) ([]Token, error) {
	return NewLexer(source).Tokenize()
}

// next returns the next token. Fixed literal matches are attempted in a
// fixed priority order; the order is significant ("in" is checked before
// "<<" and before the identifier rule, so "int" always lexes as IN followed
// by an identifier "t").
func (l *Lexer) next() Token {
	l.skipWhitespace()

	if l.pos >= len(l.input) {
		// End of input reads like an explicit statement terminator.
		return Token{Type: TOKEN_END_STATEMENT}
	}

	rest := l.input[l.pos:]

	if strings.HasPrefix(rest, "out") {
		l.pos += 3
		return Token{Type: TOKEN_OUT, Value: "out"}
	}
	if strings.HasPrefix(rest, ">>") {
		l.pos += 2
		return Token{Type: TOKEN_GREATER_THAN, Value: ">>"}
	}
	if strings.HasPrefix(rest, "in") {
		l.pos += 2
		return Token{Type: TOKEN_IN, Value: "in"}
	}
	if strings.HasPrefix(rest, "<<") {
		l.pos += 2
		return Token{Type: TOKEN_LESS_THAN, Value: "<<"}
	}
	if strings.HasPrefix(rest, "stop") {
		l.pos += 4
		return Token{Type: TOKEN_STOP, Value: "stop"}
	}
	if strings.HasPrefix(rest, "int") {
		l.pos += 3
		return Token{Type: TOKEN_INT_KEYWORD, Value: "int"}
	}

	if l.input[l.pos] == '"' {
		l.pos++
		start := l.pos
		for l.pos < len(l.input) && l.input[l.pos] != '"' {
			l.pos++
		}
		value := l.input[start:l.pos]
		l.pos++
		return Token{Type: TOKEN_STRING_LITERAL, Value: value}
	}

	if isAlpha(l.input[l.pos]) {
		start := l.pos
		for l.pos < len(l.input) && isAlnum(l.input[l.pos]) {
			l.pos++
		}
		return Token{Type: TOKEN_VAR_NAME, Value: l.input[start:l.pos]}
	}

	if l.input[l.pos] == ';' {
		l.pos++
		return Token{Type: TOKEN_END_STATEMENT, Value: ";"}
	}

	l.pos++
	return Token{Type: TOKEN_UNKNOWN}
}

func (l *Lexer) skipWhitespace() {
	for l.pos < len(l.input) && isSpace(l.input[l.pos]) {
		l.pos++
	}
}

func isSpace(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\r', '\v', '\f':
		return true
	}
	return false
}

func isAlpha(c byte) bool {
	return c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z'
}

func isAlnum(c byte) bool {
	return isAlpha(c) || c >= '0' && c <= '9'
}

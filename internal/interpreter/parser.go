package interpreter

import (
	"errors"
	"fmt"
	"io"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
)

// ParseError reports an "in" token that was not followed by "<< name".
// Pos is the index of the token where the match broke down.
type ParseError struct {
	Pos int
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("malformed input statement at token %d: expected << and a variable name after in", e.Pos)
}

// Program is the parsed statement sequence. It is never mutated after
// parsing.
type Program struct {
	Statements []*Statement
}

// script is the grammar root: statements interleaved with stray tokens,
// which are matched and discarded.
type script struct {
	Items []*scriptItem `parser:"@@*"`
}

type scriptItem struct {
	Stmt *Statement `parser:"@@"`
	Skip string     `parser:"| @(GreaterThan | LessThan | String | Ident | Stop | EndStatement | IntKeyword)"`
}

// Statement is a closed variant type: exactly one of the fields is set.
type Statement struct {
	Out *OutStatement `parser:"@@"`
	In  *InStatement  `parser:"| @@"`
}

// OutStatement prints its targets in order. A target names either a
// variable to resolve or a literal string to print verbatim. >> is a
// separator, never stored or counted; a trailing stop is discarded.
type OutStatement struct {
	Targets []string `parser:"Out ( GreaterThan | @String | @Ident )* Stop?"`
}

// InStatement reads one line of input into the named variable.
type InStatement struct {
	VarName string `parser:"In LessThan @Ident"`
}

var parser = participle.MustBuild[script](participle.Lexer(tokenDefinition{}))

// Parse builds the program from an already-tokenized sequence. Tokens that
// do not begin a statement, including stray punctuation and statement
// terminators, are skipped.
func Parse(tokens []Token) (*Program, error) {
	plex, err := lexer.Upgrade(&tokenLexer{tokens: tokens})
	if err != nil {
		return nil, err
	}
	parsed, err := parser.ParseFromLexer(plex)
	if err != nil {
		// the grammar accepts any token stream except a broken "in" tail
		var perr participle.Error
		if errors.As(err, &perr) {
			return nil, &ParseError{Pos: perr.Position().Offset}
		}
		return nil, &ParseError{}
	}

	prog := &Program{}
	for _, item := range parsed.Items {
		if item.Stmt != nil {
			prog.Statements = append(prog.Statements, item.Stmt)
		}
	}
	return prog, nil
}

// tokenDefinition adapts the rio token kinds to participle's lexer
// interface.
type tokenDefinition struct{}

// participle reserves EOF at -1; the rio kinds count down from there.
func symbolType(t TokenType) lexer.TokenType {
	return lexer.TokenType(-int(t) - 2)
}

func (tokenDefinition) Symbols() map[string]lexer.TokenType {
	return map[string]lexer.TokenType{
		"EOF":          lexer.EOF,
		"Out":          symbolType(TOKEN_OUT),
		"In":           symbolType(TOKEN_IN),
		"GreaterThan":  symbolType(TOKEN_GREATER_THAN),
		"LessThan":     symbolType(TOKEN_LESS_THAN),
		"String":       symbolType(TOKEN_STRING_LITERAL),
		"Ident":        symbolType(TOKEN_VAR_NAME),
		"Stop":         symbolType(TOKEN_STOP),
		"EndStatement": symbolType(TOKEN_END_STATEMENT),
		"IntKeyword":   symbolType(TOKEN_INT_KEYWORD),
	}
}

func (tokenDefinition) Lex(filename string, r io.Reader) (lexer.Lexer, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	tokens, err := Tokenize(string(data))
	if err != nil {
		return nil, err
	}
	return &tokenLexer{tokens: tokens}, nil
}

// tokenLexer replays a tokenized sequence. Pos.Offset carries the token
// index so parse errors can point back into the stream.
type tokenLexer struct {
	tokens []Token
	pos    int
}

func (l *tokenLexer) Next() (lexer.Token, error) {
	if l.pos >= len(l.tokens) {
		return lexer.Token{Type: lexer.EOF, Pos: lexer.Position{Offset: l.pos, Line: 1}}, nil
	}
	tok := l.tokens[l.pos]
	out := lexer.Token{
		Type:  symbolType(tok.Type),
		Value: tok.Value,
		Pos:   lexer.Position{Offset: l.pos, Line: 1},
	}
	l.pos++
	return out, nil
}

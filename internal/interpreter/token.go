package interpreter

import "fmt"

// TokenType classifies a lexical unit of a rio script.
type TokenType int

const (
	TOKEN_OUT TokenType = iota
	TOKEN_IN
	TOKEN_GREATER_THAN
	TOKEN_LESS_THAN
	TOKEN_STRING_LITERAL
	TOKEN_VAR_NAME
	TOKEN_STOP
	TOKEN_END_STATEMENT
	TOKEN_INT_KEYWORD
	TOKEN_UNKNOWN
)

var tokenNames = map[TokenType]string{
	TOKEN_OUT:            "OUT",
	TOKEN_IN:             "IN",
	TOKEN_GREATER_THAN:   "GREATER_THAN",
	TOKEN_LESS_THAN:      "LESS_THAN",
	TOKEN_STRING_LITERAL: "STRING_LITERAL",
	TOKEN_VAR_NAME:       "VAR_NAME",
	TOKEN_STOP:           "STOP",
	TOKEN_END_STATEMENT:  "END_STATEMENT",
	TOKEN_INT_KEYWORD:    "INT_KEYWORD",
	TOKEN_UNKNOWN:        "UNKNOWN",
}

func (t TokenType) String() string {
	if name, ok := tokenNames[t]; ok {
		return name
	}
	return fmt.Sprintf("TokenType(%d)", int(t))
}

// Token is one classified unit of source text. Value is empty for pure
// punctuation kinds.
type Token struct {
	Type  TokenType
	Value string
}

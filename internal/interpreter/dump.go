package interpreter

import (
	"fmt"
	"io"
)

// DumpTokens writes the token stream one token per line, kind first and the
// payload quoted when present. Used by the -tokens debugging flag.
func DumpTokens(w io.Writer, tokens []Token) {
	for _, tok := range tokens {
		if tok.Value == "" {
			fmt.Fprintf(w, "%s\n", tok.Type)
			continue
		}
		fmt.Fprintf(w, "%s %q\n", tok.Type, tok.Value)
	}
}

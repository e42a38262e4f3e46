package interpreter

import (
	"fmt"
	"strconv"
)

// Exec runs the program's statements strictly in order against the
// context's environment. Execution cannot fail: unresolved output targets
// print verbatim and bad input falls back to "0".
func (p *Program) Exec(ctx *Context) {
	for _, stmt := range p.Statements {
		stmt.Exec(ctx)
	}
}

func (s *Statement) Exec(ctx *Context) {
	switch {
	case s.Out != nil:
		for _, target := range s.Out.Targets {
			if val, ok := ctx.Env.Get(target); ok {
				fmt.Fprintln(ctx.out, val)
			} else {
				fmt.Fprintln(ctx.out, target)
			}
		}
	case s.In != nil:
		line := ctx.readLine()
		n, ok := parseIntPrefix(line)
		if !ok {
			fmt.Fprintln(ctx.err, "Invalid input. Please enter an integer.")
			ctx.Env.Set(s.In.VarName, "0")
			return
		}
		ctx.Env.Set(s.In.VarName, strconv.Itoa(n))
	}
}

// parseIntPrefix reads an integer the way a console read does: skip
// leading whitespace, take an optional sign and the digit run, and ignore
// whatever follows ("7abc" reads as 7). At least one digit is required.
func parseIntPrefix(s string) (int, bool) {
	i := 0
	for i < len(s) && isSpace(s[i]) {
		i++
	}
	start := i
	if i < len(s) && (s[i] == '+' || s[i] == '-') {
		i++
	}
	digits := i
	for i < len(s) && s[i] >= '0' && s[i] <= '9' {
		i++
	}
	if i == digits {
		return 0, false
	}
	n, err := strconv.Atoi(s[start:i])
	if err != nil {
		// digit run too large to represent
		return 0, false
	}
	return n, true
}

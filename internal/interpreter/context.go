package interpreter

import (
	"bufio"
	"io"
)

// Context bundles the environment and the I/O endpoints for one program
// execution.
type Context struct {
	Env *Environment

	in  *bufio.Reader
	out io.Writer
	err io.Writer
}

// NewContext builds the execution context for one run with a fresh
// environment.
func NewContext(in io.Reader, out, errw io.Writer) *Context {
	return &Context{
		Env: NewEnvironment(),
		in:  bufio.NewReader(in),
		out: out,
		err: errw,
	}
}

// readLine reads one full input line, without the terminator. End of
// stream reads as an empty line.
func (c *Context) readLine() string {
	line, err := c.in.ReadString('\n')
	if err != nil && line == "" {
		return ""
	}
	for len(line) > 0 && (line[len(line)-1] == '\n' || line[len(line)-1] == '\r') {
		line = line[:len(line)-1]
	}
	return line
}

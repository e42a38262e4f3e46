package interpreter

import "fmt"

// Environment maps variable names to their current values for a single
// run. Every stored value is the canonical decimal form of an integer;
// a failed read stores "0". It is created fresh per run and discarded
// afterwards.
type Environment struct {
	vars map[string]string
}

func NewEnvironment() *Environment {
	return &Environment{vars: make(map[string]string)}
}

func (e *Environment) Get(name string) (string, bool) {
	v, ok := e.vars[name]
	return v, ok
}

func (e *Environment) Set(name, val string) {
	e.vars[name] = val
}

func (e *Environment) String() string {
	return fmt.Sprint(e.vars)
}

package main

import (
	"flag"
	"log"
	"os"

	"rio/internal/interpreter"
)

// demoProgram runs when no script file is given: prompt for a number and
// echo it back.
const demoProgram = `out >> "enter a number:"; in << a; out >> a;`

func main() {
	tokensOnly := flag.Bool("tokens", false, "print the token stream and exit")
	flag.Parse()

	source := demoProgram
	if flag.NArg() > 0 {
		data, err := os.ReadFile(flag.Arg(0))
		if err != nil {
			log.Fatal(err)
		}
		source = string(data)
	}

	tokens, err := interpreter.Tokenize(source)
	if err != nil {
		log.Fatal(err)
	}

	if *tokensOnly {
		interpreter.DumpTokens(os.Stdout, tokens)
		return
	}

	prog, err := interpreter.Parse(tokens)
	if err != nil {
		log.Fatal(err)
	}

	ctx := interpreter.NewContext(os.Stdin, os.Stdout, os.Stderr)
	prog.Exec(ctx)
}

package interpreter

import (
	"errors"
	"testing"
)

func mustParse(t *testing.T, source string) *Program {
	t.Helper()
	tokens, err := Tokenize(source)
	if err != nil {
		t.Fatalf("Tokenize failed for %q: %v", source, err)
	}
	prog, err := Parse(tokens)
	if err != nil {
		t.Fatalf("Parse failed for %q: %v", source, err)
	}
	return prog
}

func TestParse_OutStatement(t *testing.T) {
	prog := mustParse(t, `out >> "hello" >> name;`)

	if len(prog.Statements) != 1 {
		t.Fatalf("statement count wrong. expected=1, got=%d", len(prog.Statements))
	}
	out := prog.Statements[0].Out
	if out == nil {
		t.Fatal("expected an out statement")
	}
	want := []string{"hello", "name"}
	if len(out.Targets) != len(want) {
		t.Fatalf("target count wrong. expected=%d, got=%d", len(want), len(out.Targets))
	}
	for i, target := range want {
		if out.Targets[i] != target {
			t.Fatalf("targets[%d] wrong. expected=%q, got=%q", i, target, out.Targets[i])
		}
	}
}

func TestParse_OutStatementEmptyTargets(t *testing.T) {
	prog := mustParse(t, `out;`)

	if len(prog.Statements) != 1 {
		t.Fatalf("statement count wrong. expected=1, got=%d", len(prog.Statements))
	}
	out := prog.Statements[0].Out
	if out == nil {
		t.Fatal("expected an out statement")
	}
	if len(out.Targets) != 0 {
		t.Fatalf("expected no targets, got %v", out.Targets)
	}
}

// Consecutive separators collapse: they are skipped, never counted.
func TestParse_OutStatementRepeatedSeparators(t *testing.T) {
	single := mustParse(t, `out >> "x";`)
	double := mustParse(t, `out >> >> "x";`)

	st, dt := single.Statements[0].Out.Targets, double.Statements[0].Out.Targets
	if len(st) != 1 || len(dt) != 1 || st[0] != dt[0] {
		t.Fatalf("expected identical targets, got %v vs %v", st, dt)
	}
}

func TestParse_OutStatementStopTerminator(t *testing.T) {
	prog := mustParse(t, `out >> "x" stop;`)

	if len(prog.Statements) != 1 {
		t.Fatalf("statement count wrong. expected=1, got=%d", len(prog.Statements))
	}
	targets := prog.Statements[0].Out.Targets
	if len(targets) != 1 || targets[0] != "x" {
		t.Fatalf("stop must be swallowed, not kept as a target: %v", targets)
	}
}

func TestParse_InStatement(t *testing.T) {
	prog := mustParse(t, `in << answer;`)

	if len(prog.Statements) != 1 {
		t.Fatalf("statement count wrong. expected=1, got=%d", len(prog.Statements))
	}
	in := prog.Statements[0].In
	if in == nil {
		t.Fatal("expected an in statement")
	}
	if in.VarName != "answer" {
		t.Fatalf("variable name wrong. expected=%q, got=%q", "answer", in.VarName)
	}
}

func TestParse_MalformedInStatement(t *testing.T) {
	for _, source := range []string{`in ;`, `in << ;`, `in`, `in "x";`} {
		tokens, err := Tokenize(source)
		if err != nil {
			t.Fatalf("Tokenize failed for %q: %v", source, err)
		}
		_, err = Parse(tokens)
		if err == nil {
			t.Fatalf("expected parse error for %q", source)
		}
		var parseErr *ParseError
		if !errors.As(err, &parseErr) {
			t.Fatalf("expected *ParseError for %q, got %T", source, err)
		}
	}
}

// Tokens outside a statement head are dropped without becoming statements.
func TestParse_StrayTokensSkipped(t *testing.T) {
	prog := mustParse(t, `; "loose" name << >> stop out >> "kept";`)

	if len(prog.Statements) != 1 {
		t.Fatalf("statement count wrong. expected=1, got=%d", len(prog.Statements))
	}
	targets := prog.Statements[0].Out.Targets
	if len(targets) != 1 || targets[0] != "kept" {
		t.Fatalf("expected only the out statement to survive, got %v", targets)
	}
}

func TestParse_OnlyStrayTokens(t *testing.T) {
	prog := mustParse(t, `; "loose" name << >> stop;`)

	if len(prog.Statements) != 0 {
		t.Fatalf("expected empty program, got %d statements", len(prog.Statements))
	}
}

func TestParse_StatementOrderPreserved(t *testing.T) {
	prog := mustParse(t, `out >> "one"; in << a; out >> a;`)

	if len(prog.Statements) != 3 {
		t.Fatalf("statement count wrong. expected=3, got=%d", len(prog.Statements))
	}
	if prog.Statements[0].Out == nil || prog.Statements[1].In == nil || prog.Statements[2].Out == nil {
		t.Fatal("statement kinds out of order")
	}
}

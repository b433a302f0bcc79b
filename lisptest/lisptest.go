// Copyright © 2018 The ELPS authors

// Package lisptest provides a table-driven harness for exercising the
// interpreter pipeline end to end.
package lisptest

import (
	"log"
	"testing"

	"github.com/Fwxzxh/minilisp/lisp"
	"github.com/Fwxzxh/minilisp/parser"
)

// TestSequence is a sequence of lisp expressions which are evaluated
// sequentially against one environment, so defines made by earlier
// expressions are visible to later ones.
type TestSequence []struct {
	Expr   string // a lisp expression
	Result string // the rendered result; ignored when Err is non-empty
	Err    string // the expected error string, when evaluation must fail
}

// TestSuite is a set of named TestSequences
type TestSuite []struct {
	Name string
	TestSequence
}

// RunTestSuite runs each TestSequence in tests on isolated environments.
func RunTestSuite(t *testing.T, tests TestSuite) {
	for i, test := range tests {
		log.Printf("test %d -- %s", i, test.Name)
		env := lisp.NewEnv()
		for j, expr := range test.TestSequence {
			v, err := parser.Parse(expr.Expr)
			if err != nil {
				if expr.Err == "" {
					t.Errorf("test %d %q: expr %d: parse error: %v", i, test.Name, j, err)
				} else if err.Error() != expr.Err {
					t.Errorf("test %d %q: expr %d: expected error %q (got %q)", i, test.Name, j, expr.Err, err.Error())
				}
				continue
			}
			result, err := env.Eval(v)
			if err != nil {
				if expr.Err == "" {
					t.Errorf("test %d %q: expr %d: eval error: %v", i, test.Name, j, err)
				} else if err.Error() != expr.Err {
					t.Errorf("test %d %q: expr %d: expected error %q (got %q)", i, test.Name, j, expr.Err, err.Error())
				}
				continue
			}
			if expr.Err != "" {
				t.Errorf("test %d %q: expr %d: expected error %q (got result %s)", i, test.Name, j, expr.Err, result)
				continue
			}
			if result.String() != expr.Result {
				t.Errorf("test %d %q: expr %d: expected result %s (got %s)", i, test.Name, j, expr.Result, result)
			}
		}
	}
}

// RunBenchmark runs a standard benchmark that executes expressions parsed
// from the lines of source.
func RunBenchmark(b *testing.B, lines ...string) {
	b.StopTimer()
	exprs := make([]*lisp.LVal, len(lines))
	for i, line := range lines {
		expr, err := parser.Parse(line)
		if err != nil {
			b.Fatalf("parse error: %v", err)
		}
		exprs[i] = expr
	}
	for i := 0; i < b.N; i++ {
		env := lisp.NewEnv()
		b.StartTimer()
		for j, expr := range exprs {
			if _, err := env.Eval(expr); err != nil {
				b.Fatalf("expr %d: %v", j, err)
			}
		}
		b.StopTimer()
	}
}

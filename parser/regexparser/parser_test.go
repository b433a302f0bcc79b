// Copyright © 2018 The ELPS authors

package regexparser

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Fwxzxh/minilisp/lisp"
	"github.com/Fwxzxh/minilisp/parser"
)

func TestParse(t *testing.T) {
	tests := []struct {
		source string
		output string
	}{
		{"1", "1"},
		{"true", "true"},
		{"abc", "abc"},
		{`"hello world"`, `"hello world"`},
		{"()", "()"},
		{"(+ 1 2)", "(+ 1 2)"},
		{"(* (+ 1 2) (- 5 2))", "(* (+ 1 2) (- 5 2))"},
		{"(define square (lambda (x) (* x x)))", "(define square (lambda (x) (* x x)))"},
		{"(())", "(())"},
		{`(concat "a" "b c")`, `(concat "a" "b c")`},
	}
	for i, test := range tests {
		v, err := Parse(test.source)
		if !assert.NoError(t, err, "test %d: %q", i, test.source) {
			continue
		}
		assert.Equal(t, test.output, v.String(), "test %d: %q", i, test.source)
	}
}

// The combinator parser and the canonical recursive-descent parser agree on
// trees and on error conditions.
func TestParseMatchesCanonicalParser(t *testing.T) {
	sources := []string{
		"1",
		"-2.5",
		"true",
		"false",
		"x",
		`"a b (c)"`,
		"()",
		"(+ 1 2)",
		"( + 1  2 )",
		"(* (+ 1 2) (- 5 2))",
		"(define square (lambda (x) (* x x)))",
		"(if (> x 1) (f x) (g x))",
		"(())",
		"",
		"(",
		"(+ 1 2",
		")",
		"(+ 1 2) 3",
	}
	for i, source := range sources {
		want, wantErr := parser.Parse(source)
		got, gotErr := Parse(source)
		if wantErr != nil {
			require.Error(t, gotErr, "test %d: %q", i, source)
			wantLErr := &lisp.Error{}
			gotLErr := &lisp.Error{}
			require.True(t, errors.As(wantErr, &wantLErr), "test %d: %q", i, source)
			require.True(t, errors.As(gotErr, &gotLErr), "test %d: %q", i, source)
			assert.Equal(t, wantLErr.Condition, gotLErr.Condition, "test %d: %q", i, source)
			continue
		}
		require.NoError(t, gotErr, "test %d: %q", i, source)
		assert.True(t, want.Equal(got), "test %d: %q: want %s got %s", i, source, want, got)
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		source    string
		condition lisp.Condition
	}{
		{"", parser.ErrUnexpectedEOF},
		{"(", parser.ErrUnmatchedSyntax},
		{"(+ 1 2", parser.ErrUnmatchedSyntax},
		{")", parser.ErrUnexpectedParen},
		{"(+ 1 2) 3", parser.ErrTrailingTokens},
	}
	for i, test := range tests {
		_, err := Parse(test.source)
		require.Error(t, err, "test %d: %q", i, test.source)
		lerr := &lisp.Error{}
		require.True(t, errors.As(err, &lerr), "test %d: %q", i, test.source)
		assert.Equal(t, test.condition, lerr.Condition, "test %d: %q", i, test.source)
	}
}

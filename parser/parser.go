// Copyright © 2018 The ELPS authors

// Package parser implements the canonical minilisp reader: a string-token
// tokenizer and a recursive-descent parser producing lisp.LVal trees.
package parser

import (
	"strconv"
	"strings"

	"github.com/Fwxzxh/minilisp/lisp"
)

// Conditions produced during parsing.  Parse errors are disjoint from
// evaluation errors.
const (
	// ErrUnexpectedEOF is produced when input contains no expression.
	ErrUnexpectedEOF lisp.Condition = "unexpected-eof"
	// ErrUnmatchedSyntax is produced when input ends before a list's closing
	// parenthesis.
	ErrUnmatchedSyntax lisp.Condition = "unmatched-syntax"
	// ErrUnexpectedParen is produced when a closing parenthesis appears where
	// an expression is expected.
	ErrUnexpectedParen lisp.Condition = "unexpected-paren"
	// ErrTrailingTokens is produced when tokens remain after the first
	// expression has been fully read.  A parse call reads exactly one
	// top-level expression.
	ErrTrailingTokens lisp.Condition = "trailing-tokens"
)

// Parse reads exactly one expression from source.
func Parse(source string) (*lisp.LVal, error) {
	tokens := Tokenize(source)
	expr, rest, err := readFromTokens(tokens)
	if err != nil {
		return nil, err
	}
	if len(rest) != 0 {
		return nil, lisp.Errorf(ErrTrailingTokens, "unexpected tokens after expression: %s", strings.Join(rest, " "))
	}
	return expr, nil
}

// readFromTokens recursively consumes tokens to build an expression tree,
// returning the expression and the unconsumed remainder of the token slice.
func readFromTokens(tokens []string) (*lisp.LVal, []string, error) {
	if len(tokens) == 0 {
		return nil, nil, lisp.Errorf(ErrUnexpectedEOF, "unexpected EOF")
	}
	tok := tokens[0]
	tokens = tokens[1:]
	switch tok {
	case "(":
		expr := lisp.SExpr(nil)
		for {
			if len(tokens) == 0 {
				return nil, nil, lisp.Errorf(ErrUnmatchedSyntax, "unmatched (")
			}
			if tokens[0] == ")" {
				tokens = tokens[1:]
				break
			}
			cell, rest, err := readFromTokens(tokens)
			if err != nil {
				return nil, nil, err
			}
			expr.Cells = append(expr.Cells, cell)
			tokens = rest
		}
		return expr, tokens, nil
	case ")":
		return nil, nil, lisp.Errorf(ErrUnexpectedParen, "unexpected )")
	default:
		return atom(tok), tokens, nil
	}
}

// atom converts a single non-paren token into a value.  A token delimited by
// double quotes becomes a string, the literals true and false become
// booleans, a token parseable as a float64 becomes a number, and anything
// else becomes a symbol.
func atom(tok string) *lisp.LVal {
	if len(tok) >= 2 && strings.HasPrefix(tok, `"`) && strings.HasSuffix(tok, `"`) {
		return lisp.String(tok[1 : len(tok)-1])
	}
	switch tok {
	case "true":
		return lisp.Bool(true)
	case "false":
		return lisp.Bool(false)
	}
	if x, err := strconv.ParseFloat(tok, 64); err == nil {
		return lisp.Number(x)
	}
	return lisp.Symbol(tok)
}

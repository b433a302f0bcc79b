// Copyright © 2018 The ELPS authors

/*
Package regexparser provides an alternate minilisp reader built on parser
combinators.

	expr   := '(' <expr>* ')' | <atom>
	string := '"' /[^"]* / '"'
	atom   := <string> | /[^\s()]+/

The package produces the same trees as the canonical recursive-descent
parser and exists to cross-check it; the parser package remains the
authoritative implementation of the language's token rules.
*/
package regexparser

import (
	"strconv"
	"strings"

	"github.com/Fwxzxh/minilisp/lisp"
	"github.com/Fwxzxh/minilisp/parser"
	parsec "github.com/prataprc/goparsec"
)

type nodeType uint

const (
	nodeInvalid nodeType = iota
	nodeTerm
	nodeSExpr
	nodeSExprUnmatched
)

// Parse reads exactly one expression from source.  The errors produced carry
// the same conditions as the canonical parser.
func Parse(source string) (*lisp.LVal, error) {
	s := parsec.NewScanner([]byte(source))
	root, s := newParsecParser()(s)
	if root == nil {
		_, s = s.SkipWS()
		if s.Endof() {
			return nil, lisp.Errorf(parser.ErrUnexpectedEOF, "unexpected EOF")
		}
		return nil, lisp.Errorf(parser.ErrUnexpectedParen, "unexpected )")
	}
	v, err := getLVal(root)
	if err != nil {
		return nil, err
	}
	_, s = s.SkipWS()
	if !s.Endof() {
		return nil, lisp.Errorf(parser.ErrTrailingTokens, "unexpected tokens after expression")
	}
	return v, nil
}

func newParsecParser() parsec.Parser {
	openP := parsec.Atom("(", "OPENP")
	closeP := parsec.Atom(")", "CLOSEP")
	str := parsec.Token(`"[^"]*"`, "STRING")
	// The word token swallows anything that is not whitespace or a
	// parenthesis, so it must come after the string token.
	word := parsec.Token(`[^\s()]+`, "WORD")
	term := parsec.OrdChoice(astNode(nodeTerm), str, word)
	var expr parsec.Parser // forward declaration allows for recursive parsing
	exprList := parsec.Kleene(nil, &expr)
	sexpr := parsec.And(astNode(nodeSExpr), openP, exprList, closeP)
	// The unmatched case comes last because it has the lowest precedence.
	sexprUnmatched := parsec.And(astNode(nodeSExprUnmatched), openP, exprList, parsec.End())
	expr = parsec.OrdChoice(nil, term, sexpr, sexprUnmatched)
	return expr
}

func astNode(t nodeType) parsec.Nodify {
	return func(nodes []parsec.ParsecNode) parsec.ParsecNode {
		return newNode(t, nodes)
	}
}

func newNode(typ nodeType, nodes []parsec.ParsecNode) parsec.ParsecNode {
	nodes, ok := cleanParsecNodeList(nodes)
	if !ok {
		// There is an error in the first position.
		return nodes[0]
	}
	switch typ {
	case nodeTerm:
		term, ok := nodes[0].(*parsec.Terminal)
		if !ok {
			return lisp.Errorf(parser.ErrUnexpectedEOF, "missing terminal node")
		}
		return atom(term.GetValue())
	case nodeSExpr:
		lval := lisp.SExpr(nil)
		for _, c := range nodes {
			if c, ok := c.(*lisp.LVal); ok {
				lval.Cells = append(lval.Cells, c)
			}
		}
		return lval
	case nodeSExprUnmatched:
		return lisp.Errorf(parser.ErrUnmatchedSyntax, "unmatched (")
	default:
		return lisp.Errorf(parser.ErrUnexpectedEOF, "unknown node type: %d", typ)
	}
}

// atom classifies a terminal token exactly the way the canonical parser
// does: string, boolean, number, then symbol.
func atom(text string) *lisp.LVal {
	if len(text) >= 2 && strings.HasPrefix(text, `"`) && strings.HasSuffix(text, `"`) {
		return lisp.String(text[1 : len(text)-1])
	}
	switch text {
	case "true":
		return lisp.Bool(true)
	case "false":
		return lisp.Bool(false)
	}
	if x, err := strconv.ParseFloat(text, 64); err == nil {
		return lisp.Number(x)
	}
	return lisp.Symbol(text)
}

func cleanParsecNodeList(lis []parsec.ParsecNode) ([]parsec.ParsecNode, bool) {
	var nodes []parsec.ParsecNode
	for _, n := range lis {
		switch node := n.(type) {
		case error:
			return []parsec.ParsecNode{node}, false
		case []parsec.ParsecNode:
			clean, ok := cleanParsecNodeList(node)
			if !ok {
				return clean, false
			}
			nodes = append(nodes, clean...)
		default:
			nodes = append(nodes, node)
		}
	}
	return nodes, true
}

func getLVal(root parsec.ParsecNode) (*lisp.LVal, error) {
	nodes, ok := cleanParsecNodeList([]parsec.ParsecNode{root})
	if !ok {
		return nil, nodes[0].(error)
	}
	if len(nodes) == 0 {
		return lisp.Nil(), nil
	}
	lval, ok := nodes[0].(*lisp.LVal)
	if !ok {
		return nil, lisp.Errorf(parser.ErrUnexpectedEOF, "no expression parsed")
	}
	return lval, nil
}

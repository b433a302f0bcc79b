// Copyright © 2018 The ELPS authors

package parser

import "unicode"

// Tokenize splits source into a flat sequence of lexical tokens using a
// single left-to-right scan with no backtracking.  Parentheses are
// one-character tokens, a double quote begins a string token whose contents
// are consumed verbatim until the next double quote, whitespace separates
// tokens and is discarded, and any other run of characters up to the next
// whitespace or parenthesis is one token.  Tokenize never fails; malformed
// input surfaces later as a parse or evaluation error.
func Tokenize(source string) []string {
	var tokens []string
	runes := []rune(source)
	for i := 0; i < len(runes); {
		c := runes[i]
		switch {
		case c == '(' || c == ')':
			tokens = append(tokens, string(c))
			i++
		case c == '"':
			i++ // consume opening quote
			start := i
			for i < len(runes) && runes[i] != '"' {
				i++
			}
			text := string(runes[start:i])
			// A string left unterminated at the end of input is accepted
			// silently: whatever was collected is emitted wrapped back in
			// quote delimiters.  This permissive behavior is deliberate and
			// locked by tests; see the package tests for the exact tokens.
			if i < len(runes) {
				i++ // consume closing quote
			}
			tokens = append(tokens, `"`+text+`"`)
		case unicode.IsSpace(c):
			i++
		default:
			start := i
			for i < len(runes) && !unicode.IsSpace(runes[i]) && runes[i] != '(' && runes[i] != ')' {
				i++
			}
			tokens = append(tokens, string(runes[start:i]))
		}
	}
	return tokens
}

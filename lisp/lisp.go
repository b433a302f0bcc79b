// Copyright © 2018 The ELPS authors

package lisp

import (
	"bytes"
	"strconv"
)

// LType is the type of an LVal
type LType uint

// Possible LType values
const (
	// LInvalid (0) is not a valid lisp type.
	LInvalid LType = iota
	// LSymbol values store an identifier in the LVal.Str field.  Symbols
	// evaluate by environment lookup.
	LSymbol
	// LNumber values store a float64 in the LVal.Num field.  All numbers in
	// the language are 64-bit floating point.
	LNumber
	// LBool values store a boolean in the LVal.Bool field.
	LBool
	// LString values store a string in the LVal.Str field.
	LString
	// LSExpr values are "list" values and store their elements in LVal.Cells.
	// A list is both code (a call or special form) and data (the empty list
	// is the unit value and evaluates to itself).
	LSExpr
	// LFun values are user-defined procedures.  They use the LVal.Cells field
	// to store the following items:
	//		[0] a list of symbols naming the procedure's formal arguments
	//		[1] the (unevaluated) body expression
	// The LVal.Str field holds the local name the procedure was defined
	// under, if any.  Procedure values carry no captured environment;
	// application derives its environment from the call site.
	LFun
	// LTypeMax is not a real type but represents a value numerically greater
	// than all valid LType values.
	LTypeMax
)

var lvalTypeStrings = []string{
	LInvalid: "INVALID",
	LSymbol:  "symbol",
	LNumber:  "number",
	LBool:    "bool",
	LString:  "string",
	LSExpr:   "list",
	LFun:     "function",
}

func (t LType) String() string {
	if t >= LType(len(lvalTypeStrings)) {
		return lvalTypeStrings[LInvalid]
	}
	return lvalTypeStrings[t]
}

// LVal is a lisp value.  The same type represents both syntax produced by the
// parser and the results of evaluation.  LVal contents are immutable once
// constructed; evaluation only produces new values.
type LVal struct {
	// Str is used by LSymbol, LString, and LFun values.
	Str string

	// Num is used by LNumber values.
	Num float64

	// Bool is used by LBool values.
	Bool bool

	// Cells is used by LSExpr and LFun values as storage space for child
	// objects.
	Cells []*LVal

	// Type is the lisp type of the value.
	Type LType
}

// Symbol returns an LVal representing the symbol s.
func Symbol(s string) *LVal {
	return &LVal{
		Type: LSymbol,
		Str:  s,
	}
}

// Number returns an LVal representing the number x.
func Number(x float64) *LVal {
	return &LVal{
		Type: LNumber,
		Num:  x,
	}
}

// Bool returns an LVal representing the boolean b.
func Bool(b bool) *LVal {
	return &LVal{
		Type: LBool,
		Bool: b,
	}
}

// String returns an LVal representing the string str.
func String(str string) *LVal {
	return &LVal{
		Type: LString,
		Str:  str,
	}
}

// SExpr returns an LVal representing a list.  Provided cells are used as
// backing storage for the returned expression and are not copied.
func SExpr(cells []*LVal) *LVal {
	return &LVal{
		Type:  LSExpr,
		Cells: cells,
	}
}

// Nil returns an LVal representing the empty list.
func Nil() *LVal {
	return SExpr(nil)
}

// Fun returns an LVal representing a procedure with the given formal argument
// list and body expression.  Fun does not validate formals; the lambda
// special form checks that every formal is a bare symbol before construction.
func Fun(formals *LVal, body *LVal) *LVal {
	return &LVal{
		Type:  LFun,
		Cells: []*LVal{formals, body},
	}
}

// FunRef returns a copy of fun that uses the local name symbol.  FunRef is
// used by define so that procedure values can report the name they were bound
// under.
func FunRef(symbol, fun *LVal) *LVal {
	cp := &LVal{}
	*cp = *fun
	cp.Str = symbol.Str
	return cp
}

// Formals returns the formal argument list of the procedure v.  Formals
// panics if v.Type is not LFun.
func (v *LVal) Formals() *LVal {
	if v.Type != LFun {
		panic("not a function: " + v.Type.String())
	}
	return v.Cells[0]
}

// Body returns the body expression of the procedure v.  Body panics if v.Type
// is not LFun.
func (v *LVal) Body() *LVal {
	if v.Type != LFun {
		panic("not a function: " + v.Type.String())
	}
	return v.Cells[1]
}

// Len returns the length of the list v, or -1 when v is not a list.
func (v *LVal) Len() int {
	if v.Type != LSExpr {
		return -1
	}
	return len(v.Cells)
}

// IsNil returns true if v represents the empty list.
func (v *LVal) IsNil() bool {
	return v.Type == LSExpr && len(v.Cells) == 0
}

// Copy creates a deep copy of the receiver.
func (v *LVal) Copy() *LVal {
	if v == nil {
		return nil
	}
	cp := &LVal{}
	*cp = *v
	cp.Cells = v.copyCells()
	return cp
}

func (v *LVal) copyCells() []*LVal {
	if len(v.Cells) == 0 {
		return nil
	}
	cells := make([]*LVal, len(v.Cells))
	for i := range cells {
		cells[i] = v.Cells[i].Copy()
	}
	return cells
}

// Equal returns true if v and other are structurally equal values.  Procedure
// values are only equal to themselves.
func (v *LVal) Equal(other *LVal) bool {
	if v.Type != other.Type {
		return false
	}
	switch v.Type {
	case LSymbol, LString:
		return v.Str == other.Str
	case LNumber:
		return v.Num == other.Num
	case LBool:
		return v.Bool == other.Bool
	case LSExpr:
		if len(v.Cells) != len(other.Cells) {
			return false
		}
		for i := range v.Cells {
			if !v.Cells[i].Equal(other.Cells[i]) {
				return false
			}
		}
		return true
	case LFun:
		return v == other
	}
	return false
}

// String renders v canonically.  Symbols, numbers, and booleans render as
// their literal text, strings render wrapped in double quotes with no
// internal escaping, lists render as their space-joined children inside
// parentheses, and procedure values render as an opaque placeholder.
func (v *LVal) String() string {
	switch v.Type {
	case LSymbol:
		return v.Str
	case LNumber:
		// The 'g' format can render a floating point number so that it
		// appears as an integer (6.0 renders as 6).
		return strconv.FormatFloat(v.Num, 'g', -1, 64)
	case LBool:
		return strconv.FormatBool(v.Bool)
	case LString:
		// The language has no string escape sequences so the contents are
		// rendered verbatim between the delimiters.
		return `"` + v.Str + `"`
	case LSExpr:
		return exprString(v, "(", ")")
	case LFun:
		return "#<function>"
	default:
		return "#<" + v.Type.String() + ">"
	}
}

func exprString(v *LVal, left string, right string) string {
	if len(v.Cells) == 0 {
		return left + right
	}
	var buf bytes.Buffer
	buf.WriteString(left)
	for i, c := range v.Cells {
		if i > 0 {
			buf.WriteString(" ")
		}
		buf.WriteString(c.String())
	}
	buf.WriteString(right)
	return buf.String()
}

// Copyright © 2018 The ELPS authors

package lisp

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLValString(t *testing.T) {
	tests := []struct {
		v      *LVal
		output string
	}{
		{Symbol("abc"), `abc`},
		{Number(6), `6`},
		{Number(0.3), `0.3`},
		{Number(-1.5), `-1.5`},
		{Number(1e21), `1e+21`},
		{Bool(true), `true`},
		{Bool(false), `false`},
		{String("xyz"), `"xyz"`},
		{String(""), `""`},
		{Nil(), `()`},
		{SExpr([]*LVal{Symbol("+"), Number(1), Number(2)}), `(+ 1 2)`},
		{SExpr([]*LVal{String("a"), SExpr([]*LVal{Bool(true)})}), `("a" (true))`},
		{Fun(SExpr([]*LVal{Symbol("x")}), Symbol("x")), `#<function>`},
	}
	for i, test := range tests {
		assert.Equal(t, test.output, test.v.String(), "test %d", i)
	}
}

func TestLValCopy(t *testing.T) {
	v := SExpr([]*LVal{Symbol("a"), SExpr([]*LVal{Number(1)})})
	cp := v.Copy()
	assert.True(t, v.Equal(cp))

	// The copy is deep; growing the copy's cells does not affect the
	// original.
	cp.Cells = append(cp.Cells, Number(2))
	assert.Equal(t, 2, v.Len())
	assert.Equal(t, 3, cp.Len())

	cp.Cells[1].Cells[0] = Number(3)
	assert.Equal(t, `(a (1))`, v.String())
	assert.Equal(t, `(a (3) 2)`, cp.String())
}

func TestLValEqual(t *testing.T) {
	assert.True(t, Number(1).Equal(Number(1)))
	assert.False(t, Number(1).Equal(Number(2)))
	assert.False(t, Number(1).Equal(String("1")))
	assert.True(t, Symbol("x").Equal(Symbol("x")))
	assert.False(t, Symbol("x").Equal(String("x")))
	assert.True(t, Nil().Equal(Nil()))
	assert.True(t,
		SExpr([]*LVal{Number(1), String("a")}).Equal(SExpr([]*LVal{Number(1), String("a")})))
	assert.False(t,
		SExpr([]*LVal{Number(1)}).Equal(SExpr([]*LVal{Number(1), Number(2)})))

	fn := Fun(Nil(), Number(1))
	assert.True(t, fn.Equal(fn))
	assert.False(t, fn.Equal(Fun(Nil(), Number(1))))
}

func TestLTypeStrings(t *testing.T) {
	for typ := LInvalid; typ < LTypeMax; typ++ {
		assert.NotEqual(t, "", typ.String(), "type %d has no string", typ)
	}
	assert.Equal(t, "INVALID", LTypeMax.String())
}

func TestFunRef(t *testing.T) {
	fn := Fun(SExpr([]*LVal{Symbol("x")}), Symbol("x"))
	ref := FunRef(Symbol("square"), fn)
	assert.Equal(t, "square", ref.Str)
	assert.Equal(t, "", fn.Str)
	assert.Equal(t, fn.Body(), ref.Body())
}

// Copyright © 2018 The ELPS authors

package lisp

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLookupBuiltin(t *testing.T) {
	for _, fn := range langBuiltins {
		found, ok := lookupBuiltin(fn.Name())
		assert.True(t, ok, "builtin %s not indexed", fn.Name())
		assert.Equal(t, fn, found)
	}
	_, ok := lookupBuiltin("define")
	assert.False(t, ok)
	_, ok = lookupBuiltin("nonsense")
	assert.False(t, ok)
}

func TestBuiltinIdentities(t *testing.T) {
	v, err := builtinAdd(nil)
	require.NoError(t, err)
	assert.Equal(t, "0", v.String())

	v, err = builtinMul(nil)
	require.NoError(t, err)
	assert.Equal(t, "1", v.String())

	v, err = builtinConcat(nil)
	require.NoError(t, err)
	assert.Equal(t, `""`, v.String())
}

func TestBuiltinErrors(t *testing.T) {
	tests := []struct {
		fun       LBuiltin
		args      []*LVal
		condition Condition
	}{
		{builtinAdd, []*LVal{Number(1), String("a")}, ErrType},
		{builtinSub, nil, ErrArityMismatch},
		{builtinDiv, nil, ErrArityMismatch},
		{builtinDiv, []*LVal{Number(1), Number(0)}, ErrDivisionByZero},
		{builtinGT, []*LVal{Number(1)}, ErrArityMismatch},
		{builtinGT, []*LVal{Bool(true), Bool(false)}, ErrType},
		{builtinConcat, []*LVal{String("a"), Nil()}, ErrType},
	}
	for i, test := range tests {
		_, err := test.fun(test.args)
		require.Error(t, err, "test %d", i)
		lerr, ok := err.(*Error)
		require.True(t, ok, "test %d", i)
		assert.Equal(t, test.condition, lerr.Condition, "test %d", i)
	}
}

func TestBuiltinDivZeroCheckPrecedesTypeCheck(t *testing.T) {
	// The zero-divisor scan runs over the trailing arguments before the type
	// check, so a zero divisor wins even when another argument has the wrong
	// type.
	_, err := builtinDiv([]*LVal{Number(1), String("x"), Number(0)})
	require.Error(t, err)
	lerr, ok := err.(*Error)
	require.True(t, ok)
	assert.Equal(t, ErrDivisionByZero, lerr.Condition)

	// A zero dividend is not a zero divisor.
	v, err := builtinDiv([]*LVal{Number(0), Number(4)})
	require.NoError(t, err)
	assert.Equal(t, "0", v.String())
}

// Copyright © 2018 The ELPS authors

package lisp

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEnvGetPut(t *testing.T) {
	env := NewEnv()
	assert.Equal(t, 0, env.Len())

	_, ok := env.Get("x")
	assert.False(t, ok)

	env.Put("x", Number(1))
	v, ok := env.Get("x")
	assert.True(t, ok)
	assert.Equal(t, "1", v.String())

	env.Put("x", String("one"))
	v, ok = env.Get("x")
	assert.True(t, ok)
	assert.Equal(t, `"one"`, v.String())
	assert.Equal(t, 1, env.Len())
}

func TestEnvCopy(t *testing.T) {
	env := NewEnv()
	env.Put("x", Number(1))

	cp := env.Copy()
	assert.Equal(t, 1, cp.Len())

	// Bindings added to the copy do not escape to the original, and vice
	// versa.
	cp.Put("y", Number(2))
	_, ok := env.Get("y")
	assert.False(t, ok)

	env.Put("z", Number(3))
	_, ok = cp.Get("z")
	assert.False(t, ok)

	// Rebinding in the copy does not disturb the original binding.
	cp.Put("x", Number(10))
	v, _ := env.Get("x")
	assert.Equal(t, "1", v.String())

	// The copy shares value pointers with the original.
	env.Put("shared", SExpr([]*LVal{Number(1)}))
	cp2 := env.Copy()
	orig, _ := env.Get("shared")
	dup, _ := cp2.Get("shared")
	assert.True(t, orig == dup)
}

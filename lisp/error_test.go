// Copyright © 2018 The ELPS authors

package lisp

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrorString(t *testing.T) {
	err := Errorf(ErrUnboundSymbol, "unbound symbol: %s", "x")
	assert.Equal(t, "unbound-symbol: unbound symbol: x", err.Error())
	assert.Equal(t, ErrUnboundSymbol, err.Condition)
}

// Conditions are available programmatically through errors.As, so callers
// never have to match message text.
func TestErrorCondition(t *testing.T) {
	env := NewEnv()
	_, err := env.Eval(Symbol("missing"))
	require.Error(t, err)

	lerr := &Error{}
	require.True(t, errors.As(err, &lerr))
	assert.Equal(t, ErrUnboundSymbol, lerr.Condition)
}

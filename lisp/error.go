// Copyright © 2018 The ELPS authors

package lisp

import "fmt"

// Condition classifies an interpreter error.  Conditions let callers
// distinguish error classes programmatically instead of matching message
// strings.
type Condition string

// Conditions produced during evaluation.
const (
	// ErrUnboundSymbol is produced when a symbol has no binding in the
	// environment.
	ErrUnboundSymbol Condition = "unbound-symbol"
	// ErrInvalidDefine is produced when a define form does not consist of a
	// symbol and a single value expression.
	ErrInvalidDefine Condition = "invalid-define"
	// ErrInvalidLambdaList is produced when a lambda form does not consist of
	// a list of bare symbols and a single body expression.
	ErrInvalidLambdaList Condition = "invalid-lambda-list"
	// ErrNonBooleanCondition is produced when an if condition does not
	// evaluate to a boolean.
	ErrNonBooleanCondition Condition = "non-boolean-condition"
	// ErrArityMismatch is produced when the number of arguments passed to a
	// procedure or operator does not match what it requires.
	ErrArityMismatch Condition = "arity-mismatch"
	// ErrNotAFunction is produced when the operator of an application does
	// not evaluate to a procedure.
	ErrNotAFunction Condition = "not-a-function"
	// ErrDivisionByZero is produced when any divisor passed to the division
	// operator equals exactly zero.
	ErrDivisionByZero Condition = "division-by-zero"
	// ErrType is produced when an operator receives an argument of the wrong
	// type.  The error message names the offending operator.
	ErrType Condition = "type-error"
)

// Error is an interpreter error.  Errors are terminal for the expression
// being processed but never for the process; the caller reports the message
// and continues with the environment unchanged beyond whatever defines
// already completed.
type Error struct {
	Condition Condition
	Message   string
}

// Error implements the error interface.  The condition name precedes the
// message.
func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Condition, e.Message)
}

// Errorf returns an Error with the given condition and a formatted message.
func Errorf(condition Condition, format string, v ...interface{}) *Error {
	return &Error{
		Condition: condition,
		Message:   fmt.Sprintf(format, v...),
	}
}

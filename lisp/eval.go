// Copyright © 2018 The ELPS authors

package lisp

// Special form head symbols.  These are dispatched before ordinary procedure
// application and cannot be shadowed by bindings.
const (
	DefineSymbol = "define"
	LambdaSymbol = "lambda"
	IfSymbol     = "if"
)

// Eval evaluates v in env and returns the resulting value.  Evaluation is
// pure structural recursion over v.  Errors are terminal for v but leave env
// with whatever defines already completed during evaluation (operands are
// evaluated left to right, so a later error does not undo an earlier nested
// define).
func (env *LEnv) Eval(v *LVal) (*LVal, error) {
	switch v.Type {
	case LSymbol:
		val, ok := env.Get(v.Str)
		if !ok {
			return nil, Errorf(ErrUnboundSymbol, "unbound symbol: %s", v.Str)
		}
		return val, nil
	case LNumber, LBool, LString, LFun:
		return v, nil
	case LSExpr:
		if len(v.Cells) == 0 {
			return v, nil
		}
		head := v.Cells[0]
		if head.Type == LSymbol {
			switch head.Str {
			case DefineSymbol:
				return env.evalDefine(v.Cells[1:])
			case LambdaSymbol:
				return evalLambda(v.Cells[1:])
			case IfSymbol:
				return env.evalIf(v.Cells[1:])
			}
		}
		return env.apply(head, v.Cells[1:])
	}
	return nil, Errorf(ErrType, "cannot evaluate value of type %s", v.Type)
}

// evalDefine binds a symbol in env, mutating it in place, and returns the
// symbol as the result value.
func (env *LEnv) evalDefine(args []*LVal) (*LVal, error) {
	if len(args) != 2 {
		return nil, Errorf(ErrInvalidDefine, "define requires a symbol and a value")
	}
	name := args[0]
	if name.Type != LSymbol {
		return nil, Errorf(ErrInvalidDefine, "first argument to define must be a symbol: %s", name.Type)
	}
	val, err := env.Eval(args[1])
	if err != nil {
		return nil, err
	}
	if val.Type == LFun && val.Str == "" {
		val = FunRef(name, val)
	}
	env.Put(name.Str, val)
	return name, nil
}

// evalLambda constructs a procedure value holding the parameter names and
// the unevaluated body.  No environment capture occurs here; the procedure
// observes whatever bindings are visible at its eventual call sites.
func evalLambda(args []*LVal) (*LVal, error) {
	if len(args) != 2 {
		return nil, Errorf(ErrInvalidLambdaList, "lambda requires a parameter list and a body")
	}
	formals := args[0]
	if formals.Type != LSExpr {
		return nil, Errorf(ErrInvalidLambdaList, "first argument to lambda must be a list of symbols: %s", formals.Type)
	}
	for _, p := range formals.Cells {
		if p.Type != LSymbol {
			return nil, Errorf(ErrInvalidLambdaList, "lambda parameters must be symbols: %s", p.Type)
		}
	}
	return Fun(formals, args[1]), nil
}

// evalIf evaluates exactly one branch based on the condition.  The branch not
// taken is never evaluated.
func (env *LEnv) evalIf(args []*LVal) (*LVal, error) {
	if len(args) != 3 {
		return nil, Errorf(ErrArityMismatch, "if requires a condition, a then branch, and an else branch")
	}
	cond, err := env.Eval(args[0])
	if err != nil {
		return nil, err
	}
	if cond.Type != LBool {
		return nil, Errorf(ErrNonBooleanCondition, "condition for if must evaluate to a boolean: %s", cond.Type)
	}
	if cond.Bool {
		return env.Eval(args[1])
	}
	return env.Eval(args[2])
}

// apply evaluates a procedure application.  Operands are evaluated left to
// right before the operator is resolved.  A symbol operator is first tried
// against the fixed builtin operator set; a name that is not a builtin falls
// through to ordinary procedure lookup, while any real builtin failure is
// reported immediately.
func (env *LEnv) apply(op *LVal, rest []*LVal) (*LVal, error) {
	args := make([]*LVal, len(rest))
	for i, arg := range rest {
		v, err := env.Eval(arg)
		if err != nil {
			return nil, err
		}
		args[i] = v
	}

	if op.Type == LSymbol {
		if fn, ok := lookupBuiltin(op.Str); ok {
			return fn.Eval(args)
		}
	}

	fval, err := env.Eval(op)
	if err != nil {
		return nil, err
	}
	if fval.Type != LFun {
		return nil, Errorf(ErrNotAFunction, "not a function: %s", op)
	}
	return env.applyFun(fval, args)
}

// applyFun calls the procedure fun with evaluated arguments.  The body is
// evaluated against a full duplicate of the caller's current environment
// extended with the parameter bindings; the duplicate is discarded when the
// call returns.  Any define performed inside the body is therefore local to
// this call.
func (env *LEnv) applyFun(fun *LVal, args []*LVal) (*LVal, error) {
	formals := fun.Formals()
	if len(formals.Cells) != len(args) {
		return nil, Errorf(ErrArityMismatch, "function expects %d arguments, but received %d",
			len(formals.Cells), len(args))
	}
	if env.Profiler != nil && env.Profiler.IsEnabled() {
		end := env.Profiler.Start(fun)
		defer end()
	}
	fenv := env.Copy()
	for i, p := range formals.Cells {
		fenv.Put(p.Str, args[i])
	}
	return fenv.Eval(fun.Body())
}

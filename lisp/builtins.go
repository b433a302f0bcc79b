// Copyright © 2018 The ELPS authors

package lisp

import "strings"

// LBuiltin is a function that executes a builtin operator.
type LBuiltin func(args []*LVal) (*LVal, error)

type langBuiltin struct {
	name string
	fun  LBuiltin
}

func (fun *langBuiltin) Name() string {
	return fun.name
}

func (fun *langBuiltin) Eval(args []*LVal) (*LVal, error) {
	return fun.fun(args)
}

// The fixed, non-overridable set of builtin operators.  These are resolved by
// name before user-defined bindings are consulted.
var langBuiltins = []*langBuiltin{
	{"+", builtinAdd},
	{"-", builtinSub},
	{"*", builtinMul},
	{"/", builtinDiv},
	{">", builtinGT},
	{"concat", builtinConcat},
}

var builtinIndex = make(map[string]*langBuiltin, len(langBuiltins))

func init() {
	for _, fn := range langBuiltins {
		builtinIndex[fn.name] = fn
	}
}

// lookupBuiltin resolves name against the builtin operator set.  The boolean
// result distinguishes "not a builtin name" (application falls through to
// user-defined procedures) from a builtin that fails during evaluation, so
// that no error message matching is required to tell the two apart.
func lookupBuiltin(name string) (*langBuiltin, bool) {
	fn, ok := builtinIndex[name]
	return fn, ok
}

// numbers converts args to float64 values, reporting a type error naming the
// operator op when any argument is not a number.
func numbers(op string, args []*LVal) ([]float64, error) {
	nums := make([]float64, len(args))
	for i, arg := range args {
		if arg.Type != LNumber {
			return nil, Errorf(ErrType, "operator %s requires number arguments: %s", op, arg.Type)
		}
		nums[i] = arg.Num
	}
	return nums, nil
}

func builtinAdd(args []*LVal) (*LVal, error) {
	nums, err := numbers("+", args)
	if err != nil {
		return nil, err
	}
	sum := 0.0
	for _, x := range nums {
		sum += x
	}
	return Number(sum), nil
}

func builtinMul(args []*LVal) (*LVal, error) {
	nums, err := numbers("*", args)
	if err != nil {
		return nil, err
	}
	prod := 1.0
	for _, x := range nums {
		prod *= x
	}
	return Number(prod), nil
}

func builtinSub(args []*LVal) (*LVal, error) {
	nums, err := numbers("-", args)
	if err != nil {
		return nil, err
	}
	if len(nums) == 0 {
		return nil, Errorf(ErrArityMismatch, "operator - requires at least one argument")
	}
	if len(nums) == 1 {
		return Number(-nums[0]), nil
	}
	diff := nums[0]
	for _, x := range nums[1:] {
		diff -= x
	}
	return Number(diff), nil
}

func builtinDiv(args []*LVal) (*LVal, error) {
	// Any zero divisor among the trailing arguments fails the whole call
	// before any division (or type checking) is performed.
	if len(args) > 1 {
		for _, arg := range args[1:] {
			if arg.Type == LNumber && arg.Num == 0.0 {
				return nil, Errorf(ErrDivisionByZero, "division by zero")
			}
		}
	}
	nums, err := numbers("/", args)
	if err != nil {
		return nil, err
	}
	if len(nums) == 0 {
		return nil, Errorf(ErrArityMismatch, "operator / requires at least one argument")
	}
	quot := nums[0]
	for _, x := range nums[1:] {
		quot /= x
	}
	return Number(quot), nil
}

func builtinGT(args []*LVal) (*LVal, error) {
	if len(args) != 2 {
		return nil, Errorf(ErrArityMismatch, "operator > requires two arguments")
	}
	nums, err := numbers(">", args)
	if err != nil {
		return nil, err
	}
	return Bool(nums[0] > nums[1]), nil
}

func builtinConcat(args []*LVal) (*LVal, error) {
	var b strings.Builder
	for _, arg := range args {
		if arg.Type != LString {
			return nil, Errorf(ErrType, "operator concat requires string arguments: %s", arg.Type)
		}
		b.WriteString(arg.Str)
	}
	return String(b.String()), nil
}

// Copyright © 2018 The ELPS authors

package lisp

// LEnv is a lisp environment, a mapping from symbol names to values.  One
// environment is created at program start and lives for the duration of the
// process, mutated in place by top-level define.  Each procedure call derives
// a fresh environment from the caller's (see Eval) which is discarded when
// the call returns.
type LEnv struct {
	Scope map[string]*LVal

	// Profiler, when non-nil and enabled, is notified of procedure
	// applications.  It has no effect on evaluation semantics.
	Profiler Profiler
}

// NewEnv initializes and returns a new LEnv with an empty scope.
func NewEnv() *LEnv {
	return &LEnv{
		Scope: make(map[string]*LVal),
	}
}

// Get returns the value bound to name in env.  Values are immutable so the
// stored value is returned without copying.
func (env *LEnv) Get(name string) (*LVal, bool) {
	v, ok := env.Scope[name]
	return v, ok
}

// Put binds name to v in env, replacing any previous binding.
func (env *LEnv) Put(name string, v *LVal) {
	env.Scope[name] = v
}

// Copy returns a full duplicate of env.  The duplicate shares value pointers
// with the receiver, which is safe because values are never mutated, but has
// an independent scope map so bindings added to the copy never escape to the
// original.  A procedure call evaluates its body in a Copy of the caller's
// environment, which is what gives the language its call-site scoping rule.
func (env *LEnv) Copy() *LEnv {
	cp := &LEnv{
		Scope:    make(map[string]*LVal, len(env.Scope)),
		Profiler: env.Profiler,
	}
	for k, v := range env.Scope {
		cp.Scope[k] = v
	}
	return cp
}

// Len returns the number of bindings in env.
func (env *LEnv) Len() int {
	return len(env.Scope)
}

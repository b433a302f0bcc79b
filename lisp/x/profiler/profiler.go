package profiler

import (
	"fmt"

	"github.com/Fwxzxh/minilisp/lisp"
)

// profiler is a minimal lisp.Profiler
type profiler struct {
	env        *lisp.LEnv
	enabled    bool
	skipFilter SkipFilter
}

var _ lisp.Profiler = &profiler{}

func (p *profiler) IsEnabled() bool {
	return p.enabled
}

type Option func(*profiler)

// WithSkipFilter suppresses annotation of applications for which the filter
// returns true.
func WithSkipFilter(filter SkipFilter) Option {
	return func(p *profiler) {
		p.skipFilter = filter
	}
}

func (p *profiler) applyConfigs(opts ...Option) {
	for _, opt := range opts {
		opt(p)
	}
}

func (p *profiler) Enable() error {
	if p.enabled {
		return fmt.Errorf("profiler already enabled")
	}
	p.enabled = true
	return nil
}

func (p *profiler) Complete() error {
	return nil
}

func (p *profiler) Start(fun *lisp.LVal) func() {
	return func() {}
}

// SkipFilter reports whether an application of fun should go unannotated.
type SkipFilter func(fun *lisp.LVal) bool

// funName returns a human readable label for a procedure value: the name it
// was defined under, or "lambda" for anonymous procedures.
func funName(fun *lisp.LVal) string {
	if fun.Type != lisp.LFun {
		return ""
	}
	if fun.Str != "" {
		return fun.Str
	}
	return "lambda"
}

// skipTrace is a helper function to decide whether to skip tracing.
func (p *profiler) skipTrace(v *lisp.LVal) bool {
	return !p.enabled || p.skipFilter != nil && p.skipFilter(v)
}

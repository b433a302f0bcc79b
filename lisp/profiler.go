package lisp

const MinilispVersion = "1.0"

// Profiler annotates procedure applications.  A profiler observes evaluation
// but must never alter its semantics.
type Profiler interface {
	// Is the profiler enabled?
	IsEnabled() bool
	// Enable the profiler
	Enable() error
	// End the profiling session and flush any recorded data
	Complete() error
	// Marks the start of a procedure application.  The returned function
	// marks the end of the application.
	Start(fun *LVal) func()
}

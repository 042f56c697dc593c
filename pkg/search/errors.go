package search

import "fmt"

// stickyError records the first error encountered during evaluation.
// Subsequent calls to set are no-ops: the first error wins and every
// evaluator short-circuits to empty results once it's set, replacing
// exceptions thrown from deep visitors in the original design (§9).
type stickyError struct {
	msg string
}

func (e *stickyError) set(format string, args ...any) {
	if e.msg != "" {
		return
	}
	e.msg = fmt.Sprintf(format, args...)
}

func (e *stickyError) has() bool { return e.msg != "" }

// panicf raises a programming-error invariant violation — distinct from a
// sticky query error, which is always a user-facing condition a malformed
// query string can trigger. A panic here means the parser built an AST
// shape the evaluator never expects to see.
func panicf(format string, args ...any) {
	panic(fmt.Sprintf(format, args...))
}

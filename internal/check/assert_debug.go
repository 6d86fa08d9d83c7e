//go:build debug

// Package check holds invariant assertions that only fire in debug builds
// (go build -tags debug). Release builds compile them away.
package check

import "fmt"

// Enabled reports whether assertions are compiled in.
const Enabled = true

// Assertf panics if cond is false.
func Assertf(cond bool, format string, args ...any) {
	if !cond {
		panic("keystone: invariant violated: " + fmt.Sprintf(format, args...))
	}
}

// Exclusive panics unless exactly one of matches is true. It guards decision
// tables whose rows are written to be mutually exclusive.
func Exclusive(table string, matches ...bool) {
	n := 0
	for _, m := range matches {
		if m {
			n++
		}
	}
	Assertf(n == 1, "%s: %d rules matched, want 1", table, n)
}

// errors.go
//
// Typed diagnostics. The Error() strings are the user-visible channel and
// stay stable (scripts match on them), so they never carry positions; the
// byte offset rides along on SyntaxError for caret rendering in
// interactive use.

package termcalc

import (
	"fmt"
	"strings"
)

// UndefinedError reports an identifier that resolved nowhere: not a user
// variable, not `ans`, not a constant.
type UndefinedError struct {
	Name string
}

func (e *UndefinedError) Error() string { return "undefined: " + e.Name }

// UnknownFuncError reports a call to a name the registry does not carry
// at that arity.
type UnknownFuncError struct {
	Name string
}

func (e *UnknownFuncError) Error() string { return "unknown function: " + e.Name }

// SyntaxError aborts the current parse. Offset is the byte position within
// the input line of the token the parser stopped at.
type SyntaxError struct {
	Offset int
}

func (e *SyntaxError) Error() string { return "syntax error" }

// ErrorSnippet renders the input line with a caret under the position err
// points at, for interactive display under the plain diagnostic:
//
//	  2 + $
//	      ^
//
// Plain text, no ANSI escapes. Errors without a position render as "".
// An out-of-range offset is clamped so the caret always lands somewhere
// on the line.
func ErrorSnippet(err error, src string) string {
	se, ok := err.(*SyntaxError)
	if !ok || se.Offset < 0 {
		return ""
	}
	col := se.Offset
	if col > len(src) {
		col = len(src)
	}
	var b strings.Builder
	fmt.Fprintf(&b, "  %s\n", src)
	fmt.Fprintf(&b, "  %s^\n", strings.Repeat(" ", col))
	return b.String()
}

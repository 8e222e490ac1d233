// termcalc.go
//
// Session is the stable public surface of the calculator: one Eval call per
// input line, FormatResult to render what Eval produced. Everything the
// evaluator mutates (variable table, active output format, last diagnostic)
// hangs off the Session, so independent sessions never share state and the
// surrounding CLI/REPL stays a thin collaborator.

package termcalc

import (
	"fmt"
	"io"
	"math"
	"os"
)

// Version is stamped by the release build via -ldflags; "dev" otherwise.
var Version = "dev"

// Capacity limits of the variable table.
const (
	maxVars    = 64 // bindings; inserts beyond this are silently dropped
	maxNameLen = 31 // significant identifier bytes; the lexer stops here
)

// Session evaluates one expression line at a time. It is not safe for
// concurrent use; give each goroutine its own Session instead.
type Session struct {
	// Diag receives the user-facing diagnostics (undefined identifiers,
	// unknown functions, syntax errors), one line each, as they occur.
	Diag io.Writer

	vars   *varTable
	format OutputFormat
	err    error
}

// NewSession returns a Session with an empty variable table, Decimal
// output format and diagnostics going to stderr.
func NewSession() *Session {
	return &Session{
		Diag: os.Stderr,
		vars: newVarTable(maxVars),
	}
}

// Eval evaluates a single line and returns its value. NaN signals failure;
// the matching diagnostic has already been written to Diag and is available
// through LastError. The active output format resets to Decimal before
// anything is parsed, so a hex()/bin()/oct() call only ever tags the line
// it appears on.
//
// A line of the form `name = expr` assigns and returns the value. The
// decision needs one token of lookahead past the identifier; the lexer is
// cheap to copy, so the parser saves and restores it around the probe.
func (s *Session) Eval(line string) float64 {
	s.format = FormatDec
	s.err = nil

	p := parser{lex: lexer{src: line}, sess: s}
	p.next()

	if p.tok.kind == tokIdent {
		name := p.tok.name
		lexSave, tokSave := p.lex, p.tok
		p.next()
		if p.tok.kind == tokAssign {
			p.next()
			v := p.parseExpr()
			s.vars.assign(name, v)
			return v
		}
		p.lex, p.tok = lexSave, tokSave
	}

	return p.parseExpr()
}

// FormatResult renders v under the output format the last Eval left
// active. The false return means "print nothing": v is NaN.
func (s *Session) FormatResult(v float64) (string, bool) {
	return Format(v, s.format)
}

// Assign stores value under name, shadowing any constant of the same
// name. The REPL uses it to keep `ans` current after every line.
func (s *Session) Assign(name string, value float64) {
	s.vars.assign(name, value)
}

// Binding is one user variable, as reported by Bindings.
type Binding struct {
	Name  string
	Value float64
}

// Bindings returns the user variables in assignment order.
func (s *Session) Bindings() []Binding {
	return s.vars.bindings()
}

// LastError reports the diagnostic behind the most recent failed Eval, or
// nil when it succeeded. NaN-valued math such as sqrt(-1) is a success:
// NaN with a nil LastError.
func (s *Session) LastError() error { return s.err }

// report writes one diagnostic line and records the first of the current
// Eval for LastError. Later ones in the same line still print; a NaN
// cascade can touch several names and the user should see all of them.
func (s *Session) report(err error) float64 {
	fmt.Fprintln(s.Diag, err)
	if s.err == nil {
		s.err = err
	}
	return math.NaN()
}

// lookupIdent resolves an identifier: user bindings shadow everything
// else, then the named constants and `ans`, then the byte units. Units
// match case-insensitively; pi and e only in the two spellings each.
func (s *Session) lookupIdent(name string) float64 {
	if v, ok := s.vars.get(name); ok {
		return v
	}
	switch name {
	case "pi", "PI":
		return math.Pi
	case "e", "E":
		return math.E
	case "ans":
		// Never assigned yet; the REPL keeps it bound otherwise.
		return 0
	}
	if v, ok := lookupUnit(name); ok {
		return v
	}
	return s.report(&UndefinedError{Name: name})
}

// callBuiltin dispatches a function call. Unknown names and arity
// mismatches are the same failure: the registry has no entry for that
// name at that argument count.
func (s *Session) callBuiltin(name string, args []float64) float64 {
	b, ok := builtins[name]
	if !ok || b.arity != len(args) {
		return s.report(&UnknownFuncError{Name: name})
	}
	return b.fn(s, args)
}

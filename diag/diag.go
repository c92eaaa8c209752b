package diag

import (
	"errors"
	"fmt"
	"sort"

	"github.com/Urethramancer/xdt99/token"
)

// Diagnostic codes. A Diagnostic unwraps to one of these, so callers can
// test them with errors.Is.
var (
	// ErrLex is an unrecognised character.
	ErrLex = errors.New("lex error")
	// ErrUnknownMnemonic is a mnemonic missing from the dialect's table.
	ErrUnknownMnemonic = errors.New("unknown mnemonic")
	// ErrShapeMismatch is a wrong operand count or addressing kind.
	ErrShapeMismatch = errors.New("operand shape mismatch")
	// ErrUnterminated is a statement cut short, e.g. by an open string.
	ErrUnterminated = errors.New("unterminated statement")
	// ErrUnexpected is a token that cannot start a mnemonic or an operand.
	ErrUnexpected = errors.New("unexpected token")
)

// Severity ranks diagnostics.
type Severity int

const (
	// Error marks a statement the tree could only represent partially.
	Error Severity = iota
	// Warning marks a statement kept in a degraded form.
	Warning
	// Info is advisory.
	Info
)

func (s Severity) String() string {
	switch s {
	case Error:
		return "error"
	case Warning:
		return "warning"
	case Info:
		return "info"
	default:
		return fmt.Sprintf("Severity(%d)", int(s))
	}
}

// Diagnostic is one problem found in a source file.
type Diagnostic struct {
	Severity Severity
	Code     error
	Message  string
	Span     token.Span
	File     string
}

func (d Diagnostic) Error() string {
	if d.File != "" {
		return fmt.Sprintf("%s:%s: %s: %s", d.File, d.Span.Start, d.Severity, d.Message)
	}
	return fmt.Sprintf("%s: %s: %s", d.Span.Start, d.Severity, d.Message)
}

// Unwrap returns the diagnostic's code.
func (d Diagnostic) Unwrap() error {
	return d.Code
}

// List is an ordered collection of diagnostics.
type List []Diagnostic

// Add appends a diagnostic built from a format string.
func (l *List) Add(sev Severity, code error, span token.Span, format string, args ...any) {
	*l = append(*l, Diagnostic{
		Severity: sev,
		Code:     code,
		Message:  fmt.Sprintf(format, args...),
		Span:     span,
	})
}

// Errorf appends an error-severity diagnostic.
func (l *List) Errorf(code error, span token.Span, format string, args ...any) {
	l.Add(Error, code, span, format, args...)
}

// Warnf appends a warning.
func (l *List) Warnf(code error, span token.Span, format string, args ...any) {
	l.Add(Warning, code, span, format, args...)
}

// SetFile stamps every diagnostic with a file name.
func (l List) SetFile(name string) {
	for i := range l {
		l[i].File = name
	}
}

// Sort orders diagnostics by source position. Equal positions keep their order.
func (l List) Sort() {
	sort.SliceStable(l, func(i, j int) bool {
		return l[i].Span.Start.Offset < l[j].Span.Start.Offset
	})
}

// Count returns how many diagnostics carry the given code.
func (l List) Count(code error) int {
	n := 0
	for _, d := range l {
		if errors.Is(d, code) {
			n++
		}
	}
	return n
}

// Errors returns only error-severity diagnostics.
func (l List) Errors() List {
	var out List
	for _, d := range l {
		if d.Severity == Error {
			out = append(out, d)
		}
	}
	return out
}

// HasErrors reports whether any diagnostic has error severity.
func (l List) HasErrors() bool {
	for _, d := range l {
		if d.Severity == Error {
			return true
		}
	}
	return false
}

// Err joins all error-severity diagnostics into one error, or returns nil.
func (l List) Err() error {
	errs := l.Errors()
	if len(errs) == 0 {
		return nil
	}
	out := make([]error, len(errs))
	for i, d := range errs {
		out[i] = d
	}
	return errors.Join(out...)
}

// Package format prints syntax trees back as canonically laid out source.
package format

import (
	"io"
	"strings"

	"github.com/Urethramancer/xdt99/ast"
	"github.com/Urethramancer/xdt99/grammar"
)

// Options controls the column layout. Columns are 0-based.
type Options struct {
	MnemonicColumn int
	OperandColumn  int
	CommentColumn  int
	// Upper prints mnemonics in upper case.
	Upper bool
}

// Default is the layout used by Source.
var Default = Options{MnemonicColumn: 7, OperandColumn: 12, CommentColumn: 30, Upper: true}

// Source formats t with the default layout.
func Source(t *ast.Tree) string {
	return Default.Format(t)
}

// Format returns the formatted source of t, one line per statement.
func (o Options) Format(t *ast.Tree) string {
	var b strings.Builder
	_ = o.Fprint(&b, t)
	return b.String()
}

// Fprint writes the formatted source of t to w.
func (o Options) Fprint(w io.Writer, t *ast.Tree) error {
	f := &formatter{opt: o, w: w}
	t.Accept(f)
	f.flush()
	return f.err
}

// formatter collects the fields of one statement at a time and writes
// the line once the next statement starts.
type formatter struct {
	ast.BaseVisitor
	opt Options
	w   io.Writer
	err error

	stmt     *ast.Statement
	verbatim bool
	label    string
	mnemonic string
	operands string
	comment  string
}

func (f *formatter) VisitStatement(s *ast.Statement) {
	f.flush()
	f.stmt = s
	// Lines the parser could not fully read and lines without code keep
	// their original text.
	f.verbatim = s.Partial || s.Empty()
}

func (f *formatter) VisitLabel(l *ast.Label) {
	f.label = l.Name
	if hasColon(f.stmt, l) {
		f.label += ":"
	}
}

// hasColon reports whether the label was written with a trailing colon.
func hasColon(s *ast.Statement, l *ast.Label) bool {
	for _, t := range s.Tokens {
		if t.Span.Start.Offset < l.Range.End.Offset || t.Kind.Trivia() {
			continue
		}
		return t.Is(":")
	}
	return false
}

func (f *formatter) VisitMnemonic(m *ast.Mnemonic) {
	f.mnemonic = m.Name
	if f.opt.Upper {
		f.mnemonic = strings.ToUpper(m.Name)
	}
}

func (f *formatter) VisitOperandList(l *ast.OperandList) {
	texts := make([]string, len(l.Operands))
	for i, op := range l.Operands {
		texts[i] = operandText(op)
	}
	f.operands = strings.Join(texts, ",")
}

func (f *formatter) VisitComment(c *ast.Comment) {
	f.comment = strings.TrimRight(c.Marker+c.Text, " \t")
}

func (f *formatter) flush() {
	if f.stmt == nil || f.err != nil {
		return
	}
	var line string
	if f.verbatim {
		line = strings.TrimRight(f.stmt.Text(), " \t\r")
	} else {
		line = f.layout()
	}
	_, f.err = io.WriteString(f.w, line+"\n")
	*f = formatter{opt: f.opt, w: f.w, err: f.err}
}

func (f *formatter) layout() string {
	var b strings.Builder
	b.WriteString(f.label)
	if f.mnemonic != "" {
		pad(&b, f.opt.MnemonicColumn)
		b.WriteString(f.mnemonic)
	}
	if f.operands != "" {
		pad(&b, f.opt.OperandColumn)
		b.WriteString(f.operands)
	}
	if f.comment != "" {
		pad(&b, f.opt.CommentColumn)
		b.WriteString(f.comment)
	}
	return b.String()
}

// pad moves to column col, or one space further when the line is already
// past it. A line still at column 0 stays there.
func pad(b *strings.Builder, col int) {
	n := b.Len()
	switch {
	case n < col:
		b.WriteString(strings.Repeat(" ", col-n))
	case n > 0:
		b.WriteByte(' ')
	}
}

// operandText is the operand as written, with whitespace dropped from
// classified operands and collapsed to single blanks in raw ones.
func operandText(op *ast.Operand) string {
	if op.Mode != grammar.ModeRaw {
		return op.Text
	}
	var b strings.Builder
	for i, t := range op.Tokens {
		if i > 0 && t.Span.Start.Offset > op.Tokens[i-1].Span.End.Offset {
			b.WriteByte(' ')
		}
		b.WriteString(t.Text)
	}
	return b.String()
}

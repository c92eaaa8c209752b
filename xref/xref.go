// Package xref builds a cross-reference table of the labels in a tree.
package xref

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/Urethramancer/xdt99/ast"
	"github.com/Urethramancer/xdt99/grammar"
)

// Symbol collects everything the tree says about one name.
type Symbol struct {
	Name string
	// Defs are the declarations in source order. More than one means a
	// duplicate label.
	Defs []*ast.Label
	// Refs are the operands naming the symbol, each listed once.
	Refs []*ast.Operand
	// Exported is set by DEF, External by REF or SREF.
	Exported bool
	External bool
}

// Defined reports whether the symbol is declared in this tree.
func (s *Symbol) Defined() bool {
	return len(s.Defs) > 0
}

// Table maps names to symbols.
type Table struct {
	symbols map[string]*Symbol
}

// Build walks t and collects declarations and references.
func Build(t *ast.Tree) *Table {
	b := &builder{table: &Table{symbols: make(map[string]*Symbol)}}
	t.Accept(b)
	return b.table
}

// Lookup returns the symbol called name.
func (t *Table) Lookup(name string) (*Symbol, bool) {
	s, ok := t.symbols[name]
	return s, ok
}

// Symbols returns all symbols sorted by name.
func (t *Table) Symbols() []*Symbol {
	return t.filter(func(*Symbol) bool { return true })
}

// Undefined returns referenced symbols that are neither declared nor
// external.
func (t *Table) Undefined() []*Symbol {
	return t.filter(func(s *Symbol) bool { return !s.Defined() && !s.External && len(s.Refs) > 0 })
}

// Unused returns declared labels nothing refers to and nothing exports.
func (t *Table) Unused() []*Symbol {
	return t.filter(func(s *Symbol) bool { return s.Defined() && len(s.Refs) == 0 && !s.Exported })
}

// Duplicates returns labels declared more than once.
func (t *Table) Duplicates() []*Symbol {
	return t.filter(func(s *Symbol) bool { return len(s.Defs) > 1 })
}

func (t *Table) filter(keep func(*Symbol) bool) []*Symbol {
	var out []*Symbol
	for _, s := range t.symbols {
		if keep(s) {
			out = append(out, s)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// Fprint writes the table as a listing. Each line holds the name, the
// flags D (exported), R (external) and U (undefined), the declaring lines
// and the referencing lines.
func (t *Table) Fprint(w io.Writer) error {
	syms := t.Symbols()
	width := 6
	for _, s := range syms {
		width = max(width, len(s.Name))
	}
	for _, s := range syms {
		flags := []byte("...")
		if s.Exported {
			flags[0] = 'D'
		}
		if s.External {
			flags[1] = 'R'
		}
		if !s.Defined() && !s.External {
			flags[2] = 'U'
		}
		_, err := fmt.Fprintf(w, "%-*s %s %-8s %s\n", width, s.Name, flags, lines(labelLines(s.Defs)), lines(operandLines(s.Refs)))
		if err != nil {
			return err
		}
	}
	return nil
}

func labelLines(defs []*ast.Label) []int {
	out := make([]int, len(defs))
	for i, d := range defs {
		out[i] = d.Span().Start.Line
	}
	return out
}

func operandLines(refs []*ast.Operand) []int {
	out := make([]int, len(refs))
	for i, r := range refs {
		out[i] = r.Span().Start.Line
	}
	return out
}

func lines(ns []int) string {
	if len(ns) == 0 {
		return "-"
	}
	var parts []string
	for i, n := range ns {
		if i > 0 && n == ns[i-1] {
			continue
		}
		parts = append(parts, fmt.Sprint(n))
	}
	return strings.Join(parts, ",")
}

// builder is the visitor filling a table.
type builder struct {
	ast.BaseVisitor
	table *Table
	// mark is the flag set by the current statement's directive, if any.
	mark func(*Symbol)
}

func (b *builder) symbol(name string) *Symbol {
	s, ok := b.table.symbols[name]
	if !ok {
		s = &Symbol{Name: name}
		b.table.symbols[name] = s
	}
	return s
}

func (b *builder) VisitStatement(*ast.Statement) {
	b.mark = nil
}

func (b *builder) VisitLabel(l *ast.Label) {
	s := b.symbol(l.Name)
	s.Defs = append(s.Defs, l)
}

func (b *builder) VisitMnemonic(m *ast.Mnemonic) {
	if !m.Known || !m.Entry.Directive {
		return
	}
	switch m.Entry.Name {
	case "DEF":
		b.mark = func(s *Symbol) { s.Exported = true }
	case "REF", "SREF":
		b.mark = func(s *Symbol) { s.External = true }
	}
}

func (b *builder) VisitOperand(op *ast.Operand) {
	if op.Mode == grammar.ModeRaw {
		return
	}
	seen := make(map[string]bool, len(op.Refs))
	for _, name := range op.Refs {
		if seen[name] {
			continue
		}
		seen[name] = true
		s := b.symbol(name)
		if b.mark != nil {
			b.mark(s)
			continue
		}
		s.Refs = append(s.Refs, op)
	}
}

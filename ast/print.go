package ast

import (
	"fmt"
	"io"
	"strings"
)

// printer writes one line per node, indented by depth.
type printer struct {
	w   io.Writer
	err error
}

func (p *printer) printf(n Node, format string, args ...any) {
	if p.err != nil {
		return
	}
	depth := 0
	for q := n.Parent(); q != nil; q = q.Parent() {
		depth++
	}
	line := strings.Repeat("  ", depth) + fmt.Sprintf(format, args...)
	_, p.err = fmt.Fprintf(p.w, "%s %s\n", line, n.Span())
}

func (p *printer) VisitNode(n Node) {
	p.printf(n, "%s", n.Kind())
}

func (p *printer) VisitStatement(s *Statement) {
	flag := ""
	if s.Partial {
		flag = " partial"
	}
	p.printf(s, "Statement #%d%s", s.Index, flag)
}

func (p *printer) VisitLabel(l *Label) {
	p.printf(l, "Label %q", l.Name)
}

func (p *printer) VisitMnemonic(m *Mnemonic) {
	if !m.Known {
		p.printf(m, "Mnemonic %q unknown", m.Name)
		return
	}
	p.printf(m, "Mnemonic %q >%04X", m.Name, m.Entry.Opcode)
}

func (p *printer) VisitOperandList(l *OperandList) {
	p.printf(l, "OperandList %s", l.Shape)
}

func (p *printer) VisitOperand(o *Operand) {
	var b strings.Builder
	fmt.Fprintf(&b, "Operand %s %q", o.Mode, o.Text)
	if o.Space != SpaceNone {
		fmt.Fprintf(&b, " space=%s", o.Space)
	}
	if o.Indirect {
		b.WriteString(" indirect")
	}
	if o.HasRegister {
		fmt.Fprintf(&b, " reg=%d", o.Register)
	}
	if o.HasValue {
		fmt.Fprintf(&b, " value=>%04X", o.Value)
	}
	if o.Label != "" {
		fmt.Fprintf(&b, " label=%s", o.Label)
	}
	p.printf(o, "%s", b.String())
}

func (p *printer) VisitComment(c *Comment) {
	p.printf(c, "Comment %s%q", c.Marker, c.Text)
}

// Fprint writes a structural dump of the tree to w.
func Fprint(w io.Writer, t *Tree) error {
	p := &printer{w: w}
	if _, err := fmt.Fprintf(w, "Tree %s %d statements\n", t.Dialect, len(t.Statements)); err != nil {
		return err
	}
	t.Accept(p)
	return p.err
}

// Dump returns the structural dump of the tree as a string.
func Dump(t *Tree) string {
	var b strings.Builder
	_ = Fprint(&b, t)
	return b.String()
}

// Equal reports whether two trees have the same structure, node data and spans.
func Equal(a, b *Tree) bool {
	if a == nil || b == nil {
		return a == b
	}
	return Dump(a) == Dump(b)
}

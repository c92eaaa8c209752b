package ast

import (
	"fmt"

	"github.com/Urethramancer/xdt99/grammar"
	"github.com/Urethramancer/xdt99/token"
)

// NodeKind identifies the type of a node.
type NodeKind int

const (
	// KindStatement is one logical source line.
	KindStatement NodeKind = iota
	// KindLabel is a label declaration.
	KindLabel
	// KindMnemonic is an instruction or directive name.
	KindMnemonic
	// KindOperandList holds a statement's operands.
	KindOperandList
	// KindOperand is one operand.
	KindOperand
	// KindComment is a trailing or full-line comment.
	KindComment
)

var nodeKindNames = [...]string{
	KindStatement:   "Statement",
	KindLabel:       "Label",
	KindMnemonic:    "Mnemonic",
	KindOperandList: "OperandList",
	KindOperand:     "Operand",
	KindComment:     "Comment",
}

func (k NodeKind) String() string {
	if k >= 0 && int(k) < len(nodeKindNames) {
		return nodeKindNames[k]
	}
	return fmt.Sprintf("NodeKind(%d)", int(k))
}

// Node is implemented by every tree node. The set of node types is closed.
type Node interface {
	Kind() NodeKind
	Span() token.Span
	// Parent is a navigation link only; nil for statements.
	Parent() Node
	Children() []Node
	Accept(v Visitor)
	setParent(Node)
}

type base struct {
	Range  token.Span
	parent Node
}

func (b *base) Span() token.Span { return b.Range }
func (b *base) Parent() Node     { return b.parent }
func (b *base) setParent(p Node) { b.parent = p }

// Statement is one logical line. Any part may be missing: an empty or
// comment-only line is a statement without label and mnemonic.
type Statement struct {
	base
	Label    *Label
	Mnemonic *Mnemonic
	Operands *OperandList
	Comment  *Comment
	// Partial is set when the line failed validation. The rest of the
	// line after the failure is only kept in Tokens.
	Partial bool
	// Tokens holds every token of the logical line, without the newline.
	Tokens []token.Token
	// Index is the statement's position in its tree.
	Index int
}

func (s *Statement) Kind() NodeKind   { return KindStatement }
func (s *Statement) Accept(v Visitor) { dispatch(s, v) }

// Children returns the present parts in source order.
func (s *Statement) Children() []Node {
	var out []Node
	if s.Label != nil {
		out = append(out, s.Label)
	}
	if s.Mnemonic != nil {
		out = append(out, s.Mnemonic)
	}
	if s.Operands != nil {
		out = append(out, s.Operands)
	}
	if s.Comment != nil {
		out = append(out, s.Comment)
	}
	return out
}

// Empty reports whether the statement has neither label nor mnemonic.
func (s *Statement) Empty() bool {
	return s.Label == nil && s.Mnemonic == nil
}

// Text returns the statement's source text.
func (s *Statement) Text() string {
	var n int
	for _, t := range s.Tokens {
		n += len(t.Text)
	}
	buf := make([]byte, 0, n)
	for _, t := range s.Tokens {
		buf = append(buf, t.Text...)
	}
	return string(buf)
}

// Label is a label declaration.
type Label struct {
	base
	Name string
}

func (l *Label) Kind() NodeKind   { return KindLabel }
func (l *Label) Children() []Node { return nil }
func (l *Label) Accept(v Visitor) { dispatch(l, v) }

// Mnemonic is an instruction or directive name as written in the source.
type Mnemonic struct {
	base
	Name string
	// Entry is the grammar entry; zero when Known is false.
	Entry grammar.Entry
	Known bool
}

func (m *Mnemonic) Kind() NodeKind   { return KindMnemonic }
func (m *Mnemonic) Children() []Node { return nil }
func (m *Mnemonic) Accept(v Visitor) { dispatch(m, v) }

// OperandList holds the operands of one statement, tagged with the shape
// they were validated against.
type OperandList struct {
	base
	Shape    grammar.Shape
	Operands []*Operand
}

func (l *OperandList) Kind() NodeKind   { return KindOperandList }
func (l *OperandList) Accept(v Visitor) { dispatch(l, v) }

func (l *OperandList) Children() []Node {
	out := make([]Node, len(l.Operands))
	for i, op := range l.Operands {
		out[i] = op
	}
	return out
}

// Len returns the number of operands.
func (l *OperandList) Len() int {
	if l == nil {
		return 0
	}
	return len(l.Operands)
}

// ReferencedLabels returns, in source order, the operands that refer to a
// label: symbolic operands, and indirect or indexed operands whose address
// names a symbol.
func (l *OperandList) ReferencedLabels() []*Operand {
	if l == nil {
		return nil
	}
	var out []*Operand
	for _, op := range l.Operands {
		if op.Label != "" && op.Mode.ImpliesLabel() {
			out = append(out, op)
		}
	}
	return out
}

// Space is the memory space a graphics operand addresses.
type Space int

const (
	// SpaceNone is used by operands without a memory prefix.
	SpaceNone Space = iota
	// SpaceCPU is CPU RAM, written @.
	SpaceCPU
	// SpaceVDP is video RAM, written V@ or V*.
	SpaceVDP
	// SpaceGROM is graphics ROM, written G@.
	SpaceGROM
)

func (s Space) String() string {
	switch s {
	case SpaceCPU:
		return "cpu"
	case SpaceVDP:
		return "vdp"
	case SpaceGROM:
		return "grom"
	default:
		return ""
	}
}

// Operand is one operand with its addressing kind.
type Operand struct {
	base
	Mode grammar.Mode
	// Text is the operand's source text with whitespace removed.
	Text string
	// Value holds a constant address or immediate when HasValue is set.
	Value    int
	HasValue bool
	// Register holds the register number when HasRegister is set.
	Register    int
	HasRegister bool
	// Label is the label this operand refers to, unresolved.
	Label string
	// Refs lists every symbol named in the operand, in order.
	Refs  []string
	Space Space
	// Indirect marks a graphics operand written with *.
	Indirect bool
	Tokens   []token.Token
}

func (o *Operand) Kind() NodeKind   { return KindOperand }
func (o *Operand) Children() []Node { return nil }
func (o *Operand) Accept(v Visitor) { dispatch(o, v) }

// Comment is a comment's text without its marker.
type Comment struct {
	base
	Text string
	// Marker is ";" or "*".
	Marker string
}

func (c *Comment) Kind() NodeKind   { return KindComment }
func (c *Comment) Children() []Node { return nil }
func (c *Comment) Accept(v Visitor) { dispatch(c, v) }

// Tree is the parse result of one source file. It owns all nodes.
type Tree struct {
	Dialect    grammar.Dialect
	Filename   string
	Source     string
	Statements []*Statement
}

// Append adds a statement, numbers it and links its children to it.
func (t *Tree) Append(s *Statement) {
	s.Index = len(t.Statements)
	t.Statements = append(t.Statements, s)
	Link(s)
}

// Link sets the parent links below n.
func Link(n Node) {
	for _, c := range n.Children() {
		c.setParent(n)
		Link(c)
	}
}

// Accept walks all statements in order with v.
func (t *Tree) Accept(v Visitor) {
	for _, s := range t.Statements {
		Walk(v, s)
	}
}

// StatementOf returns the statement containing n.
func StatementOf(n Node) *Statement {
	for n != nil {
		if s, ok := n.(*Statement); ok {
			return s
		}
		n = n.Parent()
	}
	return nil
}

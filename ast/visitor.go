package ast

// Visitor is the fallback every visitor implements. A visitor gains
// specific handling for a node type by also implementing the matching
// capability interface below; node types it does not handle are passed to
// VisitNode.
type Visitor interface {
	VisitNode(n Node)
}

// StatementVisitor handles statements.
type StatementVisitor interface {
	VisitStatement(s *Statement)
}

// LabelVisitor handles label declarations.
type LabelVisitor interface {
	VisitLabel(l *Label)
}

// MnemonicVisitor handles mnemonics.
type MnemonicVisitor interface {
	VisitMnemonic(m *Mnemonic)
}

// OperandListVisitor handles operand lists.
type OperandListVisitor interface {
	VisitOperandList(l *OperandList)
}

// OperandVisitor handles operands.
type OperandVisitor interface {
	VisitOperand(o *Operand)
}

// CommentVisitor handles comments.
type CommentVisitor interface {
	VisitComment(c *Comment)
}

// BaseVisitor ignores every node. Embed it to implement only the
// capability interfaces needed.
type BaseVisitor struct{}

// VisitNode does nothing.
func (BaseVisitor) VisitNode(Node) {}

func dispatch(n Node, v Visitor) {
	switch n := n.(type) {
	case *Statement:
		if sv, ok := v.(StatementVisitor); ok {
			sv.VisitStatement(n)
			return
		}
	case *Label:
		if lv, ok := v.(LabelVisitor); ok {
			lv.VisitLabel(n)
			return
		}
	case *Mnemonic:
		if mv, ok := v.(MnemonicVisitor); ok {
			mv.VisitMnemonic(n)
			return
		}
	case *OperandList:
		if lv, ok := v.(OperandListVisitor); ok {
			lv.VisitOperandList(n)
			return
		}
	case *Operand:
		if ov, ok := v.(OperandVisitor); ok {
			ov.VisitOperand(n)
			return
		}
	case *Comment:
		if cv, ok := v.(CommentVisitor); ok {
			cv.VisitComment(n)
			return
		}
	}
	v.VisitNode(n)
}

// Walk visits n and then its children, depth first in source order.
func Walk(v Visitor, n Node) {
	n.Accept(v)
	for _, c := range n.Children() {
		Walk(v, c)
	}
}

// Inspect calls f for n and its descendants in source order. Returning
// false from f skips the children of that node.
func Inspect(n Node, f func(Node) bool) {
	if !f(n) {
		return
	}
	for _, c := range n.Children() {
		Inspect(c, f)
	}
}

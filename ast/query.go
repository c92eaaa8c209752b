package ast

// Lookups here are recomputed by traversal on every call. The tree stores
// no links between a label and the operands naming it.

// Labels returns all label declarations in source order, duplicates included.
func (t *Tree) Labels() []*Label {
	var out []*Label
	for _, s := range t.Statements {
		if s.Label != nil {
			out = append(out, s.Label)
		}
	}
	return out
}

// FindLabel returns the first declaration of name, or nil.
func (t *Tree) FindLabel(name string) *Label {
	for _, s := range t.Statements {
		if s.Label != nil && s.Label.Name == name {
			return s.Label
		}
	}
	return nil
}

// ReferencesTo returns every operand referring to the label name.
func (t *Tree) ReferencesTo(name string) []*Operand {
	var out []*Operand
	for _, s := range t.Statements {
		for _, op := range s.Operands.ReferencedLabels() {
			if op.Label == name {
				out = append(out, op)
			}
		}
	}
	return out
}

// ReferencedLabels returns the label names referenced anywhere below n,
// in source order and without duplicates.
func ReferencedLabels(n Node) []string {
	seen := make(map[string]bool)
	var out []string
	Inspect(n, func(n Node) bool {
		if l, ok := n.(*OperandList); ok {
			for _, op := range l.ReferencedLabels() {
				if !seen[op.Label] {
					seen[op.Label] = true
					out = append(out, op.Label)
				}
			}
			return false
		}
		return true
	})
	return out
}

// StatementAt returns the statement whose span contains the byte offset,
// or nil.
func (t *Tree) StatementAt(offset int) *Statement {
	lo, hi := 0, len(t.Statements)
	for lo < hi {
		mid := (lo + hi) / 2
		s := t.Statements[mid]
		switch {
		case offset < s.Range.Start.Offset:
			hi = mid
		case offset >= s.Range.End.Offset:
			lo = mid + 1
		default:
			return s
		}
	}
	return nil
}

// NodeAt returns the innermost node whose span contains the byte offset,
// or nil.
func (t *Tree) NodeAt(offset int) Node {
	s := t.StatementAt(offset)
	if s == nil {
		return nil
	}
	var found Node = s
	Inspect(s, func(n Node) bool {
		if !n.Span().Contains(offset) {
			return false
		}
		found = n
		return true
	})
	return found
}

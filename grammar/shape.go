package grammar

import "fmt"

// Mode is the addressing kind of one operand.
type Mode int

const (
	// ModeRaw marks an operand that was kept unclassified.
	ModeRaw Mode = iota
	// ModeRegister is workspace register direct: R3.
	ModeRegister
	// ModeImmediate is a constant value: 5, >1000, 'A'.
	ModeImmediate
	// ModeIndexed is a symbolic address plus an index register: @TABLE(R2).
	ModeIndexed
	// ModeSymbolic is a bare symbol: LOOP.
	ModeSymbolic
	// ModeIndirect is a memory address or register indirect: @>8300, *R1.
	ModeIndirect
	// ModeAutoIncrement is register indirect with post increment: *R1+.
	ModeAutoIncrement
)

var modeNames = [...]string{
	ModeRaw:           "Raw",
	ModeRegister:      "Register",
	ModeImmediate:     "Immediate",
	ModeIndexed:       "Indexed",
	ModeSymbolic:      "Symbolic",
	ModeIndirect:      "Indirect",
	ModeAutoIncrement: "AutoIncrement",
}

func (m Mode) String() string {
	if m >= 0 && int(m) < len(modeNames) {
		return modeNames[m]
	}
	return fmt.Sprintf("Mode(%d)", int(m))
}

// ImpliesLabel reports whether an operand of this mode can carry a label reference.
func (m Mode) ImpliesLabel() bool {
	return m == ModeSymbolic || m == ModeIndexed || m == ModeIndirect
}

// Shape is the operand pattern a mnemonic requires.
type Shape int

const (
	// ShapeNone takes no operands.
	ShapeNone Shape = iota
	// ShapeI takes one general operand.
	ShapeI
	// ShapeII takes two general operands.
	ShapeII
	// ShapeImm takes a single immediate value.
	ShapeImm
	// ShapeJump takes a single jump target.
	ShapeJump
	// ShapeList is a directive's operand list, bounded by the entry.
	ShapeList
	// ShapeFV is the graphics format/variant form, bounded by the entry.
	ShapeFV
	// ShapeRaw is used for unknown mnemonics and rejected operand lists.
	ShapeRaw
)

var shapeNames = [...]string{
	ShapeNone: "none",
	ShapeI:    "I",
	ShapeII:   "II",
	ShapeImm:  "imm",
	ShapeJump: "jump",
	ShapeList: "list",
	ShapeFV:   "FV",
	ShapeRaw:  "raw",
}

func (s Shape) String() string {
	if s >= 0 && int(s) < len(shapeNames) {
		return shapeNames[s]
	}
	return fmt.Sprintf("Shape(%d)", int(s))
}

// Variable reports whether the operand count comes from the table entry
// rather than the shape itself.
func (s Shape) Variable() bool {
	return s == ShapeList || s == ShapeFV || s == ShapeRaw
}

// Arity returns the fixed operand count of s, or -1 for variable shapes.
func (s Shape) Arity() int {
	switch s {
	case ShapeNone:
		return 0
	case ShapeI, ShapeImm, ShapeJump:
		return 1
	case ShapeII:
		return 2
	default:
		return -1
	}
}

// Allows reports whether an operand of mode m may appear in a list of shape s.
func (s Shape) Allows(m Mode) bool {
	switch s {
	case ShapeNone:
		return false
	case ShapeRaw:
		return true
	case ShapeImm, ShapeJump:
		return m == ModeImmediate || m == ModeSymbolic
	default:
		return m != ModeRaw
	}
}

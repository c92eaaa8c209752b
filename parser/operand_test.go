package parser_test

import (
	"reflect"
	"testing"

	"github.com/Urethramancer/xdt99/ast"
	"github.com/Urethramancer/xdt99/grammar"
)

type operandCase struct {
	text     string
	mode     grammar.Mode
	register int // -1 when absent
	value    int // -1 when not constant
	label    string
	refs     []string
	space    ast.Space
	indirect bool
}

// checkOperand parses "<mnemonic> <text>,<second>" and compares the first operand.
func checkOperand(t *testing.T, d grammar.Dialect, mnemonic, second string, tc operandCase) {
	t.Helper()
	st, diags := parseOne(t, "       "+mnemonic+" "+tc.text+","+second, d)
	if len(diags) != 0 {
		t.Fatalf("%s: unexpected diagnostics: %v", tc.text, diags.Err())
	}
	op := st.Operands.Operands[0]
	if op.Text != tc.text {
		t.Errorf("%s: text %q", tc.text, op.Text)
	}
	if op.Mode != tc.mode {
		t.Errorf("%s: expected mode %s, got %s", tc.text, tc.mode, op.Mode)
	}
	switch {
	case tc.register < 0 && op.HasRegister:
		t.Errorf("%s: unexpected register %d", tc.text, op.Register)
	case tc.register >= 0 && (!op.HasRegister || op.Register != tc.register):
		t.Errorf("%s: expected register %d, got %d (%v)", tc.text, tc.register, op.Register, op.HasRegister)
	}
	switch {
	case tc.value < 0 && op.HasValue:
		t.Errorf("%s: unexpected value >%04X", tc.text, op.Value)
	case tc.value >= 0 && (!op.HasValue || op.Value != tc.value):
		t.Errorf("%s: expected value >%04X, got >%04X (%v)", tc.text, tc.value, op.Value, op.HasValue)
	}
	if op.Label != tc.label {
		t.Errorf("%s: expected label %q, got %q", tc.text, tc.label, op.Label)
	}
	if !reflect.DeepEqual(op.Refs, tc.refs) {
		t.Errorf("%s: expected refs %v, got %v", tc.text, tc.refs, op.Refs)
	}
	if op.Space != tc.space {
		t.Errorf("%s: expected space %q, got %q", tc.text, tc.space, op.Space)
	}
	if op.Indirect != tc.indirect {
		t.Errorf("%s: indirect = %v", tc.text, op.Indirect)
	}
}

func TestGeneralOperands(t *testing.T) {
	tests := []operandCase{
		{text: "R3", mode: grammar.ModeRegister, register: 3, value: -1},
		{text: "r15", mode: grammar.ModeRegister, register: 15, value: -1},
		{text: "*R4", mode: grammar.ModeIndirect, register: 4, value: -1},
		{text: "*R5+", mode: grammar.ModeAutoIncrement, register: 5, value: -1},
		{text: "@>8300", mode: grammar.ModeIndirect, register: -1, value: 0x8300},
		{text: "@TABLE", mode: grammar.ModeIndirect, register: -1, value: -1, label: "TABLE", refs: []string{"TABLE"}},
		{text: "@TABLE+2", mode: grammar.ModeIndirect, register: -1, value: -1, label: "TABLE", refs: []string{"TABLE"}},
		{text: "@TABLE(R2)", mode: grammar.ModeIndexed, register: 2, value: -1, label: "TABLE", refs: []string{"TABLE"}},
		{text: "@(BASE+4)(R1)", mode: grammar.ModeIndexed, register: 1, value: -1, label: "BASE", refs: []string{"BASE"}},
		{text: "@2(R9)", mode: grammar.ModeIndexed, register: 9, value: 2},
		{text: "LOOP", mode: grammar.ModeSymbolic, register: -1, value: -1, label: "LOOP", refs: []string{"LOOP"}},
		{text: "END-START", mode: grammar.ModeSymbolic, register: -1, value: -1, label: "END", refs: []string{"END", "START"}},
		{text: ">1000", mode: grammar.ModeImmediate, register: -1, value: 0x1000},
		{text: "-1", mode: grammar.ModeImmediate, register: -1, value: 0xFFFF},
		{text: "~>00FF", mode: grammar.ModeImmediate, register: -1, value: 0xFF00},
		{text: ":101", mode: grammar.ModeImmediate, register: -1, value: 5},
		{text: "'AB'", mode: grammar.ModeImmediate, register: -1, value: 0x4142},
		{text: "'A'", mode: grammar.ModeImmediate, register: -1, value: 0x41},
		{text: "''''", mode: grammar.ModeImmediate, register: -1, value: 0x27},
		{text: "2+3*4", mode: grammar.ModeImmediate, register: -1, value: 20},
		{text: "2+(3*4)", mode: grammar.ModeImmediate, register: -1, value: 14},
		{text: ">FFFF+2", mode: grammar.ModeImmediate, register: -1, value: 1},
		{text: "7/0", mode: grammar.ModeImmediate, register: -1, value: -1},
		{text: "$", mode: grammar.ModeImmediate, register: -1, value: -1},
		{text: "$+4", mode: grammar.ModeImmediate, register: -1, value: -1},
	}
	for _, tc := range tests {
		checkOperand(t, grammar.General, "MOV", "R0", tc)
	}
}

func TestGraphicsOperands(t *testing.T) {
	tests := []operandCase{
		{text: "V@>0300", mode: grammar.ModeIndirect, register: -1, value: 0x300, space: ast.SpaceVDP},
		{text: "v@SCR", mode: grammar.ModeIndirect, register: -1, value: -1, label: "SCR", refs: []string{"SCR"}, space: ast.SpaceVDP},
		{text: "G@TAB", mode: grammar.ModeIndirect, register: -1, value: -1, label: "TAB", refs: []string{"TAB"}, space: ast.SpaceGROM},
		{text: "@>8300", mode: grammar.ModeIndirect, register: -1, value: 0x8300, space: ast.SpaceCPU},
		{text: "@>8300(@>8302)", mode: grammar.ModeIndexed, register: -1, value: 0x8300, space: ast.SpaceCPU},
		{text: "V@BUF(@IDX)", mode: grammar.ModeIndexed, register: -1, value: -1, label: "BUF", refs: []string{"BUF", "IDX"}, space: ast.SpaceVDP},
		{text: "*PTR", mode: grammar.ModeIndirect, register: -1, value: -1, label: "PTR", refs: []string{"PTR"}, space: ast.SpaceCPU, indirect: true},
		{text: "V*PTR", mode: grammar.ModeIndirect, register: -1, value: -1, label: "PTR", refs: []string{"PTR"}, space: ast.SpaceVDP, indirect: true},
		{text: "#1", mode: grammar.ModeRegister, register: 1, value: -1},
		{text: ">20", mode: grammar.ModeImmediate, register: -1, value: 0x20},
		{text: "LABEL", mode: grammar.ModeSymbolic, register: -1, value: -1, label: "LABEL", refs: []string{"LABEL"}},
		{text: "R1", mode: grammar.ModeSymbolic, register: -1, value: -1, label: "R1", refs: []string{"R1"}},
	}
	for _, tc := range tests {
		checkOperand(t, grammar.Graphics, "ST", "@>8300", tc)
	}
}

func TestSpaceNeedsAdjacentPrefix(t *testing.T) {
	// "V @X" is a symbol followed by an address, not a VDP operand.
	_, diags := parseOne(t, "       ST   V @X,1", grammar.Graphics)
	if len(diags) != 1 {
		t.Fatalf("expected one diagnostic, got %v", diags)
	}
}

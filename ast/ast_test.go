package ast_test

import (
	"fmt"
	"reflect"
	"strings"
	"testing"

	"github.com/hexops/gotextdiff"
	"github.com/hexops/gotextdiff/myers"
	"github.com/hexops/gotextdiff/span"

	"github.com/Urethramancer/xdt99/ast"
	"github.com/Urethramancer/xdt99/grammar"
	"github.com/Urethramancer/xdt99/parser"
)

const source = `START  LI   R0,>1000  ; load
LOOP   MOV  @TAB(R1),@DEST
       JNE  LOOP
       B    *R11`

func parse(t *testing.T, src string) *ast.Tree {
	t.Helper()
	tree, diags := parser.Parse(src, grammar.General)
	if diags.HasErrors() {
		t.Fatalf("unexpected errors: %v", diags.Err())
	}
	return tree
}

func diff(want, got string) string {
	edits := myers.ComputeEdits(span.URIFromPath("dump"), want, got)
	return fmt.Sprint(gotextdiff.ToUnified("want", "got", want, edits))
}

// recorder handles labels and operands and lets everything else fall back.
type recorder struct {
	events []string
}

func (r *recorder) VisitNode(n ast.Node) {
	r.events = append(r.events, "node:"+n.Kind().String())
}

func (r *recorder) VisitLabel(l *ast.Label) {
	r.events = append(r.events, "label:"+l.Name)
}

func (r *recorder) VisitOperand(o *ast.Operand) {
	r.events = append(r.events, "operand:"+o.Text)
}

func TestVisitorFallback(t *testing.T) {
	tree := parse(t, "START  LI   R0,>1000  ; load")
	r := &recorder{}
	tree.Accept(r)
	want := []string{
		"node:Statement",
		"label:START",
		"node:Mnemonic",
		"node:OperandList",
		"operand:R0",
		"operand:>1000",
		"node:Comment",
	}
	if !reflect.DeepEqual(r.events, want) {
		t.Errorf("expected %v, got %v", want, r.events)
	}
}

// counter only embeds the no-op base visitor and counts statements.
type counter struct {
	ast.BaseVisitor
	statements int
}

func (c *counter) VisitStatement(*ast.Statement) { c.statements++ }

func TestBaseVisitor(t *testing.T) {
	tree := parse(t, source)
	c := &counter{}
	tree.Accept(c)
	if c.statements != 4 {
		t.Errorf("expected 4 statements, got %d", c.statements)
	}
}

func TestParentsAndChildren(t *testing.T) {
	tree := parse(t, source)
	for _, st := range tree.Statements {
		if st.Parent() != nil {
			t.Errorf("statement %d has a parent", st.Index)
		}
		ast.Inspect(st, func(n ast.Node) bool {
			for _, c := range n.Children() {
				if c.Parent() != n {
					t.Errorf("%s under %s has the wrong parent", c.Kind(), n.Kind())
				}
				if !st.Span().Contains(c.Span().Start.Offset) {
					t.Errorf("%s %s outside statement %s", c.Kind(), c.Span(), st.Span())
				}
			}
			if ast.StatementOf(n) != st {
				t.Errorf("%s does not lead back to its statement", n.Kind())
			}
			return true
		})
	}
}

func TestInspectPrune(t *testing.T) {
	tree := parse(t, source)
	var kinds []ast.NodeKind
	ast.Inspect(tree.Statements[1], func(n ast.Node) bool {
		kinds = append(kinds, n.Kind())
		return n.Kind() != ast.KindOperandList
	})
	want := []ast.NodeKind{ast.KindStatement, ast.KindLabel, ast.KindMnemonic, ast.KindOperandList}
	if !reflect.DeepEqual(kinds, want) {
		t.Errorf("expected %v, got %v", want, kinds)
	}
}

func TestReferencedLabels(t *testing.T) {
	tree := parse(t, source)
	tests := []struct {
		index int
		want  []string
	}{
		{0, nil},
		{1, []string{"TAB", "DEST"}},
		{2, []string{"LOOP"}},
		{3, nil},
	}
	for _, tc := range tests {
		var got []string
		for _, op := range tree.Statements[tc.index].Operands.ReferencedLabels() {
			got = append(got, op.Label)
		}
		if !reflect.DeepEqual(got, tc.want) {
			t.Errorf("statement %d: expected %v, got %v", tc.index, tc.want, got)
		}
	}

	var all []string
	for _, st := range tree.Statements {
		all = append(all, ast.ReferencedLabels(st)...)
	}
	if want := []string{"TAB", "DEST", "LOOP"}; !reflect.DeepEqual(all, want) {
		t.Errorf("expected %v, got %v", want, all)
	}
	var nilList *ast.OperandList
	if nilList.ReferencedLabels() != nil || nilList.Len() != 0 {
		t.Errorf("nil operand list should be empty")
	}
}

func TestQueries(t *testing.T) {
	tree := parse(t, source)
	if n := len(tree.Labels()); n != 2 {
		t.Errorf("expected 2 labels, got %d", n)
	}
	loop := tree.FindLabel("LOOP")
	if loop == nil || ast.StatementOf(loop).Index != 1 {
		t.Fatalf("LOOP not found on statement 1")
	}
	if tree.FindLabel("DEST") != nil {
		t.Errorf("DEST is never declared")
	}
	if refs := tree.ReferencesTo("LOOP"); len(refs) != 1 || ast.StatementOf(refs[0]).Index != 2 {
		t.Errorf("expected one reference to LOOP on statement 2")
	}

	offset := strings.Index(source, "@DEST")
	n := tree.NodeAt(offset)
	op, ok := n.(*ast.Operand)
	if !ok || op.Text != "@DEST" {
		t.Fatalf("expected operand @DEST at %d, got %v", offset, n)
	}
	if st := tree.StatementAt(offset); st == nil || st.Index != 1 {
		t.Errorf("wrong statement at %d", offset)
	}
	if tree.StatementAt(len(source)+10) != nil || tree.NodeAt(-1) != nil {
		t.Errorf("offsets outside the source should find nothing")
	}
}

func TestDump(t *testing.T) {
	tree := parse(t, "START  LI   R0,>1000  ; load\n       JMP  START")
	want := `Tree general 2 statements
Statement #0 1:1-1:29
  Label "START" 1:1-1:6
  Mnemonic "LI" >0200 1:8-1:10
  OperandList II 1:13-1:21
    Operand Register "R0" reg=0 1:13-1:15
    Operand Immediate ">1000" value=>1000 1:16-1:21
  Comment ;" load" 1:23-1:29
Statement #1 2:1-2:18
  Mnemonic "JMP" >1000 2:8-2:11
  OperandList jump 2:13-2:18
    Operand Symbolic "START" label=START 2:13-2:18
`
	if got := ast.Dump(tree); got != want {
		t.Errorf("unexpected dump:\n%s", diff(want, got))
	}
	if !ast.Equal(tree, parse(t, "START  LI   R0,>1000  ; load\n       JMP  START")) {
		t.Errorf("equal sources should give equal trees")
	}
	if ast.Equal(tree, parse(t, "START  LI   R0,>1001  ; load\n       JMP  START")) {
		t.Errorf("different values should give different trees")
	}
}

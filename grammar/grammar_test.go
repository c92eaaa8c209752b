package grammar

import (
	"sort"
	"testing"
)

func TestLookup(t *testing.T) {
	tests := []struct {
		name    string
		dialect Dialect
		ok      bool
		shape   Shape
		opcode  uint16
	}{
		{"LI", General, true, ShapeII, OPLI},
		{"li", General, true, ShapeII, OPLI},
		{"Mov", General, true, ShapeII, OPMOV},
		{"JNE", General, true, ShapeJump, OPJNE},
		{"LWPI", General, true, ShapeImm, OPLWPI},
		{"RT", General, true, ShapeNone, OPRT},
		{"CLR", General, true, ShapeI, OPCLR},
		{"DATA", General, true, ShapeList, 0},
		{"MOVE", General, false, 0, 0},
		{"MOVE", Graphics, true, ShapeFV, GPLMOVE},
		{"DST", Graphics, true, ShapeII, GPLST + 1},
		{"DINCT", Graphics, true, ShapeI, GPLINCT + 1},
		{"HTEXT", Graphics, true, ShapeFV, FMTHTEX},
		{"BLKG", Graphics, true, ShapeFV, 0},
		{"DATA", Graphics, true, ShapeList, 0},
		{"LI", Graphics, false, 0, 0},
		{"DEF", Graphics, false, 0, 0},
		{"NOPE", General, false, 0, 0},
		{"LI", Dialect(7), false, 0, 0},
	}
	for _, tc := range tests {
		e, ok := Lookup(tc.name, tc.dialect)
		if ok != tc.ok {
			t.Errorf("%s/%s: found = %v", tc.name, tc.dialect, ok)
			continue
		}
		if !ok {
			continue
		}
		if e.Shape != tc.shape || e.Opcode != tc.opcode {
			t.Errorf("%s/%s: expected %s >%04X, got %s >%04X", tc.name, tc.dialect, tc.shape, tc.opcode, e.Shape, e.Opcode)
		}
	}
}

func TestTables(t *testing.T) {
	for _, d := range []Dialect{General, Graphics} {
		names := Mnemonics(d)
		if len(names) == 0 {
			t.Fatalf("%s: empty table", d)
		}
		if !sort.StringsAreSorted(names) {
			t.Errorf("%s: mnemonics not sorted", d)
		}
		for _, name := range names {
			e, ok := Lookup(name, d)
			if !ok || e.Name != name {
				t.Errorf("%s: %s does not look up to itself", d, name)
				continue
			}
			min, max := e.Bounds()
			if min < 0 || (max != Unbounded && max < min) {
				t.Errorf("%s: %s has bounds %d..%d", d, name, min, max)
			}
			if e.Directive && e.Shape != ShapeList {
				t.Errorf("%s: directive %s has shape %s", d, name, e.Shape)
			}
			if e.Shape == ShapeRaw {
				t.Errorf("%s: %s uses the raw shape", d, name)
			}
		}
	}
	if Mnemonics(Dialect(9)) != nil {
		t.Errorf("unknown dialect should have no mnemonics")
	}
}

func TestAccepts(t *testing.T) {
	blkg, _ := Lookup("BLKG", Graphics)
	rand, _ := Lookup("RAND", Graphics)
	li, _ := Lookup("LI", General)
	tests := []struct {
		e    Entry
		n    int
		want bool
	}{
		{li, 2, true},
		{li, 1, false},
		{li, 3, false},
		{blkg, 0, false},
		{blkg, 1, true},
		{blkg, 40, true},
		{rand, 0, true},
		{rand, 1, true},
		{rand, 2, false},
	}
	for _, tc := range tests {
		if got := tc.e.Accepts(tc.n); got != tc.want {
			t.Errorf("%s accepts %d = %v", tc.e.Name, tc.n, got)
		}
	}
}

func TestShapeAllows(t *testing.T) {
	all := []Mode{ModeRaw, ModeRegister, ModeImmediate, ModeIndexed, ModeSymbolic, ModeIndirect, ModeAutoIncrement}
	want := map[Shape][]Mode{
		ShapeNone: nil,
		ShapeI:    all[1:],
		ShapeII:   all[1:],
		ShapeImm:  {ModeImmediate, ModeSymbolic},
		ShapeJump: {ModeImmediate, ModeSymbolic},
		ShapeList: all[1:],
		ShapeFV:   all[1:],
		ShapeRaw:  all,
	}
	for shape, allowed := range want {
		set := make(map[Mode]bool)
		for _, m := range allowed {
			set[m] = true
		}
		for _, m := range all {
			if got := shape.Allows(m); got != set[m] {
				t.Errorf("%s allows %s = %v", shape, m, got)
			}
		}
	}
}

func TestImpliesLabel(t *testing.T) {
	for m, want := range map[Mode]bool{
		ModeRaw: false, ModeRegister: false, ModeImmediate: false, ModeAutoIncrement: false,
		ModeSymbolic: true, ModeIndexed: true, ModeIndirect: true,
	} {
		if got := m.ImpliesLabel(); got != want {
			t.Errorf("%s implies label = %v", m, got)
		}
	}
}

func TestParseDialect(t *testing.T) {
	for name, want := range map[string]Dialect{
		"general": General, "XAS99": General, " a99 ": General,
		"graphics": Graphics, "xga99": Graphics, "GPL": Graphics,
	} {
		d, err := ParseDialect(name)
		if err != nil || d != want {
			t.Errorf("%q: got %s, %v", name, d, err)
		}
	}
	if _, err := ParseDialect("6502"); err == nil {
		t.Errorf("expected an error")
	}
	if DialectForFile("demo.GPL") != Graphics || DialectForFile("demo.a99") != General || DialectForFile("noext") != General {
		t.Errorf("wrong dialect from file extension")
	}
}

func TestCommentStyle(t *testing.T) {
	for _, d := range []Dialect{General, Graphics} {
		c := CommentStyleFor(d)
		if c.LinePrefix != ";" {
			t.Errorf("%s: line prefix %q", d, c.LinePrefix)
		}
		if c.HasBlockComment() || c.CommentedBlockCommentPrefix != "" || c.CommentedBlockCommentSuffix != "" {
			t.Errorf("%s: unexpected block comment %+v", d, c)
		}
	}
}

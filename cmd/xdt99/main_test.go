package main

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/Urethramancer/xdt99/grammar"
)

func writeFile(t *testing.T, dir, name, src string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(src), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestDialectFor(t *testing.T) {
	tests := []struct {
		option, file string
		want         grammar.Dialect
	}{
		{"auto", "demo.a99", grammar.General},
		{"auto", "demo.gpl", grammar.Graphics},
		{"", "DEMO.G99", grammar.Graphics},
		{"xga99", "demo.a99", grammar.Graphics},
		{"general", "demo.gpl", grammar.General},
	}
	for _, tc := range tests {
		got, err := dialectFor(tc.option, tc.file)
		if err != nil {
			t.Errorf("%s/%s: %v", tc.option, tc.file, err)
			continue
		}
		if got != tc.want {
			t.Errorf("%s/%s: expected %s, got %s", tc.option, tc.file, tc.want, got)
		}
	}
	if _, err := dialectFor("z80", "demo.a99"); err == nil {
		t.Errorf("expected an error for an unknown dialect")
	}
}

func TestCheck(t *testing.T) {
	dir := t.TempDir()
	good := writeFile(t, dir, "good.a99", "START  LI   R0,1\n       JMP  START\n")
	bad := writeFile(t, dir, "bad.a99", "       MOV  R1\n")
	gpl := writeFile(t, dir, "demo.gpl", "       MOVE 1,G@TAB,V@>0300\n")
	missing := filepath.Join(dir, "missing.a99")

	results, err := check(config{dialect: "auto", files: []string{good, bad, gpl, missing}})
	if err != nil {
		t.Fatal(err)
	}
	if len(results) != 4 {
		t.Fatalf("expected 4 results, got %d", len(results))
	}
	for i, name := range []string{good, bad, gpl, missing} {
		if results[i].name != name {
			t.Errorf("result %d is %s, expected %s", i, results[i].name, name)
		}
	}

	if r := results[0]; r.err != nil || r.diags.HasErrors() || len(r.tree.Statements) != 2 {
		t.Errorf("good.a99: err=%v diags=%v", r.err, r.diags)
	}
	if r := results[1]; r.err != nil || !r.diags.HasErrors() || r.diags[0].File != bad {
		t.Errorf("bad.a99: expected an error diagnostic, got %v", r.diags)
	}
	if r := results[2]; r.err != nil || r.tree.Dialect != grammar.Graphics || len(r.diags) != 0 {
		t.Errorf("demo.gpl: dialect %v, diags %v", r.tree.Dialect, r.diags)
	}
	if results[3].err == nil {
		t.Errorf("missing file should fail")
	}

	if !report(config{}, results[0]) {
		t.Errorf("good.a99 should pass")
	}
	if report(config{}, results[1]) || report(config{}, results[3]) {
		t.Errorf("bad.a99 and missing.a99 should fail")
	}
}

func TestComplete(t *testing.T) {
	if got := complete("LOOP   LW", grammar.General); !reflect.DeepEqual(got, []string{"LOOP   LWP", "LOOP   LWPI"}) {
		t.Errorf("unexpected completions %v", got)
	}
	if got := complete("mov", grammar.General); !reflect.DeepEqual(got, []string{"MOV", "MOVB"}) {
		t.Errorf("unexpected completions %v", got)
	}
	if got := complete("  ", grammar.General); got != nil {
		t.Errorf("expected no completions, got %v", got)
	}
}

package grammar

import (
	"sort"
	"strings"
)

// Unbounded is the Max of an entry that accepts any number of operands.
const Unbounded = -1

// Entry describes one mnemonic of a dialect.
type Entry struct {
	Name  string
	Shape Shape
	// Min and Max bound the operand count of variable shapes.
	Min, Max int
	// Opcode is the base instruction word; zero for directives.
	Opcode uint16
	// Format is the CPU instruction format number (1-9 for TMS9900), 0 if none.
	Format    int
	Directive bool
}

// Bounds returns the accepted operand count range. max is Unbounded
// when there is no upper limit.
func (e Entry) Bounds() (min, max int) {
	if n := e.Shape.Arity(); n >= 0 {
		return n, n
	}
	return e.Min, e.Max
}

// Accepts reports whether n operands satisfy the entry's arity.
func (e Entry) Accepts(n int) bool {
	min, max := e.Bounds()
	return n >= min && (max == Unbounded || n <= max)
}

type dialectMask uint8

const (
	inGeneral  dialectMask = 1 << General
	inGraphics dialectMask = 1 << Graphics
	inBoth                 = inGeneral | inGraphics
)

type tableEntry struct {
	Entry
	dialects dialectMask
}

// instr declares an instruction with a fixed shape.
func instr(name string, shape Shape, opcode uint16, format int) tableEntry {
	return tableEntry{Entry: Entry{Name: name, Shape: shape, Opcode: opcode, Format: format}}
}

// variant declares a graphics format/variant instruction.
func variant(name string, opcode uint16, min, max int) tableEntry {
	return tableEntry{Entry: Entry{Name: name, Shape: ShapeFV, Opcode: opcode, Min: min, Max: max}}
}

// directive declares an assembler directive.
func directive(name string, min, max int, dialects dialectMask) tableEntry {
	return tableEntry{
		Entry:    Entry{Name: name, Shape: ShapeList, Min: min, Max: max, Directive: true},
		dialects: dialects,
	}
}

func only(d dialectMask, entries []tableEntry) []tableEntry {
	for i := range entries {
		entries[i].dialects = d
	}
	return entries
}

// tables holds one read-only mnemonic map per dialect, keyed by upper case name.
var tables [2]map[string]Entry

func init() {
	tables[General] = make(map[string]Entry)
	tables[Graphics] = make(map[string]Entry)
	all := [][]tableEntry{
		only(inGeneral, cpuInstructions()),
		only(inGraphics, gplInstructions()),
		only(inGraphics, fmtVerbs()),
		directives(),
	}
	for _, group := range all {
		for _, te := range group {
			for _, d := range []Dialect{General, Graphics} {
				if te.dialects&(1<<d) != 0 {
					tables[d][te.Name] = te.Entry
				}
			}
		}
	}
}

// Lookup returns the table entry for a mnemonic in dialect d.
// Names are matched case-insensitively.
func Lookup(name string, d Dialect) (Entry, bool) {
	if d != General && d != Graphics {
		return Entry{}, false
	}
	e, ok := tables[d][strings.ToUpper(name)]
	return e, ok
}

// IsMnemonic reports whether name is known in dialect d.
func IsMnemonic(name string, d Dialect) bool {
	_, ok := Lookup(name, d)
	return ok
}

// Mnemonics lists all names known in dialect d, sorted.
func Mnemonics(d Dialect) []string {
	if d != General && d != Graphics {
		return nil
	}
	names := make([]string, 0, len(tables[d]))
	for name := range tables[d] {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

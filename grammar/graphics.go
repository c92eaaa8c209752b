package grammar

// GPL opcodes. Word variants of single and dual operand instructions are
// the byte opcode plus one and carry a D prefix.
const (
	GPLRTN   = 0x00
	GPLRTNC  = 0x01
	GPLRAND  = 0x02
	GPLSCAN  = 0x03
	GPLBACK  = 0x04
	GPLB     = 0x05
	GPLCALL  = 0x06
	GPLALL   = 0x07
	GPLFMT   = 0x08
	GPLH     = 0x09
	GPLGT    = 0x0A
	GPLEXIT  = 0x0B
	GPLCARRY = 0x0C
	GPLOVF   = 0x0D
	GPLPARSE = 0x0E
	GPLXML   = 0x0F
	GPLCONT  = 0x10
	GPLEXEC  = 0x11
	GPLRTNB  = 0x12
	GPLRTGR  = 0x13
	GPLXGPL  = 0x1C
	GPLMOVE  = 0x20
	GPLBR    = 0x40
	GPLBS    = 0x60

	// single operand
	GPLABS   = 0x80
	GPLNEG   = 0x82
	GPLINV   = 0x84
	GPLCLR   = 0x86
	GPLFETCH = 0x88
	GPLCASE  = 0x8A
	GPLPUSH  = 0x8C
	GPLCZ    = 0x8E
	GPLINC   = 0x90
	GPLDEC   = 0x92
	GPLINCT  = 0x94
	GPLDECT  = 0x96

	// dual operand
	GPLADD   = 0xA0
	GPLSUB   = 0xA4
	GPLMUL   = 0xA8
	GPLDIV   = 0xAC
	GPLAND   = 0xB0
	GPLOR    = 0xB4
	GPLXOR   = 0xB8
	GPLST    = 0xBC
	GPLEX    = 0xC0
	GPLCH    = 0xC4
	GPLCHE   = 0xC8
	GPLCGT   = 0xCC
	GPLCGE   = 0xD0
	GPLCEQ   = 0xD4
	GPLCLOG  = 0xD8
	GPLSRA   = 0xDC
	GPLSLL   = 0xE0
	GPLSRL   = 0xE4
	GPLSRC   = 0xE8
	GPLCOINC = 0xED
	GPLIO    = 0xF4
	GPLSWGR  = 0xF8
)

// FMT sub-language opcodes. The low five bits carry a count.
const (
	FMTHTEX = 0x00
	FMTVTEX = 0x20
	FMTHCHA = 0x40
	FMTVCHA = 0x60
	FMTCOL  = 0x80
	FMTROW  = 0xA0
	FMTRPTB = 0xC0
	FMTHSTR = 0xE0
	FMTFEND = 0xFB
	FMTSCRO = 0xFC
	FMTBIAS = 0xFD
	FMTROWC = 0xFE
	FMTCOLC = 0xFF
)

func gplInstructions() []tableEntry {
	entries := []tableEntry{
		instr("RTN", ShapeNone, GPLRTN, 0),
		instr("RTNC", ShapeNone, GPLRTNC, 0),
		variant("RAND", GPLRAND, 0, 1),
		instr("SCAN", ShapeNone, GPLSCAN, 0),
		instr("BACK", ShapeImm, GPLBACK, 0),
		instr("B", ShapeJump, GPLB, 0),
		instr("CALL", ShapeJump, GPLCALL, 0),
		instr("ALL", ShapeImm, GPLALL, 0),
		variant("FMT", GPLFMT, 0, 1),
		instr("H", ShapeNone, GPLH, 0),
		instr("GT", ShapeNone, GPLGT, 0),
		instr("EXIT", ShapeNone, GPLEXIT, 0),
		instr("CARRY", ShapeNone, GPLCARRY, 0),
		instr("OVF", ShapeNone, GPLOVF, 0),
		instr("PARSE", ShapeImm, GPLPARSE, 0),
		instr("XML", ShapeImm, GPLXML, 0),
		instr("CONT", ShapeNone, GPLCONT, 0),
		instr("EXEC", ShapeNone, GPLEXEC, 0),
		instr("RTNB", ShapeNone, GPLRTNB, 0),
		instr("RTGR", ShapeNone, GPLRTGR, 0),
		instr("XGPL", ShapeNone, GPLXGPL, 0),
		variant("MOVE", GPLMOVE, 3, 3),
		instr("BR", ShapeJump, GPLBR, 0),
		instr("BS", ShapeJump, GPLBS, 0),
		variant("COINC", GPLCOINC, 4, 4),
		variant("IO", GPLIO, 2, 2),
		instr("SWGR", ShapeII, GPLSWGR, 0),
		variant("BLKG", 0, 1, Unbounded),
	}

	singles := []struct {
		name   string
		opcode uint16
	}{
		{"ABS", GPLABS}, {"NEG", GPLNEG}, {"INV", GPLINV}, {"CLR", GPLCLR},
		{"FETCH", GPLFETCH}, {"CASE", GPLCASE}, {"PUSH", GPLPUSH}, {"CZ", GPLCZ},
		{"INC", GPLINC}, {"DEC", GPLDEC}, {"INCT", GPLINCT}, {"DECT", GPLDECT},
	}
	for _, s := range singles {
		entries = append(entries,
			instr(s.name, ShapeI, s.opcode, 0),
			instr("D"+s.name, ShapeI, s.opcode+1, 0))
	}

	duals := []struct {
		name   string
		opcode uint16
	}{
		{"ADD", GPLADD}, {"SUB", GPLSUB}, {"MUL", GPLMUL}, {"DIV", GPLDIV},
		{"AND", GPLAND}, {"OR", GPLOR}, {"XOR", GPLXOR}, {"ST", GPLST},
		{"EX", GPLEX}, {"CH", GPLCH}, {"CHE", GPLCHE}, {"CGT", GPLCGT},
		{"CGE", GPLCGE}, {"CEQ", GPLCEQ}, {"CLOG", GPLCLOG}, {"SRA", GPLSRA},
		{"SLL", GPLSLL}, {"SRL", GPLSRL}, {"SRC", GPLSRC},
	}
	for _, d := range duals {
		entries = append(entries,
			instr(d.name, ShapeII, d.opcode, 0),
			instr("D"+d.name, ShapeII, d.opcode+1, 0))
	}
	return entries
}

// fmtVerbs lists the screen format verbs used between FMT and FEND.
func fmtVerbs() []tableEntry {
	return []tableEntry{
		variant("HTEX", FMTHTEX, 1, Unbounded),
		variant("HTEXT", FMTHTEX, 1, Unbounded),
		variant("VTEX", FMTVTEX, 1, Unbounded),
		variant("VTEXT", FMTVTEX, 1, Unbounded),
		variant("HCHA", FMTHCHA, 2, 2),
		variant("HCHAR", FMTHCHA, 2, 2),
		variant("VCHA", FMTVCHA, 2, 2),
		variant("VCHAR", FMTVCHA, 2, 2),
		variant("COL", FMTCOL, 1, 1),
		variant("ROW", FMTROW, 1, 1),
		variant("RPTB", FMTRPTB, 1, 1),
		variant("HSTR", FMTHSTR, 2, 2),
		variant("HMOVE", FMTHSTR, 2, 2),
		variant("FEND", FMTFEND, 0, 1),
		variant("SCRO", FMTSCRO, 1, 1),
		variant("BIAS", FMTBIAS, 1, 1),
		variant("XROW", FMTROWC, 1, 1),
		variant("XCOL", FMTCOLC, 1, 1),
	}
}

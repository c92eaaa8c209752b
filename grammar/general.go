package grammar

// TMS9900 base opcodes, grouped by instruction format.
const (
	// Format I: two general addresses
	OPA    = 0xA000 // A
	OPAB   = 0xB000 // AB
	OPC    = 0x8000 // C
	OPCB   = 0x9000 // CB
	OPS    = 0x6000 // S
	OPSB   = 0x7000 // SB
	OPSOC  = 0xE000 // SOC
	OPSOCB = 0xF000 // SOCB
	OPSZC  = 0x4000 // SZC
	OPSZCB = 0x5000 // SZCB
	OPMOV  = 0xC000 // MOV
	OPMOVB = 0xD000 // MOVB

	// Format II: jumps and CRU bit instructions
	OPJMP = 0x1000 // JMP
	OPJLT = 0x1100 // JLT
	OPJLE = 0x1200 // JLE
	OPJEQ = 0x1300 // JEQ
	OPJHE = 0x1400 // JHE
	OPJGT = 0x1500 // JGT
	OPJNE = 0x1600 // JNE
	OPJNC = 0x1700 // JNC
	OPJOC = 0x1800 // JOC
	OPJNO = 0x1900 // JNO
	OPJL  = 0x1A00 // JL
	OPJH  = 0x1B00 // JH
	OPJOP = 0x1C00 // JOP
	OPSBO = 0x1D00 // SBO
	OPSBZ = 0x1E00 // SBZ
	OPTB  = 0x1F00 // TB

	// Format III and IX: general address, workspace register
	OPCOC = 0x2000 // COC
	OPCZC = 0x2400 // CZC
	OPXOR = 0x2800 // XOR
	OPXOP = 0x2C00 // XOP
	OPMPY = 0x3800 // MPY
	OPDIV = 0x3C00 // DIV

	// Format IV: CRU multi-bit
	OPLDCR = 0x3000 // LDCR
	OPSTCR = 0x3400 // STCR

	// Format V: shifts
	OPSRA = 0x0800 // SRA
	OPSRL = 0x0900 // SRL
	OPSLA = 0x0A00 // SLA
	OPSRC = 0x0B00 // SRC

	// Format VI: single general address
	OPBLWP = 0x0400 // BLWP
	OPB    = 0x0440 // B
	OPX    = 0x0480 // X
	OPCLR  = 0x04C0 // CLR
	OPNEG  = 0x0500 // NEG
	OPINV  = 0x0540 // INV
	OPINC  = 0x0580 // INC
	OPINCT = 0x05C0 // INCT
	OPDEC  = 0x0600 // DEC
	OPDECT = 0x0640 // DECT
	OPBL   = 0x0680 // BL
	OPSWPB = 0x06C0 // SWPB
	OPSETO = 0x0700 // SETO
	OPABS  = 0x0740 // ABS

	// Format VIII: register and immediate
	OPLI   = 0x0200 // LI
	OPAI   = 0x0220 // AI
	OPANDI = 0x0240 // ANDI
	OPORI  = 0x0260 // ORI
	OPCI   = 0x0280 // CI
	OPSTWP = 0x02A0 // STWP
	OPSTST = 0x02C0 // STST
	OPLWPI = 0x02E0 // LWPI
	OPLIMI = 0x0300 // LIMI

	// Format VII: control
	OPIDLE = 0x0340 // IDLE
	OPRSET = 0x0360 // RSET
	OPRTWP = 0x0380 // RTWP
	OPCKON = 0x03A0 // CKON
	OPCKOF = 0x03C0 // CKOF
	OPLREX = 0x03E0 // LREX

	// TMS9995 additions
	OPLST  = 0x0080 // LST
	OPLWP  = 0x0090 // LWP
	OPDIVS = 0x0180 // DIVS
	OPMPYS = 0x01C0 // MPYS

	// Pseudo instructions
	OPRT  = 0x045B // RT = B *R11
	OPNOP = 0x1000 // NOP = JMP $+2
)

func cpuInstructions() []tableEntry {
	return []tableEntry{
		instr("A", ShapeII, OPA, 1),
		instr("AB", ShapeII, OPAB, 1),
		instr("C", ShapeII, OPC, 1),
		instr("CB", ShapeII, OPCB, 1),
		instr("S", ShapeII, OPS, 1),
		instr("SB", ShapeII, OPSB, 1),
		instr("SOC", ShapeII, OPSOC, 1),
		instr("SOCB", ShapeII, OPSOCB, 1),
		instr("SZC", ShapeII, OPSZC, 1),
		instr("SZCB", ShapeII, OPSZCB, 1),
		instr("MOV", ShapeII, OPMOV, 1),
		instr("MOVB", ShapeII, OPMOVB, 1),

		instr("JMP", ShapeJump, OPJMP, 2),
		instr("JLT", ShapeJump, OPJLT, 2),
		instr("JLE", ShapeJump, OPJLE, 2),
		instr("JEQ", ShapeJump, OPJEQ, 2),
		instr("JHE", ShapeJump, OPJHE, 2),
		instr("JGT", ShapeJump, OPJGT, 2),
		instr("JNE", ShapeJump, OPJNE, 2),
		instr("JNC", ShapeJump, OPJNC, 2),
		instr("JOC", ShapeJump, OPJOC, 2),
		instr("JNO", ShapeJump, OPJNO, 2),
		instr("JL", ShapeJump, OPJL, 2),
		instr("JH", ShapeJump, OPJH, 2),
		instr("JOP", ShapeJump, OPJOP, 2),
		instr("SBO", ShapeI, OPSBO, 2),
		instr("SBZ", ShapeI, OPSBZ, 2),
		instr("TB", ShapeI, OPTB, 2),

		instr("COC", ShapeII, OPCOC, 3),
		instr("CZC", ShapeII, OPCZC, 3),
		instr("XOR", ShapeII, OPXOR, 3),
		instr("XOP", ShapeII, OPXOP, 9),
		instr("MPY", ShapeII, OPMPY, 9),
		instr("DIV", ShapeII, OPDIV, 9),

		instr("LDCR", ShapeII, OPLDCR, 4),
		instr("STCR", ShapeII, OPSTCR, 4),

		instr("SRA", ShapeII, OPSRA, 5),
		instr("SRL", ShapeII, OPSRL, 5),
		instr("SLA", ShapeII, OPSLA, 5),
		instr("SRC", ShapeII, OPSRC, 5),

		instr("BLWP", ShapeI, OPBLWP, 6),
		instr("B", ShapeI, OPB, 6),
		instr("X", ShapeI, OPX, 6),
		instr("CLR", ShapeI, OPCLR, 6),
		instr("NEG", ShapeI, OPNEG, 6),
		instr("INV", ShapeI, OPINV, 6),
		instr("INC", ShapeI, OPINC, 6),
		instr("INCT", ShapeI, OPINCT, 6),
		instr("DEC", ShapeI, OPDEC, 6),
		instr("DECT", ShapeI, OPDECT, 6),
		instr("BL", ShapeI, OPBL, 6),
		instr("SWPB", ShapeI, OPSWPB, 6),
		instr("SETO", ShapeI, OPSETO, 6),
		instr("ABS", ShapeI, OPABS, 6),

		instr("LI", ShapeII, OPLI, 8),
		instr("AI", ShapeII, OPAI, 8),
		instr("ANDI", ShapeII, OPANDI, 8),
		instr("ORI", ShapeII, OPORI, 8),
		instr("CI", ShapeII, OPCI, 8),
		instr("STWP", ShapeI, OPSTWP, 8),
		instr("STST", ShapeI, OPSTST, 8),
		instr("LWPI", ShapeImm, OPLWPI, 8),
		instr("LIMI", ShapeImm, OPLIMI, 8),

		instr("IDLE", ShapeNone, OPIDLE, 7),
		instr("RSET", ShapeNone, OPRSET, 7),
		instr("RTWP", ShapeNone, OPRTWP, 7),
		instr("CKON", ShapeNone, OPCKON, 7),
		instr("CKOF", ShapeNone, OPCKOF, 7),
		instr("LREX", ShapeNone, OPLREX, 7),

		instr("LST", ShapeI, OPLST, 8),
		instr("LWP", ShapeI, OPLWP, 8),
		instr("DIVS", ShapeI, OPDIVS, 6),
		instr("MPYS", ShapeI, OPMPYS, 6),

		instr("RT", ShapeNone, OPRT, 6),
		instr("NOP", ShapeNone, OPNOP, 2),
	}
}

func directives() []tableEntry {
	return []tableEntry{
		// Location and storage
		directive("AORG", 0, 2, inBoth),
		directive("RORG", 0, 1, inGeneral),
		directive("DORG", 1, 1, inGeneral),
		directive("BSS", 1, 1, inBoth),
		directive("BES", 1, 1, inGeneral),
		directive("EVEN", 0, 0, inGeneral),
		directive("GROM", 1, 1, inGraphics),

		// Symbols
		directive("EQU", 1, 1, inBoth),
		directive("DEF", 1, Unbounded, inGeneral),
		directive("REF", 1, Unbounded, inGeneral),
		directive("SREF", 1, Unbounded, inGeneral),
		directive("LOAD", 1, Unbounded, inGeneral),

		// Data
		directive("DATA", 1, Unbounded, inBoth),
		directive("BYTE", 1, Unbounded, inBoth),
		directive("TEXT", 1, Unbounded, inBoth),
		directive("STRI", 1, Unbounded, inBoth),
		directive("FLOA", 1, Unbounded, inGeneral),

		// Sections
		directive("CSEG", 0, 1, inGeneral),
		directive("CEND", 0, 0, inGeneral),
		directive("DSEG", 0, 0, inGeneral),
		directive("DEND", 0, 0, inGeneral),
		directive("PSEG", 0, 0, inGeneral),
		directive("PEND", 0, 0, inGeneral),
		directive("XORG", 1, 1, inGeneral),

		// Files and listing
		directive("COPY", 1, 1, inBoth),
		directive("BCOPY", 1, 1, inGeneral),
		directive("IDT", 1, 1, inGeneral),
		directive("TITL", 1, 1, inBoth),
		directive("TITLE", 1, 1, inGraphics),
		directive("PAGE", 0, 0, inBoth),
		directive("LIST", 0, 0, inBoth),
		directive("UNL", 0, 0, inBoth),
		directive("SAVE", 2, 2, inGeneral),
		directive("END", 0, 1, inBoth),
	}
}

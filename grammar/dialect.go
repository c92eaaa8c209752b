package grammar

import (
	"fmt"
	"path/filepath"
	"strings"
)

// Dialect selects one of the two assembler variants.
type Dialect int

const (
	// General is the TMS9900 assembler dialect.
	General Dialect = iota
	// Graphics is the GPL assembler dialect.
	Graphics
)

func (d Dialect) String() string {
	switch d {
	case General:
		return "general"
	case Graphics:
		return "graphics"
	default:
		return fmt.Sprintf("Dialect(%d)", int(d))
	}
}

// ParseDialect converts a dialect name into a Dialect.
// The assembler names xas99 and xga99 are accepted as aliases.
func ParseDialect(name string) (Dialect, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "general", "xas99", "asm", "a99":
		return General, nil
	case "graphics", "xga99", "gpl":
		return Graphics, nil
	default:
		return General, fmt.Errorf("unknown dialect: %s", name)
	}
}

// DialectForFile guesses the dialect from a file name's extension.
func DialectForFile(path string) Dialect {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".gpl", ".g99", ".xga":
		return Graphics
	default:
		return General
	}
}

package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/peterh/liner"
	"golang.org/x/term"

	"github.com/Urethramancer/xdt99/ast"
	"github.com/Urethramancer/xdt99/grammar"
	"github.com/Urethramancer/xdt99/parser"
)

const (
	historyFile = ".xdt99_history"
	promptCont  = "...> "
)

func prompt(d grammar.Dialect) string {
	return d.String() + "> "
}

// repl reads statements from the terminal and prints their trees. A line
// ending in a backslash continues on the next prompt.
func repl(d grammar.Dialect) error {
	if !term.IsTerminal(int(os.Stdin.Fd())) {
		return errors.New("interactive mode needs a terminal")
	}

	home, _ := os.UserHomeDir()
	histPath := filepath.Join(home, historyFile)

	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)
	ln.SetCompleter(func(line string) []string {
		return complete(line, d)
	})

	if f, err := os.Open(histPath); err == nil {
		_, _ = ln.ReadHistory(f)
		_ = f.Close()
	}
	defer func() {
		if f, err := os.Create(histPath); err == nil {
			_, _ = ln.WriteHistory(f)
			_ = f.Close()
		}
	}()

	for {
		src, ok := readStatement(ln, prompt(d))
		if !ok {
			fmt.Println()
			return nil
		}
		if strings.TrimSpace(src) == "" {
			continue
		}
		ln.AppendHistory(strings.ReplaceAll(src, "\n", " "))

		if cmd, ok := strings.CutPrefix(strings.TrimSpace(src), ":"); ok {
			fields := strings.Fields(cmd)
			switch {
			case len(fields) == 0:
				fmt.Println("commands: :dialect NAME, :quit")
			case fields[0] == "quit" || fields[0] == "q":
				return nil
			case fields[0] == "dialect" && len(fields) == 2:
				nd, err := grammar.ParseDialect(fields[1])
				if err != nil {
					fmt.Fprintln(os.Stderr, err)
					continue
				}
				d = nd
			default:
				fmt.Println("unknown command. Type :quit to exit.")
			}
			continue
		}

		tree, diags := parser.Parse(src, d)
		if err := ast.Fprint(os.Stdout, tree); err != nil {
			return err
		}
		for _, dg := range diags {
			fmt.Fprintln(os.Stderr, dg)
		}
	}
}

// readStatement prompts until a line does not end in a continuation
// marker. It returns false at end of input or on Ctrl-C.
func readStatement(ln *liner.State, first string) (string, bool) {
	var b strings.Builder
	p := first
	for {
		line, err := ln.Prompt(p)
		if errors.Is(err, io.EOF) || errors.Is(err, liner.ErrPromptAborted) {
			return "", false
		}
		if err != nil {
			return "", false
		}
		b.WriteString(line)
		if !strings.HasSuffix(strings.TrimRight(line, " \t"), `\`) {
			return b.String(), true
		}
		b.WriteByte('\n')
		p = promptCont
	}
}

// complete offers the mnemonics of d that extend the last word of line.
func complete(line string, d grammar.Dialect) []string {
	i := strings.LastIndexAny(line, " \t") + 1
	head, word := line[:i], strings.ToUpper(line[i:])
	if word == "" {
		return nil
	}
	var out []string
	for _, m := range grammar.Mnemonics(d) {
		if strings.HasPrefix(m, word) {
			out = append(out, head+m)
		}
	}
	return out
}

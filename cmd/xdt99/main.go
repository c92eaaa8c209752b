package main

import (
	"errors"
	"fmt"
	"log"
	"os"
	"runtime"
	"time"

	"github.com/grimdork/climate/arg"
	"golang.org/x/sync/errgroup"

	"github.com/Urethramancer/xdt99/ast"
	"github.com/Urethramancer/xdt99/diag"
	"github.com/Urethramancer/xdt99/format"
	"github.com/Urethramancer/xdt99/grammar"
	"github.com/Urethramancer/xdt99/parser"
	"github.com/Urethramancer/xdt99/xref"
)

type config struct {
	dialect     string
	tree        bool
	xref        bool
	format      bool
	diff        bool
	interactive bool
	verbose     bool
	files       []string
}

// result is the outcome of checking one file.
type result struct {
	name    string
	src     string
	tree    *ast.Tree
	diags   diag.List
	err     error
	elapsed time.Duration
}

func main() {
	log.SetFlags(0)
	log.SetPrefix("xdt99: ")

	cfg, ok := options()
	if !ok {
		return
	}

	if cfg.interactive {
		d, err := dialectFor(cfg.dialect, "")
		if err != nil {
			log.Fatal(err)
		}
		if err := repl(d); err != nil {
			log.Fatal(err)
		}
		return
	}

	results, err := check(cfg)
	if err != nil {
		log.Fatal(err)
	}
	failed := false
	for _, r := range results {
		if !report(cfg, r) {
			failed = true
		}
	}
	if failed {
		os.Exit(1)
	}
}

// options parses the command line. It returns false when there is nothing
// more to do.
func options() (config, bool) {
	var cfg config
	opt := arg.New("xdt99")
	opt.SetDefaultHelp(true)
	opt.SetOption(arg.GroupDefault, "d", "dialect", "Assembly dialect: general, graphics or auto.", "auto", false, arg.VarString, nil)
	opt.SetOption(arg.GroupDefault, "t", "tree", "Print the syntax tree.", false, false, arg.VarBool, nil)
	opt.SetOption(arg.GroupDefault, "x", "xref", "Print the label cross-reference.", false, false, arg.VarBool, nil)
	opt.SetOption(arg.GroupDefault, "f", "format", "Print the formatted source.", false, false, arg.VarBool, nil)
	opt.SetOption(arg.GroupDefault, "D", "diff", "Print a diff against the formatted source.", false, false, arg.VarBool, nil)
	opt.SetOption(arg.GroupDefault, "i", "interactive", "Parse statements typed at a prompt.", false, false, arg.VarBool, nil)
	opt.SetOption(arg.GroupDefault, "v", "verbose", "Log timing for each file.", false, false, arg.VarBool, nil)
	opt.SetPositional("FILES", "Source files to check.", []string{}, false, arg.VarStringSlice)

	err := opt.Parse(os.Args[1:])
	if err != nil {
		if errors.Is(err, arg.ErrNoArgs) {
			opt.PrintHelp()
			return cfg, false
		}
		log.Fatalf("error parsing arguments: %s", err)
	}
	if opt.GetBool("help") {
		opt.PrintHelp()
		return cfg, false
	}

	cfg = config{
		dialect:     opt.GetString("dialect"),
		tree:        opt.GetBool("tree"),
		xref:        opt.GetBool("xref"),
		format:      opt.GetBool("format"),
		diff:        opt.GetBool("diff"),
		interactive: opt.GetBool("interactive"),
		verbose:     opt.GetBool("verbose"),
		files:       opt.GetPosStringSlice("FILES"),
	}
	if len(cfg.files) == 0 && !cfg.interactive {
		opt.PrintHelp()
		return cfg, false
	}
	return cfg, true
}

// dialectFor resolves the dialect option for a file. "auto" picks the
// dialect from the file extension.
func dialectFor(name, file string) (grammar.Dialect, error) {
	if name == "" || name == "auto" {
		return grammar.DialectForFile(file), nil
	}
	return grammar.ParseDialect(name)
}

// check parses all files concurrently. Per-file read errors end up in the
// results; only a bad dialect option fails the whole run.
func check(cfg config) ([]result, error) {
	results := make([]result, len(cfg.files))
	var g errgroup.Group
	g.SetLimit(runtime.NumCPU())
	for i, name := range cfg.files {
		d, err := dialectFor(cfg.dialect, name)
		if err != nil {
			return nil, err
		}
		g.Go(func() error {
			results[i] = checkFile(name, d)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

func checkFile(name string, d grammar.Dialect) result {
	r := result{name: name}
	data, err := os.ReadFile(name)
	if err != nil {
		r.err = fmt.Errorf("couldn't read %s: %w", name, err)
		return r
	}
	start := time.Now()
	r.src = string(data)
	r.tree, r.diags = parser.ParseFile(name, r.src, d)
	r.elapsed = time.Since(start)
	return r
}

// report prints what was asked for about one file. It returns false if the
// file could not be read or has errors.
func report(cfg config, r result) bool {
	if r.err != nil {
		log.Print(r.err)
		return false
	}
	if cfg.verbose {
		log.Printf("%s: %s, %d statements, %d diagnostics in %s",
			r.name, r.tree.Dialect, len(r.tree.Statements), len(r.diags), r.elapsed)
	}
	for _, d := range r.diags {
		fmt.Fprintln(os.Stderr, d)
	}

	var err error
	if cfg.tree {
		err = errors.Join(err, ast.Fprint(os.Stdout, r.tree))
	}
	if cfg.xref {
		err = errors.Join(err, xref.Build(r.tree).Fprint(os.Stdout))
	}
	if cfg.format {
		err = errors.Join(err, format.Default.Fprint(os.Stdout, r.tree))
	}
	if cfg.diff {
		fmt.Print(format.Diff(r.name, r.src, format.Source(r.tree)))
	}
	if err != nil {
		log.Printf("couldn't write output for %s: %s", r.name, err)
		return false
	}
	return !r.diags.HasErrors()
}

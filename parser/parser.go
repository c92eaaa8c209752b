// Package parser builds syntax trees from assembly tokens.
//
// Parsing never fails: every logical line becomes a statement, and
// problems are reported as diagnostics next to a best-effort tree. A bad
// line is kept as a partial statement and never affects its neighbours.
package parser

import (
	"fmt"
	"strings"

	"github.com/Urethramancer/xdt99/ast"
	"github.com/Urethramancer/xdt99/diag"
	"github.com/Urethramancer/xdt99/grammar"
	"github.com/Urethramancer/xdt99/lexer"
	"github.com/Urethramancer/xdt99/token"
)

// Parse tokenizes and parses src in dialect d.
func Parse(src string, d grammar.Dialect) (*ast.Tree, diag.List) {
	tree, diags := ParseTokens(lexer.Tokenize(src, d), d)
	tree.Source = src
	return tree, diags
}

// ParseFile parses src and records name in the tree and its diagnostics.
func ParseFile(name, src string, d grammar.Dialect) (*ast.Tree, diag.List) {
	tree, diags := Parse(src, d)
	tree.Filename = name
	diags.SetFile(name)
	return tree, diags
}

// ParseTokens parses a token sequence as produced by the lexer. A missing
// trailing EOF token is tolerated.
func ParseTokens(toks []token.Token, d grammar.Dialect) (*ast.Tree, diag.List) {
	p := &parser{dialect: d, toks: toks}
	tree := &ast.Tree{Dialect: d, Source: joinText(toks)}
	for {
		line, last := p.nextLine()
		if last && len(line) == 0 {
			break
		}
		tree.Append(p.statement(line, last))
		if last {
			break
		}
	}
	p.diags.Sort()
	return tree, p.diags
}

type parser struct {
	dialect grammar.Dialect
	toks    []token.Token
	pos     int
	diags   diag.List
}

// nextLine returns the tokens of the next logical line without its
// newline. last is set when the line ends the input.
func (p *parser) nextLine() (line []token.Token, last bool) {
	start := p.pos
	for p.pos < len(p.toks) {
		t := p.toks[p.pos]
		if !t.EndsStatement() {
			p.pos++
			continue
		}
		line = p.toks[start:p.pos]
		if t.Kind == token.EOF {
			p.pos = len(p.toks)
			return line, true
		}
		p.pos++
		return line, p.pos >= len(p.toks)
	}
	return p.toks[start:], true
}

// statement parses one logical line.
func (p *parser) statement(line []token.Token, last bool) *ast.Statement {
	st := &ast.Statement{Tokens: line}
	st.Range = p.lineSpan(line)

	var sig []token.Token
	for _, t := range line {
		if !t.Kind.Trivia() {
			sig = append(sig, t)
		}
	}
	if last && len(line) > 0 && line[len(line)-1].Kind == token.Continuation {
		p.diags.Errorf(diag.ErrUnterminated, line[len(line)-1].Span, "line continuation at end of input")
		st.Partial = true
	}

	if n := len(sig); n > 0 && sig[n-1].Kind == token.Comment && sig[n-1].Text != "" {
		st.Comment = newComment(sig[n-1])
		sig = sig[:n-1]
	}

	// Anything after a lexical error is dropped.
	for i, t := range sig {
		if t.Text == "" {
			p.diags.Errorf(diag.ErrUnexpected, t.Span, "empty %s token", strings.ToLower(t.Kind.String()))
			sig, st.Partial = sig[:i], true
			break
		}
		if t.Kind == token.Error {
			p.diags.Errorf(diag.ErrLex, t.Span, "unrecognised character %q", t.Text)
			sig, st.Partial = sig[:i], true
			break
		}
		if t.Kind == token.String && t.Unterminated {
			p.diags.Errorf(diag.ErrUnterminated, t.Span, "unterminated string %s", t.Text)
			sig, st.Partial = sig[:i], true
			break
		}
	}

	c := &cursor{toks: sig}
	if isLabel(sig) {
		t := c.next()
		st.Label = &ast.Label{Name: t.Text}
		st.Label.Range = t.Span
		if c.peek().Is(":") {
			c.next()
		}
	}
	if c.done() {
		return st
	}

	t := c.next()
	switch t.Kind {
	case token.Mnemonic:
		entry, _ := grammar.Lookup(t.Text, p.dialect)
		st.Mnemonic = &ast.Mnemonic{Name: t.Text, Entry: entry, Known: true}
	case token.Symbol, token.Register:
		st.Mnemonic = &ast.Mnemonic{Name: t.Text}
		p.diags.Warnf(diag.ErrUnknownMnemonic, t.Span, "unknown mnemonic %s", t.Text)
	default:
		p.diags.Errorf(diag.ErrUnexpected, t.Span, "expected mnemonic, found %q", t.Text)
		st.Partial = true
		return st
	}
	st.Mnemonic.Range = t.Span

	st.Operands = p.operands(st, c.rest(), t.Span.End)
	return st
}

// operands splits the operand field and validates it against the
// mnemonic's shape. Any failure demotes the list to raw operands and marks
// the statement partial.
func (p *parser) operands(st *ast.Statement, toks []token.Token, after token.Pos) *ast.OperandList {
	groups, commas := splitOperands(toks)
	list := &ast.OperandList{}
	list.Range = token.Span{Start: after, End: after}
	if len(toks) > 0 {
		list.Range = token.Join(toks[0].Span, toks[len(toks)-1].Span)
	}

	raw := func() *ast.OperandList {
		list.Shape = grammar.ShapeRaw
		list.Operands = rawOperands(groups)
		return list
	}

	if !st.Mnemonic.Known || st.Partial {
		return raw()
	}
	entry := st.Mnemonic.Entry
	list.Shape = entry.Shape

	if !entry.Accepts(len(groups)) {
		span := list.Range
		if len(toks) == 0 {
			span = st.Mnemonic.Range
		}
		p.diags.Errorf(diag.ErrShapeMismatch, span, "%s expects %s, found %d",
			strings.ToUpper(st.Mnemonic.Name), describeArity(entry), len(groups))
		st.Partial = true
		return raw()
	}

	for i, g := range groups {
		if len(g) == 0 {
			at := after
			if i > 0 {
				at = commas[i-1].Span.End
			}
			p.diags.Errorf(diag.ErrShapeMismatch, token.Span{Start: at, End: at}, "missing operand %d", i+1)
			st.Partial = true
			return raw()
		}
		op, err := p.operand(g)
		if err != nil {
			p.diags.Errorf(diag.ErrShapeMismatch, err.tok.Span, "%s", err.msg)
			st.Partial = true
			return raw()
		}
		// A GROM address is a valid branch target in graphics code.
		grom := entry.Shape == grammar.ShapeJump && op.Space == ast.SpaceGROM && op.Mode == grammar.ModeIndirect
		if !entry.Shape.Allows(op.Mode) && !grom {
			p.diags.Errorf(diag.ErrShapeMismatch, op.Range, "%s operand %s not allowed for %s",
				strings.ToLower(op.Mode.String()), op.Text, strings.ToUpper(st.Mnemonic.Name))
			st.Partial = true
			return raw()
		}
		list.Operands = append(list.Operands, op)
	}
	return list
}

// isLabel decides whether the first token of a line declares a label.
// Labels conventionally start in column 1, but any leading name followed
// by a colon, or a symbol followed by a known mnemonic, is a label anywhere.
func isLabel(sig []token.Token) bool {
	if len(sig) == 0 {
		return false
	}
	first := sig[0]
	var next, after token.Token
	next.Kind, after.Kind = token.EOF, token.EOF
	if len(sig) > 1 {
		next = sig[1]
	}
	if len(sig) > 2 {
		after = sig[2]
	}
	col1 := first.Span.Start.Column == 1

	switch first.Kind {
	case token.Symbol:
		if next.Is(":") || next.Kind == token.Mnemonic {
			return true
		}
		if !col1 {
			return false
		}
		return next.Kind == token.EOF || (next.Kind == token.Symbol && !after.Is(","))
	case token.Mnemonic, token.Register:
		return next.Is(":") || (col1 && next.Kind == token.Mnemonic)
	}
	return false
}

// splitOperands splits tokens at commas outside parentheses. It also
// returns the separating commas. No tokens yield no groups.
func splitOperands(toks []token.Token) (groups [][]token.Token, commas []token.Token) {
	if len(toks) == 0 {
		return nil, nil
	}
	depth, last := 0, 0
	for i, t := range toks {
		switch {
		case t.Is("("):
			depth++
		case t.Is(")"):
			if depth > 0 {
				depth--
			}
		case t.Is(",") && depth == 0:
			groups = append(groups, toks[last:i])
			commas = append(commas, t)
			last = i + 1
		}
	}
	groups = append(groups, toks[last:])
	return groups, commas
}

// rawOperands keeps each non-empty group as an unclassified operand.
func rawOperands(groups [][]token.Token) []*ast.Operand {
	var out []*ast.Operand
	for _, g := range groups {
		if len(g) == 0 {
			continue
		}
		op := &ast.Operand{Mode: grammar.ModeRaw, Text: joinText(g), Tokens: g}
		op.Range = token.Join(g[0].Span, g[len(g)-1].Span)
		for _, t := range g {
			if isSymbolToken(t) {
				op.Refs = append(op.Refs, t.Text)
			}
		}
		out = append(out, op)
	}
	return out
}

func newComment(t token.Token) *ast.Comment {
	c := &ast.Comment{}
	if t.Text != "" {
		c.Marker, c.Text = t.Text[:1], t.Text[1:]
	}
	c.Range = t.Span
	return c
}

// lineSpan covers the line's tokens. An empty line gets an empty span at
// the start of the line.
func (p *parser) lineSpan(line []token.Token) token.Span {
	if len(line) > 0 {
		return token.Span{Start: line[0].Span.Start, End: line[len(line)-1].Span.End}
	}
	at := token.StartPos
	if p.pos > 0 && p.pos <= len(p.toks) {
		// The terminator just consumed starts where the empty line is.
		at = p.toks[p.pos-1].Span.Start
	}
	return token.Span{Start: at, End: at}
}

func describeArity(e grammar.Entry) string {
	min, max := e.Bounds()
	switch {
	case max == grammar.Unbounded:
		return fmt.Sprintf("at least %d operands", min)
	case min == max && min == 1:
		return "1 operand"
	case min == max:
		return fmt.Sprintf("%d operands", min)
	default:
		return fmt.Sprintf("%d to %d operands", min, max)
	}
}

func joinText(toks []token.Token) string {
	var b strings.Builder
	for _, t := range toks {
		b.WriteString(t.Text)
	}
	return b.String()
}

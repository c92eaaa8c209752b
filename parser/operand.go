package parser

import (
	"fmt"
	"strings"

	"github.com/Urethramancer/xdt99/ast"
	"github.com/Urethramancer/xdt99/grammar"
	"github.com/Urethramancer/xdt99/token"
)

// operandError points at the token that made an operand unreadable.
type operandError struct {
	tok token.Token
	msg string
}

func (e *operandError) Error() string { return e.msg }

func errAt(t token.Token, format string, args ...any) *operandError {
	return &operandError{tok: t, msg: fmt.Sprintf(format, args...)}
}

// cursor steps through the significant tokens of one line or operand.
type cursor struct {
	toks []token.Token
	pos  int
}

func (c *cursor) done() bool { return c.pos >= len(c.toks) }

// peek returns the current token, or EOF past the end.
func (c *cursor) peek() token.Token {
	if c.done() {
		return c.eof()
	}
	return c.toks[c.pos]
}

func (c *cursor) peekAt(n int) token.Token {
	if c.pos+n >= len(c.toks) {
		return c.eof()
	}
	return c.toks[c.pos+n]
}

func (c *cursor) next() token.Token {
	t := c.peek()
	if !c.done() {
		c.pos++
	}
	return t
}

func (c *cursor) rest() []token.Token {
	if c.done() {
		return nil
	}
	return c.toks[c.pos:]
}

func (c *cursor) eof() token.Token {
	var at token.Pos
	if n := len(c.toks); n > 0 {
		at = c.toks[n-1].Span.End
	}
	return token.Token{Kind: token.EOF, Span: token.Span{Start: at, End: at}}
}

// operand classifies one comma-separated operand. The parse functions are
// tried in order; each either claims the operand or leaves it alone.
func (p *parser) operand(group []token.Token) (*ast.Operand, *operandError) {
	c := &cursor{toks: group}
	op := &ast.Operand{Text: joinText(group), Tokens: group}
	op.Range = token.Join(group[0].Span, group[len(group)-1].Span)

	var parsers []func(*cursor, *ast.Operand) (bool, *operandError)
	if p.dialect == grammar.Graphics {
		parsers = []func(*cursor, *ast.Operand) (bool, *operandError){
			p.tryParseVDPRegister,
			p.tryParseSpace,
			p.tryParseGraphicsIndirect,
			p.tryParseAddress,
			p.tryParseValue,
		}
	} else {
		parsers = []func(*cursor, *ast.Operand) (bool, *operandError){
			p.tryParseRegister,
			p.tryParseIndirect,
			p.tryParseAddress,
			p.tryParseValue,
		}
	}
	for _, try := range parsers {
		ok, err := try(c, op)
		if err != nil {
			return nil, err
		}
		if ok {
			break
		}
	}
	if !c.done() {
		t := c.peek()
		return nil, errAt(t, "unexpected %q in operand %s", t.Text, op.Text)
	}
	return op, nil
}

// tryParseRegister handles Rn.
func (p *parser) tryParseRegister(c *cursor, op *ast.Operand) (bool, *operandError) {
	t := c.peek()
	if t.Kind != token.Register {
		return false, nil
	}
	c.next()
	op.Mode = grammar.ModeRegister
	op.Register, op.HasRegister = registerNumber(t.Text), true
	return true, nil
}

// tryParseIndirect handles *Rn and *Rn+.
func (p *parser) tryParseIndirect(c *cursor, op *ast.Operand) (bool, *operandError) {
	if !c.peek().Is("*") {
		return false, nil
	}
	c.next()
	t := c.next()
	if t.Kind != token.Register {
		return false, errAt(t, "expected register after *, found %q", t.Text)
	}
	op.Mode = grammar.ModeIndirect
	op.Register, op.HasRegister = registerNumber(t.Text), true
	if c.peek().Is("+") {
		c.next()
		op.Mode = grammar.ModeAutoIncrement
	}
	return true, nil
}

// tryParseAddress handles @expr with an optional index: (Rn) for the CPU,
// (@expr) for graphics.
func (p *parser) tryParseAddress(c *cursor, op *ast.Operand) (bool, *operandError) {
	if !c.peek().Is("@") {
		return false, nil
	}
	c.next()
	if op.Space == ast.SpaceNone && p.dialect == grammar.Graphics {
		op.Space = ast.SpaceCPU
	}
	if err := p.address(c, op); err != nil {
		return false, err
	}
	op.Mode = grammar.ModeIndirect
	if !c.peek().Is("(") {
		return true, nil
	}

	open := c.next()
	if p.dialect == grammar.Graphics {
		if !c.peek().Is("@") {
			return false, errAt(c.peek(), "expected @ in index, found %q", c.peek().Text)
		}
		c.next()
		e, err := p.expr(c)
		if err != nil {
			return false, err
		}
		op.Refs = append(op.Refs, e.refs...)
	} else {
		t := c.next()
		if t.Kind != token.Register {
			return false, errAt(t, "expected index register, found %q", t.Text)
		}
		op.Register, op.HasRegister = registerNumber(t.Text), true
	}
	if !c.peek().Is(")") {
		return false, errAt(c.peek(), "missing ) for ( at %s", open.Span.Start)
	}
	c.next()
	op.Mode = grammar.ModeIndexed
	return true, nil
}

// address reads the expression after @ or *.
func (p *parser) address(c *cursor, op *ast.Operand) *operandError {
	e, err := p.expr(c)
	if err != nil {
		return err
	}
	op.Value, op.HasValue = e.value, e.constant
	op.Refs = append(op.Refs, e.refs...)
	if len(e.refs) > 0 {
		op.Label = e.refs[0]
	}
	return nil
}

// tryParseVDPRegister handles #n, a VDP register.
func (p *parser) tryParseVDPRegister(c *cursor, op *ast.Operand) (bool, *operandError) {
	if !c.peek().Is("#") {
		return false, nil
	}
	c.next()
	e, err := p.expr(c)
	if err != nil {
		return false, err
	}
	op.Mode = grammar.ModeRegister
	op.Refs = e.refs
	if e.constant {
		op.Register, op.HasRegister = e.value, true
	}
	return true, nil
}

// tryParseSpace handles the V@, G@ and V* prefixes. The letter must touch
// the following @ or *.
func (p *parser) tryParseSpace(c *cursor, op *ast.Operand) (bool, *operandError) {
	t, mark := c.peek(), c.peekAt(1)
	if t.Kind != token.Symbol || t.Span.End.Offset != mark.Span.Start.Offset {
		return false, nil
	}
	switch {
	case strings.EqualFold(t.Text, "V") && mark.Is("@"):
		op.Space = ast.SpaceVDP
	case strings.EqualFold(t.Text, "G") && mark.Is("@"):
		op.Space = ast.SpaceGROM
	case strings.EqualFold(t.Text, "V") && mark.Is("*"):
		op.Space = ast.SpaceVDP
		op.Indirect = true
		c.next()
		c.next()
		op.Mode = grammar.ModeIndirect
		return true, p.address(c, op)
	default:
		return false, nil
	}
	c.next()
	return p.tryParseAddress(c, op)
}

// tryParseGraphicsIndirect handles *expr, indirect through CPU RAM.
func (p *parser) tryParseGraphicsIndirect(c *cursor, op *ast.Operand) (bool, *operandError) {
	if !c.peek().Is("*") {
		return false, nil
	}
	c.next()
	op.Mode = grammar.ModeIndirect
	op.Space = ast.SpaceCPU
	op.Indirect = true
	return true, p.address(c, op)
}

// tryParseValue handles a bare expression: immediate when it starts with
// a literal, symbolic when it starts with a symbol.
func (p *parser) tryParseValue(c *cursor, op *ast.Operand) (bool, *operandError) {
	e, err := p.expr(c)
	if err != nil {
		return false, err
	}
	op.Value, op.HasValue = e.value, e.constant
	op.Refs = e.refs
	if e.lead.Kind == token.Symbol || e.lead.Kind == token.Mnemonic {
		if e.lead.Text != locationCounter {
			op.Mode = grammar.ModeSymbolic
			op.Label = e.lead.Text
			return true, nil
		}
	}
	op.Mode = grammar.ModeImmediate
	return true, nil
}

func registerNumber(text string) int {
	if len(text) < 2 {
		return 0
	}
	n := 0
	for _, r := range text[1:] {
		n = n*10 + int(r-'0')
	}
	return n
}

func isSymbolToken(t token.Token) bool {
	return (t.Kind == token.Symbol || t.Kind == token.Mnemonic) && t.Text != locationCounter
}

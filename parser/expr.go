package parser

import (
	"strconv"

	"github.com/Urethramancer/xdt99/token"
)

// locationCounter stands for the address of the current statement.
const locationCounter = "$"

// exprResult is what the parser learns about an expression without a
// symbol table.
type exprResult struct {
	value    int
	constant bool
	refs     []string
	// lead is the first literal or symbol in the expression.
	lead token.Token
}

// expr reads an expression. Operators bind left to right without
// precedence; parentheses group. Constant values wrap to 16 bits.
func (p *parser) expr(c *cursor) (exprResult, *operandError) {
	res, err := p.term(c)
	if err != nil {
		return res, err
	}
	for {
		op := c.peek()
		if op.Kind != token.Punct || !isBinary(op.Text) {
			break
		}
		c.next()
		rhs, err := p.term(c)
		if err != nil {
			return res, err
		}
		res.refs = append(res.refs, rhs.refs...)
		if res.constant && rhs.constant {
			res.value, res.constant = apply(op.Text, res.value, rhs.value)
		} else {
			res.constant = false
		}
	}
	res.value &= 0xFFFF
	return res, nil
}

func (p *parser) term(c *cursor) (exprResult, *operandError) {
	var res exprResult
	t := c.next()
	switch t.Kind {
	case token.Number:
		v, err := parseNumber(t.Text)
		if err != nil {
			return res, errAt(t, "invalid number %s", t.Text)
		}
		res.value, res.constant, res.lead = v, true, t
	case token.String:
		res.lead = t
		res.value, res.constant = stringValue(t.Text)
	case token.Symbol, token.Mnemonic:
		res.lead = t
		if t.Text != locationCounter {
			res.refs = []string{t.Text}
		}
	case token.Register:
		// A register name in an expression is its number.
		res.value, res.constant, res.lead = registerNumber(t.Text), true, t
	case token.Punct:
		switch t.Text {
		case "-", "+", "~":
			inner, err := p.term(c)
			if err != nil {
				return res, err
			}
			res = inner
			switch t.Text {
			case "-":
				res.value = -res.value & 0xFFFF
			case "~":
				res.value = ^res.value & 0xFFFF
			}
		case "(":
			inner, err := p.expr(c)
			if err != nil {
				return res, err
			}
			if !c.peek().Is(")") {
				return res, errAt(c.peek(), "missing ) for ( at %s", t.Span.Start)
			}
			c.next()
			res = inner
		default:
			return res, errAt(t, "unexpected %q in expression", t.Text)
		}
	case token.EOF:
		return res, errAt(t, "missing value")
	default:
		return res, errAt(t, "unexpected %q in expression", t.Text)
	}
	return res, nil
}

func isBinary(op string) bool {
	switch op {
	case "+", "-", "*", "/", "&", "|", "^":
		return true
	}
	return false
}

// apply evaluates a binary operator. Division by zero yields no value.
func apply(op string, a, b int) (int, bool) {
	switch op {
	case "+":
		return (a + b) & 0xFFFF, true
	case "-":
		return (a - b) & 0xFFFF, true
	case "*":
		return (a * b) & 0xFFFF, true
	case "/":
		if b == 0 {
			return 0, false
		}
		return (a / b) & 0xFFFF, true
	case "&":
		return a & b, true
	case "|":
		return a | b, true
	case "^":
		return a ^ b, true
	}
	return 0, false
}

// parseNumber reads >hex, :binary or decimal.
func parseNumber(s string) (int, error) {
	if s == "" {
		return 0, strconv.ErrSyntax
	}
	base, digits := 10, s
	switch s[0] {
	case '>':
		base, digits = 16, s[1:]
	case ':':
		base, digits = 2, s[1:]
	}
	v, err := strconv.ParseUint(digits, base, 64)
	if err != nil {
		return 0, err
	}
	return int(v & 0xFFFF), nil
}

// stringValue packs a one or two character string into a word. Longer
// strings have no single value.
func stringValue(quoted string) (int, bool) {
	s := unquote(quoted)
	switch len(s) {
	case 1:
		return int(s[0]), true
	case 2:
		return int(s[0])<<8 | int(s[1]), true
	}
	return 0, false
}

// unquote strips the quotes and collapses doubled quotes.
func unquote(quoted string) string {
	if len(quoted) < 2 {
		return ""
	}
	inner := quoted[1 : len(quoted)-1]
	out := make([]byte, 0, len(inner))
	for i := 0; i < len(inner); i++ {
		out = append(out, inner[i])
		if inner[i] == '\'' && i+1 < len(inner) && inner[i+1] == '\'' {
			i++
		}
	}
	return string(out)
}

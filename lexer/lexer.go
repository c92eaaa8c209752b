// Package lexer splits assembly source into classified tokens.
//
// Every byte of the input belongs to exactly one token, so joining the
// texts of all tokens gives back the source. Malformed input never stops
// the lexer; offending characters come out as Error tokens.
package lexer

import (
	"iter"
	"regexp"
	"strings"

	plex "github.com/alecthomas/participle/v2/lexer"

	"github.com/Urethramancer/xdt99/grammar"
	"github.com/Urethramancer/xdt99/token"
)

// rules are tried in order; the first match wins.
var rules = plex.MustSimple([]plex.SimpleRule{
	{Name: "Continuation", Pattern: `\\[ \t]*\r?\n`},
	{Name: "Newline", Pattern: `\r?\n`},
	{Name: "Whitespace", Pattern: `[ \t\f\v]+`},
	{Name: "Comment", Pattern: `;[^\r\n]*`},
	{Name: "String", Pattern: `'(?:[^'\r\n]|'')*'`},
	{Name: "BadString", Pattern: `'(?:[^'\r\n]|'')*`},
	{Name: "Number", Pattern: `>[0-9A-Fa-f]+|:[01]+|[0-9]+`},
	{Name: "Ident", Pattern: `[A-Za-z_][A-Za-z0-9_]*|![A-Za-z0-9_!]*|\$`},
	{Name: "Punct", Pattern: `[,()@*+\-/#:&|^~=]`},
	{Name: "Error", Pattern: `[^\n]`},
})

const (
	ruleIdent     = "Ident"
	ruleBadString = "BadString"
)

var (
	ruleKinds  = map[plex.TokenType]token.Kind{}
	ruleNames  = plex.SymbolsByRune(rules)
	reRegister = regexp.MustCompile(`(?i)^r(1[0-5]|[0-9])$`)
)

func init() {
	byName := map[string]token.Kind{
		"EOF":          token.EOF,
		"Continuation": token.Continuation,
		"Newline":      token.Newline,
		"Whitespace":   token.Whitespace,
		"Comment":      token.Comment,
		"String":       token.String,
		ruleBadString:  token.String,
		"Number":       token.Number,
		ruleIdent:      token.Symbol,
		"Punct":        token.Punct,
		"Error":        token.Error,
	}
	for name, tt := range rules.Symbols() {
		ruleKinds[tt] = byName[name]
	}
}

// Lexer produces tokens on demand.
type Lexer struct {
	src     string
	dialect grammar.Dialect
	raw     plex.Lexer
	look    []plex.Token
	pending []token.Token
	pos     token.Pos
	done    bool
	// last is the kind of the token most recently returned.
	last token.Kind
}

// New returns a lexer over src. Identifiers are classified against the
// mnemonic table of dialect d.
func New(src string, d grammar.Dialect) *Lexer {
	l := &Lexer{src: src, dialect: d, pos: token.StartPos}
	raw, err := rules.LexString("", src)
	if err != nil {
		// Cannot happen with a string source; fall back to one error token.
		l.pending = append(l.pending, l.make(token.Error, src))
		l.done = true
		return l
	}
	l.raw = raw
	return l
}

// Next returns the next token. After the input is exhausted it keeps
// returning EOF.
func (l *Lexer) Next() token.Token {
	t := l.next()
	l.last = t.Kind
	return t
}

func (l *Lexer) next() token.Token {
	if len(l.pending) > 0 {
		t := l.pending[0]
		l.pending = l.pending[1:]
		return t
	}
	if l.done {
		return token.Token{Kind: token.EOF, Span: token.Span{Start: l.pos, End: l.pos}}
	}

	rt, ok := l.nextRaw()
	if !ok {
		return l.next()
	}
	if rt.EOF() {
		l.done = true
		return l.next()
	}

	kind := ruleKinds[rt.Type]
	switch {
	case kind == token.Punct && rt.Value == "*" && rt.Pos.Column == 1 && l.last != token.Continuation:
		return l.starComment(rt)
	case ruleNames[rt.Type] == ruleIdent:
		kind = l.classify(rt.Value)
	}
	t := l.make(kind, rt.Value)
	t.Unterminated = ruleNames[rt.Type] == ruleBadString
	return t
}

// nextRaw pulls one token from the rule lexer. A rule lexer error turns
// the rest of the input into an Error token.
func (l *Lexer) nextRaw() (plex.Token, bool) {
	if len(l.look) > 0 {
		rt := l.look[0]
		l.look = l.look[1:]
		return rt, true
	}
	rt, err := l.raw.Next()
	if err != nil {
		if rest := l.src[l.pos.Offset:]; rest != "" {
			l.pending = append(l.pending, l.make(token.Error, rest))
		}
		l.done = true
		return plex.Token{}, false
	}
	return rt, true
}

func (l *Lexer) peekRaw() (plex.Token, bool) {
	if len(l.look) == 0 {
		rt, ok := l.nextRaw()
		if !ok {
			return plex.Token{}, false
		}
		l.look = append(l.look, rt)
	}
	return l.look[0], true
}

// starComment turns a * in column 1 and the rest of its line into a comment.
func (l *Lexer) starComment(star plex.Token) token.Token {
	start := star.Pos.Offset
	end := start + lineLength(l.src[start:])
	for {
		rt, ok := l.peekRaw()
		if !ok || rt.EOF() || rt.Pos.Offset >= end {
			break
		}
		l.look = l.look[1:]
		if tail := rt.Pos.Offset + len(rt.Value); tail > end {
			// A line join inside the comment: keep its line break.
			comment := l.make(token.Comment, l.src[start:end])
			l.pending = append(l.pending, l.make(token.Newline, l.src[end:tail]))
			return comment
		}
	}
	return l.make(token.Comment, l.src[start:end])
}

// make builds a token of the given text at the current position and advances.
func (l *Lexer) make(kind token.Kind, text string) token.Token {
	t := token.Token{Kind: kind, Text: text, Span: token.SpanOf(l.pos, text)}
	l.pos = t.Span.End
	return t
}

func (l *Lexer) classify(word string) token.Kind {
	if l.dialect == grammar.General && reRegister.MatchString(word) {
		return token.Register
	}
	if grammar.IsMnemonic(word, l.dialect) {
		return token.Mnemonic
	}
	return token.Symbol
}

// lineLength is the length of s up to, not including, its first line break.
func lineLength(s string) int {
	n := strings.IndexByte(s, '\n')
	if n < 0 {
		return len(s)
	}
	if n > 0 && s[n-1] == '\r' {
		n--
	}
	return n
}

// Tokenize returns all tokens of src, ending with EOF.
func Tokenize(src string, d grammar.Dialect) []token.Token {
	var out []token.Token
	for t := range Tokens(src, d) {
		out = append(out, t)
	}
	return out
}

// Tokens yields the tokens of src lazily, ending with EOF. Each range over
// the sequence starts again from the beginning of src.
func Tokens(src string, d grammar.Dialect) iter.Seq[token.Token] {
	return func(yield func(token.Token) bool) {
		l := New(src, d)
		for {
			t := l.Next()
			if !yield(t) || t.Kind == token.EOF {
				return
			}
		}
	}
}

package token

import "fmt"

// Kind classifies a token.
type Kind int

const (
	// EOF marks the end of input. It carries an empty text.
	EOF Kind = iota
	// Mnemonic is an identifier found in the dialect's grammar table.
	Mnemonic
	// Register is a workspace register, R0 to R15.
	Register
	// Number is a decimal, >hex or :binary literal.
	Number
	// String is a quoted literal, 'like ''this'''.
	String
	// Symbol is any other identifier, including $ and !local names.
	Symbol
	// Punct is a single punctuation character.
	Punct
	// Comment is a line comment, including its ; or * marker.
	Comment
	// Newline ends a physical line.
	Newline
	// Whitespace separates tokens and is skipped by the parser.
	Whitespace
	// Continuation is a line-join marker: \ up to and including the newline.
	Continuation
	// Error is a character no other kind accepts.
	Error
)

var kindNames = [...]string{
	EOF:          "EOF",
	Mnemonic:     "MNEMONIC",
	Register:     "REGISTER",
	Number:       "NUMBER",
	String:       "STRING",
	Symbol:       "SYMBOL",
	Punct:        "PUNCTUATION",
	Comment:      "LINE_COMMENT",
	Newline:      "NEWLINE",
	Whitespace:   "WHITESPACE",
	Continuation: "CONTINUATION",
	Error:        "ERROR",
}

func (k Kind) String() string {
	if k >= 0 && int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Trivia reports whether the parser ignores tokens of this kind.
func (k Kind) Trivia() bool {
	return k == Whitespace || k == Continuation
}

// Token is one classified piece of source text.
type Token struct {
	Kind Kind
	Text string
	Span Span
	// Unterminated is set on a string literal missing its closing quote.
	Unterminated bool
}

// Is reports whether t is a Punct token with the given text.
func (t Token) Is(punct string) bool {
	return t.Kind == Punct && t.Text == punct
}

// EndsStatement reports whether t terminates a logical line.
func (t Token) EndsStatement() bool {
	return t.Kind == Newline || t.Kind == EOF
}

func (t Token) String() string {
	if t.Kind == EOF {
		return "<EOF>"
	}
	return fmt.Sprintf("%s %q @%s", t.Kind, t.Text, t.Span.Start)
}

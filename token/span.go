package token

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// Pos is a position in source text. Offset is in bytes from the start;
// Line and Column are 1-based, Column counts runes.
type Pos struct {
	Offset int
	Line   int
	Column int
}

// StartPos is the position of the first byte of any source.
var StartPos = Pos{Offset: 0, Line: 1, Column: 1}

func (p Pos) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}

// Advance returns the position just past text starting at p.
func (p Pos) Advance(text string) Pos {
	p.Offset += len(text)
	if n := strings.Count(text, "\n"); n > 0 {
		p.Line += n
		p.Column = 1 + utf8.RuneCountInString(text[strings.LastIndexByte(text, '\n')+1:])
		return p
	}
	p.Column += utf8.RuneCountInString(text)
	return p
}

// Span is a half-open range [Start, End) of source text.
type Span struct {
	Start Pos
	End   Pos
}

// SpanOf returns the span covered by text starting at start.
func SpanOf(start Pos, text string) Span {
	return Span{Start: start, End: start.Advance(text)}
}

// Join returns the smallest span covering a and b.
func Join(a, b Span) Span {
	if a.IsZero() {
		return b
	}
	if b.IsZero() {
		return a
	}
	out := a
	if b.Start.Offset < out.Start.Offset {
		out.Start = b.Start
	}
	if b.End.Offset > out.End.Offset {
		out.End = b.End
	}
	return out
}

// IsZero reports whether s is the zero span.
func (s Span) IsZero() bool {
	return s == Span{}
}

// Len is the span's length in bytes.
func (s Span) Len() int {
	return s.End.Offset - s.Start.Offset
}

// Contains reports whether the byte offset lies inside s.
func (s Span) Contains(offset int) bool {
	return offset >= s.Start.Offset && offset < s.End.Offset
}

// Text slices the span out of src. Out of range spans yield "".
func (s Span) Text(src string) string {
	if s.Start.Offset < 0 || s.End.Offset > len(src) || s.Start.Offset > s.End.Offset {
		return ""
	}
	return src[s.Start.Offset:s.End.Offset]
}

func (s Span) String() string {
	return fmt.Sprintf("%s-%s", s.Start, s.End)
}

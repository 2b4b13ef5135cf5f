package redfa

import "unicode/utf8"

type tokenType int

const (
	tEOF    tokenType = iota
	tChar             // literal rune
	tUnion            // |
	tStar             // *
	tLParen           // (
	tRParen           // )
)

func (t tokenType) String() string {
	switch t {
	case tEOF:
		return "EOF"
	case tChar:
		return "Character"
	case tUnion:
		return "'|'"
	case tStar:
		return "'*'"
	case tLParen:
		return "'('"
	case tRParen:
		return "')'"
	}
	return "unknown"
}

type token struct {
	typ tokenType
	ch  rune // for tChar
	pos int  // byte offset in the pattern
}

type lexer struct {
	input string
	pos   int
}

func newLexer(s string) *lexer { return &lexer{input: s} }

// next returns the following token, or an EOF token once the input is
// exhausted. A backslash forces the next rune to be a literal; a
// standalone trailing backslash is itself a literal. The caller is
// responsible for rejecting invalid UTF-8 up front.
func (l *lexer) next() token {
	start := l.pos
	if l.pos >= len(l.input) {
		return token{typ: tEOF, pos: start}
	}
	r, size := utf8.DecodeRuneInString(l.input[l.pos:])
	l.pos += size
	switch r {
	case '|':
		return token{typ: tUnion, pos: start}
	case '*':
		return token{typ: tStar, pos: start}
	case '(':
		return token{typ: tLParen, pos: start}
	case ')':
		return token{typ: tRParen, pos: start}
	case '\\':
		if l.pos >= len(l.input) {
			return token{typ: tChar, ch: r, pos: start}
		}
		r2, s2 := utf8.DecodeRuneInString(l.input[l.pos:])
		l.pos += s2
		return token{typ: tChar, ch: r2, pos: start}
	default:
		return token{typ: tChar, ch: r, pos: start}
	}
}

// invalidUTF8 returns the byte offset of the first invalid sequence in s,
// or -1 if s is well formed.
func invalidUTF8(s string) int {
	for i := 0; i < len(s); {
		r, size := utf8.DecodeRuneInString(s[i:])
		if r == utf8.RuneError && size == 1 {
			return i
		}
		i += size
	}
	return -1
}

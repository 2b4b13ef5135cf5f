package redfa

import "fmt"

// LexError reports pattern input that cannot be tokenized. The literal
// alphabet is unrestricted, so the only cause is a pattern that is not
// valid UTF-8.
type LexError struct {
	Pos int // byte offset of the offending input
}

func (e *LexError) Error() string {
	return fmt.Sprintf("lex error at byte %d: invalid UTF-8 encoding", e.Pos)
}

// ParseError reports a token sequence that does not match the grammar.
type ParseError struct {
	Pos      int // byte offset of the offending token
	Expected string
	Got      string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse error at byte %d: expected %s, found %s", e.Pos, e.Expected, e.Got)
}

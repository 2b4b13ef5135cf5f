package redfa

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func scanAll(pat string) []token {
	l := newLexer(pat)
	var out []token
	for {
		tok := l.next()
		out = append(out, tok)
		if tok.typ == tEOF {
			return out
		}
	}
}

func types(toks []token) []tokenType {
	out := make([]tokenType, len(toks))
	for i, tok := range toks {
		out[i] = tok.typ
	}
	return out
}

func TestLexerScan(t *testing.T) {
	toks := scanAll(`a|(bc)*`)
	assert.Equal(t,
		[]tokenType{tChar, tUnion, tLParen, tChar, tChar, tRParen, tStar, tEOF},
		types(toks))
	assert.Equal(t, 'a', toks[0].ch)
	assert.Equal(t, 'b', toks[3].ch)
	assert.Equal(t, 'c', toks[4].ch)
}

func TestLexerEscapes(t *testing.T) {
	toks := scanAll(`a|\|\\(\)`)
	assert.Equal(t,
		[]tokenType{tChar, tUnion, tChar, tChar, tLParen, tChar, tEOF},
		types(toks))
	assert.Equal(t, '|', toks[2].ch)
	assert.Equal(t, '\\', toks[3].ch)
	assert.Equal(t, ')', toks[5].ch)
}

func TestLexerTrailingBackslash(t *testing.T) {
	toks := scanAll(`a\`)
	assert.Equal(t, []tokenType{tChar, tChar, tEOF}, types(toks))
	assert.Equal(t, '\\', toks[1].ch)
}

func TestLexerEmpty(t *testing.T) {
	toks := scanAll("")
	assert.Equal(t, []tokenType{tEOF}, types(toks))
}

func TestLexerPositions(t *testing.T) {
	toks := scanAll("(ab)*")
	for i, tok := range toks[:5] {
		assert.Equal(t, i, tok.pos)
	}
	// multi-byte literals advance by encoded size
	toks = scanAll("笑*")
	assert.Equal(t, 0, toks[0].pos)
	assert.Equal(t, 3, toks[1].pos)
}

func TestInvalidUTF8(t *testing.T) {
	assert.Equal(t, -1, invalidUTF8("a|b*"))
	assert.Equal(t, -1, invalidUTF8("山田"))
	assert.Equal(t, 1, invalidUTF8("a\xffb"))
}

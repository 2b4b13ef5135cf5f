package redfa

import (
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ------------------------------------------------------------------- helpers

func newRE(t *testing.T, pat string) *Regex {
	t.Helper()
	re, err := Compile(pat)
	require.NoError(t, err, "compile %q", pat)
	return re
}

func acc(t *testing.T, re *Regex, in string, want bool) {
	t.Helper()
	assert.Equalf(t, want, re.MatchString(in), "pattern %q on %q", re.String(), in)
}

// ------------------------------------------------------------------- matching

func TestUnion(t *testing.T) {
	re := newRE(t, "a|b")
	acc(t, re, "a", true)
	acc(t, re, "b", true)
	acc(t, re, "c", false)
	acc(t, re, "", false)
}

func TestStar(t *testing.T) {
	re := newRE(t, "a*")
	acc(t, re, "", true)
	acc(t, re, "aaaa", true)
	acc(t, re, "ab", false)
}

func TestGroupedStar(t *testing.T) {
	re := newRE(t, "(ab)*")
	acc(t, re, "", true)
	acc(t, re, "abab", true)
	acc(t, re, "aba", false)
}

func TestEmptyGroup(t *testing.T) {
	re := newRE(t, "a()b")
	acc(t, re, "ab", true)
	acc(t, re, "a", false)
}

func TestEmptyUnionBranch(t *testing.T) {
	re := newRE(t, "a(b|)")
	acc(t, re, "ab", true)
	acc(t, re, "a", true)
	acc(t, re, "abb", false)
}

func TestEmptyPattern(t *testing.T) {
	// policy: the empty pattern compiles and matches only the empty string
	re := newRE(t, "")
	acc(t, re, "", true)
	acc(t, re, "a", false)
}

func TestWholeStringSemantics(t *testing.T) {
	// no substring scanning: the entire input must be consumed
	re := newRE(t, "ab")
	acc(t, re, "ab", true)
	acc(t, re, "abc", false)
	acc(t, re, "xab", false)
}

func TestAlternativeWords(t *testing.T) {
	re := newRE(t, "(p(erl|ython|hp)|ruby)")
	acc(t, re, "python", true)
	acc(t, re, "ruby", true)
	acc(t, re, "VB", false)
}

func TestMultibyteLiterals(t *testing.T) {
	re := newRE(t, "山田(太|一|次|三)郎")
	acc(t, re, "山田太郎", true)
	acc(t, re, "山田三郎", true)
	acc(t, re, "山田郎", false)
}

func TestEscapedMetacharacters(t *testing.T) {
	re := newRE(t, `ｗｗ*|\(笑\)`)
	acc(t, re, "(笑)", true)
	acc(t, re, "ｗｗｗ", true)
	acc(t, re, "笑", false)

	// \c is the literal c
	re = newRE(t, `a\c`)
	acc(t, re, "ac", true)
	acc(t, re, `a\c`, false)

	// \\ is the literal backslash
	re = newRE(t, `a\\c`)
	acc(t, re, `a\c`, true)
	acc(t, re, "ac", false)
}

// ------------------------------------------------------------------- errors

func TestCompileErrors(t *testing.T) {
	for _, pat := range []string{"ab(cd", "e(*)f", ")h", "i|*", "*", "(a", "*a"} {
		_, err := Compile(pat)
		require.Error(t, err, "pattern %q", pat)
		assert.IsType(t, &ParseError{}, err, "pattern %q", pat)
	}
}

func TestCompileLexError(t *testing.T) {
	_, err := Compile("a\xffb")
	require.Error(t, err)
	var lerr *LexError
	require.ErrorAs(t, err, &lerr)
	assert.Equal(t, 1, lerr.Pos)
}

func TestMustCompilePanics(t *testing.T) {
	assert.Panics(t, func() { MustCompile("(a") })
	assert.NotPanics(t, func() { MustCompile("a|b") })
}

// ------------------------------------------------------------------- properties

func TestMatchIsDeterministic(t *testing.T) {
	re := newRE(t, "(ab|a)*c")
	for i := 0; i < 5; i++ {
		acc(t, re, "abac", true)
		acc(t, re, "aba", false)
	}
}

// Compiling the same pattern twice yields language-equivalent automata,
// checked by enumerating all words of length ≤ 4 over {a, b, c}.
func TestCompileIdempotence(t *testing.T) {
	re1 := newRE(t, "(ab|a)*c")
	re2 := newRE(t, "(ab|a)*c")

	alpha := []string{"", "a", "b", "c"}
	for _, x := range alpha {
		for _, y := range alpha {
			for _, z := range alpha {
				for _, w := range alpha {
					s := x + y + z + w
					assert.Equal(t, re1.MatchString(s), re2.MatchString(s), "word %q", s)
				}
			}
		}
	}
}

func TestConcurrentMatches(t *testing.T) {
	// a compiled Regex is shared read-only; each match has its own cursor
	re := newRE(t, "(ab)*")
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				assert.True(t, re.MatchString("abab"))
				assert.False(t, re.MatchString("aba"))
			}
		}()
	}
	wg.Wait()
}

// ------------------------------------------------------------------- trace

func TestTrace(t *testing.T) {
	re := newRE(t, "ab")
	d := re.DFA()

	trace := re.Trace("ab")
	require.Len(t, trace, 3)
	assert.Equal(t, d.Start, trace[0])
	assert.True(t, d.IsAccepting(trace[2]))

	assert.Equal(t, []int{d.Start}, re.Trace(""))

	// a wrong first rune pins the walk to the dead state
	trace = re.Trace("xb")
	assert.Equal(t, []int{d.Start, d.Dead(), d.Dead()}, trace)
}

// ------------------------------------------------------------------- dot

func TestExportDOT(t *testing.T) {
	re := newRE(t, "a|b")

	var buf strings.Builder
	ExportDOT(&buf, re.DFA())
	out := buf.String()
	assert.Contains(t, out, "digraph G {")
	assert.Contains(t, out, "doublecircle")
	assert.Contains(t, out, "_start")

	buf.Reset()
	ExportDOT(&buf, re.NFA())
	assert.Contains(t, buf.String(), "ε")

	buf.Reset()
	ExportDOT(&buf, 42)
	assert.Contains(t, buf.String(), "unknown graph type")
}

// ------------------------------------------------------------------- bench

func BenchmarkLongInput(b *testing.B) {
	re := MustCompile("(a|b)*abb")
	txt := strings.Repeat("ab", 500_000) + "b"
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = re.MatchString(txt)
	}
}

// Package redfa compiles a minimal regular-expression dialect (literals,
// union, Kleene star, grouping) into a DFA via Thompson construction and
// subset construction, and matches whole strings against it.
package redfa

import "unicode/utf8"

// Regex is a pattern compiled down to a DFA. The automaton is immutable
// after Compile, so a single Regex may be shared by concurrent matches
// without locking.
type Regex struct {
	pattern string
	ast     *astNode
	nfa     *NFA
	dfa     *DFA
}

// Compile builds the full pipeline for pattern: tokens, syntax tree,
// Thompson NFA, subset-construction DFA. The returned error is a
// *LexError (pattern is not valid UTF-8) or a *ParseError (pattern does
// not match the grammar). The empty pattern compiles and matches exactly
// the empty string.
func Compile(pattern string) (*Regex, error) {
	if i := invalidUTF8(pattern); i >= 0 {
		return nil, &LexError{Pos: i}
	}
	ast, err := newParser(pattern).parse()
	if err != nil {
		return nil, err
	}
	nfa := buildNFA(ast)
	return &Regex{
		pattern: pattern,
		ast:     ast,
		nfa:     nfa,
		dfa:     nfaToDFA(nfa),
	}, nil
}

// MustCompile is Compile for patterns known to be valid; it panics on
// error.
func MustCompile(pattern string) *Regex {
	r, err := Compile(pattern)
	if err != nil {
		panic(err)
	}
	return r
}

// String returns the source pattern.
func (r *Regex) String() string { return r.pattern }

// NFA returns the compiled Thompson automaton, read-only.
func (r *Regex) NFA() *NFA { return r.nfa }

// DFA returns the compiled deterministic automaton, read-only.
func (r *Regex) DFA() *DFA { return r.dfa }

// MatchString reports whether the DFA accepts s as a whole: started in
// the start state and fed every rune of s, it must end in an accepting
// state. No substring scanning. Matching never fails; runes outside the
// pattern alphabet step to the dead state.
func (r *Regex) MatchString(s string) bool {
	cur := r.dfa.Start
	for _, ch := range s {
		cur = r.dfa.step(cur, ch)
	}
	return r.dfa.IsAccepting(cur)
}

// Trace is MatchString's diagnostic twin: it returns the DFA state
// handles visited while consuming s, the start state first.
func (r *Regex) Trace(s string) []int {
	visited := make([]int, 0, utf8.RuneCountInString(s)+1)
	cur := r.dfa.Start
	visited = append(visited, cur)
	for _, ch := range s {
		cur = r.dfa.step(cur, ch)
		visited = append(visited, cur)
	}
	return visited
}

package redfa

import "sort"

// NFA is a Thompson automaton over small-integer state handles. Labeled
// and epsilon transitions live in separate tables keyed by state handle,
// so the cyclic graph needs no pointer chasing. Immutable once built.
type NFA struct {
	Start  int
	Accept int

	states int
	trans  map[int]map[rune][]int
	eps    map[int][]int
	alpha  []rune // sorted literal alphabet of the pattern
}

// NumStates returns the number of allocated states.
func (n *NFA) NumStates() int { return n.states }

// Alphabet returns the literal runes appearing in the pattern, sorted.
func (n *NFA) Alphabet() []rune { return append([]rune(nil), n.alpha...) }

func (n *NFA) nextStates(state int, ch rune) []int {
	if row := n.trans[state]; row != nil {
		return row[ch]
	}
	return nil
}

// closure expands set to its epsilon fixed point, in place.
func (n *NFA) closure(set map[int]struct{}) map[int]struct{} {
	stack := make([]int, 0, len(set))
	for s := range set {
		stack = append(stack, s)
	}
	for len(stack) > 0 {
		s := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for _, t := range n.eps[s] {
			if _, ok := set[t]; !ok {
				set[t] = struct{}{}
				stack = append(stack, t)
			}
		}
	}
	return set
}

// move returns the states reachable from set by one ch-labeled edge.
func (n *NFA) move(set map[int]struct{}, ch rune) map[int]struct{} {
	out := make(map[int]struct{})
	for s := range set {
		for _, t := range n.nextStates(s, ch) {
			out[t] = struct{}{}
		}
	}
	return out
}

// nfaBuilder owns the state counter and transition tables of one build,
// so concurrent compiles never share mutable state.
type nfaBuilder struct {
	next  int
	trans map[int]map[rune][]int
	eps   map[int][]int
	alpha map[rune]struct{}
}

func newNFABuilder() *nfaBuilder {
	return &nfaBuilder{
		trans: make(map[int]map[rune][]int),
		eps:   make(map[int][]int),
		alpha: make(map[rune]struct{}),
	}
}

func (b *nfaBuilder) state() int {
	id := b.next
	b.next++
	return id
}

func (b *nfaBuilder) edge(from int, ch rune, to int) {
	row := b.trans[from]
	if row == nil {
		row = make(map[rune][]int)
		b.trans[from] = row
	}
	row[ch] = append(row[ch], to)
	b.alpha[ch] = struct{}{}
}

func (b *nfaBuilder) epsilon(from, to int) {
	b.eps[from] = append(b.eps[from], to)
}

// build lowers node by structural induction, returning the fragment's
// start and accept handles. Every case allocates fresh states, so
// fragments compose without aliasing, and every fragment has exactly one
// start and one accept state.
func (b *nfaBuilder) build(node *astNode) (start, accept int) {
	switch node.typ {
	case nChar:
		start, accept = b.state(), b.state()
		b.edge(start, node.ch, accept)
	case nEmpty:
		start, accept = b.state(), b.state()
		b.epsilon(start, accept)
	case nConcat:
		s1, a1 := b.build(node.left)
		s2, a2 := b.build(node.right)
		b.epsilon(a1, s2)
		start, accept = s1, a2
	case nUnion:
		s1, a1 := b.build(node.left)
		s2, a2 := b.build(node.right)
		start, accept = b.state(), b.state()
		b.epsilon(start, s1)
		b.epsilon(start, s2)
		b.epsilon(a1, accept)
		b.epsilon(a2, accept)
	case nStar:
		s, a := b.build(node.left)
		start, accept = b.state(), b.state()
		b.epsilon(start, s)
		b.epsilon(a, accept)
		b.epsilon(a, s) // repeat
		// zero occurrences; redundant with start→s→…, kept so every
		// fragment has the same single-start/single-accept frame
		b.epsilon(start, accept)
	}
	return start, accept
}

func buildNFA(root *astNode) *NFA {
	b := newNFABuilder()
	start, accept := b.build(root)

	alpha := make([]rune, 0, len(b.alpha))
	for r := range b.alpha {
		alpha = append(alpha, r)
	}
	sort.Slice(alpha, func(i, j int) bool { return alpha[i] < alpha[j] })

	return &NFA{
		Start:  start,
		Accept: accept,
		states: b.next,
		trans:  b.trans,
		eps:    b.eps,
		alpha:  alpha,
	}
}

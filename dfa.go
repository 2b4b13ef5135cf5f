package redfa

import (
	"fmt"
	"sort"
)

type dfaState struct {
	id     int
	accept bool
	trans  map[rune]int
}

// DFA is the determinized automaton. Each state stands for an
// epsilon-closed subset of NFA states; the transition function is total
// over the pattern alphabet, with the empty subset materialized as an
// absorbing dead state. Immutable after construction, so one DFA may
// serve any number of concurrent matches.
type DFA struct {
	Start int
	Alpha []rune

	dead   int
	states []*dfaState
}

// NumStates returns the number of DFA states, dead state included.
func (d *DFA) NumStates() int { return len(d.states) }

// Dead returns the handle of the absorbing non-accepting state.
func (d *DFA) Dead() int { return d.dead }

// IsAccepting reports whether state id is accepting.
func (d *DFA) IsAccepting(id int) bool { return d.states[id].accept }

// step is the total transition function: runes outside the pattern
// alphabet fall through to the dead state.
func (d *DFA) step(from int, ch rune) int {
	if to, ok := d.states[from].trans[ch]; ok {
		return to
	}
	return d.dead
}

// nfaToDFA runs the subset construction. Two discovery paths reaching the
// same subset must yield the same DFA state, so subsets are deduplicated
// by their canonical sorted-handle key. The number of produced states is
// bounded by 2^NumStates of the NFA.
func nfaToDFA(n *NFA) *DFA {
	key := func(set map[int]struct{}) string {
		ids := make([]int, 0, len(set))
		for s := range set {
			ids = append(ids, s)
		}
		sort.Ints(ids)
		return fmt.Sprint(ids)
	}

	d := &DFA{Alpha: n.Alphabet()}
	index := make(map[string]int)

	add := func(set map[int]struct{}) (id int, fresh bool) {
		k := key(set)
		if id, ok := index[k]; ok {
			return id, false
		}
		_, accept := set[n.Accept]
		id = len(d.states)
		index[k] = id
		d.states = append(d.states, &dfaState{id: id, accept: accept, trans: make(map[rune]int)})
		return id, true
	}

	startSet := n.closure(map[int]struct{}{n.Start: {}})
	d.Start, _ = add(startSet)
	// the dead state exists even when unreachable from the start subset,
	// keeping step total over the alphabet
	d.dead, _ = add(map[int]struct{}{})

	queue := []map[int]struct{}{startSet, {}}
	ids := []int{d.Start, d.dead}
	for len(queue) > 0 {
		cur, curID := queue[0], ids[0]
		queue, ids = queue[1:], ids[1:]
		for _, ch := range d.Alpha {
			next := n.closure(n.move(cur, ch))
			id, fresh := add(next)
			if fresh {
				queue = append(queue, next)
				ids = append(ids, id)
			}
			d.states[curID].trans[ch] = id
		}
	}
	return d
}

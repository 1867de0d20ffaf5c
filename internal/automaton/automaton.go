// Package automaton implements an Aho-Corasick matcher over residue strings.
//
// Build lays the patterns into a trie, links every state to its longest
// proper suffix state (breadth first), and then closes the goto function so
// that Next never has to walk fail links. Each state carries the ordered list
// of pattern indexes that end there, including those inherited through its
// fail link, so duplicate and nested patterns are all reported.
package automaton

import "sort"

// Root is the start state.
const Root = 0

type state struct {
	next     map[byte]int
	fail     int
	parent   int
	label    byte
	depth    int
	patterns []int
}

// Automaton is immutable after Build and safe for concurrent use.
type Automaton struct {
	states []state
}

// Build constructs the automaton. Empty patterns are skipped but keep their
// index, so pattern ids always equal positions in the input slice.
func Build(patterns [][]byte) *Automaton {
	a := &Automaton{
		states: []state{{next: map[byte]int{}}},
	}

	// 1) trie
	for id, p := range patterns {
		if len(p) == 0 {
			continue
		}
		cur := Root
		for _, c := range p {
			nxt, ok := a.states[cur].next[c]
			if !ok {
				a.states = append(a.states, state{
					next:   map[byte]int{},
					parent: cur,
					label:  c,
					depth:  a.states[cur].depth + 1,
				})
				nxt = len(a.states) - 1
				a.states[cur].next[c] = nxt
			}
			cur = nxt
		}
		a.states[cur].patterns = append(a.states[cur].patterns, id)
	}

	// 2) fail links, breadth first, inheriting pattern ids from the target
	order := make([]int, 0, len(a.states))
	queue := make([]int, 0, len(a.states))
	for _, c := range a.symbols(Root) {
		child := a.states[Root].next[c]
		a.states[child].fail = Root
		queue = append(queue, child)
	}
	for len(queue) > 0 {
		r := queue[0]
		queue = queue[1:]
		order = append(order, r)
		for _, c := range a.symbols(r) {
			s := a.states[r].next[c]
			queue = append(queue, s)
			f := a.states[r].fail
			for f != Root {
				if _, ok := a.states[f].next[c]; ok {
					break
				}
				f = a.states[f].fail
			}
			if t, ok := a.states[f].next[c]; ok && t != s {
				f = t
			}
			a.states[s].fail = f
			if inh := a.states[f].patterns; len(inh) > 0 {
				a.states[s].patterns = append(a.states[s].patterns, inh...)
			}
		}
	}

	// 3) goto closure; fail targets are shallower so they are already closed
	for _, s := range order {
		f := a.states[s].fail
		for c, t := range a.states[f].next {
			if _, ok := a.states[s].next[c]; !ok {
				a.states[s].next[c] = t
			}
		}
	}
	return a
}

// symbols returns the trie edges of s in byte order. Only valid before the
// closure step, which is the only place it is called.
func (a *Automaton) symbols(s int) []byte {
	out := make([]byte, 0, len(a.states[s].next))
	for c := range a.states[s].next {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// Next is the closed goto function: a single lookup, Root when no edge exists.
func (a *Automaton) Next(s int, c byte) int {
	if t, ok := a.states[s].next[c]; ok {
		return t
	}
	return Root
}

// Patterns returns the ids of all patterns ending at state s. The slice is
// shared and must not be modified.
func (a *Automaton) Patterns(s int) []int { return a.states[s].patterns }

// Len is the number of states.
func (a *Automaton) Len() int { return len(a.states) }

// Hit is one pattern occurrence ending at End (inclusive, 0-based).
type Hit struct {
	End     int
	Pattern int
}

// Scan feeds text through the automaton, calling visit for every occurrence
// in order of end position. A non-nil error from visit stops the scan.
func (a *Automaton) Scan(text []byte, visit func(Hit) error) error {
	s := Root
	for i, c := range text {
		s = a.Next(s, c)
		for _, id := range a.Patterns(s) {
			if err := visit(Hit{End: i, Pattern: id}); err != nil {
				return err
			}
		}
	}
	return nil
}


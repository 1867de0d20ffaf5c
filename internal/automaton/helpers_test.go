package automaton

// Test-only views of the automaton's internals.

func (a *Automaton) Fail(s int) int { return a.states[s].fail }

func (a *Automaton) Depth(s int) int { return a.states[s].depth }

// Path spells the string from Root to s.
func (a *Automaton) Path(s int) []byte {
	out := make([]byte, a.states[s].depth)
	for i := len(out) - 1; s != Root; i-- {
		out[i] = a.states[s].label
		s = a.states[s].parent
	}
	return out
}

func (a *Automaton) FindAll(text []byte) []Hit {
	var out []Hit
	_ = a.Scan(text, func(h Hit) error {
		out = append(out, h)
		return nil
	})
	return out
}

package zzre

import "slices"

// Match reports whether the automaton accepts the whole of text. Text is read
// one rune at a time.
func (a *Automaton) Match(text string) bool {
	return slices.Contains(a.run(text, nil), a.Accept())
}

// ActiveStates returns the set of states the automaton could be in after
// reading text, in ascending order. It is empty if the automaton got stuck.
func (a *Automaton) ActiveStates(text string) []int {
	return a.run(text, nil)
}

// run steps the automaton through text, returning the final set of active
// states. If observe is not nil, it is called with the active set after
// each rune is consumed.
func (a *Automaton) run(text string, observe func(step int, active []int)) []int {
	accept := a.Accept()
	current := a.eps.reachableFrom([]int{a.Start()})

	step := 0
	for _, c := range text {
		advance := make([]int, 0, len(current))
		for _, s := range current {
			// There are no transitions out of the accepting state.
			if s == accept {
				continue
			}
			if a.expr[s].Matches(c) {
				advance = append(advance, s+1)
			}
		}
		current = a.eps.reachableFrom(advance)

		step++
		if observe != nil {
			observe(step, current)
		}

		// Nothing can match the rest of the text.
		if len(current) == 0 {
			return current
		}
	}
	return current
}

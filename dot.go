package zzre

import (
	"fmt"
	"io"
	"strconv"
)

// WriteDot writes a digraph representing the automaton to the writer
// (in GraphViz syntax). States in hilite are filled green. Solid edges
// consume a character, dashed edges are epsilon transitions.
func (a *Automaton) WriteDot(w io.Writer, hilite map[int]struct{}) error {
	if _, err := fmt.Fprintln(w, "digraph {\n\trankdir=LR;"); err != nil {
		return err
	}

	if _, err := fmt.Fprintln(w, "\tinitial [label=\"\", style=invis];"); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "\tinitial -> state_%d [label=%s];\n", a.Start(), strconv.Quote(a.src)); err != nil {
		return err
	}

	accept := a.Accept()
	for s := 0; s <= accept; s++ {
		shape := "circle"
		if s == accept {
			shape = "doublecircle"
		}
		fill := "white"
		if _, ok := hilite[s]; ok {
			fill = "green"
		}
		if _, err := fmt.Fprintf(w, "\tstate_%d [label=\"%d\", shape=%s, style=filled, fillcolor=%s];\n", s, s, shape, fill); err != nil {
			return err
		}
	}

	for s := 0; s < accept; s++ {
		if sym := a.expr[s]; consumes(sym) {
			if _, err := fmt.Fprintf(w, "\tstate_%d -> state_%d [label=%s];\n", s, s+1, strconv.Quote(sym.String())); err != nil {
				return err
			}
		}
	}

	for s := 0; s <= accept; s++ {
		for _, t := range a.eps.out[s] {
			if _, err := fmt.Fprintf(w, "\tstate_%d -> state_%d [label=\"ε\", style=dashed];\n", s, t); err != nil {
				return err
			}
		}
	}

	if _, err := fmt.Fprintln(w, "}"); err != nil {
		return err
	}
	return nil
}

// consumes reports whether a state guarded by sym can consume a character.
func consumes(sym Symbol) bool {
	switch sym {
	case LeftGroup, RightGroup, Alternation, Repetition, Epsilon:
		return false
	}
	return true
}

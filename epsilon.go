package zzre

import (
	"fmt"
	"slices"
)

// epsilonGraph holds the epsilon transitions of an automaton as a directed
// graph over state indices. Cycles are allowed.
type epsilonGraph struct {
	// out[p] contains the states directly reachable from p.
	out [][]int
}

func newEpsilonGraph(stateCount int) *epsilonGraph {
	return &epsilonGraph{out: make([][]int, stateCount)}
}

func (g *epsilonGraph) stateCount() int { return len(g.out) }

func (g *epsilonGraph) valid(p int) bool { return 0 <= p && p < len(g.out) }

// addTransition adds an epsilon transition from p to q. Adding the same
// transition twice has no further effect.
func (g *epsilonGraph) addTransition(p, q int) error {
	if !g.valid(p) || !g.valid(q) {
		return fmt.Errorf("%w: transition %d -> %d in automaton with %d states", ErrInvalidState, p, q, len(g.out))
	}
	if slices.Contains(g.out[p], q) {
		return nil
	}
	g.out[p] = append(g.out[p], q)
	return nil
}

// transitionsFrom returns the states directly reachable from p.
func (g *epsilonGraph) transitionsFrom(p int) ([]int, error) {
	if !g.valid(p) {
		return nil, fmt.Errorf("%w: state %d in automaton with %d states", ErrInvalidState, p, len(g.out))
	}
	return g.out[p], nil
}

// reachableFrom returns every state reachable from any of the sources by
// zero or more epsilon transitions, in ascending order. Sources outside the
// graph are ignored.
func (g *epsilonGraph) reachableFrom(sources []int) []int {
	// Multi-source breadth-first search.
	visited := make([]bool, len(g.out))
	q := make([]int, 0, len(sources))
	for _, s := range sources {
		if !g.valid(s) || visited[s] {
			continue
		}
		visited[s] = true
		q = append(q, s)
	}
	for len(q) > 0 {
		p := q[0]
		q = q[1:]

		for _, s := range g.out[p] {
			if visited[s] {
				continue
			}
			visited[s] = true
			q = append(q, s)
		}
	}

	reachable := make([]int, 0, len(g.out))
	for s, v := range visited {
		if v {
			reachable = append(reachable, s)
		}
	}
	return reachable
}

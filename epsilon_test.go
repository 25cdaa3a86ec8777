package zzre

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

// testGraph has a cycle 1 -> 2 -> 3 -> 1, a branch 3 -> 4, and an isolated
// state 5.
func testGraph(t *testing.T) *epsilonGraph {
	t.Helper()
	g := newEpsilonGraph(6)
	for _, e := range [][2]int{{0, 1}, {1, 2}, {2, 3}, {3, 1}, {3, 4}, {3, 4}} {
		if err := g.addTransition(e[0], e[1]); err != nil {
			t.Fatalf("addTransition(%d, %d) = %v", e[0], e[1], err)
		}
	}
	return g
}

func TestEpsilonGraph_TransitionsFrom(t *testing.T) {
	g := testGraph(t)

	tests := []struct {
		state int
		want  []int
	}{
		{0, []int{1}},
		{3, []int{1, 4}}, // duplicate 3 -> 4 is dropped
		{5, nil},
	}
	for _, test := range tests {
		got, err := g.transitionsFrom(test.state)
		if err != nil {
			t.Errorf("transitionsFrom(%d) error = %v", test.state, err)
			continue
		}
		if diff := cmp.Diff(got, test.want); diff != "" {
			t.Errorf("transitionsFrom(%d) diff (-got +want):\n%s", test.state, diff)
		}
	}
}

func TestEpsilonGraph_InvalidState(t *testing.T) {
	g := newEpsilonGraph(3)

	for _, e := range [][2]int{{-1, 0}, {0, 3}, {3, 0}, {0, -1}} {
		if err := g.addTransition(e[0], e[1]); !errors.Is(err, ErrInvalidState) {
			t.Errorf("addTransition(%d, %d) = %v, want %v", e[0], e[1], err, ErrInvalidState)
		}
	}
	for _, p := range []int{-1, 3, 100} {
		if _, err := g.transitionsFrom(p); !errors.Is(err, ErrInvalidState) {
			t.Errorf("transitionsFrom(%d) = %v, want %v", p, err, ErrInvalidState)
		}
	}
}

func TestEpsilonGraph_ReachableFrom(t *testing.T) {
	g := testGraph(t)

	tests := []struct {
		sources []int
		want    []int
	}{
		{nil, []int{}},
		{[]int{0}, []int{0, 1, 2, 3, 4}},
		{[]int{2}, []int{1, 2, 3, 4}},
		{[]int{4}, []int{4}},
		{[]int{5, 4}, []int{4, 5}},
		{[]int{4, 4, 4}, []int{4}},
		{[]int{5, 3}, []int{1, 2, 3, 4, 5}},
	}
	for _, test := range tests {
		got := g.reachableFrom(test.sources)
		if diff := cmp.Diff(got, test.want); diff != "" {
			t.Errorf("reachableFrom(%v) diff (-got +want):\n%s", test.sources, diff)
		}
	}
}

func TestEpsilonGraph_ClosureProperties(t *testing.T) {
	g := testGraph(t)

	seeds := [][]int{{}, {0}, {1}, {4}, {5}, {0, 5}, {2, 4}, {0, 1, 2, 3, 4, 5}}
	for _, seed := range seeds {
		closure := g.reachableFrom(seed)

		// The closure includes its seed.
		in := make(map[int]bool)
		for _, s := range closure {
			in[s] = true
		}
		for _, s := range seed {
			if !in[s] {
				t.Errorf("reachableFrom(%v) = %v, missing seed state %d", seed, closure, s)
			}
		}

		// The closure is idempotent.
		if diff := cmp.Diff(g.reachableFrom(closure), closure); diff != "" {
			t.Errorf("reachableFrom(reachableFrom(%v)) diff (-got +want):\n%s", seed, diff)
		}
	}
}

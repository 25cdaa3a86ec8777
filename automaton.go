package zzre

import "fmt"

// Automaton is a non-deterministic finite automaton built from an expression
// using Thompson's construction. States are numbered 0 to N, where N is the
// length of the normalised expression. State 0 is the start state and state
// N is the only accepting state. State i (for i < N) is guarded by symbol i
// of the expression.
//
// An Automaton is immutable once built, and is safe for concurrent use.
type Automaton struct {
	src  string
	expr Expression
	eps  *epsilonGraph
}

// Compile normalises and builds an automaton from a raw expression.
func Compile(raw string, opts ...ParseOption) (*Automaton, error) {
	expr, err := Normalise(raw, opts...)
	if err != nil {
		return nil, err
	}
	a, err := Build(expr)
	if err != nil {
		return nil, err
	}
	a.src = raw
	return a, nil
}

// MustCompile calls Compile, and panics if unable to compile the expression.
func MustCompile(raw string, opts ...ParseOption) *Automaton {
	a, err := Compile(raw, opts...)
	if err != nil {
		panic(err)
	}
	return a
}

// Build builds an automaton from a normalised expression. The expression is
// copied, so later changes to expr do not affect the automaton. Every symbol
// must be a shorthand tag or a printable ASCII character that is not an
// uppercase letter, as produced by Normalise.
func Build(expr Expression) (*Automaton, error) {
	for i, sym := range expr {
		if !sym.valid() {
			return nil, fmt.Errorf("%w: %v at symbol %d", ErrUnsupportedSymbol, sym, i)
		}
	}
	expr = append(Expression(nil), expr...)
	accept := len(expr)
	eps := newEpsilonGraph(accept + 1)

	// The operator stack holds the indices of ( and | symbols that have not
	// yet been closed.
	var opstack []int
	pop := func() int {
		op := opstack[len(opstack)-1]
		opstack = opstack[:len(opstack)-1]
		return op
	}

	for curr := 0; curr < accept; curr++ {
		// Each symbol is implicitly its own group, until a ) says otherwise.
		groupStart := curr

		switch expr[curr] {
		case LeftGroup, Alternation:
			opstack = append(opstack, curr)

		case RightGroup:
			if len(opstack) == 0 {
				return nil, fmt.Errorf("%w: ) at symbol %d has no matching (", ErrMismatchedParentheses, curr)
			}
			op := pop()
			switch expr[op] {
			case LeftGroup:
				groupStart = op

			case Alternation:
				// Collect every | belonging to this group.
				var branches []int
				for expr[op] == Alternation {
					branches = append(branches, op)
					if len(opstack) == 0 {
						return nil, fmt.Errorf("%w: | at symbol %d is not inside a group", ErrMalformedAlternation, op)
					}
					op = pop()
				}
				if expr[op] != LeftGroup {
					return nil, fmt.Errorf("%w: alternation closed by ) at symbol %d does not start with (", ErrMalformedAlternation, curr)
				}
				groupStart = op

				for _, or := range branches {
					// Enter each branch from the (, and leave it at the ).
					if err := eps.addTransition(groupStart, or+1); err != nil {
						return nil, err
					}
					if err := eps.addTransition(or, curr); err != nil {
						return nil, err
					}
				}

			default:
				return nil, fmt.Errorf("%w: symbol %v at %d on the operator stack", ErrInternal, expr[op], op)
			}
		}

		// Lookahead for *, which applies to the group that ends here.
		if curr+1 < accept && expr[curr+1] == Repetition {
			if err := eps.addTransition(groupStart, curr+1); err != nil {
				return nil, err
			}
			if err := eps.addTransition(curr+1, groupStart); err != nil {
				return nil, err
			}
		}

		// Structural symbols never consume input.
		switch expr[curr] {
		case LeftGroup, Repetition, RightGroup, Epsilon:
			if err := eps.addTransition(curr, curr+1); err != nil {
				return nil, err
			}
		}
	}

	if len(opstack) > 0 {
		return nil, fmt.Errorf("%w: %d unclosed ( or |, first at symbol %d", ErrMismatchedParentheses, len(opstack), opstack[0])
	}

	return &Automaton{
		src:  expr.String(),
		expr: expr,
		eps:  eps,
	}, nil
}

// Start returns the start state, which is always 0.
func (a *Automaton) Start() int { return 0 }

// Accept returns the accepting state, which is the last state.
func (a *Automaton) Accept() int { return len(a.expr) }

// NumStates returns the number of states in the automaton.
func (a *Automaton) NumStates() int { return a.eps.stateCount() }

// Expression returns a copy of the normalised expression.
func (a *Automaton) Expression() Expression { return append(Expression(nil), a.expr...) }

// EpsilonTransitions returns the states directly reachable from p without
// consuming input.
func (a *Automaton) EpsilonTransitions(p int) ([]int, error) {
	out, err := a.eps.transitionsFrom(p)
	if err != nil {
		return nil, err
	}
	return append([]int(nil), out...), nil
}

// String returns the expression the automaton was compiled from.
func (a *Automaton) String() string { return a.src }

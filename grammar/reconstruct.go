package grammar

import (
	"fmt"
	"strings"
)

// A statePair names the nonterminal deriving the strings that take the
// automaton from one state to another, leaving the stack as it began.
type statePair struct {
	from string
	to   string
}

func (p statePair) render() string {
	return p.from + p.to
}

// ToGrammar reconstructs a context-free grammar generating the language the
// automaton accepts between StartState and EndState. Every push of a stack
// symbol couples with every pop of the same symbol, and the resulting pairs
// split through every intermediate state.
func (m *PushdownAutomaton) ToGrammar() (*ContextFreeGrammar, error) {
	g := NewContextFreeGrammar()
	g.start = statePair{StartState, EndState}.render()

	pairs := map[statePair]struct{}{}
	for _, sym := range m.symOrder {
		moves := m.symbols[sym]
		for _, push := range moves.pushes {
			for _, pop := range moves.pops {
				head := statePair{push.from, pop.to}
				body := statePair{push.to, pop.from}
				err := g.addReconstructed(head, []string{push.read, body.render(), pop.read})
				if err != nil {
					return nil, err
				}
				pairs[head] = struct{}{}
				pairs[body] = struct{}{}
			}
		}
	}

	// Close the pair set under composition: a run from x to y followed by a
	// run from y to z is a run from x to z.
	for {
		added := map[statePair]struct{}{}
		for xy := range pairs {
			for yz := range pairs {
				if xy.to != yz.from {
					continue
				}
				xz := statePair{xy.from, yz.to}
				if _, ok := pairs[xz]; ok {
					continue
				}
				added[xz] = struct{}{}
			}
		}
		if len(added) == 0 {
			break
		}
		for p := range added {
			pairs[p] = struct{}{}
		}
	}

	for _, x := range m.stateNames {
		for _, y := range m.stateNames {
			xy := statePair{x, y}
			if _, ok := pairs[xy]; !ok {
				continue
			}
			if !m.pathExists(x, y) {
				continue
			}
			for _, z := range m.stateNames {
				yz := statePair{y, z}
				if _, ok := pairs[yz]; !ok {
					continue
				}
				if !m.pathExists(y, z) {
					continue
				}
				xz := statePair{x, z}
				if x == z {
					err := g.addReconstructed(xz, []string{Epsilon})
					if err != nil {
						return nil, err
					}
				}
				if x == y && y == z {
					continue
				}
				err := g.addReconstructed(xz, []string{xy.render(), yz.render()})
				if err != nil {
					return nil, err
				}
			}
		}
	}
	return g, nil
}

func (g *ContextFreeGrammar) addReconstructed(head statePair, terms []string) error {
	err := g.AddProduction(head.render(), terms)
	if err != nil {
		return newInternalInconsistencyError(fmt.Sprintf("reconstructed production %v -> %v is malformed: %v", head.render(), strings.Join(terms, " "), err))
	}
	return nil
}

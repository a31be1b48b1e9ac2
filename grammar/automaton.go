package grammar

import "fmt"

type StackAction string

const (
	ActionPush = StackAction("PUSH")
	ActionPop  = StackAction("POP")
)

type Transition struct {
	Next   string
	Read   string
	Action StackAction
	Value  string
}

func (t *Transition) String() string {
	return fmt.Sprintf("{%v, %v, %v %v}", t.Next, t.Read, t.Action, t.Value)
}

type stackMove struct {
	from string
	to   string
	read string
}

type stackSymbolMoves struct {
	pushes []*stackMove
	pops   []*stackMove
}

type PushdownAutomaton struct {
	// stateOrder, stateNames, and symOrder keep first-reference order so
	// rendering and reconstruction stay deterministic.
	stateOrder  []string
	transitions map[string][]*Transition
	stateNames  []string
	stateSet    map[string]struct{}
	symOrder    []string
	symbols     map[string]*stackSymbolMoves
}

func NewPushdownAutomaton() *PushdownAutomaton {
	return &PushdownAutomaton{
		transitions: map[string][]*Transition{},
		stateSet:    map[string]struct{}{},
		symbols:     map[string]*stackSymbolMoves{},
	}
}

func (m *PushdownAutomaton) AddTransition(from, to, read string, action StackAction, value string) {
	if _, ok := m.transitions[from]; !ok {
		m.stateOrder = append(m.stateOrder, from)
	}
	m.transitions[from] = append(m.transitions[from], &Transition{
		Next:   to,
		Read:   read,
		Action: action,
		Value:  value,
	})
	m.addStateName(from)
	m.addStateName(to)

	moves, ok := m.symbols[value]
	if !ok {
		moves = &stackSymbolMoves{}
		m.symbols[value] = moves
		m.symOrder = append(m.symOrder, value)
	}
	move := &stackMove{
		from: from,
		to:   to,
		read: read,
	}
	if action == ActionPush {
		moves.pushes = append(moves.pushes, move)
	} else {
		moves.pops = append(moves.pops, move)
	}
}

func (m *PushdownAutomaton) addStateName(name string) {
	if _, ok := m.stateSet[name]; ok {
		return
	}
	m.stateSet[name] = struct{}{}
	m.stateNames = append(m.stateNames, name)
}

func (m *PushdownAutomaton) States() []string {
	return m.stateOrder
}

func (m *PushdownAutomaton) StateNames() []string {
	return m.stateNames
}

func (m *PushdownAutomaton) TransitionsOf(name string) []*Transition {
	return m.transitions[name]
}

func (m *PushdownAutomaton) StackSymbols() []string {
	return m.symOrder
}

func (m *PushdownAutomaton) pathExists(from, to string) bool {
	if from == to {
		return true
	}
	visited := map[string]struct{}{
		from: {},
	}
	frontier := []string{from}
	for len(frontier) > 0 {
		state := frontier[0]
		frontier = frontier[1:]
		for _, tr := range m.transitions[state] {
			if tr.Next == to {
				return true
			}
			if _, ok := visited[tr.Next]; ok {
				continue
			}
			visited[tr.Next] = struct{}{}
			frontier = append(frontier, tr.Next)
		}
	}
	return false
}

// ToAutomaton builds a pushdown automaton accepting the grammar's language
// by empty stack. A single hub state consumes the input: reading a terminal
// pops it, and popping a nonterminal expands one of its productions.
func (g *ContextFreeGrammar) ToAutomaton() *PushdownAutomaton {
	m := NewPushdownAutomaton()
	entry := stateName(0)
	counter := NewStateCounter(2)

	m.AddTransition(StartState, entry, Epsilon, ActionPush, Underflow)
	m.AddTransition(entry, hubState, Epsilon, ActionPush, g.start)
	for _, term := range g.termNames {
		m.AddTransition(hubState, hubState, term, ActionPop, term)
	}
	m.AddTransition(hubState, EndState, Underflow, ActionPop, Underflow)

	for _, name := range g.prodNames {
		for _, prod := range g.prods[name] {
			terms := prod.Terms()
			var read string
			var rest []string
			if isTerminalText(terms[0]) || terms[0] == Epsilon {
				read = terms[0]
				rest = terms[1:]
			} else {
				read = Epsilon
				rest = terms
			}

			// Pop the nonterminal, then push the rest right to left through
			// fresh states, so one expansion applies atomically and comes
			// off the stack in order.
			next := hubState
			if len(rest) > 0 {
				next = counter.Next()
			}
			m.AddTransition(hubState, next, read, ActionPop, name)
			state := next
			for i := len(rest) - 1; i >= 0; i-- {
				next = hubState
				if i > 0 {
					next = counter.Next()
				}
				m.AddTransition(state, next, Epsilon, ActionPush, rest[i])
				state = next
			}
		}
	}
	return m
}

package describe

import (
	"fmt"
	"io"
	"strings"

	"github.com/Samhenry97/GrammarUtil/grammar"
)

// Grammar writes one line per nonterminal, the names padded to the widest.
func Grammar(w io.Writer, g *grammar.ContextFreeGrammar) error {
	width := 0
	for _, name := range g.Nonterminals() {
		if len(name) > width {
			width = len(name)
		}
	}
	for _, name := range g.Nonterminals() {
		prods := g.ProductionsOf(name)
		alts := make([]string, len(prods))
		for i, prod := range prods {
			alts[i] = prod.String()
		}
		_, err := fmt.Fprintf(w, "%-*v -> %v\n", width, name, strings.Join(alts, " | "))
		if err != nil {
			return err
		}
	}
	return nil
}

// Automaton writes one line per state with outgoing transitions.
func Automaton(w io.Writer, m *grammar.PushdownAutomaton) error {
	width := 0
	for _, name := range m.States() {
		if len(name) > width {
			width = len(name)
		}
	}
	for _, name := range m.States() {
		trs := m.TransitionsOf(name)
		rendered := make([]string, len(trs))
		for i, tr := range trs {
			rendered[i] = tr.String()
		}
		_, err := fmt.Fprintf(w, "%-*v -> [%v]\n", width, name, strings.Join(rendered, ", "))
		if err != nil {
			return err
		}
	}
	return nil
}

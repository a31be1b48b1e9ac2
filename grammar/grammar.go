package grammar

import (
	verr "github.com/Samhenry97/GrammarUtil/error"
	"github.com/Samhenry97/GrammarUtil/spec"
)

const startName = "S"

// Nonterminals and terminals keep insertion order so every structure
// derived from a grammar is reproducible.
type ContextFreeGrammar struct {
	prodNames []string
	prods     map[string][]*Production
	termNames []string
	terms     map[string]struct{}
	start     string
}

func NewContextFreeGrammar() *ContextFreeGrammar {
	return &ContextFreeGrammar{
		prods: map[string][]*Production{},
		terms: map[string]struct{}{},
		start: startName,
	}
}

func (g *ContextFreeGrammar) AddProduction(name string, terms []string) error {
	return g.addProduction(name, terms, 0)
}

func (g *ContextFreeGrammar) addProduction(name string, terms []string, row int) error {
	if !isNonterminalText(name) {
		return &verr.SpecError{
			Cause:  malErrInvalidName,
			Detail: name,
			Row:    row,
		}
	}
	for _, term := range terms {
		switch {
		case term == Epsilon || term == Underflow:
			// Acceptable as terms, but never terminals.
		case isTerminalText(term):
			g.addTerminal(term)
		case isNonterminalText(term):
		default:
			return &verr.SpecError{
				Cause:  malErrInvalidTerm,
				Detail: term,
				Row:    row,
			}
		}
	}
	g.appendProduction(name, newProduction(terms))
	return nil
}

func (g *ContextFreeGrammar) appendProduction(name string, prod *Production) {
	if _, ok := g.prods[name]; !ok {
		g.prodNames = append(g.prodNames, name)
	}
	g.prods[name] = append(g.prods[name], prod)
}

func (g *ContextFreeGrammar) addTerminal(text string) {
	if _, ok := g.terms[text]; ok {
		return
	}
	g.terms[text] = struct{}{}
	g.termNames = append(g.termNames, text)
}

func (g *ContextFreeGrammar) Nonterminals() []string {
	return g.prodNames
}

func (g *ContextFreeGrammar) ProductionsOf(name string) []*Production {
	return g.prods[name]
}

func (g *ContextFreeGrammar) Terminals() []string {
	return g.termNames
}

func (g *ContextFreeGrammar) Start() string {
	return g.start
}

func (g *ContextFreeGrammar) StartProductions() []*Production {
	return g.prods[g.start]
}

type GrammarBuilder struct {
	AST *spec.RootNode
}

func (b *GrammarBuilder) Build() (*ContextFreeGrammar, error) {
	g := NewContextFreeGrammar()
	for _, prod := range b.AST.Productions {
		for _, alt := range prod.RHS {
			terms := make([]string, len(alt.Elements))
			for i, elem := range alt.Elements {
				terms[i] = elem.Text
			}
			err := g.addProduction(prod.LHS, terms, prod.Pos.Row)
			if err != nil {
				return nil, err
			}
		}
	}
	return g, nil
}

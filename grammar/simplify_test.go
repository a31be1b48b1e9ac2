package grammar

import (
	"testing"
)

func TestContextFreeGrammar_Simplify(t *testing.T) {
	tests := []struct {
		caption      string
		src          string
		nonterminals []string
		prods        map[string][]string
	}{
		{
			caption:      "duplicate productions collapse into one",
			src:          "S -> a | a\n",
			nonterminals: []string{"S"},
			prods: map[string][]string{
				"S": {"a"},
			},
		},
		{
			caption:      "a single-term self reference disappears",
			src:          "S -> S | a\n",
			nonterminals: []string{"S"},
			prods: map[string][]string{
				"S": {"a"},
			},
		},
		{
			caption:      "productions sort by their rendered form",
			src:          "S -> b | a\n",
			nonterminals: []string{"S"},
			prods: map[string][]string{
				"S": {"a", "b"},
			},
		},
		{
			caption:      "a nonterminal deriving only the empty string folds into its references",
			src:          "S -> A b\nA -> $\n",
			nonterminals: []string{"S"},
			prods: map[string][]string{
				"S": {"b"},
			},
		},
		{
			caption:      "a nonterminal deriving a single terminal is inlined",
			src:          "S -> A b\nA -> x\n",
			nonterminals: []string{"S"},
			prods: map[string][]string{
				"S": {"x b"},
			},
		},
		{
			caption:      "unit chains resolve over iterations",
			src:          "S -> A\nA -> B\nB -> c\n",
			nonterminals: []string{"S"},
			prods: map[string][]string{
				"S": {"c"},
			},
		},
		{
			caption:      "the start nonterminal survives even when it derives only the empty string",
			src:          "S -> $\n",
			nonterminals: []string{"S"},
			prods: map[string][]string{
				"S": {"ε"},
			},
		},
		{
			caption:      "surviving nonterminals get fresh names from the counter",
			src:          "S -> X b\nX -> a X | b\n",
			nonterminals: []string{"S", "A"},
			prods: map[string][]string{
				"S": {"A b"},
				"A": {"a A", "b"},
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.caption, func(t *testing.T) {
			g := buildGrammar(t, tt.src)
			err := g.Simplify()
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if g.Start() != "S" {
				t.Fatalf("unexpected start nonterminal; want: S, got: %v", g.Start())
			}
			testStrings(t, "nonterminals", tt.nonterminals, g.Nonterminals())
			for _, name := range tt.nonterminals {
				testProductions(t, g, name, tt.prods[name])
			}
		})
	}
}

func TestContextFreeGrammar_Simplify_emptyDerivation(t *testing.T) {
	g := buildGrammar(t, "S -> $\n")
	converted, err := g.ToAutomaton().ToGrammar()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	err = converted.Simplify()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if converted.Start() != "S" {
		t.Fatalf("unexpected start nonterminal; want: S, got: %v", converted.Start())
	}
	testStrings(t, "nonterminals", []string{"S"}, converted.Nonterminals())
	testProductions(t, converted, "S", []string{"ε"})
}

func TestContextFreeGrammar_Simplify_fixpoint(t *testing.T) {
	g := buildGrammar(t, showcaseSrc)
	converted, err := g.ToAutomaton().ToGrammar()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	err = converted.Simplify()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	count := len(converted.Nonterminals())

	// A second pass may re-sort production lists under the fresh names but
	// must not fold anything further.
	err = converted.Simplify()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(converted.Nonterminals()) != count {
		t.Fatalf("unexpected nonterminal count; want: %v, got: %v", count, len(converted.Nonterminals()))
	}
	second := renderGrammarLines(converted)

	err = converted.Simplify()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	testStrings(t, "simplified grammar", second, renderGrammarLines(converted))
}

func TestContextFreeGrammar_Simplify_startKeyCollision(t *testing.T) {
	g := buildGrammar(t, "S -> a\nStartEnd -> b\n")
	err := g.Simplify()
	if err == nil {
		t.Fatalf("an error must occur")
	}
	if _, ok := err.(*InternalInconsistencyError); !ok {
		t.Fatalf("unexpected error type; want: %T, got: %T (%v)", &InternalInconsistencyError{}, err, err)
	}
}

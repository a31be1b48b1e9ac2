package grammar

import (
	"strings"
	"testing"

	"github.com/Samhenry97/GrammarUtil/spec"
)

const showcaseSrc = `S -> 0 S 0
  -> T
T -> 1 T 1
  -> 0
  -> $
`

func buildGrammar(t *testing.T, src string) *ContextFreeGrammar {
	t.Helper()

	ast, err := spec.Parse(strings.NewReader(src))
	if err != nil {
		t.Fatalf("failed to parse the grammar: %v", err)
	}
	b := GrammarBuilder{
		AST: ast,
	}
	g, err := b.Build()
	if err != nil {
		t.Fatalf("failed to build the grammar: %v", err)
	}
	return g
}

func testStrings(t *testing.T, caption string, want, got []string) {
	t.Helper()

	if len(want) != len(got) {
		t.Fatalf("unexpected %v; want: %v, got: %v", caption, want, got)
	}
	for i := range want {
		if want[i] != got[i] {
			t.Fatalf("unexpected %v; want: %v, got: %v", caption, want, got)
		}
	}
}

func testProductions(t *testing.T, g *ContextFreeGrammar, name string, want []string) {
	t.Helper()

	testStrings(t, "productions of "+name, want, renderProductions(g.ProductionsOf(name)))
}

func renderProductions(prods []*Production) []string {
	rendered := make([]string, len(prods))
	for i, prod := range prods {
		rendered[i] = prod.String()
	}
	return rendered
}

func renderGrammarLines(g *ContextFreeGrammar) []string {
	lines := make([]string, 0, len(g.Nonterminals()))
	for _, name := range g.Nonterminals() {
		lines = append(lines, name+" -> "+strings.Join(renderProductions(g.ProductionsOf(name)), " | "))
	}
	return lines
}

package describe

import (
	"bytes"
	"strings"
	"testing"

	"github.com/Samhenry97/GrammarUtil/grammar"
	"github.com/Samhenry97/GrammarUtil/spec"
)

func buildGrammar(t *testing.T, src string) *grammar.ContextFreeGrammar {
	t.Helper()

	ast, err := spec.Parse(strings.NewReader(src))
	if err != nil {
		t.Fatalf("failed to parse the grammar: %v", err)
	}
	b := grammar.GrammarBuilder{
		AST: ast,
	}
	g, err := b.Build()
	if err != nil {
		t.Fatalf("failed to build the grammar: %v", err)
	}
	return g
}

func TestGrammar(t *testing.T) {
	tests := []struct {
		caption string
		src     string
		want    string
	}{
		{
			caption: "one line per nonterminal with alternatives joined",
			src: `S -> 0 S 0 | T
T -> 1 T 1 | 0 | $
`,
			want: `S -> 0 S 0 | T
T -> 1 T 1 | 0 | ε
`,
		},
		{
			caption: "names pad to the widest nonterminal",
			src: `S -> Sum
Sum -> a | b
`,
			want: `S   -> Sum
Sum -> a | b
`,
		},
		{
			caption: "an empty grammar prints nothing",
			src:     ``,
			want:    ``,
		},
	}
	for _, tt := range tests {
		t.Run(tt.caption, func(t *testing.T) {
			var b bytes.Buffer
			err := Grammar(&b, buildGrammar(t, tt.src))
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if b.String() != tt.want {
				t.Fatalf("unexpected rendering;\nwant:\n%v\ngot:\n%v", tt.want, b.String())
			}
		})
	}
}

func TestAutomaton(t *testing.T) {
	g := buildGrammar(t, "S -> $\n")
	var b bytes.Buffer
	err := Automaton(&b, g.ToAutomaton())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := `Start -> [{A, ε, PUSH Δ}]
A     -> [{B, ε, PUSH S}]
B     -> [{End, Δ, POP Δ}, {B, ε, POP S}]
`
	if b.String() != want {
		t.Fatalf("unexpected rendering;\nwant:\n%v\ngot:\n%v", want, b.String())
	}
}

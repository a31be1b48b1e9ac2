package grammar

import "strings"

// Construction normalizes the terms: Underflow becomes Epsilon, Epsilon
// drops out, and an empty body collapses to the single term Epsilon.
type Production struct {
	terms []string
}

func newProduction(terms []string) *Production {
	normalized := make([]string, 0, len(terms))
	for _, term := range terms {
		if term == Underflow {
			term = Epsilon
		}
		if term == Epsilon {
			continue
		}
		normalized = append(normalized, term)
	}
	if len(normalized) == 0 {
		normalized = append(normalized, Epsilon)
	}
	return &Production{
		terms: normalized,
	}
}

func (p *Production) Terms() []string {
	return p.terms
}

// Deduplication and display ordering both key on this rendering.
func (p *Production) String() string {
	return strings.Join(p.terms, " ")
}

func (p *Production) isEmpty() bool {
	return len(p.terms) == 1 && p.terms[0] == Epsilon
}

func (p *Production) isSingleTerminal() bool {
	return len(p.terms) == 1 && isTerminalText(p.terms[0])
}

func (p *Production) rename(mapping map[string]string) *Production {
	terms := make([]string, len(p.terms))
	for i, term := range p.terms {
		if to, ok := mapping[term]; ok {
			terms[i] = to
		} else {
			terms[i] = term
		}
	}
	return &Production{
		terms: terms,
	}
}

// transform re-normalizes, so a fully deleted body collapses to Epsilon.
func (p *Production) transform(remove map[string]struct{}, replace map[string]string) *Production {
	terms := make([]string, 0, len(p.terms))
	for _, term := range p.terms {
		if _, ok := remove[term]; ok {
			continue
		}
		if to, ok := replace[term]; ok {
			term = to
		}
		terms = append(terms, term)
	}
	return newProduction(terms)
}

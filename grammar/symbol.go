package grammar

import "regexp"

const (
	// Epsilon denotes the empty string.
	Epsilon = "ε"

	// Underflow marks the stack bottom.
	Underflow = "Δ"
)

const (
	StartState = "Start"
	EndState   = "End"

	hubState = "B"
)

var (
	nonterminalRE = regexp.MustCompile(`^[A-Z][_A-Za-z0-9]*$`)
	terminalRE    = regexp.MustCompile(`^[_a-z0-9]+$`)
)

func isNonterminalText(text string) bool {
	return nonterminalRE.MatchString(text)
}

func isTerminalText(text string) bool {
	return terminalRE.MatchString(text)
}

package main

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "gramutil",
	Short: "Convert a context-free grammar into a pushdown automaton and back",
	Long: `gramutil runs a grammar through the full conversion pipeline:
- Builds the pushdown automaton accepting the grammar's language.
- Reconstructs a grammar from the automaton states.
- Simplifies the reconstructed grammar into a minimal renamed form.`,
	SilenceErrors: true,
	SilenceUsage:  true,
}

func Execute() error {
	return rootCmd.Execute()
}

package main

import (
	"fmt"
	"io"
	"io/ioutil"
	"os"
	"path/filepath"

	"github.com/Samhenry97/GrammarUtil/describe"
	verr "github.com/Samhenry97/GrammarUtil/error"
	"github.com/Samhenry97/GrammarUtil/grammar"
	"github.com/Samhenry97/GrammarUtil/spec"
	"github.com/spf13/cobra"
)

var convertFlags = struct {
	output *string
}{}

func init() {
	cmd := &cobra.Command{
		Use:     "convert",
		Short:   "Convert a grammar into a pushdown automaton and back into a simplified grammar",
		Example: `  gramutil convert grammar.txt -o pipeline.txt`,
		Args:    cobra.MaximumNArgs(1),
		RunE:    runConvert,
	}
	convertFlags.output = cmd.Flags().StringP("output", "o", "", "output file path (default stdout)")
	rootCmd.AddCommand(cmd)
}

func runConvert(cmd *cobra.Command, args []string) (retErr error) {
	var tmpDirPath string
	defer func() {
		if tmpDirPath == "" {
			return
		}
		os.RemoveAll(tmpDirPath)
	}()

	var grmPath string
	if len(args) > 0 {
		grmPath = args[0]
	}
	defer func() {
		if retErr != nil {
			specErr, ok := retErr.(*verr.SpecError)
			if ok {
				specErr.FilePath = grmPath
				if len(args) > 0 {
					specErr.SourceName = grmPath
				} else {
					specErr.SourceName = "stdin"
				}
			}
		}
	}()

	if grmPath == "" {
		var err error
		tmpDirPath, err = os.MkdirTemp("", "gramutil-convert-*")
		if err != nil {
			return err
		}

		src, err := ioutil.ReadAll(os.Stdin)
		if err != nil {
			return err
		}

		grmPath = filepath.Join(tmpDirPath, "stdin.grammar")
		err = ioutil.WriteFile(grmPath, src, 0600)
		if err != nil {
			return err
		}
	}

	g, err := readGrammar(grmPath)
	if err != nil {
		return err
	}

	var w io.Writer
	if *convertFlags.output != "" {
		f, err := os.OpenFile(*convertFlags.output, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0644)
		if err != nil {
			return fmt.Errorf("Cannot write an output file: %w", err)
		}
		defer f.Close()
		w = f
	} else {
		w = os.Stdout
	}

	return writeConversion(w, g)
}

func writeConversion(w io.Writer, g *grammar.ContextFreeGrammar) error {
	fmt.Fprintf(w, "<Grammar>\n")
	err := describe.Grammar(w, g)
	if err != nil {
		return err
	}

	m := g.ToAutomaton()
	fmt.Fprintf(w, "\n<Pushdown Automata>\n")
	err = describe.Automaton(w, m)
	if err != nil {
		return err
	}

	converted, err := m.ToGrammar()
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "\n<New Grammar>\n")
	err = describe.Grammar(w, converted)
	if err != nil {
		return err
	}

	err = converted.Simplify()
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "\n<Simplified Grammar>\n")
	return describe.Grammar(w, converted)
}

func readGrammar(path string) (g *grammar.ContextFreeGrammar, retErr error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("Cannot open the grammar file %s: %w", path, err)
	}
	defer f.Close()

	ast, err := spec.Parse(f)
	if err != nil {
		return nil, err
	}

	b := grammar.GrammarBuilder{
		AST: ast,
	}
	return b.Build()
}

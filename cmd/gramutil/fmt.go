package main

import (
	"io"
	"io/ioutil"
	"os"
	"path/filepath"

	"github.com/Samhenry97/GrammarUtil/describe"
	verr "github.com/Samhenry97/GrammarUtil/error"
	"github.com/spf13/cobra"
)

var fmtFlags = struct {
	output *string
}{}

func init() {
	cmd := &cobra.Command{
		Use:     "fmt",
		Short:   "Print a grammar in normalized form",
		Example: `  gramutil fmt grammar.txt`,
		Args:    cobra.MaximumNArgs(1),
		RunE:    runFmt,
	}
	fmtFlags.output = cmd.Flags().StringP("output", "o", "", "output file path (default stdout)")
	rootCmd.AddCommand(cmd)
}

func runFmt(cmd *cobra.Command, args []string) (retErr error) {
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
		tmpDirPath, err = os.MkdirTemp("", "gramutil-fmt-*")
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
	if *fmtFlags.output != "" {
		f, err := os.OpenFile(*fmtFlags.output, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0644)
		if err != nil {
			return err
		}
		defer f.Close()
		w = f
	} else {
		w = os.Stdout
	}

	return describe.Grammar(w, g)
}

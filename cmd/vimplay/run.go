package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/arjunvelu/vimcore/internal/editor"
	"github.com/arjunvelu/vimcore/internal/mode"
)

var (
	runText       string
	runScriptPath string
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Apply a key script to a buffer and print the result",
	RunE:  runRun,
}

func init() {
	runCmd.Flags().StringVarP(&runText, "text", "t", "", "initial buffer text")
	runCmd.Flags().StringVarP(&runScriptPath, "script", "s", "", "path to a key script file (default: stdin)")
	rootCmd.AddCommand(runCmd)
}

func runRun(cmd *cobra.Command, args []string) error {
	var scriptBytes []byte
	var err error
	if runScriptPath != "" {
		scriptBytes, err = os.ReadFile(runScriptPath)
	} else {
		scriptBytes, err = io.ReadAll(cmd.InOrStdin())
	}
	if err != nil {
		return fmt.Errorf("reading key script: %w", err)
	}

	opts := []editor.Option{
		editor.WithUndoDepth(cfg.UndoStackLimit),
		editor.WithMode(mode.Parse(cfg.DefaultMode)),
		editor.WithPunctuationAsWord(cfg.WordBoundaryPunctuationIsWord),
	}
	s := editor.New(runText, opts...)

	for _, k := range parseScript(string(scriptBytes)) {
		s.Handle(k)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, s.Buffer.Text())
	fmt.Fprintf(out, "-- %s --\n", modeLabel(s.Mode.String()))
	return nil
}

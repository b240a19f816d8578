package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/arjunvelu/vimcore/internal/editor"
	"github.com/arjunvelu/vimcore/internal/mode"
)

var replayScriptPath string

var replayCmd = &cobra.Command{
	Use:   "replay",
	Short: "Apply a key script one key at a time, printing the buffer after each key",
	RunE:  runReplay,
}

func init() {
	replayCmd.Flags().StringVarP(&runText, "text", "t", "", "initial buffer text")
	replayCmd.Flags().StringVarP(&replayScriptPath, "script", "s", "", "path to a key script file (default: stdin)")
	rootCmd.AddCommand(replayCmd)
}

func runReplay(cmd *cobra.Command, args []string) error {
	var scriptBytes []byte
	var err error
	if replayScriptPath != "" {
		scriptBytes, err = os.ReadFile(replayScriptPath)
	} else {
		scriptBytes, err = io.ReadAll(cmd.InOrStdin())
	}
	if err != nil {
		return fmt.Errorf("reading key script: %w", err)
	}

	s := editor.New(runText,
		editor.WithUndoDepth(cfg.UndoStackLimit),
		editor.WithMode(mode.Parse(cfg.DefaultMode)),
		editor.WithPunctuationAsWord(cfg.WordBoundaryPunctuationIsWord),
	)
	out := cmd.OutOrStdout()

	for i, k := range parseScript(string(scriptBytes)) {
		s.Handle(k)
		fmt.Fprintf(out, "[%d] %s  %q\n", i, modeLabel(s.Mode.String()), s.Buffer.Text())
	}
	return nil
}

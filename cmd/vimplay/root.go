// Command vimplay is a scripted, non-interactive driver of the editor
// core: it applies a recorded key script to a buffer and prints the
// result, for manual smoke-testing without a terminal-UI host.
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/arjunvelu/vimcore/internal/config"
	"github.com/arjunvelu/vimcore/internal/log"
)

var (
	cfgFile   string
	debugFlag bool
	cfg       config.Config
)

var rootCmd = &cobra.Command{
	Use:     "vimplay",
	Short:   "Replay a scripted key sequence against the editor core",
	Long:    "vimplay drives the editor core's dispatcher with a recorded key script and prints the resulting buffer and mode, without a terminal-UI host attached.",
	Version: version,
}

var version = "dev"

func init() {
	cobra.OnInitialize(initConfig)
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "config file (default: "+config.DefaultPath("vimplay")+")")
	rootCmd.PersistentFlags().BoolVarP(&debugFlag, "debug", "d", false, "enable debug logging (also: VIMCORE_DEBUG=1)")
}

func initConfig() {
	path := cfgFile
	if path == "" {
		path = config.DefaultPath("vimplay")
	}
	loaded, err := config.Load(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "loading config: %v\n", err)
		os.Exit(1)
	}
	cfg = loaded

	debug := os.Getenv("VIMCORE_DEBUG") != "" || debugFlag || cfg.Debug
	if debug {
		log.InitDiscard()
	}
}

// modeLabel renders the mode name as a short background-colored badge, distinct per
// mode family.
func modeLabel(name string) string {
	style := lipgloss.NewStyle().Bold(true).Padding(0, 1)
	switch name {
	case "NORMAL":
		style = style.Background(lipgloss.Color("25")).Foreground(lipgloss.Color("255"))
	case "INSERT":
		style = style.Background(lipgloss.Color("28")).Foreground(lipgloss.Color("255"))
	case "REPLACE":
		style = style.Background(lipgloss.Color("124")).Foreground(lipgloss.Color("255"))
	default:
		style = style.Background(lipgloss.Color("94")).Foreground(lipgloss.Color("255"))
	}
	return style.Render(name)
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// SetVersion sets the version string (called from main with ldflags).
func SetVersion(v string) {
	version = v
	rootCmd.Version = v
}

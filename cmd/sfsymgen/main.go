package main

import (
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/theoriginalbit/SFSymbolsGenerator/internal/version"
)

var rootCmd = &cobra.Command{
	Use:   "sfsymgen",
	Short: "SF Symbols accessor source generator",
	Long:  `sfsymgen renders a Swift accessor source file from an SF Symbols availability catalog`,
}

func main() {
	rootCmd.Version = version.Number

	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(versionCmd)

	rootCmd.PersistentFlags().String("color", "auto", "colorize output (auto|on|off)")
	rootCmd.PersistentFlags().Bool("quiet", false, "suppress non-essential output")
	rootCmd.PersistentFlags().Int("max-diagnostics", 100, "maximum number of diagnostics to show")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

// applyColorMode resolves the --color flag; "auto" colors only when stderr
// is a terminal.
func applyColorMode(mode string) {
	switch mode {
	case "on":
		color.NoColor = false
	case "off":
		color.NoColor = true
	default:
		color.NoColor = !isTerminal(os.Stderr)
	}
}

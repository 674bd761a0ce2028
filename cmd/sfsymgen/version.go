package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/theoriginalbit/SFSymbolsGenerator/internal/version"
)

var (
	versionShowHash bool
	versionShowDate bool
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Args:  cobra.ExactArgs(0),
	Run:   runVersion,
}

func init() {
	versionCmd.Flags().BoolVar(&versionShowHash, "hash", false, "include git commit hash")
	versionCmd.Flags().BoolVar(&versionShowDate, "date", false, "include build timestamp")
}

func runVersion(cmd *cobra.Command, args []string) {
	number := version.Number
	if isTerminal(os.Stdout) {
		number = version.Colored()
	}
	fmt.Printf("sfsymgen %s\n", number)
	if versionShowHash && version.GitCommit != "" {
		fmt.Printf("  commit: %s\n", version.GitCommit)
	}
	if versionShowDate && version.BuildDate != "" {
		fmt.Printf("  built:  %s\n", version.BuildDate)
	}
}

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"cstyle/internal/version"
)

var rootCmd = &cobra.Command{
	Use:   "cstyle",
	Short: "C-family source code beautifier",
	Long:  `cstyle reshapes whitespace, brace placement, and indentation in C-family source files.`,
}

// main initializes the CLI by setting the command version, registering
// subcommands and persistent flags, and then executes the root command.
// If command execution returns an error, the process exits with status 1.
func main() {
	rootCmd.Version = version.Version

	rootCmd.AddCommand(fmtCmd)
	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(stylesCmd)
	rootCmd.AddCommand(versionCmd)

	rootCmd.PersistentFlags().String("color", "auto", "colorize output (auto|on|off)")
	rootCmd.PersistentFlags().Bool("quiet", false, "suppress non-essential output")
	rootCmd.PersistentFlags().Bool("timings", false, "show phase timing information")
	rootCmd.PersistentFlags().String("ui", "auto", "progress UI mode (auto|on|off)")
	rootCmd.PersistentFlags().Bool("no-cache", false, "disable the .cstyle-cache disk cache")
	rootCmd.PersistentFlags().String("lang", "en", "language for diagnostic text (BCP 47 tag, e.g. en, ru)")

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// isTerminal reports whether f is attached to an interactive terminal.
func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

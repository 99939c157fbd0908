package main

import (
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"schemat/internal/version"
)

var rootCmd = &cobra.Command{
	Use:   "schemat [flags] [path...]",
	Short: "Format Scheme source code",
	Long: `Schemat rewrites Scheme and other Lisp-family sources in a canonical
layout. Without paths it formats standard input to standard output;
with paths it rewrites the named files and directories in place.`,
	Args: cobra.ArbitraryArgs,
	RunE: runRoot,
}

func main() {
	rootCmd.Version = version.Version
	rootCmd.AddCommand(versionCmd)

	rootCmd.PersistentFlags().String("color", "auto", "colorize output (auto|on|off)")
	rootCmd.Flags().Bool("check", false, "list files that need formatting without rewriting them")
	rootCmd.Flags().Bool("stdout", false, "print formatted code to stdout instead of rewriting files")
	rootCmd.Flags().Int("width", 0, "maximum line width (0 takes the manifest value)")
	rootCmd.Flags().StringArray("ignore", nil, "skip paths matching the pattern (repeatable)")
	rootCmd.Flags().Int("jobs", 0, "number of parallel workers (0 uses all CPUs)")
	rootCmd.Flags().Bool("verbose", false, "report every file, not only changed ones")
	rootCmd.Flags().String("ui", "off", "live progress view (auto|on|off)")
	rootCmd.Flags().Bool("cache", false, "skip files whose content is already known to be canonical")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "ttp [path]",
	Short: "ttp maintains a fraud Tactics-Techniques-Procedures framework",
	Long: `ttp lets you browse, add and delete tactics, techniques and procedures
in a framework file (dataset.json by default) through an interactive menu.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().Bool("debug", false, "Write debug logs to stderr")
}

// pathArg returns the framework path from the optional positional argument.
func pathArg(args []string) string {
	if len(args) > 0 {
		return args[0]
	}
	return ""
}

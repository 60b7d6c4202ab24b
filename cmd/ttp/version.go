package main

import (
	"fmt"

	"github.com/aretw0/ttp"
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of ttp",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "ttp version %s\n", ttp.Version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}

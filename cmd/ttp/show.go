package main

import (
	"github.com/aretw0/ttp/internal/cli"
	"github.com/spf13/cobra"
)

var showCmd = &cobra.Command{
	Use:   "show [path]",
	Short: "Print the current hierarchy",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		rich, _ := cmd.Flags().GetBool("rich")
		return cli.Show(cli.ShowOptions{
			Path: pathArg(args),
			Rich: rich,
			Out:  cmd.OutOrStdout(),
		})
	},
}

func init() {
	rootCmd.AddCommand(showCmd)
	showCmd.Flags().Bool("rich", false, "Render as styled markdown with levels and descriptions")
}

package main

import (
	"github.com/aretw0/ttp/internal/cli"
	"github.com/spf13/cobra"
)

// editCmd represents the edit command
var editCmd = &cobra.Command{
	Use:   "edit [path]",
	Short: "Edit the framework interactively",
	Long:  `Loads the framework file (or a fresh skeleton) and starts the view/add/delete menu.`,
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		debug, _ := cmd.Flags().GetBool("debug")
		noBanner, _ := cmd.Flags().GetBool("no-banner")
		backup, _ := cmd.Flags().GetBool("backup")

		return cli.Execute(cli.RunOptions{
			Path:     pathArg(args),
			Debug:    debug,
			NoBanner: noBanner,
			Backup:   backup,
			In:       cmd.InOrStdin(),
			Out:      cmd.OutOrStdout(),
		})
	},
}

func init() {
	rootCmd.AddCommand(editCmd)

	for _, c := range []*cobra.Command{rootCmd, editCmd} {
		c.Flags().Bool("no-banner", false, "Do not print the banner")
		c.Flags().Bool("backup", false, "Keep the previous file as <path>.bak when saving")
	}

	// 'edit' is the default when no command is provided.
	rootCmd.Args = editCmd.Args
	rootCmd.RunE = editCmd.RunE
}

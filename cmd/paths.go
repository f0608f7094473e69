package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/falshproject/falsh/core/pathtool"
)

// pathsCmd opens the PATH manager without starting an interactive shell.
var pathsCmd = &cobra.Command{
	Use:   "paths",
	Short: "Manage the persisted PATH list",
	RunE: func(cmd *cobra.Command, args []string) error {
		ex, _, err := session()
		if err != nil {
			return err
		}

		return pathtool.Run(ex.Store(), os.Stdin, os.Stdout)
	},
}

func init() {
	rootCmd.AddCommand(pathsCmd)
}

package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// configCmd prints the effective configuration, defaults merged with the
// optional ~/.falsh.yaml.
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration as YAML",
	RunE: func(cmd *cobra.Command, args []string) error {
		_, cfg, err := session()
		if err != nil {
			return err
		}

		out, err := cfg.Marshal()
		if err != nil {
			return err
		}

		fmt.Fprint(os.Stdout, string(out))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(configCmd)
}

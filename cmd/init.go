package cmd

import (
	"github.com/spf13/cobra"

	"github.com/shayulman/radiodesk/internal/config"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize radiodesk configuration with an interactive wizard",
	Long:  `Runs an interactive wizard to configure the station and writes a radiodesk.yml file.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		_, err := config.RunWizard(cfgFile)
		return err
	},
}

func init() {
	rootCmd.AddCommand(initCmd)
}

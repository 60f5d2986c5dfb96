package cmd

import (
	"github.com/spf13/cobra"
)

var (
	cfgFile string
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "radiodesk",
	Short: "Radio station management: flows, content library, campaigns and calendar",
	Long: `RadioDesk manages an automated radio station: broadcast flows authored
in the actions studio, the content library, advertising campaigns, the
programming calendar and a retrieval-backed studio assistant.`,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "radiodesk.yml", "config file path")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}

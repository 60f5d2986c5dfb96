package cmd

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/shayulman/radiodesk/internal/flows"
	"github.com/shayulman/radiodesk/internal/studio"
)

var simulateCmd = &cobra.Command{
	Use:   "simulate <flow-id>",
	Short: "Walk through a flow's actions and print the estimated timeline",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		database, err := openDatabase(cfg)
		if err != nil {
			return fmt.Errorf("opening database: %w", err)
		}
		defer database.Close()

		api := flows.NewStudioAPI(flows.NewStore(database))
		draft := studio.NewDraft()
		if err := draft.Load(cmd.Context(), api, args[0]); err != nil {
			if errors.Is(err, studio.ErrFlowNotFound) {
				return fmt.Errorf("flow %s not found", args[0])
			}
			return err
		}

		fmt.Printf("Flow: %s", draft.Name)
		if draft.NameHe != "" {
			fmt.Printf(" (%s)", draft.NameHe)
		}
		fmt.Printf("\nActions: %d, estimated runtime %s\n\n",
			len(draft.Actions), time.Duration(draft.TotalSeconds())*time.Second)

		for _, step := range draft.Timeline() {
			at := time.Duration(step.StartsAt) * time.Second
			fmt.Printf("  %2d. [%8s] %-18s %s\n",
				step.Index+1, at, step.Type, time.Duration(step.Seconds)*time.Second)
			if !step.Valid {
				for _, e := range step.Errors {
					fmt.Printf("      ! %s\n", e)
				}
			}
		}

		if !draft.AllValid() {
			fmt.Println("\nSome actions are invalid; the automation will refuse to run this flow.")
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(simulateCmd)
}

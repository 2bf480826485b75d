package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

// ListWorkersCmd creates the listWorkers command
func ListWorkersCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "listWorkers",
		Short: "List the worker directory records the scheduler reads",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			workers, err := app.Database.GetActiveWorkers(app.Ctx)
			if err != nil {
				return fmt.Errorf("failed to list workers: %w", err)
			}

			fmt.Printf("\nFound %d workers:\n\n", len(workers))
			for _, w := range workers {
				fridayMark := " "
				if w.FridayEligible {
					fridayMark = "★"
				}
				fmt.Printf("  %s %-25s %-12s %s (%s)\n",
					fridayMark, w.Name, w.Participation, w.Role, w.ID)
			}
			fmt.Println()
			return nil
		},
	}
}

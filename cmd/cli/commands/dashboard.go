package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/iglesia-cuna/cuna-roster/pkg/core/services"
)

// DashboardCmd creates the dashboard command
func DashboardCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "dashboard",
		Short: "Show roster rollups: pool sizes, open slots and the next dates",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			summary, err := services.Dashboard(app.Ctx, app.Database, app.Cfg.DashboardDays)
			if err != nil {
				return err
			}

			fmt.Printf("\nActive workers:   %d\n", summary.ActiveWorkers)
			fmt.Printf("Friday eligible:  %d\n", summary.FridayEligible)
			fmt.Printf("Open slots ahead: %d\n\n", summary.OpenSlots)

			if len(summary.Upcoming) == 0 {
				fmt.Println("No upcoming dates - generate a roster first.")
				return nil
			}

			fmt.Println("Upcoming dates:")
			for _, day := range summary.Upcoming {
				fmt.Printf("  %s (%s)\n", day.Date.Format("2006-01-02"), day.DayType)
				for _, s := range day.Slots {
					holder := "-- open --"
					if s.WorkerID != nil {
						holder = *s.WorkerID
					}
					line := fmt.Sprintf("    position %d: %s", s.SlotNumber, holder)
					if s.CoveringWorkerID != nil {
						line += fmt.Sprintf(" (covered by %s)", *s.CoveringWorkerID)
					}
					fmt.Println(line)
				}
			}
			fmt.Println()
			return nil
		},
	}
}

package commands

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/iglesia-cuna/cuna-roster/pkg/core/services"
)

// GenerateRosterCmd creates the generateRoster command
func GenerateRosterCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "generateRoster <month> <year>",
		Short: "Generate the monthly roster (admin only; overwrites existing assignments)",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			month, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("month must be a number: %w", err)
			}
			year, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("year must be a number: %w", err)
			}

			result, err := services.GenerateRoster(app.Ctx, app.Database, app.Logger, month, year, app.Role)
			if err != nil {
				return err
			}

			fmt.Printf("\n✓ Roster generated for %02d/%d\n\n", result.Month, result.Year)
			fmt.Printf("Operative dates: %d\n", result.Dates)
			fmt.Printf("Filled slots:    %d\n", result.FilledSlots)
			fmt.Printf("Open slots:      %d\n", result.OpenSlots)
			fmt.Printf("Friday pool:     %d workers\n", result.FridayPool)
			fmt.Printf("General pool:    %d workers\n\n", result.GeneralPool)

			if result.OpenSlots > 0 {
				fmt.Printf("⚠ %d slots could not be filled - review the eligibility pools.\n\n", result.OpenSlots)
			}

			return nil
		},
	}
}

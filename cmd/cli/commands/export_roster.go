package commands

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/iglesia-cuna/cuna-roster/pkg/core/services"
)

// ExportRosterCmd creates the exportRoster command
func ExportRosterCmd(app *AppContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "exportRoster <month> <year>",
		Short: "Export the month's roster to an Excel workbook (admin only)",
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

			out, _ := cmd.Flags().GetString("out")
			if out == "" {
				out = fmt.Sprintf("cuna_roster_%04d-%02d.xlsx", year, month)
			}

			if err := services.ExportRoster(app.Ctx, app.Database, app.Logger, month, year, app.Role, out); err != nil {
				return err
			}

			fmt.Printf("\n✓ Roster written to %s\n\n", out)
			return nil
		},
	}

	cmd.Flags().String("out", "", "Output file path (default cuna_roster_<year>-<month>.xlsx)")

	return cmd
}

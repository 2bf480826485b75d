package commands

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/iglesia-cuna/cuna-roster/pkg/core/services"
)

// ExposeShiftCmd creates the exposeShift command
func ExposeShiftCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "exposeShift <slot_id>",
		Short: "Expose one of your assigned shifts for exchange",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			slotID, err := parseSlotID(args[0])
			if err != nil {
				return err
			}

			slot, err := services.ExposeForExchange(app.Ctx, app.Database, app.Logger, slotID, app.Caller)
			if err != nil {
				return err
			}

			fmt.Printf("\n✓ Slot %d is now visible to other staff for claiming (status: %s).\n\n",
				slot.ID, slot.Status)
			return nil
		},
	}
}

// ListExchangesCmd creates the listExchanges command
func ListExchangesCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "listExchanges",
		Short: "List shifts you could claim from other staff",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			available, err := services.ListExchangeable(app.Ctx, app.Database, app.Caller)
			if err != nil {
				return err
			}

			if len(available) == 0 {
				fmt.Println("\nNo shifts are currently available for exchange.")
				return nil
			}

			fmt.Printf("\nFound %d claimable shifts:\n\n", len(available))
			for _, s := range available {
				fmt.Printf("  slot %-5d %s (%s, position %d)\n",
					s.SlotID, s.Date.Format("2006-01-02"), s.DayType, s.SlotNumber)
			}
			fmt.Println()
			return nil
		},
	}
}

// ClaimShiftCmd creates the claimShift command
func ClaimShiftCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "claimShift <slot_id>",
		Short: "Claim a shift another staff member exposed for exchange",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			slotID, err := parseSlotID(args[0])
			if err != nil {
				return err
			}

			err = services.ClaimShift(app.Ctx, app.Database, app.Logger, slotID, app.Caller)
			if errors.Is(err, services.ErrConflict) {
				fmt.Printf("\n✗ Too late - that shift was already taken by someone else.\n\n")
				return nil
			}
			if err != nil {
				return err
			}

			fmt.Printf("\n✓ Shift claimed! Slot %d is now yours.\n\n", slotID)
			return nil
		},
	}
}

// CancelExchangeCmd creates the cancelExchange command
func CancelExchangeCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "cancelExchange <slot_id>",
		Short: "Withdraw an exchange request (holder or admin)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			slotID, err := parseSlotID(args[0])
			if err != nil {
				return err
			}

			slot, err := services.CancelExchange(app.Ctx, app.Database, app.Logger, slotID, app.Caller, app.Role)
			if err != nil {
				return err
			}

			fmt.Printf("\n✓ Exchange cancelled; slot %d is %s again.\n\n", slot.ID, slot.Status)
			return nil
		},
	}
}

// AssignCoverageCmd creates the assignCoverage command
func AssignCoverageCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "assignCoverage <slot_id> <covering_worker_id>",
		Short: "Record a covering worker on a slot without removing the original holder (admin only)",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			slotID, err := parseSlotID(args[0])
			if err != nil {
				return err
			}

			slot, err := services.AssignCoverage(app.Ctx, app.Database, app.Logger, slotID, args[1], app.Role)
			if err != nil {
				return err
			}

			fmt.Printf("\n✓ Coverage recorded on slot %d.\n", slot.ID)
			if slot.WorkerID != nil {
				fmt.Printf("  Scheduled: %s\n", *slot.WorkerID)
			}
			fmt.Printf("  Covering:  %s\n\n", *slot.CoveringWorkerID)
			return nil
		},
	}
}

// MyShiftsCmd creates the myShifts command
func MyShiftsCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "myShifts",
		Short: "List your upcoming shifts and their exchange state",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			shifts, err := services.MyShifts(app.Ctx, app.Database, app.Caller)
			if err != nil {
				return err
			}

			if len(shifts) == 0 {
				fmt.Println("\nYou have no upcoming shifts.")
				return nil
			}

			fmt.Printf("\nYour upcoming shifts:\n\n")
			for _, s := range shifts {
				fmt.Printf("  slot %-5d %s (%s, position %d) - %s\n",
					s.SlotID, s.Date.Format("2006-01-02"), s.DayType, s.SlotNumber, s.Status)
			}
			fmt.Println()
			return nil
		},
	}
}

func parseSlotID(arg string) (int64, error) {
	slotID, err := strconv.ParseInt(arg, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("slot_id must be a number: %w", err)
	}
	return slotID, nil
}

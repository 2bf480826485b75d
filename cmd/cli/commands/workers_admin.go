package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/iglesia-cuna/cuna-roster/pkg/core/model"
	"github.com/iglesia-cuna/cuna-roster/pkg/core/services"
)

// AddWorkerCmd creates the addWorker command
func AddWorkerCmd(app *AppContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "addWorker <name>",
		Short: "Create a scheduling record for a new servidora (admin only)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			fridayEligible, _ := cmd.Flags().GetBool("friday")
			admin, _ := cmd.Flags().GetBool("admin")

			role := model.RoleStaff
			if admin {
				role = model.RoleAdmin
			}

			worker, err := services.AddWorker(app.Ctx, app.Database, app.Logger, args[0], fridayEligible, role, app.Role)
			if err != nil {
				return err
			}

			fmt.Printf("\n✓ Worker created: %s (%s)\n\n", worker.Name, worker.ID)
			return nil
		},
	}

	cmd.Flags().Bool("friday", false, "Mark the worker as Friday-eligible")
	cmd.Flags().Bool("admin", false, "Give the worker the responsable role")

	return cmd
}

// UpdateWorkerCmd creates the updateWorker command
func UpdateWorkerCmd(app *AppContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "updateWorker <worker_id>",
		Short: "Update a worker's scheduling flags (admin only)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			active, _ := cmd.Flags().GetBool("active")
			fridayEligible, _ := cmd.Flags().GetBool("friday")
			participation, _ := cmd.Flags().GetString("participation")

			err := services.UpdateWorkerFlags(app.Ctx, app.Database, app.Logger, args[0],
				active, fridayEligible, model.ParticipationStatus(participation), app.Role)
			if err != nil {
				return err
			}

			fmt.Printf("\n✓ Worker %s updated.\n\n", args[0])
			return nil
		},
	}

	cmd.Flags().Bool("active", true, "Whether the worker is active (false soft-deletes)")
	cmd.Flags().Bool("friday", false, "Whether the worker is Friday-eligible")
	cmd.Flags().String("participation", string(model.ParticipationActive), "Participation status: active, resting or suspended")

	return cmd
}

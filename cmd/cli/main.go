package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/iglesia-cuna/cuna-roster/cmd/cli/commands"
	"github.com/iglesia-cuna/cuna-roster/internal/config"
	"github.com/iglesia-cuna/cuna-roster/pkg/core/model"
	"github.com/iglesia-cuna/cuna-roster/pkg/postgres"
	"github.com/iglesia-cuna/cuna-roster/pkg/utils/logging"
)

var (
	env      string
	caller   string
	role     string
	app      *commands.AppContext
	database *postgres.DB
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "cuna",
		Short: "Cuna roster CLI - manage servidora staffing for Fridays and Sundays",
		Long: `A CLI tool for the Cuna childcare service: generate the monthly roster,
manage shift exchanges between servidoras, and review staffing.`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return initApp()
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if app != nil && app.Logger != nil {
				app.Logger.Sync()
			}
			if database != nil {
				database.Close()
			}
		},
	}

	rootCmd.PersistentFlags().StringVarP(&env, "env", "e", "prod", "Environment name, used to prefix log files")
	rootCmd.PersistentFlags().StringVar(&caller, "as", "", "Caller identity (worker id from the auth collaborator)")
	rootCmd.PersistentFlags().StringVar(&role, "role", string(model.RoleStaff), "Caller role: responsable or servidora")

	rootCmd.AddCommand(commands.GenerateRosterCmd(appRef()))
	rootCmd.AddCommand(commands.ExposeShiftCmd(appRef()))
	rootCmd.AddCommand(commands.ListExchangesCmd(appRef()))
	rootCmd.AddCommand(commands.ClaimShiftCmd(appRef()))
	rootCmd.AddCommand(commands.CancelExchangeCmd(appRef()))
	rootCmd.AddCommand(commands.AssignCoverageCmd(appRef()))
	rootCmd.AddCommand(commands.MyShiftsCmd(appRef()))
	rootCmd.AddCommand(commands.DashboardCmd(appRef()))
	rootCmd.AddCommand(commands.ListWorkersCmd(appRef()))
	rootCmd.AddCommand(commands.AddWorkerCmd(appRef()))
	rootCmd.AddCommand(commands.UpdateWorkerCmd(appRef()))
	rootCmd.AddCommand(commands.ExportRosterCmd(appRef()))
	rootCmd.AddCommand(migrateCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// appRef returns the shared AppContext, created empty here and populated by
// initApp before any RunE fires.
func appRef() *commands.AppContext {
	if app == nil {
		app = &commands.AppContext{}
	}
	return app
}

// initApp sets up logger, config, and database
func initApp() error {
	var err error
	appRef()
	app.Ctx = context.Background()

	app.Logger, err = logging.InitLogger(env)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	app.Logger.Info("Starting application", zap.String("environment", env))

	app.Cfg, err = config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	app.Logger.Debug("Configuration loaded successfully")

	app.Caller = caller
	app.Role = model.Role(role)
	if !app.Role.IsValid() {
		return fmt.Errorf("invalid role %q: must be %s or %s", role, model.RoleAdmin, model.RoleStaff)
	}

	app.Logger.Info("Connecting to database")
	database, err = postgres.NewDB(app.Ctx, app.Cfg.DatabaseURL)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	app.Database = database
	app.Logger.Info("Database initialized successfully")

	return nil
}

func migrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Apply pending database migrations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := database.RunMigrations(app.Ctx); err != nil {
				return err
			}

			fmt.Println("\n✓ Migrations applied.")
			return nil
		},
	}
}

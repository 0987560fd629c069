package cmd

import (
	"umkm-marketplace/pkg/database"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func newMigrateCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Manage database schema migrations",
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	for _, direction := range []struct {
		dir   database.MigrateDirection
		short string
	}{
		{database.MigrateUp, "Apply all pending migrations"},
		{database.MigrateDown, "Roll back the latest migration"},
		{database.MigrateStatus, "Print migration status"},
	} {
		cmd.AddCommand(newMigrateSubcommand(direction.dir, direction.short))
	}

	return cmd
}

func newMigrateSubcommand(direction database.MigrateDirection, short string) *cobra.Command {
	return &cobra.Command{
		Use:   string(direction),
		Short: short,
		RunE: func(cmd *cobra.Command, args []string) error {
			config, logger, err := bootstrap()
			if err != nil {
				return err
			}
			defer logger.Sync()

			if err := database.Migrate(cmd.Context(), config.Database.DSN(), direction); err != nil {
				logger.Error("Migration failed", zap.String("direction", string(direction)), zap.Error(err))
				return err
			}

			logger.Info("Migration finished", zap.String("direction", string(direction)))
			return nil
		},
	}
}

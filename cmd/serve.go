package cmd

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"umkm-marketplace/internal/wire"
	"umkm-marketplace/pkg/database"
	"umkm-marketplace/pkg/telemetry"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func newServeCommand() *cobra.Command {
	var migrate bool

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API server",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()
			return serve(ctx, migrate)
		},
	}

	cmd.Flags().BoolVar(&migrate, "migrate", false, "Apply pending migrations before serving")
	return cmd
}

func serve(ctx context.Context, migrate bool) error {
	config, logger, err := bootstrap()
	if err != nil {
		return err
	}
	defer logger.Sync()

	logger.Info("Starting application",
		zap.String("app", config.App.Name),
		zap.String("env", config.App.Env),
		zap.String("port", config.App.Port),
		zap.Bool("debug", config.App.Debug),
	)

	shutdownTracing, err := telemetry.Init(ctx, config.Telemetry.ServiceName, config.Telemetry.OTLPEndpoint)
	if err != nil {
		logger.Warn("Tracing disabled", zap.Error(err))
	}
	defer func() {
		if err := shutdownTracing(context.Background()); err != nil {
			logger.Warn("Failed to flush traces", zap.Error(err))
		}
	}()

	if migrate {
		if err := database.Migrate(ctx, config.Database.DSN(), database.MigrateUp); err != nil {
			return err
		}
		logger.Info("Migrations applied")
	}

	// Connect to database
	db, err := database.InitDB(ctx, config.Database)
	if err != nil {
		logger.Error("Failed to connect to database", zap.Error(err))
		return fmt.Errorf("connect database: %w", err)
	}
	defer db.Close()

	logger.Info("Database connected successfully")

	// Wire all dependencies
	app, err := wire.Wiring(db, config, logger)
	if err != nil {
		return err
	}

	return APIServer(ctx, app.Router, config.App.Port, logger)
}

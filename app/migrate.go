package main

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"facility-console/pkg/config"
	applogger "facility-console/pkg/logger"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Apply database migrations for the configured store",
	Long: `Apply the goose migrations for STORE_DRIVER=sqlite or postgres.
The memory and redis drivers have no schema and are left untouched.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		cfg := config.New()
		logger := applogger.NewLogger(cfg.Log.Level, cfg.Log.File)
		defer logger.Sync()

		switch cfg.Store.Driver {
		case "sqlite", "postgres":
		default:
			logger.Info("migrate: nothing to do", zap.String("driver", cfg.Store.Driver))
			return nil
		}
		st, err := openStore(cmd.Context(), cfg, nil, logger)
		if err != nil {
			return err
		}
		logger.Info("migrate: done", zap.String("driver", cfg.Store.Driver))
		return st.Close()
	},
}

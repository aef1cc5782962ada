package main

import (
	"github.com/go-redis/redis/v8"
	"github.com/spf13/cobra"

	"facility-console/internal/repositories"
	"facility-console/pkg/clock"
	"facility-console/pkg/config"
	applogger "facility-console/pkg/logger"
	"facility-console/pkg/metrics"
	"facility-console/seeders"
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Load demo equipment, personnel and work orders",
	RunE: func(cmd *cobra.Command, _ []string) error {
		ctx := cmd.Context()
		cfg := config.New()
		logger := applogger.NewLogger(cfg.Log.Level, cfg.Log.File)
		defer logger.Sync()

		var redisClient *redis.Client
		if cfg.Store.Driver == "redis" {
			client, err := newRedisClient(ctx, cfg.Redis)
			if err != nil {
				return err
			}
			defer client.Close()
			redisClient = client
		}
		st, err := openStore(ctx, cfg, redisClient, logger)
		if err != nil {
			return err
		}
		defer st.Close()

		repos := repositories.NewRepositories(ctx, st, logger, metrics.New())
		return seeders.SeedDemo(ctx, repos, clock.NewFixedOffset(cfg.Clock.OffsetHours), logger)
	},
}

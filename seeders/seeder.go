package seeders

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"facility-console/internal/maintenance"
	"facility-console/internal/repositories"
	"facility-console/internal/services"
	"facility-console/pkg/clock"
)

// SeedDemo fills an empty console with sample equipment, personnel and work
// orders. Everything goes through the services so codes and mirrored schedules
// are produced the same way the API produces them. A console that already has
// equipment is left alone.
func SeedDemo(ctx context.Context, repos *repositories.Repositories, clk clock.Clock, logger *zap.Logger) error {
	if repos.Equipment.Len() > 0 {
		logger.Info("SeedDemo: equipment already present, skipping")
		return nil
	}
	logger.Info("SeedDemo: seeding demo data")

	equipment := services.NewEquipmentService(repos, maintenance.NewResolver(clk), nil, logger)
	if err := seedEquipment(ctx, equipment, logger); err != nil {
		return fmt.Errorf("seed equipment: %w", err)
	}
	if err := seedPersonnel(ctx, services.NewPersonnelService(repos, logger), logger); err != nil {
		return fmt.Errorf("seed personnel: %w", err)
	}
	workOrders := services.NewWorkOrderService(repos, clk, nil, nil, nil, logger)
	if err := seedWorkOrders(ctx, workOrders, clk, logger); err != nil {
		return fmt.Errorf("seed work orders: %w", err)
	}

	logger.Info("SeedDemo: done")
	return nil
}

package seeders

import (
	"context"

	"go.uber.org/zap"

	"facility-console/internal/services"
)

func seedEquipment(ctx context.Context, svc services.EquipmentServiceInterface, logger *zap.Logger) error {
	for _, d := range equipmentData {
		if _, err := svc.CreateEquipment(ctx, d); err != nil {
			return err
		}
	}
	logger.Info("  - equipment", zap.Int("count", len(equipmentData)))
	return nil
}

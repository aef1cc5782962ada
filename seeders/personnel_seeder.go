package seeders

import (
	"context"

	"go.uber.org/zap"

	"facility-console/internal/entities"
	"facility-console/internal/services"
)

func seedPersonnel(ctx context.Context, svc services.RecordServiceInterface[entities.Personnel], logger *zap.Logger) error {
	for _, d := range personnelData {
		if _, err := svc.Create(ctx, d); err != nil {
			return err
		}
	}
	logger.Info("  - personnel", zap.Int("count", len(personnelData)))
	return nil
}

package seeders

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"facility-console/internal/dto"
	"facility-console/internal/services"
	"facility-console/pkg/clock"
)

// seedWorkOrders spreads the sample orders over the last weeks so the
// maintenance summaries have something to show.
func seedWorkOrders(ctx context.Context, svc services.WorkOrderServiceInterface, clk clock.Clock, logger *zap.Logger) error {
	today := clk.Now()
	for i, seed := range workOrderData {
		d := seed.order
		d.RequestDate = today.AddDate(0, 0, -14*(len(workOrderData)-i)).Format(time.DateOnly)
		d.DueDate = today.AddDate(0, 0, 7*(i-1)).Format(time.DateOnly)

		created, err := svc.CreateWorkOrder(ctx, d)
		if err != nil {
			return fmt.Errorf("create %q: %w", d.Title, err)
		}
		if seed.status == "waiting" {
			continue
		}
		change := dto.ChangeStatusDTO{Status: seed.status}
		if seed.workResult != "" {
			change.WorkResult = &seed.workResult
		}
		if _, err := svc.ChangeStatus(ctx, created.ID, change); err != nil {
			return fmt.Errorf("change status of %s: %w", created.ID, err)
		}
	}
	logger.Info("  - work orders", zap.Int("count", len(workOrderData)))
	return nil
}

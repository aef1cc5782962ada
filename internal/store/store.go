// Package store persists whole entity collections by key. Every Save replaces
// the stored document; there are no partial updates.
package store

import (
	"context"
	"encoding/json"
	"fmt"
)

// Collection keys.
const (
	KeyPersonnel     = "personnel"
	KeyWorkOrders    = "workOrders"
	KeySchedules     = "schedules"
	KeyEquipment     = "equipment"
	KeyAnnouncements = "announcements"
	KeyAttendances   = "attendances"
	KeyDailyReports  = "dailyReports"
	KeyDocuments     = "documents"
	KeySequences     = "sequences"
)

type Store interface {
	// Load decodes the document stored under key into dst. found is false when
	// nothing was ever saved under key; dst is left untouched in that case.
	Load(ctx context.Context, key string, dst any) (found bool, err error)
	Save(ctx context.Context, key string, value any) error
	Close() error
}

func encode(key string, value any) ([]byte, error) {
	payload, err := json.Marshal(value)
	if err != nil {
		return nil, fmt.Errorf("encode %s: %w", key, err)
	}
	return payload, nil
}

func decode(key string, payload []byte, dst any) error {
	if err := json.Unmarshal(payload, dst); err != nil {
		return fmt.Errorf("decode %s: %w", key, err)
	}
	return nil
}

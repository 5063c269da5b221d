// File: services/schedule/slots.go
package schedule

import (
	"context"
	"fmt"
	"time"

	"davi/models"
)

func (s *DefaultScheduleService) ListMySlots(ctx context.Context, tenantID string) ([]models.AvailabilitySlot, error) {
	return s.Slots.ListUpcoming(ctx, tenantID, time.Now().UTC())
}

// CreateManualSlot combines "2025-11-28" + "14:00" into a UTC instant with
// the same wall-clock numerals (the preservation policy the generator uses).
func (s *DefaultScheduleService) CreateManualSlot(ctx context.Context, tenantID string, req models.ManualSlotRequest) (*models.AvailabilitySlot, error) {
	start, err := composeInstant(req.Date, req.StartTime)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid start: %v", ErrInvalidInput, err)
	}
	end, err := composeInstant(req.Date, req.EndTime)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid end: %v", ErrInvalidInput, err)
	}

	slot := &models.AvailabilitySlot{
		TenantID:  tenantID,
		StartTime: start,
		EndTime:   end,
	}
	if err := s.Slots.Create(ctx, slot); err != nil {
		return nil, err
	}
	return slot, nil
}

func (s *DefaultScheduleService) DeleteSlot(ctx context.Context, tenantID, slotID string) error {
	if slotID == "" {
		return fmt.Errorf("%w: slot id is required", ErrInvalidInput)
	}
	return s.Slots.DeleteByID(ctx, tenantID, slotID)
}

func composeInstant(date, clock string) (time.Time, error) {
	return time.Parse("2006-01-02 15:04", date+" "+clock)
}
